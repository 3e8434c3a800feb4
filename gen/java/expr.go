package java

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/swipe-io/strcase"

	"github.com/typeshift-io/typeshift/ast"
	"github.com/typeshift-io/typeshift/gen"
)

// newNames rewrites builtin error constructors onto runtime exception
// types.
var newNames = map[string]string{
	"Error":      "RuntimeException",
	"TypeError":  "IllegalArgumentException",
	"RangeError": "IllegalArgumentException",
}

func (t *Target) Ident(r *gen.Run, e *ast.Ident) string {
	switch e.Name {
	case "this":
		return "this"
	case "undefined":
		return "null"
	}
	if e.Name != "" && e.Name[0] >= 'A' && e.Name[0] <= 'Z' {
		return e.Name
	}
	return strcase.ToLowerCamel(e.Name)
}

func (t *Target) StringLit(e *ast.StringLit) string {
	return strconv.Quote(e.Value)
}

func (t *Target) BoolLit(e *ast.BoolLit) string {
	if e.Value {
		return "true"
	}
	return "false"
}

func (t *Target) NullLit(e *ast.NullLit) string {
	return "null"
}

// classRef reports whether an expression names a type rather than a
// value, in which case member access stays plain instead of going
// through a getter.
func classRef(e ast.Expr) bool {
	id, ok := e.(*ast.Ident)
	return ok && id.Name != "" && id.Name[0] >= 'A' && id.Name[0] <= 'Z'
}

func isThis(e ast.Expr) bool {
	id, ok := e.(*ast.Ident)
	return ok && id.Name == "this"
}

// Property resolves this.field to the private field inside its own
// class and routes every other instance read through the getter.
func (t *Target) Property(r *gen.Run, e *ast.PropertyExpr) string {
	if e.Name == "length" {
		return fmt.Sprintf("%s.size()", r.Expr(e.X))
	}
	if isThis(e.X) {
		return "this." + strcase.ToLowerCamel(e.Name)
	}
	if classRef(e.X) {
		// Upper-initial members are enum constants or class constants
		// and follow their declared SCREAMING spelling; everything else
		// is a mutable static field.
		if e.Name != "" && e.Name[0] >= 'A' && e.Name[0] <= 'Z' {
			return r.Expr(e.X) + "." + strcase.ToScreamingSnake(e.Name)
		}
		return r.Expr(e.X) + "." + strcase.ToLowerCamel(e.Name)
	}
	return fmt.Sprintf("%s.get%s()", r.Expr(e.X), strcase.ToCamel(e.Name))
}

// methodNames maps well-known receiver methods onto java spellings.
var methodNames = map[string]string{
	"push": "add",
}

func (t *Target) Call(r *gen.Run, e *ast.CallExpr) string {
	args := r.ExprList(e.Args)
	if pe, ok := e.Fun.(*ast.PropertyExpr); ok {
		if id, isIdent := pe.X.(*ast.Ident); isIdent && id.Name == "console" {
			switch pe.Name {
			case "log", "info", "warn":
				return fmt.Sprintf("System.out.println(%s)", args)
			case "error":
				return fmt.Sprintf("System.err.println(%s)", args)
			}
		}
		method := strcase.ToLowerCamel(pe.Name)
		if mapped, ok := methodNames[pe.Name]; ok {
			method = mapped
		}
		return fmt.Sprintf("%s.%s(%s)", r.Expr(pe.X), method, args)
	}
	return fmt.Sprintf("%s(%s)", r.Expr(e.Fun), args)
}

func (t *Target) New(r *gen.Run, e *ast.NewExpr) string {
	ctor := strcase.ToCamel(e.Name)
	if mapped, ok := newNames[e.Name]; ok {
		ctor = mapped
	}
	return fmt.Sprintf("new %s(%s)", ctor, r.ExprList(e.Args))
}

func (t *Target) Array(r *gen.Run, e *ast.ArrayLit) string {
	r.Imports.Add("import java.util.List;")
	return fmt.Sprintf("List.of(%s)", r.ExprList(e.Elems))
}

func (t *Target) Object(r *gen.Run, e *ast.ObjectLit) string {
	r.Imports.Add("import java.util.Map;")
	if len(e.Props) == 0 {
		return "Map.of()"
	}
	parts := make([]string, len(e.Props))
	for i, p := range e.Props {
		parts[i] = fmt.Sprintf("%s, %s", strconv.Quote(p.Key), r.Expr(p.Value))
	}
	return fmt.Sprintf("Map.of(%s)", strings.Join(parts, ", "))
}

func (t *Target) Binary(r *gen.Run, e *ast.BinaryExpr) string {
	op := e.Op
	switch op {
	case "===":
		op = "=="
	case "!==":
		op = "!="
	}
	return fmt.Sprintf("%s %s %s", r.Expr(e.X), op, r.Expr(e.Y))
}

// Assign routes writes to foreign instance properties through the
// setter; everything else stays a plain assignment.
func (t *Target) Assign(r *gen.Run, e *ast.AssignExpr) string {
	if pe, ok := e.Target.(*ast.PropertyExpr); ok && e.Op == "=" && !isThis(pe.X) && !classRef(pe.X) {
		return fmt.Sprintf("%s.set%s(%s)", r.Expr(pe.X), strcase.ToCamel(pe.Name), r.Expr(e.Value))
	}
	return fmt.Sprintf("%s %s %s", r.Expr(e.Target), e.Op, r.Expr(e.Value))
}

func (t *Target) Unary(r *gen.Run, e *ast.UnaryExpr) string {
	x := r.Expr(e.X)
	switch e.Op {
	case "++", "--":
		if e.Postfix {
			return x + e.Op
		}
		return e.Op + x
	case "typeof":
		return fmt.Sprintf("%s.getClass().getSimpleName()", x)
	}
	return e.Op + x
}

func (t *Target) Cond(r *gen.Run, e *ast.CondExpr) string {
	return fmt.Sprintf("%s ? %s : %s", r.Expr(e.Cond), r.Expr(e.Then), r.Expr(e.Else))
}

// Arrow keeps expression bodies and single returns; richer bodies have
// no inline rendering and degrade to a null-returning lambda.
func (t *Target) Arrow(r *gen.Run, e *ast.ArrowExpr) string {
	params := make([]string, len(e.Params))
	for i, p := range e.Params {
		params[i] = strcase.ToLowerCamel(p.Name)
	}
	plist := "(" + strings.Join(params, ", ") + ")"
	if e.Expr != nil {
		return fmt.Sprintf("%s -> %s", plist, r.Expr(e.Expr))
	}
	if e.Block != nil && len(e.Block.Stmts) == 1 {
		if ret, ok := e.Block.Stmts[0].(*ast.ReturnStmt); ok && ret.X != nil {
			return fmt.Sprintf("%s -> %s", plist, r.Expr(ret.X))
		}
	}
	return fmt.Sprintf("%s -> null", plist)
}

func (t *Target) Await(r *gen.Run, e *ast.AwaitExpr) string {
	return r.Expr(e.X) + ".join()"
}

// Template lowers template strings to string concatenation.
func (t *Target) Template(r *gen.Run, e *ast.TemplateLit) string {
	var parts []string
	literalOnly := true
	for i, chunk := range e.Chunks {
		if chunk != "" {
			parts = append(parts, strconv.Quote(chunk))
		}
		if i < len(e.Exprs) {
			parts = append(parts, r.Expr(e.Exprs[i]))
			literalOnly = false
		}
	}
	if len(parts) == 0 {
		return `""`
	}
	if len(parts) == 1 && !literalOnly {
		// a lone interpolation still has to be a string
		return `"" + ` + parts[0]
	}
	return strings.Join(parts, " + ")
}
