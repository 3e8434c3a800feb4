package python

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/swipe-io/strcase"

	"github.com/typeshift-io/typeshift/ast"
	"github.com/typeshift-io/typeshift/gen"
)

// newNames rewrites builtin error constructors onto their closest
// python exception types.
var newNames = map[string]string{
	"Error":      "Exception",
	"RangeError": "ValueError",
}

var binaryOps = map[string]string{
	"&&":  "and",
	"||":  "or",
	"===": "==",
	"!==": "!=",
}

func classRef(id *ast.Ident) bool {
	return upperInitial(id.Name)
}

func upperInitial(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

func (t *Target) Ident(r *gen.Run, e *ast.Ident) string {
	if e.Name == "this" {
		return "self"
	}
	if e.Name == "undefined" {
		return "None"
	}
	return name(e.Name)
}

func (t *Target) StringLit(e *ast.StringLit) string {
	return strconv.Quote(e.Value)
}

func (t *Target) BoolLit(e *ast.BoolLit) string {
	if e.Value {
		return "True"
	}
	return "False"
}

func (t *Target) NullLit(e *ast.NullLit) string {
	return "None"
}

func (t *Target) Property(r *gen.Run, e *ast.PropertyExpr) string {
	if e.Name == "length" {
		return fmt.Sprintf("len(%s)", r.Expr(e.X))
	}
	if id, ok := e.X.(*ast.Ident); ok {
		if id.Name == "this" {
			if r.ClassField(e.Name) != nil {
				return "self." + fieldStore(e.Name)
			}
			return "self." + name(e.Name)
		}
		// Enum members and constants reached through a class reference
		// follow their declared spelling.
		if classRef(id) && upperInitial(e.Name) {
			return id.Name + "." + constName(e.Name)
		}
	}
	return r.Expr(e.X) + "." + name(e.Name)
}

// methodNames maps well-known receiver methods onto python spellings.
var methodNames = map[string]string{
	"push":        "append",
	"toUpperCase": "upper",
	"toLowerCase": "lower",
	"trim":        "strip",
	"indexOf":     "index",
}

func (t *Target) Call(r *gen.Run, e *ast.CallExpr) string {
	args := r.ExprList(e.Args)
	if pe, ok := e.Fun.(*ast.PropertyExpr); ok {
		if id, isIdent := pe.X.(*ast.Ident); isIdent && id.Name == "console" {
			switch pe.Name {
			case "log", "info", "warn":
				return fmt.Sprintf("print(%s)", args)
			case "error":
				r.Imports.Add("import sys")
				return fmt.Sprintf("print(%s, file=sys.stderr)", args)
			}
		}
		if pe.Name == "toString" {
			return fmt.Sprintf("str(%s)", r.Expr(pe.X))
		}
		method := name(pe.Name)
		if mapped, ok := methodNames[pe.Name]; ok {
			method = mapped
		}
		recv := r.Expr(pe.X)
		if id, isIdent := pe.X.(*ast.Ident); isIdent && id.Name == "this" {
			recv = "self"
			if r.ClassField(pe.Name) != nil {
				recv = "self." + fieldStore(pe.Name)
				return fmt.Sprintf("%s(%s)", recv, args)
			}
		}
		return fmt.Sprintf("%s.%s(%s)", recv, method, args)
	}
	return fmt.Sprintf("%s(%s)", r.Expr(e.Fun), args)
}

func (t *Target) New(r *gen.Run, e *ast.NewExpr) string {
	ctor := strcase.ToCamel(e.Name)
	if mapped, ok := newNames[e.Name]; ok {
		ctor = mapped
	}
	return fmt.Sprintf("%s(%s)", ctor, r.ExprList(e.Args))
}

func (t *Target) Array(r *gen.Run, e *ast.ArrayLit) string {
	return "[" + r.ExprList(e.Elems) + "]"
}

func (t *Target) Object(r *gen.Run, e *ast.ObjectLit) string {
	if len(e.Props) == 0 {
		return "{}"
	}
	parts := make([]string, len(e.Props))
	for i, p := range e.Props {
		parts[i] = fmt.Sprintf("%s: %s", strconv.Quote(p.Key), r.Expr(p.Value))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (t *Target) Binary(r *gen.Run, e *ast.BinaryExpr) string {
	if e.Op == "instanceof" {
		return fmt.Sprintf("isinstance(%s, %s)", r.Expr(e.X), r.Expr(e.Y))
	}
	op := e.Op
	if mapped, ok := binaryOps[op]; ok {
		op = mapped
	}
	return fmt.Sprintf("%s %s %s", r.Expr(e.X), op, r.Expr(e.Y))
}

func (t *Target) Assign(r *gen.Run, e *ast.AssignExpr) string {
	return fmt.Sprintf("%s %s %s", r.Expr(e.Target), e.Op, r.Expr(e.Value))
}

func (t *Target) Unary(r *gen.Run, e *ast.UnaryExpr) string {
	x := r.Expr(e.X)
	switch e.Op {
	case "!":
		return "not " + x
	case "++":
		return x + " += 1"
	case "--":
		return x + " -= 1"
	case "typeof":
		return fmt.Sprintf("type(%s).__name__", x)
	case "-", "+":
		return e.Op + x
	}
	return e.Op + x
}

func (t *Target) Cond(r *gen.Run, e *ast.CondExpr) string {
	return fmt.Sprintf("%s if %s else %s", r.Expr(e.Then), r.Expr(e.Cond), r.Expr(e.Else))
}

// Arrow lowers expression-bodied arrows to lambdas. Multi-statement
// bodies have no inline form, only a single return survives.
func (t *Target) Arrow(r *gen.Run, e *ast.ArrowExpr) string {
	params := make([]string, len(e.Params))
	for i, p := range e.Params {
		params[i] = strcase.ToSnake(p.Name)
	}
	plist := strings.Join(params, ", ")
	if e.Expr != nil {
		return fmt.Sprintf("lambda %s: %s", plist, r.Expr(e.Expr))
	}
	if e.Block != nil && len(e.Block.Stmts) == 1 {
		if ret, ok := e.Block.Stmts[0].(*ast.ReturnStmt); ok && ret.X != nil {
			return fmt.Sprintf("lambda %s: %s", plist, r.Expr(ret.X))
		}
	}
	return fmt.Sprintf("lambda %s: None", plist)
}

func (t *Target) Await(r *gen.Run, e *ast.AwaitExpr) string {
	return r.Expr(e.X) + ".result()"
}

// Template renders f-strings, escaping literal braces and quotes in the
// chunk text.
func (t *Target) Template(r *gen.Run, e *ast.TemplateLit) string {
	var b strings.Builder
	b.WriteString(`f"`)
	for i, chunk := range e.Chunks {
		b.WriteString(escapeChunk(chunk))
		if i < len(e.Exprs) {
			b.WriteString("{" + r.Expr(e.Exprs[i]) + "}")
		}
	}
	b.WriteString(`"`)
	return b.String()
}

func escapeChunk(s string) string {
	s = strings.ReplaceAll(s, "{", "{{")
	s = strings.ReplaceAll(s, "}", "}}")
	q := strconv.Quote(s)
	return q[1 : len(q)-1]
}
