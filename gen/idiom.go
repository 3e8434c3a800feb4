package gen

import (
	"strings"

	"github.com/typeshift-io/typeshift/ast"
)

// matchCountingLoop recognizes the canonical counting shape on the
// structured sub-expressions, not on source text:
//
//	for (let i = <integer literal>; i < <bound>; i++) { ... }
//
// The increment may also be `i += 1`. Anything else returns nil and the
// engine transliterates.
func matchCountingLoop(s *ast.ForStmt) *CountingLoop {
	decl, ok := s.Init.(*ast.VarDecl)
	if !ok || decl.Const {
		return nil
	}
	start, ok := decl.Init.(*ast.NumberLit)
	if !ok || !isIntegerLit(start.Value) {
		return nil
	}
	cond, ok := s.Cond.(*ast.BinaryExpr)
	if !ok || cond.Op != "<" {
		return nil
	}
	if v, ok := cond.X.(*ast.Ident); !ok || v.Name != decl.Name {
		return nil
	}
	if !isIncrementOf(s.Post, decl.Name) {
		return nil
	}
	if !isPureBound(cond.Y) {
		return nil
	}
	return &CountingLoop{
		Var:   decl.Name,
		Start: start.Value,
		Bound: cond.Y,
		Body:  s.Body,
	}
}

// isPureBound accepts bounds that are plain reads. A range form hoists
// the bound out of the loop, so a bound with call side effects must take
// the transliteration path where the condition is re-evaluated each turn.
func isPureBound(e ast.Expr) bool {
	switch x := e.(type) {
	case *ast.NumberLit, *ast.Ident:
		return true
	case *ast.PropertyExpr:
		return isPureBound(x.X)
	}
	return false
}

func isIncrementOf(post ast.Stmt, name string) bool {
	es, ok := post.(*ast.ExprStmt)
	if !ok {
		return false
	}
	switch x := es.X.(type) {
	case *ast.UnaryExpr:
		v, ok := x.X.(*ast.Ident)
		return ok && x.Op == "++" && v.Name == name
	case *ast.AssignExpr:
		v, ok := x.Target.(*ast.Ident)
		if !ok || x.Op != "+=" || v.Name != name {
			return false
		}
		one, ok := x.Value.(*ast.NumberLit)
		return ok && one.Value == "1"
	}
	return false
}

func isIntegerLit(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsValueObject reports whether a class qualifies for the terse
// immutable-record form: only read-only instance fields, at most one
// constructor, no methods.
func IsValueObject(d *ast.ClassDecl) bool {
	var fields, ctors int
	for _, m := range d.Members {
		switch x := m.(type) {
		case *ast.FieldDecl:
			if !x.ReadOnly || x.Static {
				return false
			}
			fields++
		case *ast.CtorDecl:
			ctors++
		default:
			return false
		}
	}
	return fields > 0 && ctors <= 1
}

// ClassParts partitions a class body in declaration order.
type ClassParts struct {
	Fields  []*ast.FieldDecl
	Ctor    *ast.CtorDecl
	Methods []*ast.MethodDecl
}

func SplitClass(d *ast.ClassDecl) ClassParts {
	var p ClassParts
	for _, m := range d.Members {
		switch x := m.(type) {
		case *ast.FieldDecl:
			p.Fields = append(p.Fields, x)
		case *ast.CtorDecl:
			if p.Ctor == nil {
				p.Ctor = x
			}
		case *ast.MethodDecl:
			p.Methods = append(p.Methods, x)
		}
	}
	return p
}

// PromiseResult unwraps Promise<T> to T so asynchronous declarations
// annotated with an explicit promise type are not wrapped twice. Other
// types pass through unchanged.
func PromiseResult(t *ast.TypeNode) *ast.TypeNode {
	if t != nil && t.Kind == ast.TypeRef && t.Name == "Promise" {
		if len(t.Args) > 0 {
			return t.Args[0]
		}
		return nil
	}
	return t
}

// TrimTrailingBreak drops the trailing break of a switch case body for
// targets whose case construct has no fallthrough.
func TrimTrailingBreak(body []ast.Stmt) []ast.Stmt {
	if n := len(body); n > 0 {
		if _, ok := body[n-1].(*ast.BreakStmt); ok {
			return body[:n-1]
		}
	}
	return body
}

// CommentLines normalizes one comment to plain text lines: markers
// stripped, per-line asterisk gutters removed, surrounding blank lines
// dropped.
func CommentLines(c ast.Comment) []string {
	text := c.Text
	if c.Block {
		text = strings.TrimPrefix(text, "/**")
		text = strings.TrimPrefix(text, "/*")
		text = strings.TrimSuffix(text, "*/")
	} else {
		text = strings.TrimPrefix(text, "//")
	}
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "* ")
		if line == "*" {
			line = ""
		}
		lines = append(lines, strings.TrimSpace(line))
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
