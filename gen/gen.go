// Package gen is the traversal engine shared by every target language.
// It walks one compilation unit, dispatches each node to the configured
// Target strategy and assembles the final source text. All anomaly
// handling lives here: unhandled kinds degrade to placeholder comments,
// unmatched loop idioms fall back to a faithful transliteration, and no
// path errors out for a well-formed tree.
package gen

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/typeshift-io/typeshift/ast"
	"github.com/typeshift-io/typeshift/importer"
	"github.com/typeshift-io/typeshift/writer"
)

// Generator drives generation for one target language. Instances keep no
// mutable state between calls: every Generate builds a fresh Run, so a
// Generator is safe to reuse sequentially, and independent instances may
// run in parallel.
type Generator struct {
	opts   Options
	target Target
	log    *zap.Logger
}

type Option func(*Generator)

// WithLogger attaches a logger for debug-level traversal diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

func New(target Target, opts Options, options ...Option) *Generator {
	g := &Generator{
		opts:   opts,
		target: target,
		log:    zap.NewNop(),
	}
	for _, o := range options {
		o(g)
	}
	return g
}

func (g *Generator) Target() Target {
	return g.target
}

// Generate renders the compilation unit for the configured target. The
// only error case is a missing root; everything downstream degrades
// gracefully instead of failing.
func (g *Generator) Generate(file *ast.File) (string, error) {
	if file == nil {
		return "", errors.New("gen: nil compilation unit")
	}

	r := &Run{
		Opts:    g.opts,
		W:       writer.NewSourceWriter(g.opts.IndentWidth),
		Imports: importer.NewSet(),
		Flags:   analyze(file),
		target:  g.target,
		log:     g.log,
	}

	for i, s := range file.Stmts {
		if i > 0 {
			r.W.Blank()
		}
		r.TopLevel(s)
	}
	g.target.End(r)
	body := r.W.String()

	var out writer.TextWriter
	for _, line := range g.target.Header(r, file) {
		out.W("%s\n", line)
	}
	// Preamble may seed imports, so collect it before rendering the
	// import block.
	preamble := g.target.Preamble(r)
	if imports := g.target.Imports(r); len(imports) > 0 {
		out.Line()
		for _, line := range imports {
			out.W("%s\n", line)
		}
	}
	if len(preamble) > 0 {
		out.Line()
		for _, line := range preamble {
			out.W("%s\n", line)
		}
	}
	if body != "" {
		out.Line()
		out.W("%s", body)
	}
	return out.String(), nil
}

// Run is the per-call context: writer, import set and analysis flags.
// It is created fresh by Generate and discarded afterwards, so no state
// can leak between calls.
type Run struct {
	Opts    Options
	W       *writer.SourceWriter
	Imports *importer.Set
	Flags   Analysis

	target Target
	log    *zap.Logger

	// fields of the class currently being emitted, nil outside one.
	classFields map[string]*ast.FieldDecl

	// State is scratch space for the target, scoped to this run.
	State any
}

// EnterClass records the field set of the class about to be emitted so
// expression translation can resolve `this.field` accesses. LeaveClass
// restores the enclosing scope (nil at top level).
func (r *Run) EnterClass(d *ast.ClassDecl) map[string]*ast.FieldDecl {
	prev := r.classFields
	r.classFields = map[string]*ast.FieldDecl{}
	for _, m := range d.Members {
		if f, ok := m.(*ast.FieldDecl); ok {
			r.classFields[f.Name] = f
		}
	}
	return prev
}

func (r *Run) LeaveClass(prev map[string]*ast.FieldDecl) {
	r.classFields = prev
}

// ClassField resolves a field of the class being emitted, nil if the
// name is not a known field or emission is outside a class body.
func (r *Run) ClassField(name string) *ast.FieldDecl {
	if r.classFields == nil {
		return nil
	}
	return r.classFields[name]
}

// TopLevel emits one top-level statement or declaration.
func (r *Run) TopLevel(s ast.Stmt) {
	switch d := s.(type) {
	case *ast.ClassDecl:
		r.LeadComments(d.Leading)
		r.target.Class(r, d)
	case *ast.InterfaceDecl:
		r.LeadComments(d.Leading)
		r.target.Interface(r, d)
	case *ast.EnumDecl:
		r.LeadComments(d.Leading)
		r.target.Enum(r, d)
	case *ast.FuncDecl:
		r.LeadComments(d.Leading)
		r.target.Function(r, d)
	case *ast.VarDecl:
		r.LeadComments(d.Leading)
		r.target.Variable(r, d, true)
	default:
		r.Stmt(s)
	}
}

// Stmt emits one statement, dispatching by node kind. Unknown kinds emit
// exactly one placeholder comment line and traversal continues with the
// next sibling.
func (r *Run) Stmt(s ast.Stmt) {
	switch x := s.(type) {
	case *ast.BlockStmt:
		r.LeadComments(x.Leading)
		r.Stmts(x.Stmts)
	case *ast.ExprStmt:
		r.LeadComments(x.Leading)
		r.target.ExprStatement(r, x)
	case *ast.ReturnStmt:
		r.LeadComments(x.Leading)
		r.target.Return(r, x)
	case *ast.IfStmt:
		r.LeadComments(x.Leading)
		r.target.If(r, x)
	case *ast.WhileStmt:
		r.LeadComments(x.Leading)
		r.target.While(r, x)
	case *ast.ForStmt:
		r.LeadComments(x.Leading)
		r.forStmt(x)
	case *ast.ForOfStmt:
		r.LeadComments(x.Leading)
		r.target.ForEach(r, x)
	case *ast.SwitchStmt:
		r.LeadComments(x.Leading)
		r.target.Switch(r, x)
	case *ast.TryStmt:
		r.LeadComments(x.Leading)
		r.target.Try(r, x)
	case *ast.ThrowStmt:
		r.LeadComments(x.Leading)
		r.target.Throw(r, x)
	case *ast.BreakStmt:
		r.LeadComments(x.Leading)
		r.target.Break(r)
	case *ast.ContinueStmt:
		r.LeadComments(x.Leading)
		r.target.Continue(r)
	case *ast.VarDecl:
		r.LeadComments(x.Leading)
		r.target.Variable(r, x, false)
	case *ast.FuncDecl:
		r.LeadComments(x.Leading)
		r.target.Function(r, x)
	case *ast.ClassDecl:
		r.LeadComments(x.Leading)
		r.target.Class(r, x)
	case *ast.EnumDecl:
		r.LeadComments(x.Leading)
		r.target.Enum(r, x)
	case *ast.InterfaceDecl:
		r.LeadComments(x.Leading)
		r.target.Interface(r, x)
	default:
		r.Placeholder("statement", s)
	}
}

// Stmts emits a statement list.
func (r *Run) Stmts(list []ast.Stmt) {
	for _, s := range list {
		r.Stmt(s)
	}
}

// forStmt applies the counting-loop idiom: the canonical shape becomes a
// range iteration, anything else is transliterated as initializer plus a
// while loop with the increment re-emitted at the end of the body. The
// fallback is built here, not in the targets, so the always-valid
// guarantee holds for every language.
func (r *Run) forStmt(s *ast.ForStmt) {
	if loop := matchCountingLoop(s); loop != nil {
		r.target.RangeLoop(r, loop)
		return
	}
	if s.Init != nil {
		r.Stmt(s.Init)
	}
	cond := s.Cond
	if cond == nil {
		cond = &ast.BoolLit{Value: true}
	}
	stmts := make([]ast.Stmt, 0, len(loopBody(s))+1)
	stmts = append(stmts, loopBody(s)...)
	if s.Post != nil {
		stmts = append(stmts, s.Post)
	}
	r.target.While(r, &ast.WhileStmt{
		Cond: cond,
		Body: &ast.BlockStmt{Stmts: stmts},
	})
}

func loopBody(s *ast.ForStmt) []ast.Stmt {
	if s.Body == nil {
		return nil
	}
	return s.Body.Stmts
}

// Expr translates one expression to target text. Unknown kinds degrade
// to the target's inline placeholder.
func (r *Run) Expr(e ast.Expr) string {
	if e == nil {
		return ""
	}
	switch x := e.(type) {
	case *ast.Ident:
		return r.target.Ident(r, x)
	case *ast.NumberLit:
		return x.Value
	case *ast.StringLit:
		return r.target.StringLit(x)
	case *ast.BoolLit:
		return r.target.BoolLit(x)
	case *ast.NullLit:
		return r.target.NullLit(x)
	case *ast.PropertyExpr:
		return r.target.Property(r, x)
	case *ast.IndexExpr:
		// identical subscript syntax in both targets
		return r.Expr(x.X) + "[" + r.Expr(x.Index) + "]"
	case *ast.CallExpr:
		return r.target.Call(r, x)
	case *ast.NewExpr:
		return r.target.New(r, x)
	case *ast.ArrayLit:
		return r.target.Array(r, x)
	case *ast.ObjectLit:
		return r.target.Object(r, x)
	case *ast.BinaryExpr:
		return r.target.Binary(r, x)
	case *ast.AssignExpr:
		return r.target.Assign(r, x)
	case *ast.UnaryExpr:
		return r.target.Unary(r, x)
	case *ast.CondExpr:
		return r.target.Cond(r, x)
	case *ast.ArrowExpr:
		return r.target.Arrow(r, x)
	case *ast.AwaitExpr:
		return r.target.Await(r, x)
	case *ast.TemplateLit:
		return r.target.Template(r, x)
	case *ast.ParenExpr:
		return "(" + r.Expr(x.X) + ")"
	default:
		r.log.Debug("unhandled expression kind",
			zap.String("kind", e.Kind()),
			zap.String("target", r.target.Name()))
		return r.target.UnsupportedExpr(e.Kind())
	}
}

// ExprList translates a comma-joined argument list.
func (r *Run) ExprList(list []ast.Expr) string {
	parts := make([]string, len(list))
	for i, e := range list {
		parts[i] = r.Expr(e)
	}
	return strings.Join(parts, ", ")
}

// Placeholder writes the single needs-manual-follow-up line for a node
// kind no visitor handles.
func (r *Run) Placeholder(category string, n ast.Node) {
	kind := "unknown"
	if n != nil {
		kind = n.Kind()
	}
	r.log.Debug("unhandled node kind",
		zap.String("category", category),
		zap.String("kind", kind),
		zap.String("target", r.target.Name()))
	r.W.Linef("%s", r.target.LineComment(fmt.Sprintf("typeshift: unhandled %s kind %q", category, kind)))
}

// LeadComments re-emits a node's leading non-doc comments.
func (r *Run) LeadComments(cs []ast.Comment) {
	if !r.Opts.PreserveComments {
		return
	}
	for _, c := range cs {
		if c.Doc {
			continue
		}
		for _, line := range CommentLines(c) {
			r.W.Linef("%s", r.target.LineComment(line))
		}
	}
}
