package gen

import (
	"github.com/typeshift-io/typeshift/ast"
)

// Target is the pluggable per-language strategy: a type mapper plus the
// idiom and syntax rules of one output language. The engine owns
// traversal, dispatch and the degradation policy; a Target only ever
// renders the construct it is handed. Adding a target language means
// implementing this interface and registering it, with no change to the
// traversal logic.
//
// Declaration and statement methods append lines through the Run's
// writer; expression methods are pure and return the translated text.
type Target interface {
	Name() string
	FileExtension() string

	// Header returns the leading lines of the output file (generated-by
	// marker, package/namespace). Imports returns the formatted import
	// block from the run's accumulated set, and Preamble any module-level
	// scaffolding seeded by the analysis pass. End is called after the
	// last top-level declaration.
	Header(r *Run, file *ast.File) []string
	Imports(r *Run) []string
	Preamble(r *Run) []string
	End(r *Run)

	// Declarations.
	Class(r *Run, d *ast.ClassDecl)
	Interface(r *Run, d *ast.InterfaceDecl)
	Enum(r *Run, d *ast.EnumDecl)
	Function(r *Run, d *ast.FuncDecl)
	Variable(r *Run, d *ast.VarDecl, topLevel bool)

	// Statements.
	ExprStatement(r *Run, s *ast.ExprStmt)
	Return(r *Run, s *ast.ReturnStmt)
	If(r *Run, s *ast.IfStmt)
	While(r *Run, s *ast.WhileStmt)
	// RangeLoop renders a counting loop the engine has already matched
	// against the canonical [start, bound) shape. Unmatched loops never
	// reach the target: the engine transliterates them itself.
	RangeLoop(r *Run, loop *CountingLoop)
	ForEach(r *Run, s *ast.ForOfStmt)
	Switch(r *Run, s *ast.SwitchStmt)
	Try(r *Run, s *ast.TryStmt)
	Throw(r *Run, s *ast.ThrowStmt)
	Break(r *Run)
	Continue(r *Run)

	// Expressions.
	Ident(r *Run, e *ast.Ident) string
	StringLit(e *ast.StringLit) string
	BoolLit(e *ast.BoolLit) string
	NullLit(e *ast.NullLit) string
	Property(r *Run, e *ast.PropertyExpr) string
	Call(r *Run, e *ast.CallExpr) string
	New(r *Run, e *ast.NewExpr) string
	Array(r *Run, e *ast.ArrayLit) string
	Object(r *Run, e *ast.ObjectLit) string
	Binary(r *Run, e *ast.BinaryExpr) string
	Assign(r *Run, e *ast.AssignExpr) string
	Unary(r *Run, e *ast.UnaryExpr) string
	Cond(r *Run, e *ast.CondExpr) string
	Arrow(r *Run, e *ast.ArrowExpr) string
	Await(r *Run, e *ast.AwaitExpr) string
	Template(r *Run, e *ast.TemplateLit) string

	// MapType converts one type annotation to a target type expression,
	// registering imports on the run as a side effect. It never fails:
	// unrecognized shapes yield the target's untyped placeholder.
	MapType(r *Run, t *ast.TypeNode) string

	// LineComment renders one comment line; the engine uses it both for
	// preserved comments and for unhandled-kind placeholders.
	LineComment(text string) string
	// UnsupportedExpr is the inline placeholder for an expression kind
	// the dispatcher does not recognize.
	UnsupportedExpr(kind string) string
}

// CountingLoop is the structured result of matching a C-style for loop
// against the shape `for (let i = <int>; i < bound; i++)`.
type CountingLoop struct {
	Var   string
	Start string
	Bound ast.Expr
	Body  *ast.BlockStmt
}
