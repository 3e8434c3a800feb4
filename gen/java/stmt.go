package java

import (
	"github.com/swipe-io/strcase"

	"github.com/typeshift-io/typeshift/ast"
	"github.com/typeshift-io/typeshift/gen"
)

func (t *Target) ExprStatement(r *gen.Run, s *ast.ExprStmt) {
	r.W.Linef("%s;", r.Expr(s.X))
}

func (t *Target) Return(r *gen.Run, s *ast.ReturnStmt) {
	if s.X == nil {
		r.W.Linef("return;")
		return
	}
	r.W.Linef("return %s;", r.Expr(s.X))
}

func (t *Target) block(r *gen.Run, b *ast.BlockStmt) {
	r.W.In()
	if b != nil {
		r.Stmts(b.Stmts)
	}
	r.W.Out()
}

func (t *Target) If(r *gen.Run, s *ast.IfStmt) {
	t.ifChain(r, s, "if")
}

func (t *Target) ifChain(r *gen.Run, s *ast.IfStmt, keyword string) {
	r.W.Linef("%s (%s) {", keyword, r.Expr(s.Cond))
	t.block(r, s.Then)
	switch e := s.Else.(type) {
	case nil:
		r.W.Linef("}")
	case *ast.IfStmt:
		t.ifChain(r, e, "} else if")
	case *ast.BlockStmt:
		r.W.Linef("} else {")
		t.block(r, e)
		r.W.Linef("}")
	default:
		r.W.Linef("} else {")
		r.W.In()
		r.Stmt(e)
		r.W.Out()
		r.W.Linef("}")
	}
}

func (t *Target) While(r *gen.Run, s *ast.WhileStmt) {
	r.W.Linef("while (%s) {", r.Expr(s.Cond))
	t.block(r, s.Body)
	r.W.Linef("}")
}

func (t *Target) RangeLoop(r *gen.Run, loop *gen.CountingLoop) {
	name := strcase.ToLowerCamel(loop.Var)
	r.W.Linef("for (int %s = %s; %s < %s; %s++) {", name, loop.Start, name, r.Expr(loop.Bound), name)
	t.block(r, loop.Body)
	r.W.Linef("}")
}

func (t *Target) ForEach(r *gen.Run, s *ast.ForOfStmt) {
	r.W.Linef("for (var %s : %s) {", strcase.ToLowerCamel(s.Name), r.Expr(s.Iter))
	t.block(r, s.Body)
	r.W.Linef("}")
}

// Switch keeps the classic labeled form; source break statements carry
// over unchanged, so fallthrough semantics survive.
func (t *Target) Switch(r *gen.Run, s *ast.SwitchStmt) {
	r.W.Linef("switch (%s) {", r.Expr(s.Tag))
	r.W.In()
	for _, c := range s.Cases {
		if len(c.Values) == 0 {
			r.W.Linef("default:")
		} else {
			for _, v := range c.Values {
				r.W.Linef("case %s:", r.Expr(v))
			}
		}
		r.W.In()
		r.Stmts(c.Body)
		r.W.Out()
	}
	r.W.Out()
	r.W.Linef("}")
}

func (t *Target) Try(r *gen.Run, s *ast.TryStmt) {
	if s.Catch == nil && s.Finally == nil {
		if s.Body != nil {
			r.Stmts(s.Body.Stmts)
		}
		return
	}
	r.W.Linef("try {")
	t.block(r, s.Body)
	if s.Catch != nil {
		catchName := "err"
		if s.CatchName != "" {
			catchName = strcase.ToLowerCamel(s.CatchName)
		}
		r.W.Linef("} catch (Exception %s) {", catchName)
		t.block(r, s.Catch)
	}
	if s.Finally != nil {
		r.W.Linef("} finally {")
		t.block(r, s.Finally)
	}
	r.W.Linef("}")
}

func (t *Target) Throw(r *gen.Run, s *ast.ThrowStmt) {
	r.W.Linef("throw %s;", r.Expr(s.X))
}

func (t *Target) Break(r *gen.Run) {
	r.W.Linef("break;")
}

func (t *Target) Continue(r *gen.Run) {
	r.W.Linef("continue;")
}
