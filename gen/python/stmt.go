package python

import (
	"strings"

	"github.com/swipe-io/strcase"

	"github.com/typeshift-io/typeshift/ast"
	"github.com/typeshift-io/typeshift/gen"
)

func (t *Target) ExprStatement(r *gen.Run, s *ast.ExprStmt) {
	r.W.Linef("%s", r.Expr(s.X))
}

func (t *Target) Return(r *gen.Run, s *ast.ReturnStmt) {
	if s.X == nil {
		r.W.Linef("return")
		return
	}
	r.W.Linef("return %s", r.Expr(s.X))
}

func (t *Target) If(r *gen.Run, s *ast.IfStmt) {
	t.ifChain(r, s, "if")
}

// ifChain flattens else-if ladders into elif branches.
func (t *Target) ifChain(r *gen.Run, s *ast.IfStmt, keyword string) {
	r.W.Linef("%s %s:", keyword, r.Expr(s.Cond))
	t.body(r, s.Then)
	switch e := s.Else.(type) {
	case nil:
	case *ast.IfStmt:
		t.ifChain(r, e, "elif")
	case *ast.BlockStmt:
		r.W.Linef("else:")
		t.body(r, e)
	default:
		r.W.Linef("else:")
		r.W.In()
		r.Stmt(e)
		r.W.Out()
	}
}

func (t *Target) While(r *gen.Run, s *ast.WhileStmt) {
	r.W.Linef("while %s:", r.Expr(s.Cond))
	t.body(r, s.Body)
}

func (t *Target) RangeLoop(r *gen.Run, loop *gen.CountingLoop) {
	bound := r.Expr(loop.Bound)
	if loop.Start == "0" {
		r.W.Linef("for %s in range(%s):", strcase.ToSnake(loop.Var), bound)
	} else {
		r.W.Linef("for %s in range(%s, %s):", strcase.ToSnake(loop.Var), loop.Start, bound)
	}
	t.body(r, loop.Body)
}

func (t *Target) ForEach(r *gen.Run, s *ast.ForOfStmt) {
	r.W.Linef("for %s in %s:", strcase.ToSnake(s.Name), r.Expr(s.Iter))
	t.body(r, s.Body)
}

// Switch renders match statements on 3.10 and newer, an if-elif ladder
// otherwise. A trailing break inside a case body is dropped since
// neither form falls through.
func (t *Target) Switch(r *gen.Run, s *ast.SwitchStmt) {
	if t.matchSupported(r) {
		t.matchSwitch(r, s)
		return
	}
	t.ladderSwitch(r, s)
}

func (t *Target) matchSwitch(r *gen.Run, s *ast.SwitchStmt) {
	r.W.Linef("match %s:", r.Expr(s.Tag))
	r.W.In()
	for _, c := range s.Cases {
		if len(c.Values) == 0 {
			r.W.Linef("case _:")
		} else {
			values := make([]string, len(c.Values))
			for i, v := range c.Values {
				values[i] = r.Expr(v)
			}
			r.W.Linef("case %s:", strings.Join(values, " | "))
		}
		t.stmts(r, gen.TrimTrailingBreak(c.Body))
	}
	r.W.Out()
}

func (t *Target) ladderSwitch(r *gen.Run, s *ast.SwitchStmt) {
	tag := r.Expr(s.Tag)
	keyword := "if"
	var fallback *ast.CaseClause
	for i := range s.Cases {
		c := s.Cases[i]
		if len(c.Values) == 0 {
			fallback = c
			continue
		}
		conds := make([]string, len(c.Values))
		for j, v := range c.Values {
			conds[j] = tag + " == " + r.Expr(v)
		}
		r.W.Linef("%s %s:", keyword, strings.Join(conds, " or "))
		t.stmts(r, gen.TrimTrailingBreak(c.Body))
		keyword = "elif"
	}
	if fallback != nil {
		if keyword == "if" {
			// only a default clause, no condition to ladder on
			r.Stmts(gen.TrimTrailingBreak(fallback.Body))
			return
		}
		r.W.Linef("else:")
		t.stmts(r, gen.TrimTrailingBreak(fallback.Body))
	}
}

func (t *Target) Try(r *gen.Run, s *ast.TryStmt) {
	if s.Catch == nil && s.Finally == nil {
		if s.Body != nil {
			r.Stmts(s.Body.Stmts)
		}
		return
	}
	r.W.Linef("try:")
	t.body(r, s.Body)
	if s.Catch != nil {
		catchName := "err"
		if s.CatchName != "" {
			catchName = strcase.ToSnake(s.CatchName)
		}
		r.W.Linef("except Exception as %s:", catchName)
		t.body(r, s.Catch)
	}
	if s.Finally != nil {
		r.W.Linef("finally:")
		t.body(r, s.Finally)
	}
}

func (t *Target) Throw(r *gen.Run, s *ast.ThrowStmt) {
	r.W.Linef("raise %s", r.Expr(s.X))
}

func (t *Target) Break(r *gen.Run) {
	r.W.Linef("break")
}

func (t *Target) Continue(r *gen.Run) {
	r.W.Linef("continue")
}
