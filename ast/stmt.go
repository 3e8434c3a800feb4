package ast

type BlockStmt struct {
	Stmts   []Stmt
	Leading []Comment
	Src     Span
}

func (*BlockStmt) Kind() string { return "block" }
func (s *BlockStmt) Pos() Span  { return s.Src }
func (*BlockStmt) stmtNode()    {}

type ExprStmt struct {
	X       Expr
	Leading []Comment
	Src     Span
}

func (*ExprStmt) Kind() string { return "expression-statement" }
func (s *ExprStmt) Pos() Span  { return s.Src }
func (*ExprStmt) stmtNode()    {}

type ReturnStmt struct {
	X       Expr // nil for a bare return
	Leading []Comment
	Src     Span
}

func (*ReturnStmt) Kind() string { return "return" }
func (s *ReturnStmt) Pos() Span  { return s.Src }
func (*ReturnStmt) stmtNode()    {}

// IfStmt chains else-if branches through Else, which is either another
// *IfStmt or a *BlockStmt.
type IfStmt struct {
	Cond    Expr
	Then    *BlockStmt
	Else    Stmt
	Leading []Comment
	Src     Span
}

func (*IfStmt) Kind() string { return "if" }
func (s *IfStmt) Pos() Span  { return s.Src }
func (*IfStmt) stmtNode()    {}

type WhileStmt struct {
	Cond    Expr
	Body    *BlockStmt
	Leading []Comment
	Src     Span
}

func (*WhileStmt) Kind() string { return "while" }
func (s *WhileStmt) Pos() Span  { return s.Src }
func (*WhileStmt) stmtNode()    {}

// ForStmt is the general C-style counting loop. Init and Post may be nil.
type ForStmt struct {
	Init    Stmt
	Cond    Expr
	Post    Stmt
	Body    *BlockStmt
	Leading []Comment
	Src     Span
}

func (*ForStmt) Kind() string { return "for" }
func (s *ForStmt) Pos() Span  { return s.Src }
func (*ForStmt) stmtNode()    {}

type ForOfStmt struct {
	Name    string
	Iter    Expr
	Body    *BlockStmt
	Leading []Comment
	Src     Span
}

func (*ForOfStmt) Kind() string { return "for-of" }
func (s *ForOfStmt) Pos() Span  { return s.Src }
func (*ForOfStmt) stmtNode()    {}

// CaseClause with no Values is the default clause.
type CaseClause struct {
	Values []Expr
	Body   []Stmt
	Src    Span
}

func (*CaseClause) Kind() string { return "case" }
func (s *CaseClause) Pos() Span  { return s.Src }

type SwitchStmt struct {
	Tag     Expr
	Cases   []*CaseClause
	Leading []Comment
	Src     Span
}

func (*SwitchStmt) Kind() string { return "switch" }
func (s *SwitchStmt) Pos() Span  { return s.Src }
func (*SwitchStmt) stmtNode()    {}

type TryStmt struct {
	Body      *BlockStmt
	CatchName string
	Catch     *BlockStmt
	Finally   *BlockStmt
	Leading   []Comment
	Src       Span
}

func (*TryStmt) Kind() string { return "try" }
func (s *TryStmt) Pos() Span  { return s.Src }
func (*TryStmt) stmtNode()    {}

type ThrowStmt struct {
	X       Expr
	Leading []Comment
	Src     Span
}

func (*ThrowStmt) Kind() string { return "throw" }
func (s *ThrowStmt) Pos() Span  { return s.Src }
func (*ThrowStmt) stmtNode()    {}

type BreakStmt struct {
	Leading []Comment
	Src     Span
}

func (*BreakStmt) Kind() string { return "break" }
func (s *BreakStmt) Pos() Span  { return s.Src }
func (*BreakStmt) stmtNode()    {}

type ContinueStmt struct {
	Leading []Comment
	Src     Span
}

func (*ContinueStmt) Kind() string { return "continue" }
func (s *ContinueStmt) Pos() Span  { return s.Src }
func (*ContinueStmt) stmtNode()    {}
