package ast

type Ident struct {
	Name string
	Src  Span
}

func (*Ident) Kind() string { return "identifier" }
func (e *Ident) Pos() Span  { return e.Src }
func (*Ident) exprNode()    {}

type StringLit struct {
	Value string
	Src   Span
}

func (*StringLit) Kind() string { return "string" }
func (e *StringLit) Pos() Span  { return e.Src }
func (*StringLit) exprNode()    {}

// NumberLit keeps the literal text as written; no numeric normalization.
type NumberLit struct {
	Value string
	Src   Span
}

func (*NumberLit) Kind() string { return "number" }
func (e *NumberLit) Pos() Span  { return e.Src }
func (*NumberLit) exprNode()    {}

type BoolLit struct {
	Value bool
	Src   Span
}

func (*BoolLit) Kind() string { return "boolean" }
func (e *BoolLit) Pos() Span  { return e.Src }
func (*BoolLit) exprNode()    {}

// NullLit covers both null and undefined.
type NullLit struct {
	Undefined bool
	Src       Span
}

func (*NullLit) Kind() string { return "null" }
func (e *NullLit) Pos() Span  { return e.Src }
func (*NullLit) exprNode()    {}

type PropertyExpr struct {
	X    Expr
	Name string
	Src  Span
}

func (*PropertyExpr) Kind() string { return "property-access" }
func (e *PropertyExpr) Pos() Span  { return e.Src }
func (*PropertyExpr) exprNode()    {}

type IndexExpr struct {
	X     Expr
	Index Expr
	Src   Span
}

func (*IndexExpr) Kind() string { return "index" }
func (e *IndexExpr) Pos() Span  { return e.Src }
func (*IndexExpr) exprNode()    {}

type CallExpr struct {
	Fun  Expr
	Args []Expr
	Src  Span
}

func (*CallExpr) Kind() string { return "call" }
func (e *CallExpr) Pos() Span  { return e.Src }
func (*CallExpr) exprNode()    {}

type NewExpr struct {
	Name string
	Args []Expr
	Src  Span
}

func (*NewExpr) Kind() string { return "new" }
func (e *NewExpr) Pos() Span  { return e.Src }
func (*NewExpr) exprNode()    {}

type ArrayLit struct {
	Elems []Expr
	Src   Span
}

func (*ArrayLit) Kind() string { return "array-literal" }
func (e *ArrayLit) Pos() Span  { return e.Src }
func (*ArrayLit) exprNode()    {}

type ObjectProp struct {
	Key   string
	Value Expr
}

// ObjectLit preserves property order as written.
type ObjectLit struct {
	Props []ObjectProp
	Src   Span
}

func (*ObjectLit) Kind() string { return "object-literal" }
func (e *ObjectLit) Pos() Span  { return e.Src }
func (*ObjectLit) exprNode()    {}

type BinaryExpr struct {
	Op  string
	X   Expr
	Y   Expr
	Src Span
}

func (*BinaryExpr) Kind() string { return "binary" }
func (e *BinaryExpr) Pos() Span  { return e.Src }
func (*BinaryExpr) exprNode()    {}

type AssignExpr struct {
	Op     string // =, +=, -=, *=, /=
	Target Expr
	Value  Expr
	Src    Span
}

func (*AssignExpr) Kind() string { return "assign" }
func (e *AssignExpr) Pos() Span  { return e.Src }
func (*AssignExpr) exprNode()    {}

type UnaryExpr struct {
	Op      string
	X       Expr
	Postfix bool // i++ / i--
	Src     Span
}

func (*UnaryExpr) Kind() string { return "unary" }
func (e *UnaryExpr) Pos() Span  { return e.Src }
func (*UnaryExpr) exprNode()    {}

type CondExpr struct {
	Cond Expr
	Then Expr
	Else Expr
	Src  Span
}

func (*CondExpr) Kind() string { return "conditional" }
func (e *CondExpr) Pos() Span  { return e.Src }
func (*CondExpr) exprNode()    {}

// ArrowExpr body is either an Expr or a *BlockStmt.
type ArrowExpr struct {
	Params []*Param
	Expr   Expr
	Block  *BlockStmt
	Async  bool
	Src    Span
}

func (*ArrowExpr) Kind() string { return "arrow" }
func (e *ArrowExpr) Pos() Span  { return e.Src }
func (*ArrowExpr) exprNode()    {}

type AwaitExpr struct {
	X   Expr
	Src Span
}

func (*AwaitExpr) Kind() string { return "await" }
func (e *AwaitExpr) Pos() Span  { return e.Src }
func (*AwaitExpr) exprNode()    {}

// TemplateLit holds len(Exprs)+1 literal chunks interleaved with the
// substitution expressions.
type TemplateLit struct {
	Chunks []string
	Exprs  []Expr
	Src    Span
}

func (*TemplateLit) Kind() string { return "template" }
func (e *TemplateLit) Pos() Span  { return e.Src }
func (*TemplateLit) exprNode()    {}

type ParenExpr struct {
	X   Expr
	Src Span
}

func (*ParenExpr) Kind() string { return "paren" }
func (e *ParenExpr) Pos() Span  { return e.Src }
func (*ParenExpr) exprNode()    {}
