// Package ast models one parsed TypeScript-like compilation unit as a
// closed set of declaration, statement and expression nodes. The tree is
// produced by an upstream parser frontend and consumed read-only by the
// generators; nothing in this package mutates a decoded tree.
package ast

// Span is the half-open byte range a node covers in the original source.
// Text keeps the raw snippet so callers can fall back to verbatim output.
type Span struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text,omitempty"`
}

// Comment is one leading comment attached to a node. Doc marks a
// documentation-style block comment (/** ... */).
type Comment struct {
	Text  string `json:"text"`
	Block bool   `json:"block,omitempty"`
	Doc   bool   `json:"doc,omitempty"`
}

type Node interface {
	Kind() string
	Pos() Span
}

// Decl, Stmt and Expr partition the node set by category. Declarations
// also satisfy Stmt: the compilation unit is a flat statement list and
// TypeScript allows declarations anywhere a statement may appear.
type Decl interface {
	Node
	declNode()
}

type Stmt interface {
	Node
	stmtNode()
}

type Expr interface {
	Node
	exprNode()
}

// Member is a class body member: field, method or constructor.
type Member interface {
	Node
	memberNode()
}

// IfaceMember is an interface body member: method or property signature.
type IfaceMember interface {
	Node
	ifaceMemberNode()
}

// File is the compilation unit root.
type File struct {
	Name  string `json:"name,omitempty"`
	Stmts []Stmt
	Src   Span
}

func (*File) Kind() string { return "file" }
func (f *File) Pos() Span  { return f.Src }

// Param is one function, method or constructor parameter.
type Param struct {
	Name     string
	Type     *TypeNode
	Optional bool
	Default  Expr
}

type ClassDecl struct {
	Name       string
	Export     bool
	Abstract   bool
	Extends    *TypeNode
	Implements []*TypeNode
	Members    []Member
	Doc        *Comment
	Leading    []Comment
	Src        Span
}

func (*ClassDecl) Kind() string { return "class" }
func (d *ClassDecl) Pos() Span  { return d.Src }
func (*ClassDecl) declNode()    {}
func (*ClassDecl) stmtNode()    {}

type FieldDecl struct {
	Name     string
	Type     *TypeNode
	ReadOnly bool
	Static   bool
	Init     Expr
	Doc      *Comment
	Leading  []Comment
	Src      Span
}

func (*FieldDecl) Kind() string { return "field" }
func (d *FieldDecl) Pos() Span  { return d.Src }
func (*FieldDecl) memberNode()  {}

type MethodDecl struct {
	Name    string
	Params  []*Param
	Return  *TypeNode
	Async   bool
	Static  bool
	Body    *BlockStmt
	Doc     *Comment
	Leading []Comment
	Src     Span
}

func (*MethodDecl) Kind() string { return "method" }
func (d *MethodDecl) Pos() Span  { return d.Src }
func (*MethodDecl) memberNode()  {}

type CtorDecl struct {
	Params  []*Param
	Body    *BlockStmt
	Doc     *Comment
	Leading []Comment
	Src     Span
}

func (*CtorDecl) Kind() string { return "constructor" }
func (d *CtorDecl) Pos() Span  { return d.Src }
func (*CtorDecl) memberNode()  {}

type InterfaceDecl struct {
	Name    string
	Export  bool
	Extends []*TypeNode
	Members []IfaceMember
	Doc     *Comment
	Leading []Comment
	Src     Span
}

func (*InterfaceDecl) Kind() string { return "interface" }
func (d *InterfaceDecl) Pos() Span  { return d.Src }
func (*InterfaceDecl) declNode()    {}
func (*InterfaceDecl) stmtNode()    {}

type MethodSig struct {
	Name    string
	Params  []*Param
	Return  *TypeNode
	Doc     *Comment
	Leading []Comment
	Src     Span
}

func (*MethodSig) Kind() string { return "method-signature" }
func (d *MethodSig) Pos() Span  { return d.Src }
func (*MethodSig) ifaceMemberNode() {}

type PropertySig struct {
	Name     string
	Type     *TypeNode
	ReadOnly bool
	Doc      *Comment
	Leading  []Comment
	Src      Span
}

func (*PropertySig) Kind() string { return "property-signature" }
func (d *PropertySig) Pos() Span  { return d.Src }
func (*PropertySig) ifaceMemberNode() {}

type EnumMember struct {
	Name  string
	Value Expr
}

type EnumDecl struct {
	Name    string
	Export  bool
	Members []EnumMember
	Doc     *Comment
	Leading []Comment
	Src     Span
}

func (*EnumDecl) Kind() string { return "enum" }
func (d *EnumDecl) Pos() Span  { return d.Src }
func (*EnumDecl) declNode()    {}
func (*EnumDecl) stmtNode()    {}

type FuncDecl struct {
	Name    string
	Export  bool
	Async   bool
	Params  []*Param
	Return  *TypeNode
	Body    *BlockStmt
	Doc     *Comment
	Leading []Comment
	Src     Span
}

func (*FuncDecl) Kind() string { return "function" }
func (d *FuncDecl) Pos() Span  { return d.Src }
func (*FuncDecl) declNode()    {}
func (*FuncDecl) stmtNode()    {}

// VarDecl covers both top-level bindings and local let/const statements.
type VarDecl struct {
	Name    string
	Const   bool
	Export  bool
	Type    *TypeNode
	Init    Expr
	Doc     *Comment
	Leading []Comment
	Src     Span
}

func (*VarDecl) Kind() string { return "variable" }
func (d *VarDecl) Pos() Span  { return d.Src }
func (*VarDecl) declNode()    {}
func (*VarDecl) stmtNode()    {}
