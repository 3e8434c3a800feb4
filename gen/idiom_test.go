package gen

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/typeshift-io/typeshift/ast"
)

func countingFor(init ast.Stmt, cond ast.Expr, post ast.Stmt) *ast.ForStmt {
	return &ast.ForStmt{
		Init: init,
		Cond: cond,
		Post: post,
		Body: &ast.BlockStmt{},
	}
}

func ident(name string) *ast.Ident { return &ast.Ident{Name: name} }

func num(v string) *ast.NumberLit { return &ast.NumberLit{Value: v} }

func TestMatchCountingLoop(t *testing.T) {
	canonical := countingFor(
		&ast.VarDecl{Name: "i", Init: num("0")},
		&ast.BinaryExpr{Op: "<", X: ident("i"), Y: num("10")},
		&ast.ExprStmt{X: &ast.UnaryExpr{Op: "++", X: ident("i"), Postfix: true}},
	)
	loop := matchCountingLoop(canonical)
	if loop == nil {
		t.Fatal("matchCountingLoop() = nil for canonical shape")
	}
	if loop.Var != "i" || loop.Start != "0" {
		t.Errorf("matched loop = {%s %s}, want {i 0}", loop.Var, loop.Start)
	}

	plusEquals := countingFor(
		&ast.VarDecl{Name: "k", Init: num("2")},
		&ast.BinaryExpr{Op: "<", X: ident("k"), Y: ident("n")},
		&ast.ExprStmt{X: &ast.AssignExpr{Op: "+=", Target: ident("k"), Value: num("1")}},
	)
	if loop := matchCountingLoop(plusEquals); loop == nil {
		t.Error("matchCountingLoop() = nil for k += 1 increment")
	} else if loop.Start != "2" {
		t.Errorf("Start = %q, want %q", loop.Start, "2")
	}
}

func TestMatchCountingLoop_Rejects(t *testing.T) {
	tests := []struct {
		name string
		stmt *ast.ForStmt
	}{
		{
			"const binding",
			countingFor(
				&ast.VarDecl{Name: "i", Const: true, Init: num("0")},
				&ast.BinaryExpr{Op: "<", X: ident("i"), Y: num("10")},
				&ast.ExprStmt{X: &ast.UnaryExpr{Op: "++", X: ident("i"), Postfix: true}},
			),
		},
		{
			"non-integer start",
			countingFor(
				&ast.VarDecl{Name: "i", Init: num("0.5")},
				&ast.BinaryExpr{Op: "<", X: ident("i"), Y: num("10")},
				&ast.ExprStmt{X: &ast.UnaryExpr{Op: "++", X: ident("i"), Postfix: true}},
			),
		},
		{
			"wrong comparison",
			countingFor(
				&ast.VarDecl{Name: "i", Init: num("0")},
				&ast.BinaryExpr{Op: "<=", X: ident("i"), Y: num("10")},
				&ast.ExprStmt{X: &ast.UnaryExpr{Op: "++", X: ident("i"), Postfix: true}},
			),
		},
		{
			"condition on another variable",
			countingFor(
				&ast.VarDecl{Name: "i", Init: num("0")},
				&ast.BinaryExpr{Op: "<", X: ident("j"), Y: num("10")},
				&ast.ExprStmt{X: &ast.UnaryExpr{Op: "++", X: ident("i"), Postfix: true}},
			),
		},
		{
			"step of two",
			countingFor(
				&ast.VarDecl{Name: "i", Init: num("0")},
				&ast.BinaryExpr{Op: "<", X: ident("i"), Y: num("10")},
				&ast.ExprStmt{X: &ast.AssignExpr{Op: "+=", Target: ident("i"), Value: num("2")}},
			),
		},
		{
			"call bound",
			countingFor(
				&ast.VarDecl{Name: "i", Init: num("0")},
				&ast.BinaryExpr{Op: "<", X: ident("i"), Y: &ast.CallExpr{
					Fun: &ast.PropertyExpr{X: ident("arr"), Name: "length"},
				}},
				&ast.ExprStmt{X: &ast.UnaryExpr{Op: "++", X: ident("i"), Postfix: true}},
			),
		},
		{
			"missing initializer",
			countingFor(
				nil,
				&ast.BinaryExpr{Op: "<", X: ident("i"), Y: num("10")},
				&ast.ExprStmt{X: &ast.UnaryExpr{Op: "++", X: ident("i"), Postfix: true}},
			),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if loop := matchCountingLoop(tt.stmt); loop != nil {
				t.Errorf("matchCountingLoop() = %+v, want nil", loop)
			}
		})
	}
}

func TestIsValueObject(t *testing.T) {
	roField := func(name string) *ast.FieldDecl {
		return &ast.FieldDecl{Name: name, ReadOnly: true}
	}
	tests := []struct {
		name string
		decl *ast.ClassDecl
		want bool
	}{
		{
			"readonly fields only",
			&ast.ClassDecl{Name: "Point", Members: []ast.Member{roField("x"), roField("y")}},
			true,
		},
		{
			"readonly fields with one constructor",
			&ast.ClassDecl{Name: "Pair", Members: []ast.Member{roField("a"), &ast.CtorDecl{}}},
			true,
		},
		{
			"mutable field",
			&ast.ClassDecl{Name: "Counter", Members: []ast.Member{&ast.FieldDecl{Name: "n"}}},
			false,
		},
		{
			"static field",
			&ast.ClassDecl{Name: "C", Members: []ast.Member{&ast.FieldDecl{Name: "n", ReadOnly: true, Static: true}}},
			false,
		},
		{
			"has a method",
			&ast.ClassDecl{Name: "C", Members: []ast.Member{roField("x"), &ast.MethodDecl{Name: "m"}}},
			false,
		},
		{
			"no fields",
			&ast.ClassDecl{Name: "Empty"},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValueObject(tt.decl); got != tt.want {
				t.Errorf("IsValueObject() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrimTrailingBreak(t *testing.T) {
	body := []ast.Stmt{
		&ast.ExprStmt{X: ident("x")},
		&ast.BreakStmt{},
	}
	if got := TrimTrailingBreak(body); len(got) != 1 {
		t.Errorf("TrimTrailingBreak() kept %d statements, want 1", len(got))
	}
	noBreak := []ast.Stmt{&ast.ExprStmt{X: ident("x")}}
	if got := TrimTrailingBreak(noBreak); len(got) != 1 {
		t.Errorf("TrimTrailingBreak() without break kept %d statements, want 1", len(got))
	}
}

func TestCommentLines(t *testing.T) {
	tests := []struct {
		name    string
		comment ast.Comment
		want    []string
	}{
		{
			"line comment",
			ast.Comment{Text: "// keep going"},
			[]string{"keep going"},
		},
		{
			"doc block with gutters",
			ast.Comment{Text: "/**\n * A point.\n *\n * Immutable.\n */", Block: true},
			[]string{"A point.", "", "Immutable."},
		},
		{
			"plain block",
			ast.Comment{Text: "/* inline */", Block: true},
			[]string{"inline"},
		},
		{
			"blank edges dropped",
			ast.Comment{Text: "/*\n\n  middle\n\n*/", Block: true},
			[]string{"middle"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, CommentLines(tt.comment)); diff != "" {
				t.Errorf("CommentLines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
