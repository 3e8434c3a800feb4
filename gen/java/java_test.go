package java_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/typeshift-io/typeshift/ast"
	"github.com/typeshift-io/typeshift/gen"
	"github.com/typeshift-io/typeshift/gen/java"
	"github.com/typeshift-io/typeshift/importer"
)

func defaultOpts() gen.Options {
	return gen.Options{
		TargetVersion:            "17",
		NamespacePrefix:          "com.example.app",
		PreserveComments:         true,
		UseIdiomaticValueObjects: true,
		EmitTypedSignatures:      true,
	}
}

func generate(t *testing.T, file *ast.File, opts gen.Options) string {
	t.Helper()
	out, err := gen.New(java.New(), opts).Generate(file)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func assertOutput(t *testing.T, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("output mismatch (-want +got):\n%s",
			cmp.Diff(strings.Split(want, "\n"), strings.Split(got, "\n")))
	}
}

func numberType() *ast.TypeNode {
	return &ast.TypeNode{Kind: ast.TypeName, Name: ast.Number}
}

func stringType() *ast.TypeNode {
	return &ast.TypeNode{Kind: ast.TypeName, Name: ast.String}
}

func voidType() *ast.TypeNode {
	return &ast.TypeNode{Kind: ast.TypeName, Name: ast.Void}
}

func TestRecord(t *testing.T) {
	file := &ast.File{Stmts: []ast.Stmt{
		&ast.ClassDecl{
			Name: "Point",
			Members: []ast.Member{
				&ast.FieldDecl{Name: "x", ReadOnly: true, Type: numberType()},
				&ast.FieldDecl{Name: "y", ReadOnly: true, Type: numberType()},
			},
		},
	}}

	want := `// Code generated by typeshift. DO NOT EDIT.

package com.example.app;

public record Point(double x, double y) {
}
`
	assertOutput(t, generate(t, file, defaultOpts()), want)
}

func TestRecord_OldVersionFallsBackToClass(t *testing.T) {
	file := &ast.File{Stmts: []ast.Stmt{
		&ast.ClassDecl{
			Name: "Point",
			Members: []ast.Member{
				&ast.FieldDecl{Name: "x", ReadOnly: true, Type: numberType()},
			},
		},
	}}

	opts := defaultOpts()
	opts.TargetVersion = "11"

	want := `// Code generated by typeshift. DO NOT EDIT.

package com.example.app;

public class Point {
    private final double x;

    public Point(double x) {
        this.x = x;
    }

    public double getX() {
        return this.x;
    }
}
`
	assertOutput(t, generate(t, file, opts), want)
}

func TestClassAccessors(t *testing.T) {
	file := &ast.File{Stmts: []ast.Stmt{
		&ast.ClassDecl{
			Name: "Counter",
			Members: []ast.Member{
				&ast.FieldDecl{Name: "count", Type: numberType(), Init: &ast.NumberLit{Value: "0"}},
				&ast.MethodDecl{
					Name:   "increment",
					Return: voidType(),
					Body: &ast.BlockStmt{Stmts: []ast.Stmt{
						&ast.ExprStmt{X: &ast.AssignExpr{
							Op:     "+=",
							Target: &ast.PropertyExpr{X: &ast.Ident{Name: "this"}, Name: "count"},
							Value:  &ast.NumberLit{Value: "1"},
						}},
					}},
				},
			},
		},
	}}

	want := `// Code generated by typeshift. DO NOT EDIT.

package com.example.app;

public class Counter {
    private double count = 0;

    public Counter(double count) {
        this.count = count;
    }

    public double getCount() {
        return this.count;
    }

    public void setCount(double value) {
        this.count = value;
    }

    public void increment() {
        this.count += 1;
    }
}
`
	assertOutput(t, generate(t, file, defaultOpts()), want)
}

func TestLooseDeclarationsGetHolderClass(t *testing.T) {
	file := &ast.File{Stmts: []ast.Stmt{
		&ast.VarDecl{Name: "maxRetries", Const: true, Type: numberType(), Init: &ast.NumberLit{Value: "3"}},
		&ast.FuncDecl{
			Name:   "greet",
			Params: []*ast.Param{{Name: "name", Type: stringType()}},
			Return: stringType(),
			Body: &ast.BlockStmt{Stmts: []ast.Stmt{
				&ast.ReturnStmt{X: &ast.TemplateLit{
					Chunks: []string{"Hello, ", "!"},
					Exprs:  []ast.Expr{&ast.Ident{Name: "name"}},
				}},
			}},
		},
	}}

	want := `// Code generated by typeshift. DO NOT EDIT.

package com.example.app;

public final class Program {
    public static final double MAX_RETRIES = 3;

    public static String greet(String name) {
        return "Hello, " + name + "!";
    }
}
`
	assertOutput(t, generate(t, file, defaultOpts()), want)
}

func TestAsyncMethod(t *testing.T) {
	file := &ast.File{Stmts: []ast.Stmt{
		&ast.ClassDecl{
			Name: "Client",
			Members: []ast.Member{
				&ast.MethodDecl{
					Name:  "fetchData",
					Async: true,
					Return: &ast.TypeNode{Kind: ast.TypeRef, Name: "Promise",
						Args: []*ast.TypeNode{stringType()}},
					Body: &ast.BlockStmt{Stmts: []ast.Stmt{
						&ast.ReturnStmt{X: &ast.StringLit{Value: "ok"}},
					}},
				},
			},
		},
	}}

	want := `// Code generated by typeshift. DO NOT EDIT.

package com.example.app;

import java.util.concurrent.CompletableFuture;

public class Client {
    public CompletableFuture<String> fetchData() {
        return CompletableFuture.supplyAsync(() -> {
            return "ok";
        });
    }
}
`
	assertOutput(t, generate(t, file, defaultOpts()), want)
}

func TestAwaitBecomesJoin(t *testing.T) {
	file := &ast.File{Stmts: []ast.Stmt{
		&ast.ClassDecl{
			Name: "Client",
			Members: []ast.Member{
				&ast.MethodDecl{
					Name:  "load",
					Async: true,
					Body: &ast.BlockStmt{Stmts: []ast.Stmt{
						&ast.ExprStmt{X: &ast.AwaitExpr{
							X: &ast.CallExpr{Fun: &ast.PropertyExpr{
								X: &ast.Ident{Name: "this"}, Name: "fetchData"}},
						}},
					}},
				},
			},
		},
	}}

	got := generate(t, file, defaultOpts())
	if !strings.Contains(got, "this.fetchData().join();") {
		t.Errorf("await not lowered to join():\n%s", got)
	}
	if !strings.Contains(got, "CompletableFuture.runAsync(() -> {") {
		t.Errorf("void async method not wrapped in runAsync:\n%s", got)
	}
}

func TestInterface(t *testing.T) {
	file := &ast.File{Stmts: []ast.Stmt{
		&ast.InterfaceDecl{
			Name: "Greeter",
			Members: []ast.IfaceMember{
				&ast.MethodSig{
					Name:   "greet",
					Params: []*ast.Param{{Name: "name", Type: stringType()}},
					Return: stringType(),
				},
				&ast.PropertySig{Name: "name", Type: stringType(), ReadOnly: true},
				&ast.PropertySig{Name: "age", Type: numberType()},
			},
		},
	}}

	want := `// Code generated by typeshift. DO NOT EDIT.

package com.example.app;

public interface Greeter {
    String greet(String name);

    String getName();

    double getAge();
    void setAge(double value);
}
`
	assertOutput(t, generate(t, file, defaultOpts()), want)
}

func TestEnum_Plain(t *testing.T) {
	file := &ast.File{Stmts: []ast.Stmt{
		&ast.EnumDecl{
			Name: "Color",
			Members: []ast.EnumMember{
				{Name: "Red"}, {Name: "Green"}, {Name: "Blue"},
			},
		},
	}}

	want := `// Code generated by typeshift. DO NOT EDIT.

package com.example.app;

public enum Color {
    RED, GREEN, BLUE
}
`
	assertOutput(t, generate(t, file, defaultOpts()), want)
}

func TestEnum_Valued(t *testing.T) {
	file := &ast.File{Stmts: []ast.Stmt{
		&ast.EnumDecl{
			Name: "Status",
			Members: []ast.EnumMember{
				{Name: "Active", Value: &ast.NumberLit{Value: "1"}},
				{Name: "Inactive", Value: &ast.NumberLit{Value: "2"}},
			},
		},
	}}

	want := `// Code generated by typeshift. DO NOT EDIT.

package com.example.app;

public enum Status {
    ACTIVE(1),
    INACTIVE(2);

    private final int value;

    Status(int value) {
        this.value = value;
    }

    public int getValue() {
        return value;
    }
}
`
	assertOutput(t, generate(t, file, defaultOpts()), want)
}

func TestCountingLoop(t *testing.T) {
	file := &ast.File{Stmts: []ast.Stmt{
		&ast.ClassDecl{
			Name: "Printer",
			Members: []ast.Member{
				&ast.MethodDecl{
					Name:   "run",
					Return: voidType(),
					Body: &ast.BlockStmt{Stmts: []ast.Stmt{
						&ast.ForStmt{
							Init: &ast.VarDecl{Name: "i", Init: &ast.NumberLit{Value: "0"}},
							Cond: &ast.BinaryExpr{Op: "<", X: &ast.Ident{Name: "i"}, Y: &ast.NumberLit{Value: "5"}},
							Post: &ast.ExprStmt{X: &ast.UnaryExpr{Op: "++", X: &ast.Ident{Name: "i"}, Postfix: true}},
							Body: &ast.BlockStmt{Stmts: []ast.Stmt{
								&ast.ExprStmt{X: &ast.CallExpr{
									Fun:  &ast.PropertyExpr{X: &ast.Ident{Name: "console"}, Name: "log"},
									Args: []ast.Expr{&ast.Ident{Name: "i"}},
								}},
							}},
						},
					}},
				},
			},
		},
	}}

	got := generate(t, file, defaultOpts())
	if !strings.Contains(got, "for (int i = 0; i < 5; i++) {") {
		t.Errorf("counting loop not rendered as for statement:\n%s", got)
	}
	if !strings.Contains(got, "System.out.println(i);") {
		t.Errorf("console.log not mapped:\n%s", got)
	}
}

func TestTryCatchFinally(t *testing.T) {
	file := &ast.File{Stmts: []ast.Stmt{
		&ast.ClassDecl{
			Name: "Guard",
			Members: []ast.Member{
				&ast.MethodDecl{
					Name:   "run",
					Return: voidType(),
					Body: &ast.BlockStmt{Stmts: []ast.Stmt{
						&ast.TryStmt{
							Body: &ast.BlockStmt{Stmts: []ast.Stmt{
								&ast.ThrowStmt{X: &ast.NewExpr{Name: "Error",
									Args: []ast.Expr{&ast.StringLit{Value: "boom"}}}},
							}},
							CatchName: "e",
							Catch: &ast.BlockStmt{Stmts: []ast.Stmt{
								&ast.ExprStmt{X: &ast.CallExpr{
									Fun:  &ast.PropertyExpr{X: &ast.Ident{Name: "console"}, Name: "error"},
									Args: []ast.Expr{&ast.Ident{Name: "e"}},
								}},
							}},
							Finally: &ast.BlockStmt{},
						},
					}},
				},
			},
		},
	}}

	got := generate(t, file, defaultOpts())
	for _, want := range []string{
		"try {",
		`throw new RuntimeException("boom");`,
		"} catch (Exception e) {",
		"System.err.println(e);",
		"} finally {",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestIfElseChain(t *testing.T) {
	file := &ast.File{Stmts: []ast.Stmt{
		&ast.FuncDecl{
			Name:   "classify",
			Params: []*ast.Param{{Name: "n", Type: numberType()}},
			Return: stringType(),
			Body: &ast.BlockStmt{Stmts: []ast.Stmt{
				&ast.IfStmt{
					Cond: &ast.BinaryExpr{Op: "<", X: &ast.Ident{Name: "n"}, Y: &ast.NumberLit{Value: "0"}},
					Then: &ast.BlockStmt{Stmts: []ast.Stmt{
						&ast.ReturnStmt{X: &ast.StringLit{Value: "negative"}},
					}},
					Else: &ast.IfStmt{
						Cond: &ast.BinaryExpr{Op: "===", X: &ast.Ident{Name: "n"}, Y: &ast.NumberLit{Value: "0"}},
						Then: &ast.BlockStmt{Stmts: []ast.Stmt{
							&ast.ReturnStmt{X: &ast.StringLit{Value: "zero"}},
						}},
						Else: &ast.BlockStmt{Stmts: []ast.Stmt{
							&ast.ReturnStmt{X: &ast.StringLit{Value: "positive"}},
						}},
					},
				},
			}},
		},
	}}

	want := `// Code generated by typeshift. DO NOT EDIT.

package com.example.app;

public final class Program {
    public static String classify(double n) {
        if (n < 0) {
            return "negative";
        } else if (n == 0) {
            return "zero";
        } else {
            return "positive";
        }
    }
}
`
	got := generate(t, file, defaultOpts())
	assertOutput(t, got, want)
	if open, closed := strings.Count(got, "{"), strings.Count(got, "}"); open != closed {
		t.Errorf("unbalanced braces: %d open, %d close", open, closed)
	}
}

func TestMapType(t *testing.T) {
	tests := []struct {
		name string
		typ  *ast.TypeNode
		want string
	}{
		{"number", numberType(), "double"},
		{"string", stringType(), "String"},
		{"boolean", &ast.TypeNode{Kind: ast.TypeName, Name: ast.Boolean}, "boolean"},
		{"void", voidType(), "void"},
		{"any", &ast.TypeNode{Kind: ast.TypeName, Name: ast.Any}, "Object"},
		{"untyped", nil, "Object"},
		{"array boxes element", &ast.TypeNode{Kind: ast.TypeArray, Elem: numberType()}, "List<Double>"},
		{
			"nullable",
			&ast.TypeNode{Kind: ast.TypeUnion, Args: []*ast.TypeNode{
				stringType(),
				{Kind: ast.TypeName, Name: ast.Null},
			}},
			"Optional<String>",
		},
		{
			"general union",
			&ast.TypeNode{Kind: ast.TypeUnion, Args: []*ast.TypeNode{stringType(), numberType()}},
			"Object",
		},
		{"runnable", &ast.TypeNode{Kind: ast.TypeFunc}, "Runnable"},
		{
			"supplier",
			&ast.TypeNode{Kind: ast.TypeFunc, Return: numberType()},
			"Supplier<Double>",
		},
		{
			"consumer",
			&ast.TypeNode{Kind: ast.TypeFunc, Args: []*ast.TypeNode{stringType()}, Return: voidType()},
			"Consumer<String>",
		},
		{
			"function",
			&ast.TypeNode{Kind: ast.TypeFunc, Args: []*ast.TypeNode{stringType()}, Return: numberType()},
			"Function<String, Double>",
		},
		{
			"bifunction",
			&ast.TypeNode{Kind: ast.TypeFunc,
				Args:   []*ast.TypeNode{numberType(), numberType()},
				Return: numberType()},
			"BiFunction<Double, Double, Double>",
		},
		{
			"two args without result",
			&ast.TypeNode{Kind: ast.TypeFunc,
				Args:   []*ast.TypeNode{numberType(), numberType()},
				Return: voidType()},
			"Function",
		},
		{
			"three args",
			&ast.TypeNode{Kind: ast.TypeFunc,
				Args:   []*ast.TypeNode{numberType(), numberType(), numberType()},
				Return: numberType()},
			"Function",
		},
		{
			"map",
			&ast.TypeNode{Kind: ast.TypeRef, Name: "Map",
				Args: []*ast.TypeNode{stringType(), numberType()}},
			"Map<String, Double>",
		},
		{
			"promise",
			&ast.TypeNode{Kind: ast.TypeRef, Name: "Promise",
				Args: []*ast.TypeNode{stringType()}},
			"CompletableFuture<String>",
		},
		{"tuple", &ast.TypeNode{Kind: ast.TypeTuple}, "List<Object>"},
	}
	target := java.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &gen.Run{Imports: importer.NewSet()}
			if got := target.MapType(r, tt.typ); got != tt.want {
				t.Errorf("MapType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDocComment(t *testing.T) {
	file := &ast.File{Stmts: []ast.Stmt{
		&ast.ClassDecl{
			Name: "Point",
			Doc:  &ast.Comment{Text: "/** A 2D point. */", Block: true, Doc: true},
			Members: []ast.Member{
				&ast.FieldDecl{Name: "x", ReadOnly: true, Type: numberType()},
			},
		},
	}}

	got := generate(t, file, defaultOpts())
	for _, want := range []string{"/**", " * A 2D point.", " */"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing doc line %q:\n%s", want, got)
		}
	}
}

func TestNoNamespaceSkipsPackageLine(t *testing.T) {
	file := &ast.File{Stmts: []ast.Stmt{
		&ast.ClassDecl{Name: "Empty", Members: []ast.Member{
			&ast.FieldDecl{Name: "x", ReadOnly: true, Type: numberType()},
		}},
	}}

	opts := defaultOpts()
	opts.NamespacePrefix = ""

	got := generate(t, file, opts)
	if strings.Contains(got, "package ") {
		t.Errorf("package line emitted without a namespace:\n%s", got)
	}
}
