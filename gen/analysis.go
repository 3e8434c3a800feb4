package gen

import "github.com/typeshift-io/typeshift/ast"

// Analysis is what the first pass learns about the whole tree before any
// line is emitted. Targets read it to seed imports and preamble code
// that must precede the declarations using them.
type Analysis struct {
	// HasAsync is set when any declaration or arrow function is marked
	// asynchronous; it drives the future/executor scaffolding.
	HasAsync bool
	// UsesArrays is set when any array literal appears.
	UsesArrays bool
	// Loose is set when the unit has top-level functions or variables,
	// which the java target must group into a holder class.
	Loose bool
}

func analyze(file *ast.File) Analysis {
	var a Analysis
	for _, s := range file.Stmts {
		switch s.(type) {
		case *ast.FuncDecl, *ast.VarDecl:
			a.Loose = true
		}
	}
	ast.Inspect(file, func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.MethodDecl:
			if x.Async {
				a.HasAsync = true
			}
		case *ast.FuncDecl:
			if x.Async {
				a.HasAsync = true
			}
		case *ast.ArrowExpr:
			if x.Async {
				a.HasAsync = true
			}
		case *ast.ArrayLit:
			a.UsesArrays = true
		}
		return true
	})
	return a
}
