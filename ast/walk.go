package ast

// Inspect walks the tree rooted at n, calling fn for every node. If fn
// returns false the node's children are skipped. Traversal order is
// source order; nil children are not visited.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch x := n.(type) {
	case *File:
		for _, s := range x.Stmts {
			Inspect(s, fn)
		}
	case *ClassDecl:
		for _, m := range x.Members {
			Inspect(m, fn)
		}
	case *FieldDecl:
		inspectExpr(x.Init, fn)
	case *MethodDecl:
		inspectParams(x.Params, fn)
		inspectBlock(x.Body, fn)
	case *CtorDecl:
		inspectParams(x.Params, fn)
		inspectBlock(x.Body, fn)
	case *InterfaceDecl:
		for _, m := range x.Members {
			Inspect(m, fn)
		}
	case *MethodSig:
		inspectParams(x.Params, fn)
	case *PropertySig:
		// no children
	case *EnumDecl:
		for _, m := range x.Members {
			inspectExpr(m.Value, fn)
		}
	case *FuncDecl:
		inspectParams(x.Params, fn)
		inspectBlock(x.Body, fn)
	case *VarDecl:
		inspectExpr(x.Init, fn)
	case *BlockStmt:
		for _, s := range x.Stmts {
			Inspect(s, fn)
		}
	case *ExprStmt:
		inspectExpr(x.X, fn)
	case *ReturnStmt:
		inspectExpr(x.X, fn)
	case *IfStmt:
		inspectExpr(x.Cond, fn)
		inspectBlock(x.Then, fn)
		if x.Else != nil {
			Inspect(x.Else, fn)
		}
	case *WhileStmt:
		inspectExpr(x.Cond, fn)
		inspectBlock(x.Body, fn)
	case *ForStmt:
		if x.Init != nil {
			Inspect(x.Init, fn)
		}
		inspectExpr(x.Cond, fn)
		if x.Post != nil {
			Inspect(x.Post, fn)
		}
		inspectBlock(x.Body, fn)
	case *ForOfStmt:
		inspectExpr(x.Iter, fn)
		inspectBlock(x.Body, fn)
	case *SwitchStmt:
		inspectExpr(x.Tag, fn)
		for _, c := range x.Cases {
			for _, v := range c.Values {
				inspectExpr(v, fn)
			}
			for _, s := range c.Body {
				Inspect(s, fn)
			}
		}
	case *TryStmt:
		inspectBlock(x.Body, fn)
		inspectBlock(x.Catch, fn)
		inspectBlock(x.Finally, fn)
	case *ThrowStmt:
		inspectExpr(x.X, fn)
	case *PropertyExpr:
		inspectExpr(x.X, fn)
	case *IndexExpr:
		inspectExpr(x.X, fn)
		inspectExpr(x.Index, fn)
	case *CallExpr:
		inspectExpr(x.Fun, fn)
		for _, a := range x.Args {
			inspectExpr(a, fn)
		}
	case *NewExpr:
		for _, a := range x.Args {
			inspectExpr(a, fn)
		}
	case *ArrayLit:
		for _, e := range x.Elems {
			inspectExpr(e, fn)
		}
	case *ObjectLit:
		for _, p := range x.Props {
			inspectExpr(p.Value, fn)
		}
	case *BinaryExpr:
		inspectExpr(x.X, fn)
		inspectExpr(x.Y, fn)
	case *AssignExpr:
		inspectExpr(x.Target, fn)
		inspectExpr(x.Value, fn)
	case *UnaryExpr:
		inspectExpr(x.X, fn)
	case *CondExpr:
		inspectExpr(x.Cond, fn)
		inspectExpr(x.Then, fn)
		inspectExpr(x.Else, fn)
	case *ArrowExpr:
		inspectParams(x.Params, fn)
		inspectExpr(x.Expr, fn)
		inspectBlock(x.Block, fn)
	case *AwaitExpr:
		inspectExpr(x.X, fn)
	case *TemplateLit:
		for _, e := range x.Exprs {
			inspectExpr(e, fn)
		}
	case *ParenExpr:
		inspectExpr(x.X, fn)
	}
}

func inspectExpr(e Expr, fn func(Node) bool) {
	if e != nil {
		Inspect(e, fn)
	}
}

func inspectBlock(b *BlockStmt, fn func(Node) bool) {
	if b != nil {
		Inspect(b, fn)
	}
}

func inspectParams(ps []*Param, fn func(Node) bool) {
	for _, p := range ps {
		inspectExpr(p.Default, fn)
	}
}
