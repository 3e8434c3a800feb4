package python

import (
	"fmt"
	"strings"

	"github.com/swipe-io/strcase"

	"github.com/typeshift-io/typeshift/ast"
	"github.com/typeshift-io/typeshift/gen"
)

func typingImport(r *gen.Run, symbol string) {
	r.Imports.Add("from typing import " + symbol)
}

func (t *Target) anyType(r *gen.Run) string {
	typingImport(r, "Any")
	return "Any"
}

// MapType renders a type annotation, recording the typing imports the
// annotation requires as a side effect.
func (t *Target) MapType(r *gen.Run, tn *ast.TypeNode) string {
	if tn == nil {
		return t.anyType(r)
	}
	switch tn.Kind {
	case ast.TypeName:
		return t.namedType(r, tn.Name)
	case ast.TypeArray:
		typingImport(r, "List")
		return fmt.Sprintf("List[%s]", t.MapType(r, tn.Elem))
	case ast.TypeTuple:
		return "list"
	case ast.TypeUnion:
		if inner, ok := tn.IsNullable(); ok {
			typingImport(r, "Optional")
			return fmt.Sprintf("Optional[%s]", t.MapType(r, inner))
		}
		return t.anyType(r)
	case ast.TypeFunc:
		return t.funcType(r, tn)
	case ast.TypeRef:
		return t.refType(r, tn)
	}
	return t.anyType(r)
}

func (t *Target) namedType(r *gen.Run, name string) string {
	switch name {
	case ast.Number:
		return "float"
	case ast.String:
		return "str"
	case ast.Boolean:
		return "bool"
	case ast.Void, ast.Never, ast.Null, ast.Undefined:
		return "None"
	case ast.Any, ast.Unknown, "object":
		return t.anyType(r)
	}
	return strcase.ToCamel(name)
}

func (t *Target) funcType(r *gen.Run, tn *ast.TypeNode) string {
	typingImport(r, "Callable")
	if len(tn.Args) > 2 {
		return "Callable"
	}
	params := make([]string, len(tn.Args))
	for i, a := range tn.Args {
		params[i] = t.MapType(r, a)
	}
	ret := "None"
	if tn.Return != nil && !tn.Return.IsVoid() {
		ret = t.MapType(r, tn.Return)
	}
	return fmt.Sprintf("Callable[[%s], %s]", strings.Join(params, ", "), ret)
}

func (t *Target) refType(r *gen.Run, tn *ast.TypeNode) string {
	switch tn.Name {
	case "Array":
		typingImport(r, "List")
		return fmt.Sprintf("List[%s]", t.argType(r, tn, 0))
	case "Map":
		typingImport(r, "Dict")
		return fmt.Sprintf("Dict[%s, %s]", t.argType(r, tn, 0), t.argType(r, tn, 1))
	case "Set":
		typingImport(r, "Set")
		return fmt.Sprintf("Set[%s]", t.argType(r, tn, 0))
	case "Promise":
		r.Imports.Add(importFuture)
		inner := t.argType(r, tn, 0)
		if len(tn.Args) > 0 && tn.Args[0].IsVoid() {
			inner = "None"
		}
		return fmt.Sprintf("Future[%s]", inner)
	}
	if len(tn.Args) == 0 {
		return strcase.ToCamel(tn.Name)
	}
	args := make([]string, len(tn.Args))
	for i, a := range tn.Args {
		args[i] = t.MapType(r, a)
	}
	return fmt.Sprintf("%s[%s]", strcase.ToCamel(tn.Name), strings.Join(args, ", "))
}

func (t *Target) argType(r *gen.Run, tn *ast.TypeNode, i int) string {
	if i >= len(tn.Args) {
		return t.anyType(r)
	}
	return t.MapType(r, tn.Args[i])
}
