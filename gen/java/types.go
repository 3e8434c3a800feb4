package java

import (
	"fmt"
	"strings"

	"github.com/swipe-io/strcase"

	"github.com/typeshift-io/typeshift/ast"
	"github.com/typeshift-io/typeshift/gen"
)

// MapType renders a type in a context where primitives are legal.
// Inside generic arguments the boxed variants apply, see boxedType.
func (t *Target) MapType(r *gen.Run, tn *ast.TypeNode) string {
	return t.mapType(r, tn, false)
}

func (t *Target) boxedType(r *gen.Run, tn *ast.TypeNode) string {
	return t.mapType(r, tn, true)
}

func (t *Target) mapType(r *gen.Run, tn *ast.TypeNode, boxed bool) string {
	if tn == nil {
		return "Object"
	}
	switch tn.Kind {
	case ast.TypeName:
		return namedType(tn.Name, boxed)
	case ast.TypeArray:
		r.Imports.Add("import java.util.List;")
		return fmt.Sprintf("List<%s>", t.boxedType(r, tn.Elem))
	case ast.TypeTuple:
		r.Imports.Add("import java.util.List;")
		return "List<Object>"
	case ast.TypeUnion:
		if inner, ok := tn.IsNullable(); ok {
			r.Imports.Add("import java.util.Optional;")
			return fmt.Sprintf("Optional<%s>", t.boxedType(r, inner))
		}
		return "Object"
	case ast.TypeFunc:
		return t.funcType(r, tn)
	case ast.TypeRef:
		return t.refType(r, tn)
	}
	return "Object"
}

func namedType(name string, boxed bool) string {
	switch name {
	case ast.Number:
		if boxed {
			return "Double"
		}
		return "double"
	case ast.String:
		return "String"
	case ast.Boolean:
		if boxed {
			return "Boolean"
		}
		return "boolean"
	case ast.Void, ast.Never:
		if boxed {
			return "Void"
		}
		return "void"
	case ast.Any, ast.Unknown, "object", ast.Null, ast.Undefined:
		return "Object"
	}
	return strcase.ToCamel(name)
}

// funcType picks the functional interface matching the signature shape:
// Runnable, Supplier, Consumer, Function or BiFunction. Shapes with no
// standard interface degrade to the raw Function type.
func (t *Target) funcType(r *gen.Run, tn *ast.TypeNode) string {
	returns := tn.Return != nil && !tn.Return.IsVoid()
	switch {
	case len(tn.Args) == 0 && !returns:
		return "Runnable"
	case len(tn.Args) == 0:
		r.Imports.Add("import java.util.function.Supplier;")
		return fmt.Sprintf("Supplier<%s>", t.boxedType(r, tn.Return))
	case len(tn.Args) == 1 && !returns:
		r.Imports.Add("import java.util.function.Consumer;")
		return fmt.Sprintf("Consumer<%s>", t.boxedType(r, tn.Args[0]))
	case len(tn.Args) == 1:
		r.Imports.Add("import java.util.function.Function;")
		return fmt.Sprintf("Function<%s, %s>", t.boxedType(r, tn.Args[0]), t.boxedType(r, tn.Return))
	case len(tn.Args) == 2 && returns:
		r.Imports.Add("import java.util.function.BiFunction;")
		return fmt.Sprintf("BiFunction<%s, %s, %s>", t.boxedType(r, tn.Args[0]), t.boxedType(r, tn.Args[1]), t.boxedType(r, tn.Return))
	}
	r.Imports.Add("import java.util.function.Function;")
	return "Function"
}

func (t *Target) refType(r *gen.Run, tn *ast.TypeNode) string {
	switch tn.Name {
	case "Array":
		r.Imports.Add("import java.util.List;")
		return fmt.Sprintf("List<%s>", t.boxedArg(r, tn, 0))
	case "Map":
		r.Imports.Add("import java.util.Map;")
		return fmt.Sprintf("Map<%s, %s>", t.boxedArg(r, tn, 0), t.boxedArg(r, tn, 1))
	case "Set":
		r.Imports.Add("import java.util.Set;")
		return fmt.Sprintf("Set<%s>", t.boxedArg(r, tn, 0))
	case "Promise":
		r.Imports.Add(importFuture)
		if len(tn.Args) > 0 && tn.Args[0].IsVoid() {
			return "CompletableFuture<Void>"
		}
		return fmt.Sprintf("CompletableFuture<%s>", t.boxedArg(r, tn, 0))
	}
	if len(tn.Args) == 0 {
		return strcase.ToCamel(tn.Name)
	}
	args := make([]string, len(tn.Args))
	for i, a := range tn.Args {
		args[i] = t.boxedType(r, a)
	}
	return fmt.Sprintf("%s<%s>", strcase.ToCamel(tn.Name), strings.Join(args, ", "))
}

func (t *Target) boxedArg(r *gen.Run, tn *ast.TypeNode, i int) string {
	if i >= len(tn.Args) {
		return "Object"
	}
	return t.boxedType(r, tn.Args[i])
}
