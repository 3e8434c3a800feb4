package ast

// TypeKind tags a TypeNode.
type TypeKind string

const (
	// TypeName is a primitive or a bare type reference without arguments.
	TypeName TypeKind = "name"
	// TypeArray is T[].
	TypeArray TypeKind = "array"
	// TypeTuple is [A, B, ...]; element types are kept but neither target
	// has a native tuple, so mappers degrade to an untyped sequence.
	TypeTuple TypeKind = "tuple"
	// TypeUnion is A | B | ....
	TypeUnion TypeKind = "union"
	// TypeFunc is (params) => Return.
	TypeFunc TypeKind = "function"
	// TypeRef is a reference with type arguments, e.g. Map<K, V>.
	TypeRef TypeKind = "ref"
)

// TypeNode is one source type annotation. It is a plain tagged struct
// rather than an interface tree: type mappers consume it wholesale and a
// single shape keeps decoding and matching simple.
type TypeNode struct {
	Kind   TypeKind
	Name   string      // TypeName, TypeRef
	Elem   *TypeNode   // TypeArray
	Args   []*TypeNode // TypeTuple, TypeUnion, TypeRef; TypeFunc params
	Return *TypeNode   // TypeFunc
	Src    Span
}

// Primitive type names recognized by the mappers.
const (
	Number    = "number"
	String    = "string"
	Boolean   = "boolean"
	Void      = "void"
	Any       = "any"
	Unknown   = "unknown"
	Never     = "never"
	Null      = "null"
	Undefined = "undefined"
)

// IsPrimitive reports whether the node is a bare name naming a builtin.
func (t *TypeNode) IsPrimitive() bool {
	if t == nil || t.Kind != TypeName {
		return false
	}
	switch t.Name {
	case Number, String, Boolean, Void, Any, Unknown, Never, Null, Undefined:
		return true
	}
	return false
}

// IsNullable reports whether a union is exactly T | null | undefined (in
// any order) and returns the wrapped T. Any other union shape returns
// (nil, false): those lose precision and map to the target's top type.
func (t *TypeNode) IsNullable() (*TypeNode, bool) {
	if t == nil || t.Kind != TypeUnion {
		return nil, false
	}
	var wrapped *TypeNode
	for _, m := range t.Args {
		if m.Kind == TypeName && (m.Name == Null || m.Name == Undefined) {
			continue
		}
		if wrapped != nil {
			return nil, false
		}
		wrapped = m
	}
	if wrapped == nil {
		return nil, false
	}
	return wrapped, true
}

// IsVoid reports a void/never/missing return annotation.
func (t *TypeNode) IsVoid() bool {
	return t == nil || (t.Kind == TypeName && (t.Name == Void || t.Name == Never))
}
