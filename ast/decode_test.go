package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON_Class(t *testing.T) {
	data := []byte(`{
		"kind": "file",
		"name": "point.ts",
		"statements": [
			{
				"kind": "class",
				"name": "Point",
				"doc": {"text": "/** A 2D point. */", "block": true},
				"members": [
					{"kind": "field", "name": "x", "readonly": true, "type": {"kind": "name", "name": "number"}},
					{"kind": "field", "name": "y", "readonly": true, "type": {"kind": "name", "name": "number"}},
					{
						"kind": "method",
						"name": "scale",
						"params": [{"name": "factor", "type": {"kind": "name", "name": "number"}}],
						"returnType": {"kind": "name", "name": "void"},
						"body": {"kind": "block", "statements": []}
					}
				]
			}
		]
	}`)

	f, err := DecodeJSON(data)
	require.NoError(t, err)
	require.Equal(t, "point.ts", f.Name)
	require.Len(t, f.Stmts, 1)

	cls, ok := f.Stmts[0].(*ClassDecl)
	require.True(t, ok, "statements[0] is %T, want *ClassDecl", f.Stmts[0])
	assert.Equal(t, "Point", cls.Name)
	require.NotNil(t, cls.Doc)
	assert.True(t, cls.Doc.Doc)
	require.Len(t, cls.Members, 3)

	x, ok := cls.Members[0].(*FieldDecl)
	require.True(t, ok)
	assert.Equal(t, "x", x.Name)
	assert.True(t, x.ReadOnly)
	require.NotNil(t, x.Type)
	assert.Equal(t, TypeName, x.Type.Kind)
	assert.Equal(t, Number, x.Type.Name)

	m, ok := cls.Members[2].(*MethodDecl)
	require.True(t, ok)
	assert.Equal(t, "scale", m.Name)
	require.Len(t, m.Params, 1)
	assert.Equal(t, "factor", m.Params[0].Name)
	require.NotNil(t, m.Return)
	assert.True(t, m.Return.IsVoid())
	require.NotNil(t, m.Body)
	assert.Empty(t, m.Body.Stmts)
}

func TestDecodeJSON_Statements(t *testing.T) {
	data := []byte(`{
		"kind": "file",
		"statements": [
			{
				"kind": "function",
				"name": "clamp",
				"params": [
					{"name": "v", "type": {"kind": "name", "name": "number"}},
					{"name": "max", "type": {"kind": "name", "name": "number"}}
				],
				"returnType": {"kind": "name", "name": "number"},
				"body": {
					"kind": "block",
					"statements": [
						{
							"kind": "if",
							"cond": {"kind": "binary", "op": ">", "left": {"kind": "identifier", "name": "v"}, "right": {"kind": "identifier", "name": "max"}},
							"then": {"kind": "block", "statements": [
								{"kind": "return", "expr": {"kind": "identifier", "name": "max"}}
							]}
						},
						{"kind": "return", "expr": {"kind": "identifier", "name": "v"}}
					]
				}
			}
		]
	}`)

	f, err := DecodeJSON(data)
	require.NoError(t, err)
	fn, ok := f.Stmts[0].(*FuncDecl)
	require.True(t, ok)
	require.Len(t, fn.Body.Stmts, 2)

	ifs, ok := fn.Body.Stmts[0].(*IfStmt)
	require.True(t, ok)
	cond, ok := ifs.Cond.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ">", cond.Op)
	require.Len(t, ifs.Then.Stmts, 1)
	assert.Nil(t, ifs.Else)
}

func TestDecodeJSON_NumberValues(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"integer stays integral", `3`, "3"},
		{"float keeps fraction", `3.14`, "3.14"},
		{"string passthrough", `"0x10"`, "0x10"},
		{"whole float loses point", `2.0`, "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(`{"kind": "file", "statements": [
				{"kind": "variable", "name": "n", "init": {"kind": "number", "value": ` + tt.json + `}}
			]}`)
			f, err := DecodeJSON(data)
			require.NoError(t, err)
			v := f.Stmts[0].(*VarDecl)
			lit, ok := v.Init.(*NumberLit)
			require.True(t, ok)
			assert.Equal(t, tt.want, lit.Value)
		})
	}
}

func TestDecodeJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"root not file", `{"kind": "class", "name": "A"}`},
		{"unknown statement kind", `{"kind": "file", "statements": [{"kind": "goto"}]}`},
		{"unknown expression kind", `{"kind": "file", "statements": [
			{"kind": "expression-statement", "expr": {"kind": "spread"}}
		]}`},
		{"class without name", `{"kind": "file", "statements": [{"kind": "class"}]}`},
		{"binary without operator", `{"kind": "file", "statements": [
			{"kind": "expression-statement", "expr": {"kind": "binary",
				"left": {"kind": "identifier", "name": "a"},
				"right": {"kind": "identifier", "name": "b"}}}
		]}`},
		{"template chunk mismatch", `{"kind": "file", "statements": [
			{"kind": "expression-statement", "expr": {"kind": "template",
				"chunks": ["a"], "exprs": [{"kind": "identifier", "name": "x"}]}}
		]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	data := []byte(`
kind: file
name: config.ts
statements:
  - kind: variable
    name: retries
    const: true
    type: {kind: name, name: number}
    init: {kind: number, value: 3}
`)
	f, err := DecodeYAML(data)
	require.NoError(t, err)
	require.Len(t, f.Stmts, 1)
	v, ok := f.Stmts[0].(*VarDecl)
	require.True(t, ok)
	assert.Equal(t, "retries", v.Name)
	assert.True(t, v.Const)
}

func TestDecodeJSON_Nullable(t *testing.T) {
	data := []byte(`{"kind": "file", "statements": [
		{"kind": "variable", "name": "nick", "type": {"kind": "union", "args": [
			{"kind": "name", "name": "string"},
			{"kind": "name", "name": "null"},
			{"kind": "name", "name": "undefined"}
		]}}
	]}`)
	f, err := DecodeJSON(data)
	require.NoError(t, err)
	v := f.Stmts[0].(*VarDecl)
	inner, ok := v.Type.IsNullable()
	require.True(t, ok)
	assert.Equal(t, String, inner.Name)
}
