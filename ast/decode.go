package ast

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// DecodeJSON builds a File from a parsed-AST document produced by the
// parser frontend. Unknown kind tags and missing required children fail
// fast here; downstream generators assume a well-formed tree.
func DecodeJSON(data []byte) (*File, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(err, "ast: invalid JSON document")
	}
	return build(v)
}

// DecodeYAML is DecodeJSON for YAML-authored documents.
func DecodeYAML(data []byte) (*File, error) {
	var v interface{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(err, "ast: invalid YAML document")
	}
	return build(v)
}

func build(v interface{}) (*File, error) {
	m, ok := node(v)
	if !ok {
		return nil, errors.New("ast: document root is not an object")
	}
	if k := str(m, "kind"); k != "file" {
		return nil, errors.Newf("ast: document root kind %q, want \"file\"", k)
	}
	f := &File{
		Name: str(m, "name"),
		Src:  span(m),
	}
	stmts, err := stmtList(m, "statements")
	if err != nil {
		return nil, err
	}
	f.Stmts = stmts
	return f, nil
}

// node normalizes a decoded value to a string-keyed map. yaml.v3 already
// yields map[string]interface{} for string keys; the interface{} key form
// shows up in mixed documents.
func node(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	}
	return nil, false
}

func str(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func flag(m map[string]interface{}, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func intField(m map[string]interface{}, key string) int {
	switch n := m[key].(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	}
	return 0
}

func list(m map[string]interface{}, key string) []interface{} {
	l, _ := m[key].([]interface{})
	return l
}

func span(m map[string]interface{}) Span {
	sm, ok := node(m["span"])
	if !ok {
		return Span{}
	}
	return Span{
		Start: intField(sm, "start"),
		End:   intField(sm, "end"),
		Text:  str(sm, "text"),
	}
}

func comment(v interface{}) (Comment, bool) {
	m, ok := node(v)
	if !ok {
		return Comment{}, false
	}
	return Comment{
		Text:  str(m, "text"),
		Block: flag(m, "block"),
		Doc:   flag(m, "doc"),
	}, true
}

func comments(m map[string]interface{}) []Comment {
	raw := list(m, "comments")
	if len(raw) == 0 {
		return nil
	}
	out := make([]Comment, 0, len(raw))
	for _, v := range raw {
		if c, ok := comment(v); ok {
			out = append(out, c)
		}
	}
	return out
}

func docComment(m map[string]interface{}) *Comment {
	c, ok := comment(m["doc"])
	if !ok {
		return nil
	}
	c.Doc = true
	return &c
}

func typeNode(v interface{}) (*TypeNode, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := node(v)
	if !ok {
		return nil, errors.New("ast: type annotation is not an object")
	}
	t := &TypeNode{
		Kind: TypeKind(str(m, "kind")),
		Name: str(m, "name"),
		Src:  span(m),
	}
	var err error
	switch t.Kind {
	case TypeName:
		if t.Name == "" {
			return nil, errors.New("ast: name type without a name")
		}
	case TypeArray:
		if t.Elem, err = typeNode(m["elem"]); err != nil {
			return nil, err
		}
		if t.Elem == nil {
			return nil, errors.New("ast: array type without an element type")
		}
	case TypeTuple, TypeUnion, TypeRef:
		if t.Args, err = typeList(m, "args"); err != nil {
			return nil, err
		}
		if t.Kind == TypeRef && t.Name == "" {
			return nil, errors.New("ast: type reference without a name")
		}
	case TypeFunc:
		if t.Args, err = typeList(m, "args"); err != nil {
			return nil, err
		}
		if t.Return, err = typeNode(m["returnType"]); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Newf("ast: unknown type kind %q", t.Kind)
	}
	return t, nil
}

func typeList(m map[string]interface{}, key string) ([]*TypeNode, error) {
	raw := list(m, key)
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]*TypeNode, 0, len(raw))
	for i, v := range raw {
		t, err := typeNode(v)
		if err != nil {
			return nil, errors.Wrapf(err, "%s[%d]", key, i)
		}
		out = append(out, t)
	}
	return out, nil
}

func params(m map[string]interface{}) ([]*Param, error) {
	raw := list(m, "params")
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]*Param, 0, len(raw))
	for i, v := range raw {
		pm, ok := node(v)
		if !ok {
			return nil, errors.Newf("ast: params[%d] is not an object", i)
		}
		p := &Param{
			Name:     str(pm, "name"),
			Optional: flag(pm, "optional"),
		}
		if p.Name == "" {
			return nil, errors.Newf("ast: params[%d] without a name", i)
		}
		var err error
		if p.Type, err = typeNode(pm["type"]); err != nil {
			return nil, errors.Wrapf(err, "params[%d]", i)
		}
		if pm["default"] != nil {
			if p.Default, err = expr(pm["default"]); err != nil {
				return nil, errors.Wrapf(err, "params[%d]", i)
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func stmtList(m map[string]interface{}, key string) ([]Stmt, error) {
	raw := list(m, key)
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]Stmt, 0, len(raw))
	for i, v := range raw {
		s, err := stmt(v)
		if err != nil {
			return nil, errors.Wrapf(err, "%s[%d]", key, i)
		}
		out = append(out, s)
	}
	return out, nil
}

func blockField(m map[string]interface{}, key string) (*BlockStmt, error) {
	if m[key] == nil {
		return nil, nil
	}
	s, err := stmt(m[key])
	if err != nil {
		return nil, errors.Wrap(err, key)
	}
	b, ok := s.(*BlockStmt)
	if !ok {
		return nil, errors.Newf("ast: %s is a %s, want a block", key, s.Kind())
	}
	return b, nil
}

func exprField(m map[string]interface{}, key string) (Expr, error) {
	if m[key] == nil {
		return nil, nil
	}
	e, err := expr(m[key])
	if err != nil {
		return nil, errors.Wrap(err, key)
	}
	return e, nil
}

func requiredExpr(m map[string]interface{}, key, kind string) (Expr, error) {
	e, err := exprField(m, key)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, errors.Newf("ast: %s without %q", kind, key)
	}
	return e, nil
}

func exprList(m map[string]interface{}, key string) ([]Expr, error) {
	raw := list(m, key)
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]Expr, 0, len(raw))
	for i, v := range raw {
		e, err := expr(v)
		if err != nil {
			return nil, errors.Wrapf(err, "%s[%d]", key, i)
		}
		out = append(out, e)
	}
	return out, nil
}

func stmt(v interface{}) (Stmt, error) {
	m, ok := node(v)
	if !ok {
		return nil, errors.New("ast: statement is not an object")
	}
	kind := str(m, "kind")
	switch kind {
	case "class":
		return classDecl(m)
	case "interface":
		return interfaceDecl(m)
	case "enum":
		return enumDecl(m)
	case "function":
		return funcDecl(m)
	case "variable":
		return varDecl(m)
	case "block":
		stmts, err := stmtList(m, "statements")
		if err != nil {
			return nil, err
		}
		return &BlockStmt{Stmts: stmts, Leading: comments(m), Src: span(m)}, nil
	case "expression-statement":
		x, err := requiredExpr(m, "expr", kind)
		if err != nil {
			return nil, err
		}
		return &ExprStmt{X: x, Leading: comments(m), Src: span(m)}, nil
	case "return":
		x, err := exprField(m, "expr")
		if err != nil {
			return nil, err
		}
		return &ReturnStmt{X: x, Leading: comments(m), Src: span(m)}, nil
	case "if":
		cond, err := requiredExpr(m, "cond", kind)
		if err != nil {
			return nil, err
		}
		then, err := blockField(m, "then")
		if err != nil {
			return nil, err
		}
		if then == nil {
			return nil, errors.New("ast: if without a then block")
		}
		var els Stmt
		if m["else"] != nil {
			if els, err = stmt(m["else"]); err != nil {
				return nil, errors.Wrap(err, "else")
			}
		}
		return &IfStmt{Cond: cond, Then: then, Else: els, Leading: comments(m), Src: span(m)}, nil
	case "while":
		cond, err := requiredExpr(m, "cond", kind)
		if err != nil {
			return nil, err
		}
		body, err := blockField(m, "body")
		if err != nil {
			return nil, err
		}
		return &WhileStmt{Cond: cond, Body: body, Leading: comments(m), Src: span(m)}, nil
	case "for":
		var init, post Stmt
		var err error
		if m["init"] != nil {
			if init, err = stmt(m["init"]); err != nil {
				return nil, errors.Wrap(err, "init")
			}
		}
		cond, err := exprField(m, "cond")
		if err != nil {
			return nil, err
		}
		if m["post"] != nil {
			if post, err = stmt(m["post"]); err != nil {
				return nil, errors.Wrap(err, "post")
			}
		}
		body, err := blockField(m, "body")
		if err != nil {
			return nil, err
		}
		return &ForStmt{Init: init, Cond: cond, Post: post, Body: body, Leading: comments(m), Src: span(m)}, nil
	case "for-of":
		iter, err := requiredExpr(m, "iter", kind)
		if err != nil {
			return nil, err
		}
		body, err := blockField(m, "body")
		if err != nil {
			return nil, err
		}
		name := str(m, "name")
		if name == "" {
			return nil, errors.New("ast: for-of without a binding name")
		}
		return &ForOfStmt{Name: name, Iter: iter, Body: body, Leading: comments(m), Src: span(m)}, nil
	case "switch":
		tag, err := requiredExpr(m, "tag", kind)
		if err != nil {
			return nil, err
		}
		var cases []*CaseClause
		for i, cv := range list(m, "cases") {
			cm, ok := node(cv)
			if !ok {
				return nil, errors.Newf("ast: cases[%d] is not an object", i)
			}
			values, err := exprList(cm, "values")
			if err != nil {
				return nil, errors.Wrapf(err, "cases[%d]", i)
			}
			body, err := stmtList(cm, "body")
			if err != nil {
				return nil, errors.Wrapf(err, "cases[%d]", i)
			}
			cases = append(cases, &CaseClause{Values: values, Body: body, Src: span(cm)})
		}
		return &SwitchStmt{Tag: tag, Cases: cases, Leading: comments(m), Src: span(m)}, nil
	case "try":
		body, err := blockField(m, "body")
		if err != nil {
			return nil, err
		}
		if body == nil {
			return nil, errors.New("ast: try without a body")
		}
		catch, err := blockField(m, "catch")
		if err != nil {
			return nil, err
		}
		finally, err := blockField(m, "finally")
		if err != nil {
			return nil, err
		}
		return &TryStmt{
			Body:      body,
			CatchName: str(m, "catchName"),
			Catch:     catch,
			Finally:   finally,
			Leading:   comments(m),
			Src:       span(m),
		}, nil
	case "throw":
		x, err := requiredExpr(m, "expr", kind)
		if err != nil {
			return nil, err
		}
		return &ThrowStmt{X: x, Leading: comments(m), Src: span(m)}, nil
	case "break":
		return &BreakStmt{Leading: comments(m), Src: span(m)}, nil
	case "continue":
		return &ContinueStmt{Leading: comments(m), Src: span(m)}, nil
	}
	return nil, errors.Newf("ast: unknown statement kind %q", kind)
}

func classDecl(m map[string]interface{}) (*ClassDecl, error) {
	d := &ClassDecl{
		Name:     str(m, "name"),
		Export:   flag(m, "export"),
		Abstract: flag(m, "abstract"),
		Doc:      docComment(m),
		Leading:  comments(m),
		Src:      span(m),
	}
	if d.Name == "" {
		return nil, errors.New("ast: class without a name")
	}
	var err error
	if d.Extends, err = typeNode(m["extends"]); err != nil {
		return nil, errors.Wrapf(err, "class %s", d.Name)
	}
	if d.Implements, err = typeList(m, "implements"); err != nil {
		return nil, errors.Wrapf(err, "class %s", d.Name)
	}
	for i, mv := range list(m, "members") {
		mem, err := member(mv)
		if err != nil {
			return nil, errors.Wrapf(err, "class %s members[%d]", d.Name, i)
		}
		d.Members = append(d.Members, mem)
	}
	return d, nil
}

func member(v interface{}) (Member, error) {
	m, ok := node(v)
	if !ok {
		return nil, errors.New("ast: class member is not an object")
	}
	kind := str(m, "kind")
	switch kind {
	case "field":
		f := &FieldDecl{
			Name:     str(m, "name"),
			ReadOnly: flag(m, "readonly"),
			Static:   flag(m, "static"),
			Doc:      docComment(m),
			Leading:  comments(m),
			Src:      span(m),
		}
		if f.Name == "" {
			return nil, errors.New("ast: field without a name")
		}
		var err error
		if f.Type, err = typeNode(m["type"]); err != nil {
			return nil, err
		}
		if f.Init, err = exprField(m, "init"); err != nil {
			return nil, err
		}
		return f, nil
	case "method":
		md := &MethodDecl{
			Name:    str(m, "name"),
			Async:   flag(m, "async"),
			Static:  flag(m, "static"),
			Doc:     docComment(m),
			Leading: comments(m),
			Src:     span(m),
		}
		if md.Name == "" {
			return nil, errors.New("ast: method without a name")
		}
		var err error
		if md.Params, err = params(m); err != nil {
			return nil, err
		}
		if md.Return, err = typeNode(m["returnType"]); err != nil {
			return nil, err
		}
		if md.Body, err = blockField(m, "body"); err != nil {
			return nil, err
		}
		return md, nil
	case "constructor":
		c := &CtorDecl{
			Doc:     docComment(m),
			Leading: comments(m),
			Src:     span(m),
		}
		var err error
		if c.Params, err = params(m); err != nil {
			return nil, err
		}
		if c.Body, err = blockField(m, "body"); err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, errors.Newf("ast: unknown class member kind %q", kind)
}

func interfaceDecl(m map[string]interface{}) (*InterfaceDecl, error) {
	d := &InterfaceDecl{
		Name:    str(m, "name"),
		Export:  flag(m, "export"),
		Doc:     docComment(m),
		Leading: comments(m),
		Src:     span(m),
	}
	if d.Name == "" {
		return nil, errors.New("ast: interface without a name")
	}
	var err error
	if d.Extends, err = typeList(m, "extends"); err != nil {
		return nil, errors.Wrapf(err, "interface %s", d.Name)
	}
	for i, mv := range list(m, "members") {
		mm, ok := node(mv)
		if !ok {
			return nil, errors.Newf("ast: interface %s members[%d] is not an object", d.Name, i)
		}
		switch kind := str(mm, "kind"); kind {
		case "method-signature":
			sig := &MethodSig{
				Name:    str(mm, "name"),
				Doc:     docComment(mm),
				Leading: comments(mm),
				Src:     span(mm),
			}
			if sig.Params, err = params(mm); err != nil {
				return nil, errors.Wrapf(err, "interface %s members[%d]", d.Name, i)
			}
			if sig.Return, err = typeNode(mm["returnType"]); err != nil {
				return nil, errors.Wrapf(err, "interface %s members[%d]", d.Name, i)
			}
			d.Members = append(d.Members, sig)
		case "property-signature":
			sig := &PropertySig{
				Name:     str(mm, "name"),
				ReadOnly: flag(mm, "readonly"),
				Doc:      docComment(mm),
				Leading:  comments(mm),
				Src:      span(mm),
			}
			if sig.Type, err = typeNode(mm["type"]); err != nil {
				return nil, errors.Wrapf(err, "interface %s members[%d]", d.Name, i)
			}
			d.Members = append(d.Members, sig)
		default:
			return nil, errors.Newf("ast: unknown interface member kind %q", kind)
		}
	}
	return d, nil
}

func enumDecl(m map[string]interface{}) (*EnumDecl, error) {
	d := &EnumDecl{
		Name:    str(m, "name"),
		Export:  flag(m, "export"),
		Doc:     docComment(m),
		Leading: comments(m),
		Src:     span(m),
	}
	if d.Name == "" {
		return nil, errors.New("ast: enum without a name")
	}
	for i, mv := range list(m, "members") {
		mm, ok := node(mv)
		if !ok {
			return nil, errors.Newf("ast: enum %s members[%d] is not an object", d.Name, i)
		}
		em := EnumMember{Name: str(mm, "name")}
		if em.Name == "" {
			return nil, errors.Newf("ast: enum %s members[%d] without a name", d.Name, i)
		}
		var err error
		if em.Value, err = exprField(mm, "value"); err != nil {
			return nil, errors.Wrapf(err, "enum %s members[%d]", d.Name, i)
		}
		d.Members = append(d.Members, em)
	}
	return d, nil
}

func funcDecl(m map[string]interface{}) (*FuncDecl, error) {
	d := &FuncDecl{
		Name:    str(m, "name"),
		Export:  flag(m, "export"),
		Async:   flag(m, "async"),
		Doc:     docComment(m),
		Leading: comments(m),
		Src:     span(m),
	}
	if d.Name == "" {
		return nil, errors.New("ast: function without a name")
	}
	var err error
	if d.Params, err = params(m); err != nil {
		return nil, errors.Wrapf(err, "function %s", d.Name)
	}
	if d.Return, err = typeNode(m["returnType"]); err != nil {
		return nil, errors.Wrapf(err, "function %s", d.Name)
	}
	if d.Body, err = blockField(m, "body"); err != nil {
		return nil, errors.Wrapf(err, "function %s", d.Name)
	}
	return d, nil
}

func varDecl(m map[string]interface{}) (*VarDecl, error) {
	d := &VarDecl{
		Name:    str(m, "name"),
		Const:   flag(m, "const"),
		Export:  flag(m, "export"),
		Doc:     docComment(m),
		Leading: comments(m),
		Src:     span(m),
	}
	if d.Name == "" {
		return nil, errors.New("ast: variable without a name")
	}
	var err error
	if d.Type, err = typeNode(m["type"]); err != nil {
		return nil, errors.Wrapf(err, "variable %s", d.Name)
	}
	if d.Init, err = exprField(m, "init"); err != nil {
		return nil, errors.Wrapf(err, "variable %s", d.Name)
	}
	return d, nil
}

func expr(v interface{}) (Expr, error) {
	m, ok := node(v)
	if !ok {
		return nil, errors.New("ast: expression is not an object")
	}
	kind := str(m, "kind")
	switch kind {
	case "identifier":
		name := str(m, "name")
		if name == "" {
			return nil, errors.New("ast: identifier without a name")
		}
		return &Ident{Name: name, Src: span(m)}, nil
	case "string":
		return &StringLit{Value: str(m, "value"), Src: span(m)}, nil
	case "number":
		switch n := m["value"].(type) {
		case string:
			return &NumberLit{Value: n, Src: span(m)}, nil
		case float64:
			return &NumberLit{Value: formatFloat(n), Src: span(m)}, nil
		case int:
			return &NumberLit{Value: fmt.Sprintf("%d", n), Src: span(m)}, nil
		case int64:
			return &NumberLit{Value: fmt.Sprintf("%d", n), Src: span(m)}, nil
		}
		return nil, errors.New("ast: number literal without a value")
	case "boolean":
		return &BoolLit{Value: flag(m, "value"), Src: span(m)}, nil
	case "null":
		return &NullLit{Undefined: flag(m, "undefined"), Src: span(m)}, nil
	case "property-access":
		x, err := requiredExpr(m, "expr", kind)
		if err != nil {
			return nil, err
		}
		name := str(m, "name")
		if name == "" {
			return nil, errors.New("ast: property access without a name")
		}
		return &PropertyExpr{X: x, Name: name, Src: span(m)}, nil
	case "index":
		x, err := requiredExpr(m, "expr", kind)
		if err != nil {
			return nil, err
		}
		idx, err := requiredExpr(m, "index", kind)
		if err != nil {
			return nil, err
		}
		return &IndexExpr{X: x, Index: idx, Src: span(m)}, nil
	case "call":
		fun, err := requiredExpr(m, "callee", kind)
		if err != nil {
			return nil, err
		}
		args, err := exprList(m, "args")
		if err != nil {
			return nil, err
		}
		return &CallExpr{Fun: fun, Args: args, Src: span(m)}, nil
	case "new":
		name := str(m, "name")
		if name == "" {
			return nil, errors.New("ast: new without a type name")
		}
		args, err := exprList(m, "args")
		if err != nil {
			return nil, err
		}
		return &NewExpr{Name: name, Args: args, Src: span(m)}, nil
	case "array-literal":
		elems, err := exprList(m, "elems")
		if err != nil {
			return nil, err
		}
		return &ArrayLit{Elems: elems, Src: span(m)}, nil
	case "object-literal":
		lit := &ObjectLit{Src: span(m)}
		for i, pv := range list(m, "props") {
			pm, ok := node(pv)
			if !ok {
				return nil, errors.Newf("ast: props[%d] is not an object", i)
			}
			key := str(pm, "key")
			if key == "" {
				return nil, errors.Newf("ast: props[%d] without a key", i)
			}
			val, err := requiredExpr(pm, "value", kind)
			if err != nil {
				return nil, errors.Wrapf(err, "props[%d]", i)
			}
			lit.Props = append(lit.Props, ObjectProp{Key: key, Value: val})
		}
		return lit, nil
	case "binary":
		x, err := requiredExpr(m, "left", kind)
		if err != nil {
			return nil, err
		}
		y, err := requiredExpr(m, "right", kind)
		if err != nil {
			return nil, err
		}
		op := str(m, "op")
		if op == "" {
			return nil, errors.New("ast: binary expression without an operator")
		}
		return &BinaryExpr{Op: op, X: x, Y: y, Src: span(m)}, nil
	case "assign":
		target, err := requiredExpr(m, "target", kind)
		if err != nil {
			return nil, err
		}
		value, err := requiredExpr(m, "value", kind)
		if err != nil {
			return nil, err
		}
		op := str(m, "op")
		if op == "" {
			op = "="
		}
		return &AssignExpr{Op: op, Target: target, Value: value, Src: span(m)}, nil
	case "unary":
		x, err := requiredExpr(m, "expr", kind)
		if err != nil {
			return nil, err
		}
		op := str(m, "op")
		if op == "" {
			return nil, errors.New("ast: unary expression without an operator")
		}
		return &UnaryExpr{Op: op, X: x, Postfix: flag(m, "postfix"), Src: span(m)}, nil
	case "conditional":
		cond, err := requiredExpr(m, "cond", kind)
		if err != nil {
			return nil, err
		}
		then, err := requiredExpr(m, "then", kind)
		if err != nil {
			return nil, err
		}
		els, err := requiredExpr(m, "else", kind)
		if err != nil {
			return nil, err
		}
		return &CondExpr{Cond: cond, Then: then, Else: els, Src: span(m)}, nil
	case "arrow":
		a := &ArrowExpr{Async: flag(m, "async"), Src: span(m)}
		var err error
		if a.Params, err = params(m); err != nil {
			return nil, err
		}
		if m["body"] != nil {
			if a.Block, err = blockField(m, "body"); err != nil {
				return nil, err
			}
		}
		if m["expr"] != nil {
			if a.Expr, err = exprField(m, "expr"); err != nil {
				return nil, err
			}
		}
		if a.Block == nil && a.Expr == nil {
			return nil, errors.New("ast: arrow function without a body")
		}
		return a, nil
	case "await":
		x, err := requiredExpr(m, "expr", kind)
		if err != nil {
			return nil, err
		}
		return &AwaitExpr{X: x, Src: span(m)}, nil
	case "template":
		t := &TemplateLit{Src: span(m)}
		for _, cv := range list(m, "chunks") {
			s, _ := cv.(string)
			t.Chunks = append(t.Chunks, s)
		}
		var err error
		if t.Exprs, err = exprList(m, "exprs"); err != nil {
			return nil, err
		}
		if len(t.Chunks) != len(t.Exprs)+1 {
			return nil, errors.Newf("ast: template literal with %d chunks and %d expressions", len(t.Chunks), len(t.Exprs))
		}
		return t, nil
	case "paren":
		x, err := requiredExpr(m, "expr", kind)
		if err != nil {
			return nil, err
		}
		return &ParenExpr{X: x, Src: span(m)}, nil
	}
	return nil, errors.Newf("ast: unknown expression kind %q", kind)
}

func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
