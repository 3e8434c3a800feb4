// Package java renders the statically-typed target: private fields
// behind getter and setter pairs, records for value objects, native
// interfaces and enums and CompletableFuture for asynchronous
// declarations.
package java

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/swipe-io/strcase"

	"github.com/typeshift-io/typeshift/ast"
	"github.com/typeshift-io/typeshift/gen"
)

const importFuture = "import java.util.concurrent.CompletableFuture;"

// holderName wraps loose top-level functions and variables, which have
// no direct java equivalent.
const holderName = "Program"

type Target struct{}

func New() *Target {
	return &Target{}
}

func init() {
	gen.RegisterTarget("java", func() gen.Target { return New() })
}

// runState is per-run scratch carried on gen.Run.State.
type runState struct {
	holderOpen bool
}

func state(r *gen.Run) *runState {
	if r.State == nil {
		r.State = &runState{}
	}
	return r.State.(*runState)
}

func (t *Target) Name() string {
	return "java"
}

func (t *Target) FileExtension() string {
	return ".java"
}

func (t *Target) Header(r *gen.Run, file *ast.File) []string {
	lines := []string{"// Code generated by typeshift. DO NOT EDIT."}
	if file.Name != "" {
		lines = append(lines, "// Source: "+file.Name)
	}
	if r.Opts.NamespacePrefix != "" {
		lines = append(lines, "", fmt.Sprintf("package %s;", r.Opts.NamespacePrefix))
	}
	return lines
}

func (t *Target) Imports(r *gen.Run) []string {
	return r.Imports.Sorted()
}

func (t *Target) Preamble(r *gen.Run) []string {
	return nil
}

// End closes the holder class when loose declarations opened one.
func (t *Target) End(r *gen.Run) {
	if state(r).holderOpen {
		r.W.Out()
		r.W.Linef("}")
	}
}

func (t *Target) LineComment(text string) string {
	if text == "" {
		return "//"
	}
	return "// " + text
}

func (t *Target) UnsupportedExpr(kind string) string {
	return "null"
}

// ensureHolder opens the holder class the first time a declaration is
// emitted into a file that carries loose functions or variables.
func (t *Target) ensureHolder(r *gen.Run) {
	s := state(r)
	if !r.Flags.Loose || s.holderOpen {
		return
	}
	r.W.Linef("public final class %s {", holderName)
	r.W.In()
	s.holderOpen = true
}

// visibility returns the declaration modifier, adding static when the
// declaration nests inside the holder class.
func visibility(r *gen.Run, static bool) string {
	mod := "public "
	if state(r).holderOpen || static {
		mod += "static "
	}
	return mod
}

func recordsSupported(r *gen.Run) bool {
	v, err := semver.NewVersion(r.Opts.TargetVersion)
	if err != nil {
		return false
	}
	return v.Compare(semver.MustParse("16.0.0")) >= 0
}

func (t *Target) docComment(r *gen.Run, c *ast.Comment) {
	if c == nil || !r.Opts.PreserveComments {
		return
	}
	lines := gen.CommentLines(*c)
	if len(lines) == 0 {
		return
	}
	r.W.Linef("/**")
	for _, line := range lines {
		r.W.Linef(" * %s", line)
	}
	r.W.Linef(" */")
}

func (t *Target) params(r *gen.Run, ps []*ast.Param) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = fmt.Sprintf("%s %s", t.MapType(r, p.Type), strcase.ToLowerCamel(p.Name))
	}
	return strings.Join(parts, ", ")
}

func (t *Target) Class(r *gen.Run, d *ast.ClassDecl) {
	t.ensureHolder(r)
	if r.Opts.UseIdiomaticValueObjects && gen.IsValueObject(d) && recordsSupported(r) {
		t.record(r, d)
		return
	}
	prev := r.EnterClass(d)
	defer r.LeaveClass(prev)

	parts := gen.SplitClass(d)
	decl := visibility(r, false)
	if d.Abstract {
		decl += "abstract "
	}
	decl += "class " + strcase.ToCamel(d.Name)
	if d.Extends != nil && d.Extends.Name != "" {
		decl += " extends " + strcase.ToCamel(d.Extends.Name)
	}
	if len(d.Implements) > 0 {
		names := make([]string, len(d.Implements))
		for i, impl := range d.Implements {
			names[i] = strcase.ToCamel(impl.Name)
		}
		decl += " implements " + strings.Join(names, ", ")
	}
	t.docComment(r, d.Doc)
	r.W.Linef("%s {", decl)
	r.W.In()

	emitted := 0
	for _, f := range parts.Fields {
		t.field(r, f)
		emitted++
	}
	instance := instanceFields(parts.Fields)
	if len(instance) > 0 || parts.Ctor != nil {
		if emitted > 0 {
			r.W.Blank()
		}
		t.ctor(r, d, parts.Ctor, instance)
		emitted++
	}
	for _, f := range instance {
		r.W.Blank()
		t.accessors(r, f)
	}
	for _, m := range parts.Methods {
		if emitted > 0 {
			r.W.Blank()
		}
		r.LeadComments(m.Leading)
		t.method(r, m)
		emitted++
	}
	r.W.Out()
	r.W.Linef("}")
}

// record renders a value-object class as a record declaration.
func (t *Target) record(r *gen.Run, d *ast.ClassDecl) {
	parts := gen.SplitClass(d)
	comps := make([]string, len(parts.Fields))
	for i, f := range parts.Fields {
		comps[i] = fmt.Sprintf("%s %s", t.MapType(r, f.Type), strcase.ToLowerCamel(f.Name))
	}
	t.docComment(r, d.Doc)
	r.W.Linef("%srecord %s(%s) {", visibility(r, false), strcase.ToCamel(d.Name), strings.Join(comps, ", "))
	r.W.Linef("}")
}

func instanceFields(fields []*ast.FieldDecl) []*ast.FieldDecl {
	out := make([]*ast.FieldDecl, 0, len(fields))
	for _, f := range fields {
		if !f.Static {
			out = append(out, f)
		}
	}
	return out
}

func (t *Target) field(r *gen.Run, f *ast.FieldDecl) {
	typ := t.MapType(r, f.Type)
	switch {
	case f.Static && f.ReadOnly:
		r.W.Linef("public static final %s %s = %s;", typ, strcase.ToScreamingSnake(f.Name), t.fieldInit(r, f))
	case f.Static:
		r.W.Linef("public static %s %s = %s;", typ, strcase.ToLowerCamel(f.Name), t.fieldInit(r, f))
	case f.ReadOnly:
		r.W.Linef("private final %s %s;", typ, strcase.ToLowerCamel(f.Name))
	default:
		if f.Init != nil {
			r.W.Linef("private %s %s = %s;", typ, strcase.ToLowerCamel(f.Name), r.Expr(f.Init))
		} else {
			r.W.Linef("private %s %s;", typ, strcase.ToLowerCamel(f.Name))
		}
	}
}

func (t *Target) fieldInit(r *gen.Run, f *ast.FieldDecl) string {
	if f.Init != nil {
		return r.Expr(f.Init)
	}
	return zeroValue(f.Type)
}

func intValue(s string) (int, bool) {
	n := 0
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func zeroValue(tn *ast.TypeNode) string {
	if tn != nil && tn.Kind == ast.TypeName {
		switch tn.Name {
		case ast.Number:
			return "0"
		case ast.Boolean:
			return "false"
		}
	}
	return "null"
}

// ctor translates the explicit constructor or synthesizes the canonical
// field-assigning one. Read-only fields must be assigned somewhere, so
// the synthesized form takes every instance field as a parameter.
func (t *Target) ctor(r *gen.Run, d *ast.ClassDecl, c *ast.CtorDecl, fields []*ast.FieldDecl) {
	className := strcase.ToCamel(d.Name)
	if c != nil {
		t.docComment(r, c.Doc)
		r.W.Linef("public %s(%s) {", className, t.params(r, c.Params))
		r.W.In()
		if c.Body != nil {
			r.Stmts(c.Body.Stmts)
		}
		r.W.Out()
		r.W.Linef("}")
		return
	}
	params := make([]string, len(fields))
	for i, f := range fields {
		params[i] = fmt.Sprintf("%s %s", t.MapType(r, f.Type), strcase.ToLowerCamel(f.Name))
	}
	r.W.Linef("public %s(%s) {", className, strings.Join(params, ", "))
	r.W.In()
	for _, f := range fields {
		fieldName := strcase.ToLowerCamel(f.Name)
		r.W.Linef("this.%s = %s;", fieldName, fieldName)
	}
	r.W.Out()
	r.W.Linef("}")
}

func (t *Target) accessors(r *gen.Run, f *ast.FieldDecl) {
	typ := t.MapType(r, f.Type)
	fieldName := strcase.ToLowerCamel(f.Name)
	r.W.Linef("public %s get%s() {", typ, strcase.ToCamel(f.Name))
	r.W.In()
	r.W.Linef("return this.%s;", fieldName)
	r.W.Out()
	r.W.Linef("}")
	if f.ReadOnly {
		return
	}
	r.W.Blank()
	r.W.Linef("public void set%s(%s value) {", strcase.ToCamel(f.Name), typ)
	r.W.In()
	r.W.Linef("this.%s = value;", fieldName)
	r.W.Out()
	r.W.Linef("}")
}

func (t *Target) method(r *gen.Run, m *ast.MethodDecl) {
	t.docComment(r, m.Doc)
	ret := t.returnType(r, m.Return, m.Async)
	mod := "public "
	if m.Static {
		mod = "public static "
	}
	if m.Body == nil {
		r.W.Linef("%sabstract %s %s(%s);", mod, ret, strcase.ToLowerCamel(m.Name), t.params(r, m.Params))
		return
	}
	r.W.Linef("%s%s %s(%s) {", mod, ret, strcase.ToLowerCamel(m.Name), t.params(r, m.Params))
	t.functionBody(r, m.Return, m.Async, m.Body)
}

// functionBody emits the already-opened body and its closing brace,
// wrapping asynchronous bodies in exactly one CompletableFuture factory
// call; awaits inside become blocking join() calls.
func (t *Target) functionBody(r *gen.Run, ret *ast.TypeNode, async bool, body *ast.BlockStmt) {
	r.W.In()
	if !async {
		if body != nil {
			r.Stmts(body.Stmts)
		}
		r.W.Out()
		r.W.Linef("}")
		return
	}
	r.Imports.Add(importFuture)
	factory := "supplyAsync"
	if rt := gen.PromiseResult(ret); rt == nil || rt.IsVoid() {
		factory = "runAsync"
	}
	r.W.Linef("return CompletableFuture.%s(() -> {", factory)
	r.W.In()
	if body != nil {
		r.Stmts(body.Stmts)
	}
	r.W.Out()
	r.W.Linef("});")
	r.W.Out()
	r.W.Linef("}")
}

func (t *Target) returnType(r *gen.Run, ret *ast.TypeNode, async bool) string {
	if async {
		r.Imports.Add(importFuture)
		rt := gen.PromiseResult(ret)
		if rt == nil || rt.IsVoid() {
			return "CompletableFuture<Void>"
		}
		return fmt.Sprintf("CompletableFuture<%s>", t.boxedType(r, rt))
	}
	if ret == nil {
		return "void"
	}
	return t.MapType(r, ret)
}

func (t *Target) Function(r *gen.Run, d *ast.FuncDecl) {
	t.ensureHolder(r)
	t.docComment(r, d.Doc)
	r.W.Linef("%s%s %s(%s) {", visibility(r, true), t.returnType(r, d.Return, d.Async), strcase.ToLowerCamel(d.Name), t.params(r, d.Params))
	t.functionBody(r, d.Return, d.Async, d.Body)
}

func (t *Target) Variable(r *gen.Run, d *ast.VarDecl, topLevel bool) {
	if !topLevel {
		t.localVariable(r, d)
		return
	}
	t.ensureHolder(r)
	typ := t.MapType(r, d.Type)
	value := zeroValue(d.Type)
	if d.Init != nil {
		value = r.Expr(d.Init)
	}
	if d.Const {
		r.W.Linef("%sfinal %s %s = %s;", visibility(r, true), typ, strcase.ToScreamingSnake(d.Name), value)
		return
	}
	r.W.Linef("%s%s %s = %s;", visibility(r, true), typ, strcase.ToLowerCamel(d.Name), value)
}

func (t *Target) localVariable(r *gen.Run, d *ast.VarDecl) {
	varName := strcase.ToLowerCamel(d.Name)
	switch {
	case d.Type == nil && d.Init != nil:
		r.W.Linef("var %s = %s;", varName, r.Expr(d.Init))
	case d.Init != nil:
		r.W.Linef("%s %s = %s;", t.MapType(r, d.Type), varName, r.Expr(d.Init))
	default:
		r.W.Linef("%s %s;", t.MapType(r, d.Type), varName)
	}
}

func (t *Target) Interface(r *gen.Run, d *ast.InterfaceDecl) {
	t.ensureHolder(r)
	t.docComment(r, d.Doc)
	decl := visibility(r, false) + "interface " + strcase.ToCamel(d.Name)
	if len(d.Extends) > 0 {
		names := make([]string, len(d.Extends))
		for i, e := range d.Extends {
			names[i] = strcase.ToCamel(e.Name)
		}
		decl += " extends " + strings.Join(names, ", ")
	}
	r.W.Linef("%s {", decl)
	r.W.In()
	for i, m := range d.Members {
		if i > 0 {
			r.W.Blank()
		}
		switch sig := m.(type) {
		case *ast.MethodSig:
			r.LeadComments(sig.Leading)
			t.docComment(r, sig.Doc)
			r.W.Linef("%s %s(%s);", t.returnType(r, sig.Return, false), strcase.ToLowerCamel(sig.Name), t.params(r, sig.Params))
		case *ast.PropertySig:
			r.LeadComments(sig.Leading)
			t.docComment(r, sig.Doc)
			typ := t.MapType(r, sig.Type)
			r.W.Linef("%s get%s();", typ, strcase.ToCamel(sig.Name))
			if !sig.ReadOnly {
				r.W.Linef("void set%s(%s value);", strcase.ToCamel(sig.Name), typ)
			}
		default:
			r.Placeholder("interface member", m)
		}
	}
	r.W.Out()
	r.W.Linef("}")
}

// Enum renders plain constants when no member declares a value and the
// field-backed form when any does.
func (t *Target) Enum(r *gen.Run, d *ast.EnumDecl) {
	t.ensureHolder(r)
	t.docComment(r, d.Doc)
	valued := false
	valueType := "int"
	for _, m := range d.Members {
		if m.Value == nil {
			continue
		}
		valued = true
		if _, ok := m.Value.(*ast.StringLit); ok {
			valueType = "String"
		}
	}
	r.W.Linef("%senum %s {", visibility(r, false), strcase.ToCamel(d.Name))
	r.W.In()
	if !valued {
		names := make([]string, len(d.Members))
		for i, m := range d.Members {
			names[i] = strcase.ToScreamingSnake(m.Name)
		}
		r.W.Linef("%s", strings.Join(names, ", "))
		r.W.Out()
		r.W.Linef("}")
		return
	}
	next := 0
	for i, m := range d.Members {
		value := fmt.Sprintf("%d", next)
		switch v := m.Value.(type) {
		case nil:
			next++
		case *ast.NumberLit:
			value = v.Value
			if n, ok := intValue(v.Value); ok {
				next = n + 1
			}
		default:
			value = r.Expr(m.Value)
		}
		sep := ","
		if i == len(d.Members)-1 {
			sep = ";"
		}
		r.W.Linef("%s(%s)%s", strcase.ToScreamingSnake(m.Name), value, sep)
	}
	r.W.Blank()
	r.W.Linef("private final %s value;", valueType)
	r.W.Blank()
	r.W.Linef("%s(%s value) {", strcase.ToCamel(d.Name), valueType)
	r.W.In()
	r.W.Linef("this.value = value;")
	r.W.Out()
	r.W.Linef("}")
	r.W.Blank()
	r.W.Linef("public %s getValue() {", valueType)
	r.W.In()
	r.W.Linef("return value;")
	r.W.Out()
	r.W.Linef("}")
	r.W.Out()
	r.W.Linef("}")
}
