// Package python renders the dynamically-typed target: properties for
// accessors, frozen dataclasses for value objects, abc stubs for
// interfaces and concurrent.futures for asynchronous declarations.
package python

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/swipe-io/strcase"

	"github.com/typeshift-io/typeshift/ast"
	"github.com/typeshift-io/typeshift/gen"
)

const (
	importDataclass    = "from dataclasses import dataclass"
	importEnum         = "from enum import Enum"
	importABC          = "from abc import ABC, abstractmethod"
	importFuture       = "from concurrent.futures import Future"
	importPoolExecutor = "from concurrent.futures import ThreadPoolExecutor"
)

type Target struct{}

func New() *Target {
	return &Target{}
}

func init() {
	gen.RegisterTarget("python", func() gen.Target { return New() })
}

func (t *Target) Name() string {
	return "python"
}

func (t *Target) FileExtension() string {
	return ".py"
}

func (t *Target) Header(r *gen.Run, file *ast.File) []string {
	lines := []string{"# Code generated by typeshift. DO NOT EDIT."}
	if file.Name != "" {
		lines = append(lines, "# Source: "+file.Name)
	}
	return lines
}

func (t *Target) Imports(r *gen.Run) []string {
	return r.Imports.Sorted()
}

func (t *Target) Preamble(r *gen.Run) []string {
	if !r.Flags.HasAsync {
		return nil
	}
	r.Imports.Add(importPoolExecutor)
	return []string{"_EXECUTOR = ThreadPoolExecutor()"}
}

func (t *Target) End(r *gen.Run) {}

func (t *Target) LineComment(text string) string {
	if text == "" {
		return "#"
	}
	return "# " + text
}

func (t *Target) UnsupportedExpr(kind string) string {
	return "None"
}

// matchSupported gates match statements on python 3.10.
func (t *Target) matchSupported(r *gen.Run) bool {
	v, err := semver.NewVersion(r.Opts.TargetVersion)
	if err != nil {
		return false
	}
	return v.Compare(semver.MustParse("3.10")) >= 0
}

func name(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'A' && s[0] <= 'Z' {
		// class-like reference, keep as written
		return s
	}
	return strcase.ToSnake(s)
}

func constName(s string) string {
	return strcase.ToScreamingSnake(s)
}

func fieldStore(s string) string {
	return "_" + strcase.ToSnake(s)
}

// docstring emits a documentation block comment as a docstring at the
// current indent level.
func (t *Target) docstring(r *gen.Run, c *ast.Comment) {
	if c == nil || !r.Opts.PreserveComments {
		return
	}
	lines := gen.CommentLines(*c)
	if len(lines) == 0 {
		return
	}
	if len(lines) == 1 {
		r.W.Linef(`"""%s"""`, lines[0])
		return
	}
	r.W.Linef(`"""%s`, lines[0])
	for _, line := range lines[1:] {
		r.W.Linef("%s", line)
	}
	r.W.Linef(`"""`)
}

// body emits a block, falling back to pass so the construct stays valid.
func (t *Target) body(r *gen.Run, b *ast.BlockStmt) {
	r.W.In()
	if b == nil || len(b.Stmts) == 0 {
		r.W.Linef("pass")
	} else {
		r.Stmts(b.Stmts)
	}
	r.W.Out()
}

func (t *Target) stmts(r *gen.Run, list []ast.Stmt) {
	r.W.In()
	if len(list) == 0 {
		r.W.Linef("pass")
	} else {
		r.Stmts(list)
	}
	r.W.Out()
}

// params renders a signature parameter list, optionally with a leading
// self receiver.
func (t *Target) params(r *gen.Run, ps []*ast.Param, self bool) string {
	parts := make([]string, 0, len(ps)+1)
	if self {
		parts = append(parts, "self")
	}
	for _, p := range ps {
		s := strcase.ToSnake(p.Name)
		if r.Opts.EmitTypedSignatures && p.Type != nil {
			s += ": " + t.MapType(r, p.Type)
		}
		switch {
		case p.Default != nil:
			s += " = " + r.Expr(p.Default)
		case p.Optional:
			s += " = None"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

func (t *Target) returnAnnotation(r *gen.Run, ret *ast.TypeNode, async bool) string {
	if !r.Opts.EmitTypedSignatures {
		return ""
	}
	if async {
		ret = gen.PromiseResult(ret)
	}
	inner := "None"
	if ret != nil && !ret.IsVoid() {
		inner = t.MapType(r, ret)
	}
	if async {
		r.Imports.Add(importFuture)
		return fmt.Sprintf(" -> Future[%s]", inner)
	}
	return " -> " + inner
}

// function emits a def, wrapping asynchronous bodies in exactly one
// executor submission; awaits inside become blocking result() calls.
func (t *Target) function(r *gen.Run, funcName string, ps []*ast.Param, ret *ast.TypeNode, async bool, body *ast.BlockStmt, doc *ast.Comment, self bool, decorators []string) {
	for _, d := range decorators {
		r.W.Linef("%s", d)
	}
	r.W.Linef("def %s(%s)%s:", strcase.ToSnake(funcName), t.params(r, ps, self), t.returnAnnotation(r, ret, async))
	if !async {
		r.W.In()
		t.docstring(r, doc)
		if body == nil || len(body.Stmts) == 0 {
			r.W.Linef("pass")
		} else {
			r.Stmts(body.Stmts)
		}
		r.W.Out()
		return
	}
	r.Imports.Add(importPoolExecutor)
	r.W.In()
	t.docstring(r, doc)
	inner := "def _task():"
	if r.Opts.EmitTypedSignatures {
		innerRet := "None"
		if rt := gen.PromiseResult(ret); rt != nil && !rt.IsVoid() {
			innerRet = t.MapType(r, rt)
		}
		inner = fmt.Sprintf("def _task() -> %s:", innerRet)
	}
	r.W.Linef("%s", inner)
	t.body(r, body)
	r.W.Linef("return _EXECUTOR.submit(_task)")
	r.W.Out()
}

func (t *Target) Function(r *gen.Run, d *ast.FuncDecl) {
	t.function(r, d.Name, d.Params, d.Return, d.Async, d.Body, d.Doc, false, nil)
}

func (t *Target) Variable(r *gen.Run, d *ast.VarDecl, topLevel bool) {
	varName := strcase.ToSnake(d.Name)
	if topLevel && d.Const {
		varName = constName(d.Name)
	}
	annotation := ""
	if r.Opts.EmitTypedSignatures && d.Type != nil {
		annotation = ": " + t.MapType(r, d.Type)
	}
	switch {
	case d.Init != nil:
		r.W.Linef("%s%s = %s", varName, annotation, r.Expr(d.Init))
	case annotation != "":
		r.W.Linef("%s%s", varName, annotation)
	default:
		r.W.Linef("%s = None", varName)
	}
}

func (t *Target) Class(r *gen.Run, d *ast.ClassDecl) {
	if r.Opts.UseIdiomaticValueObjects && gen.IsValueObject(d) {
		t.valueObject(r, d)
		return
	}
	prev := r.EnterClass(d)
	defer r.LeaveClass(prev)

	parts := gen.SplitClass(d)
	bases := t.bases(d)
	if d.Abstract {
		r.Imports.Add(importABC)
		bases = append(bases, "ABC")
	}
	r.W.Linef("class %s%s:", strcase.ToCamel(d.Name), baseList(bases))
	r.W.In()
	t.docstring(r, d.Doc)

	empty := true
	for _, f := range parts.Fields {
		if !f.Static {
			continue
		}
		t.classAttr(r, f)
		empty = false
	}

	instance := instanceFields(parts.Fields)
	if len(instance) > 0 || parts.Ctor != nil {
		t.ctor(r, parts.Ctor, instance)
		empty = false
	}
	for _, f := range instance {
		r.W.Blank()
		t.accessors(r, f)
		empty = false
	}
	for _, m := range parts.Methods {
		r.W.Blank()
		r.LeadComments(m.Leading)
		t.method(r, m)
		empty = false
	}
	if empty {
		r.W.Linef("pass")
	}
	r.W.Out()
}

func (t *Target) bases(d *ast.ClassDecl) []string {
	var bases []string
	if d.Extends != nil && d.Extends.Name != "" {
		bases = append(bases, strcase.ToCamel(d.Extends.Name))
	}
	for _, i := range d.Implements {
		if i.Name != "" {
			bases = append(bases, strcase.ToCamel(i.Name))
		}
	}
	return bases
}

func baseList(bases []string) string {
	if len(bases) == 0 {
		return ""
	}
	return "(" + strings.Join(bases, ", ") + ")"
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

func (t *Target) classAttr(r *gen.Run, f *ast.FieldDecl) {
	attr := constName(f.Name)
	if !f.ReadOnly {
		attr = strcase.ToSnake(f.Name)
	}
	if f.Init != nil {
		r.W.Linef("%s = %s", attr, r.Expr(f.Init))
	} else {
		r.W.Linef("%s = None", attr)
	}
}

// ctor translates the explicit constructor or synthesizes the default
// one assigning every field from an identically named parameter.
func (t *Target) ctor(r *gen.Run, c *ast.CtorDecl, fields []*ast.FieldDecl) {
	if c != nil {
		r.W.Linef("def __init__(self%s)%s:", prefixComma(t.params(r, c.Params, false)), voidAnnotation(r))
		r.W.In()
		t.docstring(r, c.Doc)
		if c.Body == nil || len(c.Body.Stmts) == 0 {
			r.W.Linef("pass")
		} else {
			r.Stmts(c.Body.Stmts)
		}
		r.W.Out()
		return
	}
	params := make([]string, 0, len(fields))
	for _, f := range fields {
		p := strcase.ToSnake(f.Name)
		if r.Opts.EmitTypedSignatures && f.Type != nil {
			p += ": " + t.MapType(r, f.Type)
		}
		if f.Init != nil {
			p += " = " + r.Expr(f.Init)
		}
		params = append(params, p)
	}
	r.W.Linef("def __init__(self%s)%s:", prefixComma(strings.Join(params, ", ")), voidAnnotation(r))
	r.W.In()
	for _, f := range fields {
		r.W.Linef("self.%s = %s", fieldStore(f.Name), strcase.ToSnake(f.Name))
	}
	if len(fields) == 0 {
		r.W.Linef("pass")
	}
	r.W.Out()
}

func prefixComma(s string) string {
	if s == "" {
		return ""
	}
	return ", " + s
}

func voidAnnotation(r *gen.Run) string {
	if r.Opts.EmitTypedSignatures {
		return " -> None"
	}
	return ""
}

// accessors emits the read property and, for mutable fields, the setter.
func (t *Target) accessors(r *gen.Run, f *ast.FieldDecl) {
	prop := strcase.ToSnake(f.Name)
	annotation := ""
	setterAnnotation := ""
	if r.Opts.EmitTypedSignatures && f.Type != nil {
		mapped := t.MapType(r, f.Type)
		annotation = " -> " + mapped
		setterAnnotation = ": " + mapped
	}
	r.W.Linef("@property")
	r.W.Linef("def %s(self)%s:", prop, annotation)
	r.W.In()
	r.W.Linef("return self.%s", fieldStore(f.Name))
	r.W.Out()
	if f.ReadOnly {
		return
	}
	r.W.Blank()
	r.W.Linef("@%s.setter", prop)
	r.W.Linef("def %s(self, value%s)%s:", prop, setterAnnotation, voidAnnotation(r))
	r.W.In()
	r.W.Linef("self.%s = value", fieldStore(f.Name))
	r.W.Out()
}

func (t *Target) method(r *gen.Run, m *ast.MethodDecl) {
	var decorators []string
	if m.Static {
		decorators = append(decorators, "@staticmethod")
	}
	if m.Body == nil {
		r.Imports.Add(importABC)
		decorators = append(decorators, "@abstractmethod")
		for _, d := range decorators {
			r.W.Linef("%s", d)
		}
		r.W.Linef("def %s(%s)%s:", strcase.ToSnake(m.Name), t.params(r, m.Params, !m.Static), t.returnAnnotation(r, m.Return, m.Async))
		r.W.In()
		t.docstring(r, m.Doc)
		r.W.Linef("raise NotImplementedError")
		r.W.Out()
		return
	}
	t.function(r, m.Name, m.Params, m.Return, m.Async, m.Body, m.Doc, !m.Static, decorators)
}

func (t *Target) valueObject(r *gen.Run, d *ast.ClassDecl) {
	r.Imports.Add(importDataclass)
	r.W.Linef("@dataclass(frozen=True)")
	r.W.Linef("class %s:", strcase.ToCamel(d.Name))
	r.W.In()
	t.docstring(r, d.Doc)
	parts := gen.SplitClass(d)
	for _, f := range parts.Fields {
		var annotation string
		if f.Type != nil {
			annotation = t.MapType(r, f.Type)
		} else {
			annotation = t.anyType(r)
		}
		if f.Init != nil {
			r.W.Linef("%s: %s = %s", strcase.ToSnake(f.Name), annotation, r.Expr(f.Init))
		} else {
			r.W.Linef("%s: %s", strcase.ToSnake(f.Name), annotation)
		}
	}
	r.W.Out()
}

func (t *Target) Interface(r *gen.Run, d *ast.InterfaceDecl) {
	r.Imports.Add(importABC)
	bases := make([]string, 0, len(d.Extends)+1)
	for _, e := range d.Extends {
		if e.Name != "" {
			bases = append(bases, strcase.ToCamel(e.Name))
		}
	}
	bases = append(bases, "ABC")
	r.W.Linef("class %s%s:", strcase.ToCamel(d.Name), baseList(bases))
	r.W.In()
	t.docstring(r, d.Doc)
	if len(d.Members) == 0 {
		r.W.Linef("pass")
	}
	for i, m := range d.Members {
		if i > 0 {
			r.W.Blank()
		}
		switch sig := m.(type) {
		case *ast.MethodSig:
			r.LeadComments(sig.Leading)
			r.W.Linef("@abstractmethod")
			r.W.Linef("def %s(%s)%s:", strcase.ToSnake(sig.Name), t.params(r, sig.Params, true), t.returnAnnotation(r, sig.Return, false))
			r.W.In()
			t.docstring(r, sig.Doc)
			r.W.Linef("raise NotImplementedError")
			r.W.Out()
		case *ast.PropertySig:
			r.LeadComments(sig.Leading)
			r.W.Linef("@property")
			r.W.Linef("@abstractmethod")
			r.W.Linef("def %s(self)%s:", strcase.ToSnake(sig.Name), t.returnAnnotation(r, sig.Type, false))
			r.W.In()
			t.docstring(r, sig.Doc)
			r.W.Linef("raise NotImplementedError")
			r.W.Out()
		default:
			r.Placeholder("interface member", m)
		}
	}
	r.W.Out()
}

// Enum preserves declared values and auto-increments positional ones the
// way the source language does.
func (t *Target) Enum(r *gen.Run, d *ast.EnumDecl) {
	r.Imports.Add(importEnum)
	r.W.Linef("class %s(Enum):", strcase.ToCamel(d.Name))
	r.W.In()
	t.docstring(r, d.Doc)
	if len(d.Members) == 0 {
		r.W.Linef("pass")
	}
	next := 0
	for _, m := range d.Members {
		switch v := m.Value.(type) {
		case nil:
			r.W.Linef("%s = %d", constName(m.Name), next)
			next++
		case *ast.NumberLit:
			r.W.Linef("%s = %s", constName(m.Name), v.Value)
			if n, ok := intValue(v.Value); ok {
				next = n + 1
			}
		default:
			r.W.Linef("%s = %s", constName(m.Name), r.Expr(m.Value))
		}
	}
	r.W.Out()
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
