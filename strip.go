// Copyright 2026 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package astcmp

import (
	"reflect"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/dstutil"
)

// scrubbedFields are node struct fields that never carry meaning for a
// structural comparison: the per-file resolver bookkeeping. They are
// cleared by name on every node kind that has them. Ident resolver links
// are cleared separately; ImportSpec has a field also named Path that is
// the import itself, so "Path" must not be in this list.
var scrubbedFields = []string{"Scope", "Imports", "Unresolved"}

var (
	decorationsType = reflect.TypeOf(dst.Decorations(nil))
	spaceTypeType   = reflect.TypeOf(dst.SpaceType(0))
)

// scrub removes non-semantic state from every node under root, depth
// first: resolver links, spacing decorations, comment text unless opts
// keeps it, and parentheses whose removal cannot change how the printed
// tree parses back.
func scrub(root dst.Node, opts *Options) {
	keep := opts.comments()
	dstutil.Apply(root, nil, func(c *dstutil.Cursor) bool {
		if p, ok := c.Node().(*dst.ParenExpr); ok && selfDelimited(p.X, c.Parent()) {
			// The inner node was already scrubbed on the way up; carry
			// over whatever comments the parens themselves held.
			if keep {
				if moved := gatherComments(reflect.ValueOf(&p.Decs).Elem()); len(moved) > 0 {
					inner := p.X.Decorations()
					inner.Start = append(moved, inner.Start...)
				}
			}
			c.Replace(p.X)
			return true
		}
		scrubNode(c.Node(), keep)
		return true
	})
}

// scrubNode clears the excluded fields and decoration state of a single
// node. Idents carry their resolver links directly and are handled first;
// everything else goes through the reflected field names, so the walk
// needs no per-kind switch.
func scrubNode(n dst.Node, keepComments bool) {
	if id, ok := n.(*dst.Ident); ok {
		id.Obj = nil
		id.Path = ""
	}
	v := reflect.ValueOf(n)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	for _, name := range scrubbedFields {
		if f := v.FieldByName(name); f.IsValid() && f.CanSet() {
			f.Set(reflect.Zero(f.Type()))
		}
	}
	if decs := v.FieldByName("Decs"); decs.IsValid() {
		scrubDecorations(decs, keepComments)
	}
}

// scrubDecorations walks a node's decoration struct: comment slices are
// emptied (or filtered down to comment text), spacing hints are reset.
func scrubDecorations(v reflect.Value, keepComments bool) {
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		switch {
		case f.Type() == decorationsType:
			f.Set(reflect.ValueOf(filterComments(f.Interface().(dst.Decorations), keepComments)))
		case f.Type() == spaceTypeType:
			f.Set(reflect.Zero(spaceTypeType))
		case f.Kind() == reflect.Struct:
			scrubDecorations(f, keepComments)
		}
	}
}

// filterComments drops the layout entries ("\n") of a decoration list,
// keeping comment text only when asked to. Decoration entries are either
// comments or newlines, nothing else.
func filterComments(decs dst.Decorations, keep bool) dst.Decorations {
	if !keep {
		return nil
	}
	var out dst.Decorations
	for _, d := range decs {
		if isComment(d) {
			out = append(out, d)
		}
	}
	return out
}

func isComment(dec string) bool {
	return strings.HasPrefix(dec, "//") || strings.HasPrefix(dec, "/*")
}

// gatherComments collects the comment text from every decoration slice of
// a node's decoration struct, in field order.
func gatherComments(v reflect.Value) dst.Decorations {
	var out dst.Decorations
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		switch {
		case f.Type() == decorationsType:
			for _, d := range f.Interface().(dst.Decorations) {
				if isComment(d) {
					out = append(out, d)
				}
			}
		case f.Kind() == reflect.Struct:
			out = append(out, gatherComments(f)...)
		}
	}
	return out
}

// selfDelimited reports whether expr needs no surrounding parentheses in
// any context: removing them can neither change precedence nor merge the
// expression with neighboring tokens when the tree is printed again.
func selfDelimited(expr dst.Expr, parent dst.Node) bool {
	switch expr.(type) {
	case *dst.Ident, *dst.SelectorExpr, *dst.IndexExpr, *dst.IndexListExpr,
		*dst.SliceExpr, *dst.CallExpr, *dst.TypeAssertExpr, *dst.ParenExpr:
		return true
	case *dst.BasicLit:
		// (2).M prints as 2.M, which lexes as a float followed by an
		// identifier. Keep the parens when a selector is waiting.
		_, sel := parent.(*dst.SelectorExpr)
		return !sel
	}
	return false
}
