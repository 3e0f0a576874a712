// Copyright 2024 The rjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rjsonfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rjson/rjson"
)

// Fprint writes a human-readable, indented rendering of v to w. Unlike
// rjson.Encode, this is not the wire format: it adds whitespace and,
// when opts.Color is set, ANSI styling, and is meant only for terminal
// inspection and debugging.
func Fprint(w io.Writer, v *rjson.Value, opts Options) error {
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	p := &printer{w: w, indent: indent, color: opts.Color}
	return p.printValue(v, 0)
}

type printer struct {
	w      io.Writer
	indent string
	color  bool
	err    error
}

func (p *printer) style(s string, style interface{ Render(...string) string }) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

func (p *printer) writef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) pad(depth int) string {
	return strings.Repeat(p.indent, depth)
}

func (p *printer) printValue(v *rjson.Value, depth int) error {
	p.render(v, depth)
	return p.err
}

func (p *printer) render(v *rjson.Value, depth int) {
	switch v.Kind() {
	case rjson.KindNull:
		p.writef("%s", p.style("null", nullStyle))
	case rjson.KindBool:
		if v.Bool() {
			p.writef("%s", p.style("true", boolStyle))
		} else {
			p.writef("%s", p.style("false", boolStyle))
		}
	case rjson.KindNumber:
		p.writef("%s", p.style(formatFloat(v.Number()), numberStyle))
	case rjson.KindString:
		p.writef("%s", p.style(quoteRaw(v.Str()), stringStyle))
	case rjson.KindArray:
		p.renderArray(v, depth)
	case rjson.KindObject:
		p.renderObject(v, depth)
	}
}

func (p *printer) renderArray(v *rjson.Value, depth int) {
	elems := v.Elements()
	if len(elems) == 0 {
		p.writef("%s", p.style("[]", punctStyle))
		return
	}
	p.writef("%s\n", p.style("[", punctStyle))
	for i, e := range elems {
		p.writef("%s", p.pad(depth+1))
		p.render(e, depth+1)
		if i < len(elems)-1 {
			p.writef("%s", p.style(",", punctStyle))
		}
		p.writef("\n")
	}
	p.writef("%s%s", p.pad(depth), p.style("]", punctStyle))
}

func (p *printer) renderObject(v *rjson.Value, depth int) {
	members := v.Members()
	if len(members) == 0 {
		p.writef("%s", p.style("{}", punctStyle))
		return
	}
	p.writef("%s\n", p.style("{", punctStyle))
	for i, m := range members {
		p.writef("%s%s%s ", p.pad(depth+1), p.style(quoteRaw(m.Key), keyStyle), p.style(":", punctStyle))
		p.render(m.Value, depth+1)
		if i < len(members)-1 {
			p.writef("%s", p.style(",", punctStyle))
		}
		p.writef("\n")
	}
	p.writef("%s%s", p.pad(depth), p.style("}", punctStyle))
}

// formatFloat renders a number the way the original rjson_print does
// ("%g", the shortest round-trippable form), deliberately not reusing
// encode.go's fixed 17-significant-digit policy: this output is never fed
// back into Decode.
func formatFloat(f float64) string {
	return string(strconv.AppendFloat(nil, f, 'g', -1, 64))
}

// quoteRaw wraps s in double quotes without escaping any byte, matching
// the original rjson_print's printf("\"%s\"", ...) — this is cosmetic
// terminal output, not a re-parseable wire string.
func quoteRaw(s []byte) string {
	return `"` + string(s) + `"`
}
