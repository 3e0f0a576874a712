// Copyright 2024 The rjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rjson

import (
	"math"

	"github.com/rjson/rjson/internal/dynbuf"
	"github.com/rjson/rjson/internal/jsonwire"
)

// Encode serializes v to compact JSON text per RFC 8259: no insignificant
// whitespace, members and elements in insertion order, and a fixed escape
// policy with no configuration surface. It fails if any number reachable
// from v is not finite, or if v nests deeper than MaxDepth. On failure
// the partially built buffer is discarded; the caller never sees a
// truncated result.
func Encode(v *Value) ([]byte, error) {
	e := &encoder{}
	if err := e.encodeValue(v, 0); err != nil {
		return nil, err
	}
	return e.buf.Take(), nil
}

type encoder struct {
	buf dynbuf.Buffer
}

func (e *encoder) encodeValue(v *Value, depth int) error {
	if v == nil {
		return newSemanticError(0, "cannot encode a nil value")
	}
	if v.released {
		return newSemanticError(0, "cannot encode a released value")
	}
	switch v.kind {
	case KindNull:
		e.buf.Append([]byte("null"))
		return nil
	case KindBool:
		if v.boolVal {
			e.buf.Append([]byte("true"))
		} else {
			e.buf.Append([]byte("false"))
		}
		return nil
	case KindNumber:
		if math.IsNaN(v.numVal) || math.IsInf(v.numVal, 0) {
			return newSemanticError(0, "cannot encode a non-finite number")
		}
		e.buf.Append(jsonwire.AppendFloat(nil, v.numVal))
		return nil
	case KindString:
		e.buf.Append(jsonwire.AppendQuote(nil, v.strVal))
		return nil
	case KindArray:
		return e.encodeArray(v, depth)
	case KindObject:
		return e.encodeObject(v, depth)
	default:
		return newSemanticError(0, "cannot encode value of unknown kind")
	}
}

func (e *encoder) encodeArray(v *Value, depth int) error {
	if depth >= MaxDepth {
		return newSemanticError(0, "maximum nesting depth exceeded")
	}
	e.buf.AppendByte('[')
	for i, elem := range v.arrVal {
		if i > 0 {
			e.buf.AppendByte(',')
		}
		if err := e.encodeValue(elem, depth+1); err != nil {
			return err
		}
	}
	e.buf.AppendByte(']')
	return nil
}

func (e *encoder) encodeObject(v *Value, depth int) error {
	if depth >= MaxDepth {
		return newSemanticError(0, "maximum nesting depth exceeded")
	}
	e.buf.AppendByte('{')
	for i, m := range v.objVal {
		if i > 0 {
			e.buf.AppendByte(',')
		}
		e.buf.Append(jsonwire.AppendQuote(nil, m.Key))
		e.buf.AppendByte(':')
		if err := e.encodeValue(m.Value, depth+1); err != nil {
			return err
		}
	}
	e.buf.AppendByte('}')
	return nil
}
