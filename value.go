// Copyright 2024 The rjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rjson implements a strict, dependency-free codec for the JSON
// text interchange format (RFC 8259) built around a single in-memory tree
// representation. It exposes decode (text to tree), encode (tree to text),
// and tree construction and mutation.
//
// The decoder enforces every strictness rule in RFC 8259: no comments, no
// trailing commas, no unquoted keys, locale-independent numeric grammar,
// and validated \u-escape surrogate handling. The encoder produces compact
// output with a fixed escape policy and 17-significant-digit numbers so
// that any finite float64 round-trips.
package rjson

// Kind identifies which variant of the JSON grammar a Value holds. It is
// deliberately the first byte of that kind's own grammar, except that
// booleans are tagged 'b' (covering both 't' and 'f') and numbers are
// tagged '0' (not '-' or a digit) since a Value stores its number already
// converted.
type Kind byte

const (
	KindNull   Kind = 'n'
	KindBool   Kind = 'b'
	KindNumber Kind = '0'
	KindString Kind = '"'
	KindArray  Kind = '['
	KindObject Kind = '{'
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Member is one (key, value) pair of an object, in insertion order.
type Member struct {
	Key   []byte
	Value *Value
}

// Value is a node of the JSON tree: a tagged variant holding exactly one of
// the six value kinds in RFC 8259 section 3 (null, bool, number, string,
// array, object). A Value owns every descendant reachable through it;
// Release disposes of a whole tree in one call.
//
// The zero Value is not valid; construct one with Null, Bool, Number,
// String, Array, or Object.
type Value struct {
	kind     Kind
	boolVal  bool
	numVal   float64
	strVal   []byte
	arrVal   []*Value
	objVal   []Member
	released bool
}

// Kind reports which variant v holds.
func (v *Value) Kind() Kind { return v.kind }

func (v *Value) checkKind(k Kind) {
	if v.released {
		panic("rjson: use of released Value")
	}
	if v.kind != k {
		panic("rjson: value is a " + v.kind.String() + ", not a " + k.String())
	}
}

// Bool returns the boolean payload. It panics if v is not a KindBool.
func (v *Value) Bool() bool {
	v.checkKind(KindBool)
	return v.boolVal
}

// Number returns the numeric payload. It panics if v is not a KindNumber.
func (v *Value) Number() float64 {
	v.checkKind(KindNumber)
	return v.numVal
}

// Str returns the string payload. It panics if v is not a KindString. The
// returned slice aliases v's storage and must not be mutated.
func (v *Value) Str() []byte {
	v.checkKind(KindString)
	return v.strVal
}

// Len reports the number of elements in an array or members in an object.
// It panics for any other kind.
func (v *Value) Len() int {
	if v.released {
		panic("rjson: use of released Value")
	}
	switch v.kind {
	case KindArray:
		return len(v.arrVal)
	case KindObject:
		return len(v.objVal)
	default:
		panic("rjson: value is a " + v.kind.String() + ", not an array or object")
	}
}

// Elements returns the array's elements in order. It panics if v is not a
// KindArray. The returned slice aliases v's storage and must not be
// mutated; use Add to append.
func (v *Value) Elements() []*Value {
	v.checkKind(KindArray)
	return v.arrVal
}

// Members returns the object's (key, value) pairs in insertion order,
// including any duplicate keys. It panics if v is not a KindObject.
func (v *Value) Members() []Member {
	v.checkKind(KindObject)
	return v.objVal
}

// Null constructs a KindNull value.
func Null() *Value { return &Value{kind: KindNull} }

// Bool constructs a KindBool value. Any nonzero input means true, matching
// the C original's int-as-bool convention; in Go this is just the bool b.
func Bool(b bool) *Value { return &Value{kind: KindBool, boolVal: b} }

// Number constructs a KindNumber value from x as-is. The caller is
// responsible for x being finite if the value will later be encoded — the
// decoder always produces finite numbers, but a hand-constructed tree
// holding NaN or +-Inf fails at Encode time, since RFC 8259 numbers must
// be finite.
func Number(x float64) *Value { return &Value{kind: KindNumber, numVal: x} }

// String constructs a KindString value, copying s up to (but not
// including) the first U+0000 byte. Unlike the decoder, String does not
// validate that s is well-formed UTF-8 — that cost is paid by the decoder
// for parsed trees, and is the caller's responsibility for constructed
// ones.
func String(s []byte) *Value {
	if i := indexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	cp := make([]byte, len(s))
	copy(cp, s)
	return &Value{kind: KindString, strVal: cp}
}

func indexByte(s []byte, c byte) int {
	for i, b := range s {
		if b == c {
			return i
		}
	}
	return -1
}

// Array constructs an empty KindArray value.
func Array() *Value { return &Value{kind: KindArray} }

// Object constructs an empty KindObject value.
func Object() *Value { return &Value{kind: KindObject} }

// Add appends child to an array, transferring ownership of child to v. It
// panics if v is not a KindArray.
func (v *Value) Add(child *Value) {
	v.checkKind(KindArray)
	v.arrVal = append(v.arrVal, child)
}

// AddMember copies key and appends a (key, child) pair to an object,
// transferring ownership of child to v. Duplicate keys are permitted and
// retained in insertion order, per RFC 8259 section 4's silence on
// duplicate names; it panics if v is not a KindObject.
func (v *Value) AddMember(key []byte, child *Value) {
	v.checkKind(KindObject)
	k := make([]byte, len(key))
	copy(k, key)
	v.objVal = append(v.objVal, Member{Key: k, Value: child})
}

// Get returns the value of the first member whose key matches, scanning in
// insertion order, and reports whether one was found. Unlike the other
// accessors, Get does not panic on a kind mismatch: it reports no match
// both when no key matches and when v is not an object.
func (v *Value) Get(key []byte) (*Value, bool) {
	if v.released {
		panic("rjson: use of released Value")
	}
	if v.kind != KindObject {
		return nil, false
	}
	for _, m := range v.objVal {
		if bytesEqual(m.Key, key) {
			return m.Value, true
		}
	}
	return nil, false
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Release recursively disposes of v and every descendant it owns. It is
// idempotent and accepts nil as a no-op, mirroring the C original's
// release(NULL) convention. After Release, the payload accessors, Len,
// Get, Add and AddMember panic on v or its former descendants, surfacing
// use-after-release bugs immediately instead of silently reading stale
// data; Encode returns an error instead, and Kind still reports the
// former kind.
func Release(v *Value) {
	if v == nil || v.released {
		return
	}
	switch v.kind {
	case KindArray:
		for _, e := range v.arrVal {
			Release(e)
		}
	case KindObject:
		for _, m := range v.objVal {
			Release(m.Value)
		}
	}
	v.released = true
	v.strVal = nil
	v.arrVal = nil
	v.objVal = nil
}
