// Copyright 2024 The rjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rjson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueConstructors(t *testing.T) {
	require.Equal(t, KindNull, Null().Kind())
	require.Equal(t, KindBool, Bool(true).Kind())
	require.True(t, Bool(true).Bool())
	require.False(t, Bool(false).Bool())
	require.Equal(t, KindNumber, Number(3.5).Kind())
	require.Equal(t, 3.5, Number(3.5).Number())
	require.Equal(t, KindString, String([]byte("hi")).Kind())
	require.Equal(t, []byte("hi"), String([]byte("hi")).Str())
}

func TestStringTruncatesAtNUL(t *testing.T) {
	v := String([]byte("ab\x00cd"))
	require.Equal(t, []byte("ab"), v.Str())
}

func TestArrayAddAndElements(t *testing.T) {
	arr := Array()
	arr.Add(Number(1))
	arr.Add(Number(2))
	require.Equal(t, 2, arr.Len())
	elems := arr.Elements()
	require.Equal(t, 1.0, elems[0].Number())
	require.Equal(t, 2.0, elems[1].Number())
}

func TestObjectAddMemberAndGet(t *testing.T) {
	obj := Object()
	obj.AddMember([]byte("a"), Number(1))
	obj.AddMember([]byte("b"), Number(2))
	require.Equal(t, 2, obj.Len())

	v, ok := obj.Get([]byte("b"))
	require.True(t, ok)
	require.Equal(t, 2.0, v.Number())

	_, ok = obj.Get([]byte("missing"))
	require.False(t, ok)
}

func TestGetOnNonObjectReturnsNoneWithoutPanic(t *testing.T) {
	var v *Value
	var ok bool
	require.NotPanics(t, func() { v, ok = Number(1).Get([]byte("x")) })
	require.False(t, ok)
	require.Nil(t, v)

	require.NotPanics(t, func() { _, ok = Array().Get([]byte("x")) })
	require.False(t, ok)

	require.NotPanics(t, func() { _, ok = Null().Get([]byte("x")) })
	require.False(t, ok)
}

func TestObjectGetReturnsFirstDuplicate(t *testing.T) {
	obj := Object()
	obj.AddMember([]byte("k"), Number(1))
	obj.AddMember([]byte("k"), Number(2))
	require.Equal(t, 2, obj.Len())

	v, ok := obj.Get([]byte("k"))
	require.True(t, ok)
	require.Equal(t, 1.0, v.Number())
}

func TestKindMismatchPanics(t *testing.T) {
	require.Panics(t, func() { Null().Bool() })
	require.Panics(t, func() { Bool(true).Number() })
	require.Panics(t, func() { Number(1).Str() })
	require.Panics(t, func() { String([]byte("x")).Len() })
}

func TestReleaseIsRecursiveIdempotentAndNilSafe(t *testing.T) {
	Release(nil) // no-op

	obj := Object()
	child := Array()
	child.Add(Number(1))
	obj.AddMember([]byte("child"), child)

	Release(obj)
	require.Panics(t, func() { obj.Len() })
	require.Panics(t, func() { child.Len() })

	require.NotPanics(t, func() { Release(obj) })
}
