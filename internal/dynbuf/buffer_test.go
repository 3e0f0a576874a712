// Copyright 2024 The rjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferGrowsByPowerOfTwo(t *testing.T) {
	var b Buffer
	b.AppendByte('x')
	require.Equal(t, minCap, b.Cap())

	b.Append(make([]byte, 100))
	require.GreaterOrEqual(t, b.Cap(), 101)
	require.Equal(t, 0, b.Cap()&(b.Cap()-1), "capacity should be a power of two")
}

func TestBufferTakeDetaches(t *testing.T) {
	var b Buffer
	b.Append([]byte("hello"))
	out := b.Take()
	require.Equal(t, []byte("hello"), out)
	require.Equal(t, 0, b.Len())

	b.Append([]byte("again"))
	require.Equal(t, []byte("again"), b.Bytes())
}

func TestBufferReset(t *testing.T) {
	var b Buffer
	b.Append([]byte("data"))
	cap1 := b.Cap()
	b.Reset()
	require.Equal(t, 0, b.Len())
	require.Equal(t, cap1, b.Cap())
}
