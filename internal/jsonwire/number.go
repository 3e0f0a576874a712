// Copyright 2024 The rjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import "strconv"

// AppendFloat appends v to dst rounded to 17 significant decimal digits,
// the minimum precision that round-trips any finite float64. Trailing
// zeros are dropped, so 1 is written as "1" and 2.5 as "2.5", while a value
// such as 3.14 is written with all 17 digits ("3.1400000000000001").
// Unlike encoding/json, it does not search for the shortest form that
// round-trips.
//
// The caller guarantees v is finite; AppendFloat does not check.
func AppendFloat(dst []byte, v float64) []byte {
	dst = strconv.AppendFloat(dst, v, 'g', 17, 64)
	// strconv never emits a locale-specific decimal separator, but guard
	// against it anyway: RFC 8259 requires '.' as the decimal point.
	for i, c := range dst {
		if c == ',' {
			dst[i] = '.'
		}
	}
	return dst
}
