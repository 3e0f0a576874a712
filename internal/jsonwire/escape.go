// Copyright 2024 The rjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonwire holds the low-level byte-pushing helpers used by the
// rjson encoder: the string escape table and the float formatter. It has
// no notion of a value tree.
package jsonwire

const hexDigits = "0123456789abcdef"

// shortEscapes holds the two-character escape for bytes that have one;
// all other bytes below 0x20 fall back to the six-character \u00XX form.
var shortEscapes = map[byte]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

// AppendQuote appends s to dst as a double-quoted JSON string, escaping
// '"', '\\', and every byte below 0x20 per RFC 8259 section 7. Bytes at
// or above 0x80 (UTF-8 continuation/lead bytes) pass through verbatim,
// matching the decoder's UTF-8-passthrough behavior.
func AppendQuote(dst []byte, s []byte) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		dst = append(dst, s[start:i]...)
		switch {
		case c == '"', c == '\\':
			dst = append(dst, '\\', c)
		default:
			if b, ok := shortEscapes[c]; ok {
				dst = append(dst, '\\', b)
			} else {
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
			}
		}
		start = i + 1
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}
