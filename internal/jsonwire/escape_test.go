// Copyright 2024 The rjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import "testing"

func TestAppendQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{"a\"b", `"a\"b"`},
		{"a\\b", `"a\\b"`},
		{"Line\nBreak\tTab", `"Line\nBreak\tTab"`},
		{"\x01", `"\u0001"`},
		{"\x08\x0c", `"\b\f"`},
		{"/", `"/"`},
	}
	for _, tt := range tests {
		got := string(AppendQuote(nil, []byte(tt.in)))
		if got != tt.want {
			t.Errorf("AppendQuote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
