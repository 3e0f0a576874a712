// Copyright 2024 The rjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rjson

import "testing"

func FuzzDecode(f *testing.F) {
	for _, seed := range []string{
		`null`, `true`, `false`, `0`, `-0`, `3.14`, `1e309`, `"hi"`,
		`[]`, `{}`, `[1,2,3]`, `{"a":1}`, `{"a":[1,2,{"b":null}]}`,
		`"AB"`, `"🔥"`, `"\uD800"`, "\xEF\xBB\xBF{}",
		`[1,2,]`, `{"a":1,}`, "01", "+1", `"unterminated`,
	} {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, b []byte) {
		v, err := Decode(b)
		if err != nil {
			return
		}
		defer Release(v)

		out, err := Encode(v)
		if err != nil {
			t.Fatalf("Encode of a freshly decoded tree failed: %v", err)
		}

		v2, err := Decode(out)
		if err != nil {
			t.Fatalf("re-decoding Encode's own output failed: %v", err)
		}
		defer Release(v2)

		out2, err := Encode(v2)
		if err != nil {
			t.Fatalf("re-encoding the re-decoded tree failed: %v", err)
		}
		if string(out) != string(out2) {
			t.Fatalf("re-encoding is not a fixed point:\nfirst:  %s\nsecond: %s", out, out2)
		}
	})
}
