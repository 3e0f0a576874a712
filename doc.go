// Copyright 2024 The rjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rjson implements a strict, dependency-free codec for the JSON
// text interchange format defined by RFC 8259. It decodes text into a
// tagged-variant tree of [Value] nodes and encodes a tree back into
// compact text.
//
// # Terminology
//
// This package uses JSON terminology as RFC 8259 defines it:
//
//   - a JSON "object" is an ordered sequence of name/value members,
//     retained in insertion order including duplicates;
//   - a JSON "array" is an ordered sequence of elements; and
//   - a JSON "value" is either a literal (null, false, true), a string,
//     a number, an object, or an array.
//
// # Strictness
//
// Decode enforces the full RFC 8259 grammar: no comments, no trailing
// commas, no unquoted keys, exact-case literals, a locale-independent
// numeric grammar, and validated \u-escape surrogate handling. It
// tolerates a single leading UTF-8 byte-order mark. Encode always
// produces compact output with a fixed escape policy; there is no
// configuration surface for either direction.
//
// # Ownership
//
// A Value tree owns every node reachable from it. [Release] disposes of
// an entire tree in one call; after Release, the accessors and mutators
// of the tree and its former descendants panic (Kind excepted), and
// [Encode] returns an error.
package rjson
