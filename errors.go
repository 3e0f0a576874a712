// Copyright 2024 The rjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rjson

import "strconv"

const errorPrefix = "rjson: "

// Error matches every error this package returns, per errors.Is.
const Error = rjsonError("rjson error")

type rjsonError string

func (e rjsonError) Error() string        { return string(e) }
func (e rjsonError) Is(target error) bool { return e == target || target == Error }

// SyntaxError describes a deviation from the RFC 8259 grammar: an
// unexpected byte, an unterminated string, a malformed number, an unknown
// literal, a missing colon or comma, a mismatched bracket, or trailing
// content after the root value.
type SyntaxError struct {
	// Offset is the byte offset into the input at which the error was
	// detected.
	Offset int64
	str    string
}

func (e *SyntaxError) Error() string        { return errorPrefix + e.str }
func (e *SyntaxError) Is(target error) bool { return e == target || target == Error }

// SemanticError describes a value that is grammatically well-formed but
// violates one of the tree's invariants: a lone UTF-16 surrogate, an
// embedded U+0000, an unescaped control byte, an invalid escape, a number
// that overflows to infinity, nesting beyond MaxDepth, or a non-finite
// number offered to Encode.
type SemanticError struct {
	Offset int64
	str    string
}

func (e *SemanticError) Error() string        { return errorPrefix + e.str }
func (e *SemanticError) Is(target error) bool { return e == target || target == Error }

func newSyntaxError(offset int64, str string) *SyntaxError {
	return &SyntaxError{Offset: offset, str: str}
}

func newSemanticError(offset int64, str string) *SemanticError {
	return &SemanticError{Offset: offset, str: str}
}

func newInvalidCharacterError(offset int64, c byte, where string) *SyntaxError {
	return newSyntaxError(offset, "invalid character "+quoteChar(c)+" "+where)
}

func quoteChar(c byte) string {
	if c == '\'' {
		return `'\''`
	}
	q := strconv.Quote(string([]byte{c}))
	return "'" + q[1:len(q)-1] + "'"
}
