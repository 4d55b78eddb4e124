// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package codec provides support for interpreting byte slices as sequences
// of characters suitable for use with cloudeng.io/lcsengine/lcs. Input may
// optionally be normalized to a Unicode normal form before being decoded so
// that canonically equivalent characters compare as equal.
package codec

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Decoder represents the ability to decode a byte slice into a slice of
// some other data type using a function that returns the next decoded
// value and the number of bytes it consumed.
type Decoder[T any] struct {
	options
	fn func([]byte) (T, int)
}

type options struct {
	resizePercent int
	normalize     bool
	form          norm.Form
}

// Option represents an option accepted by NewDecoder.
type Option func(*options)

// ResizePercent requests that the returned slice be reallocated if the
// ratio of unused to used capacity exceeds the specified percentage.
// That is, if cap(slice) - len(slice)) / len(slice) exceeds the percentage
// new underlying storage is allocated and contents copied. The default
// value for ResizePercent is 100.
func ResizePercent(percent int) Option {
	return func(o *options) {
		o.resizePercent = percent
	}
}

// Normalize requests that input be converted to the specified Unicode
// normal form before being decoded.
func Normalize(form norm.Form) Option {
	return func(o *options) {
		o.normalize = true
		o.form = form
	}
}

// NewDecoder returns an instance of Decoder for the supplied function.
func NewDecoder[T any](fn func([]byte) (T, int), opts ...Option) *Decoder[T] {
	d := &Decoder[T]{fn: fn}
	d.resizePercent = 100
	for _, opt := range opts {
		opt(&d.options)
	}
	return d
}

// Runes returns a Decoder for utf8 encoded input.
func Runes(opts ...Option) *Decoder[rune] {
	return NewDecoder(utf8.DecodeRune, opts...)
}

// BytesAsRunes returns a Decoder that treats every byte as a separate
// character, which is appropriate for input that is not utf8 encoded.
func BytesAsRunes(opts ...Option) *Decoder[rune] {
	return NewDecoder(func(input []byte) (rune, int) {
		return rune(input[0]), 1
	}, opts...)
}

// Decode decodes the entire input.
func (d *Decoder[T]) Decode(input []byte) []T {
	if d.normalize {
		input = d.form.Bytes(input)
	}
	out := make([]T, len(input))
	n := decode(input, func(in []byte, i int) (n int) {
		out[i], n = d.fn(in)
		return
	})
	return resize(out[:n], d.resizePercent)
}

// DecodeString is like Decode but for a string.
func (d *Decoder[T]) DecodeString(input string) []T {
	return d.Decode([]byte(input))
}

func decode(input []byte, fn func([]byte, int) int) int {
	if len(input) == 0 {
		return 0
	}
	cursor, i := 0, 0
	for {
		n := fn(input[cursor:], i)
		if n == 0 {
			break
		}
		i++
		cursor += n
		if cursor >= len(input) {
			break
		}
	}
	return i
}

func resizeNeeded(used, available int, percent int) bool {
	wasted := available - used
	if used == 0 {
		used = 1
	}
	return ((wasted * 100) / used) > percent
}

// resize will allocate new underlying storage and copy the contents of
// slice to it if the ratio of wasted to used, ie:
//
//	(cap(slice) - len(slice)) / len(slice))
//
// exceeds the specified percentage.
func resize[T any](slice []T, percent int) []T {
	if resizeNeeded(len(slice), cap(slice), percent) {
		r := make([]T, len(slice))
		copy(r, slice)
		return r
	}
	return slice
}
