// This file is part of GopherI2S.
//
// GopherI2S is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherI2S is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherI2S.  If not, see <https://www.gnu.org/licenses/>.


package test

import (
	"fmt"
	"strings"
)

// CappedWriter is an implementation of io.Writer that stops buffering once
// a predefined size is reached. Output beyond the cap is dropped silently,
// which makes it suitable for capturing the start of a long report.
type CappedWriter struct {
	buffer []byte
	size   int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (w *CappedWriter) String() string {
	return string(w.buffer)
}

// Reset empties the buffer.
func (w *CappedWriter) Reset() {
	w.buffer = w.buffer[:0]
}

// Full returns true if no more bytes will be buffered.
func (w *CappedWriter) Full() bool {
	return len(w.buffer) >= w.size
}

// Write implements the io.Writer interface.
func (w *CappedWriter) Write(p []byte) (int, error) {
	remaining := w.size - len(w.buffer)
	if remaining == 0 {
		return 0, nil
	}
	if len(p) < remaining {
		w.buffer = append(w.buffer, p...)
		return len(p), nil
	}
	w.buffer = append(w.buffer, p[:remaining]...)
	return remaining, nil
}

// CompareWriter is an implementation of io.Writer that captures all output
// for comparison with an expected string.
type CompareWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface.
func (w *CompareWriter) Write(p []byte) (int, error) {
	w.buffer = append(w.buffer, p...)
	return len(p), nil
}

// Clear empties the buffer.
func (w *CompareWriter) Clear() {
	w.buffer = w.buffer[:0]
}

// Compare buffered output with s.
func (w *CompareWriter) Compare(s string) bool {
	return s == string(w.buffer)
}

// Contains returns true if buffered output contains s.
func (w *CompareWriter) Contains(s string) bool {
	return strings.Contains(string(w.buffer), s)
}

func (w *CompareWriter) String() string {
	return string(w.buffer)
}
