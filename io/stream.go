// Copyright (c) 2021 Invenia Technical Computing Corporation
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package xio

import (
	"bytes"
	"io"
)

// Equal compares the content of two readers chunk by chunk, consuming
// both. Use EqualSeekable to compare seekable streams without losing
// their positions.
func Equal(a, b io.Reader) (bool, error) {
	var (
		abuf = make([]byte, defaultReadBufferSize)
		bbuf = make([]byte, defaultReadBufferSize)
	)
	for {
		an, aerr := io.ReadFull(a, abuf)
		bn, berr := io.ReadFull(b, bbuf)
		if aerr != nil && aerr != io.EOF && aerr != io.ErrUnexpectedEOF {
			return false, aerr
		}
		if berr != nil && berr != io.EOF && berr != io.ErrUnexpectedEOF {
			return false, berr
		}
		if an != bn || !bytes.Equal(abuf[:an], bbuf[:bn]) {
			return false, nil
		}
		if an < len(abuf) {
			// Both exhausted with equal content.
			return true, nil
		}
	}
}

// EqualSeekable compares the full content of two seekable streams,
// restoring both positions afterwards.
func EqualSeekable(a, b io.ReadSeeker) (bool, error) {
	apos, err := a.Seek(0, io.SeekCurrent)
	if err != nil {
		return false, err
	}
	bpos, err := b.Seek(0, io.SeekCurrent)
	if err != nil {
		return false, err
	}

	if _, err := a.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	if _, err := b.Seek(0, io.SeekStart); err != nil {
		return false, err
	}

	equal, err := Equal(a, b)
	if err != nil {
		return false, err
	}

	if _, err := a.Seek(apos, io.SeekStart); err != nil {
		return false, err
	}
	if _, err := b.Seek(bpos, io.SeekStart); err != nil {
		return false, err
	}
	return equal, nil
}
