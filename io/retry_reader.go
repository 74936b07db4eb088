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
	"io"

	"github.com/invenia/inveniautils/retry"
)

// retryingReader wraps a flaky source so each read is retried with the
// given retrier. It retries only whole failed reads: a read that
// returned bytes alongside an error is surfaced as is, since the bytes
// were already consumed from the source.
type retryingReader struct {
	src     io.Reader
	retrier retry.Retrier
}

// NewRetryingReader wraps src so transient read errors are retried via
// retrier. io.EOF is never retried. Wrap the source before handing it
// to NewSeekableReader to get a seekable view over a flaky stream.
func NewRetryingReader(src io.Reader, retrier retry.Retrier) io.Reader {
	return &retryingReader{src: src, retrier: retrier}
}

func (r *retryingReader) Read(p []byte) (int, error) {
	var (
		n       int
		readErr error
	)
	// Attempt can only fail with an error derived from the read itself,
	// so the raw read result is always what gets surfaced.
	_ = r.retrier.Attempt(func() error {
		n, readErr = r.src.Read(p)
		if readErr == nil || readErr == io.EOF {
			return nil
		}
		if n > 0 {
			return retry.NonRetryableError(readErr)
		}
		return readErr
	})
	return n, readErr
}
