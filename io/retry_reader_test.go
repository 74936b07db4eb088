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
	"errors"
	"io"
	"io/ioutil"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/invenia/inveniautils/retry"
)

func testRetrier(maxRetries int) retry.Retrier {
	return retry.NewRetrier(retry.NewOptions().
		SetInitialBackoff(time.Nanosecond).
		SetJitter(false).
		SetMaxRetries(maxRetries))
}

// flakyReader fails the first failures calls to Read, then delegates.
type flakyReader struct {
	src      io.Reader
	failures int
	calls    int
}

func (f *flakyReader) Read(p []byte) (int, error) {
	f.calls++
	if f.calls <= f.failures {
		return 0, errors.New("transient failure")
	}
	return f.src.Read(p)
}

func TestRetryingReaderRetriesTransientErrors(t *testing.T) {
	src := &flakyReader{src: strings.NewReader("abcdef"), failures: 2}
	r := NewRetryingReader(src, testRetrier(2))

	out, err := ioutil.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "abcdef", string(out))
}

func TestRetryingReaderGivesUp(t *testing.T) {
	src := &flakyReader{src: strings.NewReader("abcdef"), failures: 5}
	r := NewRetryingReader(src, testRetrier(1))

	buf := make([]byte, 4)
	_, err := r.Read(buf)
	require.Error(t, err)
	require.Equal(t, "transient failure", err.Error())
	// One initial attempt plus one retry.
	require.Equal(t, 2, src.calls)
}

func TestRetryingReaderDoesNotRetryEOF(t *testing.T) {
	src := &chunkedReader{chunks: []string{"ab"}}
	r := NewRetryingReader(src, testRetrier(3))

	buf := make([]byte, 4)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, "ab", string(buf[:n]))

	_, err = r.Read(buf)
	require.Equal(t, io.EOF, err)
	// The EOF read happened exactly once.
	require.Equal(t, 2, src.calls)
}

// partialFailReader returns some bytes together with an error.
type partialFailReader struct {
	err   error
	calls int
}

func (p *partialFailReader) Read(buf []byte) (int, error) {
	p.calls++
	n := copy(buf, "ab")
	return n, p.err
}

func TestRetryingReaderDoesNotRetryPartialReads(t *testing.T) {
	srcErr := errors.New("broken pipe")
	src := &partialFailReader{err: srcErr}
	r := NewRetryingReader(src, testRetrier(3))

	buf := make([]byte, 4)
	n, err := r.Read(buf)
	require.Equal(t, srcErr, err)
	require.Equal(t, 2, n)
	// The bytes were consumed from the source, so the read must not be
	// reissued.
	require.Equal(t, 1, src.calls)
}

func TestRetryingReaderUnderSeekableReader(t *testing.T) {
	src := &flakyReader{src: strings.NewReader("abcdef"), failures: 1}
	r := NewSeekableReaderSize(NewRetryingReader(src, testRetrier(2)), 2)

	require.Equal(t, "abcdef", readN(t, r, 6))
	_, err := r.Seek(0, io.SeekStart)
	require.NoError(t, err)
	require.Equal(t, "abc", readN(t, r, 3))
}
