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

// Package xio provides a seekable wrapper around forward-only byte
// sources plus stream helpers for comparing and compressing readers.
package xio

import (
	"fmt"
	"io"

	"github.com/c2h5oh/datasize"
	"go.uber.org/zap"
)

// SeekableReader wraps a forward-only source, buffering every byte read
// from it so earlier positions can be re-read. The buffer grows
// monotonically and is never evicted: this is a correctness shim for
// seeking, not a cache. The source is read at most once end-to-end and
// is exclusively owned by the reader; reading from it elsewhere
// desynchronizes the buffer.
//
// SeekableReader is not safe for concurrent use: every Read and Seek
// mutates the buffer and the logical position.
type SeekableReader struct {
	src       io.Reader
	buf       []byte
	pos       int64
	exhausted bool
	chunkSize int
	logger    *zap.Logger
}

var (
	_ io.Reader   = (*SeekableReader)(nil)
	_ io.Seeker   = (*SeekableReader)(nil)
	_ io.ReaderAt = (*SeekableReader)(nil)
)

// NewSeekableReader returns a seekable reader over src with default
// options.
func NewSeekableReader(src io.Reader) *SeekableReader {
	return NewSeekableReaderOptions(src, NewOptions())
}

// NewSeekableReaderSize returns a seekable reader over src using the
// given fill chunk size.
func NewSeekableReaderSize(src io.Reader, size int) *SeekableReader {
	return NewSeekableReaderOptions(src, NewOptions().SetReadBufferSize(size))
}

// NewSeekableReaderOptions returns a seekable reader over src with the
// given options.
func NewSeekableReaderOptions(src io.Reader, opts Options) *SeekableReader {
	chunkSize := opts.ReadBufferSize()
	if chunkSize <= 0 {
		chunkSize = defaultReadBufferSize
	}
	return &SeekableReader{
		src:       src,
		chunkSize: chunkSize,
		logger:    opts.InstrumentOptions().Logger(),
	}
}

// fill pulls bytes from the source until at least size bytes are
// buffered or the source is exhausted. The source may legally return
// fewer bytes per call than asked for.
func (r *SeekableReader) fill(size int64) error {
	for !r.exhausted && int64(len(r.buf)) < size {
		start := len(r.buf)
		r.buf = append(r.buf, make([]byte, r.chunkSize)...)
		n, err := r.src.Read(r.buf[start:])
		r.buf = r.buf[:start+n]
		if err == io.EOF {
			r.exhausted = true
			r.logger.Debug("source exhausted",
				zap.String("buffered", datasize.ByteSize(len(r.buf)).HR()))
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Read returns up to len(p) bytes starting at the current logical
// position, pulling from the source as needed. A short read happens
// only at source exhaustion; io.EOF is returned once no bytes remain.
// Re-reads over already-buffered regions never touch the source.
func (r *SeekableReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := r.fill(r.pos + int64(len(p))); err != nil {
		return 0, err
	}
	if r.pos >= int64(len(r.buf)) {
		return 0, io.EOF
	}
	n := copy(p, r.buf[r.pos:])
	r.pos += int64(n)
	return n, nil
}

// ReadAt reads len(p) bytes at offset off without moving the logical
// position. Unlike the io.ReaderAt contract, ReadAt is not safe for
// concurrent use, since it may need to fill the buffer.
func (r *SeekableReader) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, &SeekError{Op: "readat", Reason: "negative offset"}
	}
	if err := r.fill(off + int64(len(p))); err != nil {
		return 0, err
	}
	if off >= int64(len(r.buf)) {
		return 0, io.EOF
	}
	n := copy(p, r.buf[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Seek sets the logical position. Seeking relative to the end requires
// the source to be exhausted first and fails with a SeekError
// otherwise; use Exhaust to force consumption. Seeking backward never
// touches the source. Seeking forward past the buffered region pulls
// and buffers the intervening bytes; if the source ends before the
// target offset the seek fails and the position is unchanged.
func (r *SeekableReader) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = r.pos + offset
	case io.SeekEnd:
		if !r.exhausted {
			return 0, &SeekError{
				Op:     "seek",
				Reason: "length unknown until source exhausted",
			}
		}
		abs = int64(len(r.buf)) + offset
	default:
		return 0, &SeekError{
			Op:     "seek",
			Reason: fmt.Sprintf("invalid whence %d", whence),
		}
	}

	if abs < 0 {
		return 0, &SeekError{Op: "seek", Reason: "negative position"}
	}
	if err := r.fill(abs); err != nil {
		return 0, err
	}
	if abs > int64(len(r.buf)) {
		return 0, &SeekError{
			Op:     "seek",
			Reason: fmt.Sprintf("offset %d beyond end of source (%d)", abs, len(r.buf)),
		}
	}
	r.pos = abs
	return abs, nil
}

// Tell returns the current logical position. No side effects.
func (r *SeekableReader) Tell() int64 {
	return r.pos
}

// Len returns the total length of the source. The length is unknown
// until the source has been fully consumed, so Len fails with a
// SeekError before exhaustion rather than blocking or returning a
// partial count; call Exhaust first to force consumption.
func (r *SeekableReader) Len() (int64, error) {
	if !r.exhausted {
		return 0, &SeekError{
			Op:     "len",
			Reason: "length unknown until source exhausted",
		}
	}
	return int64(len(r.buf)), nil
}

// Exhausted reports whether the source has been fully consumed.
func (r *SeekableReader) Exhausted() bool {
	return r.exhausted
}

// Exhaust drains the remainder of the source into the buffer and
// returns the total length. The logical position is unchanged.
func (r *SeekableReader) Exhaust() (int64, error) {
	for !r.exhausted {
		if err := r.fill(int64(len(r.buf) + r.chunkSize)); err != nil {
			return 0, err
		}
	}
	return int64(len(r.buf)), nil
}
