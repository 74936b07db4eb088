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
	"compress/gzip"
	"fmt"
	"io"

	snappy "github.com/golang/snappy"
)

// CompressionMethod used for stream compression helpers.
type CompressionMethod byte

const (
	// GzipCompression compresses using gzip.
	GzipCompression CompressionMethod = iota

	// SnappyCompression compresses using framed snappy.
	SnappyCompression
)

var validCompressionMethods = []CompressionMethod{
	GzipCompression,
	SnappyCompression,
}

func (cm CompressionMethod) String() string {
	switch cm {
	case GzipCompression:
		return "gzip"
	case SnappyCompression:
		return "snappy"
	default:
		return ""
	}
}

// UnmarshalYAML unmarshals a compression method from YAML configuration.
func (cm *CompressionMethod) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}

	for _, valid := range validCompressionMethods {
		if str == valid.String() {
			*cm = valid
			return nil
		}
	}

	return fmt.Errorf("invalid CompressionMethod '%s' valid types are: %v",
		str, validCompressionMethods)
}

// Compress consumes src and returns a seekable reader over its
// compressed form.
func Compress(src io.Reader, method CompressionMethod) (*SeekableReader, error) {
	var (
		compressed bytes.Buffer
		w          io.WriteCloser
	)
	switch method {
	case GzipCompression:
		w = gzip.NewWriter(&compressed)
	case SnappyCompression:
		w = snappy.NewBufferedWriter(&compressed)
	default:
		return nil, fmt.Errorf("unknown compression method: %v", method)
	}

	if _, err := io.Copy(w, src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return NewSeekableReader(&compressed), nil
}

// Decompress returns a seekable reader over the decompressed form of
// src. The compressed source is consumed lazily as the returned reader
// is read.
func Decompress(src io.Reader, method CompressionMethod) (*SeekableReader, error) {
	switch method {
	case GzipCompression:
		r, err := gzip.NewReader(src)
		if err != nil {
			return nil, err
		}
		return NewSeekableReader(r), nil
	case SnappyCompression:
		return NewSeekableReader(snappy.NewReader(src)), nil
	default:
		return nil, fmt.Errorf("unknown compression method: %v", method)
	}
}
