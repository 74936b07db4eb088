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
	"github.com/c2h5oh/datasize"

	"github.com/invenia/inveniautils/instrument"
)

// ByteSize is a byte count expressed in YAML as a human-readable size,
// e.g. "256kb".
type ByteSize datasize.ByteSize

// UnmarshalYAML unmarshals a byte size from YAML configuration.
func (s *ByteSize) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}

	var parsed datasize.ByteSize
	if err := parsed.UnmarshalText([]byte(str)); err != nil {
		return err
	}
	*s = ByteSize(parsed)
	return nil
}

// Configuration configures seekable reader options.
type Configuration struct {
	// Size of the chunk used when pulling bytes from the source.
	ReadBufferSize ByteSize `yaml:"readBufferSize"`

	// Compression method used by the compression helpers.
	Compression CompressionMethod `yaml:"compression"`
}

// NewOptions creates seekable reader options from the configuration.
func (c Configuration) NewOptions(iopts instrument.Options) Options {
	opts := NewOptions().SetInstrumentOptions(iopts)
	if c.ReadBufferSize > 0 {
		opts = opts.SetReadBufferSize(int(datasize.ByteSize(c.ReadBufferSize).Bytes()))
	}
	return opts
}
