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
	"github.com/invenia/inveniautils/instrument"
)

// 256KB fill chunk, matching the historical default.
const defaultReadBufferSize = 262144

// Options is a set of seekable reader options.
type Options interface {
	// SetReadBufferSize sets the size of the chunk used when pulling
	// bytes from the underlying source.
	SetReadBufferSize(value int) Options

	// ReadBufferSize returns the fill chunk size.
	ReadBufferSize() int

	// SetInstrumentOptions sets the instrument options.
	SetInstrumentOptions(value instrument.Options) Options

	// InstrumentOptions returns the instrument options.
	InstrumentOptions() instrument.Options
}

type opts struct {
	readBufferSize int
	iopts          instrument.Options
}

// NewOptions creates new seekable reader options.
func NewOptions() Options {
	return &opts{
		readBufferSize: defaultReadBufferSize,
		iopts:          instrument.NewOptions(),
	}
}

func (o *opts) SetReadBufferSize(value int) Options {
	options := *o
	options.readBufferSize = value
	return &options
}

func (o *opts) ReadBufferSize() int {
	return o.readBufferSize
}

func (o *opts) SetInstrumentOptions(value instrument.Options) Options {
	options := *o
	options.iopts = value
	return &options
}

func (o *opts) InstrumentOptions() instrument.Options {
	return o.iopts
}
