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

package xtime

import "time"

// FloorTime rounds t down to the nearest multiple of period since the
// zero time.
func FloorTime(t time.Time, period time.Duration) time.Time {
	return t.Truncate(period)
}

// CeilTime rounds t up to the nearest multiple of period since the zero
// time.
func CeilTime(t time.Time, period time.Duration) time.Time {
	floored := t.Truncate(period)
	if floored.Equal(t) {
		return t
	}
	return floored.Add(period)
}

// RoundTime rounds t to the nearest multiple of period since the zero
// time, rounding half values up.
func RoundTime(t time.Time, period time.Duration) time.Time {
	return t.Round(period)
}

// Align snaps the range endpoints to multiples of period. When expand
// is true the range grows (floor the start, ceil the end), otherwise it
// shrinks. Unbounded endpoints are left as is. Returns an
// InvalidRangeError when shrinking inverts the range.
func (r Range) Align(period time.Duration, expand bool) (Range, error) {
	res := r
	if !res.startInfinite {
		if expand {
			res.start = FloorTime(res.start, period)
		} else {
			res.start = CeilTime(res.start, period)
		}
	}
	if !res.endInfinite {
		if expand {
			res.end = CeilTime(res.end, period)
		} else {
			res.end = FloorTime(res.end, period)
		}
	}
	if !res.startInfinite && !res.endInfinite && res.start.After(res.end) {
		return Range{}, &InvalidRangeError{
			Reason: "range too small to align inward",
		}
	}
	return res, nil
}
