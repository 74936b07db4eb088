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

import (
	"sort"
	"time"
)

// SortKey is a composite key imposing a total order over ranges: start
// first (an unbounded start sorts before all finite starts), then start
// bound (inclusive starts first, since they start earlier), then end (an
// unbounded end sorts after all finite ends), then end bound (exclusive
// ends first, since they end earlier). Two ranges produce the same key
// only when Equal.
type SortKey struct {
	Start          time.Time
	StartInfinite  bool
	StartExclusive bool
	End            time.Time
	EndInfinite    bool
	EndInclusive   bool
}

// SortKey returns the total-order key for the range.
func (r Range) SortKey() SortKey {
	return SortKey{
		Start:          r.start,
		StartInfinite:  r.startInfinite,
		StartExclusive: r.startBound == Exclusive,
		End:            r.end,
		EndInfinite:    r.endInfinite,
		EndInclusive:   r.endBound == Inclusive,
	}
}

// Compare returns -1, 0 or 1 ordering k against other.
func (k SortKey) Compare(other SortKey) int {
	// Unbounded starts compare equal to each other and before any
	// finite start.
	if c := compareEndpoint(
		k.Start, k.StartInfinite, other.Start, other.StartInfinite, -1,
	); c != 0 {
		return c
	}
	if c := compareBool(k.StartExclusive, other.StartExclusive); c != 0 {
		return c
	}
	if c := compareEndpoint(
		k.End, k.EndInfinite, other.End, other.EndInfinite, 1,
	); c != 0 {
		return c
	}
	return compareBool(k.EndInclusive, other.EndInclusive)
}

// Less reports whether k orders before other.
func (k SortKey) Less(other SortKey) bool {
	return k.Compare(other) < 0
}

// Compare imposes the SortKey total order directly on two ranges.
func Compare(a, b Range) int {
	return a.SortKey().Compare(b.SortKey())
}

// Sort stably sorts ranges by their sort key. Since the key is a total
// order, the result is identical for any permutation of the input.
func Sort(ranges []Range) {
	sort.SliceStable(ranges, func(i, j int) bool {
		return Compare(ranges[i], ranges[j]) < 0
	})
}

// compareEndpoint orders two endpoints where an infinite endpoint sorts
// in the given direction (-1 before all finite values, 1 after).
func compareEndpoint(a time.Time, aInf bool, b time.Time, bInf bool, dir int) int {
	switch {
	case aInf && bInf:
		return 0
	case aInf:
		return dir
	case bInf:
		return -dir
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}
