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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func collect(tr Ranges) []Range {
	var res []Range
	it := tr.Iter()
	for it.Next() {
		res = append(res, it.Value())
	}
	return res
}

func requireRanges(t *testing.T, tr Ranges, expected ...Range) {
	t.Helper()
	got := collect(tr)
	require.Len(t, got, len(expected))
	for i := range expected {
		require.True(t, expected[i].Equal(got[i]),
			"position %d: expected %v got %v", i, expected[i], got[i])
	}
}

func TestRangesEmpty(t *testing.T) {
	tr := NewRanges()
	require.True(t, tr.IsEmpty())
	require.Equal(t, 0, tr.Len())
	require.True(t, IsEmpty(nil))
	require.False(t, IsEmpty(NewRanges(mustRange(t, testStart, at(day(1)), Inclusive, Exclusive))))

	// Empty ranges are no-ops.
	tr = tr.AddRange(mustRange(t, testStart, testStart, Inclusive, Exclusive))
	require.True(t, tr.IsEmpty())
}

func TestRangesAddDisjoint(t *testing.T) {
	a := mustRange(t, testStart, at(day(1)), Inclusive, Exclusive)
	b := mustRange(t, at(day(2)), at(day(3)), Inclusive, Exclusive)
	tr := NewRanges().AddRange(b).AddRange(a)
	requireRanges(t, tr, a, b)
}

func TestRangesAddMergesOverlap(t *testing.T) {
	a := mustRange(t, testStart, at(day(2)), Inclusive, Exclusive)
	b := mustRange(t, at(day(1)), at(day(3)), Inclusive, Inclusive)
	tr := NewRanges(a, b)
	requireRanges(t, tr, mustRange(t, testStart, at(day(3)), Inclusive, Inclusive))
}

func TestRangesAddMergesTouching(t *testing.T) {
	// [0, 1) + [1, 2) is contiguous: 1 is included by the second range.
	a := mustRange(t, testStart, at(day(1)), Inclusive, Exclusive)
	b := mustRange(t, at(day(1)), at(day(2)), Inclusive, Exclusive)
	tr := NewRanges(a, b)
	requireRanges(t, tr, mustRange(t, testStart, at(day(2)), Inclusive, Exclusive))

	// [0, 1) + (1, 2) leaves a gap at 1.
	c := mustRange(t, at(day(1)), at(day(2)), Exclusive, Exclusive)
	tr = NewRanges(a, c)
	requireRanges(t, tr, a, c)
}

func TestRangesAddBridges(t *testing.T) {
	a := mustRange(t, testStart, at(day(1)), Inclusive, Exclusive)
	c := mustRange(t, at(day(2)), at(day(3)), Inclusive, Exclusive)
	bridge := mustRange(t, at(day(1)), at(day(2)), Inclusive, Inclusive)
	tr := NewRanges(a, c).AddRange(bridge)
	requireRanges(t, tr, mustRange(t, testStart, at(day(3)), Inclusive, Exclusive))
}

func TestRangesAddRanges(t *testing.T) {
	a := NewRanges(mustRange(t, testStart, at(day(1)), Inclusive, Exclusive))
	b := NewRanges(
		mustRange(t, at(day(1)), at(day(2)), Inclusive, Exclusive),
		mustRange(t, at(day(3)), at(day(4)), Inclusive, Exclusive),
	)
	tr := a.AddRanges(b)
	requireRanges(t, tr,
		mustRange(t, testStart, at(day(2)), Inclusive, Exclusive),
		mustRange(t, at(day(3)), at(day(4)), Inclusive, Exclusive),
	)

	// The receivers are unchanged.
	require.Equal(t, 1, a.Len())
	require.Equal(t, 2, b.Len())
}

func TestRangesContains(t *testing.T) {
	tr := NewRanges(
		mustRange(t, testStart, at(day(1)), Inclusive, Exclusive),
		mustRange(t, at(day(2)), at(day(3)), Inclusive, Inclusive),
	)
	require.True(t, tr.Contains(mustRange(t, at(12*time.Hour), at(day(1)), Exclusive, Exclusive)))
	require.True(t, tr.Contains(mustRange(t, at(day(2)), at(day(3)), Inclusive, Inclusive)))
	require.False(t, tr.Contains(mustRange(t, testStart, at(day(1)), Inclusive, Inclusive)))
	require.False(t, tr.Contains(mustRange(t, at(day(1)), at(day(2)), Inclusive, Exclusive)))

	// Empty ranges are trivially contained.
	require.True(t, tr.Contains(mustRange(t, at(day(5)), at(day(5)), Inclusive, Exclusive)))
}

func TestRangesRemove(t *testing.T) {
	full := mustRange(t, testStart, at(day(4)), Inclusive, Inclusive)
	tr := NewRanges(full)

	// Removing the middle splits with flipped bounds.
	tr2 := tr.RemoveRange(mustRange(t, at(day(1)), at(day(2)), Inclusive, Exclusive))
	requireRanges(t, tr2,
		mustRange(t, testStart, at(day(1)), Inclusive, Exclusive),
		mustRange(t, at(day(2)), at(day(4)), Inclusive, Inclusive),
	)

	// Removing everything empties the collection.
	require.True(t, tr.RemoveRange(UnboundedRange()).IsEmpty())

	// Removing across several ranges trims each.
	tr3 := NewRanges(
		mustRange(t, testStart, at(day(1)), Inclusive, Exclusive),
		mustRange(t, at(day(2)), at(day(3)), Inclusive, Exclusive),
	).RemoveRange(mustRange(t, at(time.Hour), at(day(2)).Add(time.Hour), Inclusive, Exclusive))
	requireRanges(t, tr3,
		mustRange(t, testStart, at(time.Hour), Inclusive, Exclusive),
		mustRange(t, at(day(2)).Add(time.Hour), at(day(3)), Inclusive, Exclusive),
	)

	// The receiver is unchanged.
	requireRanges(t, tr, full)
}

func TestRangesRemoveRanges(t *testing.T) {
	tr := NewRanges(mustRange(t, testStart, at(day(4)), Inclusive, Exclusive))
	other := NewRanges(
		mustRange(t, testStart, at(day(1)), Inclusive, Exclusive),
		mustRange(t, at(day(3)), at(day(4)), Inclusive, Exclusive),
	)
	requireRanges(t, tr.RemoveRanges(other),
		mustRange(t, at(day(1)), at(day(3)), Inclusive, Exclusive),
	)
}
