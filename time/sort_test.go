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

func TestCompareByStart(t *testing.T) {
	a := mustRange(t, testStart, at(day(1)), Inclusive, Exclusive)
	b := mustRange(t, at(time.Hour), at(day(1)), Inclusive, Exclusive)
	require.Equal(t, -1, Compare(a, b))
	require.Equal(t, 1, Compare(b, a))
	require.Equal(t, 0, Compare(a, a))
}

func TestCompareTieBreaks(t *testing.T) {
	// Equal starts: inclusive start orders first (it starts earlier).
	inclStart := mustRange(t, testStart, at(day(1)), Inclusive, Exclusive)
	exclStart := mustRange(t, testStart, at(day(1)), Exclusive, Exclusive)
	require.Equal(t, -1, Compare(inclStart, exclStart))

	// Equal starts and bounds: earlier end orders first.
	shortEnd := mustRange(t, testStart, at(time.Hour), Inclusive, Exclusive)
	longEnd := mustRange(t, testStart, at(day(1)), Inclusive, Exclusive)
	require.Equal(t, -1, Compare(shortEnd, longEnd))

	// Everything equal but the end bound: exclusive end orders first
	// (it ends earlier).
	exclEnd := mustRange(t, testStart, at(day(1)), Inclusive, Exclusive)
	inclEnd := mustRange(t, testStart, at(day(1)), Inclusive, Inclusive)
	require.Equal(t, -1, Compare(exclEnd, inclEnd))
}

func TestCompareInfinite(t *testing.T) {
	finite := mustRange(t, at(-day(10000)), at(day(1)), Inclusive, Exclusive)
	until := RangeUntil(at(day(1)), Exclusive)
	since := RangeSince(at(-day(10000)), Inclusive)

	// An unbounded start sorts before any finite start.
	require.Equal(t, -1, Compare(until, finite))

	// An unbounded end sorts after any finite end with the same start.
	require.Equal(t, 1, Compare(since, finite))

	// Two unbounded starts compare equal on the start component
	// regardless of their finite end values; the end tie-break decides.
	untilLater := RangeUntil(at(day(2)), Exclusive)
	require.Equal(t, -1, Compare(until, untilLater))

	require.Equal(t, 0, Compare(UnboundedRange(), UnboundedRange()))
}

func TestSortKeyLess(t *testing.T) {
	a := mustRange(t, testStart, at(day(1)), Inclusive, Exclusive)
	b := mustRange(t, at(time.Hour), at(day(1)), Inclusive, Exclusive)
	require.True(t, a.SortKey().Less(b.SortKey()))
	require.False(t, b.SortKey().Less(a.SortKey()))
	require.False(t, a.SortKey().Less(a.SortKey()))
}

func TestSortDeterministic(t *testing.T) {
	sorted := []Range{
		RangeUntil(at(day(1)), Exclusive),
		mustRange(t, testStart, at(time.Hour), Inclusive, Exclusive),
		mustRange(t, testStart, at(day(1)), Inclusive, Exclusive),
		mustRange(t, testStart, at(day(1)), Inclusive, Inclusive),
		mustRange(t, testStart, at(day(1)), Exclusive, Exclusive),
		mustRange(t, at(time.Hour), at(day(2)), Inclusive, Exclusive),
		RangeSince(at(time.Hour), Inclusive),
	}

	// Any permutation sorts to the same order.
	permutations := [][]int{
		{6, 5, 4, 3, 2, 1, 0},
		{3, 0, 6, 1, 5, 2, 4},
		{0, 1, 2, 3, 4, 5, 6},
	}
	for _, perm := range permutations {
		input := make([]Range, len(sorted))
		for i, j := range perm {
			input[i] = sorted[j]
		}
		Sort(input)
		for i := range sorted {
			require.True(t, sorted[i].Equal(input[i]),
				"position %d: expected %v got %v", i, sorted[i], input[i])
		}
	}

	// Sorting a sorted sequence is a no-op.
	again := append([]Range(nil), sorted...)
	Sort(again)
	for i := range sorted {
		require.True(t, sorted[i].Equal(again[i]))
	}
}
