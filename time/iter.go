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
	"fmt"
	"time"
)

// DateIter iterates the instants within a range separated by a fixed
// step, honoring the range's endpoint bounds: an exclusive start skips
// the first instant and an exclusive end stops before the last.
type DateIter struct {
	cur     time.Time
	end     time.Time
	step    time.Duration
	endIncl bool
	started bool
}

// Dates returns an iterator over the instants of the range separated by
// step. Returns an InvalidRangeError when the range is unbounded on
// either side or step is not positive.
func (r Range) Dates(step time.Duration) (*DateIter, error) {
	if r.startInfinite || r.endInfinite {
		return nil, &InvalidRangeError{
			Reason: "unable to iterate an unbounded range",
		}
	}
	if step <= 0 {
		return nil, &InvalidRangeError{
			Reason: fmt.Sprintf("step must be positive, got %v", step),
		}
	}

	first := r.start
	if r.startBound == Exclusive {
		first = first.Add(step)
	}
	return &DateIter{
		cur:     first,
		end:     r.end,
		step:    step,
		endIncl: r.endBound == Inclusive,
	}, nil
}

// Next advances the iterator, returning false when the range is
// exhausted.
func (it *DateIter) Next() bool {
	if it.started {
		it.cur = it.cur.Add(it.step)
	}
	it.started = true
	if it.cur.Before(it.end) {
		return true
	}
	return it.endIncl && it.cur.Equal(it.end)
}

// Value returns the current instant.
func (it *DateIter) Value() time.Time {
	return it.cur
}

// WindowIter iterates fixed-width sub-ranges of a range.
type WindowIter struct {
	next   time.Time
	end    time.Time
	step   time.Duration
	bounds [2]Bound
	cur    Range
}

// Windows returns an iterator over consecutive sub-ranges of width step
// covering the range exactly; the final window is clamped to the range
// end when the size is not a multiple of step. The produced windows use
// the given bounds, conventionally [inclusive, exclusive) for
// period-beginning windows or (exclusive, inclusive] for period-ending
// ones. Returns an InvalidRangeError when the range is unbounded or
// step is not positive.
func (r Range) Windows(step time.Duration, startBound, endBound Bound) (*WindowIter, error) {
	if r.startInfinite || r.endInfinite {
		return nil, &InvalidRangeError{
			Reason: "unable to window an unbounded range",
		}
	}
	if step <= 0 {
		return nil, &InvalidRangeError{
			Reason: fmt.Sprintf("step must be positive, got %v", step),
		}
	}
	return &WindowIter{
		next:   r.start,
		end:    r.end,
		step:   step,
		bounds: [2]Bound{startBound, endBound},
	}, nil
}

// Next advances to the next window, returning false when the range has
// been covered.
func (it *WindowIter) Next() bool {
	if !it.next.Before(it.end) {
		return false
	}
	end := it.next.Add(it.step)
	if end.After(it.end) {
		end = it.end
	}
	it.cur = Range{
		start:      it.next,
		end:        end,
		startBound: it.bounds[0],
		endBound:   it.bounds[1],
	}
	it.next = end
	return true
}

// Value returns the current window.
func (it *WindowIter) Value() Range {
	return it.cur
}
