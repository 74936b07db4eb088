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

// Package xtime provides a datetime interval model: ranges over time.Time
// with per-endpoint inclusive/exclusive bounds and first-class unbounded
// endpoints, plus sorting, merging and iteration over collections of ranges.
package xtime

import (
	"fmt"
	"strings"
	"time"
)

// Bound classifies whether an endpoint of a range includes its boundary
// instant.
type Bound int

const (
	// Exclusive means the endpoint instant is not part of the range.
	Exclusive Bound = iota

	// Inclusive means the endpoint instant is part of the range.
	Inclusive
)

var validBounds = []Bound{Exclusive, Inclusive}

func (b Bound) String() string {
	switch b {
	case Exclusive:
		return "exclusive"
	case Inclusive:
		return "inclusive"
	default:
		return ""
	}
}

// UnmarshalYAML unmarshals a bound from YAML configuration.
func (b *Bound) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}

	for _, valid := range validBounds {
		if str == valid.String() {
			*b = valid
			return nil
		}
	}

	return fmt.Errorf("invalid Bound '%s' valid bounds are: %v", str, validBounds)
}

// Range is an immutable interval over time.Time. Each endpoint is
// independently inclusive or exclusive and may be unbounded (a negative
// infinite start or a positive infinite end). Unbounded endpoints are
// tagged, never encoded as sentinel timestamps, so they order correctly
// against any finite instant. The zero value is the empty range at the
// zero time.
type Range struct {
	start         time.Time
	end           time.Time
	startBound    Bound
	endBound      Bound
	startInfinite bool
	endInfinite   bool
}

// NewRange returns a range between start and end with the given endpoint
// bounds. Returns an InvalidRangeError if start is after end.
func NewRange(start, end time.Time, startBound, endBound Bound) (Range, error) {
	if start.After(end) {
		return Range{}, &InvalidRangeError{
			Reason: fmt.Sprintf("start %v after end %v", start, end),
		}
	}
	return Range{
		start:      start,
		end:        end,
		startBound: startBound,
		endBound:   endBound,
	}, nil
}

// NewRangeBounds returns a range using the same bound for both endpoints.
func NewRangeBounds(start, end time.Time, bound Bound) (Range, error) {
	return NewRange(start, end, bound, bound)
}

// InstantRange returns the closed single-instant range [t, t].
func InstantRange(t time.Time) Range {
	return Range{start: t, end: t, startBound: Inclusive, endBound: Inclusive}
}

// RangeSince returns the range from start with an unbounded end. An
// unbounded endpoint never includes its boundary, so the end bound is
// exclusive.
func RangeSince(start time.Time, startBound Bound) Range {
	return Range{
		start:       start,
		startBound:  startBound,
		endBound:    Exclusive,
		endInfinite: true,
	}
}

// RangeUntil returns the range up to end with an unbounded start.
func RangeUntil(end time.Time, endBound Bound) Range {
	return Range{
		end:           end,
		startBound:    Exclusive,
		endBound:      endBound,
		startInfinite: true,
	}
}

// UnboundedRange returns the range covering all time.
func UnboundedRange() Range {
	return Range{
		startBound:    Exclusive,
		endBound:      Exclusive,
		startInfinite: true,
		endInfinite:   true,
	}
}

// RangeContaining returns the minimal range spanning all given ranges.
// Returns an InvalidRangeError when called with no ranges.
func RangeContaining(ranges ...Range) (Range, error) {
	if len(ranges) == 0 {
		return Range{}, &InvalidRangeError{Reason: "no ranges supplied"}
	}
	container := ranges[0]
	for _, r := range ranges[1:] {
		container = container.Merge(r)
	}
	return container, nil
}

// Start returns the start instant. Meaningless if StartInfinite.
func (r Range) Start() time.Time { return r.start }

// End returns the end instant. Meaningless if EndInfinite.
func (r Range) End() time.Time { return r.end }

// StartBound returns the bound of the start endpoint.
func (r Range) StartBound() Bound { return r.startBound }

// EndBound returns the bound of the end endpoint.
func (r Range) EndBound() Bound { return r.endBound }

// StartInfinite reports whether the start is unbounded.
func (r Range) StartInfinite() bool { return r.startInfinite }

// EndInfinite reports whether the end is unbounded.
func (r Range) EndInfinite() bool { return r.endInfinite }

// Bounds returns the start and end bounds.
func (r Range) Bounds() (Bound, Bound) { return r.startBound, r.endBound }

// IsEmpty reports whether the range contains no instants. A range is
// empty when its endpoints coincide and at least one of them is
// exclusive; the closed instant range [t, t] is not empty.
func (r Range) IsEmpty() bool {
	if r.startInfinite || r.endInfinite {
		return false
	}
	return r.start.Equal(r.end) &&
		(r.startBound == Exclusive || r.endBound == Exclusive)
}

// Size returns the duration covered by the range. Returns an
// InvalidRangeError when either endpoint is unbounded, since the
// duration is undefined.
func (r Range) Size() (time.Duration, error) {
	if r.startInfinite || r.endInfinite {
		return 0, &InvalidRangeError{Reason: "range has infinite size"}
	}
	return r.end.Sub(r.start), nil
}

// Contains reports whether t lies within the range, honoring endpoint
// bounds. An unbounded endpoint always satisfies containment on its side.
func (r Range) Contains(t time.Time) bool {
	if !r.startInfinite {
		if t.Before(r.start) {
			return false
		}
		if t.Equal(r.start) && r.startBound == Exclusive {
			return false
		}
	}
	if !r.endInfinite {
		if t.After(r.end) {
			return false
		}
		if t.Equal(r.end) && r.endBound == Exclusive {
			return false
		}
	}
	return true
}

// ContainsRange reports whether other lies entirely within the range.
func (r Range) ContainsRange(other Range) bool {
	// Start side: r's start must not come after other's start.
	if !r.startInfinite {
		if other.startInfinite {
			return false
		}
		if r.start.After(other.start) {
			return false
		}
		if r.start.Equal(other.start) &&
			r.startBound == Exclusive && other.startBound == Inclusive {
			return false
		}
	}
	// End side: r's end must not come before other's end.
	if !r.endInfinite {
		if other.endInfinite {
			return false
		}
		if r.end.Before(other.end) {
			return false
		}
		if r.end.Equal(other.end) &&
			r.endBound == Exclusive && other.endBound == Inclusive {
			return false
		}
	}
	return true
}

// startReachesEnd reports whether a's start comes at or before b's end
// such that a point could be shared at the boundary. Used by Overlaps.
func startReachesEnd(a, b Range) bool {
	if a.startInfinite || b.endInfinite {
		return true
	}
	if a.start.Before(b.end) {
		return true
	}
	return a.start.Equal(b.end) &&
		a.startBound == Inclusive && b.endBound == Inclusive
}

// Overlaps reports whether the two ranges share at least one instant.
// Touching endpoints overlap only when both adjacent bounds are
// inclusive. Empty ranges overlap nothing.
func (r Range) Overlaps(other Range) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return startReachesEnd(r, other) && startReachesEnd(other, r)
}

// Before reports whether the range lies entirely before other with no
// shared instant.
func (r Range) Before(other Range) bool {
	if r.endInfinite || other.startInfinite {
		return false
	}
	if r.end.Before(other.start) {
		return true
	}
	return r.end.Equal(other.start) &&
		(r.endBound == Exclusive || other.startBound == Exclusive)
}

// After reports whether the range lies entirely after other with no
// shared instant.
func (r Range) After(other Range) bool {
	return other.Before(r)
}

// touchesBefore reports whether the range ends exactly where other
// starts and the union of the two is contiguous (at least one of the
// adjacent bounds includes the boundary instant).
func (r Range) touchesBefore(other Range) bool {
	if r.endInfinite || other.startInfinite {
		return false
	}
	return r.end.Equal(other.start) &&
		(r.endBound == Inclusive || other.startBound == Inclusive)
}

// Merge returns the minimal range spanning both r and other.
func (r Range) Merge(other Range) Range {
	res := r
	if !res.startInfinite {
		switch {
		case other.startInfinite:
			res.start = time.Time{}
			res.startBound = Exclusive
			res.startInfinite = true
		case other.start.Before(res.start):
			res.start = other.start
			res.startBound = other.startBound
		case other.start.Equal(res.start) && other.startBound == Inclusive:
			res.startBound = Inclusive
		}
	}
	if !res.endInfinite {
		switch {
		case other.endInfinite:
			res.end = time.Time{}
			res.endBound = Exclusive
			res.endInfinite = true
		case other.end.After(res.end):
			res.end = other.end
			res.endBound = other.endBound
		case other.end.Equal(res.end) && other.endBound == Inclusive:
			res.endBound = Inclusive
		}
	}
	return res
}

// Intersect returns the range covered by both r and other. Returns an
// InvalidRangeError when the ranges do not overlap.
func (r Range) Intersect(other Range) (Range, error) {
	if !r.Overlaps(other) {
		return Range{}, &InvalidRangeError{Reason: "ranges do not overlap"}
	}

	res := r
	// Later start wins; on a tie an exclusive bound is the narrower one.
	if res.startInfinite {
		res.start = other.start
		res.startBound = other.startBound
		res.startInfinite = other.startInfinite
	} else if !other.startInfinite {
		if other.start.After(res.start) {
			res.start = other.start
			res.startBound = other.startBound
		} else if other.start.Equal(res.start) && other.startBound == Exclusive {
			res.startBound = Exclusive
		}
	}
	// Earlier end wins; on a tie an exclusive bound is the narrower one.
	if res.endInfinite {
		res.end = other.end
		res.endBound = other.endBound
		res.endInfinite = other.endInfinite
	} else if !other.endInfinite {
		if other.end.Before(res.end) {
			res.end = other.end
			res.endBound = other.endBound
		} else if other.end.Equal(res.end) && other.endBound == Exclusive {
			res.endBound = Exclusive
		}
	}
	return res, nil
}

// Subtract removes other from the range, returning the remaining pieces
// in order. Returns nil when other covers the range entirely, and the
// range unchanged when they do not overlap. Bounds at the cut points are
// flipped so the result excludes exactly what other covers.
func (r Range) Subtract(other Range) []Range {
	if !r.Overlaps(other) {
		if r.IsEmpty() {
			return nil
		}
		return []Range{r}
	}

	var res []Range

	// Left piece: the part of r before other's start.
	if !other.startInfinite {
		startsBefore := r.startInfinite ||
			r.start.Before(other.start) ||
			(r.start.Equal(other.start) &&
				r.startBound == Inclusive && other.startBound == Exclusive)
		if startsBefore {
			left := Range{
				start:         r.start,
				end:           other.start,
				startBound:    r.startBound,
				endBound:      flipBound(other.startBound),
				startInfinite: r.startInfinite,
			}
			if !left.IsEmpty() {
				res = append(res, left)
			}
		}
	}

	// Right piece: the part of r after other's end.
	if !other.endInfinite {
		endsAfter := r.endInfinite ||
			r.end.After(other.end) ||
			(r.end.Equal(other.end) &&
				r.endBound == Inclusive && other.endBound == Exclusive)
		if endsAfter {
			right := Range{
				start:       other.end,
				end:         r.end,
				startBound:  flipBound(other.endBound),
				endBound:    r.endBound,
				endInfinite: r.endInfinite,
			}
			if !right.IsEmpty() {
				res = append(res, right)
			}
		}
	}

	return res
}

func flipBound(b Bound) Bound {
	if b == Inclusive {
		return Exclusive
	}
	return Inclusive
}

// Equal reports whether the two ranges are identical representations:
// same endpoints, same bounds, same unbounded sides. Ranges covering the
// same instants with different bounds are not equal.
func (r Range) Equal(other Range) bool {
	if r.startInfinite != other.startInfinite ||
		r.endInfinite != other.endInfinite ||
		r.startBound != other.startBound ||
		r.endBound != other.endBound {
		return false
	}
	if !r.startInfinite && !r.start.Equal(other.start) {
		return false
	}
	if !r.endInfinite && !r.end.Equal(other.end) {
		return false
	}
	return true
}

// String returns the range in mathematical interval notation, e.g.
// "[2020-01-01T00:00:00Z, 2020-02-01T00:00:00Z)". Unbounded endpoints
// render as -Inf and Inf.
func (r Range) String() string {
	var b strings.Builder
	if r.startBound == Inclusive {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	if r.startInfinite {
		b.WriteString("-Inf")
	} else {
		b.WriteString(r.start.Format(time.RFC3339Nano))
	}
	b.WriteString(", ")
	if r.endInfinite {
		b.WriteString("Inf")
	} else {
		b.WriteString(r.end.Format(time.RFC3339Nano))
	}
	if r.endBound == Inclusive {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}
