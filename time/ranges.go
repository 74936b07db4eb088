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
	"container/list"
)

// Ranges is a collection of ranges kept sorted, merged and
// non-overlapping: adding a range merges it with any ranges it overlaps
// or touches contiguously, removing a range subtracts it from whatever
// it overlaps. This is the reduced form of a set of intervals.
type Ranges interface {
	// Len returns the number of ranges included.
	Len() int

	// IsEmpty returns true if the collection is empty.
	IsEmpty() bool

	// Contains checks if the range is fully contained.
	Contains(r Range) bool

	// AddRange adds the range, merging as needed.
	AddRange(r Range) Ranges

	// AddRanges adds all ranges from the other collection.
	AddRanges(other Ranges) Ranges

	// RemoveRange subtracts the range.
	RemoveRange(r Range) Ranges

	// RemoveRanges subtracts all ranges from the other collection.
	RemoveRanges(other Ranges) Ranges

	// Iter returns an iterator over the ranges in order.
	Iter() RangeIter
}

type ranges struct {
	sortedRanges *list.List
}

// NewRanges creates a collection holding the given ranges in reduced
// form.
func NewRanges(in ...Range) Ranges {
	res := &ranges{sortedRanges: list.New()}
	for _, r := range in {
		res.addRangeInPlace(r)
	}
	return res
}

func (tr *ranges) Len() int {
	return tr.sortedRanges.Len()
}

func (tr *ranges) IsEmpty() bool {
	return tr == nil || tr.Len() == 0
}

func (tr *ranges) Contains(r Range) bool {
	if r.IsEmpty() {
		return true
	}
	_, e := tr.findFirstNotBefore(r)
	if e == nil {
		return false
	}
	lr := e.Value.(Range)
	return lr.ContainsRange(r)
}

func (tr *ranges) AddRange(r Range) Ranges {
	res := tr.clone()
	res.addRangeInPlace(r)
	return res
}

// addRangeInPlace adds r to tr in place without creating a new copy,
// merging r with every range it overlaps or touches contiguously.
func (tr *ranges) addRangeInPlace(r Range) {
	if r.IsEmpty() {
		return
	}

	_, e := tr.findFirstNotBefore(r)
	for e != nil {
		lr := e.Value.(Range)
		if r.Before(lr) && !r.touchesBefore(lr) {
			break
		}
		ne := e.Next()
		r = r.Merge(lr)
		tr.sortedRanges.Remove(e)
		e = ne
	}
	if e == nil {
		tr.sortedRanges.PushBack(r)
		return
	}
	tr.sortedRanges.InsertBefore(r, e)
}

func (tr *ranges) AddRanges(other Ranges) Ranges {
	res := tr.clone()
	if other == nil {
		return res
	}
	it := other.Iter()
	for it.Next() {
		res.addRangeInPlace(it.Value())
	}
	return res
}

func (tr *ranges) RemoveRange(r Range) Ranges {
	cloned := tr.clone()
	cloned.removeRangeInPlace(r)
	return cloned
}

func (tr *ranges) removeRangeInPlace(r Range) {
	if r.IsEmpty() {
		return
	}
	_, e := tr.findFirstNotBefore(r)
	for e != nil {
		lr := e.Value.(Range)
		ne := e.Next()
		if !lr.Overlaps(r) {
			if r.Before(lr) {
				return
			}
			// lr only touches r; nothing to subtract from it.
			e = ne
			continue
		}
		res := lr.Subtract(r)
		if res == nil {
			tr.sortedRanges.Remove(e)
		} else {
			e.Value = res[0]
			if len(res) == 2 {
				tr.sortedRanges.InsertAfter(res[1], e)
			}
		}
		e = ne
	}
}

func (tr *ranges) RemoveRanges(other Ranges) Ranges {
	cloned := tr.clone()
	if other == nil {
		return cloned
	}
	it := other.Iter()
	for it.Next() {
		cloned.removeRangeInPlace(it.Value())
	}
	return cloned
}

func (tr *ranges) Iter() RangeIter {
	return newRangeIter(tr.sortedRanges)
}

// findFirstNotBefore finds the first range that is not entirely before r
// (a range that merely touches r contiguously does not count as before,
// since adding r would merge with it). Also returns the preceding
// element.
func (tr *ranges) findFirstNotBefore(r Range) (*list.Element, *list.Element) {
	var pe *list.Element
	for e := tr.sortedRanges.Front(); e != nil; e = e.Next() {
		lr := e.Value.(Range)
		if !lr.Before(r) || lr.touchesBefore(r) {
			return pe, e
		}
		pe = e
	}
	return pe, nil
}

func (tr *ranges) clone() *ranges {
	if tr == nil {
		return nil
	}
	res := &ranges{sortedRanges: list.New()}
	for e := tr.sortedRanges.Front(); e != nil; e = e.Next() {
		res.sortedRanges.PushBack(e.Value.(Range))
	}
	return res
}

// IsEmpty returns whether the range collection is nil or empty.
func IsEmpty(tr Ranges) bool {
	return tr == nil || tr.IsEmpty()
}
