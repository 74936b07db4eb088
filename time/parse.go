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
	"regexp"
	"strings"
	"time"
)

var (
	// Mathematical interval notation, e.g. "[2020-01-01, 2020-02-01)".
	mathRangePattern = regexp.MustCompile(
		`^\s*(?P<start_bound>[\(\[])\s*(?P<start>.+?)\s*,\s*(?P<end>.+?)\s*(?P<end_bound>[\)\]])\s*$`,
	)

	// Simple notation, e.g. "2020-01-01 to 2020-02-01". Both endpoints
	// are inclusive.
	simpleRangePattern = regexp.MustCompile(
		`^\s*(?P<start>.+?)\s+to\s+(?P<end>.+?)\s*$`,
	)

	parseLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
		"2006",
	}
)

// ParseRange parses a range from mathematical interval notation
// ("[2020-01-01, 2020-02-01)") or simple notation ("2020-01-01 to
// 2020-02-01", both bounds inclusive). The tokens "-Inf" and "Inf"
// denote unbounded endpoints. Endpoint instants may be RFC3339
// timestamps, "2006-01-02 15:04[:05]" forms, dates, or bare years.
func ParseRange(s string) (Range, error) {
	var (
		startStr, endStr     string
		startBound, endBound = Inclusive, Inclusive
	)

	if m := mathRangePattern.FindStringSubmatch(s); m != nil {
		if m[1] == "(" {
			startBound = Exclusive
		}
		startStr, endStr = m[2], m[3]
		if m[4] == ")" {
			endBound = Exclusive
		}
	} else if m := simpleRangePattern.FindStringSubmatch(s); m != nil {
		startStr, endStr = m[1], m[2]
	} else {
		return Range{}, &InvalidRangeError{
			Reason: fmt.Sprintf("unrecognized range %q", s),
		}
	}

	var (
		r   = Range{startBound: startBound, endBound: endBound}
		err error
	)

	if strings.EqualFold(startStr, "-inf") {
		r.startInfinite = true
		r.startBound = Exclusive
	} else if r.start, err = parseInstant(startStr); err != nil {
		return Range{}, &InvalidRangeError{
			Reason: fmt.Sprintf("unable to parse start %q", startStr),
		}
	}

	if strings.EqualFold(endStr, "inf") {
		r.endInfinite = true
		r.endBound = Exclusive
	} else if r.end, err = parseInstant(endStr); err != nil {
		return Range{}, &InvalidRangeError{
			Reason: fmt.Sprintf("unable to parse end %q", endStr),
		}
	}

	if !r.startInfinite && !r.endInfinite && r.start.After(r.end) {
		return Range{}, &InvalidRangeError{
			Reason: fmt.Sprintf("start %v after end %v", r.start, r.end),
		}
	}
	return r, nil
}

func parseInstant(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range parseLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
