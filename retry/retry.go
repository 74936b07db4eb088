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

package retry

import (
	"errors"
	"math/rand"
	"time"

	"github.com/uber-go/tally"
)

var (
	// ErrWhileConditionFalse is returned when the while condition
	// evaluates to false before the attempt succeeds.
	ErrWhileConditionFalse = errors.New("retry while condition evaluated to false")
)

// Fn is a function that can be retried.
type Fn func() error

// ContinueFn is a function that returns whether to continue attempting
// an operation.
type ContinueFn func(attempt int) bool

// Retrier retries an operation with exponential backoff.
type Retrier interface {
	// Options returns the retrier options.
	Options() Options

	// Attempt performs the operation, retrying on retryable failures.
	Attempt(fn Fn) error

	// AttemptWhile performs the operation while continueFn holds,
	// retrying on retryable failures.
	AttemptWhile(continueFn ContinueFn, fn Fn) error
}

type retrier struct {
	opts           Options
	initialBackoff time.Duration
	backoffFactor  float64
	maxBackoff     time.Duration
	maxRetries     int
	forever        bool
	jitter         bool
	sleepFn        func(t time.Duration)
	metrics        retrierMetrics
}

type retrierMetrics struct {
	success            tally.Counter
	successLatency     tally.Histogram
	errors             tally.Counter
	errorsNotRetryable tally.Counter
	errorsFinal        tally.Counter
	retries            tally.Counter
}

// NewRetrier creates a new retrier.
func NewRetrier(opts Options) Retrier {
	scope := opts.MetricsScope()
	errorTags := struct {
		retryable    map[string]string
		notRetryable map[string]string
	}{
		map[string]string{"type": "retryable"},
		map[string]string{"type": "not-retryable"},
	}

	return &retrier{
		opts:           opts,
		initialBackoff: opts.InitialBackoff(),
		backoffFactor:  opts.BackoffFactor(),
		maxBackoff:     opts.MaxBackoff(),
		maxRetries:     opts.MaxRetries(),
		forever:        opts.Forever(),
		jitter:         opts.Jitter(),
		sleepFn:        time.Sleep,
		metrics: retrierMetrics{
			success:            scope.Counter("success"),
			successLatency:     histogramWithDurationBuckets(scope, "success-latency"),
			errors:             scope.Tagged(errorTags.retryable).Counter("errors"),
			errorsNotRetryable: scope.Tagged(errorTags.notRetryable).Counter("errors"),
			errorsFinal:        scope.Counter("errors-final"),
			retries:            scope.Counter("retries"),
		},
	}
}

func (r *retrier) Options() Options {
	return r.opts
}

func (r *retrier) Attempt(fn Fn) error {
	return r.attempt(nil, fn)
}

func (r *retrier) AttemptWhile(continueFn ContinueFn, fn Fn) error {
	return r.attempt(continueFn, fn)
}

func (r *retrier) attempt(continueFn ContinueFn, fn Fn) error {
	// Always attempt at least once.
	attempt := 0
	if continueFn != nil && !continueFn(attempt) {
		return ErrWhileConditionFalse
	}

	start := time.Now()
	err := fn()
	attempt++
	if err == nil {
		r.metrics.successLatency.RecordDuration(time.Since(start))
		r.metrics.success.Inc(1)
		return nil
	}
	if !IsRetryableError(err) {
		r.metrics.errorsNotRetryable.Inc(1)
		return err
	}
	r.metrics.errors.Inc(1)

	curr := r.initialBackoff.Nanoseconds()
	for i := 1; r.forever || i <= r.maxRetries; i++ {
		if continueFn != nil && !continueFn(attempt) {
			return ErrWhileConditionFalse
		}

		backoff := curr
		if r.jitter {
			half := curr / 2
			backoff = half + rand.Int63n(half+1)
		}
		if maxBackoff := r.maxBackoff.Nanoseconds(); backoff > maxBackoff {
			backoff = maxBackoff
		}
		r.sleepFn(time.Duration(backoff))

		r.metrics.retries.Inc(1)
		start := time.Now()
		err = fn()
		attempt++
		if err == nil {
			r.metrics.successLatency.RecordDuration(time.Since(start))
			r.metrics.success.Inc(1)
			return nil
		}
		if !IsRetryableError(err) {
			r.metrics.errorsNotRetryable.Inc(1)
			return err
		}
		r.metrics.errors.Inc(1)

		curr = int64(float64(curr) * r.backoffFactor)
	}
	r.metrics.errorsFinal.Inc(1)
	return err
}

// histogramWithDurationBuckets returns a histogram with exponential
// duration buckets suitable for retry latencies.
func histogramWithDurationBuckets(scope tally.Scope, name string) tally.Histogram {
	buckets := append(
		tally.DurationBuckets{0, time.Millisecond},
		tally.MustMakeExponentialDurationBuckets(2*time.Millisecond, 1.5, 30)...,
	)
	return scope.Histogram(name, buckets)
}
