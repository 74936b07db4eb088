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

import "errors"

// nonRetryableError wraps an error that must not be retried.
type nonRetryableError struct {
	inner error
}

func (e *nonRetryableError) Error() string {
	return e.inner.Error()
}

func (e *nonRetryableError) Unwrap() error {
	return e.inner
}

// NonRetryableError marks an error as non-retryable: a retrier
// encountering it returns immediately instead of backing off.
func NonRetryableError(err error) error {
	if err == nil {
		return nil
	}
	return &nonRetryableError{inner: err}
}

// IsRetryableError reports whether the retrier is allowed to retry
// after err.
func IsRetryableError(err error) bool {
	var e *nonRetryableError
	return err != nil && !errors.As(err, &e)
}
