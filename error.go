// Copyright (c) 2021 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package waitqueue

import (
	"errors"
	"fmt"
)

// ErrTimeout is the error returned by a Waiter whose timeout elapsed before a
// value was handed to it.
var ErrTimeout = errors.New("timed out")

// ErrListenersCleared is the error returned by a Waiter that was still pending
// when Queue.ClearListeners was called.
var ErrListenersCleared = errors.New("listeners cleared")

// ErrInvalidConfig is an error thrown when a config parameter is invalid.
var ErrInvalidConfig = errors.New("invalid config")

// CanceledError is the error returned by a Waiter that was canceled while
// pending, either explicitly with Cancel or because the context passed to
// Wait was done.
//
//	v, err := q.Shift(ctx)
//	if err != nil {
//		var canceledErr *waitqueue.CanceledError
//		switch {
//		case errors.As(err, &canceledErr):
//			// ctx done, canceledErr unwraps to ctx.Err()
//		case errors.Is(err, waitqueue.ErrTimeout):
//			// Config.DefaultTimeout elapsed
//		case errors.Is(err, waitqueue.ErrListenersCleared):
//			// ClearListeners was called
//		}
//	}
type CanceledError struct{ err error }

func (e CanceledError) Error() string {
	if e.err == nil {
		return "canceled in queue"
	}
	return fmt.Sprintf("canceled in queue: %s", e.err)
}
func (e CanceledError) String() string { return e.Error() }
func (e CanceledError) Unwrap() error  { return e.err }
