// Copyright (c) 2021 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package waitqueue

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Mode is the end of the buffer a drain removes its value from.
type Mode int

const (
	// Front drains take the oldest value pushed to the back.
	Front Mode = iota
	// Back drains take the newest value pushed to the back.
	Back
)

func (m Mode) String() string {
	switch m {
	case Front:
		return "front"
	case Back:
		return "back"
	}
	return "unknown"
}

// Waiter is the handle returned by a drain. It settles exactly once, either
// with a value or with an error.
type Waiter[T any] struct {
	id   uuid.UUID
	mode Mode
	q    *Queue[T]

	// guarded by q.mu
	e     *entry[*Waiter[T]] // registry entry while pending
	timer *time.Timer

	done chan struct{}
	v    T
	err  error
}

func newWaiter[T any](q *Queue[T], mode Mode) *Waiter[T] {
	return &Waiter[T]{
		id:   uuid.New(),
		mode: mode,
		q:    q,
		done: make(chan struct{}),
	}
}

// ID returns the identifier of the drain, as it appears in log records.
func (w *Waiter[T]) ID() uuid.UUID { return w.id }

// Mode returns the end of the buffer the drain takes its value from.
func (w *Waiter[T]) Mode() Mode { return w.mode }

// Done returns a channel that is closed when the Waiter settles.
func (w *Waiter[T]) Done() <-chan struct{} { return w.done }

// Settled reports whether the Waiter has settled, without blocking.
func (w *Waiter[T]) Settled() bool {
	select {
	case <-w.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the Waiter settles and returns its value or error. The
// error is ErrTimeout, ErrListenersCleared or a *CanceledError.
//
// If ctx is done while the drain is still pending, the drain is canceled and
// Wait returns a *CanceledError wrapping ctx.Err(). If a value was handed to
// the drain first, the value is returned instead, so no value is lost.
func (w *Waiter[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-w.done:
		return w.v, w.err
	default:
	}

	select {
	case <-w.done:
	case <-ctx.Done():
		w.q.cancel(w, &CanceledError{err: ctx.Err()})
		<-w.done
	}

	return w.v, w.err
}

// Cancel withdraws a pending drain, which then settles with a *CanceledError.
// The queue is left as if the drain had never been issued. Cancel reports
// false if the Waiter had already settled.
func (w *Waiter[T]) Cancel() bool {
	return w.q.cancel(w, &CanceledError{})
}

// settle must be called with q.mu held, after w left the registry.
func (w *Waiter[T]) settle(v T, err error) {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.e = nil
	w.v = v
	w.err = err
	close(w.done)
}
