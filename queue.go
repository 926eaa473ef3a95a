// Copyright (c) 2021 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package waitqueue

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"sync"
	"time"
)

// NoTimeout makes a drain wait until a value arrives, it is canceled, or the
// listeners are cleared. Any non-positive duration has the same effect.
const NoTimeout time.Duration = 0

// Queue is a double-ended queue of values in which consumers can wait for a
// value to arrive. Values are pushed to either end without ever blocking.
// A drain on an empty buffer registers a listener, and listeners are served
// strictly in the order they registered, whatever end they drain from.
//
// The zero value is an empty queue with the default configuration.
type Queue[T any] struct {
	buf            line[T]
	listeners      line[*Waiter[T]]
	name           string
	defaultTimeout time.Duration
	logger         *slog.Logger
	mu             sync.Mutex
}

// New creates a new Queue with the default configuration.
func New[T any](opts ...Option) *Queue[T] {
	q, err := NewWithConfig[T](nil, opts...)
	if err != nil {
		panic(fmt.Sprintf("invalid default conf: %s", err))
	}

	return q
}

// NewWithConfig creates a new Queue with the specified configuration. If conf
// is nil, the default configuration will be used.
func NewWithConfig[T any](conf *Config, opts ...Option) (*Queue[T], error) {
	if conf == nil {
		conf = &Config{}
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}
	o := &options{logger: discardLogger}
	for _, opt := range opts {
		opt(o)
	}
	name := conf.Name
	if name == "" {
		name = "waitqueue"
	}

	return &Queue[T]{
		name:           name,
		defaultTimeout: conf.DefaultTimeout,
		logger:         o.logger.With(queueName(name)),
	}, nil
}

// PushBack appends the values to the back of the queue one at a time. Each
// value is handed to the oldest listener, if any, before the next value is
// appended. It returns the length of the buffer afterwards.
func (q *Queue[T]) PushBack(vs ...T) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, v := range vs {
		q.buf.pushBack(v)
		q.dispatch()
	}

	return q.buf.n
}

// PushFront inserts the values at the front of the queue one at a time, so
// PushFront(a, b, c) on an empty queue leaves c at the front and a at the
// back. Each value is handed to the oldest listener, if any, before the next
// value is inserted. It returns the length of the buffer afterwards.
func (q *Queue[T]) PushFront(vs ...T) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, v := range vs {
		q.buf.pushFront(v)
		q.dispatch()
	}

	return q.buf.n
}

// DrainFront removes a value from the front of the queue. If the buffer is
// not empty, the returned Waiter has already settled with that value.
// Otherwise a listener is registered behind all pending listeners. A positive
// timeout arms a timer that settles the Waiter with ErrTimeout if it is still
// pending when the timer fires.
func (q *Queue[T]) DrainFront(timeout time.Duration) *Waiter[T] {
	return q.drain(Front, timeout)
}

// DrainBack is the same as DrainFront, except that it removes the value from
// the back of the queue.
func (q *Queue[T]) DrainBack(timeout time.Duration) *Waiter[T] {
	return q.drain(Back, timeout)
}

// Shift removes a value from the front of the queue, blocking while the queue
// is empty. It gives up after Config.DefaultTimeout, if set, or when ctx is
// done.
func (q *Queue[T]) Shift(ctx context.Context) (T, error) {
	return q.DrainFront(q.defaultTimeout).Wait(ctx)
}

// Pop is the same as Shift, except that it removes the value from the back of
// the queue.
func (q *Queue[T]) Pop(ctx context.Context) (T, error) {
	return q.DrainBack(q.defaultTimeout).Wait(ctx)
}

// ClearData removes all buffered values. Pending listeners keep waiting.
func (q *Queue[T]) ClearData() {
	q.mu.Lock()
	q.buf.drop()
	q.mu.Unlock()
}

// ClearListeners settles every pending listener with ErrListenersCleared.
// Buffered values are kept.
func (q *Queue[T]) ClearListeners() {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := q.listeners.n
	if n == 0 {
		return
	}
	var zero T
	for e := q.listeners.drop(); e != nil; {
		next := e.next
		e.prev, e.next = nil, nil
		e.v.settle(zero, ErrListenersCleared)
		e = next
	}
	q.log().Debug("listeners cleared", slog.Int("count", n))
}

// Length returns the current number of buffered values.
func (q *Queue[T]) Length() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.n
}

// NumPendingListeners returns the number of drains waiting for a value.
func (q *Queue[T]) NumPendingListeners() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.listeners.n
}

// Values returns a copy of the buffered values, front to back.
func (q *Queue[T]) Values() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.values()
}

// All returns an iterator over the buffered values, front to back. Each range
// over it sees the values buffered when that iteration starts, and does not
// modify the queue.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range q.Values() {
			if !yield(v) {
				return
			}
		}
	}
}

// log returns the queue's logger, or a discard logger for a zero-value
// Queue.
func (q *Queue[T]) log() *slog.Logger {
	if q.logger == nil {
		return discardLogger
	}
	return q.logger
}

func (q *Queue[T]) drain(mode Mode, timeout time.Duration) *Waiter[T] {
	w := newWaiter(q, mode)

	q.mu.Lock()
	defer q.mu.Unlock()

	// a non-empty buffer implies an empty registry
	if e := q.take(mode); e != nil {
		w.settle(e.v, nil)
		return w
	}

	w.e = q.listeners.pushBack(w)
	if 0 < timeout {
		w.timer = time.AfterFunc(timeout, func() { q.expire(w) })
	}
	q.dispatch()

	return w
}

// dispatch pairs buffered values with the oldest listeners. q.mu must be held.
func (q *Queue[T]) dispatch() {
	for q.listeners.n != 0 && q.buf.n != 0 {
		w := q.listeners.popFront().v
		e := q.take(w.mode)
		w.settle(e.v, nil)
	}
}

func (q *Queue[T]) take(mode Mode) *entry[T] {
	if mode == Back {
		return q.buf.popBack()
	}
	return q.buf.popFront()
}

// expire runs on the timer goroutine. A listener no longer in the registry
// has already been settled by whoever removed it, and the timer loses.
func (q *Queue[T]) expire(w *Waiter[T]) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if w.e == nil || !q.listeners.remove(w.e) {
		return
	}
	var zero T
	w.settle(zero, ErrTimeout)
	q.log().Debug("listener timed out", listenerAttr(w.id, w.mode))
}

func (q *Queue[T]) cancel(w *Waiter[T], err error) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if w.e == nil || !q.listeners.remove(w.e) {
		return false
	}
	var zero T
	w.settle(zero, err)
	q.log().Debug("listener canceled", listenerAttr(w.id, w.mode), errorAttr(err))

	return true
}
