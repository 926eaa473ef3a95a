// Copyright (c) 2021 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

/*
Package waitqueue provides a double-ended queue in which go-routines can wait
for a value. Producers push values to either end and never block. Consumers
drain values from either end; a drain against an empty queue waits, with an
optional timeout, until a value is pushed. Waiting drains are served in FIFO
order, regardless of the end they drain from.

	q := waitqueue.New[string]()
	go q.PushBack("hello")
	v, err := q.DrainFront(time.Second).Wait(ctx)

Readers coming from JavaScript wait queues will find push as PushBack,
unshift as PushFront, shift and pop as Shift and Pop (or DrainFront and
DrainBack for a handle with a timeout), clear and empty as ClearData,
numListeners as NumPendingListeners, and the length property as Length.
*/
package waitqueue
