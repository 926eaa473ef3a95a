// Copyright (c) 2021 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package waitqueue

// line is a doubly linked list addressable at both ends. It backs both the
// value buffer and the listener registry of a Queue, and is not safe for
// concurrent use on its own.
type line[E any] struct {
	head, tail *entry[E]
	n          int
}

type entry[E any] struct {
	v          E
	prev, next *entry[E]
	linked     bool
}

func (l *line[E]) pushBack(v E) *entry[E] {
	e := &entry[E]{v: v, linked: true}
	if l.tail == nil {
		l.head = e
		l.tail = e
	} else {
		l.tail.next = e
		e.prev = l.tail
		l.tail = e
	}
	l.n++

	return e
}

func (l *line[E]) pushFront(v E) *entry[E] {
	e := &entry[E]{v: v, linked: true}
	if l.head == nil {
		l.head = e
		l.tail = e
	} else {
		l.head.prev = e
		e.next = l.head
		l.head = e
	}
	l.n++

	return e
}

// popFront removes and returns the head entry, or nil if the line is empty.
func (l *line[E]) popFront() *entry[E] {
	e := l.head
	if e == nil {
		return nil
	}
	l.remove(e)

	return e
}

// popBack removes and returns the tail entry, or nil if the line is empty.
func (l *line[E]) popBack() *entry[E] {
	e := l.tail
	if e == nil {
		return nil
	}
	l.remove(e)

	return e
}

// remove unlinks e. It reports false if e was already removed.
func (l *line[E]) remove(e *entry[E]) bool {
	if !e.linked {
		return false
	}
	if e.prev == nil {
		l.head = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next == nil {
		l.tail = e.prev
	} else {
		e.next.prev = e.prev
	}
	e.prev, e.next = nil, nil
	e.linked = false
	l.n--

	return true
}

// drop removes all entries and returns the former head so that the caller can
// walk the detached chain with the next pointers still intact.
func (l *line[E]) drop() *entry[E] {
	head := l.head
	for e := head; e != nil; e = e.next {
		e.linked = false
	}
	l.head, l.tail = nil, nil
	l.n = 0

	return head
}

// values returns a copy of the values, head to tail.
func (l *line[E]) values() []E {
	vs := make([]E, 0, l.n)
	for e := l.head; e != nil; e = e.next {
		vs = append(vs, e.v)
	}

	return vs
}
