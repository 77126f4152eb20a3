// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

// Package dllist provides a generic doubly linked list supporting insertion and
// removal at both ends, as well as lazy traversal in both directions.
//
// The forward ([Node.Next]) direction is the owning one: the [List] keeps its
// chain alive through its head. The backward ([Node.Prev]) direction is only
// used to navigate from the tail, and popped nodes are always fully detached,
// so a popped [Node] retained by a caller never pins any other node in memory.
//
// A [List] is not safe for concurrent use; see [SyncList] for a variant
// guarded by a single mutex.
package dllist

import "iter"

// List is a doubly linked list of values of type T. The zero value is an empty
// list ready to use.
type List[T any] struct {
	head *Node[T]
	tail *Node[T]
	len  int
}

// New creates a new, empty [List].
func New[T any]() *List[T] {
	return &List[T]{}
}

// PushFront inserts value at the front of the list.
func (l *List[T]) PushFront(value T) {
	node := newNode(value)
	head := l.head
	l.head = node
	l.len++
	if head == nil {
		l.tail = node
		return
	}
	node.next = head
	head.prev = node
}

// PushBack inserts value at the back of the list.
func (l *List[T]) PushBack(value T) {
	node := newNode(value)
	tail := l.tail
	l.tail = node
	l.len++
	if tail == nil {
		l.head = node
		return
	}
	node.prev = tail
	tail.next = node
}

// PopFront removes the value at the front of the list and returns it. If the
// list is empty, the zero value of T is returned together with false.
func (l *List[T]) PopFront() (T, bool) {
	node := l.head
	if node == nil {
		var zero T
		return zero, false
	}

	next := node.next
	if next == nil {
		// That was the only node, so the list is now empty.
		l.tail = nil
	} else {
		next.prev = nil
	}
	l.head = next
	l.len--

	node.detach()
	return node.value, true
}

// PopBack removes the value at the back of the list and returns it. If the list
// is empty, the zero value of T is returned together with false.
func (l *List[T]) PopBack() (T, bool) {
	node := l.tail
	if node == nil {
		var zero T
		return zero, false
	}

	prev := node.prev
	if prev == nil {
		l.head = nil
	} else {
		prev.next = nil
	}
	l.tail = prev
	l.len--

	node.detach()
	return node.value, true
}

// Front returns the value at the front of the list without removing it. The
// boolean is false if the list is empty.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Back returns the value at the back of the list without removing it. The
// boolean is false if the list is empty.
func (l *List[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// Size returns the number of values currently held by the list.
func (l *List[T]) Size() int {
	return l.len
}

// Len is the same as [List.Size].
func (l *List[T]) Len() int {
	return l.len
}

// Clear removes all values from the list, detaching every node.
func (l *List[T]) Clear() {
	for node := l.head; node != nil; {
		next := node.next
		node.detach()
		node = next
	}
	l.head, l.tail, l.len = nil, nil, 0
}

// All returns an iterator over the values of the list, from front to back. The
// behavior is unspecified if the list is modified during iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values of the list, from back to front.
// The behavior is unspecified if the list is modified during iteration.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.tail; node != nil; node = node.prev {
			if !yield(node.value) {
				return
			}
		}
	}
}

// Nodes returns an iterator over the nodes of the list, from front to back.
func (l *List[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node) {
				return
			}
		}
	}
}

// NodesBackward returns an iterator over the nodes of the list, from back to
// front.
func (l *List[T]) NodesBackward() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for node := l.tail; node != nil; node = node.prev {
			if !yield(node) {
				return
			}
		}
	}
}
