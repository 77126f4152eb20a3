// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package dllist

// Node is an element of a [List]. Nodes are only ever created by
// [List.PushFront] and [List.PushBack]; their links are owned and mutated
// exclusively by the [List] they belong to.
type Node[T any] struct {
	next  *Node[T] // Owning link towards the tail
	prev  *Node[T] // Back-reference towards the head, used for navigation only
	value T
}

// newNode creates a detached [Node] holding a copy of value.
func newNode[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns a copy of the value held by this [Node].
func (n *Node[T]) Value() T {
	return n.value
}

// Next returns the successor of this [Node], or nil if it is the tail (or has
// been popped from its list).
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the predecessor of this [Node], or nil if it is the head (or has
// been popped from its list).
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// detach clears both links so a node retained by an outside holder does not
// keep its former neighbours reachable.
func (n *Node[T]) detach() {
	n.next = nil
	n.prev = nil
}
