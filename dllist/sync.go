// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package dllist

import (
	"slices"
	"sync"

	"go.uber.org/atomic"
)

// SyncList is a [List] that is safe for concurrent use. All link mutations are
// serialized by a single mutex covering the whole list; per-node locking is
// avoided as it would deadlock on the bidirectional links.
type SyncList[T any] struct {
	mu   sync.Mutex
	list List[T]
	// size mirrors list.len so that [SyncList.Size] does not need the lock.
	size atomic.Int64
}

// NewSync creates a new, empty [SyncList].
func NewSync[T any]() *SyncList[T] {
	return &SyncList[T]{}
}

// PushFront inserts value at the front of the list.
func (l *SyncList[T]) PushFront(value T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.list.PushFront(value)
	l.size.Inc()
}

// PushBack inserts value at the back of the list.
func (l *SyncList[T]) PushBack(value T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.list.PushBack(value)
	l.size.Inc()
}

// PopFront is the concurrency-safe version of [List.PopFront].
func (l *SyncList[T]) PopFront() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	value, ok := l.list.PopFront()
	if ok {
		l.size.Dec()
	}
	return value, ok
}

// PopBack is the concurrency-safe version of [List.PopBack].
func (l *SyncList[T]) PopBack() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	value, ok := l.list.PopBack()
	if ok {
		l.size.Dec()
	}
	return value, ok
}

// Size returns the number of values in the list. It does not acquire the lock,
// so it may lag behind an operation that is still in progress.
func (l *SyncList[T]) Size() int {
	return int(l.size.Load())
}

// Clear removes all values from the list.
func (l *SyncList[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.list.Clear()
	l.size.Store(0)
}

// Snapshot returns a copy of the values of the list, from front to back.
func (l *SyncList[T]) Snapshot() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.AppendSeq(make([]T, 0, l.list.len), l.list.All())
}

// SnapshotBackward returns a copy of the values of the list, from back to
// front.
func (l *SyncList[T]) SnapshotBackward() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.AppendSeq(make([]T, 0, l.list.len), l.list.Backward())
}
