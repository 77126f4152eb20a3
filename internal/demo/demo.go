// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

// Package demo holds the fixed demonstration sequences run by the dllist
// command. Each sequence exercises a [dllist.List] and prints the returned
// values and sizes to the supplied writer.
package demo

import (
	"fmt"
	"io"

	"github.com/DataDog/dllist-go/dllist"
	"github.com/DataDog/dllist-go/log"
)

// Run executes every demonstration in order: [Front], [Back], [Iter],
// [IterRef] and [Sync].
func Run(w io.Writer, count int) {
	for _, step := range []struct {
		name string
		run  func(io.Writer, int)
	}{
		{"front", Front},
		{"back", Back},
		{"iter", Iter},
		{"iter-ref", IterRef},
		{"sync", Sync},
	} {
		log.Debug("demo: running %s with %d values", step.name, count)
		fmt.Fprintf(w, "== %s\n", step.name)
		step.run(w, count)
	}
}

// Front pushes 1..count at the front of a list, then pops them all from the
// front, which yields them in reverse order.
func Front(w io.Writer, count int) {
	list := dllist.New[int]()
	for i := 1; i <= count; i++ {
		list.PushFront(i)
	}
	fmt.Fprintf(w, "size: %d\n", list.Size())
	drain(w, "pop_front", list.PopFront)
	fmt.Fprintf(w, "size: %d\n", list.Size())
}

// Back pushes 1..count at the back of a list, then pops them all from the back,
// which yields them in reverse order. A final pop shows the empty result.
func Back(w io.Writer, count int) {
	list := dllist.New[int]()
	for i := 1; i <= count; i++ {
		list.PushBack(i)
	}
	fmt.Fprintf(w, "size: %d\n", list.Size())
	drain(w, "pop_back", list.PopBack)
	fmt.Fprintf(w, "size: %d\n", list.Size())
}

// Iter walks a list of 1..count forward, then backward.
func Iter(w io.Writer, count int) {
	list := dllist.New[int]()
	for i := 1; i <= count; i++ {
		list.PushBack(i)
	}

	fmt.Fprint(w, "forward:")
	for value := range list.All() {
		fmt.Fprintf(w, " %d", value)
	}
	fmt.Fprint(w, "\nbackward:")
	for value := range list.Backward() {
		fmt.Fprintf(w, " %d", value)
	}
	fmt.Fprintln(w)
}

// IterRef walks the nodes of a list of 1..count, printing each value together
// with its neighbours.
func IterRef(w io.Writer, count int) {
	list := dllist.New[int]()
	for i := 1; i <= count; i++ {
		list.PushBack(i)
	}

	for node := range list.Nodes() {
		fmt.Fprintf(w, "%s <- %d -> %s\n", valueOf(node.Prev()), node.Value(), valueOf(node.Next()))
	}
}

// Sync fills a [dllist.SyncList] by alternating pushes between both ends, then
// drains it from the front.
func Sync(w io.Writer, count int) {
	list := dllist.NewSync[int]()
	for i := 1; i <= count; i++ {
		if i%2 == 0 {
			list.PushFront(i)
		} else {
			list.PushBack(i)
		}
	}
	fmt.Fprintf(w, "size: %d\n", list.Size())
	fmt.Fprintf(w, "snapshot: %v\n", list.Snapshot())
	drain(w, "pop_front", list.PopFront)
	fmt.Fprintf(w, "size: %d\n", list.Size())
}

// drain pops every value using pop, printing each of them, and finally prints
// the empty result of the last call.
func drain(w io.Writer, name string, pop func() (int, bool)) {
	for {
		value, ok := pop()
		if !ok {
			fmt.Fprintf(w, "%s: <empty>\n", name)
			return
		}
		fmt.Fprintf(w, "%s: %d\n", name, value)
	}
}

func valueOf(node *dllist.Node[int]) string {
	if node == nil {
		return "<nil>"
	}
	return fmt.Sprint(node.Value())
}
