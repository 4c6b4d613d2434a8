// Copyright ©2026 The Gncommunity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package intqueue provides a FIFO queue of int32 values, the collaborator
// the BFS accumulator uses to avoid importing a general-purpose deque for a
// single, narrow use.
package intqueue

// Queue is a FIFO queue of int32. The zero value is an empty queue ready for
// use.
type Queue struct {
	data []int32
	head int
}

// Enqueue appends v to the back of the queue.
func (q *Queue) Enqueue(v int32) {
	q.data = append(q.data, v)
}

// Dequeue removes and returns the value at the front of the queue. It panics
// if the queue is empty.
func (q *Queue) Dequeue() int32 {
	v := q.data[q.head]
	q.head++
	if q.head == len(q.data) {
		q.data = q.data[:0]
		q.head = 0
	}
	return v
}

// Len reports the number of elements currently queued.
func (q *Queue) Len() int {
	return len(q.data) - q.head
}

// Reset empties the queue, retaining its backing array for reuse across BFS
// sources.
func (q *Queue) Reset() {
	q.data = q.data[:0]
	q.head = 0
}
