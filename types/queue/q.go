package queue

import (
	"github.com/ef-ds/deque"
)

// Q is a generic FIFO queue backed by ef-ds/deque. The resolver uses it to
// hand out positional slots strictly left to right.
type Q[T any] struct {
	d deque.Deque
}

// New creates a new Q
func New[T any]() *Q[T] {
	return &Q[T]{}
}

// Enqueue adds an item to the end of the queue
func (q *Q[T]) Enqueue(item T) {
	q.d.PushBack(item)
}

// Dequeue removes and returns the first item from the queue
func (q *Q[T]) Dequeue() (T, bool) {
	v, ok := q.d.PopFront()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Peek returns the first item without removing it
func (q *Q[T]) Peek() (T, bool) {
	v, ok := q.d.Front()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Drain removes and returns all remaining items in order
func (q *Q[T]) Drain() []T {
	if q.d.Len() == 0 {
		return nil
	}

	items := make([]T, 0, q.d.Len())
	for {
		v, ok := q.d.PopFront()
		if !ok {
			break
		}
		items = append(items, v.(T))
	}

	return items
}

// Len returns the number of items in the Q
func (q *Q[T]) Len() int {
	return q.d.Len()
}
