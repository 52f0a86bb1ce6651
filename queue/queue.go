package queue

// Queue is a first-in-first-out queue. The zero value is ready to use.
type Queue[T any] struct {
	items []T
	head  int
}

func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the oldest item, false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.IsEmpty() {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero // Release reference
	q.head++
	if q.head == len(q.items) { // Reuse storage once drained
		q.items = q.items[:0]
		q.head = 0
	}
	return item, true
}

func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}
