// SPDX-License-Identifier: MIT
// Package: completion
//
// queue.go: front-consumed work queue over a fixed slice (head cursor, no reallocation).

package completion

type queue struct {
	name  string
	parts []int
	head  int
}

func newQueue(name string, parts []int) queue {
	return queue{name: name, parts: parts}
}

func (q *queue) empty() bool { return q.head >= len(q.parts) }

func (q *queue) len() int { return len(q.parts) - q.head }

// front returns the next pending part; underflow is an invariant violation.
func (q *queue) front() int {
	if q.empty() {
		invariantf("%s queue underflow", q.name)
	}

	return q.parts[q.head]
}

// pop consumes and returns the next pending part.
func (q *queue) pop() int {
	v := q.front()
	q.head++

	return v
}
