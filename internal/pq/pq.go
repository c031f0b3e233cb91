// Package pq provides the min-heap frontier shared by the dijkstra and astar
// packages.
//
// Both searches use the "lazy decrease-key" strategy: when a node's priority
// improves, a new Item is pushed and the outdated one is left in the heap to be
// recognized as stale and skipped when popped.
package pq

import "container/heap"

// Item is a frontier entry. Priority orders the heap; Cost carries the path
// cost at push time so callers can detect stale entries.
type Item struct {
	ID       string
	Priority float64
	Cost     float64
}

// items implements heap.Interface. Ties on Priority are broken by ID so that
// equal-cost searches pop nodes in a reproducible order.
type items []Item

func (h items) Len() int { return len(h) }

func (h items) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}

	return h[i].ID < h[j].ID
}

func (h items) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *items) Push(x any) { *h = append(*h, x.(Item)) }

func (h *items) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// MinHeap is a min-priority queue of Items.
type MinHeap struct {
	h items
}

// New returns an empty heap with room for capacity entries.
func New(capacity int) *MinHeap {
	return &MinHeap{h: make(items, 0, capacity)}
}

// Push inserts it. O(log n).
func (m *MinHeap) Push(it Item) { heap.Push(&m.h, it) }

// Pop removes and returns the entry with the smallest Priority. O(log n).
// It panics on an empty heap; check Len first.
func (m *MinHeap) Pop() Item { return heap.Pop(&m.h).(Item) }

// Len returns the number of entries, stale ones included.
func (m *MinHeap) Len() int { return len(m.h) }
