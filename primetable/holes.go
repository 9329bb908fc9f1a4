package primetable

import "golang.org/x/exp/slices"

// holePool holds primes freed by removed values, kept in ascending order.
// Pop yields the numerically largest hole first: reusing the largest freed
// prime before the smaller ones bounds the bit growth of any encoding built
// from this table's primes as values churn.
type holePool struct {
	sorted []uint64
}

func (h *holePool) Len() int { return len(h.sorted) }

// Push inserts prime, keeping the pool ordered.
func (h *holePool) Push(prime uint64) {
	i, _ := slices.BinarySearch(h.sorted, prime)
	h.sorted = slices.Insert(h.sorted, i, prime)
}

// Pop removes and returns the largest pooled prime. The pool must not be
// empty.
func (h *holePool) Pop() uint64 {
	p := h.sorted[len(h.sorted)-1]
	h.sorted = h.sorted[:len(h.sorted)-1]
	return p
}
