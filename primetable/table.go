package primetable

import (
	"errors"

	"github.com/forestrie/go-primebag/primes"
)

// NoPrime is the sentinel reported for values that have no assigned prime.
// It can never denote a real prime.
const NoPrime uint64 = 0

// ErrPrimeUnassigned is returned by Value when the queried prime is not
// currently assigned to any value.
var ErrPrimeUnassigned = errors.New("primetable: prime not assigned to a value")

// Table assigns a unique prime number to each distinct value it is given
// and resolves the assignment in both directions. Primes freed by Remove
// are pooled and reassigned, largest first, before a fresh prime is drawn
// from the generator. Whenever an assignment consumes a generator prime the
// table prefetches, in the background, the prime the next new value would
// need, so a typical Add pays map-update latency rather than sieve latency.
//
// A Table may be shared by any number of bags. It is not safe for
// concurrent mutation from multiple external callers; the only internal
// concurrency is the single prefetch task.
type Table[V comparable] struct {
	sieve   *primes.Sieve
	forward map[V]uint64
	reverse map[uint64]V
	holes   holePool
	pending *prefetch
}

// New returns an empty table backed by a fresh prime generator.
func New[V comparable]() *Table[V] {
	return &Table[V]{
		sieve:   primes.New(),
		forward: map[V]uint64{},
		reverse: map[uint64]V{},
	}
}

// NewSeeded returns an empty table whose generator is warm started from
// seed. The caller guarantees seed is ascending and genuinely prime;
// nothing is validated, see primes.NewSeeded.
func NewSeeded[V comparable](seed []uint64) *Table[V] {
	return &Table[V]{
		sieve:   primes.NewSeeded(seed),
		forward: map[V]uint64{},
		reverse: map[uint64]V{},
	}
}

// Add assigns a prime to value and returns it. Add is idempotent: a value
// that already holds an assignment gets the same prime back. A new value
// prefers, in order, the largest pooled hole, the prefetched prime if one
// is pending, and finally a direct (possibly slow) generator call.
func (t *Table[V]) Add(value V) uint64 {
	if p, ok := t.forward[value]; ok {
		return p
	}

	var prime uint64
	if t.holes.Len() > 0 {
		prime = t.holes.Pop()
	} else {
		if t.pending != nil {
			prime = t.pending.join()
		} else {
			// Cold path, typically only the very first assignment.
			prime = t.sieve.NthPrime(len(t.forward))
		}
		// With no holes left, the next new value needs the next generator
		// prime. Start computing it now.
		t.pending = startPrefetch(t.sieve, len(t.forward)+1)
	}

	t.forward[value] = prime
	t.reverse[prime] = value
	return prime
}

// Prime returns the prime assigned to value, or NoPrime. It never mutates
// the table.
func (t *Table[V]) Prime(value V) uint64 {
	return t.forward[value]
}

// Remove erases value's assignment in both directions, pools the freed
// prime for reassignment and returns it. Removing a value that was never
// assigned returns NoPrime.
func (t *Table[V]) Remove(value V) uint64 {
	prime, ok := t.forward[value]
	if !ok {
		return NoPrime
	}
	delete(t.forward, value)
	delete(t.reverse, prime)
	t.holes.Push(prime)
	return prime
}

// Clear resets the table to its freshly constructed state: both maps and
// the hole pool are emptied. A pending prefetch is joined first so no
// background work is orphaned; its result is discarded. The generator keeps
// every prime it has computed, so assignment after Clear restarts from the
// lowest primes at cached speed.
func (t *Table[V]) Clear() {
	if t.pending != nil {
		t.pending.join()
		t.pending = nil
	}
	clear(t.forward)
	clear(t.reverse)
	t.holes = holePool{}
}

// ContainsPrime reports whether prime is currently assigned to a value.
func (t *Table[V]) ContainsPrime(prime uint64) bool {
	_, ok := t.reverse[prime]
	return ok
}

// Value returns the value behind prime. An unassigned prime is a
// precondition violation reported as ErrPrimeUnassigned; callers confirm
// assignment with ContainsPrime first.
func (t *Table[V]) Value(prime uint64) (V, error) {
	v, ok := t.reverse[prime]
	if !ok {
		return v, ErrPrimeUnassigned
	}
	return v, nil
}

// PrimeNumbers returns the generator's ascending prime sequence as computed
// so far. The slice is shared with the generator; the caller must not
// modify it.
func (t *Table[V]) PrimeNumbers() []uint64 {
	return t.sieve.Primes()
}

// Len returns the number of values currently holding an assignment.
func (t *Table[V]) Len() int {
	return len(t.forward)
}
