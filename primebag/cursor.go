package primebag

import (
	"errors"
	"iter"
	"math/big"
)

// ErrCursorEnd is returned by Value when the cursor is in the end state.
var ErrCursorEnd = errors.New("primebag: cursor at end")

// Cursor reconstructs a bag's occurrences one at a time, in ascending prime
// order, without materializing the multiset. It is bidirectional: stepping
// backward is the exact inverse of stepping forward.
//
// A Cursor holds a private working copy of the host bag's encoding and
// length: the remaining, not yet consumed portion. It is either positioned
// on one logical occurrence or in the end state. Both stepping directions
// scan the table's prime sequence linearly, so reconstruction is not
// constant time per step.
//
// Mutating the host bag invalidates its cursors.
type Cursor[V comparable] struct {
	bag *Bag[V]

	// rest encodes the current occurrence and everything after it.
	rest      *big.Int
	remaining int

	// index locates the current occurrence's prime in the table's sequence.
	index int
	end   bool
}

// Begin returns a cursor positioned on the bag's first occurrence, or an
// end cursor for an empty bag.
func (b *Bag[V]) Begin() *Cursor[V] {
	c := &Cursor[V]{bag: b, rest: new(big.Int).Set(b.encoding), remaining: b.length}
	if c.remaining == 0 {
		c.end = true
		return c
	}
	c.seekForward()
	return c
}

// End returns a cursor in the end state. A forward walk that consumes every
// occurrence compares Equal to it.
func (b *Bag[V]) End() *Cursor[V] {
	return &Cursor[V]{bag: b, rest: big.NewInt(1), end: true}
}

// AtEnd reports whether the cursor is in the end state.
func (c *Cursor[V]) AtEnd() bool {
	return c.end
}

// Value returns the occurrence the cursor is positioned on. Dereferencing
// the end state is a precondition violation reported as ErrCursorEnd.
func (c *Cursor[V]) Value() (V, error) {
	if c.end {
		var zero V
		return zero, ErrCursorEnd
	}
	return c.bag.table.Value(c.bag.table.PrimeNumbers()[c.index])
}

// Next consumes the current occurrence, dividing its prime out of the
// working copy, and repositions on the following occurrence; consuming the
// last occurrence transitions to the end state. Next at end does nothing.
func (c *Cursor[V]) Next() {
	if c.end {
		return
	}
	p := new(big.Int).SetUint64(c.bag.table.PrimeNumbers()[c.index])
	c.rest.Quo(c.rest, p)
	c.remaining--
	if c.remaining == 0 {
		c.end = true
		return
	}
	c.seekForward()
}

// Prev is the exact inverse of Next: it restores the most recently consumed
// occurrence by multiplying its prime back into the working copy and
// repositions on it. Because forward iteration consumes primes in ascending
// order, that occurrence belongs to the largest prime factor of the
// consumed portion. Prev at the first position does nothing.
func (c *Cursor[V]) Prev() {
	// Nothing consumed means first position (or an empty bag).
	if c.rest.Cmp(c.bag.encoding) == 0 {
		return
	}

	primes := c.bag.table.PrimeNumbers()
	if c.end {
		c.end = false
		c.index = len(primes) - 1
	}

	// Scan down for the largest prime p with rest*p still dividing the host
	// encoding; p divides the consumed portion exactly when it does. Every
	// consumed prime sits at or below the current index, and the consumed
	// portion is a nonempty product of table primes, so the scan terminates.
	p, scaled := new(big.Int), new(big.Int)
	for {
		p.SetUint64(primes[c.index])
		scaled.Mul(c.rest, p)
		if divides(c.bag.encoding, scaled) {
			break
		}
		c.index--
	}
	c.rest.Mul(c.rest, p)
	c.remaining++
}

// Equal reports cursor equivalence: same table, same end flag, same
// remaining length and same remaining encoding. Cursors over different bags
// sharing one table compare equal when their remaining contents coincide.
func (c *Cursor[V]) Equal(other *Cursor[V]) bool {
	if c.bag.table != other.bag.table {
		return false
	}
	return c.end == other.end &&
		c.remaining == other.remaining &&
		c.rest.Cmp(other.rest) == 0
}

// seekForward advances index to the next table prime dividing the working
// copy. The caller guarantees at least one remaining occurrence, and every
// factor of the working copy is a table prime, so the scan terminates.
func (c *Cursor[V]) seekForward() {
	primes := c.bag.table.PrimeNumbers()
	p := new(big.Int)
	for {
		p.SetUint64(primes[c.index])
		if divides(c.rest, p) {
			return
		}
		c.index++
	}
}

// All returns a forward walk over every occurrence, in the same order as
// Values. Elements are reconstructed lazily; nothing is materialized. The
// walk stops early at the first occurrence whose prime is no longer
// assigned at the table level.
func (b *Bag[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for c := b.Begin(); !c.AtEnd(); c.Next() {
			v, err := c.Value()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
