package primebag

import (
	"math/big"

	"github.com/forestrie/go-primebag/primetable"
)

// Bag is a multiset of comparable values encoded as the prime factorization
// of one arbitrary precision integer. See the package documentation for the
// encoding scheme.
//
// A Bag is not safe for concurrent use.
type Bag[V comparable] struct {
	table    *primetable.Table[V]
	encoding *big.Int
	length   int
}

// New returns an empty bag bound to table. The table is shared, not owned:
// any number of bags may encode against it, and only bags sharing a table
// are compatible for AddBag and RemoveBag.
func New[V comparable](table *primetable.Table[V]) *Bag[V] {
	return &Bag[V]{table: table, encoding: big.NewInt(1)}
}

// divides reports whether d divides n exactly. d must be positive.
func divides(n, d *big.Int) bool {
	return new(big.Int).Mod(n, d).Sign() == 0
}

// Add inserts one occurrence of value, creating a table assignment on first
// sight of the value anywhere on the shared table. It cannot fail.
func (b *Bag[V]) Add(value V) {
	prime := b.table.Add(value)
	b.encoding.Mul(b.encoding, new(big.Int).SetUint64(prime))
	b.length++
}

// AddBag folds every occurrence in other into b: multiset union with
// multiplicity. Bags bound to different tables encode against unrelated
// prime assignments, so a cross table AddBag is a silent no-op.
func (b *Bag[V]) AddBag(other *Bag[V]) {
	if other.table != b.table {
		return
	}
	b.encoding.Mul(b.encoding, other.encoding)
	b.length += other.length
}

// Remove deletes one occurrence of value. It reports false, mutating
// nothing, unless value's prime currently divides the encoding.
func (b *Bag[V]) Remove(value V) bool {
	prime := b.table.Prime(value)
	if prime == primetable.NoPrime {
		return false
	}
	p := new(big.Int).SetUint64(prime)
	if !divides(b.encoding, p) {
		return false
	}
	b.encoding.Quo(b.encoding, p)
	b.length--
	return true
}

// RemoveBag deletes every occurrence in other from b. The removal is all or
// nothing: it reports false and mutates nothing unless other shares b's
// table and is a sub multiset of b, which is exactly the condition that
// other's encoding divides b's.
func (b *Bag[V]) RemoveBag(other *Bag[V]) bool {
	if other.table != b.table {
		return false
	}
	if other.length > b.length {
		return false
	}
	if !divides(b.encoding, other.encoding) {
		return false
	}
	b.encoding.Quo(b.encoding, other.encoding)
	b.length -= other.length
	return true
}

// Contains reports whether at least one occurrence of value is present.
func (b *Bag[V]) Contains(value V) bool {
	prime := b.table.Prime(value)
	if prime == primetable.NoPrime {
		return false
	}
	return divides(b.encoding, new(big.Int).SetUint64(prime))
}

// Count returns value's multiplicity, recovered by repeated trial division
// of a working copy of the encoding. A value with no current table
// assignment counts zero even if its old prime still divides the encoding.
func (b *Bag[V]) Count(value V) int {
	prime := b.table.Prime(value)
	if prime == primetable.NoPrime {
		return 0
	}
	p := new(big.Int).SetUint64(prime)
	rest := new(big.Int).Set(b.encoding)
	q, r := new(big.Int), new(big.Int)

	n := 0
	for {
		q.QuoRem(rest, p, r)
		if r.Sign() != 0 {
			return n
		}
		rest.Set(q)
		n++
	}
}

// Size returns the total number of elements, multiplicities included.
func (b *Bag[V]) Size() int {
	return b.length
}

// Clear empties the bag: the encoding returns to 1 and the length to 0. The
// shared table is not informed, so the primes of the dropped occurrences
// are not recycled.
func (b *Bag[V]) Clear() {
	b.encoding.SetInt64(1)
	b.length = 0
}

// Table returns the assignment table this bag encodes against.
func (b *Bag[V]) Table() *primetable.Table[V] {
	return b.table
}

// Encoding returns a copy of the bag's encoding. The exponent of each
// assigned prime in its factorization equals that value's multiplicity; an
// empty bag encodes as 1.
func (b *Bag[V]) Encoding() *big.Int {
	return new(big.Int).Set(b.encoding)
}

// Values materializes the bag. Occurrences are ordered by ascending prime,
// which is the order distinct values were first assigned across the table's
// history, not this bag's insertion order. The scan stops as soon as every
// element has been recovered. Occurrences whose prime has been removed at
// the table level can no longer be named and are omitted.
func (b *Bag[V]) Values() []V {
	result := make([]V, 0, b.length)
	rest := new(big.Int).Set(b.encoding)
	remaining := b.length

	p, q, r := new(big.Int), new(big.Int), new(big.Int)
	for _, prime := range b.table.PrimeNumbers() {
		if remaining == 0 {
			break
		}
		p.SetUint64(prime)
		if !divides(rest, p) {
			continue
		}
		value, err := b.table.Value(prime)
		if err != nil {
			continue
		}
		for {
			q.QuoRem(rest, p, r)
			if r.Sign() != 0 {
				break
			}
			rest.Set(q)
			remaining--
			result = append(result, value)
		}
	}
	return result
}
