package primes

import "math"

// Sieve produces primes in ascending order on demand, extending its state
// one bounded segment at a time and caching every prime ever discovered.
//
// A Sieve is not safe for concurrent use.
type Sieve struct {
	// primes is the ascending, append-only sequence of discovered primes.
	primes []uint64

	// highestTested is the largest number fully classified for primality;
	// every prime <= highestTested is present in primes.
	highestTested uint64

	// limit sizes the next search segment. It doubles until it exceeds the
	// segment's lower bound; segments span at most sqrt(limit).
	limit uint64
}

// New returns an empty Sieve. The first prime it produces is 2.
func New() *Sieve {
	// 0 and 1 are classified from the outset.
	return &Sieve{highestTested: 1, limit: 1}
}

// NewSeeded returns a Sieve warm started from seed, which the caller
// guarantees to be ascending and genuinely prime. Nothing is validated:
// seeding a composite silently corrupts every subsequent result.
func NewSeeded(seed []uint64) *Sieve {
	if len(seed) == 0 {
		return New()
	}
	s := &Sieve{primes: append([]uint64(nil), seed...)}
	s.highestTested = s.primes[len(s.primes)-1]
	s.limit = s.highestTested
	return s
}

// NthPrime returns the zero based i-th prime, extending the sieve as
// needed. An index already discovered is returned in constant time. A large
// index can block for a long time; there is no cancellation.
func (s *Sieve) NthPrime(i int) uint64 {
	s.sieve(i + 1)
	return s.primes[i]
}

// Primes returns the ascending sequence of every prime discovered so far.
// The returned slice is the sieve's own backing store; the caller must not
// modify it.
func (s *Sieve) Primes() []uint64 {
	return s.primes
}

// Count returns the number of primes discovered so far.
func (s *Sieve) Count() int {
	return len(s.primes)
}

// sieve extends the prime sequence until it holds at least n primes,
// processing one segment per pass.
func (s *Sieve) sieve(n int) {
	for len(s.primes) < n {
		min := s.highestTested + 1

		for s.limit <= min {
			s.limit *= 2
		}

		// Segments span at most sqrt(limit): any prime whose square lands
		// inside the segment is either already known or is discovered by the
		// scan below before its first unmarked multiple is reached.
		root := uint64(math.Sqrt(float64(s.limit)))
		max := min + root
		if max > s.limit {
			max = s.limit
		}

		field := make([]bool, max-min+1)
		for i := range field {
			field[i] = true
		}

		for _, p := range s.primes {
			MarkMultiples(field, p, min, max)
		}

		for i := range field {
			if !field[i] {
				continue
			}
			p := min + uint64(i)
			// A prime first seen inside the segment sieves its own multiples
			// within the segment before the scan passes them.
			MarkMultiples(field, p, min, max)
			s.primes = append(s.primes, p)
		}

		s.highestTested = max
	}
}
