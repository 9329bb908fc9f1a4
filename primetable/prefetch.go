package primetable

import (
	"golang.org/x/sync/errgroup"

	"github.com/forestrie/go-primebag/primes"
)

// prefetch is a one-shot background computation of the sieve prime at a
// fixed index. There is no cancellation: once started it runs to completion
// and must be joined before its result is read or its owner is reset.
type prefetch struct {
	g     errgroup.Group
	prime uint64
}

// startPrefetch launches the computation of sieve.NthPrime(index). The
// sieve must not be touched by anything else until the prefetch is joined.
func startPrefetch(sieve *primes.Sieve, index int) *prefetch {
	p := &prefetch{}
	p.g.Go(func() error {
		p.prime = sieve.NthPrime(index)
		return nil
	})
	return p
}

// join blocks until the computation completes and returns the prime.
func (p *prefetch) join() uint64 {
	// the computation cannot fail
	_ = p.g.Wait()
	return p.prime
}
