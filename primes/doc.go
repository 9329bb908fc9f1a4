package primes

/*

# On-demand prime generation

This package produces prime numbers in ascending order, on demand, using a
segmented sieve of Eratosthenes.

It follows the low level style of the rest of the module:

- small, composable functions
- explicit bounds passed by the caller for the hot helpers
- a burden of knowledge on the caller where validation would cost

## Why segmented

A classic sieve allocates a bit field covering every number up to the target
bound. That is wasteful when the consumer wants "the next prime" an unknown
number of times: the bound is not known up front and the field grows with it.

A segmented sieve instead processes successive bounded windows. Each window
[min, max] is sized by the square root of the current search limit, so the
working memory per extension is O(sqrt(limit)) regardless of how many primes
have been produced. Only the cumulative list of discovered primes is kept
across windows.

Within a window, every already known prime marks off its multiples starting
at its own square (smaller multiples were marked while sieving earlier
windows, or have a smaller prime factor). The window is then scanned left to
right: a position still unmarked is a newly discovered prime, and it must
immediately mark its own multiples within the same window before the scan
passes them, because primes up to sqrt(max) may first appear inside the
window itself.

Time complexity is O(N log log N) in the largest prime found.

## Seeding

A Sieve may be warm started from an ascending list of known primes. Nothing
about the seed is validated: supplying a composite, or a misordered list,
silently corrupts every subsequent result. The caller carries that burden by
contract.

*/
