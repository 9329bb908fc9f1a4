package primes

// MarkMultiples marks composite (false) every multiple of prime within
// [min, max], where field[n-min] records the primality of n. Marking starts
// at prime squared: every smaller multiple of prime has a smaller prime
// factor and is marked when that factor's multiples are walked.
//
// The caller allocates field with max-min+1 entries; no bounds are checked.
func MarkMultiples(field []bool, prime, min, max uint64) {
	for m := prime * prime; m <= max; m += prime {
		if m >= min {
			field[m-min] = false
		}
	}
}
