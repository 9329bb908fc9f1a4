package primebag

/*

# Multisets as one integer

This package represents a multiset ("bag") of arbitrary comparable values as
the prime factorization of a single arbitrary precision integer, in the
style of a Goedel numbering.

Every distinct value ever seen by a shared assignment table is given a
unique prime. A bag's contents are then the product of its members' primes,
with multiplicity:

	{a, a, b}  with  a -> 2, b -> 3   encodes as   2 * 2 * 3 = 12

so a value's multiplicity in the bag is exactly the exponent of its prime in
the factorization of the encoding, and the empty bag encodes as 1.

The payoff is that per element bookkeeping disappears into integer
arithmetic:

- insertion is multiplication
- removal is division
- membership is a divisibility test
- multiset union is multiplication of encodings
- sub multiset containment of B in A is "B's encoding divides A's"

## Shared tables

Bags never own their table. Any number of bags may encode against the same
table, and only such bags are compatible: union and removal across bags
bound to different tables are silent no-ops, because the prime assignments
of unrelated tables have no correspondence.

A table entry is created the first time a value is added to any bag sharing
the table. It is destroyed only by an explicit table level removal. A bag
discarding its last occurrence of a value simply divides the prime out of
its encoding; the table is not told, and the prime is not recycled. The
converse also holds: a table level removal leaves every bag's encoding
untouched, but occurrences of the removed value can no longer be named
through the table, and the freed prime may be reassigned to a different
value while older encodings still carry it. The table trusts its caller not
to pull primes out from under live bags.

## Reconstruction

Recovering elements from the encoding is trial division by the table's
primes in ascending order. Values therefore materialize ordered by prime,
which is the order distinct values were first assigned across the table's
whole history, not any one bag's insertion order. The Cursor performs this
reconstruction lazily and in both directions, without materializing the
multiset.

*/
