package primebag

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/forestrie/go-primebag/primetable"
)

// sortedValues materializes the bag and sorts the result so multiset
// comparisons are order independent.
func sortedValues(b *Bag[string]) []string {
	values := b.Values()
	slices.Sort(values)
	return values
}

func TestBagScenarioEncoding(t *testing.T) {
	table := primetable.New[string]()
	require.Equal(t, uint64(2), table.Add("a"))
	require.Equal(t, uint64(3), table.Add("b"))
	require.Equal(t, uint64(5), table.Add("c"))

	bag := New(table)
	bag.Add("a")
	bag.Add("a")
	bag.Add("b")

	// {a, a, b} encodes as 2*2*3.
	require.Zero(t, bag.Encoding().Cmp(big.NewInt(12)))
	require.Equal(t, 3, bag.Size())
	assert.Equal(t, 2, bag.Count("a"))
	assert.Equal(t, 1, bag.Count("b"))
	assert.Equal(t, 0, bag.Count("c"))
	assert.True(t, bag.Contains("a"))
	assert.False(t, bag.Contains("c"))
}

func TestTableRemovalLeavesBagEncoding(t *testing.T) {
	table := primetable.New[string]()
	table.Add("a")
	table.Add("b")
	table.Add("c")

	bag := New(table)
	bag.Add("a")
	bag.Add("a")
	bag.Add("b")

	// A table level removal never notifies bags: the encoding keeps the
	// freed prime's occurrences.
	require.Equal(t, uint64(2), table.Remove("a"))
	require.Equal(t, 3, bag.Size())
	require.Zero(t, bag.Encoding().Cmp(big.NewInt(12)))

	// The next new value recycles 2 rather than consuming 7, and the stale
	// occurrences in the encoding are now attributed to it. The table
	// trusts the caller not to pull primes out from under live bags.
	require.Equal(t, uint64(2), table.Add("d"))
	assert.Equal(t, 2, bag.Count("d"))
	assert.Equal(t, 0, bag.Count("a"))
}

func TestRemoveValue(t *testing.T) {
	table := primetable.New[string]()
	bag := New(table)
	bag.Add("a")
	bag.Add("b")

	require.True(t, bag.Remove("a"))
	require.Equal(t, 1, bag.Size())
	require.False(t, bag.Contains("a"))

	// Absent and never-assigned values both fail without mutation.
	require.False(t, bag.Remove("a"))
	require.False(t, bag.Remove("never seen"))
	require.Equal(t, 1, bag.Size())
	require.Zero(t, bag.Encoding().Cmp(big.NewInt(3)))
}

func TestAddBagRemoveBagRoundTrip(t *testing.T) {
	table := primetable.New[string]()
	bagA := New(table)
	bagA.Add("x")
	bagA.Add("y")

	bagB := New(table)
	bagB.Add("y")
	bagB.Add("y")
	bagB.Add("z")

	before := bagA.Encoding()

	bagA.AddBag(bagB)
	require.Equal(t, 5, bagA.Size())
	require.Equal(t, 3, bagA.Count("y"))

	require.True(t, bagA.RemoveBag(bagB))
	require.Equal(t, 2, bagA.Size())
	require.Zero(t, bagA.Encoding().Cmp(before))
}

func TestRemoveBagSubMultiset(t *testing.T) {
	table := primetable.New[string]()

	bag1 := New(table)
	bag1.Add("x")
	bag1.Add("y")
	bag1.Add("y")

	bag2 := New(table)
	bag2.Add("y")

	// bag2 is a sub multiset of bag1.
	require.True(t, bag1.RemoveBag(bag2))
	assert.Equal(t, 2, bag1.Size())
	assert.Equal(t, 1, bag1.Count("x"))
	assert.Equal(t, 1, bag1.Count("y"))

	// The reverse exceeds bag2's size and fails all-or-nothing.
	before := bag2.Encoding()
	require.False(t, bag2.RemoveBag(bag1))
	require.Equal(t, 1, bag2.Size())
	require.Zero(t, bag2.Encoding().Cmp(before))
}

func TestRemoveBagNotContained(t *testing.T) {
	table := primetable.New[string]()

	bagA := New(table)
	bagA.Add("x")
	bagA.Add("y")

	bagB := New(table)
	bagB.Add("x")
	bagB.Add("z")

	// Same size, but z's prime does not divide bagA's encoding.
	before := bagA.Encoding()
	require.False(t, bagA.RemoveBag(bagB))
	require.Equal(t, 2, bagA.Size())
	require.Zero(t, bagA.Encoding().Cmp(before))
}

func TestCrossTableOpsNoOp(t *testing.T) {
	bagA := New(primetable.New[string]())
	bagA.Add("x")

	other := New(primetable.New[string]())
	other.Add("x")

	before := bagA.Encoding()

	bagA.AddBag(other)
	require.Equal(t, 1, bagA.Size())
	require.Zero(t, bagA.Encoding().Cmp(before))

	require.False(t, bagA.RemoveBag(other))
	require.Equal(t, 1, bagA.Size())
	require.Zero(t, bagA.Encoding().Cmp(before))
}

func TestValuesMatchesCounts(t *testing.T) {
	table := primetable.New[string]()
	bag := New(table)

	// Assignment order fixes prime order: c -> 2, b -> 3, a -> 5.
	for _, v := range []string{"c", "b", "a", "b", "c", "c"} {
		bag.Add(v)
	}

	// Materialization is ordered by ascending prime, i.e. first-assignment
	// order, not the bag's insertion order.
	require.Equal(t, []string{"c", "c", "c", "b", "b", "a"}, bag.Values())

	total := 0
	for _, v := range []string{"a", "b", "c"} {
		n := bag.Count(v)
		require.Positive(t, n)
		require.True(t, bag.Contains(v))
		total += n
	}
	require.Equal(t, bag.Size(), total)
}

func TestClearBagDoesNotRecycle(t *testing.T) {
	table := primetable.New[string]()
	bag := New(table)
	bag.Add("a")
	bag.Add("b")

	bag.Clear()
	require.Equal(t, 0, bag.Size())
	require.Zero(t, bag.Encoding().Cmp(big.NewInt(1)))
	require.Empty(t, bag.Values())

	// Clearing a bag tells the table nothing: the dropped primes are still
	// assigned, and a new value draws a fresh prime.
	require.Equal(t, uint64(2), table.Prime("a"))
	require.Equal(t, uint64(5), table.Add("c"))
}

func TestContainsIffCountPositive(t *testing.T) {
	table := primetable.New[string]()
	bag := New(table)
	bag.Add("a")
	bag.Add("a")
	bag.Add("b")
	bag.Remove("b")
	table.Add("c")

	for _, v := range []string{"a", "b", "c", "missing"} {
		assert.Equal(t, bag.Count(v) > 0, bag.Contains(v), "value %q", v)
	}
}

func TestSharedTableManyBags(t *testing.T) {
	table := primetable.New[string]()

	bag1 := New(table)
	bag2 := New(table)
	bag1.Add("x")
	bag2.Add("x")
	bag2.Add("y")

	// One table entry serves every bag.
	require.Equal(t, 2, table.Len())
	require.Equal(t, 1, bag1.Count("x"))
	require.Equal(t, 1, bag2.Count("x"))

	assert.Equal(t, []string{"x"}, sortedValues(bag1))
	assert.Equal(t, []string{"x", "y"}, sortedValues(bag2))
}

func BenchmarkBagAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		table := primetable.New[int]()
		bag := New(table)
		for v := range 200 {
			bag.Add(v)
		}
	}
}
