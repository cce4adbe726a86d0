package hashtable

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T, cfg Config) *Table[string, int] {
	t.Helper()
	table, err := New[string, int](cfg)
	require.NoError(t, err)
	return table
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New[string, int](Config{LoadFactor: -1})
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = New[string, int](Config{BucketIncrement: -5})
	require.ErrorIs(t, err, ErrInvalidConfig)
	for _, lf := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = New[string, int](Config{LoadFactor: lf})
		require.ErrorIs(t, err, ErrInvalidConfig, "load factor %g", lf)
	}
}

func TestTinyLoadFactorDoesNotGrowPerInsert(t *testing.T) {
	table := newTable(t, Config{LoadFactor: 1e-300, BucketIncrement: 4})
	for i := range 10 {
		table.Set(fmt.Sprintf("%d", i), i)
	}
	require.Equal(t, 10, table.Len())
	require.Equal(t, 4, table.Buckets())
}

func TestDeleteClearsRemovedEntry(t *testing.T) {
	table := newTable(t, Config{LoadFactor: 0.25, BucketIncrement: 1})
	table.Set("a", 1)
	table.Set("b", 2)
	require.True(t, table.Delete("a"))
	b := &table.buckets[0]
	require.Len(t, b.entries, 1)
	require.Equal(t, entry[string, int]{}, b.entries[:2][1])
	v, ok := table.Get("b")
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestNewAppliesDefaults(t *testing.T) {
	table := newTable(t, Config{})
	require.Equal(t, DefaultLoadFactor, table.Config().LoadFactor)
	require.Equal(t, DefaultBucketIncrement, table.Buckets())
}

func TestSetAndCount(t *testing.T) {
	table := newTable(t, Config{})
	require.Equal(t, 0, table.Len())
	table.Set("5", 5)
	require.Equal(t, 1, table.Len())
	table.Set("6", 6)
	require.Equal(t, 2, table.Len())
	table.Set("5", 5)
	require.Equal(t, 2, table.Len())
}

func TestGetContainsDelete(t *testing.T) {
	table := newTable(t, Config{})
	table.Set("5", 5)
	v, ok := table.Get("5")
	require.True(t, ok)
	require.Equal(t, 5, v)
	require.True(t, table.Contains("5"))
	require.True(t, table.Delete("5"))
	require.False(t, table.Delete("5"))
	_, ok = table.Get("5")
	require.False(t, ok)
	require.Equal(t, 0, table.Len())
}

func TestReplace(t *testing.T) {
	table := newTable(t, Config{})
	table.Set("k", 1)
	table.Set("k", 2)
	v, _ := table.Get("k")
	require.Equal(t, 2, v)
	require.Equal(t, []int{2}, table.Values())
	require.Equal(t, []string{"k"}, table.Keys())
}

func TestRehash(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hashtable")
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	table := newTable(t, Config{LoadFactor: 0.7, BucketIncrement: 32})
	// ⌊32 / 0.7⌋ = 45 entries fit before growing
	for i := range 45 {
		table.Set(fmt.Sprint(i), i)
	}
	require.Equal(t, 32, table.Buckets())
	table.Set("45", 45)
	require.Equal(t, 64, table.Buckets())
	require.Equal(t, 46, table.Len())
	for i := range 46 {
		v, ok := table.Get(fmt.Sprint(i))
		require.True(t, ok, "key %d lost during rehash", i)
		require.Equal(t, i, v)
	}
}

func TestIteration(t *testing.T) {
	table := newTable(t, Config{BucketIncrement: 4})
	var want []int
	for i := range 10 {
		table.Set(fmt.Sprint(i), i)
		want = append(want, i)
	}
	var got []int
	for k, v := range table.All() {
		require.Equal(t, fmt.Sprint(v), k)
		got = append(got, v)
	}
	slices.Sort(got)
	require.Equal(t, want, got)
	keys := table.Keys()
	require.Len(t, keys, 10)
}
