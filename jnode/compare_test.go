package jnode

import (
	"sort"
	"testing"

	"github.com/jnodes/jnodes/config"
	"github.com/stretchr/testify/require"
)

func TestCompareRank(t *testing.T) {
	require.Equal(t, -1, Compare(NullNode(), FromBool(false)))
	require.Equal(t, 1, Compare(FromBool(true), NullNode()))
	require.Equal(t, -1, Compare(FromBool(false), FromBool(true)))
	require.Equal(t, 0, Compare(FromBool(true), FromBool(true)))
}

func TestCompareNumbersArbitraryPrecision(t *testing.T) {
	big1 := FromNumberText("100000000000000000000000000000000000001")
	big2 := FromNumberText("100000000000000000000000000000000000002")
	require.Equal(t, -1, Compare(big1, big2))
	require.Equal(t, 1, Compare(big2, big1))
}

func TestCompareArraysByLength(t *testing.T) {
	short := NewArray()
	Append(short, FromInt64(100))
	long := NewArray()
	Append(long, FromInt64(1))
	Append(long, FromInt64(1))
	require.Equal(t, -1, Compare(short, long))
}

func TestCompareObjectsBySize(t *testing.T) {
	small := NewObject()
	Set(small, "a", FromInt64(1))
	big := NewObject()
	Set(big, "a", FromInt64(1))
	Set(big, "b", FromInt64(2))
	require.Equal(t, -1, Compare(small, big))
}

func TestCompareIncomparableKindsIsStableEqual(t *testing.T) {
	require.Equal(t, 0, Compare(FromString("x"), FromInt64(1)))
}

func TestCompareStableSortMixedKinds(t *testing.T) {
	items := []*Node{
		FromInt64(3),
		FromString("b"),
		FromInt64(1),
		FromString("a"),
		NullNode(),
	}
	sort.SliceStable(items, func(i, j int) bool {
		return Compare(items[i], items[j]) < 0
	})
	require.Equal(t, Null, KindOf(items[0]))
}

func TestCompareWithConfigForcesKind(t *testing.T) {
	require.Equal(t, 0, CompareWithConfig(FromString("x"), FromInt64(1), config.Default()))

	// "9" sorts after "10" lexically, even though 9 < 10 numerically —
	// the two forced kinds must disagree on this pair.
	strForced := config.New(config.WithComparator(config.StringComparator))
	require.Equal(t, 1, CompareWithConfig(FromInt64(9), FromInt64(10), strForced))

	numForced := config.New(config.WithComparator(config.NumberComparator))
	require.Equal(t, -1, CompareWithConfig(FromInt64(9), FromInt64(10), numForced))

	boolForced := config.New(config.WithComparator(config.BoolComparator))
	require.Equal(t, -1, CompareWithConfig(FromBool(false), FromBool(true), boolForced))
}
