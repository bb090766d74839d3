package jnode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetPreservesPositionOnReplace(t *testing.T) {
	obj := NewObject()
	Set(obj, "a", FromInt64(1))
	Set(obj, "b", FromInt64(2))
	Set(obj, "c", FromInt64(3))
	Set(obj, "b", FromInt64(20))

	entries := Entries(obj)
	require.Len(t, entries, 3)
	require.Equal(t, "a", entries[0].Key)
	require.Equal(t, "b", entries[1].Key)
	require.Equal(t, "c", entries[2].Key)
	v, _ := AsNumber(entries[1].Value)
	require.Equal(t, "20", v)
}

func TestInsertAndRemoveAt(t *testing.T) {
	arr := NewArray()
	Append(arr, FromInt64(1))
	Append(arr, FromInt64(3))
	Insert(arr, 1, FromInt64(2))

	require.Equal(t, 3, Size(arr))
	v, _ := Index(arr, 1)
	n, _ := AsNumber(v)
	require.Equal(t, "2", n)

	RemoveAt(arr, 0)
	require.Equal(t, 2, Size(arr))
	v, _ = Index(arr, 0)
	n, _ = AsNumber(v)
	require.Equal(t, "2", n)
}

func TestCloneIsIndependent(t *testing.T) {
	obj := NewObject()
	Set(obj, "a", FromInt64(1))
	clone := Clone(obj)
	Set(clone, "a", FromInt64(99))

	v, _ := Get(obj, "a")
	n, _ := AsNumber(v)
	require.Equal(t, "1", n)

	v, _ = Get(clone, "a")
	n, _ = AsNumber(v)
	require.Equal(t, "99", n)
}

func TestUnwrapReduceBigDecimals(t *testing.T) {
	require.Equal(t, "3.5", Unwrap(FromNumberText("3.5"), false))
	require.InEpsilon(t, 3.5, Unwrap(FromNumberText("3.5"), true).(float64), 1e-9)
	require.Equal(t, int64(7), Unwrap(FromNumberText("7"), true))
}
