package raycast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func pt(i int) r2.Vec { return r2.Vec{X: float64(i), Y: float64(-i)} }

func pushN(t *Trail, from, to int) {
	for i := from; i < to; i++ {
		t.Push(pt(i))
	}
}

func TestTrailOverflowEvictsOldest(t *testing.T) {
	const capacity = 200
	tr := NewTrail(capacity)
	pushN(tr, 0, capacity+1)

	require.Equal(t, capacity, tr.Len())
	assert.True(t, tr.Full())

	want := make([]r2.Vec, 0, capacity)
	for i := 1; i <= capacity; i++ {
		want = append(want, pt(i))
	}
	if diff := cmp.Diff(want, tr.Points()); diff != "" {
		t.Errorf("trail mismatch (-want +got):\n%s", diff)
	}
	for _, p := range tr.Points() {
		assert.NotEqual(t, pt(0), p)
	}
}

func TestTrailBelowCapacityNeverEvicts(t *testing.T) {
	for n := 0; n < 10; n++ {
		tr := NewTrail(10)
		pushN(tr, 0, n)
		assert.Equal(t, n, tr.Len())
		assert.False(t, tr.Full())
		if n > 0 {
			oldest, ok := tr.At(0)
			require.True(t, ok)
			assert.Equal(t, pt(0), oldest)
			newest, ok := tr.Newest()
			require.True(t, ok)
			assert.Equal(t, pt(n-1), newest)
		}
	}
}

func TestTrailWrapsManyTimes(t *testing.T) {
	tr := NewTrail(7)
	pushN(tr, 0, 1000)
	want := []r2.Vec{pt(993), pt(994), pt(995), pt(996), pt(997), pt(998), pt(999)}
	if diff := cmp.Diff(want, tr.Points()); diff != "" {
		t.Errorf("trail mismatch (-want +got):\n%s", diff)
	}
}

func TestTrailPairsNeverCrossWritePosition(t *testing.T) {
	tr := NewTrail(5)
	var pairs [][2]r2.Vec
	collect := func(a, b r2.Vec) { pairs = append(pairs, [2]r2.Vec{a, b}) }

	tr.EachPair(collect)
	assert.Empty(t, pairs)

	tr.Push(pt(0))
	tr.EachPair(collect)
	assert.Empty(t, pairs)

	pushN(tr, 1, 8)
	tr.EachPair(collect)
	want := [][2]r2.Vec{
		{pt(3), pt(4)},
		{pt(4), pt(5)},
		{pt(5), pt(6)},
		{pt(6), pt(7)},
	}
	if diff := cmp.Diff(want, pairs); diff != "" {
		t.Errorf("pairs mismatch (-want +got):\n%s", diff)
	}
}

func TestTrailSingleSlot(t *testing.T) {
	tr := NewTrail(1)
	tr.Push(pt(1))
	tr.Push(pt(2))
	assert.Equal(t, []r2.Vec{pt(2)}, tr.Points())

	called := false
	tr.EachPair(func(a, b r2.Vec) { called = true })
	assert.False(t, called)
}

func TestTrailAccessors(t *testing.T) {
	tr := NewTrail(0)
	assert.Equal(t, DefaultTrailCapacity, tr.Cap())

	_, ok := tr.Newest()
	assert.False(t, ok)
	_, ok = tr.At(0)
	assert.False(t, ok)

	pushN(tr, 0, 3)
	_, ok = tr.At(3)
	assert.False(t, ok)
	_, ok = tr.At(-1)
	assert.False(t, ok)

	buf := make([]r2.Vec, 0, 8)
	got := tr.PointsInto(buf)
	assert.Equal(t, []r2.Vec{pt(0), pt(1), pt(2)}, got)
	assert.Equal(t, 8, cap(got))

	tr.Reset()
	assert.Zero(t, tr.Len())
	assert.Empty(t, tr.Points())
}
