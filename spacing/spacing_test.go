package spacing_test

import (
	"math"
	"testing"

	"github.com/numgrid/numgrid/spacing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLinspace_BadNum verifies that num <= 1 returns ErrBadNum
// regardless of its sign.
func TestLinspace_BadNum(t *testing.T) {
	for _, num := range []int{1, 0, -5} {
		_, err := spacing.Linspace(0.0, 1.0, num, true)
		assert.ErrorIs(t, err, spacing.ErrBadNum, "num=%d must error ErrBadNum", num)
	}
}

// TestGeomspace_BadNum verifies that num <= 1 returns ErrBadNum
// regardless of its sign.
func TestGeomspace_BadNum(t *testing.T) {
	for _, num := range []int{1, 0, -5} {
		_, err := spacing.Geomspace(1.0, 10.0, num, true)
		assert.ErrorIs(t, err, spacing.ErrBadNum, "num=%d must error ErrBadNum", num)
	}
}

// TestLinspace_Length confirms the result always holds exactly num samples.
func TestLinspace_Length(t *testing.T) {
	for _, num := range []int{2, 3, 50, 1001} {
		seq, err := spacing.Linspace(-3.0, 7.0, num, true)
		require.NoError(t, err)
		assert.Len(t, seq, num, "Linspace must return num samples")
	}
}

// TestGeomspace_Length confirms the result always holds exactly num samples.
func TestGeomspace_Length(t *testing.T) {
	for _, num := range []int{2, 3, 50, 1001} {
		seq, err := spacing.Geomspace(1e-3, 1e3, num, true)
		require.NoError(t, err)
		assert.Len(t, seq, num, "Geomspace must return num samples")
	}
}

// TestLinspace_ClosedForm checks every sample against the closed form
// a + i*(b-a)/(num-1) and the endpoint against b.
func TestLinspace_ClosedForm(t *testing.T) {
	const a, b = -2.5, 11.0
	const num = 37

	seq, err := spacing.Linspace(a, b, num, true)
	require.NoError(t, err)

	d := (b - a) / float64(num-1)
	for i, got := range seq {
		want := a + float64(i)*d
		assert.InDelta(t, want, got, 1e-12, "sample %d", i)
	}
	assert.Equal(t, a, seq[0], "first sample must be start, bit-for-bit")
	assert.InDelta(t, b, seq[num-1], 1e-12, "last sample must reach stop")
}

// TestLinspace_OpenEndpoint verifies that endpoint=false divides the range
// into num steps and excludes stop.
func TestLinspace_OpenEndpoint(t *testing.T) {
	seq, err := spacing.Linspace(0.0, 1.0, 5, false)
	require.NoError(t, err)

	// step = 1/5; the sequence stops one step short of 1.
	want := []float64{0, 0.2, 0.4, 0.6, 0.8}
	for i := range want {
		assert.InDelta(t, want[i], seq[i], 1e-15, "sample %d", i)
	}
}

// TestGeomspace_Ascending checks the geometric law seq[i] = seq[0]*q^i
// with q = (b/a)^(1/(num-1)), and the endpoint against b.
func TestGeomspace_Ascending(t *testing.T) {
	const a, b = 1e-3, 1e3
	const num = 25

	seq, err := spacing.Geomspace(a, b, num, true)
	require.NoError(t, err)

	q := math.Pow(b/a, 1/float64(num-1))
	for i, got := range seq {
		want := seq[0] * math.Pow(q, float64(i))
		assert.InEpsilon(t, want, got, 1e-12, "sample %d", i)
	}
	assert.Equal(t, a, seq[0], "first sample must be start, bit-for-bit")
	assert.InEpsilon(t, b, seq[num-1], 1e-12, "last sample must reach stop")
}

// TestGeomspace_Descending checks that a > b > 0 yields a ratio below one
// and still follows the geometric law.
func TestGeomspace_Descending(t *testing.T) {
	const a, b = 1e4, 1e-2
	const num = 13

	seq, err := spacing.Geomspace(a, b, num, true)
	require.NoError(t, err)

	q := math.Pow(b/a, 1/float64(num-1))
	require.Less(t, q, 1.0, "descending range must have ratio < 1")
	for i := 1; i < num; i++ {
		assert.InEpsilon(t, seq[i-1]*q, seq[i], 1e-13, "sample %d", i)
		assert.Less(t, seq[i], seq[i-1], "samples must decrease")
	}
	assert.InEpsilon(t, b, seq[num-1], 1e-12, "last sample must reach stop")
}

// TestGeomspace_NegativeRange checks that a, b < 0 preserves sign while the
// magnitudes follow the same geometric law.
func TestGeomspace_NegativeRange(t *testing.T) {
	const a, b = -1.0, -1e6
	const num = 7

	seq, err := spacing.Geomspace(a, b, num, true)
	require.NoError(t, err)

	q := math.Pow(b/a, 1/float64(num-1)) // b/a is positive
	for i, got := range seq {
		assert.Negative(t, got, "sample %d must stay negative", i)
		want := a * math.Pow(q, float64(i))
		assert.InEpsilon(t, want, got, 1e-12, "sample %d", i)
	}
	assert.InEpsilon(t, b, seq[num-1], 1e-12, "last sample must reach stop")
}

// TestGeomspace_OpenEndpoint verifies that endpoint=false uses the num-step
// ratio and excludes stop.
func TestGeomspace_OpenEndpoint(t *testing.T) {
	seq, err := spacing.Geomspace(1.0, 100.0, 2, false)
	require.NoError(t, err)

	// ratio = 100^(1/2) = 10; stop itself is never reached.
	assert.Equal(t, 1.0, seq[0])
	assert.InEpsilon(t, 10.0, seq[1], 1e-15)
}

// TestSpacing_Float32 exercises the float32 instantiation of both
// generators.
func TestSpacing_Float32(t *testing.T) {
	lin, err := spacing.Linspace[float32](0, 2, 5, true)
	require.NoError(t, err)
	assert.Len(t, lin, 5)
	assert.Equal(t, float32(0), lin[0])
	assert.InDelta(t, float32(2), lin[4], 1e-6)

	geo, err := spacing.Geomspace[float32](1, 16, 5, true)
	require.NoError(t, err)
	assert.Len(t, geo, 5)
	assert.Equal(t, float32(1), geo[0])
	assert.InDelta(t, float32(16), geo[4], 1e-4)
}

// TestSpacing_FreshAllocation verifies that successive calls never share a
// backing array.
func TestSpacing_FreshAllocation(t *testing.T) {
	first, err := spacing.Linspace(0.0, 1.0, 4, true)
	require.NoError(t, err)
	second, err := spacing.Linspace(0.0, 1.0, 4, true)
	require.NoError(t, err)

	first[0] = math.NaN()
	assert.Equal(t, 0.0, second[0], "calls must not alias their results")
}
