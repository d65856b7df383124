// File: builder_impl_test.go
// Package builder_test contains functional tests for the geometry
// constructors: counts, placement, determinism and error paths.
package builder_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath3d/builder"
	"github.com/katalvlaran/lvlath3d/matrix"
	"github.com/katalvlaran/lvlath3d/vector"
	"github.com/katalvlaran/lvlath3d/vectorlist"
)

const tol = 1e-4

// build runs BuildList and fails the test on error.
func build(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *vectorlist.VectorList {
	t.Helper()
	l, err := builder.BuildList(opts, cons...)
	require.NoError(t, err)

	return l
}

// assertPoint checks x, y, z within tol and w == 1.
func assertPoint(t *testing.T, want, got vector.Vector) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "x")
	assert.InDelta(t, want.Y, got.Y, tol, "y")
	assert.InDelta(t, want.Z, got.Z, tol, "z")
	assert.Equal(t, float32(1), got.W, "w")
}

func TestCycle_Ring(t *testing.T) {
	t.Parallel()
	l := build(t, []builder.BuilderOption{builder.WithRadius(2)}, builder.Cycle(4))
	want := []vector.Vector{
		vector.Point(2, 0, 0), vector.Point(0, 2, 0),
		vector.Point(-2, 0, 0), vector.Point(0, -2, 0),
	}
	got := l.Vectors()
	require.Len(t, got, len(want))
	for i := range want {
		assertPoint(t, want[i], got[i])
	}
}

func TestGrid_RowMajor(t *testing.T) {
	t.Parallel()
	l := build(t, []builder.BuilderOption{builder.WithSpacing(0.5)}, builder.Grid(2, 3))
	require.Equal(t, 6, l.Count())
	p, err := l.At(1*3 + 2)
	require.NoError(t, err)
	assertPoint(t, vector.Point(1, 0.5, 0), p)
}

func TestPath_Endpoints(t *testing.T) {
	t.Parallel()
	from, to := vector.Direction(0, 0, 0), vector.Point(4, -8, 0)
	l := build(t, nil, builder.Path(from, to, 5))
	got := l.Vectors()
	require.Len(t, got, 5)
	assertPoint(t, vector.Point(0, 0, 0), got[0])
	assertPoint(t, vector.Point(1, -2, 0), got[1])
	assertPoint(t, vector.Point(4, -8, 0), got[4])
}

func TestScatter_SeededAndBounded(t *testing.T) {
	t.Parallel()
	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithRadius(3)}
	a := build(t, opts, builder.Scatter(50)).Vectors()
	b := build(t, opts, builder.Scatter(50)).Vectors()
	assert.Equal(t, a, b, "same seed, same cloud")
	for _, p := range a {
		assert.True(t, math32.Abs(p.X) <= 3 && math32.Abs(p.Y) <= 3 && math32.Abs(p.Z) <= 3, "%v", p)
	}
}

func TestScatter_NeedsRand(t *testing.T) {
	t.Parallel()
	l, err := builder.BuildList(nil, builder.Scatter(3))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	assert.Equal(t, 0, l.Count())
}

func TestPlatonicSolid_Shapes(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   builder.PlatonicName
		vs, es int
	}{
		{builder.Tetrahedron, 4, 6},
		{builder.Cube, 8, 12},
		{builder.Octahedron, 6, 12},
		{builder.Dodecahedron, 20, 30},
		{builder.Icosahedron, 12, 30},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name.String(), func(t *testing.T) {
			t.Parallel()
			l := build(t, []builder.BuilderOption{builder.WithRadius(2)}, builder.PlatonicSolid(tc.name, false))
			vs := l.Vectors()
			require.Len(t, vs, tc.vs)
			for _, v := range vs {
				assert.InDelta(t, 2, vector.Length(v), tol, "circumradius")
			}

			es, err := builder.PlatonicEdges(tc.name)
			require.NoError(t, err)
			require.Len(t, es, tc.es)
			edge := vector.Distance(vs[es[0].U], vs[es[0].V])
			degree := make([]int, tc.vs)
			for _, e := range es {
				assert.Less(t, e.U, e.V)
				assert.InDelta(t, edge, vector.Distance(vs[e.U], vs[e.V]), tol)
				degree[e.U]++
				degree[e.V]++
			}
			for _, d := range degree[1:] {
				assert.Equal(t, degree[0], d, "regular")
			}
		})
	}
}

func TestPlatonicSolid_WithCenter(t *testing.T) {
	t.Parallel()
	l := build(t, nil, builder.PlatonicSolid(builder.Octahedron, true))
	require.Equal(t, 7, l.Count())
	c, err := l.At(6)
	require.NoError(t, err)
	assertPoint(t, vector.Point(0, 0, 0), c)
}

func TestPlatonicSolid_Unknown(t *testing.T) {
	t.Parallel()
	_, err := builder.BuildList(nil, builder.PlatonicSolid(builder.PlatonicName(42), false))
	require.ErrorIs(t, err, builder.ErrUnknownSolid)
	_, err = builder.PlatonicEdges(builder.PlatonicName(-1))
	require.ErrorIs(t, err, builder.ErrUnknownSolid)
	assert.Equal(t, "Unknown", builder.PlatonicName(42).String())
}

func TestPlatonicEdges_ReturnsCopy(t *testing.T) {
	t.Parallel()
	a, err := builder.PlatonicEdges(builder.Cube)
	require.NoError(t, err)
	a[0] = builder.Edge{U: 99, V: 100}
	b, err := builder.PlatonicEdges(builder.Cube)
	require.NoError(t, err)
	assert.NotEqual(t, a[0], b[0])
}

func TestWithTransform_PlacesPoints(t *testing.T) {
	t.Parallel()
	move := matrix.CreateTranslation(vector.Point(10, 0, -1))
	l := build(t, []builder.BuilderOption{builder.WithTransform(move)}, builder.PlatonicSolid(builder.Cube, true))
	c, err := l.At(8)
	require.NoError(t, err)
	assertPoint(t, vector.Point(10, 0, -1), c)
}

func TestTooFewVertices(t *testing.T) {
	t.Parallel()
	for name, c := range map[string]builder.Constructor{
		"cycle":   builder.Cycle(2),
		"grid":    builder.Grid(0, 3),
		"path":    builder.Path(vector.Zero(), vector.Zero(), 1),
		"scatter": builder.Scatter(0),
	} {
		l, err := builder.BuildList([]builder.BuilderOption{builder.WithSeed(1)}, c)
		require.ErrorIs(t, err, builder.ErrTooFewVertices, name)
		assert.Equal(t, 0, l.Count(), name)
	}
}

func TestBuildList_ComposesInOrder(t *testing.T) {
	t.Parallel()
	l := build(t, nil, builder.Grid(1, 2), builder.Cycle(3))
	require.Equal(t, 5, l.Count())
	p, err := l.At(2)
	require.NoError(t, err)
	assertPoint(t, vector.Point(1, 0, 0), p)
}

func TestBuildList_StorageError(t *testing.T) {
	t.Parallel()
	opts := []builder.BuilderOption{builder.WithListOptions(vectorlist.WithMaxCapacity(3))}
	l, err := builder.BuildList(opts, builder.Cycle(5))
	require.ErrorIs(t, err, vectorlist.ErrAllocation)
	assert.Contains(t, err.Error(), "BuildList: Cycle: Push:")
	assert.Equal(t, 3, l.Count())
}

func TestAppend(t *testing.T) {
	t.Parallel()
	l, err := vectorlist.New(4, vectorlist.WithGrowth(vectorlist.GrowDouble))
	require.NoError(t, err)
	require.NoError(t, builder.Append(l, nil, builder.Cycle(6)))
	assert.Equal(t, 6, l.Count())
	assert.Equal(t, 8, l.Capacity())

	l.Free()
	require.ErrorIs(t, builder.Append(l, nil, builder.Cycle(3)), vectorlist.ErrNotInitialized)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { builder.WithRadius(0) })
	assert.Panics(t, func() { builder.WithRadius(math32.NaN()) })
	assert.Panics(t, func() { builder.WithSpacing(-1) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}
