package hierarchy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/quadfield/hierarchy"
)

// twoLevel builds a 4-vertex path 0-1-2-3 collapsed into 2 coarse vertices
// {0,1} and {2,3}, all on the z=0 plane.
func twoLevel() *hierarchy.Hierarchy {
	fine := hierarchy.NewLevel(4)
	for i := 0; i < 4; i++ {
		fine.N[i] = r3.Vec{Z: 1}
		fine.V[i] = r3.Vec{X: float64(i)}
		fine.Q[i] = r3.Vec{X: 1}
		fine.O[i] = fine.V[i]
	}
	fine.Adj[0] = []hierarchy.Neighbor{{ID: 1, Weight: 1}}
	fine.Adj[1] = []hierarchy.Neighbor{{ID: 0, Weight: 1}, {ID: 2, Weight: 1}}
	fine.Adj[2] = []hierarchy.Neighbor{{ID: 1, Weight: 1}, {ID: 3, Weight: 1}}
	fine.Adj[3] = []hierarchy.Neighbor{{ID: 2, Weight: 1}}

	coarse := hierarchy.NewLevel(2)
	for i := 0; i < 2; i++ {
		coarse.N[i] = r3.Vec{Z: 1}
		coarse.V[i] = r3.Vec{X: 0.5 + 2*float64(i)}
		coarse.Q[i] = r3.Vec{X: 1}
		coarse.O[i] = coarse.V[i]
	}
	coarse.Adj[0] = []hierarchy.Neighbor{{ID: 1, Weight: 1}}
	coarse.Adj[1] = []hierarchy.Neighbor{{ID: 0, Weight: 1}}

	return &hierarchy.Hierarchy{
		Levels:  []*hierarchy.Level{fine, coarse},
		ToUpper: [][]hierarchy.Children{{{0, 1}, {2, 3}}},
		Scale:   1,
	}
}

// TestValidate_WellFormed accepts the reference fixture.
func TestValidate_WellFormed(t *testing.T) {
	require.NoError(t, twoLevel().Validate())
}

// TestValidate_Errors checks each violation class maps to its sentinel.
func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(h *hierarchy.Hierarchy)
		err    error
	}{
		{"NoLevels", func(h *hierarchy.Hierarchy) { h.Levels = nil }, hierarchy.ErrNoLevels},
		{"BadScale", func(h *hierarchy.Hierarchy) { h.Scale = 0 }, hierarchy.ErrBadScale},
		{"NaNScale", func(h *hierarchy.Hierarchy) { h.Scale = math.NaN() }, hierarchy.ErrBadScale},
		{"NilLevel", func(h *hierarchy.Hierarchy) { h.Levels[1] = nil }, hierarchy.ErrNilLevel},
		{"ShortQ", func(h *hierarchy.Hierarchy) { h.Levels[0].Q = h.Levels[0].Q[:3] }, hierarchy.ErrDimensionMismatch},
		{"NaNNormal", func(h *hierarchy.Hierarchy) { h.Levels[0].N[2].Y = math.NaN() }, hierarchy.ErrNaNInf},
		{"InfScale", func(h *hierarchy.Hierarchy) { h.Levels[0].S[1][0] = math.Inf(1) }, hierarchy.ErrNaNInf},
		{"NeighborRange", func(h *hierarchy.Hierarchy) { h.Levels[0].Adj[0][0].ID = 9 }, hierarchy.ErrVertexOutOfRange},
		{"NegativeWeight", func(h *hierarchy.Hierarchy) { h.Levels[0].Adj[1][1].Weight = -1 }, hierarchy.ErrBadWeight},
		{"MissingTable", func(h *hierarchy.Hierarchy) { h.ToUpper = nil }, hierarchy.ErrDimensionMismatch},
		{"TableSize", func(h *hierarchy.Hierarchy) { h.ToUpper[0] = h.ToUpper[0][:1] }, hierarchy.ErrDimensionMismatch},
		{"EmptyParent", func(h *hierarchy.Hierarchy) { h.ToUpper[0][1] = hierarchy.Children{hierarchy.NoChild, 3} }, hierarchy.ErrEmptyParent},
		{"ChildRange", func(h *hierarchy.Hierarchy) { h.ToUpper[0][1] = hierarchy.Children{2, 7} }, hierarchy.ErrVertexOutOfRange},
		{"ClaimedTwice", func(h *hierarchy.Hierarchy) { h.ToUpper[0][1] = hierarchy.Children{1, 3} }, hierarchy.ErrClaimedTwice},
		{"Unclaimed", func(h *hierarchy.Hierarchy) { h.ToUpper[0][1] = hierarchy.Children{2, hierarchy.NoChild} }, hierarchy.ErrUnclaimedVertex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := twoLevel()
			tc.mutate(h)
			assert.ErrorIs(t, h.Validate(), tc.err)
		})
	}
}

// TestValidate_NilHierarchy guards the nil receiver.
func TestValidate_NilHierarchy(t *testing.T) {
	var h *hierarchy.Hierarchy
	assert.ErrorIs(t, h.Validate(), hierarchy.ErrNoLevels)
}

// TestClone_IsDeep verifies that mutating a clone leaves the original intact.
func TestClone_IsDeep(t *testing.T) {
	h := twoLevel()
	c := h.Clone()
	require.Equal(t, h, c, "clone must be equal before mutation")

	c.Levels[0].Q[0] = r3.Vec{Y: 1}
	c.Levels[0].Adj[1][0].Weight = 5
	c.Levels[0].S[2] = [2]float64{3, 4}
	c.ToUpper[0][0] = hierarchy.Children{1, 0}
	c.Scale = 2

	assert.Equal(t, r3.Vec{X: 1}, h.Levels[0].Q[0])
	assert.Equal(t, 1.0, h.Levels[0].Adj[1][0].Weight)
	assert.Equal(t, [2]float64{}, h.Levels[0].S[2])
	assert.Equal(t, hierarchy.Children{0, 1}, h.ToUpper[0][0])
	assert.Equal(t, 1.0, h.Scale)
}

// TestBetween returns the fine/coarse pair and the mapping table.
func TestBetween(t *testing.T) {
	h := twoLevel()
	fine, coarse, children := h.Between(0)
	assert.Same(t, h.Levels[0], fine)
	assert.Same(t, h.Levels[1], coarse)
	assert.Equal(t, h.ToUpper[0], children)
	assert.Equal(t, 2, h.Depth())
	assert.Equal(t, 1.0, h.InvScale())
	assert.Equal(t, 0.0, (&hierarchy.Hierarchy{}).InvScale())
}

// TestDense_RoundTrip exports a vector field and the scale field to gonum
// and imports them back.
func TestDense_RoundTrip(t *testing.T) {
	h := twoLevel()
	lv := h.Levels[0]
	lv.S[3] = [2]float64{0.25, 0.75}

	v, err := lv.Dense(hierarchy.FieldV)
	require.NoError(t, err)
	r, c := v.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 4, c)
	assert.Equal(t, 2.0, v.At(0, 2), "column 2 holds V[2]")

	s, err := lv.Dense(hierarchy.FieldS)
	require.NoError(t, err)
	assert.Equal(t, 0.75, s.At(1, 3))

	// Exports are copies.
	v.Set(0, 0, 42)
	assert.Equal(t, 0.0, lv.V[0].X)

	require.NoError(t, lv.SetDense(hierarchy.FieldO, v))
	assert.Equal(t, r3.Vec{X: 42}, lv.O[0])

	s.Set(0, 0, -1)
	require.NoError(t, lv.SetDense(hierarchy.FieldS, s))
	assert.Equal(t, [2]float64{-1, 0}, lv.S[0])
}

// TestDense_Errors checks unknown fields, empty levels and shape mismatches.
func TestDense_Errors(t *testing.T) {
	lv := twoLevel().Levels[0]

	_, err := lv.Dense(hierarchy.Field(99))
	assert.ErrorIs(t, err, hierarchy.ErrUnknownField)

	_, err = hierarchy.NewLevel(0).Dense(hierarchy.FieldQ)
	assert.ErrorIs(t, err, hierarchy.ErrDimensionMismatch)

	err = lv.SetDense(hierarchy.FieldQ, mat.NewDense(2, 4, nil))
	assert.ErrorIs(t, err, hierarchy.ErrDimensionMismatch)

	err = lv.SetDense(hierarchy.FieldS, mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, hierarchy.ErrDimensionMismatch)

	err = lv.SetDense(hierarchy.Field(-1), mat.NewDense(3, 4, nil))
	assert.ErrorIs(t, err, hierarchy.ErrUnknownField)
}

// TestField_String covers the field names.
func TestField_String(t *testing.T) {
	assert.Equal(t, "N", hierarchy.FieldN.String())
	assert.Equal(t, "S", hierarchy.FieldS.String())
	assert.Equal(t, "Field(7)", hierarchy.Field(7).String())
	assert.Equal(t, 0, hierarchy.Field(7).Rows())
}

// TestComponents covers connected paths, zero-weight cuts, one-sided entries
// and ids out of range.
func TestComponents(t *testing.T) {
	fine := twoLevel().Levels[0]
	assert.Equal(t, [][]int{{0, 1, 2, 3}}, fine.Components())

	fine.Adj[1][1].Weight = 0
	fine.Adj[2][0].Weight = 0
	assert.Equal(t, [][]int{{0, 1}, {2, 3}}, fine.Components(), "zero weight cuts the path")

	lv := hierarchy.NewLevel(5)
	lv.Adj[4] = []hierarchy.Neighbor{{ID: 1, Weight: 2}, {ID: 9, Weight: 1}, {ID: 4, Weight: 1}}
	assert.Equal(t, [][]int{{0}, {1, 4}, {2}, {3}}, lv.Components())

	assert.Empty(t, hierarchy.NewLevel(0).Components())
}
