package optimizer

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/quadfield/hierarchy"
)

// path4 is a 4-vertex path 0-1-2-3 on the z=0 plane with unit weights.
func path4() *hierarchy.Level {
	lv := hierarchy.NewLevel(4)
	for i := 0; i < 4; i++ {
		lv.N[i] = r3.Vec{Z: 1}
		lv.V[i] = r3.Vec{X: float64(i)}
		lv.Q[i] = r3.Vec{X: 1}
		lv.O[i] = lv.V[i]
	}
	lv.Adj[0] = []hierarchy.Neighbor{{ID: 1, Weight: 1}}
	lv.Adj[1] = []hierarchy.Neighbor{{ID: 0, Weight: 1}, {ID: 2, Weight: 1}}
	lv.Adj[2] = []hierarchy.Neighbor{{ID: 1, Weight: 1}, {ID: 3, Weight: 1}}
	lv.Adj[3] = []hierarchy.Neighbor{{ID: 2, Weight: 1}}

	return lv
}

func TestTrimmedMean(t *testing.T) {
	cases := []struct {
		name    string
		samples []ratioSample
		want    float64
	}{
		{"Empty", nil, 0},
		{
			// Top confidence 5 ⇒ cutoff 1.5 drops the outlier ratio 1000.
			"DropsOutlier",
			[]ratioSample{{5, 10, 1}, {4.9, 11, 1}, {0.1, 1000, 1}},
			10.5,
		},
		{
			"KeepsAboveCutoff",
			[]ratioSample{{10, 1, 1}, {3.5, 4, 1}, {2.9, 100, 1}},
			2.5,
		},
		{
			"Weighted",
			[]ratioSample{{1, 2, 3}, {1, 6, 1}},
			3,
		},
		{"ZeroWeights", []ratioSample{{1, 2, 0}, {1, 3, 0}}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, trimmedMean(tc.samples), 1e-12)
		})
	}
}

// TestTrimmedMean_Ties orders equal confidences by ratio then weight.
func TestTrimmedMean_Ties(t *testing.T) {
	samples := []ratioSample{{2, 1, 1}, {2, 3, 2}, {2, 3, 5}}
	trimmedMean(samples)
	assert.Equal(t, []ratioSample{{2, 3, 5}, {2, 3, 2}, {2, 1, 1}}, samples)
}

func TestMatchFrames_Aligned(t *testing.T) {
	n := r3.Vec{Z: 1}
	fp := matchFrames(r3.Vec{X: 1}, n, r3.Vec{X: 1}, n)
	assert.Equal(t, 0, fp.bestB)
	assert.Equal(t, [2]float64{1, 1}, fp.sign)
	assert.Equal(t, 1, fp.partner(0))
	assert.Equal(t, 0, fp.partner(1))
}

func TestMatchFrames_Rotated(t *testing.T) {
	n := r3.Vec{Z: 1}
	// Neighbor frame rotated by 90°: b = (y, -x). a[0]=x matches b[1]=-x.
	fp := matchFrames(r3.Vec{X: 1}, n, r3.Vec{Y: 1}, n)
	assert.Equal(t, 1, fp.bestB)
	assert.Equal(t, [2]float64{-1, 1}, fp.sign)
}

func TestColorClasses(t *testing.T) {
	assert.Equal(t, [][]int{{0, 2}, {1, 3}}, colorClasses(path4().Adj))

	lv := path4()
	lv.Adj[0][0].Weight, lv.Adj[1][0].Weight = 0, 0
	assert.Equal(t, [][]int{{0, 1, 3}, {2}}, colorClasses(lv.Adj), "zero-weight edges impose nothing")

	// One-sided entry: only 3 lists 0; still a conflict.
	adj := [][]hierarchy.Neighbor{nil, nil, nil, {{ID: 0, Weight: 1}, {ID: 3, Weight: 1}}}
	assert.Equal(t, [][]int{{0, 1, 2}, {3}}, colorClasses(adj))

	assert.Empty(t, colorClasses(nil))
}

func TestSweeper_VisitsEveryVertexOnce(t *testing.T) {
	const n = 500
	lv := hierarchy.NewLevel(n)
	for i := 0; i+1 < n; i++ {
		lv.Adj[i] = append(lv.Adj[i], hierarchy.Neighbor{ID: i + 1, Weight: 1})
		lv.Adj[i+1] = append(lv.Adj[i+1], hierarchy.Neighbor{ID: i, Weight: 1})
	}

	for _, workers := range []int{1, 4} {
		var visits [n]int32
		var total atomic.Int64
		newSweeper(lv, workers).sweep(n, func(i int) {
			atomic.AddInt32(&visits[i], 1)
			total.Add(1)
		})
		assert.Equal(t, int64(n), total.Load(), "workers %d", workers)
		for i := range visits {
			require.Equal(t, int32(1), visits[i], "workers %d vertex %d", workers, i)
		}
	}

	order := make([]int, 0, 4)
	newSweeper(path4(), 1).sweep(4, func(i int) { order = append(order, i) })
	assert.Equal(t, []int{0, 1, 2, 3}, order, "index order")
}

// twoLevel collapses path4 into {0,1} and {2,3}.
func twoLevel() (*hierarchy.Level, *hierarchy.Level, []hierarchy.Children) {
	fine := path4()
	coarse := hierarchy.NewLevel(2)
	for i := 0; i < 2; i++ {
		coarse.N[i] = r3.Vec{Z: 1}
		coarse.V[i] = r3.Vec{X: 0.5 + 2*float64(i)}
		coarse.Q[i] = r3.Vec{X: 1}
		coarse.O[i] = coarse.V[i]
	}
	coarse.Adj[0] = []hierarchy.Neighbor{{ID: 1, Weight: 1}}
	coarse.Adj[1] = []hierarchy.Neighbor{{ID: 0, Weight: 1}}

	return fine, coarse, []hierarchy.Children{{0, 1}, {2, 3}}
}

func TestInjectOrientations_Overwrites(t *testing.T) {
	fine, coarse, children := twoLevel()
	fine.Q[2] = r3.Vec{X: 0.6, Y: 0.8}
	fine.N[3] = r3.Vec{X: 1}
	coarse.Q[1] = r3.Vec{X: 0.6, Y: 0.8, Z: 0.1}

	injectOrientations(coarse, fine, children)

	assert.Equal(t, r3.Vec{X: 1}, fine.Q[0])
	assert.InDelta(t, 0.0, r3.Norm(r3.Sub(r3.Vec{X: 0.6, Y: 0.8}, fine.Q[2])), 1e-15, "projected onto +Z plane")
	assert.InDelta(t, 0.0, r3.Norm(r3.Sub(r3.Vec{Y: 0.8, Z: 0.1}, fine.Q[3])), 1e-15, "projected onto +X plane, not normalized")
}

func TestRestrictOrientations(t *testing.T) {
	fine, coarse, children := twoLevel()
	fine.Q[1] = r3.Vec{Y: 1} // same cross as +X
	fine.Q[2] = r3.Vec{X: 0.6, Y: 0.8}
	fine.Q[3] = r3.Vec{X: -0.8, Y: 0.6} // 90° image of Q[2]
	coarse.Q[0], coarse.Q[1] = r3.Vec{}, r3.Vec{}

	restrictOrientations(fine, coarse, children)

	assert.InDelta(t, 0.0, r3.Norm(r3.Sub(r3.Vec{X: 1}, coarse.Q[0])), 1e-12)
	assert.InDelta(t, 0.0, r3.Norm(r3.Sub(r3.Vec{X: 0.6, Y: 0.8}, coarse.Q[1])), 1e-12)

	// Single child: projected and normalized copy.
	fine.Q[0] = r3.Vec{X: 2, Z: 1}
	restrictOrientations(fine, coarse, []hierarchy.Children{{0, hierarchy.NoChild}, {2, 3}})
	assert.InDelta(t, 0.0, r3.Norm(r3.Sub(r3.Vec{X: 1}, coarse.Q[0])), 1e-12)
}

func TestInjectPositions_Overwrites(t *testing.T) {
	fine, coarse, children := twoLevel()
	coarse.O[1] = r3.Vec{X: 2.4, Y: 0.3, Z: 0.5}
	fine.V[3] = r3.Vec{X: 3, Z: 0.2}

	injectPositions(coarse, fine, children)

	assert.Equal(t, coarse.O[0], fine.O[0])
	assert.Equal(t, coarse.O[0], fine.O[1])
	assert.InDelta(t, 0.0, r3.Norm(r3.Sub(r3.Vec{X: 2.4, Y: 0.3}, fine.O[2])), 1e-15)
	assert.InDelta(t, 0.0, r3.Norm(r3.Sub(r3.Vec{X: 2.4, Y: 0.3, Z: 0.2}, fine.O[3])), 1e-15)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	fine, coarse, children := twoLevel()
	h := &hierarchy.Hierarchy{
		Levels:  []*hierarchy.Level{fine, coarse},
		ToUpper: [][]hierarchy.Children{children},
		Scale:   1,
	}
	_, err := New(WithMetrics(m), WithIterations(3)).Run(h)
	require.NoError(t, err)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.sweeps.WithLabelValues(solverOrientation, "0")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.sweeps.WithLabelValues(solverOrientation, "1")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.sweeps.WithLabelValues(solverScale, "0")), "estimation + 3 relaxations")
	assert.Equal(t, 3.0*(4+2), testutil.ToFloat64(m.updates.WithLabelValues(solverPosition)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.scaleRange.WithLabelValues("0", "max")))

	count, err := testutil.GatherAndCount(reg, "quadfield_solver_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, count, "one series per solver")

	var nilMetrics *Metrics
	assert.NotPanics(t, func() {
		nilMetrics.observeSweep(solverScale, 0, 1)
		nilMetrics.observeScaleRange([2]float64{}, [2]float64{})
	})
}

// TestEstimateScaleDerivatives_RotatedNeighbor: two vertices one unit apart
// along +X whose frames differ by θ about +Z.
func TestEstimateScaleDerivatives_RotatedNeighbor(t *testing.T) {
	const theta = 0.1
	sin, cos := math.Sin(theta), math.Cos(theta)

	lv := hierarchy.NewLevel(2)
	lv.N[0], lv.N[1] = r3.Vec{Z: 1}, r3.Vec{Z: 1}
	lv.V[1] = r3.Vec{X: 1}
	lv.Q[0], lv.Q[1] = r3.Vec{X: 1}, r3.Vec{X: cos, Y: sin}
	lv.Adj[0] = []hierarchy.Neighbor{{ID: 1, Weight: 1}}
	lv.Adj[1] = []hierarchy.Neighbor{{ID: 0, Weight: 1}}

	st := newScaleState(lv)
	st.estimateScaleDerivatives(0)
	st.estimateScaleDerivatives(1)

	// Vertex 0: only its first axis sees a displacement; the matched second
	// axis of the neighbor leans by -sinθ per unit.
	assert.InDelta(t, -sin, st.deriv[0][0], 1e-12)
	assert.Equal(t, 0.0, st.deriv[0][1], "no displacement along the second axis")

	// Vertex 1: displacement (-1,0,0) projects to -cosθ and sinθ on its axes.
	assert.InDelta(t, -math.Tan(theta), st.deriv[1][0], 1e-12)
	assert.InDelta(t, -1.0, st.deriv[1][1], 1e-12)
}
