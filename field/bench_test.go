package field_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/quadfield/field"
)

var sinkVec r3.Vec

// BenchmarkCompatOrientation measures one orientation resolution.
func BenchmarkCompatOrientation(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	n := r3.Vec{Z: 1}
	qa, qb := randomTangent(rng, n), randomTangent(rng, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, sinkVec = field.CompatOrientation(qa, n, qb, n)
	}
}

// BenchmarkCompatPosition measures one 4×4 corner search.
func BenchmarkCompatPosition(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	n := r3.Vec{Z: 1}
	qa, qb := randomTangent(rng, n), randomTangent(rng, n)
	pa, pb := r3.Vec{}, r3.Vec{X: 1, Y: 0.3}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, sinkVec = field.CompatPosition(pa, n, qa, pa, pb, n, qb, pb, 0.5, 2)
	}
}
