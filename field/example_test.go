package field_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/quadfield/field"
)

// ExampleCompatOrientation picks the quarter-turn image of qb closest to qa.
func ExampleCompatOrientation() {
	up := r3.Vec{Z: 1}
	a, b := field.CompatOrientation(r3.Vec{X: 1}, up, r3.Vec{X: 0.6, Y: 0.8}, up)
	fmt.Printf("a=(%.1f, %.1f) b=(%.1f, %.1f)\n", a.X, a.Y, b.X, b.Y)
	// Output:
	// a=(1.0, 0.0) b=(0.8, -0.6)
}

// ExampleRoundToLattice snaps the origin of a unit lattice to the lattice
// point nearest to p.
func ExampleRoundToLattice() {
	o := field.RoundToLattice(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Z: 1}, r3.Vec{X: 2.4, Y: -0.7}, 1, 1)
	fmt.Printf("(%.1f, %.1f)\n", o.X, o.Y)
	// Output:
	// (2.0, -1.0)
}
