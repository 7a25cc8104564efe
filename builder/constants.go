// SPDX-License-Identifier: MIT
// Package: quadfield/builder
//
// constants.go — method names, minima and defaults shared by constructors.

package builder

// Method names used to prefix errors with the constructor context.
const (
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodCylinder is the canonical name for the Cylinder constructor.
	MethodCylinder = "Cylinder"
	// MethodDisk is the canonical name for the Disk constructor.
	MethodDisk = "Disk"
	// MethodSphere is the canonical name for the Sphere constructor.
	MethodSphere = "Sphere"
	// MethodBuildHierarchy is the canonical name for BuildHierarchy.
	MethodBuildHierarchy = "BuildHierarchy"
	// MethodMesh is the canonical name for Mesh mutators.
	MethodMesh = "Mesh"
)

// Minimum counts.
const (
	// MinGridDim is the smallest row/column count of a Grid.
	MinGridDim = 2
	// MinCylinderRings is the smallest ring count of a Cylinder.
	MinCylinderRings = 2
	// MinCylinderSegments is the smallest segment count of a Cylinder.
	// Fewer segments would emit duplicate edges around a ring.
	MinCylinderSegments = 3
	// MinDiskSegments is the smallest rim segment count of a Disk.
	MinDiskSegments = 3
	// MaxSphereSubdivisions bounds Sphere refinement; each step multiplies
	// the face count by 4.
	MaxSphereSubdivisions = 7
	// MinMeshVertices is the smallest mesh BuildHierarchy accepts.
	MinMeshVertices = 2
)

// Defaults.
const (
	// DefaultLevels is the default maximum hierarchy depth.
	DefaultLevels = 4
	// DefaultScale is the default lattice edge length.
	DefaultScale = 1.0
)
