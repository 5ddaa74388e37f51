package geometry

import (
	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/material"
)

// SDF is an implicit surface described by a signed distance function.
//
// DistanceTo must be a true signed distance (1-Lipschitz): negative inside,
// zero on the surface, positive outside. Anything looser makes the marcher
// overshoot thin features.
type SDF interface {
	// DistanceTo returns the signed distance from point to the surface
	DistanceTo(point core.Vec3) float64

	// NormalAt returns the outward unit normal at point. It reports false
	// when the normal is undefined there.
	NormalAt(point core.Vec3) (core.Vec3, bool)

	// Material returns the surface material
	Material() material.Material
}
