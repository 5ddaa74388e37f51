package geometry

import (
	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/material"
)

// Box represents an axis-aligned box
type Box struct {
	Center      core.Vec3 // Center point of the box
	HalfExtents core.Vec3 // Half size along each axis
	material    material.Material
	epsilon     float64
}

// NewBox creates a new axis-aligned box.
// HalfExtents of (1,1,1) creates a 2x2x2 box.
func NewBox(center, halfExtents core.Vec3, mat material.Material) *Box {
	return &Box{
		Center:      center,
		HalfExtents: halfExtents,
		material:    mat,
		epsilon:     core.DefaultMarchConfig().Epsilon,
	}
}

// DistanceTo returns the exact Euclidean distance to the box surface
func (b *Box) DistanceTo(point core.Vec3) float64 {
	q := point.Subtract(b.Center).Abs().Subtract(b.HalfExtents)
	outside := core.NewVec3(max(q.X, 0), max(q.Y, 0), max(q.Z, 0)).Length()
	inside := min(q.MaxComponent(), 0)
	return outside + inside
}

// NormalAt estimates the normal with central differences of the distance.
// It fails where the gradient vanishes, such as the exact center.
func (b *Box) NormalAt(point core.Vec3) (core.Vec3, bool) {
	h := b.epsilon * 0.5
	dx := core.NewVec3(h, 0, 0)
	dy := core.NewVec3(0, h, 0)
	dz := core.NewVec3(0, 0, h)

	gradient := core.NewVec3(
		b.DistanceTo(point.Add(dx))-b.DistanceTo(point.Subtract(dx)),
		b.DistanceTo(point.Add(dy))-b.DistanceTo(point.Subtract(dy)),
		b.DistanceTo(point.Add(dz))-b.DistanceTo(point.Subtract(dz)),
	)
	if gradient.Length() < h*1e-3 {
		return core.Vec3{}, false
	}
	return gradient.Normalize(), true
}

// Material returns the box's material
func (b *Box) Material() material.Material {
	return b.material
}
