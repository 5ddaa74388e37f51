package geometry

import (
	"math"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	material material.Material
	epsilon  float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		material: mat,
		epsilon:  core.DefaultMarchConfig().Epsilon,
	}
}

// DistanceTo returns |p - center| - radius
func (s *Sphere) DistanceTo(point core.Vec3) float64 {
	return point.Subtract(s.Center).Length() - s.Radius
}

// NormalAt returns the direction from the center to point. It fails when
// point is within epsilon of the center.
func (s *Sphere) NormalAt(point core.Vec3) (core.Vec3, bool) {
	pointToCenter := point.Subtract(s.Center)
	length := pointToCenter.Length()
	if length < s.epsilon {
		return core.Vec3{}, false
	}
	return pointToCenter.Multiply(1.0 / length), true
}

// Material returns the sphere's material
func (s *Sphere) Material() material.Material {
	return s.material
}

// Intersect solves the ray/sphere intersection analytically and returns the
// nearest non-negative hit distance. The direction must be normalized.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	l := s.Center.Subtract(ray.Origin)
	tca := l.Dot(ray.Direction)
	if tca < 0 {
		return 0, false
	}

	d2 := l.Dot(l) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0, false
	}

	thc := math.Sqrt(r2 - d2)
	t0 := tca - thc
	if t0 < 0 {
		t0 = tca + thc
	}
	if t0 < 0 {
		return 0, false
	}
	return t0, true
}
