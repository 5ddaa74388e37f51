package geometry

import (
	"math"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// Checkerboard is a bounded horizontal plane with two alternating tile colors.
// It is not an SDF: the marcher only consults it when no primitive is hit.
type Checkerboard struct {
	Height     float64   // Plane equation y = Height
	HalfWidth  float64   // Hits need |x| < HalfWidth
	NearZ      float64   // Hits need FarZ < z < NearZ
	FarZ       float64
	LightColor core.Vec3 // Tile color for odd parity
	DarkColor  core.Vec3 // Tile color for even parity
}

// NewCheckerboard creates the ground plane used by the built-in scenes
func NewCheckerboard() *Checkerboard {
	return &Checkerboard{
		Height:     -4,
		HalfWidth:  10,
		NearZ:      -10,
		FarZ:       -30,
		LightColor: core.NewVec3(0.3, 0.3, 0.3),
		DarkColor:  core.NewVec3(0.3, 0.2, 0.1),
	}
}

// Normal returns the plane's up-facing normal
func (c *Checkerboard) Normal() core.Vec3 {
	return core.NewVec3(0, 1, 0)
}

// Intersect returns the ray parameter and point where the ray meets the
// bounded plane. Rays within epsilon of parallel never hit.
func (c *Checkerboard) Intersect(ray core.Ray, epsilon float64) (float64, core.Vec3, bool) {
	if math.Abs(ray.Direction.Y) <= epsilon {
		return 0, core.Vec3{}, false
	}

	t := -(ray.Origin.Y - c.Height) / ray.Direction.Y
	point := ray.At(t)
	if t <= 0 || math.Abs(point.X) >= c.HalfWidth || point.Z >= c.NearZ || point.Z <= c.FarZ {
		return 0, core.Vec3{}, false
	}
	return t, point, true
}

// ColorAt returns the tile color at a point on the plane
func (c *Checkerboard) ColorAt(point core.Vec3) core.Vec3 {
	parity := int(math.Floor(0.5*point.X+1000)) + int(math.Floor(0.5*point.Z))
	if parity&1 == 1 {
		return c.LightColor
	}
	return c.DarkColor
}
