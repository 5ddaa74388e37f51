package renderer

import (
	"math"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// Camera is a pinhole camera at the origin looking down -Z with +Y up
type Camera struct {
	Width  int     // Image width in pixels
	Height int     // Image height in pixels
	FOV    float64 // Vertical field of view in radians

	planeZ float64 // Z of the image plane, in pixel units
}

// NewCamera creates a camera for a width x height image
func NewCamera(width, height int, fov float64) *Camera {
	return &Camera{
		Width:  width,
		Height: height,
		FOV:    fov,
		planeZ: -float64(height) / (2 * math.Tan(fov/2)),
	}
}

// RayFor returns the primary ray through the center of pixel (i, j).
// Row 0 is the top of the image.
func (c *Camera) RayFor(i, j int) core.Ray {
	x := (float64(i) + 0.5) - float64(c.Width)/2
	y := -(float64(j) + 0.5) + float64(c.Height)/2
	dir := core.NewVec3(x, y, c.planeZ).Normalize()
	return core.NewRay(core.NewVec3(0, 0, 0), dir)
}
