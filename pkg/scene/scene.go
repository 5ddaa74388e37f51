package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
	"github.com/df07/go-sdf-raymarcher/pkg/lights"
	"github.com/df07/go-sdf-raymarcher/pkg/material"
)

// DefaultBackground is the color of rays that escape the scene
var DefaultBackground = core.NewVec3(0.2, 0.7, 0.8)

var (
	ErrUnknownScene = errors.New("scene: unknown scene")
	ErrInvalidShape = errors.New("scene: invalid shape")
	ErrInvalidLight = errors.New("scene: invalid light")
)

// Scene contains all the elements needed for rendering.
// Renderers only read it; build it completely before rendering.
type Scene struct {
	Name       string
	Shapes     []geometry.SDF         // Primitives, scanned in order
	Lights     []lights.Light         // Point lights, evaluated in order
	Ground     *geometry.Checkerboard // Fallback ground plane, nil for none
	Background core.Vec3              // Color of escaped rays
}

// NewScene creates an empty scene with the default background and no ground
func NewScene(name string) *Scene {
	return &Scene{
		Name:       name,
		Shapes:     make([]geometry.SDF, 0),
		Lights:     make([]lights.Light, 0),
		Background: DefaultBackground,
	}
}

// AddSphere adds a sphere primitive to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, mat)
	s.Shapes = append(s.Shapes, sphere)
	return sphere
}

// AddBox adds an axis-aligned box primitive to the scene
func (s *Scene) AddBox(center, halfExtents core.Vec3, mat material.Material) *geometry.Box {
	box := geometry.NewBox(center, halfExtents, mat)
	s.Shapes = append(s.Shapes, box)
	return box
}

// AddLight adds a point light to the scene
func (s *Scene) AddLight(position core.Vec3, intensity float64) {
	s.Lights = append(s.Lights, lights.NewLight(position, intensity))
}

// Validate checks the invariants the renderer relies on
func (s *Scene) Validate() error {
	for i, shape := range s.Shapes {
		switch obj := shape.(type) {
		case *geometry.Sphere:
			if obj.Radius <= 0 {
				return fmt.Errorf("%w: sphere %d has radius %f", ErrInvalidShape, i, obj.Radius)
			}
		case *geometry.Box:
			if obj.HalfExtents.X <= 0 || obj.HalfExtents.Y <= 0 || obj.HalfExtents.Z <= 0 {
				return fmt.Errorf("%w: box %d has extents %v", ErrInvalidShape, i, obj.HalfExtents)
			}
		case nil:
			return fmt.Errorf("%w: shape %d is nil", ErrInvalidShape, i)
		}
		if shape.Material().SpecularExponent < 0 {
			return fmt.Errorf("%w: shape %d has a negative specular exponent", ErrInvalidShape, i)
		}
	}

	for i, light := range s.Lights {
		if light.Intensity <= 0 {
			return fmt.Errorf("%w: light %d has intensity %f", ErrInvalidLight, i, light.Intensity)
		}
	}

	return nil
}
