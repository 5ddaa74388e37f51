package scene

import (
	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
	"github.com/df07/go-sdf-raymarcher/pkg/material"
)

// NewDefaultScene creates four spheres (ivory, glass, red rubber, mirror)
// over the checkerboard, lit by three point lights
func NewDefaultScene() *Scene {
	s := NewScene("default")
	s.Ground = geometry.NewCheckerboard()

	s.AddSphere(core.NewVec3(-3, 0, -16), 2, material.Ivory)
	s.AddSphere(core.NewVec3(-1.0, -1.5, -12), 2, material.Glass)
	s.AddSphere(core.NewVec3(1.5, -0.5, -18), 3, material.RedRubber)
	s.AddSphere(core.NewVec3(7, 5, -18), 4, material.Mirror)

	s.AddLight(core.NewVec3(-20, 20, 20), 1.5)
	s.AddLight(core.NewVec3(30, 50, -25), 1.8)
	s.AddLight(core.NewVec3(30, 20, 30), 1.7)

	return s
}

// NewPrimitivesScene swaps two of the default spheres for boxes
func NewPrimitivesScene() *Scene {
	s := NewScene("primitives")
	s.Ground = geometry.NewCheckerboard()

	s.AddBox(core.NewVec3(-3, 0, -16), core.NewVec3(1.5, 1.5, 1.5), material.Ivory)
	s.AddSphere(core.NewVec3(-1.0, -1.5, -12), 2, material.Glass)
	s.AddBox(core.NewVec3(1.5, -1.5, -18), core.NewVec3(2.5, 2, 1), material.RedRubber)
	s.AddSphere(core.NewVec3(7, 5, -18), 4, material.Mirror)

	s.AddLight(core.NewVec3(-20, 20, 20), 1.5)
	s.AddLight(core.NewVec3(30, 50, -25), 1.8)
	s.AddLight(core.NewVec3(30, 20, 30), 1.7)

	return s
}

// NewEmptyScene creates a scene with nothing in it
func NewEmptyScene() *Scene {
	return NewScene("empty")
}
