package lights

import "github.com/df07/go-sdf-raymarcher/pkg/core"

// Light is a point light source
type Light struct {
	Position  core.Vec3
	Intensity float64
}

// NewLight creates a point light
func NewLight(position core.Vec3, intensity float64) Light {
	return Light{Position: position, Intensity: intensity}
}

// DirectionFrom returns the unit direction from point toward the light and
// the distance between them
func (l Light) DirectionFrom(point core.Vec3) (core.Vec3, float64) {
	toLight := l.Position.Subtract(point)
	return toLight.Normalize(), toLight.Length()
}
