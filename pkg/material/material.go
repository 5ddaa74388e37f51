package material

import "github.com/df07/go-sdf-raymarcher/pkg/core"

// Albedo weights for the four shading terms. They are not required to sum to 1.
type Albedo [4]float64

// Indices into an Albedo
const (
	DiffuseWeight = iota
	SpecularWeight
	ReflectWeight
	RefractWeight
)

// Material describes how a surface responds to local lighting and secondary rays
type Material struct {
	RefractiveIndex  float64   // Index of refraction; <= 0 marks an opaque surface
	Albedo           Albedo    // Diffuse, specular, reflect, refract weights
	DiffuseColor     core.Vec3 // RGB diffuse color
	SpecularExponent float64   // Phong exponent, >= 0
}

// New creates a material from its four components
func New(refractiveIndex float64, albedo Albedo, diffuseColor core.Vec3, specularExponent float64) Material {
	return Material{
		RefractiveIndex:  refractiveIndex,
		Albedo:           albedo,
		DiffuseColor:     diffuseColor,
		SpecularExponent: specularExponent,
	}
}

// Default returns the plain diffuse material a ground plane hit starts from
func Default() Material {
	return Material{
		RefractiveIndex: 1,
		Albedo:          Albedo{1, 0, 0, 0},
	}
}

// IsOpaque reports whether the material blocks refraction (index <= 0)
func (m Material) IsOpaque() bool {
	return m.RefractiveIndex <= 0
}

// WithDiffuseColor returns a copy of the material with a different diffuse color
func (m Material) WithDiffuseColor(color core.Vec3) Material {
	m.DiffuseColor = color
	return m
}

// Presets used by the built-in scenes.
var (
	Ivory     = New(0.0, Albedo{0.6, 0.3, 0.1, 0.0}, core.NewVec3(0.4, 0.4, 0.3), 50)
	Glass     = New(1.5, Albedo{0.0, 0.5, 0.1, 0.8}, core.NewVec3(0.6, 0.7, 0.8), 125)
	RedRubber = New(0.0, Albedo{0.9, 0.1, 0.0, 0.0}, core.NewVec3(0.3, 0.1, 0.1), 10)
	Mirror    = New(0.0, Albedo{0.0, 10.0, 0.8, 0.0}, core.NewVec3(1.0, 1.0, 1.0), 1425)
)
