package core

// MarchConfig holds the numeric limits shared by the marcher and the shader.
type MarchConfig struct {
	MaxDistance  float64 // Sentinel distance reported by an empty scene field
	Epsilon      float64 // Surface threshold and self-intersection offset
	MaxSteps     int     // Sphere tracing step budget per ray
	HitThreshold float64 // A fallback hit only counts when closer than this
}

// DefaultMarchConfig returns the limits the built-in scenes are tuned for
func DefaultMarchConfig() MarchConfig {
	return MarchConfig{
		MaxDistance:  9999,
		Epsilon:      1e-3,
		MaxSteps:     128,
		HitThreshold: 1000,
	}
}

// MaxRecursionDepth bounds the reflect/refract recursion of the shader.
const MaxRecursionDepth = 4
