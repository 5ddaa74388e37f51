package geometry

import "github.com/df07/go-sdf-raymarcher/pkg/core"

// Field aggregates the distance functions of an ordered set of primitives
type Field struct {
	Shapes      []SDF
	MaxDistance float64 // Distance reported when no primitive qualifies
}

// NewField creates a scene field over shapes
func NewField(shapes []SDF, maxDistance float64) Field {
	return Field{Shapes: shapes, MaxDistance: maxDistance}
}

// Nearest returns the smallest non-negative distance from point to any
// primitive together with that primitive. Primitives that contain point
// (negative distance) are skipped, and the earlier primitive wins a tie.
// When nothing qualifies it returns (MaxDistance, nil).
func (f Field) Nearest(point core.Vec3) (float64, SDF) {
	minDist := f.MaxDistance
	var nearest SDF

	for _, shape := range f.Shapes {
		dist := shape.DistanceTo(point)
		if dist < 0 {
			continue
		}
		if dist < minDist {
			minDist = dist
			nearest = shape
		}
	}

	return minDist, nearest
}
