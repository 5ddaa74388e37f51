package integrator

import (
	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
	"github.com/df07/go-sdf-raymarcher/pkg/log"
	"github.com/df07/go-sdf-raymarcher/pkg/material"
)

// Hit describes the surface point found by a march
type Hit struct {
	Point    core.Vec3
	Normal   core.Vec3
	Material material.Material
	Distance float64 // Ray parameter of the hit
	Ground   bool    // Hit resolved by the ground plane
}

// Marcher sphere-traces rays through a scene field and falls back to the
// ground plane when no primitive is reached
type Marcher struct {
	field    geometry.Field
	ground   *geometry.Checkerboard
	config   core.MarchConfig
	counters *Counters
	logger   log.Logger
}

// NewMarcher creates a marcher over shapes. ground may be nil.
func NewMarcher(shapes []geometry.SDF, ground *geometry.Checkerboard, config core.MarchConfig) *Marcher {
	return &Marcher{
		field:    geometry.NewField(shapes, config.MaxDistance),
		ground:   ground,
		config:   config,
		counters: &Counters{},
		logger:   log.New("marcher"),
	}
}

// March walks ray through the scene. The ray direction must be normalized.
func (m *Marcher) March(ray core.Ray) (Hit, bool) {
	depth := m.config.Epsilon
	for i := 0; i < m.config.MaxSteps; i++ {
		m.counters.MarchSteps++
		dist, shape := m.field.Nearest(ray.At(depth))
		if shape == nil {
			break
		}

		depth += dist
		if dist < m.config.Epsilon {
			return m.surfaceHit(ray, depth, shape), true
		}
	}

	return m.groundHit(ray)
}

// surfaceHit builds the hit record for a primitive reached at depth
func (m *Marcher) surfaceHit(ray core.Ray, depth float64, shape geometry.SDF) Hit {
	point := ray.At(depth)
	normal, ok := shape.NormalAt(point)
	if !ok {
		m.counters.DegenerateNormals++
		m.logger.Warningf("no normal at %v, keeping zero normal", point)
	}

	return Hit{
		Point:    point,
		Normal:   normal,
		Material: shape.Material(),
		Distance: depth,
	}
}

// groundHit intersects the ray with the checkerboard plane
func (m *Marcher) groundHit(ray core.Ray) (Hit, bool) {
	if m.ground == nil {
		return Hit{}, false
	}

	t, point, ok := m.ground.Intersect(ray, m.config.Epsilon)
	if !ok || min(m.config.MaxDistance, t) >= m.config.HitThreshold {
		return Hit{}, false
	}

	m.counters.GroundHits++
	return Hit{
		Point:    point,
		Normal:   m.ground.Normal(),
		Material: material.Default().WithDiffuseColor(m.ground.ColorAt(point)),
		Distance: t,
		Ground:   true,
	}, true
}
