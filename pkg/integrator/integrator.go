package integrator

import "github.com/df07/go-sdf-raymarcher/pkg/core"

// Integrator defines the interface for light transport algorithms.
// Implementations are not safe for concurrent use; give each worker its own.
type Integrator interface {
	// RayColor computes the color carried back along a primary ray
	RayColor(ray core.Ray) core.Vec3

	// Counters returns the work done since the integrator was created
	Counters() Counters
}

// Counters tracks the work done by one integrator instance
type Counters struct {
	Casts             int64 // Calls to Cast, including recursive ones
	ShadowRays        int64 // Shadow rays marched toward lights
	MarchSteps        int64 // Scene field evaluations
	GroundHits        int64 // Marches resolved by the ground plane
	DegenerateNormals int64 // Hits where the primitive had no normal
	MaxDepth          int   // Deepest recursion level reached
}

// Merge adds other into c
func (c *Counters) Merge(other Counters) {
	c.Casts += other.Casts
	c.ShadowRays += other.ShadowRays
	c.MarchSteps += other.MarchSteps
	c.GroundHits += other.GroundHits
	c.DegenerateNormals += other.DegenerateNormals
	c.MaxDepth = max(c.MaxDepth, other.MaxDepth)
}
