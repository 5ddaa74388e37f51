package integrator

import (
	"math"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/material"
	"github.com/df07/go-sdf-raymarcher/pkg/scene"
)

// Whitted is a recursive ray caster: direct Phong-style lighting with hard
// shadows plus one reflected and one refracted ray per hit
type Whitted struct {
	scene    *scene.Scene
	marcher  *Marcher
	config   core.MarchConfig
	maxDepth int
	counters Counters
}

// NewWhitted creates a caster over the scene. The scene must not change
// while the caster is in use.
func NewWhitted(sc *scene.Scene, config core.MarchConfig) *Whitted {
	w := &Whitted{
		scene:    sc,
		marcher:  NewMarcher(sc.Shapes, sc.Ground, config),
		config:   config,
		maxDepth: core.MaxRecursionDepth,
	}
	w.marcher.counters = &w.counters
	return w
}

// RayColor casts a primary ray
func (w *Whitted) RayColor(ray core.Ray) core.Vec3 {
	return w.Cast(ray, 0)
}

// Counters returns the work done so far
func (w *Whitted) Counters() Counters {
	return w.counters
}

// Cast returns the color seen along ray at the given recursion depth.
// Rays deeper than the recursion limit, and rays that hit nothing, see the
// background.
func (w *Whitted) Cast(ray core.Ray, depth int) core.Vec3 {
	w.counters.Casts++
	w.counters.MaxDepth = max(w.counters.MaxDepth, depth)

	if depth > w.maxDepth {
		return w.scene.Background
	}
	hit, ok := w.marcher.March(ray)
	if !ok {
		return w.scene.Background
	}

	dir := ray.Direction
	mat := hit.Material
	eps := w.config.Epsilon

	// kr decides whether a refracted ray exists; the albedo weights alone
	// scale the reflect and refract terms below.
	kr := Fresnel(dir, hit.Normal, mat)

	refractColor := core.Vec3{}
	if kr < 1 {
		refractDir := Refract(dir, hit.Normal, mat.RefractiveIndex, 1).Normalize()
		refractOrig := offsetOrigin(hit.Point, hit.Normal, refractDir, eps)
		refractColor = w.Cast(core.NewRay(refractOrig, refractDir), depth+1)
	}

	reflectDir := Reflect(dir, hit.Normal).Normalize()
	reflectOrig := offsetOrigin(hit.Point, hit.Normal, reflectDir, eps)
	reflectColor := w.Cast(core.NewRay(reflectOrig, reflectDir), depth+1)

	diffuse, specular := w.directLighting(hit, dir)

	return composite(mat, diffuse, specular, reflectColor, refractColor)
}

// directLighting accumulates the diffuse and specular intensity of every
// light that is not occluded from the hit point
func (w *Whitted) directLighting(hit Hit, viewDir core.Vec3) (float64, float64) {
	var diffuse, specular float64

	for _, light := range w.scene.Lights {
		lightDir, lightDistance := light.DirectionFrom(hit.Point)

		shadowOrig := offsetOrigin(hit.Point, hit.Normal, lightDir, w.config.Epsilon)
		w.counters.ShadowRays++
		if shadowHit, ok := w.marcher.March(core.NewRay(shadowOrig, lightDir)); ok &&
			shadowHit.Point.Subtract(shadowOrig).Length() < lightDistance {
			continue
		}

		diffuse += light.Intensity * max(0, lightDir.Dot(hit.Normal))
		highlight := max(0, Reflect(lightDir.Negate(), hit.Normal).Negate().Dot(viewDir))
		specular += math.Pow(highlight, hit.Material.SpecularExponent) * light.Intensity
	}

	return diffuse, specular
}

// composite blends the four shading terms with the material's albedo weights
func composite(mat material.Material, diffuse, specular float64, reflectColor, refractColor core.Vec3) core.Vec3 {
	white := core.NewVec3(1, 1, 1)
	return mat.DiffuseColor.Multiply(diffuse * mat.Albedo[material.DiffuseWeight]).
		Add(white.Multiply(specular * mat.Albedo[material.SpecularWeight])).
		Add(reflectColor.Multiply(mat.Albedo[material.ReflectWeight])).
		Add(refractColor.Multiply(mat.Albedo[material.RefractWeight]))
}
