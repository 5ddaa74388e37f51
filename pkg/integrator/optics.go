package integrator

import (
	"math"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/material"
)

// Reflect mirrors incident about normal: r = i - 2(i·n)n
func Reflect(incident, normal core.Vec3) core.Vec3 {
	return incident.Subtract(normal.Multiply(2 * incident.Dot(normal)))
}

// Refract bends incident through a surface using Snell's law. etaT is the
// index on the far side of normal and etaI the index the ray travels in.
// A ray arriving from inside (incident along the normal) swaps both.
// When no transmitted ray exists the fixed direction (1, 0, 0) is returned.
func Refract(incident, normal core.Vec3, etaT, etaI float64) core.Vec3 {
	cosi := -clamp(incident.Dot(normal), -1, 1)
	if cosi < 0 {
		return Refract(incident, normal.Negate(), etaI, etaT)
	}

	eta := etaI / etaT
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return core.NewVec3(1, 0, 0)
	}
	return incident.Multiply(eta).Add(normal.Multiply(eta*cosi - math.Sqrt(k)))
}

// Fresnel returns the fraction of light reflected at a surface of mat,
// averaging the s and p polarized reflectances. Total internal reflection
// and opaque materials return 1.
func Fresnel(incident, normal core.Vec3, mat material.Material) float64 {
	if mat.IsOpaque() {
		return 1
	}

	cosi := clamp(incident.Dot(normal), -1, 1)
	etai, etat := 1.0, mat.RefractiveIndex
	if cosi > 0 {
		etai, etat = etat, etai
	}

	sint := etai / etat * math.Sqrt(max(0, 1-cosi*cosi))
	if sint >= 1 {
		return 1
	}

	cost := math.Sqrt(max(0, 1-sint*sint))
	cosi = math.Abs(cosi)
	rs := ((etat * cosi) - (etai * cost)) / ((etat * cosi) + (etai * cost))
	rp := ((etai * cosi) - (etat * cost)) / ((etai * cosi) + (etat * cost))
	return (rs*rs + rp*rp) / 2
}

// offsetOrigin nudges point off the surface toward the side dir leaves on
func offsetOrigin(point, normal, dir core.Vec3, epsilon float64) core.Vec3 {
	if dir.Dot(normal) < 0 {
		return point.Subtract(normal.Multiply(epsilon))
	}
	return point.Add(normal.Multiply(epsilon))
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
