package core

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{
			name:     "Axis aligned",
			vector:   NewVec3(0, 0, -5),
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "Diagonal",
			vector:   NewVec3(3, 4, 0),
			expected: NewVec3(0.6, 0.8, 0),
		},
		{
			name:     "Zero vector stays zero",
			vector:   NewVec3(0, 0, 0),
			expected: NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-4, 5, 0.5)

	if got := a.Add(b); got != NewVec3(-3, 7, 3.5) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Subtract(b); got != NewVec3(5, -3, 2.5) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(-4, 10, 1.5) {
		t.Errorf("MultiplyVec: got %v", got)
	}
	if got := a.Dot(b); !scalar.EqualWithinAbs(got, 7.5, 1e-12) {
		t.Errorf("Dot: expected 7.5, got %f", got)
	}
	if got := b.Abs(); got != NewVec3(4, 5, 0.5) {
		t.Errorf("Abs: got %v", got)
	}
	if got := b.MaxComponent(); got != 5 {
		t.Errorf("MaxComponent: expected 5, got %f", got)
	}
	if got := NewVec3(-0.5, 0.25, 3).Clamp(0, 1); got != NewVec3(0, 0.25, 1) {
		t.Errorf("Clamp: got %v", got)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 0, -1))
	point := ray.At(2.5)
	if point != NewVec3(1, 0, -2.5) {
		t.Errorf("Expected (1, 0, -2.5), got %v", point)
	}
}

func TestDefaultMarchConfig(t *testing.T) {
	cfg := DefaultMarchConfig()
	if cfg.MaxDistance != 9999 || cfg.Epsilon != 1e-3 || cfg.MaxSteps != 128 || cfg.HitThreshold != 1000 {
		t.Errorf("Unexpected default march config %+v", cfg)
	}
}
