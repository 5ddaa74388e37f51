package geometry

import (
	"testing"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/material"
)

// MockSDF reports a fixed distance everywhere
type MockSDF struct {
	name     string
	distance float64
}

func (m MockSDF) DistanceTo(point core.Vec3) float64         { return m.distance }
func (m MockSDF) NormalAt(point core.Vec3) (core.Vec3, bool) { return core.NewVec3(0, 1, 0), true }
func (m MockSDF) Material() material.Material                { return material.Default() }

func TestField_Nearest(t *testing.T) {
	near := MockSDF{name: "near", distance: 1}
	far := MockSDF{name: "far", distance: 5}
	inside := MockSDF{name: "inside", distance: -3}
	tie := MockSDF{name: "tie", distance: 1}

	tests := []struct {
		name         string
		shapes       []SDF
		expectedDist float64
		expected     SDF
	}{
		{"empty field", nil, 9999, nil},
		{"single shape", []SDF{far}, 5, far},
		{"closest wins", []SDF{far, near}, 1, near},
		{"negative distances are skipped", []SDF{inside, far}, 5, far},
		{"only inside", []SDF{inside}, 9999, nil},
		{"first wins a tie", []SDF{near, tie}, 1, near},
		{"beyond max distance", []SDF{MockSDF{distance: 20000}}, 9999, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := NewField(tt.shapes, 9999)
			dist, shape := field.Nearest(core.NewVec3(0, 0, 0))

			if dist != tt.expectedDist {
				t.Errorf("Expected distance %f, got %f", tt.expectedDist, dist)
			}
			if shape != tt.expected {
				t.Errorf("Expected shape %v, got %v", tt.expected, shape)
			}
		})
	}
}

func TestField_ExcludesContainingSphere(t *testing.T) {
	center := core.NewVec3(0, 0, -10)
	container := NewSphere(center, 2, material.Ivory)
	other := NewSphere(core.NewVec3(0, 0, -20), 1, material.Glass)

	if d := container.DistanceTo(center); d != -2 {
		t.Fatalf("Expected distance -2 at the center, got %f", d)
	}

	field := NewField([]SDF{container, other}, 9999)
	dist, shape := field.Nearest(center)

	if shape != other {
		t.Fatalf("Expected the containing sphere to be excluded, got %v", shape)
	}
	if dist != 9 {
		t.Errorf("Expected distance 9 to the other sphere, got %f", dist)
	}
}
