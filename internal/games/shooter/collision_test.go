package shooter

import (
	"testing"

	"github.com/vovakirdan/arcade-shooters/internal/core"
)

func TestOverlaps(t *testing.T) {
	box := func(x, y, w, h float64) Body {
		return Body{Pos: core.V2(x, y), Shape: ShapeBox, W: w, H: h}
	}
	sphere := func(x, y, z, r float64) Body {
		return Body{Pos: core.Vec3{X: x, Y: y, Z: z}, Shape: ShapeSphere, R: r}
	}

	tests := []struct {
		name string
		a, b Body
		want bool
	}{
		{"boxes overlapping", box(0, 0, 10, 10), box(5, 5, 10, 10), true},
		{"boxes touching edges", box(0, 0, 10, 10), box(10, 0, 10, 10), false},
		{"boxes apart on y", box(0, 0, 10, 10), box(0, 30, 10, 10), false},
		{"spheres inside radius sum", sphere(0, 0, 0, 2), sphere(0, 0, 2.9, 1), true},
		{"spheres at radius sum", sphere(0, 0, 0, 2), sphere(3, 0, 0, 1), false},
		{"spheres apart in depth", sphere(0, 0, 0, 2), sphere(0, 0, 10, 2), false},
		{"box and sphere close", box(0, 0, 30, 30), sphere(19, 0, 0, 5), true},
		{"box and sphere apart", box(0, 0, 30, 30), sphere(21, 0, 0, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, expected %v", got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestOverlapsPlanarIgnoresHeight(t *testing.T) {
	a := Body{Pos: core.Vec3{X: 0, Y: -5, Z: -20}, Shape: ShapeSphere, R: 2}
	b := Body{Pos: core.Vec3{X: 1, Y: 5, Z: -20}, Shape: ShapeSphere, R: 1}

	if Overlaps(a, b) {
		t.Error("Overlaps() = true, expected false with a 10 unit height gap")
	}
	if !overlapsPlanar(a, b) {
		t.Error("overlapsPlanar() = false, expected true")
	}
}
