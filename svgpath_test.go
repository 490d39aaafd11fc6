package shapeswarm

import (
	"errors"
	"testing"
)

func ringOf(t *testing.T, d string) []Vec2 {
	t.Helper()
	p, err := ParsePath(d)
	if err != nil {
		t.Fatalf("ParsePath(%q): %v", d, err)
	}
	if len(p.Rings()) != 1 {
		t.Fatalf("ParsePath(%q): %d rings, want 1", d, len(p.Rings()))
	}
	return p.Rings()[0]
}

func samePoints(t *testing.T, d string, got, want []Vec2) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%q: %d points %v, want %v", d, len(got), got, want)
	}
	for i := range want {
		if !approxVec(got[i], want[i]) {
			t.Errorf("%q: point %d = %v, want %v", d, i, got[i], want[i])
		}
	}
}

func TestParsePathLines(t *testing.T) {
	square := []Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	tests := []string{
		"M0 0 L10 0 L10 10 L0 10 Z",
		"m0 0 l10 0 l0 10 l-10 0 z",
		"M0,0 H10 V10 H0 Z",
		"M 0 0 h 10 v 10 h -10 z",
		"M0 0 10 0 10 10 0 10z",
		"M0 0L10 0 10 10 0 10",
		"  M0,0, L10,0\nL10,10\tL0,10 Z  ",
	}
	for _, d := range tests {
		samePoints(t, d, ringOf(t, d), square)
	}
}

func TestParsePathCompactNumbers(t *testing.T) {
	d := "M0-5L10.5.5l1e1-2E0"
	samePoints(t, d, ringOf(t, d), []Vec2{{0, -5}, {10.5, 0.5}, {20.5, -1.5}})
}

func TestParsePathMultipleRings(t *testing.T) {
	p, err := ParsePath("M0 0 L10 0 L10 10 Z M20 20 L30 20 L30 30 Z")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Rings()) != 2 {
		t.Fatalf("rings = %d, want 2", len(p.Rings()))
	}
	if p.Rings()[1][0] != (Vec2{20, 20}) {
		t.Errorf("second ring starts at %v", p.Rings()[1][0])
	}
}

func TestParsePathRelativeAfterClose(t *testing.T) {
	// After z the current point returns to the subpath start.
	p, err := ParsePath("m10 10 l10 0 l0 10 z m5 5 l1 0 l0 1 z")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Rings()[1][0]; got != (Vec2{15, 15}) {
		t.Errorf("second ring starts at %v, want (15, 15)", got)
	}
}

func TestParsePathCubic(t *testing.T) {
	ring := ringOf(t, "M0 0 C 0 10 10 10 10 0")
	if len(ring) != 1+curveSegments {
		t.Fatalf("points = %d, want %d", len(ring), 1+curveSegments)
	}
	if !approxVec(ring[len(ring)-1], Vec2{10, 0}) {
		t.Errorf("end = %v, want (10, 0)", ring[len(ring)-1])
	}
	if mid := ring[curveSegments/2]; !approxVec(mid, Vec2{5, 7.5}) {
		t.Errorf("midpoint = %v, want (5, 7.5)", mid)
	}
}

func TestParsePathSmoothCubicReflects(t *testing.T) {
	ring := ringOf(t, "M0 0 C0 10 10 10 10 0 S20 -10 20 0")
	if len(ring) != 1+2*curveSegments {
		t.Fatalf("points = %d, want %d", len(ring), 1+2*curveSegments)
	}
	// Reflected control (10, -10): midpoint of the second curve is (15, -7.5).
	if mid := ring[curveSegments+curveSegments/2]; !approxVec(mid, Vec2{15, -7.5}) {
		t.Errorf("second curve midpoint = %v, want (15, -7.5)", mid)
	}
}

func TestParsePathQuadratic(t *testing.T) {
	ring := ringOf(t, "M0 0 Q5 10 10 0 T20 0")
	if len(ring) != 1+2*curveSegments {
		t.Fatalf("points = %d, want %d", len(ring), 1+2*curveSegments)
	}
	if mid := ring[curveSegments/2]; !approxVec(mid, Vec2{5, 5}) {
		t.Errorf("first midpoint = %v, want (5, 5)", mid)
	}
	// Reflected control (15, -10).
	if mid := ring[curveSegments+curveSegments/2]; !approxVec(mid, Vec2{15, -5}) {
		t.Errorf("second midpoint = %v, want (15, -5)", mid)
	}
}

func TestParsePathFilledShape(t *testing.T) {
	heart, err := ParsePath("M 50,30 C 50,27 45,15 25,15 C 0,15 0,42.5 0,42.5 " +
		"C 0,60 20,77 50,95 C 80,77 100,60 100,42.5 " +
		"C 100,42.5 100,15 75,15 C 60,15 50,27 50,30 Z")
	if err != nil {
		t.Fatal(err)
	}
	if !heart.Contains(50, 60) {
		t.Error("heart center should be inside")
	}
	if heart.Contains(50, 20) || heart.Contains(5, 90) {
		t.Error("points outside the heart reported inside")
	}
}

func TestParsePathErrors(t *testing.T) {
	tests := []string{
		"M 0 0 A 5 5 0 0 1 10 0",
		"M 0 0 X 10",
		"M 0",
		"L 5 5 C 1 2 3",
		"M 1e 2",
	}
	for _, d := range tests {
		if _, err := ParsePath(d); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("ParsePath(%q) err = %v, want ErrInvalidConfiguration", d, err)
		}
	}
}

func TestParsePathEmpty(t *testing.T) {
	p, err := ParsePath("")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Rings()) != 0 {
		t.Errorf("rings = %d, want 0", len(p.Rings()))
	}
}

func TestMustParsePathPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParsePath("M 0 0 A 1 1 0 0 0 2 2")
}
