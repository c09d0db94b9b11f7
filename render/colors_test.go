package render

import (
	"testing"
)

// TestLerpEndpoints verifies Lerp endpoints, midpoint and clamping
func TestLerpEndpoints(t *testing.T) {
	a := RGB{0, 100, 200}
	b := RGB{200, 100, 0}

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Expected %v at t=0, got %v", a, got)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Expected %v at t=1, got %v", b, got)
	}
	if got := Lerp(a, b, 0.5); got != (RGB{100, 100, 100}) {
		t.Errorf("Expected midpoint {100 100 100}, got %v", got)
	}
	if got := Lerp(a, b, -1); got != a {
		t.Errorf("Expected clamp to a below 0, got %v", got)
	}
}

// TestGradientSteps verifies Gradient spaces n steps evenly from a to b
func TestGradientSteps(t *testing.T) {
	a, b := RGB{0, 0, 0}, RGB{90, 90, 90}

	if got := Gradient(a, b, 0, 1); got != a {
		t.Errorf("Expected single step to be a, got %v", got)
	}
	if got := Gradient(a, b, 3, 4); got != b {
		t.Errorf("Expected last step to be b, got %v", got)
	}
	if got := Gradient(a, b, 1, 3); got != (RGB{45, 45, 45}) {
		t.Errorf("Expected {45 45 45}, got %v", got)
	}
}

// TestScaleSaturates verifies Scale clamps channels at 255
func TestScaleSaturates(t *testing.T) {
	if got := Scale(RGB{200, 100, 10}, 2); got != (RGB{255, 200, 20}) {
		t.Errorf("Expected {255 200 20}, got %v", got)
	}
	if got := Scale(RGB{200, 100, 10}, 0.5); got != (RGB{100, 50, 5}) {
		t.Errorf("Expected {100 50 5}, got %v", got)
	}
}
