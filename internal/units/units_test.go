package units

import (
	"math"
	"testing"
)

// TestConversionRoundTrip verifies kg -> lb -> kg returns the original value
// within float tolerance.
func TestConversionRoundTrip(t *testing.T) {
	for _, kg := range []float64{0, 2.5, 20, 100, 142.5} {
		back := ToKg(FromKg(kg, Lb), Lb)
		if math.Abs(back-kg) > 1e-9 {
			t.Errorf("round trip %v kg -> %v", kg, back)
		}
	}
}

// TestFromKg verifies known conversions and that kg is the identity.
func TestFromKg(t *testing.T) {
	if got := FromKg(100, Kg); got != 100 {
		t.Errorf("FromKg(100, Kg) = %v, want 100", got)
	}
	if got := RoundDisplay(FromKg(100, Lb)); got != 220.5 {
		t.Errorf("FromKg(100, Lb) = %v, want 220.5 after display rounding", got)
	}
	if got := RoundDisplay(FromKg(20, Lb)); got != 44.1 {
		t.Errorf("FromKg(20, Lb) = %v, want 44.1 after display rounding", got)
	}
}
