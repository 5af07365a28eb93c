// Package units converts between canonical kilograms and display units.
package units

import "math"

// Unit is a user-facing mass unit.
type Unit string

const (
	Kg Unit = "kg"
	Lb Unit = "lb"
)

const lbPerKg = 2.20462262

// FromKg converts a canonical kilogram value to the given display unit.
func FromKg(kg float64, u Unit) float64 {
	if u == Lb {
		return kg * lbPerKg
	}
	return kg
}

// ToKg converts a display-unit value back to canonical kilograms.
func ToKg(v float64, u Unit) float64 {
	if u == Lb {
		return v / lbPerKg
	}
	return v
}

// RoundDisplay rounds a display value to one decimal place, enough for any
// plate denomination in either unit.
func RoundDisplay(v float64) float64 {
	return math.Round(v*10) / 10
}
