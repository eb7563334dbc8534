package ec3

import "math"

// EN 1993 constants for S355 steel

const (
	// Nominal yield strength for t <= 40 mm (MPa), EN 1993-1-1 Table 3.1
	Fy = 355.0

	// Epsilon is sqrt(235/fy) as tabulated in EN 1993-1-1 Table 5.2
	Epsilon = 0.81

	// Density of structural steel (kg/m³), EN 1991-1-1 Table A.4
	Density = 7850.0

	// Eta for shear buckling, EN 1993-1-5 5.1(2). 1.0 is the safe side value.
	Eta = 1.0

	// Shear lag may be neglected when b0 < Le/50, EN 1993-1-5 3.1(1)
	ShearLagSpanRatio = 50.0

	// Shear buckling check is required when hw/tw > 72ε/η, EN 1993-1-5 5.1(2)
	ShearBucklingRatio = 72.0
)

// Limits holds the c/t bounds of classes 1, 2 and 3 before scaling by ε.
type Limits [3]float64

var (
	// InternalCompression is Table 5.2 (sheet 1), part subject to compression
	InternalCompression = Limits{33, 38, 42}

	// OutstandCompression is Table 5.2 (sheet 2), outstand flange in compression
	OutstandCompression = Limits{9, 10, 14}
)

// Class returns the class (1 to 4) of a compression part with the given c/t ratio.
// The first limit the ratio stays strictly below wins. A NaN ratio is class 4.
func (l Limits) Class(ratio float64) int {
	for i, limit := range l {
		if ratio < limit*Epsilon {
			return i + 1
		}
	}
	return 4
}

// Scaled returns the limits multiplied by ε
func (l Limits) Scaled() [3]float64 {
	return [3]float64{l[0] * Epsilon, l[1] * Epsilon, l[2] * Epsilon}
}

// ShearBucklingLimit returns 72ε/η
func ShearBucklingLimit() float64 {
	return ShearBucklingRatio * Epsilon / Eta
}

// ShearLagLimit returns the largest flange half-width b0 (mm) for which
// shear lag may be neglected over a span Le between zero moments.
func ShearLagLimit(le float64) float64 {
	return le / ShearLagSpanRatio
}

// MassPerMetre converts a cross-section area (mm²) to kg/m
func MassPerMetre(area float64) float64 {
	return area * Density * math.Pow10(-6)
}
