package drawml

import "math"

// EMU (English Metric Units) conversion helpers.
// 1 inch = 914400 EMU, 1 point = 12700 EMU, 1 cm = 360000 EMU.
//
// Angles use a second fixed-point unit, 60000ths of a degree:
// 60000 is one degree, 21600000 a full circle.

const (
	emuPerInch       = 914400
	emuPerPoint      = 12700
	emuPerCentimeter = 360000
	emuPerMillimeter = 36000
	// maxEMU is the maximum safe EMU value to prevent overflow.
	maxEMU = math.MaxInt64 / 2
)

// Angle units in 60000ths of a degree.
const (
	AngleDegree        = 60000
	AngleFullCircle    = 21600000
	AngleHalfCircle    = 10800000
	AngleQuarterCircle = 5400000
	AngleEighthCircle  = 2700000
)

// Inch converts inches to EMU. Clamps to safe range.
func Inch(n float64) int64 {
	return clampEMU(n * emuPerInch)
}

// Point converts points to EMU.
func Point(n float64) int64 {
	return clampEMU(n * emuPerPoint)
}

// Centimeter converts centimeters to EMU.
func Centimeter(n float64) int64 {
	return clampEMU(n * emuPerCentimeter)
}

// Millimeter converts millimeters to EMU.
func Millimeter(n float64) int64 {
	return clampEMU(n * emuPerMillimeter)
}

// EMUToInch converts EMU to inches.
func EMUToInch(emu int64) float64 {
	return float64(emu) / emuPerInch
}

// EMUToPoint converts EMU to points.
func EMUToPoint(emu int64) float64 {
	return float64(emu) / emuPerPoint
}

// EMUToCentimeter converts EMU to centimeters.
func EMUToCentimeter(emu int64) float64 {
	return float64(emu) / emuPerCentimeter
}

// EMUToMillimeter converts EMU to millimeters.
func EMUToMillimeter(emu int64) float64 {
	return float64(emu) / emuPerMillimeter
}

// Degrees converts degrees to angle units.
func Degrees(deg float64) float64 {
	return deg * AngleDegree
}

// AngleToRadians converts an angle in 60000ths of a degree to radians.
func AngleToRadians(ang float64) float64 {
	return ang / AngleDegree * math.Pi / 180
}

// RadiansToAngle converts radians to 60000ths of a degree.
func RadiansToAngle(rad float64) float64 {
	return rad * 180 / math.Pi * AngleDegree
}

// NormalizeAngle wraps an angle into [0, AngleFullCircle).
func NormalizeAngle(ang float64) float64 {
	ang = math.Mod(ang, AngleFullCircle)
	if ang < 0 {
		ang += AngleFullCircle
	}
	// A tiny negative rounds up to exactly the full circle after the shift;
	// the range is half-open.
	if ang >= AngleFullCircle {
		ang = 0
	}
	return ang
}

// clampEMU converts a float64 to int64, clamping to prevent overflow.
func clampEMU(v float64) int64 {
	if v > float64(maxEMU) {
		return maxEMU
	}
	if v < -float64(maxEMU) {
		return -maxEMU
	}
	return int64(v)
}
