// SPDX-License-Identifier: MIT

package angle

import (
	"fmt"
	"math"
	"strings"
)

// Unit identifies the unit an angle value is expressed in.
type Unit int

const (
	Degrees Unit = iota
	Radians
	Gradians
	Turns
	DegMinSec // degrees-minutes-seconds; numerically the same as Degrees
)

const (
	degreesPerGradian = 0.9
	degreesPerTurn    = 360.0
)

var unitNames = [...]string{"degrees", "radians", "gradians", "turns", "dms"}

// String returns the lower-case unit name.
func (u Unit) String() string {
	if u < Degrees || u > DegMinSec {
		return fmt.Sprintf("Unit(%d)", int(u))
	}

	return unitNames[u]
}

// Suffix is the display suffix appended after a formatted value.
func (u Unit) Suffix() string {
	switch u {
	case Degrees:
		return "°"
	case Radians:
		return " rad"
	case Gradians:
		return " grad"
	case Turns:
		return " turns"
	default:
		return ""
	}
}

// ParseUnit resolves a unit name or common abbreviation.
func ParseUnit(name string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "deg", "degree", "degrees", "°":
		return Degrees, nil
	case "rad", "radian", "radians":
		return Radians, nil
	case "grad", "gradian", "gradians", "gon":
		return Gradians, nil
	case "turn", "turns", "rev":
		return Turns, nil
	case "dms":
		return DegMinSec, nil
	}

	return 0, fmt.Errorf("ParseUnit(%q): %w", name, ErrUnknownUnit)
}

// ToDegrees converts value expressed in unit into degrees.
func ToDegrees(value float64, unit Unit) float64 {
	switch unit {
	case Radians:
		return value * 180 / math.Pi
	case Gradians:
		return value * degreesPerGradian
	case Turns:
		return value * degreesPerTurn
	default:
		return value
	}
}

// FromDegrees converts degrees into unit. ToDegrees(FromDegrees(d, u), u) == d
// up to float rounding.
func FromDegrees(degrees float64, unit Unit) float64 {
	switch unit {
	case Radians:
		return degrees * math.Pi / 180
	case Gradians:
		return degrees / degreesPerGradian
	case Turns:
		return degrees / degreesPerTurn
	default:
		return degrees
	}
}

// Normalization selects the wrapping applied by Normalize.
type Normalization int

const (
	// None leaves the value untouched.
	None Normalization = iota
	// ZeroTo360 wraps into [0, 360).
	ZeroTo360
	// NegativeTo180 wraps into [-180, 180].
	NegativeTo180
)

// Normalize wraps degrees according to mode. The remainder keeps the sign of the
// dividend, so for NegativeTo180 both 180 and -180 are fixed points.
func Normalize(degrees float64, mode Normalization) float64 {
	switch mode {
	case ZeroTo360:
		m := math.Mod(degrees, 360)
		if m < 0 {
			m += 360
		}
		return m
	case NegativeTo180:
		m := math.Mod(degrees, 360)
		if m > 180 {
			m -= 360
		} else if m < -180 {
			m += 360
		}
		return m
	default:
		return degrees
	}
}
