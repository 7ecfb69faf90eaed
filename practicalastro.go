// Package practicalastro implements the calculator methods of practical
// positional astronomy: calendar and time-scale conversions, coordinate
// transforms, positions of the Sun, Moon, planets, comets and binary stars,
// rise/set and twilight times, and eclipse prediction.
//
// Every function is pure. Inputs and outputs use small records (HMS, DMS,
// Date, LocalTime) so values can be checked against worked examples, and
// decimal forms are available through their methods.
//
// A second, time.Time based API (RiseSetFor, DaylightHours, TwilightFor,
// GoldenHourFor, BlueHourFor, MoonPhaseAt) sits on top of the same models
// for callers who think in wall-clock time.
package practicalastro

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/thurmanmarka/practicalastro/internal/coords"
	"github.com/thurmanmarka/practicalastro/internal/refdata"
	"github.com/thurmanmarka/practicalastro/internal/solver"
)

// Body represents a celestial body.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

var bodyNames = [...]string{"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune"}

func (b Body) String() string {
	if b < Sun || b > Neptune {
		return "Body(?)"
	}
	return bodyNames[b]
}

// ParseBody returns the Body with the given name, ignoring case.
func ParseBody(name string) (Body, error) {
	for i, n := range bodyNames {
		if strings.EqualFold(n, name) {
			return Body(i), nil
		}
	}
	return 0, errors.Wrapf(ErrNotFound, "body %q", name)
}

// TwilightKind identifies the type of twilight based on the Sun's altitude
// below the horizon.
type TwilightKind int

const (
	// TwilightCivil corresponds to the Sun's center at -6 degrees altitude.
	TwilightCivil TwilightKind = iota

	// TwilightNautical corresponds to the Sun's center at -12 degrees altitude.
	TwilightNautical

	// TwilightAstronomical corresponds to the Sun's center at -18 degrees altitude.
	TwilightAstronomical
)

// Depression returns how far below the horizon (degrees) the Sun's centre
// is at the start and end of this twilight.
func (k TwilightKind) Depression() (float64, error) {
	switch k {
	case TwilightCivil:
		return 6, nil
	case TwilightNautical:
		return 12, nil
	case TwilightAstronomical:
		return 18, nil
	default:
		return 0, errors.Errorf("unknown TwilightKind: %d", k)
	}
}

func (k TwilightKind) String() string {
	switch k {
	case TwilightCivil:
		return "civil"
	case TwilightNautical:
		return "nautical"
	case TwilightAstronomical:
		return "astronomical"
	default:
		return "unknown"
	}
}

// AngleMeasure says whether the first coordinate of a pair is a right
// ascension in hours or a longitude in degrees.
type AngleMeasure int

const (
	AngleHours AngleMeasure = iota
	AngleDegrees
)

// CoordinateType says whether coordinates are true (geometric) or apparent
// (as observed).
type CoordinateType int

const (
	CoordinateTrue CoordinateType = iota
	CoordinateApparent
)

func (c CoordinateType) kind() coords.Kind {
	if c == CoordinateApparent {
		return coords.Apparent
	}
	return coords.True
}

// Accuracy selects the simpler or the fuller model where both exist.
type Accuracy int

const (
	AccuracyApproximate Accuracy = iota
	AccuracyPrecise
)

var (
	// ErrNotFound is returned for a planet, comet or binary name that is
	// not in the reference tables.
	ErrNotFound = refdata.ErrNotFound

	// ErrNotApplicable is returned when a quantity has no meaning for the
	// input, such as the visual aspects of the Earth.
	ErrNotApplicable = errors.New("not applicable")

	// ErrDidNotConverge is returned when an iterative solution does not
	// settle within solver.MaxIterations steps.
	ErrDidNotConverge = solver.ErrDidNotConverge

	// ErrNeverRises is returned when a body stays below the horizon.
	ErrNeverRises = errors.New("body never rises")

	// ErrCircumpolar is returned when a body stays above the horizon.
	ErrCircumpolar = errors.New("body is circumpolar")

	// ErrNoRiseNoSet is returned when a body does not rise or set on that date at that location.
	ErrNoRiseNoSet = errors.New("body does not rise or set on this date")

	// ErrTwilightAllNight is returned when the Sun never sinks as far as the
	// twilight boundary, so twilight lasts all night.
	ErrTwilightAllNight = errors.New("twilight lasts all night")

	// ErrAmbiguousSiderealTime is returned with a usable result when a
	// sidereal time falls in the first minutes of the UT day and maps to two
	// universal times.
	ErrAmbiguousSiderealTime = errors.New("sidereal time maps to two universal times")
)

// statusErr maps a rise/set outcome to an error.
func statusErr(s coords.Status) error {
	switch s {
	case coords.OK:
		return nil
	case coords.NeverRises:
		return ErrNeverRises
	case coords.Circumpolar:
		return ErrCircumpolar
	case coords.GSTWarning:
		return ErrAmbiguousSiderealTime
	default:
		return ErrNoRiseNoSet
	}
}
