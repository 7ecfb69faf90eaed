package practicalastro

import (
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/thurmanmarka/practicalastro/internal/coords"
	"github.com/thurmanmarka/practicalastro/internal/moon"
	"github.com/thurmanmarka/practicalastro/internal/planet"
	"github.com/thurmanmarka/practicalastro/internal/sun"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// Coordinates represent an observer's location.
type Coordinates struct {
	Lat       float64 // degrees, north positive
	Lon       float64 // degrees, east positive (west negative, e.g. -105 for 105°W)
	Elevation float64 // meters above sea level (not used by the rise/set models)
}

// RiseSet holds rise and set times of a body on a given date. A zero time
// means that event does not happen on the date.
type RiseSet struct {
	Rise time.Time
	Set  time.Time
}

// PhaseInfo describes the illuminated fraction and qualitative phase
// of the Moon at a given instant.
type PhaseInfo struct {
	Time       time.Time // the instant this phase is evaluated at
	Fraction   float64   // illuminated fraction [0..1], 0=new, 1=full
	Elongation float64   // Sun-Moon angular separation in degrees [0..180]
	Waxing     bool      // true if waxing (illumination increasing), false if waning
	Name       string    // e.g. "New Moon", "Waxing Crescent", "First Quarter", ...
}

// PhaseWindow represents a continuous time interval where the Sun's altitude
// stays within a particular range (e.g. golden hour or blue hour).
type PhaseWindow struct {
	Start time.Time
	End   time.Time
}

// DaylightPhases holds the morning and evening windows for a given phase
// (e.g. golden hour or blue hour).
type DaylightPhases struct {
	// Morning is the interval after dawn / sunrise.
	Morning PhaseWindow
	// Evening is the interval before dusk / sunset.
	Evening PhaseWindow

	// HasMorning / HasEvening indicate whether the corresponding window
	// exists on this date at this location (high latitudes can be weird).
	HasMorning bool
	HasEvening bool
}

// localDay is a calendar date of a time.Time together with the whole-hour
// zone correction the models work in.
type localDay struct {
	date timeutil.Date
	zone int
	loc  *time.Location
}

// dayOf takes the calendar date of t in its own location. The zone
// correction is the location's offset at local noon rounded down to whole
// hours; the leftover minutes are restored when converting back.
func dayOf(t time.Time) localDay {
	year, month, day := t.Date()
	_, off := time.Date(year, month, day, 12, 0, 0, 0, t.Location()).Zone()
	return localDay{
		date: timeutil.Date{Day: float64(day), Month: int(month), Year: year},
		zone: int(math.Floor(float64(off) / 3600.0)),
		loc:  t.Location(),
	}
}

// at converts decimal hours on local date d, in the whole-hour zone, to a
// time in the caller's location.
func (ld localDay) at(hours float64, d timeutil.Date) time.Time {
	midnight := time.Date(d.Year, time.Month(d.Month), int(d.Day), 0, 0, 0, 0, time.UTC)
	ut := midnight.Add(time.Duration((hours - float64(ld.zone)) * float64(time.Hour)))
	return ut.In(ld.loc)
}

// pinned is at with the calendar date forced back to the requested day.
func (ld localDay) pinned(hours float64) time.Time {
	t := ld.at(hours, ld.date)
	return withLocalDate(t, ld.date.Year, time.Month(ld.date.Month), int(ld.date.Day))
}

// RiseSetFor returns rise and set times for the given body and location on a
// date. The date's time zone is used for the returned times.
//
// The Sun uses the refined sunrise model (upper limb on the refracted
// horizon), the Moon the iterated moonrise model and the planets a search
// of their precise positions. Sun and planet times are pinned to the
// requested calendar date; a moonrise or moonset may fall on the next day.
func RiseSetFor(body Body, loc Coordinates, date time.Time) (RiseSet, error) {
	switch {
	case body == Sun:
		return sunRiseSet(loc, date)
	case body == Moon:
		return moonRiseSet(loc, date)
	case body >= Mercury && body <= Neptune:
		return planetRiseSet(body, loc, date)
	default:
		return RiseSet{}, errors.Errorf("unknown body %v", body)
	}
}

func sunRiseSet(loc Coordinates, date time.Time) (RiseSet, error) {
	ld := dayOf(date)
	rise := sun.Sunrise(ld.date, 0, ld.zone, loc.Lon, loc.Lat)
	set := sun.Sunset(ld.date, 0, ld.zone, loc.Lon, loc.Lat)

	if !rise.OK() && !set.OK() {
		return RiseSet{}, errors.Wrap(statusErr(rise.Status), "sun")
	}

	var rs RiseSet
	if rise.OK() {
		rs.Rise = ld.pinned(rise.Hours)
	}
	if set.OK() {
		rs.Set = ld.pinned(set.Hours)
	}
	return rs, nil
}

func moonRiseSet(loc Coordinates, date time.Time) (RiseSet, error) {
	ld := dayOf(date)
	rise := moon.Moonrise(ld.date, 0, ld.zone, loc.Lon, loc.Lat)
	set := moon.Moonset(ld.date, 0, ld.zone, loc.Lon, loc.Lat)

	if !rise.OK() && !set.OK() {
		return RiseSet{}, errors.Wrap(statusErr(rise.Status), "moon")
	}

	var rs RiseSet
	if rise.OK() {
		rs.Rise = ld.at(rise.Hours, rise.Date)
	}
	if set.OK() {
		rs.Set = ld.at(set.Hours, set.Date)
	}
	return rs, nil
}

func planetRiseSet(body Body, loc Coordinates, date time.Time) (RiseSet, error) {
	ld := dayOf(date)
	id := planet.ID(body - Mercury)

	pc, err := planetEvents(id, ld.date, 0, ld.zone, loc.Lon, loc.Lat)
	if err != nil {
		return RiseSet{}, errors.Wrapf(err, "%v", body)
	}

	var rs RiseSet
	if pc.rise.OK {
		rs.Rise = ld.pinned(pc.rise.Hours)
	}
	if pc.set.OK {
		rs.Set = ld.pinned(pc.set.Hours)
	}
	return rs, nil
}

// DaylightHours calculates the duration of daylight (time between sunrise and
// sunset) for the Sun at the given location and date. Returns the duration in
// hours as a float64.
//
// If the sun does not rise or set on the given date (e.g., polar regions), it
// returns 0 and an error: ErrCircumpolar during polar day, ErrNeverRises
// during polar night.
func DaylightHours(loc Coordinates, date time.Time) (float64, error) {
	rs, err := RiseSetFor(Sun, loc, date)
	if err != nil {
		return 0, err
	}
	if rs.Rise.IsZero() || rs.Set.IsZero() {
		return 0, ErrNoRiseNoSet
	}

	duration := rs.Set.Sub(rs.Rise)
	return duration.Hours(), nil
}

// withLocalDate returns a copy of t but with its calendar date
// forced to (year, month, day), keeping the same clock time and location.
func withLocalDate(t time.Time, year int, month time.Month, day int) time.Time {
	loc := t.Location()
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// crossings returns the upward and downward crossings of the Sun's centre
// through altitude -depression on the local day, with ok flags.
func (ld localDay) crossings(loc Coordinates, depression float64) (up, down time.Time, okUp, okDown bool) {
	am := sun.MorningTwilight(ld.date, 0, ld.zone, loc.Lon, loc.Lat, depression)
	pm := sun.EveningTwilight(ld.date, 0, ld.zone, loc.Lon, loc.Lat, depression)
	if am.OK() {
		up, okUp = ld.pinned(am.Hours), true
	}
	if pm.OK() {
		down, okDown = ld.pinned(pm.Hours), true
	}
	return up, down, okUp, okDown
}

// TwilightFor computes twilight times (dawn and dusk) of the given kind for
// a location and local calendar date. The returned RiseSet uses Rise as the
// "dawn" time (upward crossing of the twilight altitude) and Set as the
// "dusk" time (downward crossing).
//
// For example, TwilightCivil returns civil dawn (Rise) and civil dusk (Set)
// where the Sun's altitude crosses -6 degrees.
func TwilightFor(loc Coordinates, date time.Time, kind TwilightKind) (RiseSet, error) {
	depression, err := kind.Depression()
	if err != nil {
		return RiseSet{}, err
	}

	ld := dayOf(date)
	dawn, dusk, okDawn, okDusk := ld.crossings(loc, depression)
	if !okDawn && !okDusk {
		am := sun.MorningTwilight(ld.date, 0, ld.zone, loc.Lon, loc.Lat, depression)
		return RiseSet{}, errors.Wrapf(twilightErr(am.Status), "%s twilight", kind)
	}

	var rs RiseSet
	if okDawn {
		rs.Rise = dawn
	}
	if okDusk {
		rs.Set = dusk
	}
	return rs, nil
}

// window builds the morning and evening windows in which the Sun's centre
// lies between lowAlt and highAlt degrees.
func window(loc Coordinates, date time.Time, lowAlt, highAlt float64) (DaylightPhases, error) {
	ld := dayOf(date)
	mLow, eLow, okMLow, okELow := ld.crossings(loc, -lowAlt)
	mHigh, eHigh, okMHigh, okEHigh := ld.crossings(loc, -highAlt)

	var phases DaylightPhases

	// Morning: Sun climbing from lowAlt -> highAlt.
	if okMLow && okMHigh && mHigh.After(mLow) {
		phases.Morning = PhaseWindow{Start: mLow, End: mHigh}
		phases.HasMorning = true
	}

	// Evening: Sun descending from highAlt -> lowAlt.
	if okEHigh && okELow && eLow.After(eHigh) {
		phases.Evening = PhaseWindow{Start: eHigh, End: eLow}
		phases.HasEvening = true
	}

	if !phases.HasMorning && !phases.HasEvening {
		return DaylightPhases{}, ErrNoRiseNoSet
	}
	return phases, nil
}

// GoldenHourFor computes the golden hour intervals for the given local
// calendar date and location. Golden hour is (approximately) defined as
// the period when the Sun's center altitude is between -4° and +6°.
//
// If neither morning nor evening golden hour exists (e.g. extreme
// high-latitude edge cases), ErrNoRiseNoSet is returned.
func GoldenHourFor(loc Coordinates, date time.Time) (DaylightPhases, error) {
	return window(loc, date, -4.0, 6.0)
}

// BlueHourFor computes the blue hour intervals for the given local calendar
// date and location, when the Sun's center altitude is between -6° and -4°.
//
// If neither morning nor evening blue hour exists, ErrNoRiseNoSet is returned.
func BlueHourFor(loc Coordinates, date time.Time) (DaylightPhases, error) {
	return window(loc, date, -6.0, -4.0)
}

// MoonPhaseAt computes the Moon's illuminated fraction and qualitative phase
// at the given time. Phase is a global property (independent of observer
// location), so we work in UTC internally and return the original time.
func MoonPhaseAt(t time.Time) (PhaseInfo, error) {
	utc := t.UTC()
	hours := float64(utc.Hour()) + float64(utc.Minute())/60.0 +
		(float64(utc.Second())+float64(utc.Nanosecond())/1e9)/3600.0
	lt := timeutil.At(hours, 0, 0, timeutil.Date{Day: float64(utc.Day()), Month: int(utc.Month()), Year: utc.Year()})

	mEq := moon.Apparent(lt)
	sEq := sun.ApparentEquatorial(sun.Longitude(lt), lt)
	elong := coords.Separation(sEq.RA, sEq.Dec, mEq.RA, mEq.Dec)

	fraction := moon.Phase(lt)
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}

	// Waxing vs waning: which side of the Sun is the Moon on?
	waxing := timeutil.Normalize360(moon.Longitude(lt)-sun.Longitude(lt)) < 180.0

	return PhaseInfo{
		Time:       t,
		Fraction:   fraction,
		Elongation: elong,
		Waxing:     waxing,
		Name:       classifyMoonPhaseName(fraction, waxing),
	}, nil
}

func classifyMoonPhaseName(f float64, waxing bool) string {
	const (
		eps        = 0.01 // near 0 or 1
		quarterTol = 0.05 // fraction window around 0.5
	)

	switch {
	case f < eps:
		return "New Moon"
	case f > 1-eps:
		return "Full Moon"
	case math.Abs(f-0.5) < quarterTol:
		if waxing {
			return "First Quarter"
		}
		return "Last Quarter"
	case f < 0.5:
		if waxing {
			return "Waxing Crescent"
		}
		return "Waning Crescent"
	default: // f > 0.5 but not near 1
		if waxing {
			return "Waxing Gibbous"
		}
		return "Waning Gibbous"
	}
}
