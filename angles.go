package practicalastro

import (
	"math"

	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// HMS is a time or right ascension split into hours, minutes and seconds.
// Only Hours carries the sign on output; on input a negative value in any
// field makes the whole quantity negative.
type HMS struct {
	Hours, Minutes, Seconds float64
}

// Decimal returns h in decimal hours.
func (h HMS) Decimal() float64 {
	return timeutil.HMSToHours(h.Hours, h.Minutes, h.Seconds)
}

// RA returns h as a right ascension.
func (h HMS) RA() unit.RA {
	return unit.RAFromHour(h.Decimal())
}

// hms splits decimal hours, seconds rounded to hundredths.
func hms(x float64) HMS {
	h, m, s := timeutil.HoursParts(x)
	return HMS{Hours: float64(h), Minutes: float64(m), Seconds: s}
}

// DMS is an angle split into degrees, arcminutes and arcseconds, with the
// same sign rules as HMS.
type DMS struct {
	Degrees, Minutes, Seconds float64
}

// Decimal returns d in decimal degrees.
func (d DMS) Decimal() float64 {
	return timeutil.DMSToDegrees(d.Degrees, d.Minutes, d.Seconds)
}

// Angle returns d as a unit.Angle.
func (d DMS) Angle() unit.Angle {
	return unit.AngleFromDeg(d.Decimal())
}

func dms(x float64) DMS {
	d, m, s := timeutil.DegreesParts(x)
	return DMS{Degrees: d, Minutes: m, Seconds: s}
}

// HourMinute is a clock time to the minute.
type HourMinute struct {
	Hour, Minute int
}

// clock truncates decimal hours to hours and minutes. Callers that want the
// nearest minute add half a minute (0.008333 h) first.
func clock(x float64) HourMinute {
	h, m, _ := timeutil.HoursParts(x)
	return HourMinute{Hour: h, Minute: m}
}

// halfMinute is added to a time before truncating it to the minute.
const halfMinute = 0.008333

// Date is a calendar date. Day may carry a fraction for the time of day.
type Date struct {
	Day   float64
	Month int
	Year  int
}

// JD returns the Julian Date of d.
func (d Date) JD() float64 {
	return d.internal().JD()
}

func (d Date) internal() timeutil.Date {
	return timeutil.Date{Day: d.Day, Month: d.Month, Year: d.Year}
}

func dateOf(d timeutil.Date) Date {
	return Date{Day: d.Day, Month: d.Month, Year: d.Year}
}

// Zone is a time zone: the correction from UT in whole hours (east
// positive) and whether daylight saving adds an hour.
type Zone struct {
	DaylightSaving bool
	Correction     int
}

func (z Zone) dst() int {
	if z.DaylightSaving {
		return 1
	}
	return 0
}

// LocalTime is a local civil clock time on a local date.
type LocalTime struct {
	Clock HMS
	Zone  Zone
	Date  Date
}

func (lt LocalTime) internal() timeutil.LocalTime {
	return timeutil.At(lt.Clock.Decimal(), lt.Zone.dst(), lt.Zone.Correction, lt.Date.internal())
}

// midnight is 0h local time on d.
func midnight(z Zone, d Date) timeutil.LocalTime {
	return timeutil.At(0, z.dst(), z.Correction, d.internal())
}

// Equatorial coordinates: right ascension (or hour angle) and declination.
type Equatorial struct {
	RA  HMS
	Dec DMS
}

// equatorial builds Equatorial from decimal hours and degrees.
func equatorial(ra, dec float64) Equatorial {
	return Equatorial{RA: hms(ra), Dec: dms(dec)}
}

// Horizon coordinates.
type Horizon struct {
	Azimuth, Altitude DMS
}

// Ecliptic coordinates.
type Ecliptic struct {
	Longitude, Latitude DMS
}

// Galactic coordinates.
type Galactic struct {
	Longitude, Latitude DMS
}

// round rounds to places decimals the way all published results are.
func round(x float64, places int) float64 {
	return timeutil.Round(x, places)
}

// floorSeconds drops the fraction of the seconds field.
func floorSeconds(d DMS) DMS {
	d.Seconds = math.Floor(d.Seconds)
	return d
}
