package timeutil

import (
	"math"
	"strconv"
)

// Date is a calendar date. Day may carry a fractional part for the time of day.
type Date struct {
	Day   float64
	Month int
	Year  int
}

// JD returns the Julian Date of d.
func (d Date) JD() float64 {
	return CivilToJD(d.Day, d.Month, d.Year)
}

// LocalTime is a local civil clock time on a local calendar date, together
// with the offsets needed to reach Universal Time.
type LocalTime struct {
	Hours float64 // local civil time, decimal hours
	DST   int     // daylight saving offset in hours (0 or 1)
	Zone  int     // zone correction in hours, east positive
	Date  Date    // local calendar date
}

// At returns a LocalTime at decimal hours h on the given local date.
func At(h float64, dst, zone int, d Date) LocalTime {
	return LocalTime{Hours: h, DST: dst, Zone: zone, Date: d}
}

// jdUT is the Julian Date of the instant lt, built the same way the
// Greenwich day/month/year and UT are derived below.
func (lt LocalTime) jdUT() float64 {
	b := lt.Hours - float64(lt.DST) - float64(lt.Zone)
	return CivilToJD(lt.Date.Day+b/24.0, lt.Date.Month, lt.Date.Year)
}

// UT returns the Universal Time of lt in decimal hours.
func (lt LocalTime) UT() float64 {
	e := JDDay(lt.jdUT())
	return 24.0 * (e - math.Floor(e))
}

// GreenwichDate returns the Greenwich calendar date (integral day) of lt.
func (lt LocalTime) GreenwichDate() Date {
	day, month, year := JDToCivil(lt.jdUT())
	return Date{Day: math.Floor(day), Month: month, Year: year}
}

// UTToLocal converts a Universal Time on Greenwich date g into local civil
// time and the local calendar date (integral day).
func UTToLocal(ut float64, dst, zone int, g Date) (float64, Date) {
	c := ut + float64(zone) + float64(dst)
	jd := CivilToJD(g.Day, g.Month, g.Year) + c/24.0
	day, month, year := JDToCivil(jd)
	e1 := math.Floor(day)
	return 24.0 * (day - e1), Date{Day: e1, Month: month, Year: year}
}

// -----------------------------
// Rounding and sexagesimal helpers
// -----------------------------

// Round rounds x to places decimals by printing and re-parsing it.
func Round(x float64, places int) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return v
}

// SplitSeconds turns a decimal quantity (hours or degrees) into total
// seconds of arc/time and the seconds part rounded to hundredths.
//
// When the seconds round up to exactly 60 the base gains 60 seconds and the
// seconds part becomes 0, so whole minutes and units are derived from base.
func SplitSeconds(x float64) (base, sec float64) {
	b := math.Abs(x) * 3600.0
	c := Round(b-60.0*math.Floor(b/60.0), 2)
	if c == 60.0 {
		return b + 60.0, 0
	}
	return b, c
}

// HMSToHours converts hours, minutes and seconds to decimal hours. A negative
// value in any component makes the whole result negative.
func HMSToHours(h, m, s float64) float64 {
	return sexagesimal(h, m, s)
}

// DMSToDegrees converts degrees, minutes and seconds to decimal degrees,
// using the same sign rule as HMSToHours.
func DMSToDegrees(d, m, s float64) float64 {
	return sexagesimal(d, m, s)
}

func sexagesimal(a, b, c float64) float64 {
	v := math.Abs(a) + (math.Abs(b)+math.Abs(c)/60.0)/60.0
	if a < 0 || b < 0 || c < 0 {
		return -v
	}
	return v
}

// HoursParts splits decimal hours into hours, minutes and seconds. Only the
// hours carry the sign.
func HoursParts(x float64) (h, m int, s float64) {
	base, sec := SplitSeconds(x)
	h = int(math.Floor(base / 3600.0))
	if x < 0 {
		h = -h
	}
	m = int(math.Mod(math.Floor(base/60.0), 60.0))
	return h, m, sec
}

// DegreesParts splits decimal degrees into degrees, minutes and seconds.
// Only the degrees carry the sign.
func DegreesParts(x float64) (d, m, s float64) {
	base, sec := SplitSeconds(x)
	d = math.Floor(base / 3600.0)
	if x < 0 {
		d = -d
	}
	m = math.Mod(math.Floor(base/60.0), 60.0)
	return d, m, sec
}

// -----------------------------
// Calendar
// -----------------------------

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	default:
		return year%4 == 0
	}
}

// CivilToJD converts a calendar date to a Julian Date. Dates from
// 15 October 1582 are Gregorian, earlier ones Julian.
func CivilToJD(day float64, month, year int) float64 {
	y := float64(year)
	m := float64(month)
	if month < 3 {
		y--
		m += 12
	}

	gregorian := year > 1582 ||
		(year == 1582 && month > 10) ||
		(year == 1582 && month == 10 && day >= 15)

	var b float64
	if gregorian {
		a := math.Floor(y / 100.0)
		b = 2.0 - a + math.Floor(a/4.0)
	}

	var c float64
	if y < 0 {
		c = math.Floor(365.25*y - 0.75)
	} else {
		c = math.Floor(365.25 * y)
	}
	d := math.Floor(30.6001 * (m + 1.0))

	return b + c + d + day + 1720994.5
}

// JDToCivil converts a Julian Date to a calendar date. The fractional part
// of day is the time of day.
func JDToCivil(jd float64) (day float64, month, year int) {
	i := math.Floor(jd + 0.5)
	f := jd + 0.5 - i
	a := math.Floor((i - 1867216.25) / 36524.25)
	b := i
	if i > 2299160.0 {
		b = i + 1.0 + a - math.Floor(a/4.0)
	}
	c := b + 1524.0
	d := math.Floor((c - 122.1) / 365.25)
	e := math.Floor(365.25 * d)
	g := math.Floor((c - e) / 30.6001)

	day = c - e + f - math.Floor(30.6001*g)
	h := g - 13.0
	if g < 13.5 {
		h = g - 1.0
	}
	y := d - 4715.0
	if h > 2.5 {
		y = d - 4716.0
	}
	return day, int(h), int(y)
}

// JDDay returns the (fractional) day of month of a Julian Date.
func JDDay(jd float64) float64 {
	day, _, _ := JDToCivil(jd)
	return day
}

// DayOfWeek returns the day of the week of a Julian Date, 0 being Sunday.
func DayOfWeek(jd float64) int {
	j := math.Floor(jd-0.5) + 0.5
	return int(math.Mod(j+1.5, 7.0))
}

// -----------------------------
// Sidereal time
// -----------------------------

// gst0 is Greenwich sidereal time at 0h UT on the Greenwich date, in hours.
func gst0(g Date) float64 {
	t := (CivilToJD(g.Day, g.Month, g.Year) - 2451545.0) / 36525.0
	d := 6.697374558 + 2400.051336*t + 0.000025862*t*t
	return d - 24.0*math.Floor(d/24.0)
}

// UTToGST converts Universal Time (hours) on Greenwich date g to Greenwich
// sidereal time.
func UTToGST(ut float64, g Date) float64 {
	h := gst0(g) + ut*1.002737909
	return h - 24.0*math.Floor(h/24.0)
}

// GSTToUT converts Greenwich sidereal time (hours) on Greenwich date g to
// Universal Time.
func GSTToUT(gst float64, g Date) float64 {
	a := gst - gst0(g)
	return (a - 24.0*math.Floor(a/24.0)) * 0.9972695663
}

// GSTToUTAmbiguous reports whether the Universal Time for gst falls in the
// first four minutes of the day, where a sidereal time maps to two UTs.
func GSTToUTAmbiguous(gst float64, g Date) bool {
	return GSTToUT(gst, g) < 4.0/60.0
}

// GSTToLST converts Greenwich to local sidereal time for a longitude in
// degrees (east positive).
func GSTToLST(gst, lon float64) float64 {
	return Normalize24(gst + lon/15.0)
}

// LSTToGST converts local to Greenwich sidereal time.
func LSTToGST(lst, lon float64) float64 {
	return Normalize24(lst - lon/15.0)
}

// UTDayAdjust moves ut by a day when it strays more than six hours from g1.
func UTDayAdjust(ut, g1 float64) float64 {
	switch {
	case ut-g1 < -6.0:
		return ut + 24.0
	case ut-g1 > 6.0:
		return ut - 24.0
	default:
		return ut
	}
}

// -----------------------------
// Angles and numeric helpers
// -----------------------------

// TwoPi is the truncated 2π used throughout the formula library.
const TwoPi = 6.283185308

// pi is a variable so the degree/radian factor is computed in float64
// arithmetic rather than folded as an exact constant.
var pi = math.Pi

var radPerDeg = pi / 180.0

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * radPerDeg
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * (180.0 / math.Pi)
}

// Degrees converts radians to degrees with the short factor 57.29577951.
func Degrees(w float64) float64 {
	return w * 57.29577951
}

// SinD, CosD and TanD take their argument in degrees.
func SinD(deg float64) float64 {
	return math.Sin(Deg2Rad(deg))
}

func CosD(deg float64) float64 {
	return math.Cos(Deg2Rad(deg))
}

func TanD(deg float64) float64 {
	return math.Tan(Deg2Rad(deg))
}

func Normalize360(d float64) float64 {
	return d - 360.0*math.Floor(d/360.0)
}

func Normalize24(h float64) float64 {
	return h - 24.0*math.Floor(h/24.0)
}

// Unwind normalizes an angle in radians into [0, 2π).
func Unwind(w float64) float64 {
	return w - TwoPi*math.Floor(w/TwoPi)
}

// Fract returns w - Lint(w).
func Fract(w float64) float64 {
	return w - Lint(w)
}

// Lint returns the integer below w. Negative whole numbers step down one
// more (Lint(-3) == -4), which the lunation arithmetic relies on.
func Lint(w float64) float64 {
	return iint(w) + iint((Sign(w)-1.0)/2.0)
}

func iint(w float64) float64 {
	return Sign(w) * math.Floor(math.Abs(w))
}

// Sign returns -1, 0 or 1.
func Sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
