package practicalastro

import (
	"math"
	"time"

	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// EasterDate returns the date of Easter Sunday in the Gregorian calendar.
func EasterDate(year int) Date {
	y := float64(year)

	a := math.Mod(y, 19)
	b := math.Floor(y / 100)
	c := math.Mod(y, 100)
	d := math.Floor(b / 4)
	e := math.Mod(b, 4)
	f := math.Floor((b + 8) / 25)
	g := math.Floor((b - f + 1) / 3)
	h := math.Mod(19*a+b-d-g+15, 30)
	i := math.Floor(c / 4)
	k := math.Mod(c, 4)
	l := math.Mod(32+2*(e+i)-h-k, 7)
	m := math.Floor((a + 11*h + 22*l) / 451)
	n := math.Floor((h + l - 7*m + 114) / 31)
	p := math.Mod(h+l-7*m+114, 31)

	return Date{Day: p + 1, Month: int(n), Year: year}
}

// DayNumber returns the day of the year of d, 1 January being day 1.
func DayNumber(d Date) int {
	leap := timeutil.IsLeapYear(d.Year)
	var n int
	if d.Month <= 2 {
		n = d.Month - 1
		if leap {
			n *= 62
		} else {
			n *= 63
		}
		n /= 2
	} else {
		n = int(math.Floor(float64(d.Month+1) * 30.6))
		if leap {
			n -= 62
		} else {
			n -= 63
		}
	}
	return n + int(d.Day)
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return timeutil.IsLeapYear(year)
}

// CivilTimeToDecimalHours converts a clock time to decimal hours.
func CivilTimeToDecimalHours(t HMS) float64 {
	return t.Decimal()
}

// DecimalHoursToCivilTime splits decimal hours into a clock time.
func DecimalHoursToCivilTime(h float64) HMS {
	return hms(h)
}

// LocalCivilTimeToUniversalTime returns the Universal Time and Greenwich
// date of a local civil time.
func LocalCivilTimeToUniversalTime(lt LocalTime) (HMS, Date) {
	t := lt.internal()
	return hms(t.UT()), dateOf(t.GreenwichDate())
}

// UniversalTimeToLocalCivilTime returns the local civil time and local date
// of a Universal Time on Greenwich date gd.
func UniversalTimeToLocalCivilTime(ut HMS, z Zone, gd Date) (HMS, Date) {
	lct, d := timeutil.UTToLocal(ut.Decimal(), z.dst(), z.Correction, gd.internal())
	return hms(lct), dateOf(d)
}

// UniversalTimeToGreenwichSiderealTime converts UT on Greenwich date gd to
// Greenwich sidereal time.
func UniversalTimeToGreenwichSiderealTime(ut HMS, gd Date) HMS {
	return hms(timeutil.UTToGST(ut.Decimal(), gd.internal()))
}

// ambiguousUT is the length of the UT day's first stretch (hours) in which
// each sidereal time occurs twice.
const ambiguousUT = 0.065574

// GreenwichSiderealTimeToUniversalTime converts Greenwich sidereal time on
// Greenwich date gd to UT. A UT inside the first 0.065574 h of the day is
// returned with ErrAmbiguousSiderealTime; the other solution lies 23h56m
// later.
func GreenwichSiderealTimeToUniversalTime(gst HMS, gd Date) (HMS, error) {
	ut := timeutil.GSTToUT(gst.Decimal(), gd.internal())
	if ut < ambiguousUT {
		return hms(ut), ErrAmbiguousSiderealTime
	}
	return hms(ut), nil
}

// GreenwichSiderealTimeToLocalSiderealTime converts GST to the local
// sidereal time at longitude lon (degrees, east positive).
func GreenwichSiderealTimeToLocalSiderealTime(gst HMS, lon float64) HMS {
	return hms(timeutil.GSTToLST(gst.Decimal(), lon))
}

// LocalSiderealTimeToGreenwichSiderealTime is the inverse of
// GreenwichSiderealTimeToLocalSiderealTime.
func LocalSiderealTimeToGreenwichSiderealTime(lst HMS, lon float64) HMS {
	return hms(timeutil.LSTToGST(lst.Decimal(), lon))
}

// JulianDay returns the Julian Date of d. The calendar is Gregorian from
// 15 October 1582 and Julian before.
func JulianDay(d Date) float64 {
	return d.internal().JD()
}

// JulianDayToDate returns the calendar date of jd; the fractional day holds
// the time of day.
func JulianDayToDate(jd float64) Date {
	day, month, year := timeutil.JDToCivil(jd)
	return Date{Day: day, Month: month, Year: year}
}

// DayOfWeek returns the day of the week of the civil day containing jd.
func DayOfWeek(jd float64) time.Weekday {
	return time.Weekday(timeutil.DayOfWeek(jd))
}
