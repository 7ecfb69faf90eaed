package practicalastro_test

import (
	"math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/thurmanmarka/practicalastro"
)

// hourDiff is the difference of two times of day in hours, wrapped to
// [-12, 12).
func hourDiff(a, b float64) float64 {
	d := math.Mod(a-b+12, 24)
	if d < 0 {
		d += 24
	}
	return d - 12
}

var crossCheckDates = []practicalastro.Date{
	{Day: 22, Month: 4, Year: 1980},
	{Day: 27, Month: 7, Year: 1988},
	{Day: 1, Month: 1, Year: 2000},
	{Day: 29, Month: 2, Year: 2012},
	{Day: 15, Month: 10, Year: 2025},
}

func TestJulianDayAgainstMeeus(t *testing.T) {
	for _, d := range crossCheckDates {
		want := julian.CalendarGregorianToJD(d.Year, d.Month, d.Day)
		if got := practicalastro.JulianDay(d); math.Abs(got-want) > 1e-9 {
			t.Errorf("JulianDay(%+v) = %.6f, meeus %.6f", d, got, want)
		}

		y, m, day := julian.JDToCalendar(want)
		got := practicalastro.JulianDayToDate(want)
		if got.Year != y || got.Month != m || math.Abs(got.Day-day) > 1e-6 {
			t.Errorf("JulianDayToDate(%.1f) = %+v, meeus %d-%d-%v", want, got, y, m, day)
		}

		if got, want := practicalastro.DayOfWeek(want), time.Weekday(julian.DayOfWeek(want)); got != want {
			t.Errorf("DayOfWeek(%+v) = %v, meeus %v", d, got, want)
		}
		if got, want := practicalastro.IsLeapYear(d.Year), julian.LeapYearGregorian(d.Year); got != want {
			t.Errorf("IsLeapYear(%d) = %v, meeus %v", d.Year, got, want)
		}
	}
}

func TestSiderealTimeAgainstMeeus(t *testing.T) {
	ut := practicalastro.HMS{Hours: 14, Minutes: 36, Seconds: 51.67}
	for _, d := range crossCheckDates {
		gst := practicalastro.UniversalTimeToGreenwichSiderealTime(ut, d)

		jd := julian.CalendarGregorianToJD(d.Year, d.Month, d.Day+ut.Decimal()/24)
		want := math.Mod(sidereal.Mean(jd).Hour(), 24)
		if diff := hourDiff(gst.Decimal(), want); math.Abs(diff) > 5e-4 {
			t.Errorf("GST on %+v = %.6f h, meeus %.6f h", d, gst.Decimal(), want)
		}
	}
}

func TestSunPositionAgainstMeeus(t *testing.T) {
	tests := []struct {
		name      string
		fn        func(practicalastro.LocalTime) practicalastro.Equatorial
		raTol     float64 // hours
		decTol    float64 // degrees
		yearRange [2]int
	}{
		{"precise", practicalastro.PrecisePositionOfSun, 0.005, 0.03, [2]int{1980, 2030}},
		{"approximate", practicalastro.ApproximatePositionOfSun, 0.01, 0.05, [2]int{2000, 2020}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, d := range crossCheckDates {
				if d.Year < tt.yearRange[0] || d.Year > tt.yearRange[1] {
					continue
				}
				eq := tt.fn(practicalastro.LocalTime{Date: d})
				ra, dec := solar.ApparentEquatorial(julian.CalendarGregorianToJD(d.Year, d.Month, d.Day))

				if diff := hourDiff(eq.RA.Decimal(), ra.Hour()); math.Abs(diff) > tt.raTol {
					t.Errorf("%+v: RA %.5f h, meeus %.5f h", d, eq.RA.Decimal(), ra.Hour())
				}
				if diff := eq.Dec.Decimal() - dec.Deg(); math.Abs(diff) > tt.decTol {
					t.Errorf("%+v: Dec %.4f°, meeus %.4f°", d, eq.Dec.Decimal(), dec.Deg())
				}
			}
		})
	}
}
