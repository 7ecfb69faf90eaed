package main

import (
	"fmt"
	"io"
	"reflect"
	"time"

	"github.com/thurmanmarka/practicalastro"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// check is one worked example: the value computed by the library and the
// published reference value.
type check struct {
	name      string
	got, want interface{}
}

type (
	hms  = practicalastro.HMS
	dms  = practicalastro.DMS
	date = practicalastro.Date
	hm   = practicalastro.HourMinute
)

func localTime(h, m, s float64, zone int, dst bool, d date) practicalastro.LocalTime {
	return practicalastro.LocalTime{
		Clock: hms{Hours: h, Minutes: m, Seconds: s},
		Zone:  practicalastro.Zone{DaylightSaving: dst, Correction: zone},
		Date:  d,
	}
}

func pair(a, b interface{}) [2]interface{} { return [2]interface{}{a, b} }

func datetimeChecks() []check {
	lct := localTime(3, 37, 0, 4, true, date{Day: 1, Month: 7, Year: 2013})
	ut, gd := practicalastro.LocalCivilTimeToUniversalTime(lct)
	back, ld := practicalastro.UniversalTimeToLocalCivilTime(ut, lct.Zone, gd)

	gst := practicalastro.UniversalTimeToGreenwichSiderealTime(hms{Hours: 14, Minutes: 36, Seconds: 51.67}, date{Day: 22, Month: 4, Year: 1980})
	ut2, err := practicalastro.GreenwichSiderealTimeToUniversalTime(gst, date{Day: 22, Month: 4, Year: 1980})
	lst := practicalastro.GreenwichSiderealTimeToLocalSiderealTime(hms{Hours: 4, Minutes: 40, Seconds: 5.23}, -64)

	return []check{
		{"easter 2003", practicalastro.EasterDate(2003), date{Day: 20, Month: 4, Year: 2003}},
		{"day number 1/1/2000", practicalastro.DayNumber(date{Day: 1, Month: 1, Year: 2000}), 1},
		{"day number 1/3/2000", practicalastro.DayNumber(date{Day: 1, Month: 3, Year: 2000}), 61},
		{"day number 1/6/2003", practicalastro.DayNumber(date{Day: 1, Month: 6, Year: 2003}), 152},
		{"day number 27/11/2009", practicalastro.DayNumber(date{Day: 27, Month: 11, Year: 2009}), 331},
		{"civil time to decimal hours", round8(practicalastro.CivilTimeToDecimalHours(hms{Hours: 18, Minutes: 31, Seconds: 27})), 18.52416667},
		{"decimal hours to civil time", practicalastro.DecimalHoursToCivilTime(practicalastro.CivilTimeToDecimalHours(hms{Hours: 18, Minutes: 31, Seconds: 27})), hms{Hours: 18, Minutes: 31, Seconds: 27}},
		{"local civil time to UT", pair(ut, gd), pair(hms{Hours: 22, Minutes: 37}, date{Day: 30, Month: 6, Year: 2013})},
		{"UT to local civil time", pair(back, ld), pair(hms{Hours: 3, Minutes: 37}, date{Day: 1, Month: 7, Year: 2013})},
		{"UT to GST", gst, hms{Hours: 4, Minutes: 40, Seconds: 5.23}},
		{"GST to UT", pair(ut2, err), pair(hms{Hours: 14, Minutes: 36, Seconds: 51.67}, nil)},
		{"GST to LST", lst, hms{Minutes: 24, Seconds: 5.23}},
		{"LST to GST", practicalastro.LocalSiderealTimeToGreenwichSiderealTime(lst, -64), hms{Hours: 4, Minutes: 40, Seconds: 5.23}},
		{"day of week", practicalastro.DayOfWeek(2455001.5), time.Friday},
	}
}

func coordinateChecks() []check {
	lt := localTime(14, 36, 51.67, -4, false, date{Day: 22, Month: 4, Year: 1980})
	ha := practicalastro.RightAscensionToHourAngle(hms{Hours: 18, Minutes: 32, Seconds: 21}, lt, -64)

	hz := practicalastro.EquatorialToHorizon(hms{Hours: 5, Minutes: 51, Seconds: 44}, dms{Degrees: 23, Minutes: 13, Seconds: 10}, 52)
	ha2, dec2 := practicalastro.HorizonToEquatorial(hz, 52)

	gd := date{Day: 6, Month: 7, Year: 2009}
	ecl := practicalastro.Ecliptic{
		Longitude: dms{Degrees: 139, Minutes: 41, Seconds: 10},
		Latitude:  dms{Degrees: 4, Minutes: 52, Seconds: 31},
	}
	eq := practicalastro.EclipticToEquatorial(ecl, gd)

	gal := practicalastro.EquatorialToGalactic(practicalastro.Equatorial{
		RA:  hms{Hours: 10, Minutes: 21},
		Dec: dms{Degrees: 10, Minutes: 3, Seconds: 11},
	})

	rs, err := practicalastro.RisingAndSetting(practicalastro.Equatorial{
		RA:  hms{Hours: 23, Minutes: 39, Seconds: 20},
		Dec: dms{Degrees: 21, Minutes: 42},
	}, date{Day: 24, Month: 8, Year: 2010}, 64, 30, 0.5667)

	prec := practicalastro.CorrectForPrecession(practicalastro.Equatorial{
		RA:  hms{Hours: 9, Minutes: 10, Seconds: 43},
		Dec: dms{Degrees: 14, Minutes: 23, Seconds: 25},
	}, date{Day: 0.923, Month: 1, Year: 1950}, date{Day: 1, Month: 6, Year: 1979})

	dl, de := practicalastro.NutationInEclipticLongitudeAndObliquity(date{Day: 1, Month: 9, Year: 1988})

	ab := practicalastro.CorrectForAberration(hms{}, date{Day: 8, Month: 9, Year: 1988}, practicalastro.Ecliptic{
		Longitude: dms{Degrees: 352, Minutes: 37, Seconds: 10.1},
		Latitude:  dms{Degrees: -1, Minutes: 32, Seconds: 56.4},
	})

	refr, refrErr := practicalastro.AtmosphericRefraction(practicalastro.Equatorial{
		RA:  hms{Hours: 23, Minutes: 14},
		Dec: dms{Degrees: 40, Minutes: 10},
	}, practicalastro.CoordinateTrue, 0.17, 51.203611, localTime(1, 1, 24, 0, false, date{Day: 23, Month: 3, Year: 1987}), 1012, 21.7)

	par, parErr := practicalastro.CorrectionsForGeocentricParallax(practicalastro.Equatorial{
		RA:  hms{Hours: 22, Minutes: 35, Seconds: 19},
		Dec: dms{Degrees: -7, Minutes: 41, Seconds: 13},
	}, practicalastro.CoordinateTrue, 1.019167, -100, 50, 60, localTime(10, 45, 0, -6, false, date{Day: 26, Month: 2, Year: 1979}))

	hlon, hlat := practicalastro.HeliographicCoordinates(220, 10.5, date{Day: 1, Month: 5, Year: 1988})

	return []check{
		{"angle to decimal degrees", round6(practicalastro.AngleToDecimalDegrees(dms{Degrees: 182, Minutes: 31, Seconds: 27})), 182.524167},
		{"decimal degrees to angle", practicalastro.DecimalDegreesToAngle(182.524167), dms{Degrees: 182, Minutes: 31, Seconds: 27}},
		{"right ascension to hour angle", ha, hms{Hours: 9, Minutes: 52, Seconds: 23.66}},
		{"hour angle to right ascension", practicalastro.HourAngleToRightAscension(ha, lt, -64), hms{Hours: 18, Minutes: 32, Seconds: 21}},
		{"equatorial to horizon", hz, practicalastro.Horizon{
			Azimuth:  dms{Degrees: 283, Minutes: 16, Seconds: 15.7},
			Altitude: dms{Degrees: 19, Minutes: 20, Seconds: 3.64},
		}},
		{"horizon to equatorial", pair(ha2, dec2), pair(hms{Hours: 5, Minutes: 51, Seconds: 44}, dms{Degrees: 23, Minutes: 13, Seconds: 10})},
		{"mean obliquity", round8(practicalastro.MeanObliquityOfTheEcliptic(gd)), 23.43805531},
		{"ecliptic to equatorial", eq, practicalastro.Equatorial{
			RA:  hms{Hours: 9, Minutes: 34, Seconds: 53.4},
			Dec: dms{Degrees: 19, Minutes: 32, Seconds: 8.52},
		}},
		{"equatorial to ecliptic", practicalastro.EquatorialToEcliptic(eq, gd), practicalastro.Ecliptic{
			Longitude: dms{Degrees: 139, Minutes: 41, Seconds: 9.97},
			Latitude:  dms{Degrees: 4, Minutes: 52, Seconds: 30.99},
		}},
		{"equatorial to galactic", gal, practicalastro.Galactic{
			Longitude: dms{Degrees: 232, Minutes: 14, Seconds: 52.38},
			Latitude:  dms{Degrees: 51, Minutes: 7, Seconds: 20.16},
		}},
		{"galactic to equatorial", practicalastro.GalacticToEquatorial(gal), practicalastro.Equatorial{
			RA:  hms{Hours: 10, Minutes: 21},
			Dec: dms{Degrees: 10, Minutes: 3, Seconds: 11},
		}},
		{"angle between two objects", practicalastro.AngleBetweenTwoObjects(
			practicalastro.Equatorial{RA: hms{Hours: 5, Minutes: 13, Seconds: 31.7}, Dec: dms{Degrees: -8, Minutes: 13, Seconds: 30}},
			practicalastro.Equatorial{RA: hms{Hours: 6, Minutes: 44, Seconds: 13.4}, Dec: dms{Degrees: -16, Minutes: 41, Seconds: 11}},
			practicalastro.AngleHours,
		), dms{Degrees: 23, Minutes: 40, Seconds: 25.86}},
		{"rising and setting", []interface{}{rs.Rise.Time, rs.Set.Time, rs.Rise.Azimuth, rs.Set.Azimuth, err},
			[]interface{}{hm{Hour: 14, Minute: 16}, hm{Hour: 4, Minute: 10}, 64.36, 295.64, nil}},
		{"precession", prec, practicalastro.Equatorial{
			RA:  hms{Hours: 9, Minutes: 12, Seconds: 20.18},
			Dec: dms{Degrees: 14, Minutes: 16, Seconds: 9.12},
		}},
		{"nutation", pair(round(dl, 9), round(de, 7)), pair(0.001525808, 0.0025671)},
		{"aberration", ab, practicalastro.Ecliptic{
			Longitude: dms{Degrees: 352, Minutes: 37, Seconds: 30.45},
			Latitude:  dms{Degrees: -1, Minutes: 32, Seconds: 56.33},
		}},
		{"atmospheric refraction", pair(refr, refrErr), pair(practicalastro.Equatorial{
			RA:  hms{Hours: 23, Minutes: 13, Seconds: 44.74},
			Dec: dms{Degrees: 40, Minutes: 19, Seconds: 45.76},
		}, nil)},
		{"geocentric parallax", pair(par, parErr), pair(practicalastro.Equatorial{
			RA:  hms{Hours: 22, Minutes: 36, Seconds: 43.22},
			Dec: dms{Degrees: -8, Minutes: 32, Seconds: 17.4},
		}, nil)},
		{"heliographic coordinates", pair(hlon, hlat), pair(142.59, -19.94)},
		{"Carrington rotation", practicalastro.CarringtonRotationNumber(date{Day: 27, Month: 1, Year: 1975}), 1624},
		{"selenographic sub-Earth", practicalastro.SelenographicCoordinates1(date{Day: 1, Month: 5, Year: 1988}),
			practicalastro.SubEarthPoint{Longitude: -4.88, Latitude: 4.04, PositionAngleOfPole: 19.78}},
		{"selenographic sub-solar", practicalastro.SelenographicCoordinates2(date{Day: 1, Month: 5, Year: 1988}),
			practicalastro.SubSolarPoint{Longitude: 6.81, Colongitude: 83.19, Latitude: 1.19}},
	}
}

func sunChecks() []check {
	dist, size := practicalastro.SunDistanceAndAngularSize(localTime(0, 0, 0, 0, false, date{Day: 27, Month: 7, Year: 1988}))
	rs, rsErr := practicalastro.SunriseAndSunset(date{Day: 10, Month: 3, Year: 1986}, practicalastro.Zone{Correction: -5}, -71.05, 42.37)
	tw, twErr := practicalastro.MorningAndEveningTwilight(date{Day: 7, Month: 9, Year: 1979}, practicalastro.Zone{}, 0, 52, practicalastro.TwilightAstronomical)
	_, eot := practicalastro.EquationOfTime(date{Day: 27, Month: 7, Year: 2010})

	return []check{
		{"approximate position of the Sun", practicalastro.ApproximatePositionOfSun(localTime(0, 0, 0, 0, false, date{Day: 27, Month: 7, Year: 2003})), practicalastro.Equatorial{
			RA:  hms{Hours: 8, Minutes: 23, Seconds: 33.73},
			Dec: dms{Degrees: 19, Minutes: 21, Seconds: 14.33},
		}},
		{"precise position of the Sun", practicalastro.PrecisePositionOfSun(localTime(0, 0, 0, 0, false, date{Day: 27, Month: 7, Year: 1988})), practicalastro.Equatorial{
			RA:  hms{Hours: 8, Minutes: 26, Seconds: 3.83},
			Dec: dms{Degrees: 19, Minutes: 12, Seconds: 49.72},
		}},
		{"Sun distance and size", pair(dist, size), pair(151920130.0, dms{Minutes: 31, Seconds: 29.93})},
		{"sunrise and sunset", []interface{}{rs.Rise.Time, rs.Set.Time, rs.Rise.Azimuth, rs.Set.Azimuth, rsErr},
			[]interface{}{hm{Hour: 6, Minute: 5}, hm{Hour: 17, Minute: 45}, 94.83, 265.43, nil}},
		{"astronomical twilight", []interface{}{tw.Begin, tw.End, twErr},
			[]interface{}{hm{Hour: 3, Minute: 17}, hm{Hour: 20, Minute: 37}, nil}},
		{"equation of time", pair(eot.Minutes, eot.Seconds), pair(6.0, 31.52)},
		{"solar elongation", practicalastro.SolarElongation(practicalastro.Equatorial{
			RA:  hms{Hours: 10, Minutes: 6, Seconds: 45},
			Dec: dms{Degrees: 11, Minutes: 57, Seconds: 27},
		}, date{Day: 27.8333333, Month: 7, Year: 2010}), 24.78},
	}
}

func moonChecks() []check {
	lt := localTime(0, 0, 0, 0, false, date{Day: 1, Month: 9, Year: 2003})
	phase, limb := practicalastro.MoonPhase(lt, practicalastro.AccuracyApproximate)
	dist, diam, hp := practicalastro.MoonDistAngDiamHorParallax(lt)
	nm, fm := practicalastro.TimesOfNewMoonAndFullMoon(date{Day: 1, Month: 9, Year: 2003}, practicalastro.Zone{})
	rs, err := practicalastro.MoonriseAndMoonset(date{Day: 6, Month: 3, Year: 1986}, practicalastro.Zone{Correction: -5}, -71.05, 42.3667)
	mar6 := date{Day: 6, Month: 3, Year: 1986}

	return []check{
		{"approximate position of the Moon", practicalastro.ApproximatePositionOfMoon(lt), practicalastro.Equatorial{
			RA:  hms{Hours: 14, Minutes: 12, Seconds: 42.31},
			Dec: dms{Degrees: -11, Minutes: 31, Seconds: 38.27},
		}},
		{"precise position of the Moon", practicalastro.PrecisePositionOfMoon(lt), practicalastro.MoonPosition{
			Equatorial: practicalastro.Equatorial{
				RA:  hms{Hours: 14, Minutes: 12, Seconds: 10.21},
				Dec: dms{Degrees: -11, Minutes: 34, Seconds: 57.83},
			},
			Distance:           367964,
			HorizontalParallax: 0.993191,
		}},
		{"Moon phase", pair(phase, limb), pair(0.22, -71.58)},
		{"Moon distance, diameter, parallax", []interface{}{dist, diam, hp},
			[]interface{}{367964.0, dms{Minutes: 32}, dms{Minutes: 59, Seconds: 35.49}}},
		{"new moon", nm, practicalastro.LunarEvent{Time: hm{Hour: 17, Minute: 27}, Date: date{Day: 27, Month: 8, Year: 2003}}},
		{"full moon", fm, practicalastro.LunarEvent{Time: hm{Hour: 16, Minute: 36}, Date: date{Day: 10, Month: 9, Year: 2003}}},
		{"moonrise and moonset", pair(rs, err), pair(practicalastro.RiseSetTimes{
			Rise: practicalastro.Crossing{Time: hm{Hour: 4, Minute: 21}, Date: mar6, Azimuth: 127.34},
			Set:  practicalastro.Crossing{Time: hm{Hour: 13, Minute: 8}, Date: mar6, Azimuth: 234.05},
		}, nil)},
	}
}

func planetChecks() []check {
	lt := localTime(0, 0, 0, 0, false, date{Day: 22, Month: 11, Year: 2003})
	approx, err1 := practicalastro.ApproximatePositionOfPlanet(lt, "Jupiter")
	precise, err2 := practicalastro.PrecisePositionOfPlanet(lt, "Jupiter")
	asp, err3 := practicalastro.VisualAspectsOfAPlanet(lt, "Jupiter")

	halley, err4 := practicalastro.PositionOfEllipticalComet(localTime(0, 0, 0, 0, false, date{Day: 1, Month: 1, Year: 1984}), "Halley")
	kohler, err5 := practicalastro.PositionOfParabolicComet(localTime(0, 0, 0, 0, false, date{Day: 25, Month: 12, Year: 1977}), "Kohler")
	pa, sep, err6 := practicalastro.BinaryStarOrbit(date{Day: 1, Month: 1, Year: 1980}, "eta-Cor")

	return []check{
		{"approximate position of Jupiter", pair(approx, err1), pair(practicalastro.Equatorial{
			RA:  hms{Hours: 11, Minutes: 11, Seconds: 13.8},
			Dec: dms{Degrees: 6, Minutes: 21, Seconds: 25.1},
		}, nil)},
		{"precise position of Jupiter", pair(precise, err2), pair(practicalastro.Equatorial{
			RA:  hms{Hours: 11, Minutes: 10, Seconds: 30.99},
			Dec: dms{Degrees: 6, Minutes: 25, Seconds: 49.46},
		}, nil)},
		{"visual aspects of Jupiter", pair(asp, err3), pair(practicalastro.PlanetAspects{
			Distance:        5.59829,
			AngularDiameter: 35.1,
			Phase:           0.99,
			LightTime:       hms{Minutes: 46, Seconds: 33.32},
			BrightLimbAngle: 113.2,
			Magnitude:       -2.0,
		}, nil)},
		{"Halley's comet", pair(halley, err4), pair(practicalastro.CometPosition{
			Equatorial: practicalastro.Equatorial{RA: hms{Hours: 6, Minutes: 29}, Dec: dms{Degrees: 10, Minutes: 13}},
			Distance:   8.13,
		}, nil)},
		{"comet Kohler", pair(kohler, err5), pair(practicalastro.CometPosition{
			Equatorial: practicalastro.Equatorial{
				RA:  hms{Hours: 23, Minutes: 17, Seconds: 11.53},
				Dec: dms{Degrees: -33, Minutes: 42, Seconds: 26.42},
			},
			Distance: 1.11,
		}, nil)},
		{"binary eta-Cor", []interface{}{pa, sep, err6}, []interface{}{318.5, 0.41, nil}},
	}
}

func eclipseChecks() []check {
	d := date{Day: 1, Month: 4, Year: 2015}
	lk, ld := practicalastro.LunarEclipseOccurrence(d, practicalastro.Zone{Correction: 10})
	l := practicalastro.LunarEclipseCircumstances(d, practicalastro.Zone{Correction: 10})
	sk, sd := practicalastro.SolarEclipseOccurrence(d, practicalastro.Zone{})
	s := practicalastro.SolarEclipseCircumstances(date{Day: 20, Month: 3, Year: 2015}, practicalastro.Zone{}, 0, 68.65)

	at := func(h, m int) practicalastro.Contact {
		return practicalastro.Contact{UT: hm{Hour: h, Minute: m}, OK: true}
	}
	return []check{
		{"lunar eclipse occurrence", pair(lk, ld), pair(practicalastro.EclipseCertain, date{Day: 4, Month: 4, Year: 2015})},
		{"lunar eclipse contacts", []practicalastro.Contact{l.PenumbralStart, l.UmbralStart, l.TotalStart, l.Maximum, l.TotalEnd, l.UmbralEnd, l.PenumbralEnd},
			[]practicalastro.Contact{at(9, 0), at(10, 16), at(11, 55), at(12, 1), at(12, 7), at(13, 46), at(15, 1)}},
		{"lunar eclipse magnitude", l.Magnitude, 1.01},
		{"solar eclipse occurrence", pair(sk, sd), pair(practicalastro.EclipseCertain, date{Day: 20, Month: 3, Year: 2015})},
		{"solar eclipse contacts", []practicalastro.Contact{s.FirstContact, s.Maximum, s.LastContact},
			[]practicalastro.Contact{at(8, 55), at(9, 57), at(10, 58)}},
		{"solar eclipse magnitude", s.Magnitude, 1.016},
	}
}

func round(x float64, places int) float64 { return timeutil.Round(x, places) }
func round6(x float64) float64            { return round(x, 6) }
func round8(x float64) float64            { return round(x, 8) }

// runRegression evaluates every worked example, prints one line per check
// to w and returns the number that failed.
func runRegression(w io.Writer) int {
	groups := []struct {
		name   string
		checks []check
	}{
		{"datetime", datetimeChecks()},
		{"coordinates", coordinateChecks()},
		{"sun", sunChecks()},
		{"moon", moonChecks()},
		{"planets, comets, binaries", planetChecks()},
		{"eclipses", eclipseChecks()},
	}

	failed, total := 0, 0
	for _, g := range groups {
		fmt.Fprintf(w, "== %s\n", g.name)
		for _, c := range g.checks {
			total++
			if reflect.DeepEqual(c.got, c.want) {
				fmt.Fprintf(w, "ok    %s\n", c.name)
				continue
			}
			failed++
			fmt.Fprintf(w, "FAIL  %s: got %+v, want %+v\n", c.name, c.got, c.want)
		}
	}
	fmt.Fprintf(w, "\n%d/%d checks passed\n", total-failed, total)
	return failed
}
