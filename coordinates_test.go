package practicalastro

import (
	"errors"
	"reflect"
	"testing"
)

func lct(h, m, s float64, zone int, dst bool, d Date) LocalTime {
	return LocalTime{
		Clock: HMS{Hours: h, Minutes: m, Seconds: s},
		Zone:  Zone{DaylightSaving: dst, Correction: zone},
		Date:  d,
	}
}

func TestAngleConversions(t *testing.T) {
	a := DMS{Degrees: 182, Minutes: 31, Seconds: 27}
	if got := round(AngleToDecimalDegrees(a), 6); got != 182.524167 {
		t.Errorf("AngleToDecimalDegrees(%+v) = %v, want 182.524167", a, got)
	}
	if got := DecimalDegreesToAngle(182.524167); got != a {
		t.Errorf("DecimalDegreesToAngle(182.524167) = %+v, want %+v", got, a)
	}

	neg := DMS{Degrees: -1, Minutes: 30}
	if got := AngleToDecimalDegrees(neg); got != -1.5 {
		t.Errorf("AngleToDecimalDegrees(%+v) = %v, want -1.5", neg, got)
	}
}

func TestHourAngle(t *testing.T) {
	lt := lct(14, 36, 51.67, -4, false, Date{Day: 22, Month: 4, Year: 1980})

	ha := RightAscensionToHourAngle(HMS{Hours: 18, Minutes: 32, Seconds: 21}, lt, -64)
	if want := (HMS{Hours: 9, Minutes: 52, Seconds: 23.66}); ha != want {
		t.Fatalf("hour angle = %+v, want %+v", ha, want)
	}
	if got, want := HourAngleToRightAscension(ha, lt, -64), (HMS{Hours: 18, Minutes: 32, Seconds: 21}); got != want {
		t.Errorf("right ascension = %+v, want %+v", got, want)
	}
}

func TestHorizonCoordinates(t *testing.T) {
	ha := HMS{Hours: 5, Minutes: 51, Seconds: 44}
	dec := DMS{Degrees: 23, Minutes: 13, Seconds: 10}

	hz := EquatorialToHorizon(ha, dec, 52)
	want := Horizon{
		Azimuth:  DMS{Degrees: 283, Minutes: 16, Seconds: 15.7},
		Altitude: DMS{Degrees: 19, Minutes: 20, Seconds: 3.64},
	}
	if hz != want {
		t.Fatalf("EquatorialToHorizon = %+v, want %+v", hz, want)
	}

	gotHA, gotDec := HorizonToEquatorial(hz, 52)
	if gotHA != ha || gotDec != dec {
		t.Errorf("HorizonToEquatorial = %+v %+v, want %+v %+v", gotHA, gotDec, ha, dec)
	}
}

func TestEclipticCoordinates(t *testing.T) {
	gd := Date{Day: 6, Month: 7, Year: 2009}
	if got := round(MeanObliquityOfTheEcliptic(gd), 8); got != 23.43805531 {
		t.Errorf("MeanObliquityOfTheEcliptic = %v, want 23.43805531", got)
	}

	eq := EclipticToEquatorial(Ecliptic{
		Longitude: DMS{Degrees: 139, Minutes: 41, Seconds: 10},
		Latitude:  DMS{Degrees: 4, Minutes: 52, Seconds: 31},
	}, gd)
	wantEq := Equatorial{
		RA:  HMS{Hours: 9, Minutes: 34, Seconds: 53.4},
		Dec: DMS{Degrees: 19, Minutes: 32, Seconds: 8.52},
	}
	if eq != wantEq {
		t.Fatalf("EclipticToEquatorial = %+v, want %+v", eq, wantEq)
	}

	wantEcl := Ecliptic{
		Longitude: DMS{Degrees: 139, Minutes: 41, Seconds: 9.97},
		Latitude:  DMS{Degrees: 4, Minutes: 52, Seconds: 30.99},
	}
	if got := EquatorialToEcliptic(eq, gd); got != wantEcl {
		t.Errorf("EquatorialToEcliptic = %+v, want %+v", got, wantEcl)
	}
}

func TestGalacticCoordinates(t *testing.T) {
	eq := Equatorial{RA: HMS{Hours: 10, Minutes: 21}, Dec: DMS{Degrees: 10, Minutes: 3, Seconds: 11}}

	g := EquatorialToGalactic(eq)
	want := Galactic{
		Longitude: DMS{Degrees: 232, Minutes: 14, Seconds: 52.38},
		Latitude:  DMS{Degrees: 51, Minutes: 7, Seconds: 20.16},
	}
	if g != want {
		t.Fatalf("EquatorialToGalactic = %+v, want %+v", g, want)
	}
	if got := GalacticToEquatorial(g); got != eq {
		t.Errorf("GalacticToEquatorial = %+v, want %+v", got, eq)
	}
}

func TestAngleBetweenTwoObjects(t *testing.T) {
	a := Equatorial{RA: HMS{Hours: 5, Minutes: 13, Seconds: 31.7}, Dec: DMS{Degrees: -8, Minutes: 13, Seconds: 30}}
	b := Equatorial{RA: HMS{Hours: 6, Minutes: 44, Seconds: 13.4}, Dec: DMS{Degrees: -16, Minutes: 41, Seconds: 11}}

	want := DMS{Degrees: 23, Minutes: 40, Seconds: 25.86}
	if got := AngleBetweenTwoObjects(a, b, AngleHours); got != want {
		t.Errorf("AngleBetweenTwoObjects = %+v, want %+v", got, want)
	}
}

func TestRisingAndSetting(t *testing.T) {
	eq := Equatorial{RA: HMS{Hours: 23, Minutes: 39, Seconds: 20}, Dec: DMS{Degrees: 21, Minutes: 42}}
	gd := Date{Day: 24, Month: 8, Year: 2010}

	rs, err := RisingAndSetting(eq, gd, 64, 30, 0.5667)
	if err != nil {
		t.Fatalf("RisingAndSetting: %v", err)
	}
	want := RiseSetTimes{
		Rise: Crossing{Time: HourMinute{Hour: 14, Minute: 16}, Date: gd, Azimuth: 64.36},
		Set:  Crossing{Time: HourMinute{Hour: 4, Minute: 10}, Date: gd, Azimuth: 295.64},
	}
	if rs != want {
		t.Errorf("RisingAndSetting = %+v, want %+v", rs, want)
	}
}

func TestRisingAndSettingNever(t *testing.T) {
	gd := Date{Day: 24, Month: 8, Year: 2010}
	tests := []struct {
		name string
		dec  DMS
		want error
	}{
		{"circumpolar", DMS{Degrees: 80}, ErrCircumpolar},
		{"never rises", DMS{Degrees: -80}, ErrNeverRises},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RisingAndSetting(Equatorial{RA: HMS{Hours: 3}, Dec: tt.dec}, gd, 0, 52, 0.5667)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCorrections(t *testing.T) {
	prec := CorrectForPrecession(Equatorial{
		RA:  HMS{Hours: 9, Minutes: 10, Seconds: 43},
		Dec: DMS{Degrees: 14, Minutes: 23, Seconds: 25},
	}, Date{Day: 0.923, Month: 1, Year: 1950}, Date{Day: 1, Month: 6, Year: 1979})

	dpsi, deps := NutationInEclipticLongitudeAndObliquity(Date{Day: 1, Month: 9, Year: 1988})

	ab := CorrectForAberration(HMS{}, Date{Day: 8, Month: 9, Year: 1988}, Ecliptic{
		Longitude: DMS{Degrees: 352, Minutes: 37, Seconds: 10.1},
		Latitude:  DMS{Degrees: -1, Minutes: 32, Seconds: 56.4},
	})

	tests := []struct {
		name      string
		got, want interface{}
	}{
		{"precession", prec, Equatorial{
			RA:  HMS{Hours: 9, Minutes: 12, Seconds: 20.18},
			Dec: DMS{Degrees: 14, Minutes: 16, Seconds: 9.12},
		}},
		{"nutation in longitude", round(dpsi, 9), 0.001525808},
		{"nutation in obliquity", round(deps, 7), 0.0025671},
		{"aberration", ab, Ecliptic{
			Longitude: DMS{Degrees: 352, Minutes: 37, Seconds: 30.45},
			Latitude:  DMS{Degrees: -1, Minutes: 32, Seconds: 56.33},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestAtmosphericRefraction(t *testing.T) {
	lt := lct(1, 1, 24, 0, false, Date{Day: 23, Month: 3, Year: 1987})
	eq := Equatorial{RA: HMS{Hours: 23, Minutes: 14}, Dec: DMS{Degrees: 40, Minutes: 10}}

	app, err := AtmosphericRefraction(eq, CoordinateTrue, 0.17, 51.203611, lt, 1012, 21.7)
	if err != nil {
		t.Fatalf("AtmosphericRefraction: %v", err)
	}
	want := Equatorial{
		RA:  HMS{Hours: 23, Minutes: 13, Seconds: 44.74},
		Dec: DMS{Degrees: 40, Minutes: 19, Seconds: 45.76},
	}
	if app != want {
		t.Errorf("AtmosphericRefraction = %+v, want %+v", app, want)
	}
}

func TestGeocentricParallax(t *testing.T) {
	lt := lct(10, 45, 0, -6, false, Date{Day: 26, Month: 2, Year: 1979})
	eq := Equatorial{RA: HMS{Hours: 22, Minutes: 35, Seconds: 19}, Dec: DMS{Degrees: -7, Minutes: 41, Seconds: 13}}

	got, err := CorrectionsForGeocentricParallax(eq, CoordinateTrue, 1.019167, -100, 50, 60, lt)
	if err != nil {
		t.Fatalf("CorrectionsForGeocentricParallax: %v", err)
	}
	want := Equatorial{
		RA:  HMS{Hours: 22, Minutes: 36, Seconds: 43.22},
		Dec: DMS{Degrees: -8, Minutes: 32, Seconds: 17.4},
	}
	if got != want {
		t.Errorf("CorrectionsForGeocentricParallax = %+v, want %+v", got, want)
	}
}

func TestSolarAndLunarSurfaceCoordinates(t *testing.T) {
	lon, lat := HeliographicCoordinates(220, 10.5, Date{Day: 1, Month: 5, Year: 1988})
	if lon != 142.59 || lat != -19.94 {
		t.Errorf("HeliographicCoordinates = %v, %v, want 142.59, -19.94", lon, lat)
	}

	if got := CarringtonRotationNumber(Date{Day: 27, Month: 1, Year: 1975}); got != 1624 {
		t.Errorf("CarringtonRotationNumber = %d, want 1624", got)
	}

	gd := Date{Day: 1, Month: 5, Year: 1988}
	if got, want := SelenographicCoordinates1(gd), (SubEarthPoint{Longitude: -4.88, Latitude: 4.04, PositionAngleOfPole: 19.78}); got != want {
		t.Errorf("SelenographicCoordinates1 = %+v, want %+v", got, want)
	}
	if got, want := SelenographicCoordinates2(gd), (SubSolarPoint{Longitude: 6.81, Colongitude: 83.19, Latitude: 1.19}); got != want {
		t.Errorf("SelenographicCoordinates2 = %+v, want %+v", got, want)
	}
}
