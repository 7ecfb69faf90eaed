package planet

import (
	"math"
	"testing"

	"github.com/thurmanmarka/practicalastro/internal/coords"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

var nov2003 = timeutil.Date{Day: 22, Month: 11, Year: 2003}

func equatorialParts(lon, lat float64, d timeutil.Date) (h, m int, s, dd, dm, ds float64) {
	ra, dec := coords.EclipticToEquatorial(lon, lat, coords.Obliquity(d))
	h, m, s = timeutil.HoursParts(ra / 15.0)
	dd, dm, ds = timeutil.DegreesParts(dec)
	return
}

func TestPreciseJupiter(t *testing.T) {
	lt := timeutil.At(0, 0, 0, nov2003)
	c, err := Position(lt, Jupiter)
	if err != nil {
		t.Fatalf("Position() error = %v", err)
	}

	h, m, s, dd, dm, ds := equatorialParts(c.Longitude, c.Latitude, nov2003)
	if h != 11 || m != 10 || s != 30.99 {
		t.Errorf("RA = %dh %dm %vs, want 11h 10m 30.99s", h, m, s)
	}
	if dd != 6 || dm != 25 || ds != 49.46 {
		t.Errorf("Dec = %vd %vm %vs, want 6d 25m 49.46s", dd, dm, ds)
	}

	if got := timeutil.Round(c.Distance, 5); got != 5.59829 {
		t.Errorf("Distance = %v, want 5.59829", got)
	}
	lh, lm, ls := timeutil.HoursParts(c.Distance * 0.1386)
	if lh != 0 || lm != 46 || ls != 33.32 {
		t.Errorf("light time = %d:%02d:%v, want 0:46:33.32", lh, lm, ls)
	}

	phase := 0.5 * (1.0 + timeutil.CosD(c.Longitude-c.OrbitalLongitude))
	if got := timeutil.Round(phase, 2); got != 0.99 {
		t.Errorf("phase = %v, want 0.99", got)
	}
}

func TestApproximateJupiter(t *testing.T) {
	jupiter := Elements{
		Period: 11.857911, Longitude: 337.917132, Perihelion: 14.6633,
		Eccentricity: 0.048907, Axis: 5.20278, Inclination: 1.3035, Node: 100.595,
	}
	earth := Elements{
		Period: 0.999996, Longitude: 99.556772, Perihelion: 103.2055,
		Eccentricity: 0.016671, Axis: 0.999985,
	}

	lt := timeutil.At(0, 0, 0, nov2003)
	lon, lat := Approximate(lt, jupiter, earth)

	h, m, s, dd, dm, ds := equatorialParts(lon, lat, lt.GreenwichDate())
	if h != 11 || m != 11 || s != 13.8 {
		t.Errorf("RA = %dh %dm %vs, want 11h 11m 13.8s", h, m, s)
	}
	if dd != 6 || dm != 21 || ds != 25.1 {
		t.Errorf("Dec = %vd %vm %vs, want 6d 21m 25.1s", dd, dm, ds)
	}

	// Both models agree to well under a degree.
	c, err := Position(lt, Jupiter)
	if err != nil {
		t.Fatal(err)
	}
	if d := math.Abs(lon - c.Longitude); d > 0.5 {
		t.Errorf("approximate %v vs precise %v", lon, c.Longitude)
	}
}

func TestAllPlanetsConverge(t *testing.T) {
	dates := []timeutil.Date{
		{Day: 1, Month: 1, Year: 1900},
		{Day: 15, Month: 6, Year: 1987},
		nov2003,
		{Day: 31, Month: 12, Year: 2050},
	}

	for id := Mercury; id <= Neptune; id++ {
		for _, d := range dates {
			c, err := Position(timeutil.At(12, 0, 0, d), id)
			if err != nil {
				t.Errorf("%v on %+v: %v", id, d, err)
				continue
			}
			if c.Longitude < 0 || c.Longitude >= 360 {
				t.Errorf("%v longitude %v out of range", id, c.Longitude)
			}
			if math.Abs(c.Latitude) > 10 {
				t.Errorf("%v latitude %v too large", id, c.Latitude)
			}
			if c.Distance <= 0 || c.RadiusVector <= 0 {
				t.Errorf("%v distance %v radius %v", id, c.Distance, c.RadiusVector)
			}
		}
	}
}

func TestRadiusVectorNearAxis(t *testing.T) {
	lt := timeutil.At(0, 0, 0, nov2003)
	for id := Mercury; id <= Neptune; id++ {
		c, err := Position(lt, id)
		if err != nil {
			t.Fatal(err)
		}
		a := secular[id].axis
		if c.RadiusVector < a*0.75 || c.RadiusVector > a*1.25 {
			t.Errorf("%v radius vector %v, axis %v", id, c.RadiusVector, a)
		}
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in   string
		want ID
		ok   bool
	}{
		{"Jupiter", Jupiter, true},
		{"neptune", Neptune, true},
		{"MERCURY", Mercury, true},
		{"Earth", 0, false},
		{"Pluto", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseID(tt.in)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("ParseID(%q) = %v, %v", tt.in, got, ok)
			}
		})
	}
	if _, err := Position(timeutil.At(0, 0, 0, nov2003), ID(9)); err == nil {
		t.Errorf("Position(ID(9)) returned nil error")
	}
}
