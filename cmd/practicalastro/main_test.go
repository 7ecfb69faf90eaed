package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thurmanmarka/practicalastro"
)

func TestRegression(t *testing.T) {
	var buf bytes.Buffer
	if failed := runRegression(&buf); failed != 0 {
		t.Errorf("%d worked examples failed:\n%s", failed, buf.String())
	}
	t.Log(strings.TrimSpace(buf.String()))
}

func TestLoadObserver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boston.toml")
	data := "lat = 42.3667\nlon = -71.05\nelevation = 10.0\nzone = -5\ndst = true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	o, err := loadObserver(path)
	if err != nil {
		t.Fatalf("loadObserver: %v", err)
	}
	want := observer{Lat: 42.3667, Lon: -71.05, Elevation: 10, Zone: -5, DST: true}
	if o != want {
		t.Errorf("loadObserver = %+v, want %+v", o, want)
	}
	if z := o.zone(); z != (practicalastro.Zone{DaylightSaving: true, Correction: -5}) {
		t.Errorf("zone() = %+v", z)
	}

	if _, err := loadObserver(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "observer.toml")
	if err := os.WriteFile(path, []byte("lat = 52.0\nlon = 0.0\nzone = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := newCommonFlags("test", "")
	c.fs.Init("test", flag.ContinueOnError)
	c.parse([]string{"-config", path, "-lon", "-1.5", "-elevation", "120", "-date", "2024-03-31", "-time", "14:30"})

	o := c.observer()
	if o.Lat != 52 || o.Lon != -1.5 || o.Zone != 1 || o.Elevation != 120 {
		t.Errorf("observer = %+v, want lat 52, lon -1.5, elevation 120, zone 1", o)
	}

	lt := c.localTime(o)
	want := practicalastro.LocalTime{
		Clock: practicalastro.HMS{Hours: 14, Minutes: 30},
		Zone:  practicalastro.Zone{Correction: 1},
		Date:  practicalastro.Date{Day: 31, Month: 3, Year: 2024},
	}
	if lt != want {
		t.Errorf("localTime = %+v, want %+v", lt, want)
	}
}

func TestTopocentricUsesElevation(t *testing.T) {
	o := observer{Lat: 50, Lon: -100, Elevation: 60, Zone: -6}
	lt := practicalastro.LocalTime{
		Clock: practicalastro.HMS{Hours: 10, Minutes: 45},
		Zone:  o.zone(),
		Date:  practicalastro.Date{Day: 26, Month: 2, Year: 1979},
	}
	geo := practicalastro.Equatorial{
		RA:  practicalastro.HMS{Hours: 22, Minutes: 35, Seconds: 19},
		Dec: practicalastro.DMS{Degrees: -7, Minutes: 41, Seconds: 13},
	}
	const hp = 1.019167

	got, err := o.topocentric(geo, hp, lt)
	if err != nil {
		t.Fatalf("topocentric: %v", err)
	}
	want, err := practicalastro.CorrectionsForGeocentricParallax(geo, practicalastro.CoordinateTrue, hp, o.Lon, o.Lat, 60, lt)
	if err != nil {
		t.Fatalf("CorrectionsForGeocentricParallax: %v", err)
	}
	if got != want {
		t.Errorf("topocentric = %+v, want %+v", got, want)
	}
	if got == geo {
		t.Errorf("topocentric place equals the geocentric one: %+v", got)
	}
}

func TestFormatting(t *testing.T) {
	if got := fmtHM(practicalastro.HourMinute{Hour: 6, Minute: 5}); got != "06:05" {
		t.Errorf("fmtHM = %q", got)
	}
	if got := fmtDate(practicalastro.Date{Day: 4, Month: 4, Year: 2015}); got != "2015-04-04" {
		t.Errorf("fmtDate = %q", got)
	}
	if got := fmtContact(practicalastro.Contact{}); got != "none" {
		t.Errorf("fmtContact of a missing contact = %q, want none", got)
	}
	eq := fmtEquatorial(practicalastro.Equatorial{
		RA:  practicalastro.HMS{Hours: 9, Minutes: 34, Seconds: 53.4},
		Dec: practicalastro.DMS{Degrees: 19, Minutes: 32, Seconds: 8.52},
	})
	if !strings.HasPrefix(eq, "RA ") || !strings.Contains(eq, "Dec ") {
		t.Errorf("fmtEquatorial = %q", eq)
	}
	t.Log(eq)
}

func TestParseTwilight(t *testing.T) {
	tests := map[string]practicalastro.TwilightKind{
		"civil":        practicalastro.TwilightCivil,
		"nautical":     practicalastro.TwilightNautical,
		"astronomical": practicalastro.TwilightAstronomical,
	}
	for s, want := range tests {
		if got := parseTwilight(s); got != want {
			t.Errorf("parseTwilight(%q) = %v, want %v", s, got, want)
		}
	}
}
