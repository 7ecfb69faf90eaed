package practicalastro

import (
	"errors"
	"testing"
)

func TestPositionOfPlanet(t *testing.T) {
	lt := lct(0, 0, 0, 0, false, Date{Day: 22, Month: 11, Year: 2003})

	tests := []struct {
		name string
		fn   func(LocalTime, string) (Equatorial, error)
		want Equatorial
	}{
		{"approximate", ApproximatePositionOfPlanet, Equatorial{
			RA:  HMS{Hours: 11, Minutes: 11, Seconds: 13.8},
			Dec: DMS{Degrees: 6, Minutes: 21, Seconds: 25.1},
		}},
		{"precise", PrecisePositionOfPlanet, Equatorial{
			RA:  HMS{Hours: 11, Minutes: 10, Seconds: 30.99},
			Dec: DMS{Degrees: 6, Minutes: 25, Seconds: 49.46},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(lt, "Jupiter")
			if err != nil {
				t.Fatalf("Jupiter: %v", err)
			}
			if got != tt.want {
				t.Errorf("Jupiter = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPositionOfPlanetErrors(t *testing.T) {
	lt := lct(0, 0, 0, 0, false, Date{Day: 22, Month: 11, Year: 2003})

	if _, err := ApproximatePositionOfPlanet(lt, "Pluto"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Pluto: err = %v, want ErrNotFound", err)
	}
	if _, err := PrecisePositionOfPlanet(lt, "Earth"); !errors.Is(err, ErrNotApplicable) {
		t.Errorf("Earth: err = %v, want ErrNotApplicable", err)
	}
	if _, err := VisualAspectsOfAPlanet(lt, "Earth"); !errors.Is(err, ErrNotApplicable) {
		t.Errorf("Earth aspects: err = %v, want ErrNotApplicable", err)
	}
}

func TestPlanets(t *testing.T) {
	names := Planets()
	if len(names) != 8 {
		t.Fatalf("Planets() = %v, want the eight planets", names)
	}
	for _, n := range names {
		if n == "Earth" {
			continue
		}
		if _, err := ApproximatePositionOfPlanet(lct(0, 0, 0, 0, false, Date{Day: 1, Month: 1, Year: 2010}), n); err != nil {
			t.Errorf("%s: %v", n, err)
		}
	}
}

func TestVisualAspectsOfAPlanet(t *testing.T) {
	got, err := VisualAspectsOfAPlanet(lct(0, 0, 0, 0, false, Date{Day: 22, Month: 11, Year: 2003}), "Jupiter")
	if err != nil {
		t.Fatalf("VisualAspectsOfAPlanet: %v", err)
	}
	want := PlanetAspects{
		Distance:        5.59829,
		AngularDiameter: 35.1,
		Phase:           0.99,
		LightTime:       HMS{Minutes: 46, Seconds: 33.32},
		BrightLimbAngle: 113.2,
		Magnitude:       -2.0,
	}
	if got != want {
		t.Errorf("VisualAspectsOfAPlanet = %+v, want %+v", got, want)
	}
}

func TestPlanetRisingAndSetting(t *testing.T) {
	d := Date{Day: 22, Month: 11, Year: 2003}
	rs, err := PlanetRisingAndSetting(d, Zone{Correction: -5}, -71.05, 42.37, "Jupiter")
	if err != nil {
		t.Fatalf("PlanetRisingAndSetting: %v", err)
	}
	t.Logf("Jupiter rise %+v set %+v", rs.Rise, rs.Set)

	// Jupiter sits a few degrees north of the equator: it rises a little
	// north of east and sets a little north of west.
	if rs.Rise.Azimuth < 60 || rs.Rise.Azimuth > 90 {
		t.Errorf("rise azimuth = %v, want between 60 and 90", rs.Rise.Azimuth)
	}
	if rs.Set.Azimuth < 270 || rs.Set.Azimuth > 300 {
		t.Errorf("set azimuth = %v, want between 270 and 300", rs.Set.Azimuth)
	}
	if rs.Rise.Date != d || rs.Set.Date != d {
		t.Errorf("dates = %+v, %+v, want %+v", rs.Rise.Date, rs.Set.Date, d)
	}

	if _, err := PlanetRisingAndSetting(d, Zone{}, 0, 52, "Earth"); !errors.Is(err, ErrNotApplicable) {
		t.Errorf("Earth: err = %v, want ErrNotApplicable", err)
	}
}

func TestCometPosition(t *testing.T) {
	halley, err := PositionOfEllipticalComet(lct(0, 0, 0, 0, false, Date{Day: 1, Month: 1, Year: 1984}), "Halley")
	if err != nil {
		t.Fatalf("Halley: %v", err)
	}
	wantHalley := CometPosition{
		Equatorial: Equatorial{RA: HMS{Hours: 6, Minutes: 29}, Dec: DMS{Degrees: 10, Minutes: 13}},
		Distance:   8.13,
	}
	if halley != wantHalley {
		t.Errorf("Halley = %+v, want %+v", halley, wantHalley)
	}

	kohler, err := PositionOfParabolicComet(lct(0, 0, 0, 0, false, Date{Day: 25, Month: 12, Year: 1977}), "Kohler")
	if err != nil {
		t.Fatalf("Kohler: %v", err)
	}
	wantKohler := CometPosition{
		Equatorial: Equatorial{
			RA:  HMS{Hours: 23, Minutes: 17, Seconds: 11.53},
			Dec: DMS{Degrees: -33, Minutes: 42, Seconds: 26.42},
		},
		Distance: 1.11,
	}
	if kohler != wantKohler {
		t.Errorf("Kohler = %+v, want %+v", kohler, wantKohler)
	}

	if _, err := PositionOfEllipticalComet(lct(0, 0, 0, 0, false, Date{Day: 1, Month: 1, Year: 1984}), "Kohler"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Kohler as periodic: err = %v, want ErrNotFound", err)
	}
}

func TestBinaryStarOrbit(t *testing.T) {
	pa, sep, err := BinaryStarOrbit(Date{Day: 1, Month: 1, Year: 1980}, "eta-Cor")
	if err != nil {
		t.Fatalf("BinaryStarOrbit: %v", err)
	}
	if pa != 318.5 || sep != 0.41 {
		t.Errorf("eta-Cor = %v°, %v\", want 318.5°, 0.41\"", pa, sep)
	}

	if _, _, err := BinaryStarOrbit(Date{Day: 1, Month: 1, Year: 1980}, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown binary: err = %v, want ErrNotFound", err)
	}
	if len(Binaries()) == 0 || len(Comets()) == 0 {
		t.Error("reference tables are empty")
	}
}
