package refdata

import (
	"testing"

	"github.com/pkg/errors"
)

func TestTablesDecode(t *testing.T) {
	if _, err := load(); err != nil {
		t.Fatalf("load() error = %v", err)
	}

	tests := []struct {
		name  string
		names []string
		want  int
		first string
		last  string
	}{
		{"planets", Planets().Names(), 8, "Mercury", "Neptune"},
		{"elliptical", EllipticalComets().Names(), 15, "Encke", "Halley"},
		{"parabolic", ParabolicComets().Names(), 1, "Kohler", "Kohler"},
		{"binaries", Binaries().Names(), 10, "eta-Cor", "alpha Sco"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.names) != tt.want {
				t.Fatalf("len = %d, want %d", len(tt.names), tt.want)
			}
			if tt.names[0] != tt.first || tt.names[len(tt.names)-1] != tt.last {
				t.Errorf("order = %v", tt.names)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	j, err := Planets().Lookup("Jupiter")
	if err != nil {
		t.Fatal(err)
	}
	if j.Period != 11.857911 || j.Theta0 != 196.74 || j.V0 != -9.4 {
		t.Errorf("Jupiter = %+v", j)
	}

	e, err := Planets().Lookup("Earth")
	if err != nil {
		t.Fatal(err)
	}
	if e.HasDisc() || !j.HasDisc() {
		t.Errorf("HasDisc Earth=%v Jupiter=%v", e.HasDisc(), j.HasDisc())
	}

	h, err := EllipticalComets().Lookup("Halley")
	if err != nil {
		t.Fatal(err)
	}
	if h.Eccentricity != 0.9673 || h.Epoch != 1986.112 {
		t.Errorf("Halley = %+v", h)
	}

	k, err := ParabolicComets().Lookup("Kohler")
	if err != nil {
		t.Fatal(err)
	}
	if k.PerihelionDay != 10.5659 || k.PerihelionMonth != 11 || k.PerihelionYear != 1977 {
		t.Errorf("Kohler = %+v", k)
	}

	b, err := Binaries().Lookup("alpha-CMi")
	if err != nil {
		t.Fatal(err)
	}
	if b.NodeAngle != 284.3 {
		t.Errorf("alpha-CMi = %+v", b)
	}
}

func TestLookupNotFound(t *testing.T) {
	for _, name := range []string{"jupiter", "Pluto", ""} {
		if _, err := Planets().Lookup(name); !errors.Is(err, ErrNotFound) {
			t.Errorf("Lookup(%q) error = %v, want ErrNotFound", name, err)
		}
	}
	if _, err := Binaries().Lookup("aplah-CMi"); !errors.Is(err, ErrNotFound) {
		t.Errorf("misspelt binary found, err = %v", err)
	}
}

func TestNamesIsACopy(t *testing.T) {
	n := Planets().Names()
	n[0] = "Vulcan"
	if Planets().Names()[0] != "Mercury" {
		t.Errorf("Names() shares its backing array")
	}
}
