// Package refdata holds the compiled-in reference tables: planetary elements
// at epoch 2010.0, comet elements and visual binary orbits.
//
// The tables are TOML files embedded in the binary and decoded on first use.
// Lookups are exact and case sensitive.
package refdata

import (
	_ "embed"
	"sync"

	"github.com/naoina/toml"
	"github.com/pkg/errors"
)

// ErrNotFound is returned for a name that is not in the table.
var ErrNotFound = errors.New("not found")

var (
	//go:embed planets.toml
	planetsTOML []byte
	//go:embed comets.toml
	cometsTOML []byte
	//go:embed binaries.toml
	binariesTOML []byte
)

// Planet is one row of the planetary table. Earth has no inclination, node,
// disc size or magnitude; HasDisc reports whether those are present.
type Planet struct {
	Name         string  `toml:"name"`
	Period       float64 `toml:"period"`
	Longitude    float64 `toml:"longitude"`
	Perihelion   float64 `toml:"perihelion"`
	Eccentricity float64 `toml:"eccentricity"`
	Axis         float64 `toml:"axis"`
	Inclination  float64 `toml:"inclination"`
	Node         float64 `toml:"node"`
	Theta0       float64 `toml:"theta0"`
	V0           float64 `toml:"v0"`
}

// HasDisc is false for Earth, the observer's own planet.
func (p Planet) HasDisc() bool { return p.Theta0 != 0 }

// EllipticalComet holds the orbital elements of a periodic comet. Epoch is
// the perihelion epoch as a decimal year; angles are in degrees, Axis in AU
// and Period in years.
type EllipticalComet struct {
	Name         string  `toml:"name"`
	Epoch        float64 `toml:"epoch"`
	Perihelion   float64 `toml:"perihelion"`
	Node         float64 `toml:"node"`
	Period       float64 `toml:"period"`
	Axis         float64 `toml:"axis"`
	Eccentricity float64 `toml:"eccentricity"`
	Inclination  float64 `toml:"inclination"`
}

// ParabolicComet holds the elements of a comet on a parabolic orbit, with the
// perihelion passage given as a calendar date and the distance in AU.
type ParabolicComet struct {
	Name               string  `toml:"name"`
	PerihelionDay      float64 `toml:"perihelion_day"`
	PerihelionMonth    int     `toml:"perihelion_month"`
	PerihelionYear     int     `toml:"perihelion_year"`
	ArgPerihelion      float64 `toml:"arg_perihelion"`
	Node               float64 `toml:"node"`
	PerihelionDistance float64 `toml:"perihelion_distance"`
	Inclination        float64 `toml:"inclination"`
}

// Binary holds the orbit of a visual binary star. Period and Epoch are in
// years, Axis in arcseconds and the angles in degrees.
type Binary struct {
	Name         string  `toml:"name"`
	Period       float64 `toml:"period"`
	Epoch        float64 `toml:"epoch"`
	Periastron   float64 `toml:"periastron"`
	Eccentricity float64 `toml:"eccentricity"`
	Axis         float64 `toml:"axis"`
	Inclination  float64 `toml:"inclination"`
	NodeAngle    float64 `toml:"node_angle"`
}

// Table is a name-keyed table that remembers file order.
type Table[T any] struct {
	kind   string
	byName map[string]T
	names  []string
}

func newTable[T any](kind string, rows []T, name func(T) string) (*Table[T], error) {
	t := &Table[T]{kind: kind, byName: make(map[string]T, len(rows))}
	for _, r := range rows {
		n := name(r)
		if _, dup := t.byName[n]; dup {
			return nil, errors.Errorf("refdata: duplicate %s %q", kind, n)
		}
		t.byName[n] = r
		t.names = append(t.names, n)
	}
	return t, nil
}

// Lookup returns the row for name, or ErrNotFound.
func (t *Table[T]) Lookup(name string) (T, error) {
	r, ok := t.byName[name]
	if !ok {
		var zero T
		return zero, errors.Wrapf(ErrNotFound, "%s %q", t.kind, name)
	}
	return r, nil
}

// Names lists the table's names in file order.
func (t *Table[T]) Names() []string {
	return append([]string(nil), t.names...)
}

type tables struct {
	planets    *Table[Planet]
	elliptical *Table[EllipticalComet]
	parabolic  *Table[ParabolicComet]
	binaries   *Table[Binary]
}

var (
	loadOnce sync.Once
	loaded   tables
	loadErr  error
)

func load() (tables, error) {
	loadOnce.Do(func() {
		loaded, loadErr = decode()
	})
	return loaded, loadErr
}

func decode() (tables, error) {
	var t tables

	var pf struct {
		Planet []Planet `toml:"planet"`
	}
	if err := toml.Unmarshal(planetsTOML, &pf); err != nil {
		return t, errors.Wrap(err, "refdata: planets.toml")
	}

	var cf struct {
		Elliptical []EllipticalComet `toml:"elliptical"`
		Parabolic  []ParabolicComet  `toml:"parabolic"`
	}
	if err := toml.Unmarshal(cometsTOML, &cf); err != nil {
		return t, errors.Wrap(err, "refdata: comets.toml")
	}

	var bf struct {
		Binary []Binary `toml:"binary"`
	}
	if err := toml.Unmarshal(binariesTOML, &bf); err != nil {
		return t, errors.Wrap(err, "refdata: binaries.toml")
	}

	var err error
	if t.planets, err = newTable("planet", pf.Planet, func(p Planet) string { return p.Name }); err != nil {
		return t, err
	}
	if t.elliptical, err = newTable("comet", cf.Elliptical, func(c EllipticalComet) string { return c.Name }); err != nil {
		return t, err
	}
	if t.parabolic, err = newTable("comet", cf.Parabolic, func(c ParabolicComet) string { return c.Name }); err != nil {
		return t, err
	}
	if t.binaries, err = newTable("binary", bf.Binary, func(b Binary) string { return b.Name }); err != nil {
		return t, err
	}
	return t, nil
}

// mustLoad panics if the embedded tables are malformed; that can only
// happen if the TOML files shipped with the package are broken.
func mustLoad() tables {
	t, err := load()
	if err != nil {
		panic(err)
	}
	return t
}

// Table accessors. Each decodes the embedded files on first use.
func Planets() *Table[Planet]                   { return mustLoad().planets }
func EllipticalComets() *Table[EllipticalComet] { return mustLoad().elliptical }
func ParabolicComets() *Table[ParabolicComet]   { return mustLoad().parabolic }
func Binaries() *Table[Binary]                  { return mustLoad().binaries }
