package comet

import (
	"math"
	"testing"

	"github.com/thurmanmarka/practicalastro/internal/sun"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

var halley = Elliptical{
	Epoch:        1986.112,
	Perihelion:   170.011,
	Node:         58.154,
	Period:       76.0081,
	Axis:         17.9435,
	Eccentricity: 0.9673,
	Inclination:  162.2384,
}

var kohler = Parabolic{
	PerihelionDate:     timeutil.Date{Day: 10.5659, Month: 11, Year: 1977},
	ArgPerihelion:      163.4799,
	Node:               181.8175,
	PerihelionDistance: 0.990662,
	Inclination:        48.7196,
}

func TestEllipticalPosition(t *testing.T) {
	p, err := EllipticalPosition(timeutil.At(0, 0, 0, timeutil.Date{Day: 1, Month: 1, Year: 1984}), halley)
	if err != nil {
		t.Fatalf("EllipticalPosition: %v", err)
	}
	if got := timeutil.Round(p.Distance, 2); got != 8.13 {
		t.Errorf("distance = %v AU, want 8.13", got)
	}
	if p.Longitude < 0 || p.Longitude >= 360 {
		t.Errorf("longitude %v out of range", p.Longitude)
	}
}

func TestParabolicPosition(t *testing.T) {
	p, err := ParabolicPosition(timeutil.At(0, 0, 0, timeutil.Date{Day: 25, Month: 12, Year: 1977}), kohler)
	if err != nil {
		t.Fatalf("ParabolicPosition: %v", err)
	}
	if got := timeutil.Round(p.Distance, 2); got != 1.11 {
		t.Errorf("distance = %v AU, want 1.11", got)
	}
}

func TestParabolicAtPerihelion(t *testing.T) {
	lt := timeutil.At(0, 0, 0, timeutil.Date{Day: 10, Month: 11, Year: 1977})
	p, err := ParabolicPosition(lt, kohler)
	if err != nil {
		t.Fatalf("ParabolicPosition: %v", err)
	}
	// Near perihelion the comet is about q from the Sun, so its distance
	// from Earth is bounded by the triangle inequality.
	re := sun.Distance(lt)
	q := kohler.PerihelionDistance
	if p.Distance < math.Abs(re-q)-0.01 || p.Distance > re+q+0.01 {
		t.Errorf("distance %v outside [%v, %v]", p.Distance, math.Abs(re-q), re+q)
	}
}
