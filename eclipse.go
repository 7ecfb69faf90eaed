package practicalastro

import (
	"github.com/thurmanmarka/practicalastro/internal/eclipse"
	"github.com/thurmanmarka/practicalastro/internal/moon"
)

// EclipseLikelihood grades whether an eclipse can happen at a new or full
// moon.
type EclipseLikelihood int

const (
	EclipseNone EclipseLikelihood = iota
	EclipsePossible
	EclipseCertain
)

func (l EclipseLikelihood) String() string {
	switch l {
	case EclipseCertain:
		return "certain"
	case EclipsePossible:
		return "possible"
	default:
		return "none"
	}
}

func likelihood(l eclipse.Likelihood) EclipseLikelihood {
	switch l {
	case eclipse.Certain:
		return EclipseCertain
	case eclipse.Possible:
		return EclipsePossible
	default:
		return EclipseNone
	}
}

// Contact is the UT of one stage of an eclipse to the nearest minute. OK is
// false when the eclipse never reaches that stage.
type Contact struct {
	UT HourMinute
	OK bool
}

func contact(c eclipse.Contact) Contact {
	if !c.OK {
		return Contact{}
	}
	return Contact{UT: clock(c.UT + halfMinute), OK: true}
}

// LunarEclipse holds the circumstances of a lunar eclipse. Magnitude is the
// umbral magnitude (2 places), or the penumbral one when the Moon misses
// the umbra.
type LunarEclipse struct {
	Likelihood EclipseLikelihood
	Date       Date

	PenumbralStart Contact
	UmbralStart    Contact
	TotalStart     Contact
	Maximum        Contact
	TotalEnd       Contact
	UmbralEnd      Contact
	PenumbralEnd   Contact

	Magnitude    float64
	HasMagnitude bool
}

// Occurs reports whether the Moon enters the penumbra.
func (e LunarEclipse) Occurs() bool { return e.PenumbralStart.OK }

// SolarEclipse holds the circumstances of a solar eclipse seen from one
// place. Magnitude has 3 places.
type SolarEclipse struct {
	Likelihood EclipseLikelihood
	Date       Date

	FirstContact Contact
	Maximum      Contact
	LastContact  Contact

	Magnitude    float64
	HasMagnitude bool
}

// Occurs reports whether the Moon covers any of the Sun.
func (e SolarEclipse) Occurs() bool { return e.Maximum.OK }

// LunarEclipseOccurrence reports whether the full moon after the new moon
// of the lunation containing local date d can be eclipsed, and the local
// date of that full moon.
func LunarEclipseOccurrence(d Date, z Zone) (EclipseLikelihood, Date) {
	g := d.internal()
	jd := moon.FullMoon(g, z.dst(), z.Correction)
	return likelihood(eclipse.LunarOccurrence(g, z.dst(), z.Correction)), dateOf(eclipse.EventDate(jd, z.dst(), z.Correction))
}

// LunarEclipseCircumstances returns the contact times (UT) and magnitude of
// the lunar eclipse at that full moon.
func LunarEclipseCircumstances(d Date, z Zone) LunarEclipse {
	l := eclipse.LunarCircumstances(d.internal(), z.dst(), z.Correction)
	out := LunarEclipse{
		Likelihood:     likelihood(l.Likelihood),
		Date:           dateOf(l.Date),
		PenumbralStart: contact(l.PenumbralStart),
		UmbralStart:    contact(l.UmbralStart),
		TotalStart:     contact(l.TotalStart),
		Maximum:        contact(l.Maximum),
		TotalEnd:       contact(l.TotalEnd),
		UmbralEnd:      contact(l.UmbralEnd),
		PenumbralEnd:   contact(l.PenumbralEnd),
		HasMagnitude:   l.HasMagnitude,
	}
	if l.HasMagnitude {
		out.Magnitude = round(l.Magnitude, 2)
	}
	return out
}

// SolarEclipseOccurrence reports whether the new moon of the lunation
// containing local date d can eclipse the Sun, and its local date.
func SolarEclipseOccurrence(d Date, z Zone) (EclipseLikelihood, Date) {
	g := d.internal()
	jd := moon.NewMoon(g, z.dst(), z.Correction)
	return likelihood(eclipse.SolarOccurrence(g, z.dst(), z.Correction)), dateOf(eclipse.EventDate(jd, z.dst(), z.Correction))
}

// SolarEclipseCircumstances returns the contact times (UT) and magnitude of
// the solar eclipse at that new moon for an observer at lon/lat.
func SolarEclipseCircumstances(d Date, z Zone, lon, lat float64) SolarEclipse {
	s := eclipse.SolarCircumstances(d.internal(), z.dst(), z.Correction, lon, lat)
	out := SolarEclipse{
		Likelihood:   likelihood(s.Likelihood),
		Date:         dateOf(s.Date),
		FirstContact: contact(s.FirstContact),
		Maximum:      contact(s.Maximum),
		LastContact:  contact(s.LastContact),
		HasMagnitude: s.HasMagnitude,
	}
	if s.HasMagnitude {
		out.Magnitude = round(s.Magnitude, 3)
	}
	return out
}
