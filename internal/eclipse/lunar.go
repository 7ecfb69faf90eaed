package eclipse

import (
	"math"

	"github.com/thurmanmarka/practicalastro/internal/moon"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// Lunar are the circumstances of a lunar eclipse. Contacts that do not
// happen (no umbral or total phase) have OK false.
type Lunar struct {
	Likelihood Likelihood
	Date       timeutil.Date // local date of the full moon

	PenumbralStart Contact
	UmbralStart    Contact
	TotalStart     Contact
	Maximum        Contact
	TotalEnd       Contact
	UmbralEnd      Contact
	PenumbralEnd   Contact

	// Magnitude is umbral when the Moon enters the umbra and penumbral
	// otherwise. HasMagnitude is false when there is no eclipse at all.
	Magnitude    float64
	HasMagnitude bool
}

// Occurs reports whether the Moon touches the penumbra.
func (l Lunar) Occurs() bool { return l.PenumbralStart.OK }

func lunarGeometry(jd float64) geometry {
	s := newSyzygy(jd)
	p := newPath(s, s.at(s.ut-1.0), s.at(s.ut+1.0))

	sr, rr := s.sunAt(p.x0 - lightTime)
	// Anti-solar point.
	sr = sr + math.Pi - timeutil.Lint((sr+math.Pi)/tau)*tau

	return p.geometry(sr, rr, 0)
}

// LunarCircumstances computes the lunar eclipse at the full moon of the
// lunation containing local date d. Nothing but the likelihood and date is
// filled in when no eclipse is possible.
func LunarCircumstances(d timeutil.Date, dst, zone int) Lunar {
	jd := moon.FullMoon(d, dst, zone)
	out := Lunar{
		Likelihood: LunarOccurrence(d, dst, zone),
		Date:       EventDate(jd, dst, zone),
	}
	if out.Likelihood == None {
		return out
	}

	g := lunarGeometry(jd)
	penumbra := g.rm + g.rp
	umbra := g.rm + g.ru
	total := g.ru - g.rm

	out.PenumbralStart = g.begin(penumbra)
	out.PenumbralEnd = g.end(penumbra)
	if !out.PenumbralStart.OK {
		return out
	}
	out.Maximum = Contact{UT: g.z1, OK: true}

	out.UmbralStart = g.begin(umbra)
	out.UmbralEnd = g.end(umbra)
	if out.UmbralStart.OK {
		out.TotalStart = g.begin(total)
		out.TotalEnd = g.end(total)
	}

	out.HasMagnitude = true
	if out.UmbralStart.OK {
		out.Magnitude = (g.rm + g.ru - g.pj) / (2.0 * g.rm)
	} else {
		out.Magnitude = (g.rm + g.rp - g.pj) / (2.0 * g.rm)
	}
	return out
}
