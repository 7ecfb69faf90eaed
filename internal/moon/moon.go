package moon

import (
	"math"

	"github.com/thurmanmarka/practicalastro/internal/coords"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// refinementPasses is how many times moonrise/moonset are re-estimated with
// the Moon's place at the previous estimate.
const refinementPasses = 8

// dayCorrection is one sidereal day in solar hours, added when a sidereal
// time falls in the ambiguous first minutes of the UT day.
const dayCorrection = 23.93447

// Event is one moonrise or moonset on a local date.
type Event struct {
	Hours   float64       // local civil time, decimal hours
	Date    timeutil.Date // local date of the event
	Azimuth float64       // degrees
	Status  coords.Status
}

// OK reports whether the event was found. A GST warning still carries a
// usable time.
func (e Event) OK() bool {
	return e.Status == coords.OK || e.Status == coords.GSTWarning
}

type crossing int

const (
	rising crossing = iota
	setting
)

type place struct {
	lst     float64 // local sidereal time of the crossing, hours
	azimuth float64
	status  coords.Status
}

// horizonShift is the altitude (degrees below the geometric horizon) at
// which the upper limb touches the refracted horizon, given the Moon's
// horizontal parallax hp in degrees.
func horizonShift(hp float64) float64 {
	pm := timeutil.Deg2Rad(hp)
	th := 0.27249 * math.Sin(pm)
	return timeutil.Degrees(th + 0.0098902 - pm)
}

func evaluate(lt timeutil.LocalTime, g timeutil.Date, lat float64, which crossing) place {
	lon, bm, hp := Position(lt)
	dp := coords.NutationLongitude(g)
	vd := horizonShift(hp)

	raDeg, dec := coords.EclipticToEquatorial(lon+dp, bm, coords.Obliquity(g))
	ra := raDeg / 15.0

	rise, set := coords.RiseSetLST(ra, dec, vd, lat)
	azRise, azSet := coords.RiseSetAzimuth(dec, vd, lat)
	p := place{lst: rise, azimuth: azRise, status: coords.RiseSetStatus(dec, vd, lat)}
	if which == setting {
		p.lst, p.azimuth = set, azSet
	}
	return p
}

// settle applies the day-boundary fix to ut: when the sidereal time was
// ambiguous and ut moved by more than half an hour from g1, one sidereal
// day is added before pulling ut back next to g1.
func settle(ut, g1 float64, correct bool) float64 {
	if correct && math.Abs(g1-ut) > 0.5 {
		ut += dayCorrection
	}
	return timeutil.UTDayAdjust(ut, g1)
}

func crossingEvent(d timeutil.Date, dst, zone int, lon, lat float64, which crossing) Event {
	lt := timeutil.At(12, dst, zone, d)
	g := lt.GreenwichDate()

	p := evaluate(lt, g, lat, which)
	if p.status != coords.OK {
		return Event{Status: p.status}
	}

	status := coords.OK
	var g1, gu float64
	for k := 0; k < refinementPasses; k++ {
		x := timeutil.LSTToGST(p.lst, lon)
		ut := timeutil.GSTToUT(x, g)
		ambiguous := timeutil.GSTToUTAmbiguous(x, g)
		if ambiguous {
			status = coords.GSTWarning
		}

		g1 = gu
		if k == 0 {
			g1 = ut
		}
		gu = ut

		lct, d1 := timeutil.UTToLocal(settle(ut, g1, ambiguous), dst, zone, g)
		lt = timeutil.At(lct, dst, zone, d1)
		g = lt.GreenwichDate()

		p = evaluate(lt, g, lat, which)
		if p.status != coords.OK {
			return Event{Status: p.status}
		}
	}

	x := timeutil.LSTToGST(p.lst, lon)
	ut := timeutil.GSTToUT(x, g)
	ambiguous := timeutil.GSTToUTAmbiguous(x, g)
	if ambiguous {
		status = coords.GSTWarning
	}

	// The final moonset step applies the day-boundary fix whether or not the
	// sidereal time was ambiguous.
	lct, local := timeutil.UTToLocal(settle(ut, g1, ambiguous || which == setting), dst, zone, g)
	return Event{Hours: lct, Date: local, Azimuth: p.azimuth, Status: status}
}

// Moonrise returns local time, local date and azimuth of moonrise on local
// date d for an observer at lon/lat (degrees, east and north positive).
func Moonrise(d timeutil.Date, dst, zone int, lon, lat float64) Event {
	return crossingEvent(d, dst, zone, lon, lat, rising)
}

// Moonset returns local time, local date and azimuth of moonset.
func Moonset(d timeutil.Date, dst, zone int, lon, lat float64) Event {
	return crossingEvent(d, dst, zone, lon, lat, setting)
}
