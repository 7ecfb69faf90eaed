// Package planet computes planetary positions from perturbed secular
// elements, plus a simpler model from fixed elements at epoch 2010.0.
package planet

import (
	"math"

	"github.com/pkg/errors"

	"github.com/thurmanmarka/practicalastro/internal/solver"
	"github.com/thurmanmarka/practicalastro/internal/sun"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// lightTimePerAU is the light travel time across 1 AU in days.
const lightTimePerAU = 0.005775518

// Coordinates is a planet's geocentric ecliptic position together with the
// heliocentric quantities it was derived from.
type Coordinates struct {
	Longitude float64 // geocentric ecliptic longitude, degrees
	Latitude  float64 // geocentric ecliptic latitude, degrees
	Distance  float64 // from Earth, AU

	OrbitalLongitude float64 // heliocentric longitude in the orbit plane, degrees
	HelioLongitude   float64 // heliocentric ecliptic longitude, degrees
	HelioLatitude    float64 // degrees
	RadiusVector     float64 // AU
}

// centuries is Julian centuries since 1900 January 0.5 at the instant lt.
func centuries(lt timeutil.LocalTime) float64 {
	return (lt.GreenwichDate().JD()-2415020.0)/36525.0 + lt.UT()/876600.0
}

// Position returns the geocentric position of planet id at lt. The planet is
// evaluated twice, the second time at the instant its light left it; the
// heliocentric outputs belong to the first pass.
func Position(lt timeutil.LocalTime, id ID) (Coordinates, error) {
	if id < Mercury || id > Neptune {
		return Coordinates{}, errors.Errorf("planet: unknown id %d", id)
	}

	t := centuries(lt)
	var orbits [7]osculating
	for i := range secular {
		orbits[i] = secular[i].at(t)
	}
	o := orbits[id]

	ms := sun.MeanAnomaly(lt)
	re := sun.Distance(lt)
	lg := timeutil.Deg2Rad(sun.Longitude(lt)) + math.Pi

	var (
		out            Coordinates
		li             float64
		ll, rd, pd, sp float64
		ci             float64
	)
	for pass := 0; pass < 2; pass++ {
		var ap anomalies
		for j := range orbits {
			ap[j] = timeutil.Deg2Rad(orbits[j].meanLongitude - orbits[j].perihelion - li*orbits[j].motion)
		}
		q := perturb(id, ap, ms, t, o.ecc)

		ec := o.ecc + q.qd
		at, err := solver.TrueAnomaly(ap[id]+q.qe, ec)
		if err != nil {
			return Coordinates{}, errors.Wrapf(err, "planet %v", id)
		}

		pvv := (o.axis + q.qf) * (1.0 - ec*ec) / (1.0 + ec*math.Cos(at))
		lp := timeutil.Deg2Rad(timeutil.Degrees(at) + o.perihelion + timeutil.Degrees(q.qc-q.qe))
		om := timeutil.Deg2Rad(o.node)
		lo := lp - om
		inc := timeutil.Deg2Rad(o.incl)
		pvv += q.qb

		sp = math.Sin(lo) * math.Sin(inc)
		y := math.Sin(lo) * math.Cos(inc)
		ps := math.Asin(sp) + q.qg
		sp = math.Sin(ps)

		pd = timeutil.Unwind(math.Atan2(y, math.Cos(lo)) + om + timeutil.Deg2Rad(q.qa))
		ci = math.Cos(ps)
		rd = pvv * ci
		ll = pd - lg

		rh := math.Sqrt(re*re + pvv*pvv - 2.0*re*pvv*ci*math.Cos(ll))
		li = rh * lightTimePerAU

		if pass == 0 {
			out.HelioLongitude = timeutil.Degrees(pd)
			out.HelioLatitude = timeutil.Degrees(ps)
			out.RadiusVector = pvv
			out.Distance = rh
			out.OrbitalLongitude = timeutil.Degrees(lp)
		}
	}

	l1 := math.Sin(ll)
	l2 := math.Cos(ll)

	var ep float64
	if id < Mars {
		ep = math.Atan(-1.0*rd*l1/(re-rd*l2)) + lg + math.Pi
	} else {
		ep = math.Atan(re*l1/(rd-re*l2)) + pd
	}
	ep = timeutil.Unwind(ep)
	bp := math.Atan(rd * sp * math.Sin(ep-pd) / (ci * re * l1))

	out.Longitude = timeutil.Degrees(timeutil.Unwind(ep))
	out.Latitude = timeutil.Degrees(timeutil.Unwind(bp))
	if out.Latitude > 180.0 {
		out.Latitude -= 360.0
	}
	return out, nil
}
