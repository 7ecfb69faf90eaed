package practicalastro

import (
	"github.com/pkg/errors"

	"github.com/thurmanmarka/practicalastro/internal/comet"
	"github.com/thurmanmarka/practicalastro/internal/coords"
	"github.com/thurmanmarka/practicalastro/internal/refdata"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// Comets lists the periodic comets and then the parabolic comets known to
// the reference tables.
func Comets() []string {
	return append(refdata.EllipticalComets().Names(), refdata.ParabolicComets().Names()...)
}

// CometPosition is a comet's right ascension and declination with its
// distance from Earth in AU (2 places).
type CometPosition struct {
	Equatorial
	Distance float64
}

// cometEquatorial converts ecliptic coordinates with the obliquity of the
// Greenwich date of t.
func cometEquatorial(p comet.Position, t timeutil.LocalTime) (ra, dec float64) {
	return coords.EclipticToEquatorial(p.Longitude, p.Latitude, coords.Obliquity(t.GreenwichDate()))
}

// PositionOfEllipticalComet returns the position at lt of the named periodic
// comet. The elements are only good to the nearest arcminute, so RA is
// given to the minute of time and Dec to the arcminute, seconds zero.
func PositionOfEllipticalComet(lt LocalTime, name string) (CometPosition, error) {
	row, err := refdata.EllipticalComets().Lookup(name)
	if err != nil {
		return CometPosition{}, err
	}

	t := lt.internal()
	p, err := comet.EllipticalPosition(t, comet.Elliptical{
		Epoch:        row.Epoch,
		Perihelion:   row.Perihelion,
		Node:         row.Node,
		Period:       row.Period,
		Axis:         row.Axis,
		Eccentricity: row.Eccentricity,
		Inclination:  row.Inclination,
	})
	if err != nil {
		return CometPosition{}, errors.Wrapf(err, "comet %q", name)
	}

	ra, dec := cometEquatorial(p, t)
	hm := clock(ra/15.0 + halfMinute)
	d := dms(dec + halfMinute)
	return CometPosition{
		Equatorial: Equatorial{
			RA:  HMS{Hours: float64(hm.Hour), Minutes: float64(hm.Minute)},
			Dec: DMS{Degrees: d.Degrees, Minutes: d.Minutes},
		},
		Distance: round(p.Distance, 2),
	}, nil
}

// PositionOfParabolicComet returns the position at lt of the named comet on
// a parabolic orbit.
func PositionOfParabolicComet(lt LocalTime, name string) (CometPosition, error) {
	row, err := refdata.ParabolicComets().Lookup(name)
	if err != nil {
		return CometPosition{}, err
	}

	t := lt.internal()
	p, err := comet.ParabolicPosition(t, comet.Parabolic{
		PerihelionDate: timeutil.Date{
			Day:   row.PerihelionDay,
			Month: row.PerihelionMonth,
			Year:  row.PerihelionYear,
		},
		ArgPerihelion:      row.ArgPerihelion,
		Node:               row.Node,
		PerihelionDistance: row.PerihelionDistance,
		Inclination:        row.Inclination,
	})
	if err != nil {
		return CometPosition{}, errors.Wrapf(err, "comet %q", name)
	}

	ra, dec := cometEquatorial(p, t)
	return CometPosition{
		Equatorial: equatorial(ra/15.0, dec),
		Distance:   round(p.Distance, 2),
	}, nil
}
