package sun

import (
	"github.com/thurmanmarka/practicalastro/internal/coords"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// HorizonDepression is how far (degrees) the Sun's centre lies below the
// horizon at sunrise and sunset: refraction plus the apparent radius.
const HorizonDepression = 0.8333333

// aberration is the constant correction (degrees) applied to the Sun's
// longitude before converting it for rise and set.
const aberration = 0.005694

// Event is one rise-type or set-type crossing of a depression below the
// horizon.
type Event struct {
	Hours   float64 // local civil time, decimal hours
	Azimuth float64 // degrees
	Status  coords.Status
}

// OK reports whether the event was found.
func (e Event) OK() bool {
	return e.Status == coords.OK
}

type crossing int

const (
	rising crossing = iota
	setting
)

// position is one evaluation of the Sun's apparent place for a rise/set
// pass: right ascension (hours), declination (degrees) and the local
// sidereal time of the crossing.
type position struct {
	ra, dec float64
	lst     float64
	status  coords.Status
}

func evaluate(lon float64, g timeutil.Date, depression, lat float64, which crossing) position {
	a := lon + coords.NutationLongitude(g) - aberration
	raDeg, dec := coords.EclipticToEquatorial(a, 0, coords.Obliquity(g))
	ra := raDeg / 15.0

	p := position{ra: ra, dec: dec, status: coords.RiseSetStatus(dec, depression, lat)}
	rise, set := coords.RiseSetLST(ra, dec, depression, lat)
	if which == rising {
		p.lst = rise
	} else {
		p.lst = set
	}
	return p
}

// crossingEvent finds a rise or set of the Sun's centre at depression
// degrees below the horizon on local date d. The Sun's place at local noon
// gives a first estimate, which is refined once with the Sun's place at
// that estimate.
func crossingEvent(d timeutil.Date, dst, zone int, lon, lat, depression float64, which crossing) Event {
	noon := timeutil.At(12, dst, zone, d)
	g := noon.GreenwichDate()

	p := evaluate(Longitude(noon), g, depression, lat, which)
	if p.status != coords.OK {
		return Event{Status: p.status}
	}

	gst := timeutil.LSTToGST(p.lst, lon)
	if timeutil.GSTToUTAmbiguous(gst, g) {
		return Event{Status: coords.GSTWarning}
	}
	ut := timeutil.GSTToUT(gst, g)

	p = evaluate(Longitude(timeutil.At(ut, 0, 0, g)), g, depression, lat, which)
	if p.status != coords.OK {
		return Event{Status: p.status}
	}

	gst = timeutil.LSTToGST(p.lst, lon)
	if timeutil.GSTToUTAmbiguous(gst, g) {
		return Event{Status: coords.GSTWarning}
	}
	ut = timeutil.GSTToUT(gst, g)
	lct, _ := timeutil.UTToLocal(ut, dst, zone, g)

	azRise, azSet := coords.RiseSetAzimuth(p.dec, depression, lat)
	e := Event{Hours: lct, Azimuth: azRise, Status: coords.OK}
	if which == setting {
		e.Azimuth = azSet
	}
	return e
}

// Sunrise returns the local civil time and azimuth of sunrise on local date
// d for an observer at lon/lat (degrees, east and north positive).
func Sunrise(d timeutil.Date, dst, zone int, lon, lat float64) Event {
	return crossingEvent(d, dst, zone, lon, lat, HorizonDepression, rising)
}

// Sunset returns the local civil time and azimuth of sunset.
func Sunset(d timeutil.Date, dst, zone int, lon, lat float64) Event {
	return crossingEvent(d, dst, zone, lon, lat, HorizonDepression, setting)
}

// MorningTwilight returns the start of morning twilight, when the Sun's
// centre rises through depression degrees below the horizon.
func MorningTwilight(d timeutil.Date, dst, zone int, lon, lat, depression float64) Event {
	return crossingEvent(d, dst, zone, lon, lat, depression, rising)
}

// EveningTwilight returns the end of evening twilight.
func EveningTwilight(d timeutil.Date, dst, zone int, lon, lat, depression float64) Event {
	return crossingEvent(d, dst, zone, lon, lat, depression, setting)
}
