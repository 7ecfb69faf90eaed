package coords

import (
	"math"

	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// Status is the outcome of a rise/set computation.
type Status int

const (
	OK Status = iota
	NeverRises
	Circumpolar
	// GSTWarning marks a sidereal time that falls in the first four minutes
	// of the UT day and so maps to two universal times.
	GSTWarning
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case NeverRises:
		return "never rises"
	case Circumpolar:
		return "circumpolar"
	case GSTWarning:
		return "GST to UT conversion warning"
	default:
		return "unknown"
	}
}

// cosH is the cosine of the hour angle at which an object of declination
// dec reaches altitude -vd at latitude lat.
func cosH(dec, vd, lat float64) float64 {
	c := timeutil.Deg2Rad(dec)
	d := timeutil.Deg2Rad(vd)
	e := timeutil.Deg2Rad(lat)
	return -(math.Sin(d) + math.Sin(e)*math.Sin(c)) / (math.Cos(e) * math.Cos(c))
}

// RiseSetStatus classifies an object for the given vertical displacement vd
// (degrees below the horizon) and latitude.
func RiseSetStatus(dec, vd, lat float64) Status {
	f := cosH(dec, vd, lat)
	switch {
	case f <= -1.0:
		return Circumpolar
	case f >= 1.0:
		return NeverRises
	default:
		return OK
	}
}

// RiseSetLST returns the local sidereal times (hours) of rising and setting
// for right ascension ra (hours) and declination dec. When the object does
// not cross the horizon both times equal ra.
func RiseSetLST(ra, dec, vd, lat float64) (rise, set float64) {
	b := timeutil.Deg2Rad(ra * 15.0)
	f := cosH(dec, vd, lat)
	var h float64
	if math.Abs(f) < 1.0 {
		h = math.Acos(f)
	}
	rise = timeutil.Normalize24(timeutil.Degrees(b-h) / 15.0)
	set = timeutil.Normalize24(timeutil.Degrees(b+h) / 15.0)
	return rise, set
}

// RiseSetAzimuth returns the azimuths (degrees) of rising and setting.
// Objects that never cross the horizon get 0 and 360 wrapped to 0.
func RiseSetAzimuth(dec, vd, lat float64) (rise, set float64) {
	c := timeutil.Deg2Rad(dec)
	d := timeutil.Deg2Rad(vd)
	e := timeutil.Deg2Rad(lat)
	f := (math.Sin(c) + math.Sin(d)*math.Sin(e)) / (math.Cos(d) * math.Cos(e))

	var h float64
	if RiseSetStatus(dec, vd, lat) == OK {
		h = math.Acos(f)
	}
	rise = timeutil.Normalize360(timeutil.Degrees(h))
	set = timeutil.Normalize360(360.0 - timeutil.Degrees(h))
	return rise, set
}

// ObjectRiseSet is the rise/set of a fixed object on a Greenwich date.
type ObjectRiseSet struct {
	Status          Status
	UTRise, UTSet   float64
	AzRise, AzSet   float64
	LSTRise, LSTSet float64
}

// RisingAndSetting computes universal rise and set times for an object at
// right ascension ra (hours) and declination dec, seen from lon/lat with
// vertical displacement vd. A fixed 0.008333 h (half a minute) is added to
// each time so that truncating to minutes rounds to the nearest minute.
func RisingAndSetting(ra, dec float64, g timeutil.Date, lon, lat, vd float64) ObjectRiseSet {
	f := cosH(dec, vd, lat)
	r := ObjectRiseSet{Status: OK}
	switch {
	case f > 1.0:
		r.Status = NeverRises
	case f < -1.0:
		r.Status = Circumpolar
	}
	if r.Status != OK {
		return r
	}

	h := timeutil.Degrees(math.Acos(f)) / 15.0
	r.LSTRise = timeutil.Normalize24(ra - h)
	r.LSTSet = timeutil.Normalize24(ra + h)
	r.AzRise, r.AzSet = RiseSetAzimuth(dec, vd, lat)
	r.UTRise = timeutil.GSTToUT(timeutil.LSTToGST(r.LSTRise, lon), g) + 0.008333
	r.UTSet = timeutil.GSTToUT(timeutil.LSTToGST(r.LSTSet, lon), g) + 0.008333
	return r
}
