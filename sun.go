package practicalastro

import (
	"math"

	"github.com/pkg/errors"

	"github.com/thurmanmarka/practicalastro/internal/coords"
	"github.com/thurmanmarka/practicalastro/internal/sun"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// ApproximatePositionOfSun returns the Sun's right ascension and
// declination at lt from the simple 2010.0 orbit.
func ApproximatePositionOfSun(lt LocalTime) Equatorial {
	t := lt.internal()
	eq := sun.ApparentEquatorial(sun.ApproximateLongitude(t), t)
	return equatorial(eq.RA/15.0, eq.Dec)
}

// PrecisePositionOfSun returns the Sun's right ascension and declination at
// lt from the perturbed orbit.
func PrecisePositionOfSun(lt LocalTime) Equatorial {
	t := lt.internal()
	eq := sun.ApparentEquatorial(sun.Longitude(t), t)
	return equatorial(eq.RA/15.0, eq.Dec)
}

// SunDistanceAndAngularSize returns the Earth-Sun distance (km, rounded)
// and the Sun's angular diameter at lt.
func SunDistanceAndAngularSize(lt LocalTime) (float64, DMS) {
	t := lt.internal()
	nu := timeutil.Deg2Rad(sun.TrueAnomaly(t))
	e := sun.Eccentricity(t.GreenwichDate())

	f := (1.0 + e*math.Cos(nu)) / (1.0 - e*e)
	return round(149598500.0/f, 0), dms(f * 0.533128)
}

// SunriseAndSunset returns local sunrise and sunset on local date d at
// lon/lat (degrees, east and north positive).
func SunriseAndSunset(d Date, z Zone, lon, lat float64) (RiseSetTimes, error) {
	g := d.internal()
	rise := sun.Sunrise(g, z.dst(), z.Correction, lon, lat)
	if !rise.OK() {
		return RiseSetTimes{}, errors.Wrap(statusErr(rise.Status), "sunrise")
	}
	set := sun.Sunset(g, z.dst(), z.Correction, lon, lat)
	if !set.OK() {
		return RiseSetTimes{}, errors.Wrap(statusErr(set.Status), "sunset")
	}
	return RiseSetTimes{
		Rise: Crossing{Time: clock(rise.Hours + halfMinute), Date: d, Azimuth: round(rise.Azimuth, 2)},
		Set:  Crossing{Time: clock(set.Hours + halfMinute), Date: d, Azimuth: round(set.Azimuth, 2)},
	}, nil
}

// TwilightTimes are the start of morning twilight and the end of evening
// twilight, local civil time to the nearest minute.
type TwilightTimes struct {
	Begin, End HourMinute
}

// twilightErr maps a twilight outcome. A Sun that stays above the boundary
// is twilight all night; one that stays below never reaches it.
func twilightErr(s coords.Status) error {
	if s == coords.Circumpolar {
		return ErrTwilightAllNight
	}
	return statusErr(s)
}

// MorningAndEveningTwilight returns the twilight of kind k on local date d
// at lon/lat.
func MorningAndEveningTwilight(d Date, z Zone, lon, lat float64, k TwilightKind) (TwilightTimes, error) {
	depression, err := k.Depression()
	if err != nil {
		return TwilightTimes{}, err
	}

	g := d.internal()
	am := sun.MorningTwilight(g, z.dst(), z.Correction, lon, lat, depression)
	if !am.OK() {
		return TwilightTimes{}, errors.Wrapf(twilightErr(am.Status), "%s twilight", k)
	}
	pm := sun.EveningTwilight(g, z.dst(), z.Correction, lon, lat, depression)
	if !pm.OK() {
		return TwilightTimes{}, errors.Wrapf(twilightErr(pm.Status), "%s twilight", k)
	}
	return TwilightTimes{
		Begin: clock(am.Hours + halfMinute),
		End:   clock(pm.Hours + halfMinute),
	}, nil
}

// EquationOfTime returns the UT of the Sun's transit at Greenwich minus 12h
// on Greenwich date gd, in decimal hours, and its size as minutes and
// seconds. A positive value means the Sun transits after 12h UT.
func EquationOfTime(gd Date) (float64, HMS) {
	g := gd.internal()
	lon := sun.Longitude(timeutil.At(12, 0, 0, g))
	ra, _ := coords.EclipticToEquatorial(lon, 0, coords.Obliquity(g))

	eot := timeutil.GSTToUT(ra/15.0, g) - 12.0
	return eot, hms(math.Abs(eot))
}

// SolarElongation returns the angle (degrees, 0.01) between the Sun and an
// object at eq at 0h on Greenwich date gd. A fractional day moves the
// instant into that day.
func SolarElongation(eq Equatorial, gd Date) float64 {
	g := gd.internal()
	lon := sun.Longitude(timeutil.At(0, 0, 0, g))
	ra, dec := coords.EclipticToEquatorial(lon, 0, coords.Obliquity(g))

	return round(coords.Separation(ra, dec, eq.RA.Decimal()*15.0, eq.Dec.Decimal()), 2)
}
