package practicalastro

import (
	"math"

	"github.com/pkg/errors"

	"github.com/thurmanmarka/practicalastro/internal/coords"
	"github.com/thurmanmarka/practicalastro/internal/moon"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// ApproximatePositionOfMoon returns the Moon's right ascension and
// declination at lt from the simple 2010.0 orbit.
func ApproximatePositionOfMoon(lt LocalTime) Equatorial {
	t := lt.internal()
	lon, lat := moon.ApproximatePosition(t)
	ra, dec := coords.EclipticToEquatorial(lon, lat, coords.Obliquity(t.GreenwichDate()))
	return equatorial(ra/15.0, dec)
}

// MoonPosition is the Moon's apparent place with its distance.
type MoonPosition struct {
	Equatorial
	Distance           float64 // km, rounded
	HorizontalParallax float64 // degrees, 6 places
}

// PrecisePositionOfMoon returns the Moon's apparent right ascension and
// declination at lt from the full lunar series, corrected for nutation.
func PrecisePositionOfMoon(lt LocalTime) MoonPosition {
	t := lt.internal()
	eq := moon.Apparent(t)
	hp := moon.HorizontalParallax(t)
	return MoonPosition{
		Equatorial:         equatorial(eq.RA/15.0, eq.Dec),
		Distance:           round(moon.DistanceFromParallax(hp), 0),
		HorizontalParallax: round(hp, 6),
	}
}

// MoonPhase returns the illuminated fraction of the Moon (0 to 1) and the
// position angle of its bright limb (degrees), both to 0.01. The precise
// accuracy corrects the phase angle for the distances of the Moon and Sun.
func MoonPhase(lt LocalTime, acc Accuracy) (float64, float64) {
	t := lt.internal()
	phase := moon.ApproximatePhase(t)
	if acc == AccuracyPrecise {
		phase = moon.Phase(t)
	}
	return round(phase, 2), round(moon.BrightLimbAngle(t), 2)
}

// LunarEvent is the local time and date of an instantaneous event.
type LunarEvent struct {
	Time HourMinute
	Date Date
}

// lunarEvent converts the Julian Date of a phase to local time.
func lunarEvent(jd float64, z Zone) LunarEvent {
	day, month, year := timeutil.JDToCivil(jd)
	g := timeutil.Date{Day: math.Floor(day), Month: month, Year: year}
	ut := 24.0 * (day - g.Day)

	lct, _ := timeutil.UTToLocal(ut+halfMinute, z.dst(), z.Correction, g)
	_, local := timeutil.UTToLocal(ut, z.dst(), z.Correction, g)
	return LunarEvent{Time: clock(lct), Date: dateOf(local)}
}

// TimesOfNewMoonAndFullMoon returns the new moon of the lunation containing
// local date d and the full moon that follows it.
func TimesOfNewMoonAndFullMoon(d Date, z Zone) (newMoon, fullMoon LunarEvent) {
	g := d.internal()
	newMoon = lunarEvent(moon.NewMoon(g, z.dst(), z.Correction), z)
	fullMoon = lunarEvent(moon.FullMoon(g, z.dst(), z.Correction), z)
	return newMoon, fullMoon
}

// MoonDistAngDiamHorParallax returns the Earth-Moon distance (km, rounded),
// the Moon's angular diameter to the nearest arcminute and its horizontal
// parallax at lt.
func MoonDistAngDiamHorParallax(lt LocalTime) (float64, DMS, DMS) {
	t := lt.internal()

	diameter := dms(moon.AngularDiameter(t) + halfMinute)
	diameter.Seconds = 0
	return round(moon.Distance(t), 0), diameter, dms(moon.HorizontalParallax(t))
}

// MoonriseAndMoonset returns moonrise and moonset on local date d at
// lon/lat. Either event may fall on a neighbouring local date. When a
// sidereal time was ambiguous the times are still returned, together with
// ErrAmbiguousSiderealTime.
func MoonriseAndMoonset(d Date, z Zone, lon, lat float64) (RiseSetTimes, error) {
	g := d.internal()
	rise := moon.Moonrise(g, z.dst(), z.Correction, lon, lat)
	if !rise.OK() {
		return RiseSetTimes{}, errors.Wrap(statusErr(rise.Status), "moonrise")
	}
	set := moon.Moonset(g, z.dst(), z.Correction, lon, lat)
	if !set.OK() {
		return RiseSetTimes{}, errors.Wrap(statusErr(set.Status), "moonset")
	}

	rs := RiseSetTimes{
		Rise: Crossing{Time: clock(rise.Hours + halfMinute), Date: dateOf(rise.Date), Azimuth: round(rise.Azimuth, 2)},
		Set:  Crossing{Time: clock(set.Hours + halfMinute), Date: dateOf(set.Date), Azimuth: round(set.Azimuth, 2)},
	}
	if rise.Status == coords.GSTWarning || set.Status == coords.GSTWarning {
		return rs, ErrAmbiguousSiderealTime
	}
	return rs, nil
}
