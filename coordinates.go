package practicalastro

import (
	"math"

	"github.com/pkg/errors"

	"github.com/thurmanmarka/practicalastro/internal/coords"
	"github.com/thurmanmarka/practicalastro/internal/moon"
	"github.com/thurmanmarka/practicalastro/internal/sun"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// AngleToDecimalDegrees converts degrees, minutes and seconds to decimal
// degrees.
func AngleToDecimalDegrees(a DMS) float64 {
	return a.Decimal()
}

// DecimalDegreesToAngle splits decimal degrees into whole degrees, minutes
// and seconds.
func DecimalDegreesToAngle(deg float64) DMS {
	return floorSeconds(dms(deg))
}

// RightAscensionToHourAngle converts right ascension to hour angle at local
// time lt and longitude lon (degrees, east positive).
func RightAscensionToHourAngle(ra HMS, lt LocalTime, lon float64) HMS {
	return hms(coords.HourAngle(ra.Decimal(), lt.internal(), lon))
}

// HourAngleToRightAscension converts hour angle to right ascension.
func HourAngleToRightAscension(ha HMS, lt LocalTime, lon float64) HMS {
	return hms(coords.RightAscension(ha.Decimal(), lt.internal(), lon))
}

// EquatorialToHorizon converts hour angle and declination to azimuth and
// altitude at latitude lat.
func EquatorialToHorizon(ha HMS, dec DMS, lat float64) Horizon {
	az, alt := coords.EquatorialToHorizon(ha.Decimal(), dec.Decimal(), lat)
	return Horizon{Azimuth: dms(az), Altitude: dms(alt)}
}

// HorizonToEquatorial converts azimuth and altitude to hour angle and
// declination at latitude lat.
func HorizonToEquatorial(h Horizon, lat float64) (HMS, DMS) {
	ha, dec := coords.HorizonToEquatorial(h.Azimuth.Decimal(), h.Altitude.Decimal(), lat)
	return hms(ha), dms(dec)
}

// MeanObliquityOfTheEcliptic returns the mean obliquity (degrees) on
// Greenwich date gd.
func MeanObliquityOfTheEcliptic(gd Date) float64 {
	return coords.MeanObliquity(gd.internal())
}

// EclipticToEquatorial converts ecliptic coordinates to equatorial using the
// true obliquity on Greenwich date gd.
func EclipticToEquatorial(e Ecliptic, gd Date) Equatorial {
	ra, dec := coords.EclipticToEquatorial(e.Longitude.Decimal(), e.Latitude.Decimal(), coords.Obliquity(gd.internal()))
	return equatorial(ra/15.0, dec)
}

// EquatorialToEcliptic is the inverse of EclipticToEquatorial.
func EquatorialToEcliptic(eq Equatorial, gd Date) Ecliptic {
	lon, lat := coords.EquatorialToEcliptic(eq.RA.Decimal()*15.0, eq.Dec.Decimal(), coords.Obliquity(gd.internal()))
	return Ecliptic{Longitude: dms(lon), Latitude: dms(lat)}
}

// EquatorialToGalactic converts equatorial coordinates (B1950) to galactic.
func EquatorialToGalactic(eq Equatorial) Galactic {
	l, b := coords.EquatorialToGalactic(eq.RA.Decimal()*15.0, eq.Dec.Decimal())
	return Galactic{Longitude: dms(l), Latitude: dms(b)}
}

// GalacticToEquatorial converts galactic coordinates to equatorial.
func GalacticToEquatorial(g Galactic) Equatorial {
	ra, dec := coords.GalacticToEquatorial(g.Longitude.Decimal(), g.Latitude.Decimal())
	return equatorial(ra/15.0, dec)
}

// AngleBetweenTwoObjects returns the angular separation of two objects.
// With AngleHours the first coordinate of each is a right ascension; with
// AngleDegrees the RA fields are read as degrees, arcminutes and arcseconds
// of longitude.
func AngleBetweenTwoObjects(a, b Equatorial, m AngleMeasure) DMS {
	a1, a2 := a.RA.Decimal(), b.RA.Decimal()
	if m == AngleHours {
		a1 *= 15.0
		a2 *= 15.0
	}
	return dms(coords.Separation(a1, a.Dec.Decimal(), a2, b.Dec.Decimal()))
}

// Crossing is one rising or setting: the clock time to the nearest minute,
// the date it happens on, and the azimuth in degrees rounded to 0.01.
type Crossing struct {
	Time    HourMinute
	Date    Date
	Azimuth float64
}

// RiseSetTimes are a rising and the following setting.
type RiseSetTimes struct {
	Rise, Set Crossing
}

// RisingAndSetting returns the UT of rising and setting on Greenwich date gd
// of a fixed object at eq, seen from lon/lat, for an object that rises when
// vd degrees below the horizon. ErrNeverRises and ErrCircumpolar are
// returned for objects that do not cross the horizon.
func RisingAndSetting(eq Equatorial, gd Date, lon, lat, vd float64) (RiseSetTimes, error) {
	r := coords.RisingAndSetting(eq.RA.Decimal(), eq.Dec.Decimal(), gd.internal(), lon, lat, vd)
	if err := statusErr(r.Status); err != nil {
		return RiseSetTimes{}, err
	}
	return RiseSetTimes{
		Rise: Crossing{Time: clock(r.UTRise), Date: gd, Azimuth: round(r.AzRise, 2)},
		Set:  Crossing{Time: clock(r.UTSet), Date: gd, Azimuth: round(r.AzSet, 2)},
	}, nil
}

// CorrectForPrecession moves eq from epoch from to epoch to.
func CorrectForPrecession(eq Equatorial, from, to Date) Equatorial {
	ra, dec := coords.Precess(eq.RA.Decimal(), eq.Dec.Decimal(), from.internal(), to.internal())
	return equatorial(ra, dec)
}

// NutationInEclipticLongitudeAndObliquity returns the nutation in longitude
// and in obliquity (degrees) on Greenwich date gd.
func NutationInEclipticLongitudeAndObliquity(gd Date) (float64, float64) {
	return coords.Nutation(gd.internal())
}

// CorrectForAberration converts the true ecliptic position e at UT ut on
// Greenwich date gd to the apparent position.
func CorrectForAberration(ut HMS, gd Date, e Ecliptic) Ecliptic {
	sl := sun.Longitude(timeutil.At(ut.Decimal(), 0, 0, gd.internal()))
	lon, lat := coords.Aberration(e.Longitude.Decimal(), e.Latitude.Decimal(), sl)
	return Ecliptic{Longitude: dms(lon), Latitude: dms(lat)}
}

// AtmosphericRefraction corrects eq, observed from lon/lat at local time lt,
// for refraction at pressure (millibars) and temperature (°C). True
// coordinates gain refraction; apparent coordinates lose it.
func AtmosphericRefraction(eq Equatorial, ct CoordinateType, lon, lat float64, lt LocalTime, pressure, temperature float64) (Equatorial, error) {
	t := lt.internal()
	ha := coords.HourAngle(eq.RA.Decimal(), t, lon)
	az, alt := coords.EquatorialToHorizon(ha, eq.Dec.Decimal(), lat)

	alt, err := coords.Refract(alt, ct.kind(), pressure, temperature)
	if err != nil {
		return Equatorial{}, errors.Wrap(err, "atmospheric refraction")
	}

	ha, dec := coords.HorizonToEquatorial(az, alt, lat)
	return equatorial(coords.RightAscension(ha, t, lon), dec), nil
}

// CorrectionsForGeocentricParallax converts between geocentric (true) and
// topocentric (apparent) coordinates for a body of equatorial horizontal
// parallax hp (degrees), seen from lon/lat at height metres above sea level.
func CorrectionsForGeocentricParallax(eq Equatorial, ct CoordinateType, hp, lon, lat, height float64, lt LocalTime) (Equatorial, error) {
	t := lt.internal()
	ha := coords.HourAngle(eq.RA.Decimal(), t, lon)

	pha, dec, err := coords.Parallax(ha, eq.Dec.Decimal(), ct.kind(), lat, height, hp)
	if err != nil {
		return Equatorial{}, errors.Wrap(err, "geocentric parallax")
	}
	return equatorial(coords.RightAscension(pha, t, lon), dec), nil
}

// Inclinations of the solar and lunar equators to the ecliptic.
var (
	solarEquatorInclination = timeutil.DMSToDegrees(7, 15, 0)
	lunarEquatorInclination = timeutil.DMSToDegrees(1, 32, 32.7)
)

// HeliographicCoordinates returns the heliographic longitude and latitude
// (degrees, 0.01) of a point on the Sun's disc at position angle pa
// (degrees) and displacement from the centre (arcminutes) on Greenwich date
// gd.
func HeliographicCoordinates(pa, displacement float64, gd Date) (lon, lat float64) {
	g := gd.internal()
	jd := g.JD()
	t := (jd - 2415020.0) / 36525.0
	lt := timeutil.At(0, 0, 0, g)

	node := timeutil.DMSToDegrees(74, 22, 0) + (84.0 * t / 60.0)
	sl := sun.Longitude(lt)
	inc := timeutil.Deg2Rad(solarEquatorInclination)

	y := timeutil.SinD(node-sl) * math.Cos(inc)
	x := -timeutil.CosD(node - sl)
	a := timeutil.Degrees(math.Atan2(y, x))
	m := timeutil.Normalize360(360.0 - (360.0 * (jd - 2398220.0) / 25.38))
	l0 := m + a

	b0 := math.Asin(timeutil.SinD(sl-node) * math.Sin(inc))
	th1 := math.Atan(-timeutil.CosD(sl) * timeutil.TanD(coords.Obliquity(g)))
	th2 := math.Atan(-timeutil.CosD(node-sl) * math.Tan(inc))
	p := timeutil.Degrees(th1 + th2)

	rho1 := displacement / 60.0
	rho := math.Asin(2.0*rho1/sun.AngularDiameter(lt)) - timeutil.Deg2Rad(rho1)
	dp := timeutil.Deg2Rad(p - pa)

	br := math.Asin(math.Sin(b0)*math.Cos(rho) + math.Cos(b0)*math.Sin(rho)*math.Cos(dp))
	lon = timeutil.Degrees(math.Asin(math.Sin(rho)*math.Sin(dp)/math.Cos(br))) + l0

	return round(timeutil.Normalize360(lon), 2), round(timeutil.Degrees(br), 2)
}

// CarringtonRotationNumber returns the number of the synodic solar rotation
// in progress on Greenwich date gd.
func CarringtonRotationNumber(gd Date) int {
	return 1690 + int(round((gd.JD()-2444235.34)/27.2753, 0))
}

// SubEarthPoint is the Moon's optical libration: the selenographic
// longitude and latitude of the point facing the Earth, and the position
// angle of the Moon's axis, all degrees rounded to 0.01.
type SubEarthPoint struct {
	Longitude           float64
	Latitude            float64
	PositionAngleOfPole float64
}

// SubSolarPoint is the selenographic position of the point under the Sun
// and the Sun's selenographic colongitude, degrees rounded to 0.01.
type SubSolarPoint struct {
	Longitude   float64
	Colongitude float64
	Latitude    float64
}

// lunarNodeAndArgument returns the longitude of the Moon's mean ascending
// node and its mean argument of latitude (degrees) on g.
func lunarNodeAndArgument(g timeutil.Date) (node, f float64) {
	t := (g.JD() - 2451545.0) / 36525.0
	node = 125.044522 - 1934.136261*t
	f = timeutil.Normalize360(93.27191 + 483202.0175*t)
	return node, f
}

// selenographic returns the selenographic longitude (-180 to 180) and
// latitude (degrees) of the point below a body at geocentric ecliptic
// longitude lon (degrees) and latitude b (radians).
func selenographic(node, f, lon, b float64) (float64, float64) {
	i := timeutil.Deg2Rad(lunarEquatorInclination)
	nl := timeutil.Deg2Rad(node - lon)

	sinB := -math.Cos(i)*math.Sin(b) + math.Sin(i)*math.Cos(b)*math.Sin(nl)
	lat := timeutil.Degrees(math.Asin(sinB))

	a := math.Atan2(-math.Sin(b)*math.Sin(i)-math.Cos(b)*math.Cos(i)*math.Sin(nl), math.Cos(b)*math.Cos(nl))
	l := timeutil.Normalize360(timeutil.Degrees(a) - f)
	if l > 180.0 {
		l -= 360.0
	}
	return l, lat
}

// SelenographicCoordinates1 returns the sub-Earth point of the Moon at 0h
// on Greenwich date gd.
func SelenographicCoordinates1(gd Date) SubEarthPoint {
	g := gd.internal()
	node, f := lunarNodeAndArgument(g)
	lt := timeutil.At(0, 0, 0, g)
	ml, mb, _ := moon.Position(lt)
	b := timeutil.Deg2Rad(mb)

	lon, lat := selenographic(node, f, ml, b)

	i := timeutil.Deg2Rad(lunarEquatorInclination)
	nl := timeutil.Deg2Rad(node - ml)
	c1 := math.Atan(math.Cos(nl) * math.Sin(i) / (math.Cos(b)*math.Cos(i) + math.Sin(b)*math.Sin(i)*math.Sin(nl)))

	eps := timeutil.Deg2Rad(coords.Obliquity(g))
	mlr := timeutil.Deg2Rad(ml)
	c2 := math.Atan(math.Sin(eps) * math.Cos(mlr) / (math.Sin(eps)*math.Sin(b)*math.Sin(mlr) - math.Cos(eps)*math.Cos(b)))

	return SubEarthPoint{
		Longitude:           round(lon, 2),
		Latitude:            round(lat, 2),
		PositionAngleOfPole: round(timeutil.Degrees(c1+c2), 2),
	}
}

// SelenographicCoordinates2 returns the sub-solar point of the Moon at 0h
// on Greenwich date gd.
func SelenographicCoordinates2(gd Date) SubSolarPoint {
	g := gd.internal()
	node, f := lunarNodeAndArgument(g)
	lt := timeutil.At(0, 0, 0, g)

	sl := sun.Longitude(lt)
	rs := sun.Distance(lt)
	ml, mb, hp := moon.Position(lt)
	b := timeutil.Deg2Rad(mb)
	hpm := hp * 60.0

	// The Sun as seen from the Moon.
	lon := sl + 180.0 + (26.4 * math.Cos(b) * timeutil.SinD(sl-ml) / (hpm * rs))
	lat := 0.14666 * b / (hpm * rs)

	l, bs := selenographic(node, f, lon, lat)
	return SubSolarPoint{
		Longitude:   round(l, 2),
		Colongitude: round(90.0-l, 2),
		Latitude:    round(bs, 2),
	}
}
