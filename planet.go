package practicalastro

import (
	"math"

	"github.com/pkg/errors"

	"github.com/thurmanmarka/practicalastro/internal/coords"
	"github.com/thurmanmarka/practicalastro/internal/planet"
	"github.com/thurmanmarka/practicalastro/internal/refdata"
	"github.com/thurmanmarka/practicalastro/internal/solver"
	"github.com/thurmanmarka/practicalastro/internal/sun"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// Planets lists the planet names known to the reference table, Earth
// included, in table order.
func Planets() []string {
	return refdata.Planets().Names()
}

func elements(p refdata.Planet) planet.Elements {
	return planet.Elements{
		Period:       p.Period,
		Longitude:    p.Longitude,
		Perihelion:   p.Perihelion,
		Eccentricity: p.Eccentricity,
		Axis:         p.Axis,
		Inclination:  p.Inclination,
		Node:         p.Node,
	}
}

// lookupPlanet returns the table row for name. Earth is in the table but
// has no geocentric position.
func lookupPlanet(name string) (refdata.Planet, error) {
	p, err := refdata.Planets().Lookup(name)
	if err != nil {
		return p, err
	}
	if !p.HasDisc() {
		return p, errors.Wrapf(ErrNotApplicable, "planet %q", name)
	}
	return p, nil
}

// ApproximatePositionOfPlanet returns the right ascension and declination of
// the named planet at lt from its elements at epoch 2010.0.
func ApproximatePositionOfPlanet(lt LocalTime, name string) (Equatorial, error) {
	p, err := lookupPlanet(name)
	if err != nil {
		return Equatorial{}, err
	}
	earth, err := refdata.Planets().Lookup("Earth")
	if err != nil {
		return Equatorial{}, err
	}

	t := lt.internal()
	lon, lat := planet.Approximate(t, elements(p), elements(earth))
	ra, dec := coords.EclipticToEquatorial(lon, lat, coords.Obliquity(t.GreenwichDate()))
	return equatorial(ra/15.0, dec), nil
}

// precisePlanet evaluates the full planetary model for name at lt.
func precisePlanet(t timeutil.LocalTime, name string) (planet.Coordinates, refdata.Planet, error) {
	row, err := lookupPlanet(name)
	if err != nil {
		return planet.Coordinates{}, row, err
	}
	id, ok := planet.ParseID(name)
	if !ok {
		return planet.Coordinates{}, row, errors.Wrapf(ErrNotFound, "planet %q", name)
	}
	c, err := planet.Position(t, id)
	return c, row, err
}

// planetEquatorial converts ecliptic coordinates with the obliquity of the
// local calendar date of t, which is what the worked examples use.
func planetEquatorial(c planet.Coordinates, t timeutil.LocalTime) (ra, dec float64) {
	return coords.EclipticToEquatorial(c.Longitude, c.Latitude, coords.Obliquity(t.Date))
}

// PrecisePositionOfPlanet returns the right ascension and declination of the
// named planet at lt from the perturbed orbit, corrected for light time.
func PrecisePositionOfPlanet(lt LocalTime, name string) (Equatorial, error) {
	t := lt.internal()
	c, _, err := precisePlanet(t, name)
	if err != nil {
		return Equatorial{}, err
	}
	ra, dec := planetEquatorial(c, t)
	return equatorial(ra/15.0, dec), nil
}

// PlanetAspects describes how a planet appears from Earth.
type PlanetAspects struct {
	Distance        float64 // AU, 5 places
	AngularDiameter float64 // arcseconds, 1 place
	Phase           float64 // illuminated fraction, 2 places
	LightTime       HMS
	BrightLimbAngle float64 // position angle, degrees, 1 place
	Magnitude       float64 // 1 place
}

// VisualAspectsOfAPlanet returns the distance, size, phase, light travel
// time, bright limb position angle and magnitude of the named planet at lt.
func VisualAspectsOfAPlanet(lt LocalTime, name string) (PlanetAspects, error) {
	t := lt.internal()
	c, row, err := precisePlanet(t, name)
	if err != nil {
		return PlanetAspects{}, err
	}

	ra, dec := planetEquatorial(c, t)
	sunLon := sun.Longitude(t)
	sunRA, sunDec := coords.EclipticToEquatorial(sunLon, 0, coords.Obliquity(t.GreenwichDate()))

	pa := timeutil.Deg2Rad(ra)
	pd := timeutil.Deg2Rad(dec)
	sa := timeutil.Deg2Rad(sunRA)
	sd := timeutil.Deg2Rad(sunDec)
	y := math.Cos(sd) * math.Sin(sa-pa)
	x := math.Cos(pd)*math.Sin(sd) - math.Sin(pd)*math.Cos(sd)*math.Cos(sa-pa)
	chi := timeutil.Degrees(math.Atan2(y, x))

	phase := 0.5 * (1.0 + timeutil.CosD(c.Longitude-c.HelioLongitude))
	mag := 5.0*math.Log10(c.RadiusVector*c.Distance/math.Sqrt(phase)) + row.V0

	return PlanetAspects{
		Distance:        round(c.Distance, 5),
		AngularDiameter: round(row.Theta0/c.Distance, 1),
		Phase:           round(phase, 2),
		LightTime:       hms(c.Distance * 0.1386),
		BrightLimbAngle: round(chi, 1),
		Magnitude:       round(mag, 1),
	}, nil
}

// planetHorizon is the altitude (degrees) of a planet's centre at rise and
// set: standard refraction of 34 arcminutes.
const planetHorizon = -0.5667

// planetCrossings are the rise and set of a planet on one local day, as
// local civil decimal hours.
type planetCrossings struct {
	rise, set     solver.Result
	riseAz, setAz float64
}

// Sampling of the local day when searching for a planet's crossings: every
// quarter hour, bisected to a second.
const (
	planetSteps = 97
	planetTol   = 1.0 / 3600.0
)

// planetAltitude returns the azimuth and altitude (degrees) of planet id at
// local hour h on local date g.
func planetAltitude(id planet.ID, g timeutil.Date, dst, zone int, lon, lat float64) func(h float64) (az, alt float64, err error) {
	return func(h float64) (float64, float64, error) {
		t := timeutil.At(h, dst, zone, g)
		c, err := planet.Position(t, id)
		if err != nil {
			return 0, 0, err
		}
		ra, dec := planetEquatorial(c, t)
		az, alt := coords.EquatorialToHorizon(coords.HourAngle(ra/15.0, t, lon), dec, lat)
		return az, alt, nil
	}
}

func planetEvents(id planet.ID, g timeutil.Date, dst, zone int, lon, lat float64) (planetCrossings, error) {
	horizon := planetAltitude(id, g, dst, zone, lon, lat)

	var posErr error
	altitude := func(h float64) float64 {
		_, alt, err := horizon(h)
		if err != nil {
			posErr = err
			return planetHorizon
		}
		return alt
	}

	var pc planetCrossings
	pc.rise = solver.FindAltitudeEvent(altitude, 0, 24, planetHorizon, solver.CrossingUp, planetSteps, planetTol)
	pc.set = solver.FindAltitudeEvent(altitude, 0, 24, planetHorizon, solver.CrossingDown, planetSteps, planetTol)
	if posErr != nil {
		return pc, posErr
	}
	if !pc.rise.OK && !pc.set.OK {
		return pc, noCrossing(altitude, planetSteps)
	}

	if pc.rise.OK {
		pc.riseAz, _, _ = horizon(pc.rise.Hours)
	}
	if pc.set.OK {
		pc.setAz, _, _ = horizon(pc.set.Hours)
	}
	return pc, nil
}

// PlanetRisingAndSetting returns the rise and set of the named planet on
// local date d at lon/lat, when its centre crosses the refracted horizon.
// ErrNoRiseNoSet is returned if only one of the two happens that day.
func PlanetRisingAndSetting(d Date, z Zone, lon, lat float64, name string) (RiseSetTimes, error) {
	if _, err := lookupPlanet(name); err != nil {
		return RiseSetTimes{}, err
	}
	id, ok := planet.ParseID(name)
	if !ok {
		return RiseSetTimes{}, errors.Wrapf(ErrNotFound, "planet %q", name)
	}

	pc, err := planetEvents(id, d.internal(), z.dst(), z.Correction, lon, lat)
	if err == nil && !(pc.rise.OK && pc.set.OK) {
		err = ErrNoRiseNoSet
	}
	if err != nil {
		return RiseSetTimes{}, errors.Wrapf(err, "planet %q", name)
	}

	return RiseSetTimes{
		Rise: Crossing{Time: clock(pc.rise.Hours + halfMinute), Date: d, Azimuth: round(pc.riseAz, 2)},
		Set:  Crossing{Time: clock(pc.set.Hours + halfMinute), Date: d, Azimuth: round(pc.setAz, 2)},
	}, nil
}

// noCrossing classifies a local day without a rise or a set by sampling the
// altitude across it.
func noCrossing(altitude solver.AltitudeFunc, steps int) error {
	above, below := false, false
	for i := 0; i < steps; i++ {
		if altitude(24.0*float64(i)/float64(steps-1)) > planetHorizon {
			above = true
		} else {
			below = true
		}
	}
	switch {
	case above && !below:
		return ErrCircumpolar
	case below && !above:
		return ErrNeverRises
	default:
		return ErrNoRiseNoSet
	}
}
