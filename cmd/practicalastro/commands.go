package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/pkg/errors"

	"github.com/thurmanmarka/practicalastro"
)

// ---------------------
// Sun
// ---------------------

func runSun(args []string) {
	c := newCommonFlags("sun", "Position, distance, rise/set, twilight and equation of time of the Sun.")
	twilight := c.fs.String("twilight", "civil", "twilight kind: civil, nautical or astronomical")
	c.parse(args)

	o := c.observer()
	lt := c.localTime(o)
	kind := parseTwilight(*twilight)

	fmt.Printf("Sun for %s %s (zone %+d, dst %v) at lat=%.4f lon=%.4f\n\n",
		fmtDate(lt.Date), *c.clock, o.Zone, o.DST, o.Lat, o.Lon)

	fmt.Printf("Approximate : %s\n", fmtEquatorial(practicalastro.ApproximatePositionOfSun(lt)))
	fmt.Printf("Precise     : %s\n", fmtEquatorial(practicalastro.PrecisePositionOfSun(lt)))

	dist, size := practicalastro.SunDistanceAndAngularSize(lt)
	fmt.Printf("Distance    : %.0f km, angular size %s\n", dist, fmtAngle(size))

	_, gd := practicalastro.LocalCivilTimeToUniversalTime(lt)
	eot, mag := practicalastro.EquationOfTime(gd)
	sign := "+"
	if eot < 0 {
		sign = "-"
	}
	fmt.Printf("Eq. of time : %s%02.0fm%05.2fs\n", sign, mag.Minutes, mag.Seconds)

	rs, err := practicalastro.SunriseAndSunset(lt.Date, lt.Zone, o.Lon, o.Lat)
	if err != nil {
		fmt.Printf("Rise/set    : %v\n", err)
	} else {
		fmt.Printf("Sunrise     : %s\n", fmtCrossing(rs.Rise))
		fmt.Printf("Sunset      : %s\n", fmtCrossing(rs.Set))
	}

	tw, err := practicalastro.MorningAndEveningTwilight(lt.Date, lt.Zone, o.Lon, o.Lat, kind)
	if err != nil {
		fmt.Printf("Twilight    : %v\n", err)
	} else {
		fmt.Printf("Twilight    : %s begins %s, ends %s\n", kind, fmtHM(tw.Begin), fmtHM(tw.End))
	}
}

func parseTwilight(s string) practicalastro.TwilightKind {
	for _, k := range []practicalastro.TwilightKind{
		practicalastro.TwilightCivil,
		practicalastro.TwilightNautical,
		practicalastro.TwilightAstronomical,
	} {
		if strings.EqualFold(k.String(), s) {
			return k
		}
	}
	log.Fatalf("unsupported twilight %q (use civil, nautical or astronomical)", s)
	return 0
}

// ---------------------
// Moon
// ---------------------

func runMoon(args []string) {
	c := newCommonFlags("moon", "Position, phase, distance, new and full moon and rise/set of the Moon.")
	c.parse(args)

	o := c.observer()
	lt := c.localTime(o)

	fmt.Printf("Moon for %s %s (zone %+d, dst %v) at lat=%.4f lon=%.4f\n\n",
		fmtDate(lt.Date), *c.clock, o.Zone, o.DST, o.Lat, o.Lon)

	fmt.Printf("Approximate : %s\n", fmtEquatorial(practicalastro.ApproximatePositionOfMoon(lt)))
	pos := practicalastro.PrecisePositionOfMoon(lt)
	fmt.Printf("Precise     : %s\n", fmtEquatorial(pos.Equatorial))

	dist, diam, hp := practicalastro.MoonDistAngDiamHorParallax(lt)
	fmt.Printf("Distance    : %.0f km, diameter %s, parallax %s\n", dist, fmtAngle(diam), fmtAngle(hp))
	if topo, err := o.topocentric(pos.Equatorial, hp.Decimal(), lt); err != nil {
		log.Printf("topocentric place: %v", err)
	} else {
		fmt.Printf("Topocentric : %s (%.0f m)\n", fmtEquatorial(topo), o.Elevation)
	}

	phase, limb := practicalastro.MoonPhase(lt, practicalastro.AccuracyPrecise)
	fmt.Printf("Phase       : %.2f illuminated, bright limb %.2f°\n", phase, limb)

	nm, fm := practicalastro.TimesOfNewMoonAndFullMoon(lt.Date, lt.Zone)
	fmt.Printf("New moon    : %s on %s\n", fmtHM(nm.Time), fmtDate(nm.Date))
	fmt.Printf("Full moon   : %s on %s\n", fmtHM(fm.Time), fmtDate(fm.Date))

	rs, err := practicalastro.MoonriseAndMoonset(lt.Date, lt.Zone, o.Lon, o.Lat)
	switch {
	case errors.Is(err, practicalastro.ErrAmbiguousSiderealTime):
		log.Println("warning: moonrise or moonset falls where sidereal time is ambiguous")
		fallthrough
	case err == nil:
		fmt.Printf("Moonrise    : %s\n", fmtCrossing(rs.Rise))
		fmt.Printf("Moonset     : %s\n", fmtCrossing(rs.Set))
	default:
		fmt.Printf("Rise/set    : %v\n", err)
	}
}

// ---------------------
// Planets
// ---------------------

func runPlanet(args []string) {
	c := newCommonFlags("planet", "Position, visual aspects and rise/set of a planet.")
	name := c.fs.String("name", "", "planet name (empty lists the planets)")
	c.parse(args)

	if *name == "" {
		fmt.Println(strings.Join(practicalastro.Planets(), "\n"))
		return
	}

	o := c.observer()
	lt := c.localTime(o)

	approx, err := practicalastro.ApproximatePositionOfPlanet(lt, *name)
	if err != nil {
		log.Fatalf("error computing position: %v", err)
	}
	precise, err := practicalastro.PrecisePositionOfPlanet(lt, *name)
	if err != nil {
		log.Fatalf("error computing position: %v", err)
	}
	asp, err := practicalastro.VisualAspectsOfAPlanet(lt, *name)
	if err != nil {
		log.Fatalf("error computing aspects: %v", err)
	}

	fmt.Printf("%s for %s %s (zone %+d, dst %v)\n\n", *name, fmtDate(lt.Date), *c.clock, o.Zone, o.DST)
	fmt.Printf("Approximate : %s\n", fmtEquatorial(approx))
	fmt.Printf("Precise     : %s\n", fmtEquatorial(precise))
	fmt.Printf("Distance    : %.5f AU (light time %.0fh%02.0fm%05.2fs)\n",
		asp.Distance, asp.LightTime.Hours, asp.LightTime.Minutes, asp.LightTime.Seconds)
	fmt.Printf("Diameter    : %.1f\"\n", asp.AngularDiameter)
	fmt.Printf("Phase       : %.2f, bright limb %.1f°\n", asp.Phase, asp.BrightLimbAngle)
	fmt.Printf("Magnitude   : %.1f\n", asp.Magnitude)

	rs, err := practicalastro.PlanetRisingAndSetting(lt.Date, lt.Zone, o.Lon, o.Lat, *name)
	if err != nil {
		fmt.Printf("Rise/set    : %v\n", err)
		return
	}
	fmt.Printf("Rise        : %s\n", fmtCrossing(rs.Rise))
	fmt.Printf("Set         : %s\n", fmtCrossing(rs.Set))
}

// ---------------------
// Comets and binaries
// ---------------------

func runComet(args []string) {
	c := newCommonFlags("comet", "Geocentric position of a periodic or parabolic comet.")
	name := c.fs.String("name", "", "comet name (empty lists the comets)")
	c.parse(args)

	if *name == "" {
		fmt.Println(strings.Join(practicalastro.Comets(), "\n"))
		return
	}

	lt := c.localTime(c.observer())
	pos, err := practicalastro.PositionOfEllipticalComet(lt, *name)
	if errors.Is(err, practicalastro.ErrNotFound) {
		pos, err = practicalastro.PositionOfParabolicComet(lt, *name)
	}
	if err != nil {
		log.Fatalf("error computing comet position: %v", err)
	}

	fmt.Printf("%s for %s %s\n\n", *name, fmtDate(lt.Date), *c.clock)
	fmt.Printf("Position    : %s\n", fmtEquatorial(pos.Equatorial))
	fmt.Printf("Distance    : %.2f AU\n", pos.Distance)
}

func runBinary(args []string) {
	c := newCommonFlags("binary", "Position angle and separation of a visual binary star.")
	name := c.fs.String("name", "", "binary star name (empty lists the binaries)")
	c.parse(args)

	if *name == "" {
		fmt.Println(strings.Join(practicalastro.Binaries(), "\n"))
		return
	}

	d := c.localDate()
	pa, sep, err := practicalastro.BinaryStarOrbit(d, *name)
	if err != nil {
		log.Fatalf("error computing binary orbit: %v", err)
	}
	fmt.Printf("%s on %s: position angle %.1f°, separation %.2f\"\n", *name, fmtDate(d), pa, sep)
}

// ---------------------
// Eclipses
// ---------------------

func fmtContact(c practicalastro.Contact) string {
	if !c.OK {
		return "none"
	}
	return fmtHM(c.UT) + " UT"
}

func runEclipse(args []string) {
	c := newCommonFlags("eclipse", "Lunar and solar eclipses in the lunation containing -date.")
	c.parse(args)

	o := c.observer()
	d := c.localDate()
	z := o.zone()

	lk, ld := practicalastro.LunarEclipseOccurrence(d, z)
	fmt.Printf("Lunar eclipse : %s (full moon %s)\n", lk, fmtDate(ld))
	if lk != practicalastro.EclipseNone {
		l := practicalastro.LunarEclipseCircumstances(d, z)
		fmt.Printf("  Penumbral   : %s - %s\n", fmtContact(l.PenumbralStart), fmtContact(l.PenumbralEnd))
		fmt.Printf("  Umbral      : %s - %s\n", fmtContact(l.UmbralStart), fmtContact(l.UmbralEnd))
		fmt.Printf("  Total       : %s - %s\n", fmtContact(l.TotalStart), fmtContact(l.TotalEnd))
		fmt.Printf("  Maximum     : %s\n", fmtContact(l.Maximum))
		if l.HasMagnitude {
			fmt.Printf("  Magnitude   : %.2f\n", l.Magnitude)
		}
	}

	sk, sd := practicalastro.SolarEclipseOccurrence(d, z)
	fmt.Printf("Solar eclipse : %s (new moon %s)\n", sk, fmtDate(sd))
	if sk != practicalastro.EclipseNone {
		s := practicalastro.SolarEclipseCircumstances(d, z, o.Lon, o.Lat)
		fmt.Printf("  Contacts    : %s - %s\n", fmtContact(s.FirstContact), fmtContact(s.LastContact))
		fmt.Printf("  Maximum     : %s\n", fmtContact(s.Maximum))
		if s.HasMagnitude {
			fmt.Printf("  Magnitude   : %.3f\n", s.Magnitude)
		}
	}
}

// ---------------------
// Conversions
// ---------------------

func runConvert(args []string) {
	c := newCommonFlags("convert", "Calendar, time scale and coordinate conversions for one instant and object.")
	ra := c.fs.Float64("ra", 0, "right ascension in decimal hours")
	dec := c.fs.Float64("dec", 0, "declination in decimal degrees")
	vd := c.fs.Float64("vd", 0.5667, "vertical shift (degrees) for rising and setting")
	c.parse(args)

	o := c.observer()
	lt := c.localTime(o)

	ut, gd := practicalastro.LocalCivilTimeToUniversalTime(lt)
	gst := practicalastro.UniversalTimeToGreenwichSiderealTime(ut, gd)
	lst := practicalastro.GreenwichSiderealTimeToLocalSiderealTime(gst, o.Lon)
	jd := practicalastro.JulianDay(lt.Date)
	easter := practicalastro.EasterDate(lt.Date.Year)

	fmt.Printf("Local date  : %s (%s, day %d, leap year %v)\n", fmtDate(lt.Date),
		practicalastro.DayOfWeek(jd), practicalastro.DayNumber(lt.Date), practicalastro.IsLeapYear(lt.Date.Year))
	fmt.Printf("Julian date : %.5f\n", jd)
	fmt.Printf("Easter      : %s\n", fmtDate(easter))
	fmt.Printf("UT          : %.2s on %s\n", fmtHours(ut), fmtDate(gd))
	fmt.Printf("GST         : %.2s\n", fmtHours(gst))
	fmt.Printf("LST         : %.2s\n", fmtHours(lst))

	eq := practicalastro.Equatorial{
		RA:  practicalastro.DecimalHoursToCivilTime(*ra),
		Dec: practicalastro.DecimalDegreesToAngle(*dec),
	}
	ha := practicalastro.RightAscensionToHourAngle(eq.RA, lt, o.Lon)
	hz := practicalastro.EquatorialToHorizon(ha, eq.Dec, o.Lat)
	ec := practicalastro.EquatorialToEcliptic(eq, gd)
	ga := practicalastro.EquatorialToGalactic(eq)

	fmt.Printf("\nEquatorial  : %s\n", fmtEquatorial(eq))
	fmt.Printf("Hour angle  : %.2s\n", fmtHours(ha))
	fmt.Printf("Horizon     : az %s  alt %s\n", fmtAngle(hz.Azimuth), fmtAngle(hz.Altitude))
	fmt.Printf("Ecliptic    : lon %s  lat %s\n", fmtAngle(ec.Longitude), fmtAngle(ec.Latitude))
	fmt.Printf("Galactic    : l %s  b %s\n", fmtAngle(ga.Longitude), fmtAngle(ga.Latitude))
	fmt.Printf("Sun elong.  : %.2f°\n", practicalastro.SolarElongation(eq, gd))

	rs, err := practicalastro.RisingAndSetting(eq, gd, o.Lon, o.Lat, *vd)
	if err != nil {
		fmt.Printf("Rise/set    : %v\n", err)
		return
	}
	fmt.Printf("Rise        : %s UT, azimuth %.2f°\n", fmtHM(rs.Rise.Time), rs.Rise.Azimuth)
	fmt.Printf("Set         : %s UT, azimuth %.2f°\n", fmtHM(rs.Set.Time), rs.Set.Azimuth)
}
