package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/naoina/toml"
	"github.com/pkg/errors"
	"github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/practicalastro"
)

// observer is where and in which time zone the domain subcommands work.
// It is read from a TOML file such as
//
//	lat = 42.3667
//	lon = -71.05
//	elevation = 10
//	zone = -5
//	dst = false
type observer struct {
	Lat       float64 `toml:"lat"`
	Lon       float64 `toml:"lon"`
	Elevation float64 `toml:"elevation"`
	Zone      int     `toml:"zone"`
	DST       bool    `toml:"dst"`
}

func loadObserver(path string) (observer, error) {
	var o observer
	data, err := os.ReadFile(path)
	if err != nil {
		return o, err
	}
	if err := toml.Unmarshal(data, &o); err != nil {
		return o, errors.Wrapf(err, "parse %s", path)
	}
	return o, nil
}

// topocentric shifts a geocentric place of a body with horizontal parallax
// hp (degrees) to where it appears from the observer, elevation included.
func (o observer) topocentric(eq practicalastro.Equatorial, hp float64, lt practicalastro.LocalTime) (practicalastro.Equatorial, error) {
	return practicalastro.CorrectionsForGeocentricParallax(eq, practicalastro.CoordinateTrue, hp, o.Lon, o.Lat, o.Elevation, lt)
}

func (o observer) zone() practicalastro.Zone {
	return practicalastro.Zone{DaylightSaving: o.DST, Correction: o.Zone}
}

// commonFlags are the observer, date and time flags shared by the domain
// subcommands.
type commonFlags struct {
	fs     *flag.FlagSet
	config *string
	lat    *float64
	lon    *float64
	elev   *float64
	zone   *int
	dst    *bool
	date   *string
	clock  *string
}

func newCommonFlags(name, help string) *commonFlags {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	c := &commonFlags{
		fs:     fs,
		config: fs.String("config", "", "TOML observer file (lat, lon, elevation, zone, dst)"),
		lat:    fs.Float64("lat", 0, "latitude in degrees (north positive)"),
		lon:    fs.Float64("lon", 0, "longitude in degrees (east positive, west negative)"),
		elev:   fs.Float64("elevation", 0, "height above sea level in metres"),
		zone:   fs.Int("zone", 0, "time zone correction in hours (east positive)"),
		dst:    fs.Bool("dst", false, "daylight saving in effect"),
		date:   fs.String("date", "", "local date in YYYY-MM-DD (defaults to today)"),
		clock:  fs.String("time", "00:00:00", "local civil time HH:MM[:SS[.ss]]"),
	}
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: practicalastro %s [flags]\n\n%s\n\nFlags:\n", name, help)
		fs.PrintDefaults()
	}
	return c
}

func (c *commonFlags) parse(args []string) {
	if err := c.fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}
}

// observer loads -config if given and lets flags set on the command line
// override it.
func (c *commonFlags) observer() observer {
	var o observer
	if *c.config != "" {
		var err error
		o, err = loadObserver(*c.config)
		if err != nil {
			log.Fatalf("invalid -config %q: %v", *c.config, err)
		}
	}
	c.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lat":
			o.Lat = *c.lat
		case "lon":
			o.Lon = *c.lon
		case "elevation":
			o.Elevation = *c.elev
		case "zone":
			o.Zone = *c.zone
		case "dst":
			o.DST = *c.dst
		}
	})
	return o
}

func (c *commonFlags) localDate() practicalastro.Date {
	t := time.Now()
	if *c.date != "" {
		var err error
		t, err = time.Parse("2006-01-02", *c.date)
		if err != nil {
			log.Fatalf("invalid -date %q: %v", *c.date, err)
		}
	}
	return practicalastro.Date{Day: float64(t.Day()), Month: int(t.Month()), Year: t.Year()}
}

func (c *commonFlags) localTime(o observer) practicalastro.LocalTime {
	layouts := []string{"15:04:05", "15:04"}
	var t time.Time
	var err error
	for _, layout := range layouts {
		t, err = time.Parse(layout, *c.clock)
		if err == nil {
			break
		}
	}
	if err != nil {
		log.Fatalf("could not parse -time %q: %v", *c.clock, err)
	}
	return practicalastro.LocalTime{
		Clock: practicalastro.HMS{
			Hours:   float64(t.Hour()),
			Minutes: float64(t.Minute()),
			Seconds: float64(t.Second()) + float64(t.Nanosecond())/1e9,
		},
		Zone: o.zone(),
		Date: c.localDate(),
	}
}

// Output helpers.

func fmtEquatorial(eq practicalastro.Equatorial) string {
	return fmt.Sprintf("RA %.2s  Dec %.2s", sexa.FmtRA(eq.RA.RA()), sexa.FmtAngle(eq.Dec.Angle()))
}

func fmtHours(h practicalastro.HMS) fmt.Formatter {
	return sexa.FmtTime(unit.TimeFromHour(h.Decimal()))
}

func fmtAngle(d practicalastro.DMS) string {
	return fmt.Sprintf("%.2s", sexa.FmtAngle(d.Angle()))
}

func fmtHM(hm practicalastro.HourMinute) string {
	return fmt.Sprintf("%02d:%02d", hm.Hour, hm.Minute)
}

func fmtDate(d practicalastro.Date) string {
	return fmt.Sprintf("%04d-%02d-%02g", d.Year, d.Month, d.Day)
}

func fmtCrossing(c practicalastro.Crossing) string {
	return fmt.Sprintf("%s on %s, azimuth %.2f°", fmtHM(c.Time), fmtDate(c.Date), c.Azimuth)
}
