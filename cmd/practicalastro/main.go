package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/thurmanmarka/practicalastro"
)

func main() {
	log.SetFlags(0)

	// Backwards-compatible behavior:
	// - If no args or first arg starts with "-", run rise/set mode (old style).
	// - Otherwise treat the first arg as a subcommand (e.g. "phase").
	if len(os.Args) < 2 || strings.HasPrefix(os.Args[1], "-") {
		runRiseSet(os.Args[1:])
		return
	}

	cmds := map[string]func([]string){
		"phase":   runPhase,
		"sun":     runSun,
		"moon":    runMoon,
		"planet":  runPlanet,
		"comet":   runComet,
		"binary":  runBinary,
		"eclipse": runEclipse,
		"convert": runConvert,
	}
	run, ok := cmds[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
	run(os.Args[2:])
}

func usage() {
	fmt.Fprintf(os.Stderr, `practicalastro – calculator astronomy

Usage:
  practicalastro [flags]             # Sun/Moon/planet rise/set (legacy/default mode)
  practicalastro -tests              # run the worked-example regression checks
  practicalastro phase [flags]       # Moon phase / illumination
  practicalastro sun [flags]         # Sun position, distance, rise/set, twilight
  practicalastro moon [flags]        # Moon position, phase, new/full moon, rise/set
  practicalastro planet [flags]      # planet position, aspects, rise/set
  practicalastro comet [flags]       # comet position
  practicalastro binary [flags]      # binary star orbit
  practicalastro eclipse [flags]     # lunar and solar eclipses
  practicalastro convert [flags]     # date, time and coordinate conversions

Default mode flags (rise/set):
  -lat float
        latitude in degrees (north positive)
  -lon float
        longitude in degrees (east positive, west negative)
  -date string
        date in YYYY-MM-DD (optional, defaults to today in local time)
  -body string
        celestial body: sun, moon or a planet name (default "sun")
  -event string
        event: rise, set, or both (default "both")
  -json
        output result as JSON

The other subcommands take -config FILE, a TOML observer file with lat, lon,
elevation, zone and dst keys; -lat, -lon, -elevation, -zone and -dst override it.
Run "practicalastro <subcommand> -h" for details.
`)
}

// ---------------------
// Rise/set (default) mode
// ---------------------

func runRiseSet(args []string) {
	fs := flag.NewFlagSet("practicalastro", flag.ExitOnError)

	lat := fs.Float64("lat", 0, "latitude in degrees (north positive)")
	lon := fs.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
	dateS := fs.String("date", "", "date in YYYY-MM-DD (optional, defaults to today in local time)")
	bodyS := fs.String("body", "sun", "celestial body: sun, moon, mercury, venus, mars, jupiter, saturn, uranus or neptune")
	event := fs.String("event", "both", "event: rise, set, or both")
	jsonOut := fs.Bool("json", false, "output result as JSON")
	tests := fs.Bool("tests", false, "run the worked-example regression checks and exit")
	fs.BoolVar(tests, "t", false, "shorthand for -tests")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: practicalastro [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	if *tests {
		if failed := runRegression(os.Stdout); failed > 0 {
			log.Fatalf("%d regression checks failed", failed)
		}
		return
	}

	if *lat == 0 && *lon == 0 {
		log.Println("warning: lat=0 lon=0 (Gulf of Guinea). Use -lat and -lon to set a real location.")
	}

	// Default date: today in local time.
	var date time.Time
	if *dateS == "" {
		now := time.Now()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	} else {
		var err error
		date, err = time.ParseInLocation("2006-01-02", *dateS, time.Local)
		if err != nil {
			log.Fatalf("invalid -date %q: %v", *dateS, err)
		}
	}

	body, err := practicalastro.ParseBody(*bodyS)
	if err != nil {
		log.Fatalf("unsupported body %q (use sun, moon or a planet name)", *bodyS)
	}

	coords := practicalastro.Coordinates{
		Lat: *lat,
		Lon: *lon,
	}

	rs, err := practicalastro.RiseSetFor(body, coords, date)
	if err != nil {
		log.Fatalf("error computing rise/set: %v", err)
	}

	if *jsonOut {
		printJSON(body, coords, date, *event, rs)
	} else {
		printHuman(body, coords, date, *event, rs)
	}
}

// ---------------------
// Phase subcommand
// ---------------------

func runPhase(args []string) {
	fs := flag.NewFlagSet("phase", flag.ExitOnError)

	tzName := fs.String("tz", "UTC", "IANA time zone name (e.g. America/Phoenix)")
	timeStr := fs.String("time", "", "Time in RFC3339 or 'YYYY-MM-DDTHH:MM' (optional, defaults to now in tz)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: practicalastro phase [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	loc, err := time.LoadLocation(*tzName)
	if err != nil {
		log.Fatalf("invalid time zone %q: %v", *tzName, err)
	}

	var tLocal time.Time
	if *timeStr == "" {
		tLocal = time.Now().In(loc)
	} else {
		layouts := []string{
			time.RFC3339,
			"2006-01-02T15:04",
			"2006-01-02 15:04",
			"2006-01-02",
		}
		var parseErr error
		for _, layout := range layouts {
			tLocal, parseErr = time.ParseInLocation(layout, *timeStr, loc)
			if parseErr == nil {
				break
			}
		}
		if parseErr != nil {
			log.Fatalf("could not parse -time %q: %v", *timeStr, parseErr)
		}
	}

	phase, err := practicalastro.MoonPhaseAt(tLocal)
	if err != nil {
		log.Fatalf("MoonPhaseAt failed: %v", err)
	}

	fmt.Printf("Moon phase at %s (%s)\n", phase.Time.Format(time.RFC3339), loc.String())
	fmt.Printf("  Name       : %s\n", phase.Name)
	fmt.Printf("  Fraction   : %.3f (%.1f%% illuminated)\n", phase.Fraction, phase.Fraction*100)
	fmt.Printf("  Elongation : %.2f°\n", phase.Elongation)
	if phase.Waxing {
		fmt.Printf("  Trend      : Waxing (illumination increasing)\n")
	} else {
		fmt.Printf("  Trend      : Waning (illumination decreasing)\n")
	}
}

// ---------------------
// Shared helpers
// ---------------------

func formatEvent(t time.Time) string {
	if t.IsZero() {
		return "none"
	}
	return t.Format(time.RFC3339)
}

func printHuman(body practicalastro.Body, coords practicalastro.Coordinates, date time.Time, event string, rs practicalastro.RiseSet) {
	fmt.Printf("%s rise/set for lat=%.6f lon=%.6f\n", body, coords.Lat, coords.Lon)
	fmt.Printf("Date: %s (%s)\n\n", date.Format("2006-01-02"), date.Location())

	event = strings.ToLower(event)
	switch event {
	case "rise":
		fmt.Printf("Rise: %s\n", formatEvent(rs.Rise))
	case "set":
		fmt.Printf("Set:  %s\n", formatEvent(rs.Set))
	case "both":
		fmt.Printf("Rise: %s\n", formatEvent(rs.Rise))
		fmt.Printf("Set:  %s\n", formatEvent(rs.Set))
	default:
		fmt.Fprintf(os.Stderr, "unknown event %q, showing both\n", event)
		fmt.Printf("Rise: %s\n", formatEvent(rs.Rise))
		fmt.Printf("Set:  %s\n", formatEvent(rs.Set))
	}
}

type jsonOutput struct {
	Body      string                 `json:"body"`
	Latitude  float64                `json:"latitude"`
	Longitude float64                `json:"longitude"`
	Date      string                 `json:"date"` // YYYY-MM-DD
	Rise      *time.Time             `json:"rise,omitempty"`
	Set       *time.Time             `json:"set,omitempty"`
	Timezone  string                 `json:"timezone"`
	Raw       practicalastro.RiseSet `json:"raw"`
}

func printJSON(body practicalastro.Body, coords practicalastro.Coordinates, date time.Time, event string, rs practicalastro.RiseSet) {
	out := jsonOutput{
		Body:      strings.ToLower(body.String()),
		Latitude:  coords.Lat,
		Longitude: coords.Lon,
		Date:      date.Format("2006-01-02"),
		Timezone:  date.Location().String(),
		Raw:       rs,
	}

	// A missing event is left out rather than printed as the zero time.
	rise, set := &rs.Rise, &rs.Set
	if rs.Rise.IsZero() {
		rise = nil
	}
	if rs.Set.IsZero() {
		set = nil
	}

	switch strings.ToLower(event) {
	case "rise":
		out.Rise = rise
	case "set":
		out.Set = set
	default:
		out.Rise = rise
		out.Set = set
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("failed to encode JSON: %v", err)
	}
}
