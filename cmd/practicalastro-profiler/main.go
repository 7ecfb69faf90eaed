package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/thurmanmarka/practicalastro"
)

// refDay is one day of reference data: the local date and the expected
// rise (or dawn) and set (or dusk). A zero time means no event.
type refDay struct {
	row       int
	label     string
	date      time.Time
	rise, set time.Time
}

// CSV format:
//
// date,rise,set
// 2025-01-01,07:32,17:12
// 2025-01-02,07:32,17:13
//
// - date is YYYY-MM-DD
// - rise/set are local times in HH:MM (24-hour clock)
// - All times are assumed to be in the timezone given by -tz.
//
// With -ref gosunrise no CSV is read: the reference sunrise and sunset for
// -days days from -start come from github.com/nathan-osman/go-sunrise.
func main() {
	log.SetFlags(0)

	var (
		lat      = flag.Float64("lat", 0, "latitude in degrees (north positive)")
		lon      = flag.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
		tzName   = flag.String("tz", "UTC", "IANA time zone name (e.g. America/Phoenix)")
		bodyS    = flag.String("body", "sun", "celestial body: sun, moon or a planet name")
		year     = flag.Int("year", 0, "year of the ephemeris data (optional, used for sanity checks)")
		refKind  = flag.String("ref", "csv", "reference source: csv or gosunrise")
		refCSV   = flag.String("refcsv", "", "path to reference ephemeris CSV file (date,rise,set)")
		startS   = flag.String("start", "", "first date for -ref gosunrise, YYYY-MM-DD (defaults to Jan 1 of -year)")
		days     = flag.Int("days", 365, "number of days for -ref gosunrise")
		verbose  = flag.Bool("verbose", false, "log per-day errors instead of only summary")
		twilight = flag.String("twilight", "", "twilight kind: civil, nautical, astronomical (Sun only)")
		outCSV   = flag.String("outcsv", "", "optional path to write per-row error CSV")
	)

	flag.Parse()

	loc, err := time.LoadLocation(*tzName)
	if err != nil {
		log.Fatalf("failed to load timezone %q: %v", *tzName, err)
	}

	body, err := practicalastro.ParseBody(*bodyS)
	if err != nil {
		log.Fatalf("unsupported body %q (use sun, moon or a planet name)", *bodyS)
	}

	useTwilight := *twilight != ""
	var twilightKind practicalastro.TwilightKind
	if useTwilight {
		if body != practicalastro.Sun {
			log.Fatalf("twilight mode only supported for -body sun")
		}
		twilightKind = parseTwilight(*twilight)
	}

	modeDesc := strings.ToUpper(body.String())
	if useTwilight {
		modeDesc = fmt.Sprintf("SUN (%s TWILIGHT)", strings.ToUpper(twilightKind.String()))
	}

	if *lat == 0 && *lon == 0 {
		log.Println("warning: lat=0 lon=0 (Gulf of Guinea). Did you mean to set -lat/-lon?")
	}

	var (
		refs    []refDay
		skipped int
	)
	switch strings.ToLower(*refKind) {
	case "csv":
		if *refCSV == "" {
			log.Fatalf("missing -refcsv (path to reference CSV)")
		}
		refs, skipped = readReferenceCSV(*refCSV, loc, *year)
	case "gosunrise":
		if body != practicalastro.Sun || useTwilight {
			log.Fatalf("-ref gosunrise only provides sunrise and sunset (use -body sun without -twilight)")
		}
		start := startDate(*startS, *year, loc)
		refs = sunriseReference(*lat, *lon, start, *days)
	default:
		log.Fatalf("unknown -ref %q (use csv or gosunrise)", *refKind)
	}

	var outWriter *csv.Writer
	if *outCSV != "" {
		outFile, err := os.Create(*outCSV)
		if err != nil {
			log.Fatalf("failed to create outcsv %q: %v", *outCSV, err)
		}
		defer outFile.Close()

		outWriter = csv.NewWriter(outFile)
		defer outWriter.Flush()

		if err := outWriter.Write([]string{
			"date",
			"body",
			"mode",
			"rise_err",
			"set_err",
			"rise_signed",
			"set_signed",
			"phase_fraction",
			"phase_name",
			"phase_elongation",
			"phase_waxing",
		}); err != nil {
			log.Fatalf("failed to write outcsv header: %v", err)
		}
	}

	coords := practicalastro.Coordinates{
		Lat: *lat,
		Lon: *lon,
	}

	var (
		riseErrs, setErrs errorPair
		processed         int
	)
	for _, ref := range refs {
		var rs practicalastro.RiseSet
		if useTwilight {
			// In twilight mode, interpret CSV "rise" as dawn and "set" as dusk.
			rs, err = practicalastro.TwilightFor(coords, ref.date, twilightKind)
		} else {
			rs, err = practicalastro.RiseSetFor(body, coords, ref.date)
		}
		if err != nil {
			log.Printf("row %d: practicalastro error: %v, skipping", ref.row, err)
			skipped++
			continue
		}

		processed++

		// Compare in local time zone.
		gotRise := rs.Rise.In(loc)
		gotSet := rs.Set.In(loc)
		riseErr, riseSigned := riseErrs.add(gotRise, ref.rise)
		setErr, setSigned := setErrs.add(gotSet, ref.set)

		if *verbose {
			fmt.Printf("%s %s: rise err=%.2f min (got=%s ref=%s), set err=%.2f min (got=%s ref=%s)\n",
				ref.label, modeDesc,
				riseErr, clock(gotRise), clock(ref.rise.In(loc)),
				setErr, clock(gotSet), clock(ref.set.In(loc)))
		}

		if outWriter == nil {
			continue
		}
		rec := []string{
			ref.label,
			strings.ToUpper(body.String()),
			modeDesc,
			fmt.Sprintf("%.6f", riseErr),
			fmt.Sprintf("%.6f", setErr),
			fmt.Sprintf("%.6f", riseSigned),
			fmt.Sprintf("%.6f", setSigned),
		}
		rec = append(rec, phaseColumns(body, ref, loc)...)
		if err := outWriter.Write(rec); err != nil {
			log.Printf("row %d: failed to write outcsv: %v", ref.row, err)
		}
	}

	fmt.Println("=== practicalastro profiler summary ===")
	fmt.Printf("Mode:    %s\n", modeDesc)
	fmt.Printf("Ref:     %s\n", *refKind)
	fmt.Printf("Lat/Lon: %.4f / %.4f\n", *lat, *lon)
	fmt.Printf("TZ:      %s\n", loc.String())
	fmt.Printf("Rows:    %d (processed), %d skipped\n", processed, skipped)

	if riseErrs.abs.count == 0 && setErrs.abs.count == 0 {
		fmt.Println("No valid rows to compute stats.")
		return
	}

	riseErrs.abs.print(os.Stdout, "Rise error (minutes)", "avg")
	setErrs.abs.print(os.Stdout, "Set error (minutes)", "avg")
	riseErrs.signed.print(os.Stdout, "Rise signed error (minutes, our - ref)", "mean")
	setErrs.signed.print(os.Stdout, "Set signed error (minutes, our - ref)", "mean")
}

func parseTwilight(s string) practicalastro.TwilightKind {
	switch strings.ToLower(s) {
	case "civil":
		return practicalastro.TwilightCivil
	case "nautical":
		return practicalastro.TwilightNautical
	case "astronomical":
		return practicalastro.TwilightAstronomical
	}
	log.Fatalf("unknown twilight kind %q (use civil, nautical, or astronomical)", s)
	return 0
}

func clock(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.Format("15:04")
}

// phaseColumns evaluates the Moon's phase at local noon for Moon runs.
func phaseColumns(body practicalastro.Body, ref refDay, loc *time.Location) []string {
	cols := make([]string, 4)
	if body != practicalastro.Moon {
		return cols
	}
	noon := time.Date(ref.date.Year(), ref.date.Month(), ref.date.Day(), 12, 0, 0, 0, loc)
	mp, err := practicalastro.MoonPhaseAt(noon)
	if err != nil {
		log.Printf("row %d: failed to compute Moon phase: %v", ref.row, err)
		return cols
	}
	cols[0] = fmt.Sprintf("%.6f", mp.Fraction)
	cols[1] = mp.Name
	cols[2] = fmt.Sprintf("%.3f", mp.Elongation)
	cols[3] = "waning"
	if mp.Waxing {
		cols[3] = "waxing"
	}
	return cols
}

func startDate(s string, year int, loc *time.Location) time.Time {
	if s == "" {
		if year == 0 {
			year = time.Now().Year()
		}
		return time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		log.Fatalf("invalid -start %q: %v", s, err)
	}
	return t
}

// sunriseReference builds reference days from go-sunrise. Days without a
// sunrise or sunset keep a zero time for that event.
func sunriseReference(lat, lon float64, start time.Time, days int) []refDay {
	refs := make([]refDay, 0, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		rise, set := sunrise.SunriseSunset(lat, lon, d.Year(), d.Month(), d.Day())
		refs = append(refs, refDay{
			row:   i + 1,
			label: d.Format("2006-01-02"),
			date:  d,
			rise:  rise,
			set:   set,
		})
	}
	return refs
}

// readReferenceCSV reads the reference file, logging and counting rows it
// cannot use.
func readReferenceCSV(path string, loc *time.Location, year int) ([]refDay, int) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("failed to open refcsv %q: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // allow variable, we validate

	records, err := r.ReadAll()
	if err != nil {
		log.Fatalf("failed to read CSV: %v", err)
	}
	if len(records) == 0 {
		log.Fatalf("empty CSV file")
	}

	// If first row looks like a header, skip it.
	startIdx := 0
	if len(records[0]) >= 1 && strings.EqualFold(records[0][0], "date") {
		startIdx = 1
	}

	var (
		refs    []refDay
		skipped int
	)
	for i := startIdx; i < len(records); i++ {
		row := records[i]
		if len(row) < 3 {
			log.Printf("row %d: expected at least 3 columns (date,rise,set), got %d, skipping", i+1, len(row))
			skipped++
			continue
		}
		dateStr := strings.TrimSpace(row[0])

		date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
		if err != nil {
			log.Printf("row %d: invalid date %q: %v, skipping", i+1, dateStr, err)
			skipped++
			continue
		}
		if year != 0 && date.Year() != year {
			log.Printf("row %d: warning: date %s not in year %d", i+1, dateStr, year)
		}

		rise, err := parseLocalTime(date, strings.TrimSpace(row[1]), loc)
		if err != nil {
			log.Printf("row %d: invalid rise time %q: %v, skipping", i+1, row[1], err)
			skipped++
			continue
		}
		set, err := parseLocalTime(date, strings.TrimSpace(row[2]), loc)
		if err != nil {
			log.Printf("row %d: invalid set time %q: %v, skipping", i+1, row[2], err)
			skipped++
			continue
		}

		refs = append(refs, refDay{row: i + 1, label: dateStr, date: date, rise: rise, set: set})
	}
	return refs, skipped
}

// parseLocalTime combines a clock time (HH:MM or HH:MM:SS) with date. An
// empty field or "-" means no event that day.
func parseLocalTime(date time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	if hhmm == "" || hhmm == "-" {
		return time.Time{}, nil
	}

	layout := "15:04"
	if strings.Count(hhmm, ":") == 2 {
		layout = "15:04:05"
	}

	parsed, err := time.ParseInLocation(layout, hhmm, loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0, loc), nil
}
