package moon

import (
	"math"
	"testing"

	"github.com/thurmanmarka/practicalastro/internal/coords"
	"github.com/thurmanmarka/practicalastro/internal/solver"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// diffMinutes returns the absolute difference between two decimal-hour
// times in minutes.
func diffMinutes(a, b float64) float64 {
	return math.Abs(a-b) * 60.0
}

var sept2003 = timeutil.At(0, 0, 0, timeutil.Date{Day: 1, Month: 9, Year: 2003})

func TestHorizontalParallaxAndDistance(t *testing.T) {
	hp := HorizontalParallax(sept2003)
	if got := timeutil.Round(hp, 6); got != 0.993191 {
		t.Errorf("HorizontalParallax() = %v, want 0.993191", got)
	}
	if got := timeutil.Round(Distance(sept2003), 0); got != 367964 {
		t.Errorf("Distance() = %v, want 367964", got)
	}

	// Angular diameter and parallax scale together.
	ratio := AngularDiameter(sept2003) / hp
	if ratio < 0.5 || ratio > 0.56 {
		t.Errorf("diameter/parallax ratio = %v, want about 0.545", ratio)
	}
}

func TestPositionMatchesSeries(t *testing.T) {
	lon, lat, hp := Position(sept2003)
	if lon != Longitude(sept2003) || lat != Latitude(sept2003) || hp != HorizontalParallax(sept2003) {
		t.Errorf("Position() = (%v, %v, %v) differs from the single series", lon, lat, hp)
	}
	if lat < -5.4 || lat > 5.4 {
		t.Errorf("latitude %v outside the orbit inclination", lat)
	}
}

func TestApproximateAgreesWithSeries(t *testing.T) {
	lon, lat := ApproximatePosition(sept2003)
	plon, plat, _ := Position(sept2003)

	if d := math.Abs(lon - plon); d > 0.5 && d < 359.5 {
		t.Errorf("approximate longitude %v, series %v", lon, plon)
	}
	if math.Abs(lat-plat) > 0.5 {
		t.Errorf("approximate latitude %v, series %v", lat, plat)
	}
	t.Logf("approx (%.4f, %.4f) series (%.4f, %.4f)", lon, lat, plon, plat)
}

func TestPhase(t *testing.T) {
	if got := timeutil.Round(ApproximatePhase(sept2003), 2); got != 0.22 {
		t.Errorf("ApproximatePhase() = %v, want 0.22", got)
	}
	if got := timeutil.Round(Phase(sept2003), 2); got != 0.23 {
		t.Errorf("Phase() = %v, want 0.23", got)
	}
	if got := timeutil.Round(BrightLimbAngle(sept2003), 2); got != -71.58 {
		t.Errorf("BrightLimbAngle() = %v, want -71.58", got)
	}

	// Both models agree to a few percent.
	if d := math.Abs(Phase(sept2003) - ApproximatePhase(sept2003)); d > 0.05 {
		t.Errorf("Phase() - ApproximatePhase() = %v", d)
	}
}

func TestNewAndFullMoon(t *testing.T) {
	d := timeutil.Date{Day: 1, Month: 9, Year: 2003}

	tests := []struct {
		name      string
		jd        float64
		wantDay   float64
		wantMonth int
		wantHours float64
	}{
		{"new", NewMoon(d, 0, 0), 27, 8, 17.0 + 27.0/60.0},
		{"full", FullMoon(d, 0, 0), 10, 9, 16.0 + 36.0/60.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, month, year := timeutil.JDToCivil(tt.jd)
			if math.Floor(day) != tt.wantDay || month != tt.wantMonth || year != 2003 {
				t.Fatalf("date = %v/%d/%d, want %v/%d/2003", day, month, year, tt.wantDay, tt.wantMonth)
			}
			hours := 24.0 * (day - math.Floor(day))
			if got := diffMinutes(hours, tt.wantHours); got > 1.0 {
				t.Errorf("UT off by %.2f minutes (got %.4f h)", got, hours)
			}
		})
	}
}

func TestMoonriseMoonset(t *testing.T) {
	d := timeutil.Date{Day: 6, Month: 3, Year: 1986}
	lon, lat := -71.05, 42.3667

	rise := Moonrise(d, 0, -5, lon, lat)
	set := Moonset(d, 0, -5, lon, lat)

	tests := []struct {
		name      string
		ev        Event
		wantHour  int
		wantMin   int
		wantAzDeg float64
	}{
		{"rise", rise, 4, 21, 127.34},
		{"set", set, 13, 8, 234.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ev.Status != coords.OK {
				t.Fatalf("status = %v, want OK", tt.ev.Status)
			}
			h, m, _ := timeutil.HoursParts(tt.ev.Hours + 0.008333)
			if h != tt.wantHour || m != tt.wantMin {
				t.Errorf("time = %d:%02d, want %d:%02d", h, m, tt.wantHour, tt.wantMin)
			}
			if tt.ev.Date != d {
				t.Errorf("date = %+v, want %+v", tt.ev.Date, d)
			}
			if got := timeutil.Round(tt.ev.Azimuth, 2); got != tt.wantAzDeg {
				t.Errorf("azimuth = %v, want %v", got, tt.wantAzDeg)
			}
		})
	}
}

// topocentricAltitude is the Moon's altitude at lt for an observer at
// lon/lat, from the apparent place corrected for parallax.
func topocentricAltitude(lt timeutil.LocalTime, lon, lat float64) float64 {
	eq := Apparent(lt)
	ha := coords.HourAngle(eq.RA/15.0, lt, lon)
	hp := HorizontalParallax(lt)

	tha, tdec, _ := coords.Parallax(ha, eq.Dec, coords.True, lat, 0, hp)
	_, alt := coords.EquatorialToHorizon(tha, tdec, lat)
	return alt
}

// The refined estimate agrees with a direct search of the topocentric
// altitude for the upper limb on the refracted horizon.
func TestMoonriseAgreesWithAltitudeSearch(t *testing.T) {
	d := timeutil.Date{Day: 6, Month: 3, Year: 1986}
	lon, lat := -71.05, 42.3667

	limb := func(h float64) float64 {
		lt := timeutil.At(h, 0, -5, d)
		pm := timeutil.Deg2Rad(HorizontalParallax(lt))
		target := -timeutil.Degrees(0.27249*math.Sin(pm) + 0.0098902)
		return topocentricAltitude(lt, lon, lat) - target
	}

	rise := solver.FindAltitudeEvent(limb, 0, 24, 0, solver.CrossingUp, 97, 1.0/3600.0)
	set := solver.FindAltitudeEvent(limb, 0, 24, 0, solver.CrossingDown, 97, 1.0/3600.0)
	if !rise.OK || !set.OK {
		t.Fatalf("search found rise=%v set=%v", rise.OK, set.OK)
	}

	if got := diffMinutes(rise.Hours, Moonrise(d, 0, -5, lon, lat).Hours); got > 5 {
		t.Errorf("moonrise differs from search by %.1f minutes", got)
	}
	if got := diffMinutes(set.Hours, Moonset(d, 0, -5, lon, lat).Hours); got > 5 {
		t.Errorf("moonset differs from search by %.1f minutes", got)
	}
	t.Logf("search rise %.4f set %.4f", rise.Hours, set.Hours)
}

func TestMoonriseCircumpolar(t *testing.T) {
	// Near the pole the Moon stays up or down for days at a time.
	found := false
	for day := 1.0; day <= 28; day++ {
		ev := Moonrise(timeutil.Date{Day: day, Month: 3, Year: 1986}, 0, 0, 0, 85)
		if ev.Status == coords.Circumpolar || ev.Status == coords.NeverRises {
			found = true
			if ev.OK() {
				t.Errorf("OK() true for status %v", ev.Status)
			}
			break
		}
	}
	if !found {
		t.Errorf("no circumpolar or never-rising day at latitude 85 in March 1986")
	}
}
