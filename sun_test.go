package practicalastro

import (
	"errors"
	"math"
	"testing"
)

func TestPositionOfSun(t *testing.T) {
	tests := []struct {
		name string
		got  Equatorial
		want Equatorial
	}{
		{
			name: "approximate",
			got:  ApproximatePositionOfSun(lct(0, 0, 0, 0, false, Date{Day: 27, Month: 7, Year: 2003})),
			want: Equatorial{
				RA:  HMS{Hours: 8, Minutes: 23, Seconds: 33.73},
				Dec: DMS{Degrees: 19, Minutes: 21, Seconds: 14.33},
			},
		},
		{
			name: "precise",
			got:  PrecisePositionOfSun(lct(0, 0, 0, 0, false, Date{Day: 27, Month: 7, Year: 1988})),
			want: Equatorial{
				RA:  HMS{Hours: 8, Minutes: 26, Seconds: 3.83},
				Dec: DMS{Degrees: 19, Minutes: 12, Seconds: 49.72},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestSunDistanceAndAngularSize(t *testing.T) {
	dist, size := SunDistanceAndAngularSize(lct(0, 0, 0, 0, false, Date{Day: 27, Month: 7, Year: 1988}))
	if dist != 151920130 {
		t.Errorf("distance = %v km, want 151920130", dist)
	}
	if want := (DMS{Minutes: 31, Seconds: 29.93}); size != want {
		t.Errorf("angular size = %+v, want %+v", size, want)
	}
}

func TestSunriseAndSunset(t *testing.T) {
	d := Date{Day: 10, Month: 3, Year: 1986}
	rs, err := SunriseAndSunset(d, Zone{Correction: -5}, -71.05, 42.37)
	if err != nil {
		t.Fatalf("SunriseAndSunset: %v", err)
	}
	want := RiseSetTimes{
		Rise: Crossing{Time: HourMinute{Hour: 6, Minute: 5}, Date: d, Azimuth: 94.83},
		Set:  Crossing{Time: HourMinute{Hour: 17, Minute: 45}, Date: d, Azimuth: 265.43},
	}
	if rs != want {
		t.Errorf("SunriseAndSunset = %+v, want %+v", rs, want)
	}
}

func TestSunriseAndSunsetPolar(t *testing.T) {
	// Tromsø.
	const lon, lat = 18.96, 69.65
	tests := []struct {
		name string
		date Date
		want error
	}{
		{"midnight sun", Date{Day: 21, Month: 6, Year: 2025}, ErrCircumpolar},
		{"polar night", Date{Day: 21, Month: 12, Year: 2025}, ErrNeverRises},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SunriseAndSunset(tt.date, Zone{Correction: 1}, lon, lat)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMorningAndEveningTwilight(t *testing.T) {
	tw, err := MorningAndEveningTwilight(Date{Day: 7, Month: 9, Year: 1979}, Zone{}, 0, 52, TwilightAstronomical)
	if err != nil {
		t.Fatalf("MorningAndEveningTwilight: %v", err)
	}
	want := TwilightTimes{Begin: HourMinute{Hour: 3, Minute: 17}, End: HourMinute{Hour: 20, Minute: 37}}
	if tw != want {
		t.Errorf("astronomical twilight = %+v, want %+v", tw, want)
	}

	// Each deeper kind begins earlier and ends later.
	prev := TwilightTimes{Begin: HourMinute{Hour: 24}}
	for _, k := range []TwilightKind{TwilightCivil, TwilightNautical, TwilightAstronomical} {
		tw, err := MorningAndEveningTwilight(Date{Day: 7, Month: 9, Year: 1979}, Zone{}, 0, 52, k)
		if err != nil {
			t.Fatalf("%s twilight: %v", k, err)
		}
		begin := tw.Begin.Hour*60 + tw.Begin.Minute
		end := tw.End.Hour*60 + tw.End.Minute
		if begin >= prev.Begin.Hour*60+prev.Begin.Minute || end <= prev.End.Hour*60+prev.End.Minute {
			t.Errorf("%s twilight %+v does not contain %+v", k, tw, prev)
		}
		prev = tw
	}
}

func TestTwilightAllNight(t *testing.T) {
	// At 60°N around the June solstice the Sun stays above -18°.
	_, err := MorningAndEveningTwilight(Date{Day: 21, Month: 6, Year: 2025}, Zone{Correction: 2}, 24.94, 60.17, TwilightAstronomical)
	if !errors.Is(err, ErrTwilightAllNight) {
		t.Errorf("err = %v, want ErrTwilightAllNight", err)
	}
}

func TestEquationOfTime(t *testing.T) {
	h, eot := EquationOfTime(Date{Day: 27, Month: 7, Year: 2010})
	if eot.Hours != 0 || eot.Minutes != 6 || eot.Seconds != 31.52 {
		t.Errorf("equation of time = %+v, want 6m 31.52s", eot)
	}
	// The Sun transits after noon UT at the end of July.
	if h <= 0 {
		t.Errorf("signed equation of time = %v h, want positive", h)
	}
	if math.Abs(h*60-6.525) > 0.01 {
		t.Errorf("equation of time = %v min, want about 6.525", h*60)
	}
}

func TestSolarElongation(t *testing.T) {
	eq := Equatorial{RA: HMS{Hours: 10, Minutes: 6, Seconds: 45}, Dec: DMS{Degrees: 11, Minutes: 57, Seconds: 27}}
	if got := SolarElongation(eq, Date{Day: 27.8333333, Month: 7, Year: 2010}); got != 24.78 {
		t.Errorf("SolarElongation = %v, want 24.78", got)
	}
}

func TestTwilightKind(t *testing.T) {
	tests := []struct {
		kind  TwilightKind
		depth float64
		name  string
	}{
		{TwilightCivil, 6, "civil"},
		{TwilightNautical, 12, "nautical"},
		{TwilightAstronomical, 18, "astronomical"},
	}
	for _, tt := range tests {
		d, err := tt.kind.Depression()
		if err != nil || d != tt.depth {
			t.Errorf("%v.Depression() = %v, %v, want %v", tt.kind, d, err, tt.depth)
		}
		if tt.kind.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.kind.String(), tt.name)
		}
	}
	if _, err := TwilightKind(7).Depression(); err == nil {
		t.Error("Depression of an unknown kind should fail")
	}
}
