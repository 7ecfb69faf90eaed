package timeutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		x      float64
		places int
		want   float64
	}{
		{18.524166666666, 8, 18.52416667},
		{-71.5751, 1, -71.6},
		{151920129.6, 0, 151920130},
	}
	for _, tt := range tests {
		if got := Round(tt.x, tt.places); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.x, tt.places, got, tt.want)
		}
	}
}

func TestHoursParts(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		h, m int
		s    float64
	}{
		{"plain", HMSToHours(18, 31, 27), 18, 31, 27},
		{"negative", -1.5, -1, 30, 0},
		{"seconds round up to a minute", 59.999 / 3600.0, 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, s := HoursParts(tt.x)
			if h != tt.h || m != tt.m || s != tt.s {
				t.Errorf("HoursParts(%v) = %d %d %v, want %d %d %v", tt.x, h, m, s, tt.h, tt.m, tt.s)
			}
		})
	}
}

func TestSexagesimalSign(t *testing.T) {
	if got := DMSToDegrees(0, -30, 0); got != -0.5 {
		t.Errorf("DMSToDegrees(0, -30, 0) = %v, want -0.5", got)
	}
	d, m, s := DegreesParts(-0.5)
	// The sign lives on the degrees only, so -0°30' loses it.
	if d != 0 || m != 30 || s != 0 {
		t.Errorf("DegreesParts(-0.5) = %v %v %v", d, m, s)
	}
}

func TestCivilJD(t *testing.T) {
	if got := CivilToJD(19.75, 6, 2009); got != 2455002.25 {
		t.Errorf("CivilToJD(19.75, 6, 2009) = %v, want 2455002.25", got)
	}
	// Last Julian and first Gregorian calendar days are consecutive.
	if d := CivilToJD(15, 10, 1582) - CivilToJD(4, 10, 1582); d != 1 {
		t.Errorf("calendar reform gap = %v days, want 1", d)
	}

	day, month, year := JDToCivil(2455002.25)
	if math.Abs(day-19.75) > 1e-9 || month != 6 || year != 2009 {
		t.Errorf("JDToCivil(2455002.25) = %v/%d/%d, want 19.75/6/2009", day, month, year)
	}
}

func TestDayOfWeek(t *testing.T) {
	if got := DayOfWeek(2455001.5); got != 5 {
		t.Errorf("DayOfWeek(2455001.5) = %d, want 5 (Friday)", got)
	}
}

func TestLocalTime(t *testing.T) {
	lt := At(3+37.0/60.0, 1, 4, Date{Day: 1, Month: 7, Year: 2013})
	if got := Round(lt.UT(), 6); got != Round(22+37.0/60.0, 6) {
		t.Errorf("UT() = %v, want 22.616667", got)
	}
	if g := lt.GreenwichDate(); g != (Date{Day: 30, Month: 6, Year: 2013}) {
		t.Errorf("GreenwichDate() = %+v, want 30/6/2013", g)
	}

	h, d := UTToLocal(lt.UT(), 1, 4, lt.GreenwichDate())
	if math.Abs(h-lt.Hours) > 1e-6 || d != lt.Date {
		t.Errorf("UTToLocal = %v on %+v, want %v on %+v", h, d, lt.Hours, lt.Date)
	}
}

func TestSiderealRoundTrip(t *testing.T) {
	g := Date{Day: 22, Month: 4, Year: 1980}
	ut := HMSToHours(14, 36, 51.67)
	gst := UTToGST(ut, g)
	if math.Abs(gst-HMSToHours(4, 40, 5.23)) > 1e-5 {
		t.Errorf("UTToGST = %v, want 4h40m5.23s", gst)
	}
	if back := GSTToUT(gst, g); math.Abs(back-ut) > 1e-6 {
		t.Errorf("GSTToUT = %v, want %v", back, ut)
	}
	if GSTToUTAmbiguous(gst, g) {
		t.Error("afternoon UT reported ambiguous")
	}
	if !GSTToUTAmbiguous(UTToGST(0.02, g), g) {
		t.Error("UT 0h01m not reported ambiguous")
	}
}

func TestLint(t *testing.T) {
	tests := map[float64]float64{2.5: 2, -2.5: -3, -3: -4, 0: 0}
	for w, want := range tests {
		if got := Lint(w); got != want {
			t.Errorf("Lint(%v) = %v, want %v", w, got, want)
		}
	}
	if got := Fract(-2.5); got != 0.5 {
		t.Errorf("Fract(-2.5) = %v, want 0.5", got)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize360(-30); got != 330 {
		t.Errorf("Normalize360(-30) = %v", got)
	}
	if got := Normalize24(25.5); got != 1.5 {
		t.Errorf("Normalize24(25.5) = %v", got)
	}
	if got := Unwind(-math.Pi); math.Abs(got-math.Pi) > 1e-8 {
		t.Errorf("Unwind(-π) = %v", got)
	}
}

func TestDegreeTrig(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
		deg  float64
		want float64
	}{
		{"sin 30", SinD, 30, 0.5},
		{"sin -90", SinD, -90, -1},
		{"cos 60", CosD, 60, 0.5},
		{"cos 180", CosD, 180, -1},
		{"tan 45", TanD, 45, 1},
		{"tan -45", TanD, -45, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.deg); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
