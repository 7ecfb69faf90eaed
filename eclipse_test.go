package practicalastro

import "testing"

func ut(h, m int) Contact {
	return Contact{UT: HourMinute{Hour: h, Minute: m}, OK: true}
}

func TestLunarEclipse(t *testing.T) {
	d := Date{Day: 1, Month: 4, Year: 2015}
	z := Zone{Correction: 10}

	lk, ld := LunarEclipseOccurrence(d, z)
	if lk != EclipseCertain || ld != (Date{Day: 4, Month: 4, Year: 2015}) {
		t.Fatalf("LunarEclipseOccurrence = %v on %+v, want certain on 4/4/2015", lk, ld)
	}

	l := LunarEclipseCircumstances(d, z)
	tests := []struct {
		name      string
		got, want Contact
	}{
		{"penumbral start", l.PenumbralStart, ut(9, 0)},
		{"umbral start", l.UmbralStart, ut(10, 16)},
		{"total start", l.TotalStart, ut(11, 55)},
		{"maximum", l.Maximum, ut(12, 1)},
		{"total end", l.TotalEnd, ut(12, 7)},
		{"umbral end", l.UmbralEnd, ut(13, 46)},
		{"penumbral end", l.PenumbralEnd, ut(15, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
	if !l.HasMagnitude || l.Magnitude != 1.01 {
		t.Errorf("magnitude = %v (%v), want 1.01", l.Magnitude, l.HasMagnitude)
	}
}

func TestSolarEclipse(t *testing.T) {
	sk, sd := SolarEclipseOccurrence(Date{Day: 1, Month: 4, Year: 2015}, Zone{})
	if sk != EclipseCertain || sd != (Date{Day: 20, Month: 3, Year: 2015}) {
		t.Fatalf("SolarEclipseOccurrence = %v on %+v, want certain on 20/3/2015", sk, sd)
	}

	s := SolarEclipseCircumstances(Date{Day: 20, Month: 3, Year: 2015}, Zone{}, 0, 68.65)
	for _, c := range []struct {
		name      string
		got, want Contact
	}{
		{"first contact", s.FirstContact, ut(8, 55)},
		{"maximum", s.Maximum, ut(9, 57)},
		{"last contact", s.LastContact, ut(10, 58)},
	} {
		if c.got != c.want {
			t.Errorf("%s = %+v, want %+v", c.name, c.got, c.want)
		}
	}
	if !s.HasMagnitude || s.Magnitude != 1.016 {
		t.Errorf("magnitude = %v (%v), want 1.016", s.Magnitude, s.HasMagnitude)
	}
}

func TestNoEclipse(t *testing.T) {
	// The full moon of early June 2015 fell far from the lunar nodes.
	lk, _ := LunarEclipseOccurrence(Date{Day: 1, Month: 6, Year: 2015}, Zone{})
	if lk != EclipseNone {
		t.Fatalf("LunarEclipseOccurrence = %v, want none", lk)
	}
	l := LunarEclipseCircumstances(Date{Day: 1, Month: 6, Year: 2015}, Zone{})
	if l.Maximum.OK || l.HasMagnitude {
		t.Errorf("circumstances without an eclipse = %+v", l)
	}
}

func TestEclipseLikelihoodString(t *testing.T) {
	for l, want := range map[EclipseLikelihood]string{
		EclipseNone:     "none",
		EclipsePossible: "possible",
		EclipseCertain:  "certain",
	} {
		if got := l.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(l), got, want)
		}
	}
}
