package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestStats(t *testing.T) {
	var s stats
	for _, v := range []float64{1, -3, math.NaN(), 2} {
		s.add(v)
	}
	if s.count != 3 || s.min != -3 || s.max != 2 {
		t.Fatalf("stats = %+v", s)
	}
	if got := s.mean(); got != 0 {
		t.Errorf("mean = %v, want 0", got)
	}
	if got, want := s.rms(), math.Sqrt(14.0/3.0); math.Abs(got-want) > 1e-12 {
		t.Errorf("rms = %v, want %v", got, want)
	}

	var buf bytes.Buffer
	s.print(&buf, "Sunrise error", "mean")
	if !strings.Contains(buf.String(), "count: 3") {
		t.Errorf("print output:\n%s", buf.String())
	}
}

func TestErrorPair(t *testing.T) {
	ref := time.Date(2025, 1, 1, 7, 30, 0, 0, time.UTC)

	var p errorPair
	abs, signed := p.add(ref.Add(-90*time.Second), ref)
	if abs != 1.5 || signed != -1.5 {
		t.Errorf("add = %v, %v, want 1.5, -1.5", abs, signed)
	}
	abs, _ = p.add(time.Time{}, ref)
	if !math.IsNaN(abs) {
		t.Errorf("missing event gave %v, want NaN", abs)
	}
	if p.abs.count != 1 || p.signed.count != 1 {
		t.Errorf("NaN sample was counted: %+v", p)
	}
}

func TestReadReferenceCSV(t *testing.T) {
	loc, err := time.LoadLocation("America/Phoenix")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "ref.csv")
	csv := "date,rise,set\n" +
		"2025-01-01,07:32,17:31\n" +
		"2025-01-02,07:32:30,-\n" +
		"not-a-date,07:00,17:00\n" +
		"2025-01-03,7h,17:00\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	refs, skipped := readReferenceCSV(path, loc, 2025)
	if len(refs) != 2 || skipped != 2 {
		t.Fatalf("got %d rows, %d skipped; want 2, 2", len(refs), skipped)
	}
	if want := time.Date(2025, 1, 1, 7, 32, 0, 0, loc); !refs[0].rise.Equal(want) {
		t.Errorf("rise = %s, want %s", refs[0].rise, want)
	}
	if refs[1].rise.Second() != 30 || !refs[1].set.IsZero() {
		t.Errorf("second row = %+v", refs[1])
	}
	if refs[0].row != 2 || refs[0].label != "2025-01-01" {
		t.Errorf("first row metadata = %d %q", refs[0].row, refs[0].label)
	}
}

func TestSunriseReference(t *testing.T) {
	loc, err := time.LoadLocation("America/Phoenix")
	if err != nil {
		t.Fatal(err)
	}
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, loc)
	refs := sunriseReference(33.4484, -112.0740, start, 3)
	if len(refs) != 3 {
		t.Fatalf("got %d days, want 3", len(refs))
	}
	for i, r := range refs {
		if r.rise.IsZero() || r.set.IsZero() || !r.rise.Before(r.set) {
			t.Errorf("day %d: rise %s set %s", i, r.rise, r.set)
		}
	}
}
