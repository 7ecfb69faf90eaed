package main

import (
	"fmt"
	"io"
	"math"
	"time"
)

// stats accumulates error samples in minutes. NaN samples (a missing
// event on either side) are ignored.
type stats struct {
	count int
	sum   float64
	sumSq float64
	min   float64
	max   float64
}

func (s *stats) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.count == 0 {
		s.min, s.max = v, v
	} else {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	s.sum += v
	s.sumSq += v * v
	s.count++
}

func (s *stats) mean() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.sum / float64(s.count)
}

// rms is the root mean square of the samples.
func (s *stats) rms() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return math.Sqrt(s.sumSq / float64(s.count))
}

func (s *stats) print(w io.Writer, title, avgLabel string) {
	fmt.Fprintf(w, "\n%s:\n", title)
	fmt.Fprintf(w, "  count: %d\n", s.count)
	fmt.Fprintf(w, "  min:   %.3f\n", s.min)
	fmt.Fprintf(w, "  max:   %.3f\n", s.max)
	fmt.Fprintf(w, "  %-5s  %.3f\n", avgLabel+":", s.mean())
	fmt.Fprintf(w, "  rms:   %.3f\n", s.rms())
}

// errorPair tracks absolute and signed (ours - reference) errors of one
// event.
type errorPair struct {
	abs, signed stats
}

func (p *errorPair) add(got, ref time.Time) (abs, signed float64) {
	signed = diffMinutesSigned(got, ref)
	abs = math.Abs(signed)
	p.abs.add(abs)
	p.signed.add(signed)
	return abs, signed
}

func diffMinutesSigned(a, b time.Time) float64 {
	// If either time is zero, treat as "no data".
	if a.IsZero() || b.IsZero() {
		return math.NaN()
	}
	return a.Sub(b).Minutes()
}
