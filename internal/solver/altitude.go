package solver

// AltitudeFunc returns altitude in degrees at local civil time h (decimal hours).
type AltitudeFunc func(h float64) float64

// EventType describes whether we are looking for a rising or setting event.
type EventType int

const (
	// CrossingUp means altitude is increasing through the target value (rise).
	CrossingUp EventType = iota
	// CrossingDown means altitude is decreasing through the target value (set).
	CrossingDown
)

// Result holds the output of an altitude event search.
type Result struct {
	Hours float64 // local civil time of the event, decimal hours
	OK    bool    // true if an event was found
}

// FindAltitudeEvent searches [start, end] (decimal hours) for a time where f
// crosses targetDeg in the direction given by eventType. The interval is
// sampled in steps pieces and the first bracket found is bisected down to
// tol hours.
func FindAltitudeEvent(f AltitudeFunc, start, end, targetDeg float64, eventType EventType, steps int, tol float64) Result {
	if !(start < end) {
		return Result{}
	}
	if steps < 2 {
		steps = 2
	}

	interval := (end - start) / float64(steps-1)

	prevH := start
	prevAlt := f(prevH) - targetDeg

	for i := 1; i < steps; i++ {
		h := start + float64(i)*interval
		alt := f(h) - targetDeg

		if hasCrossing(prevAlt, alt, eventType) {
			return bisect(f, prevH, h, targetDeg, eventType, tol)
		}

		prevH, prevAlt = h, alt
	}

	return Result{}
}

func hasCrossing(a1, a2 float64, eventType EventType) bool {
	switch eventType {
	case CrossingUp:
		return a1 < 0 && a2 >= 0
	case CrossingDown:
		return a1 > 0 && a2 <= 0
	default:
		return a1*a2 <= 0
	}
}

func bisect(f AltitudeFunc, a, b, targetDeg float64, eventType EventType, tol float64) Result {
	altA := f(a) - targetDeg
	altB := f(b) - targetDeg
	if !hasCrossing(altA, altB, eventType) {
		return Result{}
	}

	for i := 0; b-a > tol && i < MaxIterations; i++ {
		mid := a + (b-a)/2
		altM := f(mid) - targetDeg

		if hasCrossing(altA, altM, eventType) {
			b = mid
		} else {
			a = mid
			altA = altM
		}
	}

	return Result{Hours: a + (b-a)/2, OK: true}
}
