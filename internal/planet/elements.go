package planet

import (
	"math"
	"strings"
)

// ID identifies one of the seven planets handled by the precise model.
type ID int

const (
	Mercury ID = iota
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

var names = [...]string{"Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune"}

func (id ID) String() string {
	if id < Mercury || id > Neptune {
		return "unknown"
	}
	return names[id]
}

// ParseID maps a planet name to its ID, ignoring case.
func ParseID(name string) (ID, bool) {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return ID(i), true
		}
	}
	return 0, false
}

// poly holds the coefficients of a cubic in Julian centuries since 1900.
type poly [4]float64

func (p poly) at(t float64) float64 {
	return ((p[3]*t+p[2])*t+p[1])*t + p[0]
}

// series is the set of secular coefficients for one planet. For the mean
// longitude the linear term is in whole revolutions per century.
type series struct {
	longitude  poly
	perihelion poly
	ecc        poly
	incl       poly
	node       poly
	axis       float64 // AU
	theta0     float64 // angular diameter at 1 AU, arcsec
	v0         float64 // visual magnitude at 1 AU
}

var secular = [...]series{
	Mercury: {
		longitude:  poly{178.179078, 415.2057519, 0.0003011, 0},
		perihelion: poly{75.899697, 1.5554889, 0.0002947, 0},
		ecc:        poly{0.20561421, 0.00002046, -0.00000003, 0},
		incl:       poly{7.002881, 0.0018608, -0.0000183, 0},
		node:       poly{47.145944, 1.1852083, 0.0001739, 0},
		axis:       0.3870986, theta0: 6.74, v0: -0.42,
	},
	Venus: {
		longitude:  poly{342.767053, 162.5533664, 0.0003097, 0},
		perihelion: poly{130.163833, 1.4080361, -0.0009764, 0},
		ecc:        poly{0.00682069, -0.00004774, 0.000000091, 0},
		incl:       poly{3.393631, 0.0010058, -0.000001, 0},
		node:       poly{75.779647, 0.89985, 0.00041, 0},
		axis:       0.7233316, theta0: 16.92, v0: -4.4,
	},
	Mars: {
		longitude:  poly{293.737334, 53.17137642, 0.0003107, 0},
		perihelion: poly{334.218203, 1.8407584, 0.0001299, -0.00000119},
		ecc:        poly{0.0933129, 0.000092064, -0.000000077, 0},
		incl:       poly{1.850333, -0.000675, 0.0000126, 0},
		node:       poly{48.786442, 0.7709917, -0.0000014, -0.00000533},
		axis:       1.5236883, theta0: 9.36, v0: -1.52,
	},
	Jupiter: {
		longitude:  poly{238.049257, 8.434172183, 0.0003347, -0.00000165},
		perihelion: poly{12.720972, 1.6099617, 0.00105627, -0.00000343},
		ecc:        poly{0.04833475, 0.00016418, -0.0000004676, -0.0000000017},
		incl:       poly{1.308736, -0.0056961, 0.0000039, 0},
		node:       poly{99.443414, 1.01053, 0.00035222, -0.00000851},
		axis:       5.202561, theta0: 196.74, v0: -9.4,
	},
	Saturn: {
		longitude:  poly{266.564377, 3.398638567, 0.0003245, -0.0000058},
		perihelion: poly{91.098214, 1.9584158, 0.00082636, 0.00000461},
		ecc:        poly{0.05589232, -0.0003455, -0.000000728, 0.00000000074},
		incl:       poly{2.492519, -0.0039189, -0.00001549, 0.00000004},
		node:       poly{112.790414, 0.8731951, -0.00015218, -0.00000531},
		axis:       9.554747, theta0: 165.6, v0: -8.88,
	},
	Uranus: {
		longitude:  poly{244.19747, 1.194065406, 0.000316, -0.0000006},
		perihelion: poly{171.548692, 1.4844328, 0.0002372, -0.00000061},
		ecc:        poly{0.0463444, -0.00002658, 0.000000077, 0},
		incl:       poly{0.772464, 0.0006253, 0.0000395, 0},
		node:       poly{73.477111, 0.4986678, 0.0013117, 0},
		axis:       19.21814, theta0: 65.8, v0: -7.19,
	},
	Neptune: {
		longitude:  poly{84.457994, 0.6107942056, 0.0003205, -0.0000006},
		perihelion: poly{46.727364, 1.4245744, 0.00039082, -0.000000605},
		ecc:        poly{0.00899704, 0.00000633, -0.000000002, 0},
		incl:       poly{1.779242, -0.0095436, -0.0000091, 0},
		node:       poly{130.681389, 1.098935, 0.00024987, -0.000004718},
		axis:       30.10957, theta0: 62.2, v0: -6.87,
	},
}

// osculating is a planet's orbit evaluated at one instant. Angles are in
// degrees; motion is the daily motion in degrees used for light time.
type osculating struct {
	meanLongitude float64
	motion        float64
	perihelion    float64
	ecc           float64
	incl          float64
	node          float64
	axis          float64
}

func (s series) at(t float64) osculating {
	a := s.longitude
	aa := a[1] * t
	c := a[0] + 360.0*(aa-math.Floor(aa)) + (a[3]*t+a[2])*t*t

	return osculating{
		meanLongitude: c - 360.0*math.Floor(c/360.0),
		motion:        a[1]*0.009856263 + (a[2]+a[3])/36525.0,
		perihelion:    s.perihelion.at(t),
		ecc:           s.ecc.at(t),
		incl:          s.incl.at(t),
		node:          s.node.at(t),
		axis:          s.axis,
	}
}

// AngularDiameter1AU and Magnitude1AU return the constants the visual
// aspects are scaled from.
func (id ID) AngularDiameter1AU() float64 { return secular[id].theta0 }

func (id ID) Magnitude1AU() float64 { return secular[id].v0 }
