package planet

import (
	"math"

	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// perturbations are the corrections applied to one planet's orbit:
//
//	qa  heliocentric longitude, degrees
//	qb  radius vector, AU
//	qc  longitude of perihelion (together with qe), radians
//	qd  eccentricity
//	qe  mean anomaly, radians
//	qf  semi-major axis, AU
//	qg  heliocentric latitude, radians
type perturbations struct {
	qa, qb, qc, qd, qe, qf, qg float64
}

// anomalies are the mean anomalies (radians) of all seven planets, less
// their light time, indexed by ID.
type anomalies [7]float64

func perturb(id ID, ap anomalies, ms, t float64, ecc float64) perturbations {
	switch id {
	case Mercury:
		return mercury(ap)
	case Venus:
		return venus(ap, ms, t)
	case Mars:
		return mars(ap, ms)
	default:
		return outer(id, t, ecc)
	}
}

func mercury(ap anomalies) perturbations {
	var p perturbations
	p.qa = 0.00204 * math.Cos(5.0*ap[Venus]-2.0*ap[Mercury]+0.21328)
	p.qa += 0.00103 * math.Cos(2.0*ap[Venus]-ap[Mercury]-2.8046)
	p.qa += 0.00091 * math.Cos(2.0*ap[Jupiter]-ap[Mercury]-0.64582)
	p.qa += 0.00078 * math.Cos(5.0*ap[Venus]-3.0*ap[Mercury]+0.17692)

	p.qb = 0.000007525 * math.Cos(2.0*ap[Jupiter]-ap[Mercury]+0.925251)
	p.qb += 0.000006802 * math.Cos(5.0*ap[Venus]-3.0*ap[Mercury]-4.53642)
	p.qb += 0.000005457 * math.Cos(2.0*ap[Venus]-2.0*ap[Mercury]-1.24246)
	p.qb += 0.000003569 * math.Cos(5.0*ap[Venus]-ap[Mercury]-1.35699)
	return p
}

func venus(ap anomalies, ms, t float64) perturbations {
	var p perturbations
	p.qc = timeutil.Deg2Rad(0.00077 * math.Sin(4.1406+t*2.6227))
	p.qe = p.qc

	v := ap[Venus]
	p.qa = 0.00313 * math.Cos(2.0*ms-2.0*v-2.587)
	p.qa += 0.00198 * math.Cos(3.0*ms-3.0*v+0.044768)
	p.qa += 0.00136 * math.Cos(ms-v-2.0788)
	p.qa += 0.00096 * math.Cos(3.0*ms-2.0*v-2.3721)
	p.qa += 0.00082 * math.Cos(ap[Jupiter]-v-3.6318)

	p.qb = 0.000022501 * math.Cos(2.0*ms-2.0*v-1.01592)
	p.qb += 0.000019045 * math.Cos(3.0*ms-3.0*v+1.61577)
	p.qb += 0.000006887 * math.Cos(ap[Jupiter]-v-2.06106)
	p.qb += 0.000005172 * math.Cos(ms-v-0.508065)
	p.qb += 0.00000362 * math.Cos(5.0*ms-4.0*v-1.81877)
	p.qb += 0.000003283 * math.Cos(4.0*ms-4.0*v+1.10851)
	p.qb += 0.000003074 * math.Cos(2.0*ap[Jupiter]-2.0*v-0.962846)
	return p
}

func mars(ap anomalies, ms float64) perturbations {
	var p perturbations
	m, j := ap[Mars], ap[Jupiter]

	a := 3.0*j - 8.0*m + 4.0*ms
	p.qc = timeutil.Deg2Rad(-(0.01133*math.Sin(a) + 0.00933*math.Cos(a)))
	p.qe = p.qc

	p.qa = 0.00705 * math.Cos(j-m-0.85448)
	p.qa += 0.00607 * math.Cos(2.0*j-m-3.2873)
	p.qa += 0.00445 * math.Cos(2.0*j-2.0*m-3.3492)
	p.qa += 0.00388 * math.Cos(ms-2.0*m+0.35771)
	p.qa += 0.00238 * math.Cos(ms-m+0.61256)
	p.qa += 0.00204 * math.Cos(2.0*ms-3.0*m+2.7688)
	p.qa += 0.00177 * math.Cos(3.0*m-ap[Venus]-1.0053)
	p.qa += 0.00136 * math.Cos(2.0*ms-4.0*m+2.6894)
	p.qa += 0.00104 * math.Cos(j+0.30749)

	p.qb = 0.000053227 * math.Cos(j-m+0.717864)
	p.qb += 0.000050989 * math.Cos(2.0*j-2.0*m-1.77997)
	p.qb += 0.000038278 * math.Cos(2.0*j-m-1.71617)
	p.qb += 0.000015996 * math.Cos(ms-m-0.969618)
	p.qb += 0.000014764 * math.Cos(2.0*ms-3.0*m+1.19768)
	p.qb += 0.000008966 * math.Cos(j-2.0*m+0.761225)
	p.qb += 0.000007914 * math.Cos(3.0*j-2.0*m-2.43887)
	p.qb += 0.000007004 * math.Cos(2.0*j-3.0*m-1.79573)
	p.qb += 0.00000662 * math.Cos(ms-2.0*m+1.97575)
	p.qb += 0.00000493 * math.Cos(3.0*j-3.0*m-1.33069)
	p.qb += 0.000004693 * math.Cos(3.0*ms-5.0*m+3.32665)
	p.qb += 0.000004571 * math.Cos(2.0*ms-4.0*m+4.27086)
	p.qb += 0.000004409 * math.Cos(3.0*j-m-2.02158)
	return p
}

// outer computes the mutual perturbations of the four giant planets. ecc is
// the planet's unperturbed eccentricity, which scales the mean anomaly term.
func outer(id ID, t, ecc float64) perturbations {
	j1 := t/5.0 + 0.1
	j2 := timeutil.Unwind(4.14473 + 52.9691*t)
	j3 := timeutil.Unwind(4.641118 + 21.32991*t)
	j4 := timeutil.Unwind(4.250177 + 7.478172*t)
	j5 := 5.0*j3 - 2.0*j2
	j6 := 2.0*j2 - 6.0*j3 + 3.0*j4

	switch id {
	case Jupiter, Saturn:
		return jupiterSaturn(id, j1, j2, j3, j4, j5, j6, ecc)
	case Uranus, Neptune:
		return uranusNeptune(id, t, j1, j2, j3, j4, j6, ecc)
	}
	return perturbations{}
}

func jupiterSaturn(id ID, j1, j2, j3, j4, j5, j6, ecc float64) perturbations {
	var p perturbations

	j7 := j3 - j2
	u1 := math.Sin(j3)
	u2 := math.Cos(j3)
	u3 := math.Sin(2.0 * j3)
	u4 := math.Cos(2.0 * j3)
	u5 := math.Sin(j5)
	u6 := math.Cos(j5)
	u7 := math.Sin(2.0 * j5)
	u8a := math.Sin(j6)
	u9 := math.Sin(j7)
	ua := math.Cos(j7)
	ub := math.Sin(2.0 * j7)
	uc := math.Cos(2.0 * j7)
	ud := math.Sin(3.0 * j7)
	ue := math.Cos(3.0 * j7)
	uf := math.Sin(4.0 * j7)
	ug := math.Cos(4.0 * j7)
	vh := math.Cos(5.0 * j7)

	if id == Saturn {
		ui := math.Sin(3.0 * j3)
		uj := math.Cos(3.0 * j3)
		uk := math.Sin(4.0 * j3)
		ul := math.Cos(4.0 * j3)
		vi := math.Cos(2.0 * j5)
		un := math.Sin(5.0 * j7)
		j8 := j4 - j3
		uo := math.Sin(2.0 * j8)
		up := math.Cos(2.0 * j8)
		uq := math.Sin(3.0 * j8)
		ur := math.Cos(3.0 * j8)

		qc := 0.007581*u7 - 0.007986*u8a - 0.148811*u9
		qc -= (0.814181 - (0.01815-0.016714*j1)*j1) * u5
		qc -= (0.010497 - (0.160906-0.0041*j1)*j1) * u6
		qc = qc - 0.015208*ud - 0.006339*uf - 0.006244*u1
		qc = qc - 0.0165*ub*u1 - 0.040786*ub
		qc = qc + (0.008931+0.002728*j1)*u9*u1 - 0.005775*ud*u1
		qc = qc + (0.081344+0.003206*j1)*ua*u1 + 0.015019*uc*u1
		qc = qc + (0.085581+0.002494*j1)*u9*u2 + 0.014394*uc*u2
		qc = qc + (0.025328-0.003117*j1)*ua*u2 + 0.006319*ue*u2
		qc = qc + 0.006369*u9*u3 + 0.009156*ub*u3 + 0.007525*uq*u3
		qc = qc - 0.005236*ua*u4 - 0.007736*uc*u4 - 0.007528*ur*u4
		p.qc = timeutil.Deg2Rad(qc)

		qd := (-7927.0 + (2548.0+91.0*j1)*j1) * u5
		qd = qd + (13381.0+(1226.0-253.0*j1)*j1)*u6 + (248.0-121.0*j1)*u7
		qd = qd - (305.0+91.0*j1)*vi + 412.0*ub + 12415.0*u1
		qd = qd + (390.0-617.0*j1)*u9*u1 + (165.0-204.0*j1)*ub*u1
		qd = qd + 26599.0*ua*u1 - 4687.0*uc*u1 - 1870.0*ue*u1 - 821.0*ug*u1
		qd = qd - 377.0*vh*u1 + 497.0*up*u1 + (163.0-611.0*j1)*u2
		qd = qd - 12696.0*u9*u2 - 4200.0*ub*u2 - 1503.0*ud*u2 - 619.0*uf*u2
		qd = qd - 268.0*un*u2 - (282.0+1306.0*j1)*ua*u2
		qd = qd + (-86.0+230.0*j1)*uc*u2 + 461.0*uo*u2 - 350.0*u3
		qd = qd + (2211.0-286.0*j1)*u9*u3 - 2208.0*ub*u3 - 568.0*ud*u3
		qd = qd - 346.0*uf*u3 - (2780.0+222.0*j1)*ua*u3
		qd = qd + (2022.0+263.0*j1)*uc*u3 + 248.0*ue*u3 + 242.0*uq*u3
		qd = qd + 467.0*ur*u3 - 490.0*u4 - (2842.0+279.0*j1)*u9*u4
		qd = qd + (128.0+226.0*j1)*ub*u4 + 224.0*ud*u4
		qd = qd + (-1594.0+282.0*j1)*ua*u4 + (2162.0-207.0*j1)*uc*u4
		qd = qd + 561.0*ue*u4 + 343.0*ug*u4 + 469.0*uq*u4 - 242.0*ur*u4
		qd = qd - 205.0*u9*ui + 262.0*ud*ui + 208.0*ua*uj - 271.0*ue*uj
		qd = qd - 382.0*ue*uk - 376.0*ud*ul
		p.qd = qd * 0.0000001

		vk := (0.077108 + (0.007186-0.001533*j1)*j1) * u5
		vk -= 0.007075 * u9
		vk += (0.045803 - (0.014766+0.000536*j1)*j1) * u6
		vk = vk - 0.072586*u2 - 0.075825*u9*u1 - 0.024839*ub*u1
		vk = vk - 0.008631*ud*u1 - 0.150383*ua*u2
		vk = vk + 0.026897*uc*u2 + 0.010053*ue*u2
		vk = vk - (0.013597+0.001719*j1)*u9*u3 + 0.011981*ub*u4
		vk -= (0.007742 - 0.001517*j1) * ua * u3
		vk += (0.013586 - 0.001375*j1) * uc * u3
		vk -= (0.013667 - 0.001239*j1) * u9 * u4
		vk += (0.014861 + 0.001136*j1) * ua * u4
		vk -= (0.013064 + 0.001628*j1) * uc * u4
		p.qe = p.qc - timeutil.Deg2Rad(vk)/ecc

		qf := 572.0*u5 - 1590.0*ub*u2 + 2933.0*u6 - 647.0*ud*u2
		qf = qf + 33629.0*ua - 344.0*uf*u2 - 3081.0*uc + 2885.0*ua*u2
		qf = qf - 1423.0*ue + (2172.0+102.0*j1)*uc*u2 - 671.0*ug
		qf = qf + 296.0*ue*u2 - 320.0*vh - 267.0*ub*u3 + 1098.0*u1
		qf = qf - 778.0*ua*u3 - 2812.0*u9*u1 + 495.0*uc*u3 + 688.0*ub*u1
		qf = qf + 250.0*ue*u3 - 393.0*ud*u1 - 856.0*u9*u4 - 228.0*uf*u1
		qf = qf + 441.0*ub*u4 + 2138.0*ua*u1 + 296.0*uc*u4 - 999.0*uc*u1
		qf = qf + 211.0*ue*u4 - 642.0*ue*u1 - 427.0*u9*ui - 325.0*ug*u1
		qf = qf + 398.0*ud*ui - 890.0*u2 + 344.0*ua*uj + 2206.0*u9*u2
		qf -= 427.0 * ue * uj
		p.qf = qf * 0.000001

		qg := 0.000747*ua*u1 + 0.001069*ua*u2 + 0.002108*ub*u3
		qg = qg + 0.001261*uc*u3 + 0.001236*ub*u4 - 0.002075*uc*u4
		p.qg = timeutil.Deg2Rad(qg)
		return p
	}

	qc := (0.331364 - (0.010281+0.004692*j1)*j1) * u5
	qc += (0.003228 - (0.064436-0.002075*j1)*j1) * u6
	qc -= (0.003083 + (0.000275-0.000489*j1)*j1) * u7
	qc = qc + 0.002472*u8a + 0.013619*u9 + 0.018472*ub
	qc = qc + 0.006717*ud + 0.002775*uf + 0.006417*ub*u1
	qc = qc + (0.007275-0.001253*j1)*u9*u1 + 0.002439*ud*u1
	qc = qc - (0.035681+0.001208*j1)*u9*u2 - 0.003767*uc*u1
	qc = qc - (0.033839+0.001125*j1)*ua*u1 - 0.004261*ub*u2
	qc = qc + (0.001161*j1-0.006333)*ua*u2 + 0.002178*u2
	qc = qc - 0.006675*uc*u2 - 0.002664*ue*u2 - 0.002572*u9*u3
	qc = qc - 0.003567*ub*u3 + 0.002094*ua*u4 + 0.003342*uc*u4
	p.qc = timeutil.Deg2Rad(qc)

	qd := (3606.0+(130.0-43.0*j1)*j1)*u5 + (1289.0-580.0*j1)*u6
	qd = qd - 6764.0*u9*u1 - 1110.0*ub*u1 - 224.0*ud*u1 - 204.0*u1
	qd = qd + (1284.0+116.0*j1)*ua*u1 + 188.0*uc*u1
	qd = qd + (1460.0+130.0*j1)*u9*u2 + 224.0*ub*u2 - 817.0*u2
	qd = qd + 6074.0*u2*ua + 992.0*uc*u2 + 508.0*ue*u2 + 230.0*ug*u2
	qd = qd + 108.0*vh*u2 - (956.0+73.0*j1)*u9*u3 + 448.0*ub*u3
	qd = qd + 137.0*ud*u3 + (108.0*j1-997.0)*ua*u3 + 480.0*uc*u3
	qd = qd + 148.0*ue*u3 + (99.0*j1-956.0)*u9*u4 + 490.0*ub*u4
	qd = qd + 158.0*ud*u4 + 179.0*u4 + (1024.0+75.0*j1)*ua*u4
	qd = qd - 437.0*uc*u4 - 132.0*ue*u4
	p.qd = qd * 0.0000001

	vk := (0.007192-0.003147*j1)*u5 - 0.004344*u1
	vk += (j1*(0.000197*j1-0.000675) - 0.020428) * u6
	vk = vk + 0.034036*ua*u1 + (0.007269+0.000672*j1)*u9*u1
	vk = vk + 0.005614*uc*u1 + 0.002964*ue*u1 + 0.037761*u9*u2
	vk = vk + 0.006158*ub*u2 - 0.006603*ua*u2 - 0.005356*u9*u3
	vk = vk + 0.002722*ub*u3 + 0.004483*ua*u3
	vk = vk - 0.002642*uc*u3 + 0.004403*u9*u4
	vk = vk - 0.002536*ub*u4 + 0.005547*ua*u4 - 0.002689*uc*u4
	p.qe = p.qc - timeutil.Deg2Rad(vk)/ecc

	qf := 205.0*ua - 263.0*u6 + 693.0*uc + 312.0*ue + 147.0*ug + 299.0*u9*u1
	qf = qf + 181.0*uc*u1 + 204.0*ub*u2 + 111.0*ud*u2 - 337.0*ua*u2
	qf -= 111.0 * uc * u2
	p.qf = qf * 0.000001
	return p
}

func uranusNeptune(id ID, t, j1, j2, j3, j4, j6, ecc float64) perturbations {
	var p perturbations

	j8 := timeutil.Unwind(1.46205 + 3.81337*t)
	j9 := 2.0*j8 - j4
	vj := math.Sin(j9)
	uu := math.Cos(j9)
	uv := math.Sin(2.0 * j9)
	uw := math.Cos(2.0 * j9)

	if id == Neptune {
		ja := j8 - j2
		jb := j8 - j3
		jc := j8 - j4

		qc := (0.001089*j1 - 0.589833) * vj
		qc = qc + (0.004658*j1-0.056094)*uu - 0.024286*uv
		p.qc = timeutil.Deg2Rad(qc)

		vk := 0.024039*vj - 0.025303*uu + 0.006206*uv
		vk -= 0.005992 * uw
		p.qe = p.qc - timeutil.Deg2Rad(vk)/ecc

		qd := 4389.0*vj + 1129.0*uv + 4262.0*uu + 1089.0*uw
		p.qd = qd * 0.0000001

		qf := 8189.0*uu - 817.0*vj + 781.0*uw
		p.qf = qf * 0.000001

		vd := math.Sin(2.0 * jc)
		ve := math.Cos(2.0 * jc)
		vf := math.Sin(j8)
		vg := math.Cos(j8)
		qa := -0.009556*math.Sin(ja) - 0.005178*math.Sin(jb)
		p.qa = qa + 0.002572*vd - 0.002972*ve*vf - 0.002833*vd*vg

		qg := 0.000336*ve*vf + 0.000364*vd*vg
		p.qg = timeutil.Deg2Rad(qg)

		qb := -40596.0 + 4992.0*math.Cos(ja) + 2744.0*math.Cos(jb)
		qb = qb + 2044.0*math.Cos(jc) + 1051.0*ve
		p.qb = qb * 0.000001
		return p
	}

	ja := j4 - j2
	jb := j4 - j3
	jc := j8 - j4

	qc := (0.864319 - 0.001583*j1) * vj
	qc = qc + (0.082222-0.006833*j1)*uu + 0.036017*uv
	qc = qc - 0.003019*uw + 0.008122*math.Sin(j6)
	p.qc = timeutil.Deg2Rad(qc)

	vk := 0.120303*vj + 0.006197*uv
	vk += (0.019472 - 0.000947*j1) * uu
	p.qe = p.qc - timeutil.Deg2Rad(vk)/ecc

	qd := (163.0*j1-3349.0)*vj + 20981.0*uu + 1311.0*uw
	p.qd = qd * 0.0000001

	p.qf = -0.003825 * uu

	qa := (-0.038581 + (0.002031-0.00191*j1)*j1) * math.Cos(j4+jb)
	qa += (0.010122 - 0.000988*j1) * math.Sin(j4+jb)
	a := (0.034964 - (0.001038-0.000868*j1)*j1) * math.Cos(2.0*j4+jb)
	qa = a + qa + 0.005594*math.Sin(j4+3.0*jc) - 0.014808*math.Sin(ja)
	qa = qa - 0.005794*math.Sin(jb) + 0.002347*math.Cos(jb)
	qa = qa + 0.009872*math.Sin(jc) + 0.008803*math.Sin(2.0*jc)
	p.qa = qa - 0.004308*math.Sin(3.0*jc)

	ux := math.Sin(jb)
	uy := math.Cos(jb)
	uz := math.Sin(j4)
	va := math.Cos(j4)
	vb := math.Sin(2.0 * j4)
	vc := math.Cos(2.0 * j4)
	qg := (0.000458*ux - 0.000642*uy - 0.000517*math.Cos(4.0*jc)) * uz
	qg -= (0.000347*ux + 0.000853*uy + 0.000517*math.Sin(4.0*jb)) * va
	qg += 0.000403 * (math.Cos(2.0*jc)*vb + math.Sin(2.0*jc)*vc)
	p.qg = timeutil.Deg2Rad(qg)

	qb := -25948.0 + 4985.0*math.Cos(ja) - 1230.0*va + 3354.0*uy
	qb = qb + 904.0*math.Cos(2.0*jc) + 894.0*(math.Cos(jc)-math.Cos(3.0*jc))
	qb += (5795.0*va - 1165.0*uz + 1388.0*vc) * ux
	qb += (1351.0*va + 5702.0*uz + 1388.0*vb) * uy
	p.qb = qb * 0.000001
	return p
}
