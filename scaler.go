package bikecharts

// Map projects v from the domain [dmin, dmax] onto [rmin, rmax] by linear
// interpolation. The result is not clamped: values outside the domain land
// outside the range, so callers filter them beforehand (see Domain.Contains).
//
// A degenerate domain (dmin == dmax) maps every value to rmin.
func Map(v, dmin, dmax, rmin, rmax float64) float64 {
	if dmax == dmin {
		return rmin
	}
	return rmin + (v-dmin)/(dmax-dmin)*(rmax-rmin)
}

type Domain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain {
	return Domain{
		fst: f,
		lst: t,
	}
}

// Contains reports whether v lies between the bounds of the domain, bounds
// included, whatever their order.
func (d Domain) Contains(v float64) bool {
	lo, hi := d.fst, d.lst
	if lo > hi {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

// Values splits the range in c equal steps and returns the c+1 positions,
// both ends included.
func (r Range) Values(c int) []float64 {
	if c <= 0 {
		return []float64{r.F, r.T}
	}
	all := make([]float64, 0, c+1)
	for i := 0; i < c; i++ {
		all = append(all, Map(float64(i), 0, float64(c), r.F, r.T))
	}
	return append(all, r.T)
}

type Scaler struct {
	Range
	Domain
}

func NumberScaler(dom Domain, rg Range) Scaler {
	return Scaler{
		Range:  rg,
		Domain: dom,
	}
}

func (s Scaler) Scale(v float64) float64 {
	return Map(v, s.fst, s.lst, s.F, s.T)
}

// Invert maps a position of the range back to the domain.
func (s Scaler) Invert(v float64) float64 {
	return Map(v, s.F, s.T, s.fst, s.lst)
}

