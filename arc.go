package bikecharts

const (
	fullcircle = 360.0
	halfcircle = 180.0
)

// Kind identifies one component of a station capacity. The order of the
// constants is the order in which segments are laid out, filled and listed
// in the legend.
type Kind int

const (
	KindBikes Kind = iota
	KindDocks
	KindBikesDisabled
	KindDocksDisabled
	kindCount
)

func Kinds() []Kind {
	return []Kind{KindBikes, KindDocks, KindBikesDisabled, KindDocksDisabled}
}

func (k Kind) String() string {
	switch k {
	case KindBikes:
		return "bikes available"
	case KindDocks:
		return "docks available"
	case KindBikesDisabled:
		return "bikes disabled"
	case KindDocksDisabled:
		return "docks disabled"
	default:
		return "unknown"
	}
}

type Part struct {
	Kind     Kind
	Quantity int
}

// Segment is an angular interval, in degrees, measured clockwise from the
// top of the circle.
type Segment struct {
	Kind  Kind
	Start float64
	End   float64
}

func (s Segment) Sweep() float64 {
	return s.End - s.Start
}

func (s Segment) Empty() bool {
	return s.Start == s.End
}

// Segments lays out parts one after the other around a circle. The whole
// station spans Map(total, 0, maxTotal, 0, 360) degrees so that only the
// stations as big as maxTotal draw a full ring. Every part yields a segment,
// zero-width ones included; use Drawable to drop them.
func Segments(parts []Part, total, maxTotal int) []Segment {
	var (
		sweep  = Sweep(total, maxTotal)
		offset float64
		count  int
		list   = make([]Segment, 0, len(parts))
	)
	for _, p := range parts {
		// ends come from the running quantity: the last one is exactly sweep
		count += p.Quantity
		end := Map(float64(count), 0, float64(total), 0, sweep)
		list = append(list, Segment{
			Kind:  p.Kind,
			Start: offset,
			End:   end,
		})
		offset = end
	}
	return list
}

// Sweep gives the angle covered by a station of the given total once
// normalized by the biggest station of the set.
func Sweep(total, maxTotal int) float64 {
	return Map(float64(total), 0, float64(maxTotal), 0, fullcircle)
}

func Drawable(segments []Segment) []Segment {
	list := make([]Segment, 0, len(segments))
	for _, s := range segments {
		if s.Empty() {
			continue
		}
		list = append(list, s)
	}
	return list
}
