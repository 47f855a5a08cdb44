package bikecharts

type Station struct {
	ID             string
	BikesAvailable int
	DocksAvailable int
	BikesDisabled  int
	DocksDisabled  int
}

func (s Station) Total() int {
	return s.BikesAvailable + s.DocksAvailable + s.BikesDisabled + s.DocksDisabled
}

func (s Station) Quantity(k Kind) int {
	switch k {
	case KindBikes:
		return s.BikesAvailable
	case KindDocks:
		return s.DocksAvailable
	case KindBikesDisabled:
		return s.BikesDisabled
	case KindDocksDisabled:
		return s.DocksDisabled
	default:
		return 0
	}
}

func (s Station) Parts() []Part {
	var parts []Part
	for _, k := range Kinds() {
		parts = append(parts, Part{
			Kind:     k,
			Quantity: s.Quantity(k),
		})
	}
	return parts
}

func (s Station) Segments(maxTotal int) []Segment {
	return Segments(s.Parts(), s.Total(), maxTotal)
}

// MaxCapacity returns the biggest total over the set, 0 for an empty set.
func MaxCapacity(set []Station) int {
	var max int
	for _, s := range set {
		if t := s.Total(); t > max {
			max = t
		}
	}
	return max
}
