package bikecharts

// Dataset is the result of one load. It is never modified once built: a
// refresh builds a new Dataset and replaces the previous one as a whole.
type Dataset struct {
	Stations []Station
	Trips    []Trip
}

func (d *Dataset) Empty() bool {
	return d == nil || (len(d.Stations) == 0 && len(d.Trips) == 0)
}
