package bikecharts

import (
	"math"
)

// DefaultCellSize is the side, in pixels, of the buckets used by the index to
// narrow down the markers close to the pointer.
const DefaultCellSize = 8.0

type Marker struct {
	Trip
	Pos
}

type cell struct {
	col int
	row int
}

// Index holds the markers of a scatter plot with their pixel positions. It is
// built once per dataset and only read afterwards.
type Index struct {
	plot    Plot
	size    float64
	markers []Marker
	cells   map[cell][]int
}

// BuildIndex computes the position of every trip accepted by the plot
// domains. Trips outside of the domains are dropped, never clamped.
func BuildIndex(trips []Trip, plot Plot) *Index {
	return buildIndex(trips, plot, DefaultCellSize)
}

func buildIndex(trips []Trip, plot Plot, size float64) *Index {
	if size <= 0 {
		size = DefaultCellSize
	}
	ix := Index{
		plot:    plot,
		size:    size,
		markers: make([]Marker, 0, len(trips)),
		cells:   make(map[cell][]int),
	}
	var (
		xs = plot.XScaler()
		ys = plot.YScaler()
	)
	for _, t := range trips {
		if !plot.Accept(t) {
			continue
		}
		m := Marker{
			Trip: t,
			Pos:  NewPos(xs.Scale(t.BirthYear), ys.Scale(t.Duration)),
		}
		c := ix.cellOf(m.X, m.Y)
		ix.cells[c] = append(ix.cells[c], len(ix.markers))
		ix.markers = append(ix.markers, m)
	}
	return &ix
}

func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.markers)
}

func (ix *Index) Plot() Plot {
	if ix == nil {
		return DefaultPlot()
	}
	return ix.plot
}

// Markers returns the markers in insertion order. The returned slice must not
// be modified.
func (ix *Index) Markers() []Marker {
	if ix == nil {
		return nil
	}
	return ix.markers
}

// Nearest returns the marker closest to pos whose distance is strictly less
// than radius. When several markers are at the same distance, the one
// inserted first wins.
func (ix *Index) Nearest(pos Pos, radius float64) (Marker, bool) {
	var (
		best = -1
		dist = radius
	)
	ix.visit(pos, radius, func(i int, d float64) {
		if d < dist || (d == dist && best >= 0 && i < best) {
			best, dist = i, d
		}
	})
	if best < 0 {
		return Marker{}, false
	}
	return ix.markers[best], true
}

// First returns the marker inserted first among the ones whose distance to
// pos is strictly less than radius, even if another one is closer.
func (ix *Index) First(pos Pos, radius float64) (Marker, bool) {
	best := -1
	ix.visit(pos, radius, func(i int, _ float64) {
		if best < 0 || i < best {
			best = i
		}
	})
	if best < 0 {
		return Marker{}, false
	}
	return ix.markers[best], true
}

func (ix *Index) visit(pos Pos, radius float64, fn func(int, float64)) {
	if ix == nil || len(ix.markers) == 0 || radius <= 0 {
		return
	}
	var (
		nx = ix.span(pos.X, radius)
		ny = ix.span(pos.Y, radius)
	)
	if !finite(pos.X, pos.Y, radius) || nx*ny > float64(len(ix.cells)) {
		for i := range ix.markers {
			if d := ix.markers[i].Distance(pos); d < radius {
				fn(i, d)
			}
		}
		return
	}
	var (
		lo = ix.cellOf(pos.X-radius, pos.Y-radius)
		hi = ix.cellOf(pos.X+radius, pos.Y+radius)
	)
	for col := lo.col; col <= hi.col; col++ {
		for row := lo.row; row <= hi.row; row++ {
			for _, i := range ix.cells[cell{col: col, row: row}] {
				if d := ix.markers[i].Distance(pos); d < radius {
					fn(i, d)
				}
			}
		}
	}
}

func (ix *Index) cellOf(x, y float64) cell {
	return cell{
		col: int(math.Floor(x / ix.size)),
		row: int(math.Floor(y / ix.size)),
	}
}

// span counts the cells covered by [v-radius, v+radius] on one axis.
func (ix *Index) span(v, radius float64) float64 {
	return math.Floor((v+radius)/ix.size) - math.Floor((v-radius)/ix.size) + 1
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}
