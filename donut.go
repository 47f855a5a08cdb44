package bikecharts

const ringFill = "#eeeeee"

// DonutGrid draws one donut per station, stations being laid out row by row
// on a fixed number of columns. Margin is the center of the first donut and
// Spacing the distance between the centers of two neighbours.
type DonutGrid struct {
	Columns int
	Margin  Pos
	Spacing Pos
	Size    float64
	Hole    float64

	WithLabel  bool
	WithLegend bool
}

func DefaultDonutGrid() DonutGrid {
	return DonutGrid{
		Columns:    12,
		Margin:     NewPos(50, 50),
		Spacing:    NewPos(100, 120),
		Size:       80,
		Hole:       0.5,
		WithLabel:  true,
		WithLegend: true,
	}
}

func (g DonutGrid) columns() int {
	if g.Columns <= 0 {
		return 1
	}
	return g.Columns
}

func (g DonutGrid) rows(n int) int {
	if n <= 0 {
		return 0
	}
	return (n-1)/g.columns() + 1
}

func (g DonutGrid) Center(i int) Pos {
	var (
		row = i / g.columns()
		col = i % g.columns()
	)
	return g.Margin.Add(g.Spacing.X*float64(col), g.Spacing.Y*float64(row))
}

// Bounds gives the dimension of a canvas able to hold n stations.
func (g DonutGrid) Bounds(n int) (float64, float64) {
	var (
		cols = g.columns()
		rows = g.rows(n)
	)
	if n < cols {
		cols = n
	}
	if rows == 0 {
		return g.Margin.X * 2, g.Margin.Y * 2
	}
	var (
		width  = g.Margin.X*2 + g.Spacing.X*float64(cols-1)
		height = g.Margin.Y*2 + g.Spacing.Y*float64(rows-1)
	)
	if g.WithLegend {
		height += FontSize * 3
	}
	return width, height
}

// Render draws the whole set. The biggest station of the set gives the scale
// of every donut, so the set has to be rendered at once.
func (g DonutGrid) Render(cv Canvas, set []Station) {
	if len(set) == 0 {
		return
	}
	max := MaxCapacity(set)
	for i, s := range set {
		g.renderStation(cv, g.Center(i), s, max)
	}
	if g.WithLegend {
		g.renderLegend(cv, len(set))
	}
}

func (g DonutGrid) renderStation(cv Canvas, center Pos, s Station, max int) {
	var (
		outer = g.Size / 2
		inner = outer * g.Hole
	)
	cv.Circle(center, outer, FillStyle(ringFill))
	for _, seg := range Drawable(s.Segments(max)) {
		cv.Sector(center, inner, outer, seg.Start, seg.End, FillStyle(seg.Kind.Fill()))
	}
	if inner > 0 {
		cv.Circle(center, inner, FillStyle(white))
	}
	cv.Circle(center, outer, StrokeStyle(black, 1).WithOpacity(0.4))
	if g.WithLabel {
		cv.Text(s.ID, center.Add(0, outer+FontSize), AlignMiddle, TextStyle(black, FontSize*0.8))
	}
}

func (g DonutGrid) renderLegend(cv Canvas, n int) {
	var (
		last = g.Center((g.rows(n) - 1) * g.columns())
		pos  = NewPos(g.Margin.X-g.Size/2, last.Y+g.Size/2+FontSize*2.5)
	)
	for _, k := range Kinds() {
		cv.Rect(pos.Add(0, -FontSize/2), FontSize, FontSize, FillStyle(k.Fill()))
		cv.Text(k.String(), pos.Add(FontSize*1.5, 0), AlignStart, TextStyle(black, FontSize))
		pos = pos.Add(FontSize*12, 0)
	}
}
