package bikecharts

import (
	"fmt"
)

const (
	activeFill   = "#4e79a7"
	inactiveFill = "#eeeeee"
)

// Frame holds the state that can change from one frame to the next.
type Frame struct {
	Mode    DisplayMode
	Pointer Pointer
}

// Scatter draws trips by birth year and duration. The markers themselves come
// from an Index built with the same Plot; Render only decides their color and
// which one, if any, gets a tooltip.
type Scatter struct {
	Plot
	XTicks     int
	YTicks     int
	PickRadius float64
	MarkerSize float64
	Buttons    []Button

	// FirstMatch selects the first marker in insertion order under the
	// pointer instead of the closest one.
	FirstMatch bool
}

func DefaultScatter() Scatter {
	var (
		plot = DefaultPlot()
		area = plot.Area()
	)
	return Scatter{
		Plot:       plot,
		XTicks:     7,
		YTicks:     9,
		PickRadius: 1.5,
		MarkerSize: DefaultSize,
		Buttons:    LayoutButtons(NewPos(area.X, area.Bottom()+FontSize*4), 90, 24, 10),
	}
}

func (s Scatter) Index(trips []Trip) *Index {
	return BuildIndex(trips, s.Plot)
}

// Update applies the pointer of the frame to the buttons and returns the
// frame with its mode updated.
func (s Scatter) Update(f Frame) Frame {
	f.Mode = SelectMode(s.Buttons, f.Pointer, f.Mode)
	return f
}

func (s Scatter) Select(ix *Index, p Pointer) (Marker, bool) {
	if s.FirstMatch {
		return ix.First(p.Pos(), s.PickRadius)
	}
	return ix.Nearest(p.Pos(), s.PickRadius)
}

// Render draws a complete frame. Nothing is drawn without an index.
func (s Scatter) Render(cv Canvas, ix *Index, f Frame) {
	if ix == nil {
		return
	}
	var (
		plot = ix.Plot()
		area = plot.Area()
		size = s.MarkerSize
	)
	if size <= 0 {
		size = DefaultSize
	}
	s.renderAxis(cv, plot)
	for _, m := range ix.Markers() {
		draw := f.Mode.Marker(m.Trip)
		draw(cv, m.Pos, size, FillStyle(f.Mode.Fill(m.Trip)).WithOpacity(0.7))
	}
	if m, ok := s.Select(ix, f.Pointer); ok {
		s.renderTooltip(cv, plot, m, size)
	}
	s.renderLegend(cv, area, f.Mode)
	s.renderButtons(cv, f.Mode)
}

func (s Scatter) renderAxis(cv Canvas, plot Plot) {
	var (
		area   = plot.Area()
		bottom = NumberAxis{
			Label:          "Birth year",
			Ticks:          s.XTicks,
			Scaler:         plot.XScaler(),
			Orientation:    OrientBottom,
			WithInnerTicks: true,
			WithLabelTicks: true,
			WithOuterTicks: true,
		}
		left = NumberAxis{
			Label:          "Duration (s)",
			Ticks:          s.YTicks,
			Scaler:         plot.YScaler(),
			Orientation:    OrientLeft,
			WithInnerTicks: true,
			WithLabelTicks: true,
			WithOuterTicks: true,
		}
	)
	bottom.Render(cv, area)
	left.Render(cv, area)
}

func (s Scatter) renderTooltip(cv Canvas, plot Plot, m Marker, size float64) {
	lines := []string{
		fmt.Sprintf("Duration: %.0f s", m.Duration),
		fmt.Sprintf("Birth year: %.0f", m.BirthYear),
		fmt.Sprintf("Gender: %s", m.Gender),
		fmt.Sprintf("User: %s", m.UserType),
	}
	var (
		line   = FontSize * 1.3
		width  = FontSize * 11
		height = line*float64(len(lines)) + FontSize*0.6
		pos    = m.Pos.Add(size, -height-size)
	)
	if pos.X+width > plot.Width {
		pos.X = m.X - size - width
	}
	if pos.Y < 0 {
		pos.Y = m.Y + size
	}
	cv.Circle(m.Pos, size, StrokeStyle(black, 1))

	box := FillStyle(white)
	box.Stroke, box.Width = black, 1
	cv.Rect(pos, width, height, box)
	for i, str := range lines {
		at := pos.Add(FontSize*0.5, FontSize*0.3+line*(float64(i)+0.5))
		cv.Text(str, at, AlignStart, TextStyle(black, FontSize*0.9))
	}
}

func (s Scatter) renderLegend(cv Canvas, area Area, mode DisplayMode) {
	pos := NewPos(area.Right()+FontSize*2, area.Y+FontSize/2)
	cv.Text(mode.String(), pos, AlignStart, TextStyle(black, FontSize))
	for _, it := range mode.Legend() {
		pos = pos.Add(0, FontSize*1.6)
		cv.Circle(pos.Add(FontSize/2, 0), FontSize/2, FillStyle(it.Fill))
		cv.Text(it.Label, pos.Add(FontSize*1.5, 0), AlignStart, TextStyle(black, FontSize))
	}
}

func (s Scatter) renderButtons(cv Canvas, mode DisplayMode) {
	for _, b := range s.Buttons {
		var (
			fill = inactiveFill
			text = black
		)
		if b.Mode == mode {
			fill, text = activeFill, white
		}
		st := FillStyle(fill)
		st.Stroke, st.Width = black, 0.5
		cv.Rect(NewPos(b.X, b.Y), b.Width, b.Height, st)
		cv.Text(b.Mode.String(), NewPos(b.X+b.Width/2, b.Y+b.Height/2), AlignMiddle, TextStyle(text, FontSize))
	}
}
