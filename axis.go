package bikecharts

import (
	"strconv"
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

var (
	axisStroke = StrokeStyle(black, 1)
	gridStroke = StrokeStyle(black, 1).WithOpacity(0.1)
	tickFont   = TextStyle(black, FontSize*0.9)
)

// NumberAxis draws an axis on one side of an area. Ticks split the range of
// the scaler, given in canvas coordinates, in Ticks equal steps and are
// labelled with the value of the domain found at their position.
type NumberAxis struct {
	Label  string
	Ticks  int
	Scaler Scaler
	Format func(float64) string
	Orientation
	WithInnerTicks bool
	WithLabelTicks bool
	WithOuterTicks bool
}

func (a NumberAxis) Render(cv Canvas, area Area) {
	format := a.Format
	if format == nil {
		format = func(f float64) string {
			return strconv.FormatFloat(f, 'f', 0, 64)
		}
	}
	origin, end := a.domainLine(area)
	for _, pos := range a.Scaler.Values(a.Ticks) {
		f := a.Scaler.Invert(pos)
		if a.WithOuterTicks {
			from, to := a.gridLine(area, pos)
			cv.Line(from, to, gridStroke)
		}
		if a.WithInnerTicks {
			from, to := a.lineTick(origin, pos, FontSize*0.5)
			cv.Line(from, to, axisStroke)
		}
		if a.WithLabelTicks {
			at, align := a.tickText(origin, pos)
			cv.Text(format(f), at, align, tickFont)
		}
	}
	cv.Line(origin, end, axisStroke)
	if a.Label != "" {
		at, align := a.labelText(area)
		cv.Text(a.Label, at, align, TextStyle(black, FontSize))
	}
}

func (a NumberAxis) domainLine(area Area) (Pos, Pos) {
	switch a.Orientation {
	case OrientLeft:
		return NewPos(area.X, area.Y), NewPos(area.X, area.Bottom())
	case OrientRight:
		return NewPos(area.Right(), area.Y), NewPos(area.Right(), area.Bottom())
	case OrientTop:
		return NewPos(area.X, area.Y), NewPos(area.Right(), area.Y)
	default:
		return NewPos(area.X, area.Bottom()), NewPos(area.Right(), area.Bottom())
	}
}

func (a NumberAxis) gridLine(area Area, pos float64) (Pos, Pos) {
	if a.Vertical() {
		return NewPos(area.X, pos), NewPos(area.Right(), pos)
	}
	return NewPos(pos, area.Y), NewPos(pos, area.Bottom())
}

func (a NumberAxis) lineTick(origin Pos, pos, size float64) (Pos, Pos) {
	var (
		pos1 = NewPos(pos, origin.Y)
		pos2 = NewPos(pos, origin.Y+size)
	)
	switch {
	case a.Vertical() && !a.Reverse():
		pos1 = NewPos(origin.X, pos)
		pos2 = NewPos(origin.X-size, pos)
	case a.Vertical() && a.Reverse():
		pos1 = NewPos(origin.X, pos)
		pos2 = NewPos(origin.X+size, pos)
	case !a.Vertical() && a.Reverse():
		pos2.Y = origin.Y - size
	default:
	}
	return pos1, pos2
}

func (a NumberAxis) tickText(origin Pos, pos float64) (Pos, Align) {
	offset := FontSize * 1.2
	switch {
	case a.Vertical() && !a.Reverse():
		return NewPos(origin.X-offset, pos), AlignEnd
	case a.Vertical() && a.Reverse():
		return NewPos(origin.X+offset, pos), AlignStart
	case !a.Vertical() && a.Reverse():
		return NewPos(pos, origin.Y-offset), AlignMiddle
	default:
		return NewPos(pos, origin.Y+offset), AlignMiddle
	}
}

func (a NumberAxis) labelText(area Area) (Pos, Align) {
	offset := FontSize * 2.8
	switch a.Orientation {
	case OrientLeft:
		return NewPos(area.X, area.Y-FontSize), AlignMiddle
	case OrientRight:
		return NewPos(area.Right(), area.Y-FontSize), AlignMiddle
	case OrientTop:
		return NewPos(area.X+area.Width/2, area.Y-offset), AlignMiddle
	default:
		return NewPos(area.X+area.Width/2, area.Bottom()+offset), AlignMiddle
	}
}
