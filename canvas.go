package bikecharts

import (
	"math"
)

const deg2rad = math.Pi / halfcircle

type Pos struct {
	X float64
	Y float64
}

func NewPos(x, y float64) Pos {
	return Pos{
		X: x,
		Y: y,
	}
}

func (p Pos) Distance(other Pos) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

func (p Pos) Add(x, y float64) Pos {
	p.X += x
	p.Y += y
	return p
}

type Align int

const (
	AlignStart Align = iota
	AlignMiddle
	AlignEnd
)

// Canvas is the immediate mode surface the renderers draw on. Angles given to
// Sector are in degrees, clockwise, 0 being the top of the circle.
type Canvas interface {
	Circle(Pos, float64, Style)
	Sector(Pos, float64, float64, float64, float64, Style)
	Line(Pos, Pos, Style)
	Rect(Pos, float64, float64, Style)
	Text(string, Pos, Align, Style)
}

// getPosFromAngle turns an angle measured clockwise from the top into a point
// on the circle of the given radius around center.
func getPosFromAngle(center Pos, angle, radius float64) Pos {
	rad := (angle - 90) * deg2rad
	return NewPos(center.X+radius*math.Cos(rad), center.Y+radius*math.Sin(rad))
}

func screenAngle(angle float64) float64 {
	return (angle - 90) * deg2rad
}
