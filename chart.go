package bikecharts

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

type Area struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (a Area) Right() float64 {
	return a.X + a.Width
}

func (a Area) Bottom() float64 {
	return a.Y + a.Height
}

func (a Area) Contains(x, y float64) bool {
	return x >= a.X && x <= a.Right() && y >= a.Y && y <= a.Bottom()
}

// Plot describes the scatter plot frame: the canvas size, the margins around
// the graph area and the data domains mapped onto that area. Birth years go
// left to right, durations bottom to top.
type Plot struct {
	Width  float64
	Height float64
	Padding

	Years     Domain
	Durations Domain
}

func DefaultPlot() Plot {
	return Plot{
		Width:  900,
		Height: 500,
		Padding: Padding{
			Top:    40,
			Right:  150,
			Bottom: 90,
			Left:   50,
		},
		Years:     NumberDomain(1935, 2005),
		Durations: NumberDomain(0, 4500),
	}
}

func (p Plot) DrawingWidth() float64 {
	return p.Width - p.Padding.Horizontal()
}

func (p Plot) DrawingHeight() float64 {
	return p.Height - p.Padding.Vertical()
}

func (p Plot) Area() Area {
	return Area{
		X:      p.Padding.Left,
		Y:      p.Padding.Top,
		Width:  p.DrawingWidth(),
		Height: p.DrawingHeight(),
	}
}

func (p Plot) XScaler() Scaler {
	a := p.Area()
	return NumberScaler(p.Years, NewRange(a.X, a.Right()))
}

func (p Plot) YScaler() Scaler {
	a := p.Area()
	return NumberScaler(p.Durations, NewRange(a.Bottom(), a.Y))
}

// Accept reports whether a trip falls inside the domains of the plot.
func (p Plot) Accept(t Trip) bool {
	return p.Years.Contains(t.BirthYear) && p.Durations.Contains(t.Duration)
}
