package bikecharts

const FontSize = 12.0

const (
	none  = "none"
	black = "#000000"
	white = "#ffffff"
)

type Style struct {
	Fill     string
	Stroke   string
	Width    float64
	Opacity  float64
	FontSize float64
}

func FillStyle(color string) Style {
	return Style{
		Fill: color,
	}
}

func StrokeStyle(color string, width float64) Style {
	return Style{
		Fill:   none,
		Stroke: color,
		Width:  width,
	}
}

func TextStyle(color string, size float64) Style {
	return Style{
		Fill:     color,
		FontSize: size,
	}
}

func (s Style) WithOpacity(o float64) Style {
	s.Opacity = o
	return s
}

func (s Style) opacity() float64 {
	if s.Opacity <= 0 || s.Opacity > 1 {
		return 1
	}
	return s.Opacity
}

func (s Style) fontSize() float64 {
	if s.FontSize <= 0 {
		return FontSize
	}
	return s.FontSize
}

func (s Style) hasFill() bool {
	return s.Fill != "" && s.Fill != none
}

func (s Style) hasStroke() bool {
	return s.Stroke != "" && s.Stroke != none && s.Width > 0
}
