package bikecharts

var DefaultSize float64 = 4

type MarkerFunc func(Canvas, Pos, float64, Style)

func DrawCircle(cv Canvas, pos Pos, size float64, style Style) {
	cv.Circle(pos, size/2, style)
}

func DrawSquare(cv Canvas, pos Pos, size float64, style Style) {
	half := size / 2
	cv.Rect(pos.Add(-half, -half), size, size, style)
}

// Marker gives the shape of a trip. Only the user type mode makes a
// difference between trips: customers are drawn with squares.
func (m DisplayMode) Marker(t Trip) MarkerFunc {
	if m == ModeUserType && t.UserType == Customer {
		return DrawSquare
	}
	return DrawCircle
}
