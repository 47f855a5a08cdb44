package bikecharts

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

// SVGCanvas records the drawing calls as svg elements.
type SVGCanvas struct {
	Width  float64
	Height float64

	elements []svg.Element
}

func NewSVGCanvas(width, height float64) *SVGCanvas {
	c := SVGCanvas{
		Width:  width,
		Height: height,
	}
	c.Rect(NewPos(0, 0), width, height, FillStyle(white))
	return &c
}

func (c *SVGCanvas) Render(w io.Writer) error {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(c.Width, c.Height)
	el.OmitProlog = true
	for _, e := range c.elements {
		el.Append(e)
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (c *SVGCanvas) Circle(center Pos, radius float64, style Style) {
	if radius <= 0 {
		return
	}
	if style.hasFill() {
		var ci svg.Circle
		ci.Pos = svg.NewPos(center.X, center.Y)
		ci.Radius = radius
		ci.Fill = getFill(style)
		c.append(ci.AsElement())
	}
	if style.hasStroke() {
		var (
			top = svg.NewPos(center.X, center.Y-radius)
			bot = svg.NewPos(center.X, center.Y+radius)
			pat = getBasePath(style, false)
		)
		pat.AbsMoveTo(top)
		pat.AbsArcTo(bot, radius, radius, 0, false, true)
		pat.AbsArcTo(top, radius, radius, 0, false, true)
		pat.ClosePath()
		c.append(pat.AsElement())
	}
}

// Sector draws the ring between inner and outer. An arc can not start and end
// on the same point in svg so a complete ring is drawn in two halves.
func (c *SVGCanvas) Sector(center Pos, inner, outer, start, end float64, style Style) {
	if end-start <= 0 || outer <= 0 {
		return
	}
	if end-start >= fullcircle {
		c.Sector(center, inner, outer, start, start+halfcircle, style)
		c.Sector(center, inner, outer, start+halfcircle, start+fullcircle, style)
		return
	}
	var (
		large = end-start > halfcircle
		pat   = getBasePath(style, true)
	)
	pat.AbsMoveTo(svgPos(getPosFromAngle(center, start, outer)))
	pat.AbsArcTo(svgPos(getPosFromAngle(center, end, outer)), outer, outer, 0, large, true)
	if inner > 0 {
		pat.AbsLineTo(svgPos(getPosFromAngle(center, end, inner)))
		pat.AbsArcTo(svgPos(getPosFromAngle(center, start, inner)), inner, inner, 0, large, false)
	} else {
		pat.AbsLineTo(svgPos(center))
	}
	pat.ClosePath()
	c.append(pat.AsElement())
}

func (c *SVGCanvas) Line(from, to Pos, style Style) {
	li := svg.NewLine(svgPos(from), svgPos(to))
	li.Stroke = getStroke(style)
	c.append(li.AsElement())
}

func (c *SVGCanvas) Rect(pos Pos, width, height float64, style Style) {
	if style.hasFill() {
		var el svg.Rect
		el.Pos = svgPos(pos)
		el.Dim = svg.NewDim(width, height)
		el.Fill = getFill(style)
		c.append(el.AsElement())
	}
	if style.hasStroke() {
		pat := getBasePath(style, false)
		pat.AbsMoveTo(svgPos(pos))
		pat.AbsLineTo(svgPos(pos.Add(width, 0)))
		pat.AbsLineTo(svgPos(pos.Add(width, height)))
		pat.AbsLineTo(svgPos(pos.Add(0, height)))
		pat.ClosePath()
		c.append(pat.AsElement())
	}
}

func (c *SVGCanvas) Text(str string, pos Pos, align Align, style Style) {
	txt := svg.NewText(str)
	txt.Pos = svgPos(pos)
	txt.Font = svg.NewFont(style.fontSize())
	txt.Baseline = "middle"
	switch align {
	case AlignMiddle:
		txt.Anchor = "middle"
	case AlignEnd:
		txt.Anchor = "end"
	default:
		txt.Anchor = "start"
	}
	g := getBaseGroup(style, "text")
	g.Append(txt.AsElement())
	c.append(g.AsElement())
}

func (c *SVGCanvas) append(el svg.Element) {
	c.elements = append(c.elements, el)
}

func svgPos(p Pos) svg.Pos {
	return svg.NewPos(p.X, p.Y)
}

func getFill(style Style) svg.Fill {
	fill := svg.NewFill(style.Fill)
	fill.Opacity = style.opacity()
	return fill
}

func getStroke(style Style) svg.Stroke {
	width := style.Width
	if width <= 0 {
		width = 1
	}
	stroke := svg.NewStroke(style.Stroke, width)
	stroke.Opacity = style.opacity()
	return stroke
}

func getBasePath(style Style, fill bool) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	if fill && style.hasFill() {
		pat.Fill = getFill(style)
	} else {
		pat.Fill = svg.NewFill(none)
	}
	if !fill && style.hasStroke() {
		pat.Stroke = getStroke(style)
	}
	return pat
}

func getBaseGroup(style Style, class ...string) svg.Group {
	var g svg.Group
	if style.Fill != "" {
		g.Fill = getFill(style)
	}
	g.Class = class
	return g
}
