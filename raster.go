package bikecharts

import (
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RasterCanvas draws on an RGBA image. Text is always drawn with the 7x13
// basic face whatever the size asked by the style.
type RasterCanvas struct {
	img *image.RGBA
	gc  *draw2dimg.GraphicContext
}

func NewRasterCanvas(width, height int) *RasterCanvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &RasterCanvas{
		img: img,
		gc:  draw2dimg.NewGraphicContext(img),
	}
}

func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

func (c *RasterCanvas) Render(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *RasterCanvas) Circle(center Pos, radius float64, style Style) {
	if radius <= 0 {
		return
	}
	if style.hasFill() {
		c.gc.SetFillColor(parseColor(style.Fill, style.opacity()))
		c.gc.BeginPath()
		draw2dkit.Circle(c.gc, center.X, center.Y, radius)
		c.gc.Fill()
	}
	if style.hasStroke() {
		c.setStroke(style)
		c.gc.BeginPath()
		draw2dkit.Circle(c.gc, center.X, center.Y, radius)
		c.gc.Stroke()
	}
}

func (c *RasterCanvas) Sector(center Pos, inner, outer, start, end float64, style Style) {
	if end-start <= 0 || outer <= 0 || !style.hasFill() {
		return
	}
	if end-start > fullcircle {
		end = start + fullcircle
	}
	var (
		sweep = (end - start) * deg2rad
		pos   = getPosFromAngle(center, start, outer)
	)
	c.gc.SetFillColor(parseColor(style.Fill, style.opacity()))
	c.gc.BeginPath()
	c.gc.MoveTo(pos.X, pos.Y)
	c.gc.ArcTo(center.X, center.Y, outer, outer, screenAngle(start), sweep)
	if inner > 0 {
		pos = getPosFromAngle(center, end, inner)
		c.gc.LineTo(pos.X, pos.Y)
		c.gc.ArcTo(center.X, center.Y, inner, inner, screenAngle(end), -sweep)
	} else {
		c.gc.LineTo(center.X, center.Y)
	}
	c.gc.Close()
	c.gc.Fill()
}

func (c *RasterCanvas) Line(from, to Pos, style Style) {
	if !style.hasStroke() {
		return
	}
	c.setStroke(style)
	c.gc.BeginPath()
	c.gc.MoveTo(from.X, from.Y)
	c.gc.LineTo(to.X, to.Y)
	c.gc.Stroke()
}

func (c *RasterCanvas) Rect(pos Pos, width, height float64, style Style) {
	if style.hasFill() {
		c.gc.SetFillColor(parseColor(style.Fill, style.opacity()))
		c.gc.BeginPath()
		draw2dkit.Rectangle(c.gc, pos.X, pos.Y, pos.X+width, pos.Y+height)
		c.gc.Fill()
	}
	if style.hasStroke() {
		c.setStroke(style)
		c.gc.BeginPath()
		draw2dkit.Rectangle(c.gc, pos.X, pos.Y, pos.X+width, pos.Y+height)
		c.gc.Stroke()
	}
}

func (c *RasterCanvas) Text(str string, pos Pos, align Align, style Style) {
	if str == "" {
		return
	}
	var (
		face = basicfont.Face7x13
		dr   = font.Drawer{
			Dst:  c.img,
			Src:  image.NewUniform(parseColor(style.Fill, style.opacity())),
			Face: face,
		}
		width  = float64(dr.MeasureString(str).Ceil())
		metric = face.Metrics()
		x      = pos.X
		y      = pos.Y + float64(metric.Ascent.Ceil()-metric.Descent.Ceil())/2
	)
	switch align {
	case AlignMiddle:
		x -= width / 2
	case AlignEnd:
		x -= width
	default:
	}
	dr.Dot = fixed.P(int(x), int(y))
	dr.DrawString(str)
}

func (c *RasterCanvas) setStroke(style Style) {
	c.gc.SetStrokeColor(parseColor(style.Stroke, style.opacity()))
	c.gc.SetLineWidth(style.Width)
}
