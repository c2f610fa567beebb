// Package raster implements a chart surface on top of an in-memory RGBA
// image drawn with gg.
package raster

import (
	"image"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/midbel/dashcharts"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	parseOnce sync.Once
	regular   *opentype.Font
	parseErr  error
)

func loadFont() (*opentype.Font, error) {
	parseOnce.Do(func() {
		regular, parseErr = opentype.Parse(goregular.TTF)
	})
	return regular, parseErr
}

type Surface struct {
	// Background is painted by ClearRect. An empty value leaves the
	// cleared region transparent.
	Background string

	ctx *gg.Context

	fill     drawing.Color
	stroke   drawing.Color
	align    charts.Align
	baseline charts.Baseline
	faces    map[float64]font.Face
}

func New(width, height int) *Surface {
	s := Surface{
		Background: "#fff",
		ctx:        gg.NewContext(width, height),
		fill:       drawing.ColorBlack,
		stroke:     drawing.ColorBlack,
		faces:      make(map[float64]font.Face),
	}
	return &s
}

func (s *Surface) Image() image.Image {
	return s.ctx.Image()
}

func (s *Surface) EncodePNG(w io.Writer) error {
	return s.ctx.EncodePNG(w)
}

func (s *Surface) Size() (float64, float64) {
	return float64(s.ctx.Width()), float64(s.ctx.Height())
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	img, ok := s.ctx.Image().(draw.Image)
	if !ok {
		return
	}
	var (
		rect = image.Rect(int(x), int(y), int(x+w+0.5), int(y+h+0.5))
		src  image.Image
	)
	if s.Background == "" {
		src = image.Transparent
	} else {
		src = image.NewUniform(drawing.ParseColor(s.Background))
	}
	draw.Draw(img, rect.Intersect(img.Bounds()), src, image.Point{}, draw.Src)
}

func (s *Surface) BeginPath() {
	s.ctx.ClearPath()
}

func (s *Surface) MoveTo(x, y float64) {
	s.ctx.MoveTo(x, y)
}

func (s *Surface) LineTo(x, y float64) {
	s.ctx.LineTo(x, y)
}

func (s *Surface) Arc(x, y, radius, start, end float64) {
	s.ctx.DrawArc(x, y, radius, start, end)
}

func (s *Surface) ClosePath() {
	s.ctx.ClosePath()
}

func (s *Surface) Fill() {
	s.ctx.SetColor(s.fill)
	s.ctx.FillPreserve()
}

func (s *Surface) Stroke() {
	s.ctx.SetColor(s.stroke)
	s.ctx.StrokePreserve()
}

func (s *Surface) SetFillColor(color string) {
	s.fill = drawing.ParseColor(color)
}

func (s *Surface) SetStrokeColor(color string) {
	s.stroke = drawing.ParseColor(color)
}

func (s *Surface) SetLineWidth(width float64) {
	s.ctx.SetLineWidth(width)
}

// SetFont selects the embedded Go regular face at the requested size. Font
// families are ignored.
func (s *Surface) SetFont(f charts.Font) {
	if f.Size <= 0 {
		return
	}
	face, ok := s.faces[f.Size]
	if !ok {
		fnt, err := loadFont()
		if err != nil {
			return
		}
		face, err = opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    f.Size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return
		}
		s.faces[f.Size] = face
	}
	s.ctx.SetFontFace(face)
}

func (s *Surface) SetTextAlign(align charts.Align) {
	s.align = align
}

func (s *Surface) SetTextBaseline(base charts.Baseline) {
	s.baseline = base
}

// FillText draws str without touching the current path.
func (s *Surface) FillText(str string, x, y float64) {
	var ax, ay float64
	switch s.align {
	case charts.AlignCenter:
		ax = 0.5
	case charts.AlignRight:
		ax = 1
	}
	switch s.baseline {
	case charts.BaselineTop:
		ay = 1
	case charts.BaselineMiddle:
		ay = 0.5
	case charts.BaselineBottom:
		ay = -0.25
	}
	s.ctx.SetColor(s.fill)
	s.ctx.DrawStringAnchored(str, x, y, ax, ay)
}
