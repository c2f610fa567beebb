package charts

import (
	"unicode/utf8"
)

const (
	sizeSmall = iota
	sizeMedium
	sizeLarge
)

// Responsive holds the step functions used to adapt a chart to the width of
// its surface. Surfaces narrower than Small use the first entry of Padding
// and Gap, those narrower than Medium the second, any other the third.
type Responsive struct {
	Small  float64
	Medium float64

	Padding [3]float64
	Gap     [3]float64

	// labels longer than TruncateOver runes are cut to TruncateTo runes
	// followed by Marker on surfaces narrower than Small.
	TruncateOver int
	TruncateTo   int
	Marker       string
}

func DefaultResponsive() Responsive {
	return Responsive{
		Small:        400,
		Medium:       600,
		Padding:      [3]float64{20, 30, 40},
		Gap:          [3]float64{5, 8, 10},
		TruncateOver: 10,
		TruncateTo:   8,
		Marker:       "…",
	}
}

func (r Responsive) withDefaults() Responsive {
	def := DefaultResponsive()
	if r.Small <= 0 {
		r.Small = def.Small
	}
	if r.Medium <= 0 {
		r.Medium = def.Medium
	}
	if r.Padding == [3]float64{} {
		r.Padding = def.Padding
	}
	if r.Gap == [3]float64{} {
		r.Gap = def.Gap
	}
	if r.TruncateOver <= 0 {
		r.TruncateOver = def.TruncateOver
	}
	if r.TruncateTo <= 0 {
		r.TruncateTo = def.TruncateTo
	}
	if r.Marker == "" {
		r.Marker = def.Marker
	}
	return r
}

func (r Responsive) step(width float64) int {
	switch {
	case width < r.Small:
		return sizeSmall
	case width < r.Medium:
		return sizeMedium
	default:
		return sizeLarge
	}
}

func (r Responsive) PaddingFor(width float64) float64 {
	return r.Padding[r.step(width)]
}

func (r Responsive) GapFor(width float64) float64 {
	return r.Gap[r.step(width)]
}

func (r Responsive) Truncate(width float64, label string) string {
	n := utf8.RuneCountInString(label)
	if r.step(width) != sizeSmall || n <= r.TruncateOver || n <= r.TruncateTo {
		return label
	}
	var (
		cut   int
		count int
	)
	for i := range label {
		if count == r.TruncateTo {
			cut = i
			break
		}
		count++
	}
	return label[:cut] + r.Marker
}
