package charts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaler(t *testing.T) {
	s := NumberScaler(ValueDomain(20), NewRange(0, 520))
	tests := []struct {
		Value float64
		Want  float64
	}{
		{Value: 0, Want: 0},
		{Value: 5, Want: 130},
		{Value: 10, Want: 260},
		{Value: 20, Want: 520},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.Want, s.Scale(tt.Value))
	}
}

func TestScalerZeroMax(t *testing.T) {
	s := NumberScaler(ValueDomain(0), NewRange(0, 100))
	assert.Equal(t, float64(0), s.Scale(0))
}

func TestAngleScale(t *testing.T) {
	a := NewAngleScale(100)
	assert.Equal(t, math.Pi/2, a.Angle(25, 1))
	assert.Equal(t, math.Pi, a.Angle(50, 1))
	assert.Equal(t, math.Pi/2, a.Angle(50, 0.5))
	assert.Equal(t, float64(0), a.Angle(50, 0))

	empty := NewAngleScale(0)
	assert.Equal(t, float64(0), empty.Fraction(10))
}

func TestPalette(t *testing.T) {
	assert.Equal(t, Palette{"#0056a4", "#e74c3c", "#27ae60", "#f39c12"}, BarColors)
	assert.Len(t, PieColors, 5)
	assert.Equal(t, "#9b59b6", PieColors.At(4))
	assert.Equal(t, BarColors.At(0), BarColors.At(4))
	assert.Equal(t, BarColors.At(1), BarColors.At(9))
	assert.Equal(t, defaultTextColor, Palette(nil).At(3))
}

func TestPaletteByName(t *testing.T) {
	p, ok := PaletteByName("Tableau10")
	assert.True(t, ok)
	assert.Len(t, p, 10)
	assert.Equal(t, "#4e79a7", p.At(0))

	p[0] = "red"
	assert.Equal(t, "#4e79a7", Tableau10.At(0))

	p, ok = PaletteByName("category10")
	assert.True(t, ok)
	assert.Equal(t, "#17becf", p.At(9))

	_, ok = PaletteByName("sunset")
	assert.False(t, ok)
}

func TestTickValue(t *testing.T) {
	var got []float64
	for i := 0; i <= 5; i++ {
		got = append(got, tickValue(23, 5, i))
	}
	assert.Equal(t, []float64{23, 18, 14, 9, 5, 0}, got)
	assert.Equal(t, "2.5", formatValue(2.5))
	assert.Equal(t, "20", formatValue(20))
}
