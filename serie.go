package charts

import (
	"fmt"
	"math"

	"github.com/midbel/slices"
)

// Series is the data contract shared by all charts: Values[i] is the value
// of the category Labels[i].
type Series struct {
	Labels []string
	Values []float64
}

func NewSeries(labels []string, values []float64) Series {
	return Series{
		Labels: labels,
		Values: values,
	}
}

func (s Series) Len() int {
	return len(s.Values)
}

// Max returns the largest value of the series or 0 when it is empty.
func (s Series) Max() float64 {
	max := slices.Fst(s.Values)
	for _, v := range slices.Rest(s.Values) {
		if v > max {
			max = v
		}
	}
	return max
}

func (s Series) Sum() float64 {
	var total float64
	for _, v := range s.Values {
		total += v
	}
	return total
}

func (s Series) Label(i int) string {
	return slices.At(s.Labels, i)
}

// Validate checks that labels and values are parallel and that every value
// is a finite number.
func (s Series) Validate() error {
	if len(s.Labels) != len(s.Values) {
		return fmt.Errorf("%w: %d labels, %d values", ErrLength, len(s.Labels), len(s.Values))
	}
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s at index %d", ErrNonFinite, s.Labels[i], i)
		}
	}
	return nil
}

func (s Series) validatePositive() error {
	if err := s.Validate(); err != nil {
		return err
	}
	for i, v := range s.Values {
		if v < 0 {
			return fmt.Errorf("%w: %s at index %d", ErrNegative, s.Labels[i], i)
		}
	}
	return nil
}
