package charts

import (
	"math"
)

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

type Domain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain {
	return Domain{
		fst: f,
		lst: t,
	}
}

// ValueDomain is the domain [0, max] used by bars and lines. A max that is
// not strictly positive is replaced by 1 so that an all zero series scales
// every value to 0 instead of dividing by zero.
func ValueDomain(max float64) Domain {
	if max <= 0 {
		max = 1
	}
	return NumberDomain(0, max)
}

func (d Domain) Diff(v float64) float64 {
	return v - d.fst
}

func (d Domain) Extend() float64 {
	return d.lst - d.fst
}

type Scaler struct {
	Range
	Domain
}

func NumberScaler(dom Domain, rg Range) Scaler {
	return Scaler{
		Range:  rg,
		Domain: dom,
	}
}

// Ratio gives the position of v in the domain as a fraction.
func (s Scaler) Ratio(v float64) float64 {
	ext := s.Extend()
	if ext == 0 {
		return 0
	}
	return s.Diff(v) / ext
}

func (s Scaler) Scale(v float64) float64 {
	return s.Ratio(v) * s.Len()
}

const (
	fullcircle = 2 * math.Pi
	topAngle   = -math.Pi / 2
)

type AngleScale struct {
	total float64
}

func NewAngleScale(total float64) AngleScale {
	return AngleScale{
		total: total,
	}
}

func (a AngleScale) Fraction(v float64) float64 {
	if a.total <= 0 {
		return 0
	}
	return v / a.total
}

// Angle returns the span of a slice of value v once progress of the full
// circle has been swept.
func (a AngleScale) Angle(v, progress float64) float64 {
	return a.Fraction(v) * fullcircle * progress
}
