package charts

import (
	"errors"
)

var (
	ErrLength       = errors.New("labels and values differ in length")
	ErrNonFinite    = errors.New("value is not a finite number")
	ErrNegative     = errors.New("value is negative")
	ErrTooFewPoints = errors.New("line chart needs at least two points")
)
