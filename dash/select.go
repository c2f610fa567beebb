package dash

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/midbel/slices"
)

var (
	ErrIndex    = errors.New("invalid index")
	ErrSelector = errors.New("invalid selector")
)

// Selector picks the values of a CSV row. columns lists the indices it
// reads, so that they can be checked against the header first.
type Selector interface {
	Select([]string) ([]float64, error)
	columns() []int
}

type combined struct {
	selectors []Selector
}

func Combined(xs ...Selector) Selector {
	return combined{
		selectors: xs,
	}
}

func (c combined) columns() []int {
	var list []int
	for _, s := range c.selectors {
		list = append(list, s.columns()...)
	}
	return list
}

func (c combined) Select(row []string) ([]float64, error) {
	var list []float64
	for _, s := range c.selectors {
		fs, err := s.Select(row)
		if err != nil {
			return nil, err
		}
		list = append(list, fs...)
	}
	return list, nil
}

type summer struct {
	index []int
}

func SelectSum(list []int) Selector {
	return summer{
		index: list,
	}
}

func (s summer) columns() []int {
	return s.index
}

func (s summer) Select(row []string) ([]float64, error) {
	var sum float64
	for _, i := range s.index {
		if i < 0 || i >= len(row) {
			return nil, ErrIndex
		}
		f, err := parseValue(row[i])
		if err != nil {
			return nil, err
		}
		sum += f
	}
	return []float64{sum}, nil
}

type multi struct {
	index []int
}

func SelectSingle(i int) Selector {
	return SelectMulti([]int{i})
}

func SelectMulti(list []int) Selector {
	return multi{
		index: list,
	}
}

func (m multi) columns() []int {
	return m.index
}

func (m multi) Select(row []string) ([]float64, error) {
	list := make([]float64, 0, len(m.index))
	for _, i := range m.index {
		if i < 0 || i >= len(row) {
			return nil, ErrIndex
		}
		f, err := parseValue(row[i])
		if err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, nil
}

func ExpandRange(fst, lst int) []int {
	var list []int
	for i := fst; i <= lst; i++ {
		list = append(list, i)
	}
	return list
}

// ParseSelector reads a list of comma separated column selections. A
// selection is a single column (1), a sum of columns (1+3), a range of
// columns (1:3) or the sum of a range (1:+3).
func ParseSelector(str string) (Selector, error) {
	var xs []Selector
	for _, part := range strings.Split(str, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("%w: empty selection in %q", ErrSelector, str)
		}
		var (
			sel Selector
			err error
		)
		switch {
		case strings.Contains(part, ":+"):
			var rg []int
			if rg, err = parseRange(part, ":+"); err == nil {
				sel = SelectSum(rg)
			}
		case strings.Contains(part, ":"):
			var rg []int
			if rg, err = parseRange(part, ":"); err == nil {
				sel = SelectMulti(rg)
			}
		case strings.Contains(part, "+"):
			var list []int
			if list, err = parseList(part, "+"); err == nil {
				sel = SelectSum(list)
			}
		default:
			var i int
			if i, err = parseIndex(part); err == nil {
				sel = SelectSingle(i)
			}
		}
		if err != nil {
			return nil, err
		}
		xs = append(xs, sel)
	}
	if len(xs) == 1 {
		return slices.Fst(xs), nil
	}
	return Combined(xs...), nil
}

func parseRange(str, sep string) ([]int, error) {
	fst, lst, _ := strings.Cut(str, sep)
	f, err := parseIndex(fst)
	if err != nil {
		return nil, err
	}
	l, err := parseIndex(lst)
	if err != nil {
		return nil, err
	}
	if l < f {
		return nil, fmt.Errorf("%w: %d > %d", ErrSelector, f, l)
	}
	return ExpandRange(f, l), nil
}

func parseList(str, sep string) ([]int, error) {
	var list []int
	for _, s := range strings.Split(str, sep) {
		i, err := parseIndex(s)
		if err != nil {
			return nil, err
		}
		list = append(list, i)
	}
	return list, nil
}

func parseIndex(str string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil || i < 0 {
		return 0, fmt.Errorf("%w: %q is not a column", ErrSelector, str)
	}
	return i, nil
}
