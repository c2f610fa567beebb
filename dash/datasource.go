package dash

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/dashcharts"
	"github.com/midbel/slices"
)

// DataSource gives the series a chart draws.
type DataSource interface {
	Series() (charts.Series, error)
}

// LocalData is an inline CSV document. Its first column holds the labels
// and the second the values.
type LocalData struct {
	Ident   string
	Content string
}

func (d LocalData) Series() (charts.Series, error) {
	get := getCategoryFunc(0, SelectSingle(1))
	return loadSeriesFromReader(strings.NewReader(d.Content), Limit{}, nil, get)
}

type Limit struct {
	Offset int
	Count  int
}

func (lim Limit) apply(size int) (int, int) {
	beg, end := 0, size
	if lim.Offset < 0 {
		lim.Offset = size + lim.Offset
	}
	if lim.Offset > 0 && lim.Offset < size {
		beg = lim.Offset
	}
	if lim.Count > 0 && lim.Count < end-beg {
		end = beg + lim.Count
	}
	return beg, end
}

// LocalFile reads a CSV file with a header row. X is the column of the
// labels and Y selects the value of each row.
type LocalFile struct {
	Path  string
	Ident string
	X     int
	Y     Selector
	Limit
}

func (f LocalFile) Name() string {
	if f.Ident != "" {
		return f.Ident
	}
	return strings.TrimSuffix(filepath.Base(f.Path), filepath.Ext(f.Path))
}

func (f LocalFile) Series() (charts.Series, error) {
	y := f.Y
	if y == nil {
		y = SelectSingle(f.X + 1)
	}
	r, err := readFrom(f.Path)
	if err != nil {
		return charts.Series{}, err
	}
	defer r.Close()

	cols := append([]int{f.X}, y.columns()...)
	ser, err := loadSeriesFromReader(r, f.Limit, cols, getCategoryFunc(f.X, y))
	if err != nil {
		return ser, fmt.Errorf("%s: %w", f.Path, err)
	}
	return ser, nil
}

func readFrom(location string) (io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "", "file":
		return os.Open(u.Path)
	default:
		return nil, fmt.Errorf("%s: unsupported scheme", u.Scheme)
	}
}

type point struct {
	Label string
	Value float64
}

type getFunc func([]string) (point, error)

// loadSeriesFromReader skips the header of the document after checking that
// every column in cols exists in it.
func loadSeriesFromReader(r io.Reader, lim Limit, cols []int, get getFunc) (charts.Series, error) {
	var (
		rs   = csv.NewReader(r)
		ser  charts.Series
		line = 1
	)
	rs.ReuseRecord = true
	head, err := rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ser, nil
		}
		return ser, err
	}
	for _, c := range cols {
		if c < 0 || c >= len(head) {
			return ser, fmt.Errorf("column %d: %w", c, ErrIndex)
		}
	}
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return ser, err
		}
		line++
		pt, err := get(row)
		if err != nil {
			return ser, fmt.Errorf("line %d: %w", line, err)
		}
		ser.Labels = append(ser.Labels, pt.Label)
		ser.Values = append(ser.Values, pt.Value)
	}
	beg, end := lim.apply(ser.Len())
	ser.Labels = ser.Labels[beg:end]
	ser.Values = ser.Values[beg:end]
	return ser, nil
}

// getCategoryFunc builds a row reader. Several selected values are summed.
func getCategoryFunc(x int, y Selector) getFunc {
	get := func(row []string) (point, error) {
		var pt point
		if x < 0 || x >= len(row) {
			return pt, ErrIndex
		}
		pt.Label = strings.TrimSpace(row[x])
		values, err := y.Select(row)
		if err != nil {
			return pt, err
		}
		if len(values) == 1 {
			pt.Value = slices.Fst(values)
			return pt, nil
		}
		for _, v := range values {
			pt.Value += v
		}
		return pt, nil
	}
	return get
}

func parseValue(str string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}
