package dash

import (
	"github.com/midbel/dashcharts"
	"github.com/midbel/slices"
)

// Dataset is one named list of values of a ChartData.
type Dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

// ChartData is the labels/datasets shape produced by the dashboard stores.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Series converts the first dataset of the chart data. The series is empty
// when the labels or the datasets are missing.
func (c ChartData) Series() charts.Series {
	return c.SeriesAt(0)
}

func (c ChartData) SeriesAt(i int) charts.Series {
	if c.Labels == nil || i < 0 || i >= len(c.Datasets) {
		return charts.Series{}
	}
	set := slices.At(c.Datasets, i)
	return charts.NewSeries(c.Labels, set.Data)
}

func (c ChartData) Title(i int) string {
	if i < 0 || i >= len(c.Datasets) {
		return ""
	}
	return c.Datasets[i].Label
}
