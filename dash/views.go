package dash

import (
	"fmt"

	"github.com/midbel/dashcharts"
)

const (
	ViewLocation  = "location"
	ViewPosition  = "position"
	ViewEquipment = "equipment"
	ViewRevision  = "revision"
	ViewHistory   = "history"
)

// StaffView selects one of the summaries of a staff document.
type StaffView struct {
	Path string
	View string
}

func (v StaffView) Series() (charts.Series, error) {
	s, err := ReadStaff(v.Path)
	if err != nil {
		return charts.Series{}, err
	}
	switch v.View {
	case ViewLocation, "":
		return s.LocationChartData().Series(), nil
	case ViewPosition:
		return s.PositionChartData().Series(), nil
	default:
		return charts.Series{}, fmt.Errorf("%s: unknown staff view", v.View)
	}
}

// FleetView selects one of the datasets of an equipment document.
type FleetView struct {
	Path string
	View string
}

func (v FleetView) Series() (charts.Series, error) {
	f, err := ReadFleet(v.Path)
	if err != nil {
		return charts.Series{}, err
	}
	switch v.View {
	case ViewEquipment, "":
		return f.EquipmentChartData().Series(), nil
	case ViewRevision:
		return f.EquipmentChartData().SeriesAt(1), nil
	case ViewHistory:
		return f.RevisionChartData().Series(), nil
	default:
		return charts.Series{}, fmt.Errorf("%s: unknown equipment view", v.View)
	}
}

// Static is a series given as is.
type Static struct {
	Labels []string
	Values []float64
}

func (s Static) Series() (charts.Series, error) {
	return charts.NewSeries(s.Labels, s.Values), nil
}
