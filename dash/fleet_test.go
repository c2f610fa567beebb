package dash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFleetTotals(t *testing.T) {
	f, err := ReadFleet("testdata/equipment.json")
	require.NoError(t, err)

	assert.Equal(t, 3, f.Count())
	assert.Equal(t, 76, f.Total())
	assert.Equal(t, 10, f.UnderRevision())
	assert.Equal(t, 66, f.Operational())
}

func TestFleetChartData(t *testing.T) {
	f, err := ReadFleet("testdata/equipment.json")
	require.NoError(t, err)

	data := f.EquipmentChartData()
	require.Len(t, data.Datasets, 2)
	assert.Equal(t, []string{"Насосы", "Компрессоры", "Задвижки"}, data.Labels)
	assert.Equal(t, []float64{24, 12, 40}, data.Series().Values)
	assert.Equal(t, []float64{3, 2, 5}, data.SeriesAt(1).Values)
	assert.Equal(t, RevisionTitle, data.Title(1))

	rev := f.RevisionChartData()
	assert.Equal(t, []string{"Январь", "Февраль", "Март"}, rev.Labels)
	assert.Equal(t, []float64{4, 6, 3}, rev.Series().Values)
}

func TestFleetChanges(t *testing.T) {
	f, err := ReadFleet("testdata/equipment.json")
	require.NoError(t, err)

	id := f.Add(Equipment{Name: "Клапаны", Total: 4, Operational: 4})
	assert.Equal(t, 4, id)
	assert.Equal(t, 80, f.Total())

	assert.True(t, f.Update(Equipment{ID: 1, Name: "Насосы", Total: 20, UnderRevision: 0, Operational: 20}))
	assert.Equal(t, 7, f.UnderRevision())

	f.Remove(2)
	assert.Equal(t, 3, f.Count())
	assert.Equal(t, 64, f.Total())
}

func TestChartDataMissingDataset(t *testing.T) {
	var data ChartData
	ser := data.Series()
	assert.Equal(t, 0, ser.Len())
	assert.NoError(t, ser.Validate())
	assert.Equal(t, "", data.Title(3))
}

func TestViews(t *testing.T) {
	tests := []struct {
		Source DataSource
		Values []float64
	}{
		{Source: StaffView{Path: "testdata/employees.json"}, Values: []float64{3, 1, 1}},
		{Source: StaffView{Path: "testdata/employees.json", View: ViewPosition}, Values: []float64{1, 3, 1}},
		{Source: FleetView{Path: "testdata/equipment.json"}, Values: []float64{24, 12, 40}},
		{Source: FleetView{Path: "testdata/equipment.json", View: ViewRevision}, Values: []float64{3, 2, 5}},
		{Source: FleetView{Path: "testdata/equipment.json", View: ViewHistory}, Values: []float64{4, 6, 3}},
		{Source: Static{Labels: []string{"a"}, Values: []float64{1}}, Values: []float64{1}},
	}
	for _, tt := range tests {
		ser, err := tt.Source.Series()
		require.NoError(t, err)
		assert.Equal(t, tt.Values, ser.Values)
	}

	_, err := StaffView{Path: "testdata/employees.json", View: "salary"}.Series()
	assert.Error(t, err)
	_, err = FleetView{Path: "testdata/equipment.json", View: "salary"}.Series()
	assert.Error(t, err)
}
