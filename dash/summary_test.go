package dash

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryOrder(t *testing.T) {
	s := NewSummary()
	s.Add("z", 1)
	s.Add("a", 2)
	s.Add("z", 3)

	ser := s.Series()
	assert.Equal(t, []string{"z", "a"}, ser.Labels)
	assert.Equal(t, []float64{4, 2}, ser.Values)
	assert.Equal(t, 2, s.Len())
}

func TestSummaryJSON(t *testing.T) {
	var s Summary
	require.NoError(t, json.Unmarshal([]byte(`{"c": 3, "a": 1, "b": 2}`), &s))
	assert.Equal(t, []string{"c", "a", "b"}, s.Labels())
	assert.Equal(t, float64(2), s.Get("b"))

	out, err := json.Marshal(&s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"c": 3, "a": 1, "b": 2}`, string(out))
	assert.Equal(t, `{"c":3,"a":1,"b":2}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"a": "x"}`), &s))
}

func TestSummaryDuplicateKey(t *testing.T) {
	var s Summary
	require.NoError(t, json.Unmarshal([]byte(`{"a": 1, "b": 2, "a": 5}`), &s))
	assert.Equal(t, []string{"a", "b"}, s.Labels())
	assert.Equal(t, float64(5), s.Get("a"))
}

func TestChartDataSeries(t *testing.T) {
	data := ChartData{
		Labels: []string{"a", "b"},
		Datasets: []Dataset{
			{Label: "first", Data: []float64{1, 2}},
		},
	}
	ser := data.Series()
	assert.Equal(t, []string{"a", "b"}, ser.Labels)
	assert.Equal(t, []float64{1, 2}, ser.Values)
	assert.Equal(t, "first", data.Title(0))

	assert.Zero(t, data.SeriesAt(1).Len())
	assert.Equal(t, "", data.Title(1))

	data.Labels = nil
	ser = data.Series()
	assert.Nil(t, ser.Labels)
	assert.Nil(t, ser.Values)
	assert.NoError(t, ser.Validate())
}
