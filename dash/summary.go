package dash

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/midbel/dashcharts"
)

// Summary counts items per label and remembers the order in which labels
// were first seen.
type Summary struct {
	labels []string
	values map[string]float64
}

func NewSummary() *Summary {
	return &Summary{
		values: make(map[string]float64),
	}
}

func (s *Summary) Add(label string, value float64) {
	if s.values == nil {
		s.values = make(map[string]float64)
	}
	if _, ok := s.values[label]; !ok {
		s.labels = append(s.labels, label)
	}
	s.values[label] += value
}

// Set replaces the value of label, keeping its position when it is known.
func (s *Summary) Set(label string, value float64) {
	if s.values == nil {
		s.values = make(map[string]float64)
	}
	if _, ok := s.values[label]; !ok {
		s.labels = append(s.labels, label)
	}
	s.values[label] = value
}

func (s *Summary) Get(label string) float64 {
	return s.values[label]
}

func (s *Summary) Len() int {
	return len(s.labels)
}

func (s *Summary) Labels() []string {
	return append([]string(nil), s.labels...)
}

func (s *Summary) Series() charts.Series {
	values := make([]float64, 0, len(s.labels))
	for _, k := range s.labels {
		values = append(values, s.values[k])
	}
	return charts.NewSeries(s.Labels(), values)
}

func (s *Summary) ChartData(title string) ChartData {
	ser := s.Series()
	return ChartData{
		Labels: ser.Labels,
		Datasets: []Dataset{
			{Label: title, Data: ser.Values},
		},
	}
}

// UnmarshalJSON decodes a JSON object keeping the order of its keys.
func (s *Summary) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("summary: expected object")
	}
	*s = Summary{
		values: make(map[string]float64),
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("summary: expected key")
		}
		var value float64
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("summary: %s: %w", key, err)
		}
		s.Set(key, value)
	}
	_, err = dec.Token()
	return err
}

func (s *Summary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(s.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
