package dash

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/midbel/slices"
)

const (
	TotalTitle     = "Общее количество"
	RevisionTitle  = "На ревизии"
	CompletedTitle = "Завершенные ревизии"
)

type Equipment struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type,omitempty"`
	Location      string `json:"location,omitempty"`
	Total         int    `json:"total"`
	UnderRevision int    `json:"underRevision"`
	Operational   int    `json:"operational"`
}

type Revision struct {
	Month     string `json:"month"`
	Completed int    `json:"completed"`
	Planned   int    `json:"planned,omitempty"`
}

// Fleet holds the equipment of the dashboard and its revision history.
type Fleet struct {
	Equipment []Equipment `json:"equipment"`
	Revisions []Revision  `json:"revisionHistory"`
}

func ReadFleet(file string) (*Fleet, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	f, err := LoadFleet(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return f, nil
}

func LoadFleet(r io.Reader) (*Fleet, error) {
	var f Fleet
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fleet) Count() int {
	return len(f.Equipment)
}

func (f *Fleet) Total() int {
	return f.sum(func(e Equipment) int { return e.Total })
}

func (f *Fleet) UnderRevision() int {
	return f.sum(func(e Equipment) int { return e.UnderRevision })
}

func (f *Fleet) Operational() int {
	return f.sum(func(e Equipment) int { return e.Operational })
}

func (f *Fleet) sum(get func(Equipment) int) int {
	var total int
	for _, e := range f.Equipment {
		total += get(e)
	}
	return total
}

func (f *Fleet) Add(e Equipment) int {
	var max int
	for _, x := range f.Equipment {
		if x.ID > max {
			max = x.ID
		}
	}
	e.ID = max + 1
	f.Equipment = append(f.Equipment, e)
	return e.ID
}

func (f *Fleet) Update(e Equipment) bool {
	for i := range f.Equipment {
		if f.Equipment[i].ID == e.ID {
			f.Equipment[i] = e
			return true
		}
	}
	return false
}

func (f *Fleet) Remove(id int) {
	f.Equipment = slices.Filter(f.Equipment, func(e Equipment) bool {
		return e.ID != id
	})
}

// EquipmentChartData returns the total and the under revision count of each
// piece of equipment as two datasets.
func (f *Fleet) EquipmentChartData() ChartData {
	var (
		labels = make([]string, 0, len(f.Equipment))
		total  = make([]float64, 0, len(f.Equipment))
		rev    = make([]float64, 0, len(f.Equipment))
	)
	for _, e := range f.Equipment {
		labels = append(labels, e.Name)
		total = append(total, float64(e.Total))
		rev = append(rev, float64(e.UnderRevision))
	}
	return ChartData{
		Labels: labels,
		Datasets: []Dataset{
			{Label: TotalTitle, Data: total},
			{Label: RevisionTitle, Data: rev},
		},
	}
}

func (f *Fleet) RevisionChartData() ChartData {
	var (
		labels = make([]string, 0, len(f.Revisions))
		done   = make([]float64, 0, len(f.Revisions))
	)
	for _, r := range f.Revisions {
		labels = append(labels, r.Month)
		done = append(done, float64(r.Completed))
	}
	return ChartData{
		Labels: labels,
		Datasets: []Dataset{
			{Label: CompletedTitle, Data: done},
		},
	}
}
