package dash

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/midbel/slices"
)

const (
	LocationTitle = "Сотрудники по локации"
	PositionTitle = "Сотрудники по должностям"
	OtherCategory = "Другие"
)

const (
	categoryEngineering = "Инженерно-технический персонал"
	categoryWorkers     = "Рабочие специальности"
	categoryAdmin       = "Административный персонал"
)

// PositionCategories groups positions when computing the position summary.
// Positions missing from it fall into OtherCategory.
var PositionCategories = map[string]string{
	"Главный инженер":            categoryEngineering,
	"Инженер":                    categoryEngineering,
	"Инженер КИПиА":              categoryEngineering,
	"Начальник участка":          categoryEngineering,
	"Техник":                     categoryEngineering,
	"Специалист по охране труда": categoryEngineering,
	"Оператор":                   categoryWorkers,
	"Механик":                    categoryWorkers,
	"Слесарь":                    categoryWorkers,
	"Электрик":                   categoryWorkers,
	"Бухгалтер":                  categoryAdmin,
	"Экономист":                  categoryAdmin,
}

type Employee struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	Location     string `json:"location"`
	WorkSchedule string `json:"workSchedule"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
}

// Staff holds the employees of the dashboard and their summaries. Changes
// made to it only live in memory.
type Staff struct {
	Employees       []Employee `json:"employees"`
	LocationSummary *Summary   `json:"locationSummary"`
	PositionSummary *Summary   `json:"positionSummary"`
}

func ReadStaff(file string) (*Staff, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	s, err := LoadStaff(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return s, nil
}

// LoadStaff decodes a staff document. Summaries absent from the document are
// computed from the employees.
func LoadStaff(r io.Reader) (*Staff, error) {
	var s Staff
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	if s.LocationSummary == nil || s.PositionSummary == nil {
		s.UpdateSummaries()
	}
	return &s, nil
}

func (s *Staff) Count() int {
	return len(s.Employees)
}

func (s *Staff) ByLocation(location string) []Employee {
	return slices.Filter(s.Employees, func(e Employee) bool {
		return e.Location == location
	})
}

func (s *Staff) BySchedule(schedule string) []Employee {
	return slices.Filter(s.Employees, func(e Employee) bool {
		return e.WorkSchedule == schedule
	})
}

// Positions returns the distinct positions in order of first appearance.
func (s *Staff) Positions() []string {
	var (
		seen = make(map[string]struct{})
		list []string
	)
	for _, e := range s.Employees {
		if _, ok := seen[e.Position]; ok {
			continue
		}
		seen[e.Position] = struct{}{}
		list = append(list, e.Position)
	}
	return list
}

// Add appends a copy of e with the next free id and returns that id.
func (s *Staff) Add(e Employee) int {
	var max int
	for _, x := range s.Employees {
		if x.ID > max {
			max = x.ID
		}
	}
	e.ID = max + 1
	s.Employees = append(s.Employees, e)
	s.UpdateSummaries()
	return e.ID
}

// Update replaces the employee with the same id. It reports whether such an
// employee exists.
func (s *Staff) Update(e Employee) bool {
	for i := range s.Employees {
		if s.Employees[i].ID == e.ID {
			s.Employees[i] = e
			s.UpdateSummaries()
			return true
		}
	}
	return false
}

func (s *Staff) Remove(id int) {
	s.Employees = slices.Filter(s.Employees, func(e Employee) bool {
		return e.ID != id
	})
	s.UpdateSummaries()
}

func (s *Staff) UpdateSummaries() {
	var (
		loc = NewSummary()
		pos = NewSummary()
	)
	for _, e := range s.Employees {
		loc.Add(e.Location, 1)
		cat, ok := PositionCategories[e.Position]
		if !ok {
			cat = OtherCategory
		}
		pos.Add(cat, 1)
	}
	s.LocationSummary = loc
	s.PositionSummary = pos
}

func (s *Staff) LocationChartData() ChartData {
	return s.LocationSummary.ChartData(LocationTitle)
}

func (s *Staff) PositionChartData() ChartData {
	return s.PositionSummary.ChartData(PositionTitle)
}
