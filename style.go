package charts

const (
	defaultTextColor       = "#333"
	defaultTickColor       = "#666"
	defaultAxisColor       = "#ccc"
	defaultGridColor       = "#eee"
	defaultBackgroundColor = "#fff"
)

var DefaultFamily = []string{"Roboto", "sans-serif"}

// Fonts gives the family and the sizes of the texts drawn by a chart.
type Fonts struct {
	Family []string
	Title  float64
	Value  float64
	Label  float64
	Tick   float64
}

func DefaultFonts() Fonts {
	return Fonts{
		Family: DefaultFamily,
		Title:  16,
		Value:  12,
		Label:  12,
		Tick:   10,
	}
}

func (f Fonts) withDefaults() Fonts {
	def := DefaultFonts()
	if len(f.Family) == 0 {
		f.Family = def.Family
	}
	if f.Title <= 0 {
		f.Title = def.Title
	}
	if f.Value <= 0 {
		f.Value = def.Value
	}
	if f.Label <= 0 {
		f.Label = def.Label
	}
	if f.Tick <= 0 {
		f.Tick = def.Tick
	}
	return f
}

func (f Fonts) font(size float64) Font {
	return Font{
		Size:   size,
		Family: f.Family,
	}
}

// Theme holds the colours of everything that is not data.
type Theme struct {
	Text       string
	Tick       string
	Axis       string
	Grid       string
	Background string
}

func DefaultTheme() Theme {
	return Theme{
		Text:       defaultTextColor,
		Tick:       defaultTickColor,
		Axis:       defaultAxisColor,
		Grid:       defaultGridColor,
		Background: defaultBackgroundColor,
	}
}

func (t Theme) withDefaults() Theme {
	def := DefaultTheme()
	if t.Text == "" {
		t.Text = def.Text
	}
	if t.Tick == "" {
		t.Tick = def.Tick
	}
	if t.Axis == "" {
		t.Axis = def.Axis
	}
	if t.Grid == "" {
		t.Grid = def.Grid
	}
	if t.Background == "" {
		t.Background = def.Background
	}
	return t
}
