package config

import (
	"path/filepath"
	"time"

	"github.com/midbel/dashcharts"
	"github.com/midbel/dashcharts/dash"
)

func pick[T comparable](vs ...T) T {
	var zero T
	for _, v := range vs {
		if v != zero {
			return v
		}
	}
	return zero
}

func pickBool(def bool, vs ...*bool) bool {
	for _, v := range vs {
		if v != nil {
			return *v
		}
	}
	return def
}

func (c *Config) width(ch Chart) float64 {
	return pick(ch.Width, c.Defaults.Width)
}

func (c *Config) height(ch Chart) float64 {
	return pick(ch.Height, c.Defaults.Height)
}

// Size returns the size of the surface a chart is drawn on.
func (c *Config) Size(ch Chart, width, height float64) (float64, float64) {
	return pick(c.width(ch), width), pick(c.height(ch), height)
}

func (c *Config) duration(ch Chart, def time.Duration) time.Duration {
	return pick(ch.Duration.Duration, c.Defaults.Duration.Duration, def)
}

func (c *Config) palette(ch Chart, def charts.Palette) charts.Palette {
	if len(ch.Colors) > 0 {
		return charts.Palette(ch.Colors)
	}
	if p, ok := charts.PaletteByName(ch.Palette); ok {
		return p
	}
	if len(c.Defaults.Colors) > 0 {
		return charts.Palette(c.Defaults.Colors)
	}
	if p, ok := charts.PaletteByName(c.Defaults.Palette); ok {
		return p
	}
	return def
}

func (c *Config) fonts() charts.Fonts {
	var (
		def = charts.DefaultFonts()
		cfg = c.Defaults.Fonts
	)
	if len(cfg.Family) > 0 {
		def.Family = cfg.Family
	}
	def.Title = pick(cfg.Title, def.Title)
	def.Value = pick(cfg.Value, def.Value)
	def.Label = pick(cfg.Label, def.Label)
	def.Tick = pick(cfg.Tick, def.Tick)
	return def
}

func (c *Config) theme() charts.Theme {
	var (
		def = charts.DefaultTheme()
		cfg = c.Defaults.Theme
	)
	def.Text = pick(cfg.Text, def.Text)
	def.Tick = pick(cfg.Tick, def.Tick)
	def.Axis = pick(cfg.Axis, def.Axis)
	def.Grid = pick(cfg.Grid, def.Grid)
	def.Background = pick(cfg.Background, def.Background)
	return def
}

func (c *Config) responsive() charts.Responsive {
	var (
		def = charts.DefaultResponsive()
		cfg = c.Defaults.Responsive
	)
	def.Small = pick(cfg.Small, def.Small)
	def.Medium = pick(cfg.Medium, def.Medium)
	if len(cfg.Padding) == len(def.Padding) {
		copy(def.Padding[:], cfg.Padding)
	}
	if len(cfg.Gap) == len(def.Gap) {
		copy(def.Gap[:], cfg.Gap)
	}
	return def
}

func (c *Config) BarOptions(ch Chart) charts.BarOptions {
	opts := charts.DefaultBarOptions()
	opts.Width = c.width(ch)
	opts.Height = c.height(ch)
	opts.Padding = ch.Padding
	opts.Title = ch.Title
	opts.BarColors = c.palette(ch, opts.BarColors)
	opts.Animate = pickBool(opts.Animate, ch.Animate, c.Defaults.Animate)
	opts.Duration = c.duration(ch, opts.Duration)
	opts.Fonts = c.fonts()
	opts.Theme = c.theme()
	opts.Responsive = c.responsive()
	return opts
}

func (c *Config) PieOptions(ch Chart) charts.PieOptions {
	opts := charts.DefaultPieOptions()
	opts.Width = c.width(ch)
	opts.Height = c.height(ch)
	opts.Margin = ch.Padding
	opts.Title = ch.Title
	opts.Colors = c.palette(ch, opts.Colors)
	opts.Animate = pickBool(opts.Animate, ch.Animate, c.Defaults.Animate)
	opts.Duration = c.duration(ch, opts.Duration)
	opts.Donut = ch.Type == TypeDonut
	opts.DonutWidth = pick(ch.DonutWidth, opts.DonutWidth)
	opts.LabelThreshold = pick(ch.LabelThreshold, opts.LabelThreshold)
	opts.LabelOffset = pick(ch.LabelOffset, opts.LabelOffset)
	opts.Fonts = c.fonts()
	opts.Theme = c.theme()
	opts.Responsive = c.responsive()
	return opts
}

func (c *Config) LineOptions(ch Chart) charts.LineOptions {
	opts := charts.DefaultLineOptions()
	opts.Width = c.width(ch)
	opts.Height = c.height(ch)
	opts.Padding = ch.Padding
	opts.Title = ch.Title
	opts.Animate = pickBool(opts.Animate, ch.Animate, c.Defaults.Animate)
	opts.Duration = c.duration(ch, opts.Duration)
	opts.GridLines = pickBool(opts.GridLines, ch.Grid)
	opts.GridCount = pick(ch.GridCount, opts.GridCount)
	opts.PointRadius = pick(ch.PointRadius, opts.PointRadius)
	opts.LineWidth = pick(ch.LineWidth, opts.LineWidth)
	if colors := c.palette(ch, nil); len(colors) > 0 {
		opts.LineColor = colors.At(0)
		opts.PointColor = colors.At(1)
	}
	opts.LineColor = pick(ch.LineColor, opts.LineColor)
	opts.PointColor = pick(ch.PointColor, opts.PointColor)
	opts.Fonts = c.fonts()
	opts.Theme = c.theme()
	opts.Responsive = c.responsive()
	return opts
}

func (c *Config) path(file string) string {
	if file == "" || filepath.IsAbs(file) || c.Dir == "" {
		return file
	}
	return filepath.Join(c.Dir, file)
}

// DataSource returns the source of the data of a chart.
func (c *Config) DataSource(ch Chart) (dash.DataSource, error) {
	src := ch.Data
	switch {
	case src.File != "":
		f := dash.LocalFile{
			Path:  c.path(src.File),
			Ident: ch.Name,
			X:     src.X,
			Limit: dash.Limit{
				Offset: src.Offset,
				Count:  src.Count,
			},
		}
		if src.Y != "" {
			sel, err := dash.ParseSelector(src.Y)
			if err != nil {
				return nil, OptionError{Chart: ch.Name, Option: "data.y", Value: src.Y, Err: err}
			}
			f.Y = sel
		}
		return f, nil
	case src.Inline != "":
		return dash.LocalData{Ident: ch.Name, Content: src.Inline}, nil
	case src.Staff != "":
		switch src.View {
		case "", dash.ViewLocation, dash.ViewPosition:
		default:
			return nil, OptionError{Chart: ch.Name, Option: "data.view", Value: src.View}
		}
		return dash.StaffView{Path: c.path(src.Staff), View: src.View}, nil
	case src.Fleet != "":
		switch src.View {
		case "", dash.ViewEquipment, dash.ViewRevision, dash.ViewHistory:
		default:
			return nil, OptionError{Chart: ch.Name, Option: "data.view", Value: src.View}
		}
		return dash.FleetView{Path: c.path(src.Fleet), View: src.View}, nil
	case len(src.Values) > 0 || len(src.Labels) > 0:
		return dash.Static{Labels: src.Labels, Values: src.Values}, nil
	default:
		return nil, OptionError{Chart: ch.Name, Option: "data"}
	}
}
