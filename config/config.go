// Package config decodes dashboard files. A dashboard lists the charts to
// draw, the data each one uses and the options overriding the defaults of
// the chart renderers.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/midbel/dashcharts"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

const (
	TypeBar   = "bar"
	TypePie   = "pie"
	TypeDonut = "donut"
	TypeLine  = "line"
)

var ErrFormat = errors.New("unsupported format")

// Duration is a time.Duration written as a string like "1500ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Fonts struct {
	Family []string `toml:"family" yaml:"family"`
	Title  float64  `toml:"title" yaml:"title"`
	Value  float64  `toml:"value" yaml:"value"`
	Label  float64  `toml:"label" yaml:"label"`
	Tick   float64  `toml:"tick" yaml:"tick"`
}

type Theme struct {
	Text       string `toml:"text" yaml:"text"`
	Tick       string `toml:"tick" yaml:"tick"`
	Axis       string `toml:"axis" yaml:"axis"`
	Grid       string `toml:"grid" yaml:"grid"`
	Background string `toml:"background" yaml:"background"`
}

type Responsive struct {
	Small   float64   `toml:"small" yaml:"small"`
	Medium  float64   `toml:"medium" yaml:"medium"`
	Padding []float64 `toml:"padding" yaml:"padding"`
	Gap     []float64 `toml:"gap" yaml:"gap"`
}

// Defaults apply to every chart of the dashboard that does not set them.
type Defaults struct {
	Width      float64    `toml:"width" yaml:"width"`
	Height     float64    `toml:"height" yaml:"height"`
	Animate    *bool      `toml:"animate" yaml:"animate"`
	Duration   Duration   `toml:"duration" yaml:"duration"`
	Colors     []string   `toml:"colors" yaml:"colors"`
	Palette    string     `toml:"palette" yaml:"palette"`
	Fonts      Fonts      `toml:"fonts" yaml:"fonts"`
	Theme      Theme      `toml:"theme" yaml:"theme"`
	Responsive Responsive `toml:"responsive" yaml:"responsive"`
}

// Source tells where the data of a chart comes from. Exactly one of File,
// Inline, Staff, Fleet or Values is expected.
type Source struct {
	File   string `toml:"file" yaml:"file"`
	X      int    `toml:"x" yaml:"x"`
	Y      string `toml:"y" yaml:"y"`
	Offset int    `toml:"offset" yaml:"offset"`
	Count  int    `toml:"count" yaml:"count"`

	Inline string `toml:"inline" yaml:"inline"`

	Staff string `toml:"staff" yaml:"staff"`
	Fleet string `toml:"fleet" yaml:"fleet"`
	View  string `toml:"view" yaml:"view"`

	Labels []string  `toml:"labels" yaml:"labels"`
	Values []float64 `toml:"values" yaml:"values"`
}

type Chart struct {
	Name     string   `toml:"name" yaml:"name"`
	Type     string   `toml:"type" yaml:"type"`
	Title    string   `toml:"title" yaml:"title"`
	Width    float64  `toml:"width" yaml:"width"`
	Height   float64  `toml:"height" yaml:"height"`
	Padding  float64  `toml:"padding" yaml:"padding"`
	Colors   []string `toml:"colors" yaml:"colors"`
	Palette  string   `toml:"palette" yaml:"palette"`
	Animate  *bool    `toml:"animate" yaml:"animate"`
	Duration Duration `toml:"duration" yaml:"duration"`

	DonutWidth     float64 `toml:"donut-width" yaml:"donut-width"`
	LabelThreshold float64 `toml:"label-threshold" yaml:"label-threshold"`
	LabelOffset    float64 `toml:"label-offset" yaml:"label-offset"`

	LineColor   string  `toml:"line-color" yaml:"line-color"`
	PointColor  string  `toml:"point-color" yaml:"point-color"`
	Grid        *bool   `toml:"grid" yaml:"grid"`
	GridCount   int     `toml:"grid-count" yaml:"grid-count"`
	PointRadius float64 `toml:"point-radius" yaml:"point-radius"`
	LineWidth   float64 `toml:"line-width" yaml:"line-width"`

	Data Source `toml:"data" yaml:"data"`
}

type Config struct {
	Title    string   `toml:"title" yaml:"title"`
	Defaults Defaults `toml:"defaults" yaml:"defaults"`
	Charts   []Chart  `toml:"chart" yaml:"chart"`

	// Dir is the directory of the dashboard file. Relative data paths are
	// resolved against it.
	Dir string `toml:"-" yaml:"-"`
}

// Load decodes the dashboard file. Its format is given by its extension.
func Load(file string) (*Config, error) {
	format, err := formatOf(file)
	if err != nil {
		return nil, DecodeError{File: file, Err: err}
	}
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	cfg, err := Decode(r, format)
	if err != nil {
		var de DecodeError
		if errors.As(err, &de) {
			de.File = file
			return nil, de
		}
		return nil, err
	}
	cfg.Dir = filepath.Dir(file)
	return cfg, nil
}

// Decode reads a dashboard in the given format. Keys unknown to the
// dashboard structure are rejected.
func Decode(r io.Reader, format string) (*Config, error) {
	var (
		cfg Config
		err error
	)
	switch strings.ToLower(format) {
	case FormatTOML:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg)
	case FormatYAML, "yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		err = fmt.Errorf("%w: %s", ErrFormat, format)
	}
	if err != nil {
		return nil, DecodeError{Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func formatOf(file string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, ext)
	}
}

// Validate checks the type of every chart and gives a name to the charts
// without one.
func (c *Config) Validate() error {
	if r := c.Defaults.Responsive; len(r.Padding) > 0 && len(r.Padding) != 3 {
		return OptionError{Chart: "defaults", Option: "responsive.padding", Value: fmt.Sprint(r.Padding)}
	}
	if r := c.Defaults.Responsive; len(r.Gap) > 0 && len(r.Gap) != 3 {
		return OptionError{Chart: "defaults", Option: "responsive.gap", Value: fmt.Sprint(r.Gap)}
	}
	if p := c.Defaults.Palette; p != "" {
		if _, ok := charts.PaletteByName(p); !ok {
			return OptionError{Chart: "defaults", Option: "palette", Value: p}
		}
	}
	seen := make(map[string]struct{})
	for i := range c.Charts {
		ch := &c.Charts[i]
		if ch.Name == "" {
			ch.Name = fmt.Sprintf("chart-%d", i+1)
		}
		if _, ok := seen[ch.Name]; ok {
			return OptionError{Chart: ch.Name, Option: "name", Value: ch.Name}
		}
		seen[ch.Name] = struct{}{}
		switch ch.Type {
		case TypeBar, TypePie, TypeDonut, TypeLine:
		case "":
			return OptionError{Chart: ch.Name, Option: "type"}
		default:
			return OptionError{Chart: ch.Name, Option: "type", Value: ch.Type}
		}
		if ch.Palette == "" {
			continue
		}
		if _, ok := charts.PaletteByName(ch.Palette); !ok {
			return OptionError{Chart: ch.Name, Option: "palette", Value: ch.Palette}
		}
	}
	return nil
}
