package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/midbel/dashcharts"
	"github.com/midbel/dashcharts/clock"
	"github.com/midbel/dashcharts/config"
	"github.com/midbel/dashcharts/dash"
	"github.com/midbel/dashcharts/surface/raster"
	"github.com/midbel/dashcharts/surface/vector"
	"github.com/sirupsen/logrus"
)

const (
	formatSVG = "svg"
	formatPNG = "png"
)

type environ struct {
	Dir      string
	Format   string
	Frames   bool
	FPS      int
	Realtime bool
	Width    float64
	Height   float64
}

func (e environ) check() error {
	switch e.Format {
	case formatSVG, formatPNG:
	default:
		return fmt.Errorf("%s: unsupported output format", e.Format)
	}
	if e.FPS <= 0 {
		return fmt.Errorf("%d: invalid number of frames per second", e.FPS)
	}
	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Errorf("%gx%g: invalid chart size", e.Width, e.Height)
	}
	return nil
}

func (e environ) interval() time.Duration {
	return time.Second / time.Duration(e.FPS)
}

func (e environ) path(name string) string {
	return filepath.Join(e.Dir, name+"."+e.Format)
}

func (e environ) framePath(name string, frame int) string {
	return filepath.Join(e.Dir, fmt.Sprintf("%s-%04d.%s", name, frame, e.Format))
}

type renderFunc func(*charts.Renderer, charts.Surface, charts.Series) error

// job is one chart to draw. Width and Height are the size of its surface
// when the chart does not give one.
type job struct {
	Name       string
	Kind       string
	Width      float64
	Height     float64
	Background string
	Source     dash.DataSource
	Render     renderFunc
}

func (j job) size(env environ) (float64, float64) {
	w, h := j.Width, j.Height
	if w <= 0 {
		w = env.Width
	}
	if h <= 0 {
		h = env.Height
	}
	return w, h
}

type surface struct {
	charts.Surface
	save func(io.Writer) error
}

func (j job) surface(env environ) surface {
	w, h := j.size(env)
	switch env.Format {
	case formatPNG:
		s := raster.New(int(w), int(h))
		if j.Background != "" {
			s.Background = j.Background
		}
		return surface{Surface: s, save: s.EncodePNG}
	default:
		s := vector.New(w, h)
		if j.Background != "" {
			s.Background = j.Background
		}
		return surface{Surface: s, save: s.Render}
	}
}

func (j job) draw(ctx context.Context, env environ) error {
	logger := log.WithFields(logrus.Fields{
		"chart": j.Name,
		"type":  j.Kind,
	})
	ser, err := j.Source.Series()
	if err != nil {
		return fmt.Errorf("%s: %w", j.Name, err)
	}
	var (
		out   = j.surface(env)
		rdr   = charts.NewRenderer(nil)
		count int
		ferr  error
	)
	rdr.Logger = logger
	if env.Frames {
		rdr.OnFrame = func(_ charts.Surface, p float64) {
			if ferr != nil {
				return
			}
			count++
			ferr = writeFile(env.framePath(j.Name, count), out.save)
			logger.WithField("progress", p).Debug("frame written")
		}
	}

	switch {
	case env.Realtime:
		tick := clock.NewTicker(ctx, env.interval())
		defer tick.Close()
		rdr.Clock = tick
		if err := j.Render(rdr, out.Surface, ser); err != nil {
			return fmt.Errorf("%s: %w", j.Name, err)
		}
		if err := tick.Wait(ctx); err != nil {
			return err
		}
	case env.Frames:
		manual := clock.NewManual()
		rdr.Clock = manual
		if err := j.Render(rdr, out.Surface, ser); err != nil {
			return fmt.Errorf("%s: %w", j.Name, err)
		}
		manual.Drain(env.interval())
	default:
		if err := j.Render(rdr, out.Surface, ser); err != nil {
			return fmt.Errorf("%s: %w", j.Name, err)
		}
	}
	if ferr != nil {
		return ferr
	}
	file := env.path(j.Name)
	if err := writeFile(file, out.save); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"file":   file,
		"frames": count,
	}).Info("chart written")
	return nil
}

func writeFile(file string, save func(io.Writer) error) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := save(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

func renderFor(kind string, cfg *config.Config, ch config.Chart) (renderFunc, error) {
	switch kind {
	case config.TypeBar:
		opts := cfg.BarOptions(ch)
		return func(r *charts.Renderer, s charts.Surface, ser charts.Series) error {
			return r.RenderBar(s, ser, opts)
		}, nil
	case config.TypePie, config.TypeDonut:
		opts := cfg.PieOptions(ch)
		return func(r *charts.Renderer, s charts.Surface, ser charts.Series) error {
			return r.RenderPie(s, ser, opts)
		}, nil
	case config.TypeLine:
		opts := cfg.LineOptions(ch)
		return func(r *charts.Renderer, s charts.Surface, ser charts.Series) error {
			return r.RenderLine(s, ser, opts)
		}, nil
	default:
		return nil, config.OptionError{Chart: ch.Name, Option: "type", Value: kind}
	}
}

func loadDashboard(file string) ([]job, error) {
	cfg, err := config.Load(file)
	if err != nil {
		return nil, err
	}
	var list []job
	for _, ch := range cfg.Charts {
		src, err := cfg.DataSource(ch)
		if err != nil {
			return nil, err
		}
		rdr, err := renderFor(ch.Type, cfg, ch)
		if err != nil {
			return nil, err
		}
		w, h := cfg.Size(ch, 0, 0)
		list = append(list, job{
			Name:       ch.Name,
			Kind:       ch.Type,
			Width:      w,
			Height:     h,
			Background: cfg.Defaults.Theme.Background,
			Source:     src,
			Render:     rdr,
		})
	}
	return list, nil
}

// loadFiles creates one chart per CSV file with the default options of the
// requested type.
func loadFiles(files []string, kind, title string, xcol int, ycol string) ([]job, error) {
	sel, err := dash.ParseSelector(ycol)
	if err != nil {
		return nil, err
	}
	var (
		cfg  config.Config
		list []job
	)
	for _, f := range files {
		src := dash.LocalFile{
			Path: f,
			X:    xcol,
			Y:    sel,
		}
		ch := config.Chart{
			Name:  src.Name(),
			Type:  kind,
			Title: title,
		}
		if ch.Title == "" {
			ch.Title = strings.ReplaceAll(ch.Name, "_", " ")
		}
		rdr, err := renderFor(kind, &cfg, ch)
		if err != nil {
			return nil, err
		}
		list = append(list, job{
			Name:   ch.Name,
			Kind:   kind,
			Source: src,
			Render: rdr,
		})
	}
	return list, nil
}
