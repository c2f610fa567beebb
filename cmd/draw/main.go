package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	defaultFPS    = 30
)

var log = logrus.StandardLogger()

func main() {
	var (
		file     = flag.String("config", "", "dashboard file (toml or yaml)")
		outdir   = flag.String("out", ".", "output directory")
		format   = flag.String("format", formatSVG, "output format (svg or png)")
		frames   = flag.Bool("frames", false, "write every frame of the animations")
		fps      = flag.Int("fps", defaultFPS, "frames per second of the animations")
		realtime = flag.Bool("realtime", false, "run the animations in real time")
		workers  = flag.Int("workers", runtime.NumCPU(), "number of charts drawn in parallel")
		level    = flag.String("log-level", "info", "log level")
		kind     = flag.String("type", "bar", "chart type (bar, pie, donut or line)")
		title    = flag.String("title", "", "chart title")
		xcol     = flag.Int("xcol", 0, "index of label column")
		ycol     = flag.String("ycol", "1", "value columns")
		width    = flag.Float64("width", defaultWidth, "chart width")
		height   = flag.Float64("height", defaultHeight, "chart height")
	)
	flag.Parse()

	lvl, err := logrus.ParseLevel(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)

	env := environ{
		Dir:      *outdir,
		Format:   *format,
		Frames:   *frames,
		FPS:      *fps,
		Realtime: *realtime,
		Width:    *width,
		Height:   *height,
	}
	if err := env.check(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var list []job
	if *file != "" {
		list, err = loadDashboard(*file)
	} else {
		list, err = loadFiles(flag.Args(), *kind, *title, *xcol, *ycol)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if len(list) == 0 {
		fmt.Fprintln(os.Stderr, "no chart to draw")
		os.Exit(1)
	}
	if err := os.MkdirAll(env.Dir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := drawAll(ctx, env, list, *workers); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(3)
	}
}

func drawAll(ctx context.Context, env environ, list []job, workers int) error {
	grp, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		grp.SetLimit(workers)
	}
	for _, j := range list {
		j := j
		grp.Go(func() error {
			return j.draw(ctx, env)
		})
	}
	return grp.Wait()
}
