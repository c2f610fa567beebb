package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(logrus.WarnLevel)
}

func TestDrawDashboard(t *testing.T) {
	for _, format := range []string{formatSVG, formatPNG} {
		t.Run(format, func(t *testing.T) {
			list, err := loadDashboard("testdata/dashboard.toml")
			require.NoError(t, err)
			require.Len(t, list, 3)

			env := environ{
				Dir:    t.TempDir(),
				Format: format,
				FPS:    30,
				Width:  defaultWidth,
				Height: defaultHeight,
			}
			require.NoError(t, env.check())
			require.NoError(t, drawAll(context.Background(), env, list, 2))

			for _, name := range []string{"sales", "share", "trend"} {
				info, err := os.Stat(env.path(name))
				require.NoError(t, err, name)
				assert.NotZero(t, info.Size(), name)
			}
		})
	}
}

func TestDrawFrames(t *testing.T) {
	list, err := loadDashboard("testdata/dashboard.toml")
	require.NoError(t, err)

	env := environ{
		Dir:    t.TempDir(),
		Format: formatSVG,
		Frames: true,
		FPS:    50,
		Width:  defaultWidth,
		Height: defaultHeight,
	}
	require.NoError(t, drawAll(context.Background(), env, list[:1], 1))

	files, err := filepath.Glob(filepath.Join(env.Dir, "sales-*.svg"))
	require.NoError(t, err)
	// first frame at 0 then one every 20ms until 100ms
	assert.Len(t, files, 6)
	assert.FileExists(t, env.path("sales"))
}

func TestLoadFiles(t *testing.T) {
	list, err := loadFiles([]string{"testdata/sales.csv"}, "pie", "", 0, "1:+3")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "sales", list[0].Name)

	ser, err := list[0].Source.Series()
	require.NoError(t, err)
	assert.Equal(t, []float64{60, 15, 6, 0}, ser.Values)

	_, err = loadFiles([]string{"testdata/sales.csv"}, "radar", "", 0, "1")
	assert.Error(t, err)
	_, err = loadFiles([]string{"testdata/sales.csv"}, "bar", "", 0, "x")
	assert.Error(t, err)
}

func TestEnvironCheck(t *testing.T) {
	env := environ{Format: "gif", FPS: 30, Width: 10, Height: 10}
	assert.Error(t, env.check())
	env.Format = formatPNG
	env.FPS = 0
	assert.Error(t, env.check())
	env.FPS = 30
	env.Width = 0
	assert.Error(t, env.check())
}
