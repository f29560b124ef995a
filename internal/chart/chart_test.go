package chart_test

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/sheetgantt/internal/chart"
	"github.com/slok/sheetgantt/internal/model"
	"github.com/slok/sheetgantt/internal/storage/memory"
)

func TestGanttRendererRenderGantt(t *testing.T) {
	tests := map[string]struct {
		cfg       chart.GanttRendererConfig
		ctx       func() context.Context
		tasks     []model.Task
		expWidth  int
		expHeight int
		expErr    bool
	}{
		"Default config should render a 960x640 PNG.": {
			cfg:       chart.GanttRendererConfig{},
			tasks:     memory.DefaultTasks(),
			expWidth:  960,
			expHeight: 640,
		},

		"Custom DPI should change the image size.": {
			cfg:       chart.GanttRendererConfig{DPI: 40},
			tasks:     memory.DefaultTasks(),
			expWidth:  480,
			expHeight: 320,
		},

		"A single day task should render.": {
			cfg: chart.GanttRendererConfig{},
			tasks: []model.Task{
				{Name: "Kick-off", Start: model.MustParseDate("2023-10-01"), End: model.MustParseDate("2023-10-01"), Completion: 100},
			},
			expWidth:  960,
			expHeight: 640,
		},

		"No tasks should fail.": {
			cfg:    chart.GanttRendererConfig{},
			tasks:  []model.Task{},
			expErr: true,
		},

		"A cancelled context should fail.": {
			cfg: chart.GanttRendererConfig{},
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			tasks:  memory.DefaultTasks(),
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			ctx := context.Background()
			if test.ctx != nil {
				ctx = test.ctx()
			}

			r, err := chart.NewGanttRenderer(test.cfg)
			require.NoError(err)

			data, err := r.RenderGantt(ctx, chart.DefaultTitle, test.tasks)

			if test.expErr {
				assert.Error(err)
				return
			}
			require.NoError(err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(err)
			assert.Equal(test.expWidth, img.Bounds().Dx())
			assert.Equal(test.expHeight, img.Bounds().Dy())
		})
	}
}

func TestNewGanttRendererInvalidFont(t *testing.T) {
	_, err := chart.NewGanttRenderer(chart.GanttRendererConfig{
		FontData: []byte("this is not a font"),
	})
	assert.Error(t, err)
}

func TestNewGanttRendererInvalidSize(t *testing.T) {
	_, err := chart.NewGanttRenderer(chart.GanttRendererConfig{DPI: -1})
	assert.Error(t, err)
}
