package chart

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/slok/sheetgantt/internal/log"
	"github.com/slok/sheetgantt/internal/model"
)

const (
	// DefaultTitle is the default chart title.
	DefaultTitle = "Project progress Gantt chart"
	// DefaultWidth is the default figure width.
	DefaultWidth = 12 * vg.Inch
	// DefaultHeight is the default figure height.
	DefaultHeight = 8 * vg.Inch
	// DefaultDPI is the default figure resolution.
	DefaultDPI = 80
)

// Renderer knows how to render the tasks timeline image.
type Renderer interface {
	RenderGantt(ctx context.Context, title string, tasks []model.Task) ([]byte, error)
}

//go:generate mockery --case underscore --output chartmock --outpkg chartmock --name Renderer

// GanttRendererConfig is the configuration for the Gantt PNG renderer.
type GanttRendererConfig struct {
	Width  vg.Length
	Height vg.Length
	DPI    int
	// FontData is an optional TrueType/OpenType font used for every chart text,
	// required when task names use scripts the default font lacks (e.g CJK).
	FontData []byte
	Logger   log.Logger
}

func (c *GanttRendererConfig) defaults() error {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.DPI == 0 {
		c.DPI = DefaultDPI
	}

	if c.Width < 0 || c.Height < 0 || c.DPI < 0 {
		return fmt.Errorf("figure size and dpi must be positive")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "chart.GanttRenderer"})

	return nil
}

// GanttRenderer renders tasks as a PNG Gantt chart in memory.
type GanttRenderer struct {
	width  vg.Length
	height vg.Length
	dpi    int
	font   *font.Font
	logger log.Logger
}

// NewGanttRenderer returns a new Gantt PNG renderer.
func NewGanttRenderer(cfg GanttRendererConfig) (*GanttRenderer, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	r := &GanttRenderer{
		width:  cfg.Width,
		height: cfg.Height,
		dpi:    cfg.DPI,
		logger: cfg.Logger,
	}

	if len(cfg.FontData) > 0 {
		f, err := registerFont(cfg.FontData)
		if err != nil {
			return nil, fmt.Errorf("could not load font: %w", err)
		}
		r.font = &f
	}

	return r, nil
}

// RenderGantt renders the tasks into a PNG image.
func (r *GanttRenderer) RenderGantt(ctx context.Context, title string, tasks []model.Task) ([]byte, error) {
	if len(tasks) == 0 {
		return nil, fmt.Errorf("at least one task is required: %w", model.ErrNotValid)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	p := r.newPlot(title, tasks)

	c := vgimg.NewWith(vgimg.UseWH(r.width, r.height), vgimg.UseDPI(r.dpi))
	p.Draw(draw.New(c))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("could not encode PNG: %w", err)
	}

	r.logger.Debugf("Rendered Gantt chart with %d tasks (%d bytes)", len(tasks), buf.Len())
	return buf.Bytes(), nil
}

func (r *GanttRenderer) newPlot(title string, tasks []model.Task) *plot.Plot {
	p := plot.New()

	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.Title.Padding = vg.Points(8)

	// Task names on the Y axis, first task at the bottom.
	names := make([]string, 0, len(tasks))
	for _, t := range tasks {
		names = append(names, t.Name)
	}
	p.NominalY(names...)
	p.Y.Tick.Label.Font.Size = vg.Points(12)

	// Dates on the X axis, slanted so they don't overlap.
	p.X.Tick.Marker = plot.TimeTicks{
		Ticker: dayTicks{},
		Format: model.DateLayout,
		Time:   plot.UTCUnixTime,
	}
	p.X.Tick.Label.Rotation = math.Pi / 6
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.X.Padding = vg.Points(4)

	grid := plotter.NewGrid()
	grid.Horizontal.Width = 0
	grid.Vertical.Color = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xb3}
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(grid)

	p.Add(newGanttBars(tasks, vg.Points(r.barWidth(len(tasks)))))

	if r.font != nil {
		applyFont(p, *r.font)
	}

	return p
}

// barWidth returns the bar thickness in points so bars take 80% of each task row.
func (r *GanttRenderer) barWidth(n int) float64 {
	// Rough plotting area, axis and title space is ignored.
	rowHeight := r.height.Points() * 0.75 / float64(n)
	return rowHeight * 0.8
}

func unixSeconds(t time.Time) float64 {
	return float64(t.Unix())
}
