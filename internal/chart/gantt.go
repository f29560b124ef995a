package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/slok/sheetgantt/internal/model"
)

// ganttBars is a plot.Plotter that draws one horizontal bar per task.
// Bar i is centred on y=i, X values are unix seconds.
type ganttBars struct {
	tasks []model.Task

	// Width is the bar thickness.
	Width vg.Length
	// LineStyle is the bar outline style.
	LineStyle draw.LineStyle
	// Color returns the fill colour of a task bar.
	Color func(t model.Task) color.Color
}

func newGanttBars(tasks []model.Task, width vg.Length) *ganttBars {
	return &ganttBars{
		tasks: tasks,
		Width: width,
		LineStyle: draw.LineStyle{
			Color: color.Black,
			Width: vg.Points(1),
		},
		Color: func(t model.Task) color.Color { return CompletionColor(t.Completion) },
	}
}

// Plot implements plot.Plotter.
func (g *ganttBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for i, t := range g.tasks {
		x0 := trX(unixSeconds(t.Start))
		x1 := trX(unixSeconds(t.EndExclusive()))
		y := trY(float64(i))
		y0 := y - g.Width/2
		y1 := y + g.Width/2

		pts := []vg.Point{
			{X: x0, Y: y0},
			{X: x0, Y: y1},
			{X: x1, Y: y1},
			{X: x1, Y: y0},
		}
		c.FillPolygon(g.Color(t), c.ClipPolygonXY(pts))

		outline := append(pts, pts[0])
		c.StrokeLines(g.LineStyle, c.ClipLinesXY(outline)...)
	}
}

// DataRange implements plot.DataRanger.
func (g *ganttBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(g.tasks) == 0 {
		return 0, 0, 0, 0
	}

	xmin = unixSeconds(g.tasks[0].Start)
	xmax = unixSeconds(g.tasks[0].EndExclusive())
	for _, t := range g.tasks[1:] {
		if v := unixSeconds(t.Start); v < xmin {
			xmin = v
		}
		if v := unixSeconds(t.EndExclusive()); v > xmax {
			xmax = v
		}
	}

	return xmin, xmax, -0.5, float64(len(g.tasks)) - 0.5
}
