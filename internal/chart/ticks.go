package chart

import (
	"time"

	"gonum.org/v1/plot"

	"github.com/slok/sheetgantt/internal/model"
)

// dayTicks places ticks on UTC midnights of a unix seconds range, spacing them so
// there are around 10 labels.
type dayTicks struct{}

var tickSteps = []int{1, 2, 3, 5, 7, 14, 30, 60, 90, 180, 365}

// Ticks implements plot.Ticker.
func (dayTicks) Ticks(min, max float64) []plot.Tick {
	if max <= min {
		return nil
	}

	const secondsPerDay = 24 * 60 * 60
	days := (max - min) / secondsPerDay

	step := tickSteps[len(tickSteps)-1]
	for _, s := range tickSteps {
		if days/float64(s) <= 10 {
			step = s
			break
		}
	}

	start := time.Unix(int64(min), 0).UTC().Truncate(24 * time.Hour)
	if float64(start.Unix()) < min {
		start = start.Add(24 * time.Hour)
	}

	var ticks []plot.Tick
	for i, t := 0, start; float64(t.Unix()) <= max; i, t = i+1, t.Add(24*time.Hour) {
		tick := plot.Tick{Value: float64(t.Unix())}
		if i%step == 0 {
			tick.Label = t.Format(model.DateLayout)
		}
		ticks = append(ticks, tick)
	}

	return ticks
}
