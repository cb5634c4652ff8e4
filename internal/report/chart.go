package report

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"os-scheduler/internal/responses"
)

// SaveAveragesChart writes a grouped bar chart of the average waiting,
// turnaround and response time of each run. The format follows the file
// extension (png, svg, pdf, ...).
func SaveAveragesChart(results []responses.ScheduleResponse, path string) error {
	if len(results) == 0 {
		return fmt.Errorf("chart: no results to plot")
	}

	p := plot.New()
	p.Title.Text = "Scheduling averages"
	p.Y.Label.Text = "Ticks"
	p.X.Label.Text = "Algorithm"

	series := []struct {
		name  string
		value func(responses.ScheduleResponse) float64
	}{
		{"Waiting", func(r responses.ScheduleResponse) float64 { return r.AverageWaitingTime }},
		{"Turnaround", func(r responses.ScheduleResponse) float64 { return r.AverageTurnAroundTime }},
		{"Response", func(r responses.ScheduleResponse) float64 { return r.AverageResponseTime }},
	}

	width := vg.Points(12)
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, strings.ToUpper(r.Algorithm))
	}
	for i, s := range series {
		values := make(plotter.Values, 0, len(results))
		for _, r := range results {
			values = append(values, s.value(r))
		}
		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return fmt.Errorf("chart: %s bars: %w", s.name, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = vg.Length(i-1) * width
		p.Add(bars)
		p.Legend.Add(s.name, bars)
	}
	p.Legend.Top = true
	p.NominalX(names...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("chart: saving %s: %w", path, err)
	}
	return nil
}
