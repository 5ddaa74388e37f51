package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/df07/go-sdf-raymarcher/pkg/integrator"
	"github.com/olekukonko/tablewriter"
)

// WorkerStats contains what one worker did during a render
type WorkerStats struct {
	WorkerID int
	Spans    int                 // Spans rendered
	Pixels   int                 // Pixels shaded
	Busy     time.Duration       // Time spent shading
	Counters integrator.Counters // Integrator work
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width       int
	Height      int
	TotalPixels int                 // Total number of pixels rendered
	Spans       int                 // Number of spans submitted
	Duration    time.Duration       // Wall clock time of the render
	Counters    integrator.Counters // Sum over all workers
	Workers     []WorkerStats
}

// newRenderStats aggregates per-worker statistics
func newRenderStats(width, height, spans int, duration time.Duration, workers []WorkerStats) RenderStats {
	stats := RenderStats{
		Width:    width,
		Height:   height,
		Spans:    spans,
		Duration: duration,
		Workers:  workers,
	}
	for _, w := range workers {
		stats.TotalPixels += w.Pixels
		stats.Counters.Merge(w.Counters)
	}
	return stats
}

// Table writes a per-worker statistics table with a totals footer
func (s RenderStats) Table(out io.Writer) {
	table := tablewriter.NewWriter(out)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Spans", "Pixels", "Casts", "Shadow rays", "March steps", "Busy"})
	for _, w := range s.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", w.WorkerID),
			fmt.Sprintf("%d", w.Spans),
			fmt.Sprintf("%d", w.Pixels),
			fmt.Sprintf("%d", w.Counters.Casts),
			fmt.Sprintf("%d", w.Counters.ShadowRays),
			fmt.Sprintf("%d", w.Counters.MarchSteps),
			fmt.Sprintf("%s", w.Busy.Round(time.Millisecond)),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", s.Spans),
		fmt.Sprintf("%d", s.TotalPixels),
		fmt.Sprintf("%d", s.Counters.Casts),
		fmt.Sprintf("%d", s.Counters.ShadowRays),
		fmt.Sprintf("%d", s.Counters.MarchSteps),
		fmt.Sprintf("%s", s.Duration.Round(time.Millisecond)),
	})

	table.Render()
}
