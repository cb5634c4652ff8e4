package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
)

// WriteSchedule prints a title, a Gantt chart and the per-process table of one run.
func WriteSchedule(w io.Writer, response responses.ScheduleResponse) {
	writeTitle(w, title(response.Algorithm))
	WriteGantt(w, response.Trace)
	writeDetails(w, response)
}

func title(algorithm string) string {
	if a, err := schedulers.ParseAlgorithm(algorithm); err == nil {
		return a.String()
	}
	return algorithm
}

func writeTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// WriteGantt draws one cell per segment with the tick boundaries below it.
func WriteGantt(w io.Writer, trace []responses.ExecutionSegment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(trace) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}
	_, _ = fmt.Fprint(w, "|")
	for _, segment := range trace {
		label := segment.ProcessId
		if segment.Idle() {
			label = "-"
		}
		padding := strings.Repeat(" ", max(0, 8-len(label))/2)
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, segment := range trace {
		_, _ = fmt.Fprint(w, segment.Start, "\t")
		if i == len(trace)-1 {
			_, _ = fmt.Fprint(w, segment.End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func writeDetails(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Start", "Exit", "Response", "Wait", "Turnaround"})
	for _, d := range response.Details {
		table.Append([]string{
			d.ProcessId,
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.StartTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.ResponseTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime)})
	table.Render()
}

// WriteComparison prints one row per algorithm.
func WriteComparison(w io.Writer, results []responses.ScheduleResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "Avg Response", "Makespan", "Utilization", "Switches"})
	for _, r := range results {
		table.Append([]string{
			title(r.Algorithm),
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprint(r.TotalTime),
			fmt.Sprintf("%.0f%%", r.CpuUtilization*100),
			fmt.Sprint(r.ContextSwitches),
		})
	}
	table.Render()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
