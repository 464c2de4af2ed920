// Package report renders a scheduling run as a gantt strip followed by a
// results table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/schedulers"
)

// Render writes title, the gantt strip and the schedule table of run to w.
func Render(w io.Writer, title string, run *schedulers.Run) {
	outputTitle(w, title)
	outputGantt(w, run.Timeline)
	outputSchedule(w, run)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// outputGantt prints one cell per timeline entry and the start offsets
// beneath, closing with the end of the last entry.
func outputGantt(w io.Writer, timeline []core.TimelineEntry) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprint(w, "(empty)\n\n")
		return
	}
	_, _ = fmt.Fprint(w, "|")
	for _, entry := range timeline {
		padding := strings.Repeat(" ", max(0, 8-len(entry.Name))/2)
		_, _ = fmt.Fprint(w, padding, entry.Name, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, entry := range timeline {
		_, _ = fmt.Fprint(w, entry.Start, "\t")
		if i == len(timeline)-1 {
			_, _ = fmt.Fprint(w, entry.End())
		}
	}
	_, _ = fmt.Fprint(w, "\n\n")
}

func outputSchedule(w io.Writer, run *schedulers.Run) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, len(run.Results))
	for i, result := range run.Results {
		rows[i] = []string{
			result.Name,
			fmt.Sprint(result.BurstTime),
			fmt.Sprint(result.ArrivalTime),
			fmt.Sprint(result.WaitingTime),
			fmt.Sprint(result.TurnaroundTime),
			fmt.Sprint(result.CompletionTime),
		}
	}
	analytics := run.Analytics
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Total %d\nAverage %.2f", analytics.TotalWaitingTime, analytics.AverageWaitingTime),
		fmt.Sprintf("Total %d\nAverage %.2f", analytics.TotalTurnaroundTime, analytics.AverageTurnaroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", analytics.CpuThroughput)})
	table.Render()
}
