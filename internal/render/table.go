package render

import (
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/meyrevived/deploy-dashboard/internal/daemon/state"
)

// Table writes one line per row with the labelled name and status and the
// relative report time.
func Table(w io.Writer, rows []state.WorkerRow, now time.Time) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Status", "Reported"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		reported := Reported(row, now)
		if reported == "" {
			reported = "-"
		}
		data = append(data, []string{row.NameLabel, row.StatusLabel, reported})
	}
	table.AppendBulk(data)
	table.Render()
}
