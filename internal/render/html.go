// Package render turns the dashboard state into an HTML page or a terminal
// table.
package render

import (
	"fmt"
	"html/template"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/meyrevived/deploy-dashboard/internal/daemon/state"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="{{ .RefreshSeconds }}">
<title>Worker status</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
.worker { display: flex; align-items: center; margin: 0.25rem 0; }
.worker .box { width: 1rem; height: 1rem; margin-right: 0.75rem; border-radius: 2px; background: #9e9e9e; }
.worker .name { min-width: 12rem; font-weight: bold; }
.worker .reported { margin-left: 1rem; color: #757575; }
.box[data-status="running"] { background: #4caf50; }
.box[data-status="highLoad"] { background: #ff9800; }
.box[data-status="stopped"] { background: #f44336; }
.box[data-status="error"] { background: #b71c1c; }
.empty { color: #757575; }
</style>
</head>
<body>
<h1>Worker status</h1>
{{- if .Rows }}
<div class="workers">
{{- range .Rows }}
<div class="worker">
<span class="box" data-status="{{ .StatusClass }}"></span>
<span class="name">{{ .NameLabel }}</span>
<span class="status">{{ .StatusLabel }}</span>
{{- if .Reported }}
<span class="reported">{{ .Reported }}</span>
{{- end }}
</div>
{{- end }}
</div>
{{- else }}
<p class="empty">{{ if .Idle }}Waiting for the first status update{{ else }}No workers reported{{ end }}</p>
{{- end }}
</body>
</html>
`

var page = template.Must(template.New("dashboard").Parse(pageTemplate))

type pageRow struct {
	NameLabel   string
	StatusLabel string
	StatusClass string
	Reported    string
}

type pageData struct {
	RefreshSeconds int
	Idle           bool
	Rows           []pageRow
}

// HTML writes the dashboard page for dash. The page reloads itself every
// refresh interval, rounded up to whole seconds.
func HTML(w io.Writer, dash state.Dashboard, refresh time.Duration, now time.Time) error {
	data := pageData{
		RefreshSeconds: int(math.Max(1, math.Ceil(refresh.Seconds()))),
		Idle:           dash.Phase == state.PhaseIdle,
		Rows:           make([]pageRow, 0, len(dash.Rows)),
	}
	for _, row := range dash.Rows {
		data.Rows = append(data.Rows, pageRow{
			NameLabel:   row.NameLabel,
			StatusLabel: row.StatusLabel,
			StatusClass: row.StatusClass,
			Reported:    Reported(row, now),
		})
	}

	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render dashboard page: %w", err)
	}
	return nil
}

// Reported formats the row's report time relative to now, or "" when the
// worker has not reported one.
func Reported(row state.WorkerRow, now time.Time) string {
	if row.ReportedAt == nil {
		return ""
	}
	return humanize.RelTime(*row.ReportedAt, now, "ago", "from now")
}
