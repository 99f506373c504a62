package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
)

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Attendance - {{.Anchor}}</title>
<style>
body { font-family: Arial, sans-serif; padding: 20px; }
table { width: 100%; border-collapse: collapse; margin-top: 20px; }
th, td { border: 1px solid #ccc; padding: 8px; text-align: center; }
</style>
</head>
<body>
{{range .Days}}
<h2>Attendance Report - {{.Date}}</h2>
<table>
<thead><tr><th>Employee</th><th>Status</th><th>Reason</th></tr></thead>
<tbody>
{{range .Rows}}<tr><td>{{.Employee}}</td><td>{{.Status}}</td><td>{{.Reason}}</td></tr>
{{end}}</tbody>
</table>
<h3>Summary</h3>
<p>{{.Summary.Label}}</p>
{{end}}
</body>
</html>
`))

// HTML renders the printable page: one table plus summary line per day.
func HTML(rep report.Report) (report.Artifact, error) {
	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, rep); err != nil {
		return report.Artifact{}, fmt.Errorf("failed to render print view: %w", err)
	}

	return report.Artifact{
		FileName:    rep.FileName() + ".html",
		ContentType: ContentTypeHTML,
		Body:        buf.Bytes(),
	}, nil
}
