package export

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
)

// WriteText prints the report as aligned columns, one block per day.
func WriteText(w io.Writer, rep report.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, day := range rep.Days {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "Attendance Report - %s\n", day.Date)
		fmt.Fprintln(tw, "Employee\tStatus\tReason")
		for _, row := range day.Rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Employee, row.Status, row.Reason)
		}
		fmt.Fprintf(tw, "Summary: %s\n", day.Summary.Label())
	}
	return tw.Flush()
}

// Text is WriteText into an artifact.
func Text(rep report.Report) (report.Artifact, error) {
	var buf bytes.Buffer
	if err := WriteText(&buf, rep); err != nil {
		return report.Artifact{}, fmt.Errorf("failed to render text: %w", err)
	}
	return report.Artifact{
		FileName:    rep.FileName() + ".txt",
		ContentType: ContentTypeText,
		Body:        buf.Bytes(),
	}, nil
}
