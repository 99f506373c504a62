package export

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"github.com/gocarina/gocsv"
)

// CSV writes the flattened report rows with a Date,Employee,Status,Reason header.
func CSV(rep report.Report) (report.Artifact, error) {
	rows := rep.Rows()
	if rows == nil {
		rows = []report.Row{}
	}

	body, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return report.Artifact{}, fmt.Errorf("failed to encode csv: %w", err)
	}

	return report.Artifact{
		FileName:    rep.FileName() + ".csv",
		ContentType: ContentTypeCSV,
		Body:        body,
	}, nil
}
