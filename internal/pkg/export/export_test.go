package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func monthlyReport() report.Report {
	return report.Report{
		Mode:   report.ModeMonthly,
		Anchor: "2024-05-10",
		Days: []report.Day{
			{
				Date: "2024-05-01",
				Rows: []report.Row{
					{Date: "2024-05-01", Employee: "Alice", Status: "Present", Reason: "-"},
					{Date: "2024-05-01", Employee: "Bob", Status: "Absent", Reason: "sick"},
				},
				Summary: report.DaySummary{Present: 1, Absent: 1},
			},
			{
				Date: "2024-05-02",
				Rows: []report.Row{
					{Date: "2024-05-02", Employee: "Alice", Status: "Training", Reason: "course"},
				},
				Summary: report.DaySummary{Training: 1},
			},
		},
	}
}

func dailyReport() report.Report {
	return report.Report{
		Mode:   report.ModeDaily,
		Anchor: "2024-05-01",
		Days:   monthlyReport().Days[:1],
	}
}

func TestXLSX(t *testing.T) {
	art, err := XLSX(monthlyReport())
	require.NoError(t, err)
	assert.Equal(t, "Attendance_2024-05.xlsx", art.FileName)
	assert.Equal(t, ContentTypeXLSX, art.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(art.Body))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"Date", "Employee", "Status", "Reason"}, rows[0])
	assert.Equal(t, []string{"2024-05-01", "Bob", "Absent", "sick"}, rows[2])
	assert.Equal(t, []string{"2024-05-01", report.SummaryEmployee, "P:1 | A:1 | T:0 | H:0 | Ho:0", "-"}, rows[3])
	assert.Equal(t, []string{"2024-05-02", report.SummaryEmployee, "P:0 | A:0 | T:1 | H:0 | Ho:0", "-"}, rows[5])
}

func TestCSV(t *testing.T) {
	art, err := CSV(monthlyReport())
	require.NoError(t, err)
	assert.Equal(t, "Attendance_2024-05.csv", art.FileName)

	lines := strings.Split(strings.TrimSpace(string(art.Body)), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Date,Employee,Status,Reason", lines[0])

	var rows []report.Row
	require.NoError(t, gocsv.UnmarshalBytes(art.Body, &rows))
	assert.Equal(t, monthlyReport().Rows(), rows)
}

func TestHTML(t *testing.T) {
	art, err := HTML(dailyReport())
	require.NoError(t, err)
	assert.Equal(t, "Attendance_2024-05-01.html", art.FileName)

	body := string(art.Body)
	assert.Contains(t, body, "Attendance Report - 2024-05-01")
	assert.Contains(t, body, "<td>Bob</td><td>Absent</td><td>sick</td>")
	assert.Contains(t, body, "Present: 1 | Absent: 1 | Training: 0 | Half Day: 0 | Holiday: 0")
	assert.NotContains(t, body, report.SummaryEmployee)
}

func TestHTML_EscapesNames(t *testing.T) {
	rep := dailyReport()
	rep.Days = []report.Day{{
		Date: "2024-05-01",
		Rows: []report.Row{{Date: "2024-05-01", Employee: "<b>Eve</b>", Status: "Present", Reason: "-"}},
	}}

	art, err := HTML(rep)
	require.NoError(t, err)
	assert.NotContains(t, string(art.Body), "<b>Eve</b>")
	assert.Contains(t, string(art.Body), "&lt;b&gt;Eve&lt;/b&gt;")
}

func TestPDF(t *testing.T) {
	art, err := PDF(dailyReport())
	require.NoError(t, err)
	assert.Equal(t, "Attendance_2024-05-01.pdf", art.FileName)
	assert.Equal(t, ContentTypePDF, art.ContentType)
	assert.True(t, bytes.HasPrefix(art.Body, []byte("%PDF")))
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, dailyReport()))

	out := buf.String()
	assert.Contains(t, out, "Attendance Report - 2024-05-01")
	assert.Regexp(t, `Bob\s+Absent\s+sick`, out)
	assert.Contains(t, out, "Summary: Present: 1 | Absent: 1")
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render(monthlyReport(), report.Format("docx"))
	assert.ErrorIs(t, err, report.ErrInvalidFormat)
}

func TestRender_Dispatch(t *testing.T) {
	art, err := Render(monthlyReport(), report.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, ContentTypeCSV, art.ContentType)
}
