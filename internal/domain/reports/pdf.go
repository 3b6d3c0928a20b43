package reports

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF renders a report summary as a one-page PDF for download.
func RenderPDF(summary ReportSummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "HR Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", summary.GeneratedAt.Format("2006-01-02 15:04")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total employees: %d", summary.TotalEmployees))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Employee status")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, status := range []string{"Active", "On Leave", "Inactive"} {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d", status, summary.StatusBreakdown[status]))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Departments")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, dept := range summary.Departments {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d employees (%d active)", dept.Name, dept.Count, dept.Active))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Leave requests")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	totals := summary.LeaveTotals
	pdf.Cell(0, 7, fmt.Sprintf("Total %d, approved %d, pending %d, rejected %d",
		totals.Total, totals.Approved, totals.Pending, totals.Rejected))
	pdf.Ln(8)
	for _, bucket := range summary.LeaveTrend {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d", bucket.Label, bucket.Count))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Recent hires (last 90 days): %d", len(summary.RecentHires)))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, emp := range summary.RecentHires {
		pdf.Cell(0, 7, fmt.Sprintf("%s - %s, %s (started %s)",
			emp.FullName(), emp.Role, emp.Department, emp.StartDate.Format("2006-01-02")))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
