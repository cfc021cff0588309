// Package reports renders computed working-hour trees into documents.
package reports

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"timetally/internal/domain/workhours"
)

// WritePDF renders the tree as a one-document summary: a line per reporting
// period, subtotals per month and year, and the grand total.
func WritePDF(w io.Writer, tree *workhours.Tree, start, end string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Working hours report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Range: %s to %s", start, end))
	pdf.Ln(10)

	for _, yearKey := range tree.YearKeys() {
		year := tree.Years[yearKey]
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, fmt.Sprintf("%s - %d hours", yearKey, year.Total))
		pdf.Ln(8)

		for _, monthKey := range year.MonthKeys() {
			month := year.Months[monthKey]
			pdf.SetFont("Helvetica", "B", 11)
			pdf.Cell(8, 7, "")
			pdf.Cell(0, 7, fmt.Sprintf("%s - %d hours", monthKey, month.Total))
			pdf.Ln(7)

			pdf.SetFont("Helvetica", "", 11)
			for _, label := range month.PeriodKeys() {
				pdf.Cell(16, 6, "")
				pdf.Cell(0, 6, fmt.Sprintf("%s: %d hours", label, month.Periods[label]))
				pdf.Ln(6)
			}
		}
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 9, fmt.Sprintf("Total: %d hours", tree.Total))

	return pdf.Output(w)
}
