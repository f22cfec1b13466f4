// Package report renders a computed date range as a downloadable
// document.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const dateLayout = "2006-01-02"

// Summary is a fully resolved range: both boundaries, the day count
// between them, and the convention the count was taken under.
type Summary struct {
	Start        time.Time
	End          time.Time
	IncludeStart bool
	Days         int
}

func (s Summary) convention() string {
	if s.IncludeStart {
		return "start date counted"
	}
	return "start date not counted"
}

func WriteCSV(w io.Writer, s Summary) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"start", "end", "include_start", "days"}); err != nil {
		return err
	}
	record := []string{
		s.Start.Format(dateLayout),
		s.End.Format(dateLayout),
		strconv.FormatBool(s.IncludeStart),
		strconv.Itoa(s.Days),
	}
	if err := writer.Write(record); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func WritePDF(w io.Writer, s Summary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Date Range Summary")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Start: %s", s.Start.Format(dateLayout)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("End: %s", s.End.Format(dateLayout)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Days: %d (%s)", s.Days, s.convention()))
	return pdf.Output(w)
}
