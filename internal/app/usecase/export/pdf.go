package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFontSize  = 5.5
	pdfRowHeight = 14.0
)

func writePDF(w io.Writer, rows []Row) error {
	pdf := fpdf.New(fpdf.OrientationLandscape, fpdf.UnitPoint, fpdf.PageSizeLetter, "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	columnWidth := (pageWidth - left - right) / float64(len(columns))

	pdf.SetFont("Helvetica", "B", pdfFontSize)
	pdf.SetFillColor(200, 200, 200)
	for _, name := range columns {
		pdf.CellFormat(columnWidth, pdfRowHeight, name, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", pdfFontSize)
	pdf.SetFillColor(255, 255, 255)
	for _, row := range rows {
		for _, value := range row.values() {
			pdf.CellFormat(columnWidth, pdfRowHeight, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("error while writing pdf: %w", err)
	}

	return nil
}
