package export

import (
	"errors"
	"fmt"
	"io"
)

type Format string

const (
	FormatSpreadsheet Format = `spreadsheet`
	FormatCSV         Format = `csv`
	FormatPDF         Format = `pdf`
)

var ErrFormatUnknown = errors.New("export format unknown")

func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatSpreadsheet, FormatCSV, FormatPDF:
		return Format(value), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrFormatUnknown, value)
	}
}

// FileName returns the artifact name the console has always used for the
// orders report in the given format.
func (f Format) FileName() string {
	switch f {
	case FormatSpreadsheet:
		return "AllOrders.xlsx"
	case FormatPDF:
		return "AllOrders.pdf"
	default:
		return "AllOrders.csv"
	}
}

// Write renders the rows into the requested format. Every format receives the
// identical column set and one line per row.
func Write(w io.Writer, format Format, rows []Row) error {
	switch format {
	case FormatSpreadsheet:
		return writeSpreadsheet(w, rows)
	case FormatCSV:
		return writeCSV(w, rows)
	case FormatPDF:
		return writePDF(w, rows)
	default:
		return fmt.Errorf("%w: %s", ErrFormatUnknown, format)
	}
}
