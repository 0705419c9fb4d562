package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

func writeCSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("error while writing csv header: %w", err)
	}

	for _, row := range rows {
		if err := writer.Write(row.values()); err != nil {
			return fmt.Errorf("error while writing csv row: %w", err)
		}
	}

	writer.Flush()

	return writer.Error()
}
