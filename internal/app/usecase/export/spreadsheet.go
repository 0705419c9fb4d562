package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const ordersSheet = `Orders`

func writeSpreadsheet(w io.Writer, rows []Row) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", ordersSheet); err != nil {
		return fmt.Errorf("error while naming orders sheet: %w", err)
	}

	if err := writeSheetRow(file, 1, columns); err != nil {
		return err
	}

	for i, row := range rows {
		if err := writeSheetRow(file, i+2, row.values()); err != nil {
			return err
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("error while writing spreadsheet: %w", err)
	}

	return nil
}

func writeSheetRow(file *excelize.File, rowNumber int, values []string) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNumber)
		if err != nil {
			return fmt.Errorf("error while resolving cell name: %w", err)
		}

		if err := file.SetCellValue(ordersSheet, cell, value); err != nil {
			return fmt.Errorf("error while writing cell %s: %w", cell, err)
		}
	}

	return nil
}
