package order

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"ordergen/constants"
)

// WriteCSV writes the header followed by one record per row
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{constants.HeaderOrder, constants.HeaderTaskID}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, 2)
	for _, row := range rows {
		record[0] = strconv.Itoa(row.Order)
		record[1] = strconv.Itoa(row.TaskID)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row.Order, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
