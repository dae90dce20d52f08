package visits

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	SheetName      = "Blog Visits"
	ExportFilename = "blogvisits.xlsx"

	// like "2/10/2024, 3:04:05 PM"
	exportDateLayout = "1/2/2006, 3:04:05 PM"
)

var exportColumns = []struct {
	header string
	col    string
	width  float64
}{
	{header: "Username", col: "A", width: 20},
	{header: "Email", col: "B", width: 30},
	{header: "Designation", col: "C", width: 15},
	{header: "Date", col: "D", width: 25},
}

// Exporter renders visits as an xlsx workbook, one row per visit,
// with dates formatted in the exporter's location.
type Exporter struct {
	location *time.Location
}

func NewExporter(location *time.Location) *Exporter {
	if location == nil {
		location = time.Local
	}
	return &Exporter{
		location: location,
	}
}

func (e *Exporter) Write(w io.Writer, visits []*Visit) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", closeErr)
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, 0, len(exportColumns))
	for _, c := range exportColumns {
		header = append(header, c.header)
		if err := f.SetColWidth(SheetName, c.col, c.col, c.width); err != nil {
			return fmt.Errorf("set column %s width: %w", c.col, err)
		}
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, v := range visits {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			v.Username,
			v.Email,
			v.Designation,
			v.CreatedAt.In(e.location).Format(exportDateLayout),
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
