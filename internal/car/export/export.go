// Package export serializes the catalogue into downloadable documents.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tair/electric-cars/internal/car/domain"
)

const (
	CSVFilename   = "electric_cars.csv"
	CSVMediaType  = "text/csv"
	XLSXFilename  = "electric_cars.xlsx"
	XLSXMediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	SheetName     = "Electric Cars"
	columnWidth   = 15
	headerFillRGB = "667EEA"
)

// Header turns a column key into its sheet title: first letter upper-cased,
// underscores replaced by spaces.
func Header(column string) string {
	if column == "" {
		return ""
	}
	return strings.ToUpper(column[:1]) + strings.ReplaceAll(column[1:], "_", " ")
}

// WriteCSV writes a header row of column keys followed by one row per car.
func WriteCSV(w io.Writer, cars []domain.ElectricCar) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(domain.Columns); err != nil {
		return err
	}

	record := make([]string, len(domain.Columns))
	for _, car := range cars {
		for i, v := range car.Values() {
			record[i] = formatCell(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// WriteXLSX writes a single-sheet workbook with a styled header row.
func WriteXLSX(w io.Writer, cars []domain.ElectricCar) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillRGB}},
	})
	if err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return err
	}
	if err := sw.SetColWidth(1, len(domain.Columns), columnWidth); err != nil {
		return err
	}

	header := make([]interface{}, len(domain.Columns))
	for i, col := range domain.Columns {
		header[i] = excelize.Cell{StyleID: headerStyle, Value: Header(col)}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, car := range cars {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, car.Values()); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}
