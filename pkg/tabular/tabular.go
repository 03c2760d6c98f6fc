package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Table is a finished export projection: a header row plus shaped data rows,
// independent of the serialization picked by the transport layer.
type Table struct {
	// Name is the suggested download filename without extension.
	Name   string
	Header []string
	Rows   [][]any
}

// WriteCSV streams the table as CSV.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	record := make([]string, len(t.Header))
	for _, row := range t.Rows {
		for i := range record {
			record[i] = ""
		}
		for i, cell := range row {
			record[i] = formatCell(cell)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// File is a rendered export on disk. Cleanup removes it after the response
// has been served; failures are best effort.
type File struct {
	Path string
	Name string
}

func (f *File) Cleanup() error {
	return os.Remove(f.Path)
}

// WriteXLSX renders the table into a single-sheet workbook under the OS
// temp dir. The file gets a random name; Name carries the download name.
func (t *Table) WriteXLSX() (*File, error) {
	book := excelize.NewFile()
	defer book.Close()

	sheet := book.GetSheetName(0)

	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := book.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := book.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	path := filepath.Join(os.TempDir(), uuid.NewString()+".xlsx")
	if err := book.SaveAs(path); err != nil {
		return nil, err
	}

	return &File{Path: path, Name: t.Name + ".xlsx"}, nil
}

func formatCell(cell any) string {
	switch v := cell.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
