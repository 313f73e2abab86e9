// Package roster reads uploaded staff rosters into raw row field-lists.
// Interpretation of the fields belongs to the import service; this package
// only gets tabular data off disk formats.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fsa-drive/admin-service/internal/models"
)

// Read parses an uploaded roster into ordered rows of raw fields, picking
// the format from the file extension (.csv or .xlsx). Malformed input
// fails with a models.ErrValidation-wrapped parse error.
func Read(filename string, r io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(r)
	case ".xlsx":
		return readXLSX(r)
	default:
		return nil, fmt.Errorf("%w: unsupported roster format %q", models.ErrValidation, filepath.Ext(filename))
	}
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	// Row width is checked later, row by row; a short row is discarded,
	// not a parse failure.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: malformed csv: %v", models.ErrValidation, err)
	}
	return rows, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed xlsx: %v", models.ErrValidation, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", models.ErrValidation)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %s: %v", models.ErrValidation, sheets[0], err)
	}
	return rows, nil
}
