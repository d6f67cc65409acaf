package lineitem

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"woolabels/internal/pkg/errs"
)

// InputData is the validated, file-ordered sequence of line-item rows
// produced by one parse. The zero value is an empty, valid input.
type InputData struct {
	rows []Row
}

// NewInputData wraps already-validated rows, keeping their order.
func NewInputData(rows []Row) InputData {
	return InputData{rows: rows}
}

// Rows returns the rows in file order.
func (d InputData) Rows() []Row {
	return d.rows
}

// Len returns the number of line items.
func (d InputData) Len() int {
	return len(d.rows)
}

// ParseInput reads a whole order export. The first line is the header and is
// skipped without inspection; an empty input or a header-only input parses
// into zero rows. Quoted cells with embedded commas are handled by the CSV
// layer. The parse is all-or-nothing: the first malformed row aborts it with
// a *errs.RowParseError carrying the 1-based line number.
func ParseInput(data string) (InputData, error) {
	reader := csv.NewReader(strings.NewReader(data))
	// Row width is validated in NewRow so short rows surface as typed
	// errors instead of csv.ErrFieldCount.
	reader.FieldsPerRecord = -1

	var rows []Row
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return InputData{}, errs.NewRowParseError(line, record, err)
		}
		if line == 1 {
			continue
		}

		row, rowErr := NewRow(record)
		if rowErr != nil {
			return InputData{}, errs.NewRowParseError(line, record, rowErr)
		}
		rows = append(rows, row)
	}

	return NewInputData(rows), nil
}
