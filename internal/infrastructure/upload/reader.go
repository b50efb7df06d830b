// Package upload decodes uploaded CSV and Excel files into datasets. The
// decoder sniffs each column as a whole: a column is numeric only when every
// non-empty value in it parses as a number, so a lone stray string demotes
// the column to text.
package upload

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/insightdash/backend/internal/domain/dataset"
)

// Reader decodes uploaded files into dataset tables within configured
// bounds.
type Reader struct {
	maxRows    int
	maxColumns int
}

// NewReader creates a Reader. Non-positive limits disable the corresponding
// bound.
func NewReader(maxRows, maxColumns int) *Reader {
	return &Reader{maxRows: maxRows, maxColumns: maxColumns}
}

// Read decodes an uploaded file, dispatching on the filename extension.
func (r *Reader) Read(filename string, src io.Reader) (*dataset.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return r.ReadCSV(src)
	case ".xlsx", ".xlsm":
		return r.ReadExcel(src)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// ReadCSV decodes a UTF-8 CSV file. A leading BOM is stripped, quotes are
// handled lazily, and rows shorter or longer than the header are tolerated.
func (r *Reader) ReadCSV(src io.Reader) (*dataset.Table, error) {
	buf := bufio.NewReader(src)

	// UTF-8 BOM: 0xEF, 0xBB, 0xBF
	head, err := buf.Peek(3)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(head) >= 3 && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		_, _ = buf.Discard(3)
	}

	if err := validateUTF8(buf); err != nil {
		return nil, err
	}

	cr := csv.NewReader(buf)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}
	if err := r.checkColumns(header); err != nil {
		return nil, err
	}

	var records [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading row %d: %w", len(records)+2, err)
		}
		if rowIsEmpty(record) {
			continue
		}
		records = append(records, record)
		if r.maxRows > 0 && len(records) > r.maxRows {
			return nil, ErrTooManyRows
		}
	}

	return buildTable(header, records)
}

// ReadExcel decodes the first sheet of an xlsx/xlsm workbook.
func (r *Reader) ReadExcel(src io.Reader) (*dataset.Table, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrMissingHeader
	}

	header := rows[0]
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}
	if err := r.checkColumns(header); err != nil {
		return nil, err
	}

	var records [][]string
	for _, row := range rows[1:] {
		if rowIsEmpty(row) {
			continue
		}
		records = append(records, row)
		if r.maxRows > 0 && len(records) > r.maxRows {
			return nil, ErrTooManyRows
		}
	}

	return buildTable(header, records)
}

func (r *Reader) checkColumns(header []string) error {
	if len(header) == 0 {
		return ErrMissingHeader
	}
	if r.maxColumns > 0 && len(header) > r.maxColumns {
		return ErrTooManyColumns
	}
	return nil
}

// validateUTF8 checks that the content is valid UTF-8
func validateUTF8(r *bufio.Reader) error {
	const checkSize = 4096
	content, err := r.Peek(checkSize)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file for encoding validation: %w", err)
	}
	if len(content) == 0 {
		return ErrEmptyFile
	}
	// A multi-byte rune may be split at the peek boundary; back off to the
	// last rune start before validating.
	if len(content) == checkSize {
		for i := 0; i < utf8.UTFMax && len(content) > 0; i++ {
			if r, _ := utf8.DecodeLastRune(content); r != utf8.RuneError {
				break
			}
			content = content[:len(content)-1]
		}
	}
	if !utf8.Valid(content) {
		return ErrInvalidEncoding
	}
	return nil
}

func rowIsEmpty(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// buildTable sniffs column kinds and converts the raw records into a table.
// In a numeric column, empty values become missing cells; everywhere else
// values stay text.
func buildTable(header []string, records [][]string) (*dataset.Table, error) {
	if len(records) == 0 {
		return nil, ErrNoDataRows
	}

	numeric := make([]bool, len(header))
	for col := range header {
		numeric[col] = columnIsNumeric(records, col)
	}

	rows := make([][]dataset.Cell, len(records))
	for i, record := range records {
		cells := make([]dataset.Cell, len(header))
		for col := range header {
			var value string
			if col < len(record) {
				value = strings.TrimSpace(record[col])
			}
			switch {
			case numeric[col] && value == "":
				cells[col] = dataset.MissingCell()
			case numeric[col]:
				f, _ := strconv.ParseFloat(value, 64)
				cells[col] = dataset.NumberCell(f)
			default:
				cells[col] = dataset.TextCell(value)
			}
		}
		rows[i] = cells
	}

	return dataset.New(header, rows)
}

// columnIsNumeric reports whether every non-empty value in the column parses
// as a number. An all-empty column is not numeric.
func columnIsNumeric(records [][]string, col int) bool {
	nonEmpty := 0
	for _, record := range records {
		if col >= len(record) {
			continue
		}
		value := strings.TrimSpace(record[col])
		if value == "" {
			continue
		}
		nonEmpty++
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return false
		}
	}
	return nonEmpty > 0
}
