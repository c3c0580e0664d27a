// Package importer parses CSV files of past transactions so existing
// history can be brought into the tracker in one go.
//
// The expected columns are date, type, category, amount and description.
// The header row is located by matching column names, so banners or
// blank lines above it are tolerated, as are extra columns.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "centavo/internal/encoding"
	"centavo/internal/money"
	"centavo/internal/transaction"
)

const (
	colDate     = "date"
	colType     = "type"
	colCategory = "category"
	colAmount   = "amount"
	colDesc     = "description"
)

// dateLayout matches the app's display format (dd-MM-yyyy).
const dateLayout = "02-01-2006"

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse reads the CSV after normalizing its encoding to UTF-8. Rows that
// fail to parse (footer lines, bad amounts, unknown types) are skipped
// rather than failing the whole file.
func (p *Parser) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx, ok := findHeader(rows)
	if !ok {
		return nil, fmt.Errorf("no header row found: expected at least %q and %q columns", colDate, colAmount)
	}

	var out []transaction.CreateParams

	for _, row := range rows[headerIdx+1:] {
		params, ok := parseRow(cols, row)
		if !ok {
			continue
		}

		out = append(out, params)
	}

	return out, nil
}

// colIndex maps lowercased column names to their position in the row.
type colIndex map[string]int

// findHeader scans for the first row containing at least the date and
// amount columns (case-insensitive).
func findHeader(rows [][]string) (colIndex, int, bool) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		_, hasDate := cols[colDate]
		_, hasAmount := cols[colAmount]

		if hasDate && hasAmount {
			return cols, rowIdx, true
		}
	}

	return nil, 0, false
}

func parseRow(cols colIndex, row []string) (transaction.CreateParams, bool) {
	date, err := time.Parse(dateLayout, cellValue(row, cols, colDate))
	if err != nil {
		return transaction.CreateParams{}, false
	}

	cents, err := money.ParseAmount(cellValue(row, cols, colAmount))
	if err != nil {
		return transaction.CreateParams{}, false
	}

	var txType transaction.Type

	switch strings.ToLower(cellValue(row, cols, colType)) {
	case string(transaction.TypeIncome):
		txType = transaction.TypeIncome
	case string(transaction.TypeExpense):
		txType = transaction.TypeExpense
	default:
		return transaction.CreateParams{}, false
	}

	return transaction.CreateParams{
		Amount:      cents,
		Category:    transaction.ParseCategory(cellValue(row, cols, colCategory)),
		Type:        txType,
		Description: cellValue(row, cols, colDesc),
		Date:        date,
	}, true
}

func cellValue(row []string, cols colIndex, name string) string {
	idx, ok := cols[name]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
