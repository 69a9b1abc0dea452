// Package importer parses uploaded transaction files.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/financecoach/backend/internal/finance"
	"github.com/shopspring/decimal"
)

// Column names of the required columns. The header is matched case insensitively.
const (
	ColumnDate        = "Date"
	ColumnDescription = "Description"
	ColumnAmount      = "Amount"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// columns holds the index of each required column in a record.
type columns struct {
	date        int
	description int
	amount      int
}

// ParseCSV parses a CSV file with a header row containing at least the
// Date, Description and Amount columns. Other columns are ignored.
//
// Every parsed transaction is categorized. The first invalid line aborts
// parsing and no transactions are returned.
func ParseCSV(f io.Reader) ([]finance.Transaction, error) {
	reader := csv.NewReader(f)

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: the file is empty, a header with the columns %s, %s and %s is required", finance.ErrMalformedInput, ColumnDate, ColumnDescription, ColumnAmount)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not read the header: %w", finance.ErrMalformedInput, err)
	}

	cols, err := findColumns(header)
	if err != nil {
		return nil, err
	}

	transactions := make([]finance.Transaction, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: could not read line in CSV: %w", finance.ErrMalformedInput, err)
		}

		t, err := parseRecord(record, cols)
		if err != nil {
			return nil, csvReadError(reader, err)
		}

		transactions = append(transactions, t)
	}

	return transactions, nil
}

// findColumns locates the required columns in the header.
func findColumns(header []string) (columns, error) {
	cols := columns{date: -1, description: -1, amount: -1}

	for i, name := range header {
		// Spreadsheet exports sometimes prefix the first column with a byte order mark
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))

		switch {
		case strings.EqualFold(name, ColumnDate):
			cols.date = i
		case strings.EqualFold(name, ColumnDescription):
			cols.description = i
		case strings.EqualFold(name, ColumnAmount):
			cols.amount = i
		}
	}

	var missing []string
	if cols.date < 0 {
		missing = append(missing, ColumnDate)
	}
	if cols.description < 0 {
		missing = append(missing, ColumnDescription)
	}
	if cols.amount < 0 {
		missing = append(missing, ColumnAmount)
	}

	if len(missing) > 0 {
		return columns{}, fmt.Errorf("%w: required columns are missing: %s", finance.ErrMalformedInput, strings.Join(missing, ", "))
	}

	return cols, nil
}

func parseRecord(record []string, cols columns) (finance.Transaction, error) {
	date, err := parseDate(record[cols.date])
	if err != nil {
		return finance.Transaction{}, err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(record[cols.amount]))
	if err != nil {
		return finance.Transaction{}, fmt.Errorf("amount %q could not be parsed to a decimal", record[cols.amount])
	}

	if amount.IsNegative() {
		return finance.Transaction{}, fmt.Errorf("the amount must not be negative, got %s", amount)
	}

	return finance.NewTransaction(date, strings.TrimSpace(record[cols.description]), amount)
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("could not parse date %q, use the YYYY-MM-DD format", s)
}

// csvReadError returns the error with the line of the input it occurred in in the message.
func csvReadError(r *csv.Reader, err error) error {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(0)

	return fmt.Errorf("%w: error in line %d of the CSV: %w", finance.ErrMalformedInput, line, err)
}
