package usecase

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shandysiswandi/csvboard/internal/dataset/entity"
)

// ErrNoColumns is returned for files without a header row.
var ErrNoColumns = errors.New("no columns to parse from file")

// missingTokens are the field values read as absent.
//
//nolint:gochecknoglobals // read-only lookup table
var missingTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// parseCSV tokenizes text, drops every row holding an absent value and types
// the remaining values per column.
func parseCSV(filename, text string) (entity.Dataset, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return entity.Dataset{}, ErrNoColumns
	}
	if err != nil {
		return entity.Dataset{}, fmt.Errorf("read header: %w", err)
	}

	columns := normalizeHeader(header)

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return entity.Dataset{}, fmt.Errorf("read row: %w", err)
		}

		if len(record) > len(columns) {
			line, _ := reader.FieldPos(0)
			return entity.Dataset{}, fmt.Errorf("expected %d fields in line %d, saw %d", len(columns), line, len(record))
		}

		if hasMissing(record, len(columns)) {
			continue
		}
		rows = append(rows, record)
	}

	labels := make([]entity.TypeLabel, len(columns))
	for col := range columns {
		labels[col] = inferLabel(rows, col)
	}

	typed := make([][]any, 0, len(rows))
	for _, row := range rows {
		values := make([]any, len(columns))
		for col, raw := range row {
			values[col] = convertValue(raw, labels[col])
		}
		typed = append(typed, values)
	}

	return entity.NewDataset(filename, entity.ColumnTypes{Columns: columns, Labels: labels}, typed), nil
}

// normalizeHeader names blank columns "Unnamed: <i>" and suffixes repeated
// names with ".1", ".2", ... so every column name is unique.
func normalizeHeader(header []string) []string {
	columns := make([]string, len(header))
	used := make(map[string]bool, len(header))
	suffix := make(map[string]int)

	for i, raw := range header {
		name := raw
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		if used[name] {
			base := name
			n := suffix[base]
			for {
				n++
				candidate := fmt.Sprintf("%s.%d", base, n)
				if !used[candidate] {
					name = candidate
					break
				}
			}
			suffix[base] = n
		}

		used[name] = true
		columns[i] = name
	}

	return columns
}

func hasMissing(record []string, width int) bool {
	if len(record) < width {
		return true
	}
	for _, field := range record {
		if _, ok := missingTokens[field]; ok {
			return true
		}
	}
	return false
}

func inferLabel(rows [][]string, col int) entity.TypeLabel {
	if len(rows) == 0 {
		return entity.TypeObject
	}

	allInt, allNumber, allBool := true, true, true
	for _, row := range rows {
		value := strings.TrimSpace(row[col])

		if allInt {
			if _, ok := parseInt(value); !ok {
				if isWideInt(value) {
					return entity.TypeObject
				}
				allInt = false
			}
		}
		if allNumber && !allInt {
			if _, ok := parseFloat(value); !ok {
				allNumber = false
			}
		}
		if allBool {
			if _, ok := parseBool(value); !ok {
				allBool = false
			}
		}

		if !allNumber && !allBool {
			return entity.TypeObject
		}
	}

	switch {
	case allInt:
		return entity.TypeInt64
	case allNumber:
		return entity.TypeFloat64
	case allBool:
		return entity.TypeBool
	default:
		return entity.TypeObject
	}
}

func convertValue(raw string, label entity.TypeLabel) any {
	value := strings.TrimSpace(raw)

	switch label {
	case entity.TypeInt64:
		if v, ok := parseInt(value); ok {
			return v
		}
	case entity.TypeFloat64:
		if v, ok := parseFloat(value); ok {
			return v
		}
	case entity.TypeBool:
		if v, ok := parseBool(value); ok {
			return v
		}
	}

	return raw
}

func parseInt(value string) (int64, bool) {
	v, err := strconv.ParseInt(value, 10, 64)
	return v, err == nil
}

// isWideInt reports whether value is an integer outside the int64 range.
// Such columns stay text rather than lose digits as floats.
func isWideInt(value string) bool {
	_, err := strconv.ParseInt(value, 10, 64)
	return errors.Is(err, strconv.ErrRange)
}

// parseFloat accepts finite decimal numbers only; JSON has no encoding for
// infinities and hex floats are not CSV numbers.
func parseFloat(value string) (float64, bool) {
	if strings.ContainsAny(value, "xX_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func parseBool(value string) (bool, bool) {
	switch value {
	case "true", "True", "TRUE":
		return true, true
	case "false", "False", "FALSE":
		return false, true
	default:
		return false, false
	}
}
