// Package parsing provides the quoted-field CSV splitter for data-export record groups.
//
// The exports use standard CSV quoting: fields may be wrapped in double
// quotes, quoted fields may span multiple lines, and a doubled quote inside a
// quoted field is a literal quote. encoding/csv is deliberately not used here;
// the exports expect each cell trimmed of surrounding whitespace and row
// errors reported against the source line, which this splitter does directly.
package parsing

import (
	"fmt"
	"strings"
)

// ParseCSV parses CSV content into one map per data row, keyed by the header
// column names. group names the record group for error messages.
func ParseCSV(content, group string) ([]map[string]string, error) {
	rows, err := splitRows(content, group)
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, &CSVError{
			Group:   group,
			Message: "file is empty or has no data rows",
		}
	}

	headers, err := splitFields(rows[0])
	if err != nil {
		return nil, &CSVError{Group: group, Message: "malformed header row", Cause: err}
	}
	if len(headers) == 0 {
		return nil, &CSVError{Group: group, Message: "no header columns"}
	}

	records := make([]map[string]string, 0, len(rows)-1)
	for i, row := range rows[1:] {
		values, err := splitFields(row)
		if err != nil {
			return nil, &RowError{Group: group, Row: i + 2, Message: err.Error()}
		}
		if len(values) != len(headers) {
			return nil, &RowError{
				Group: group,
				Row:   i + 2,
				Message: fmt.Sprintf("has %d fields but header has %d (%s)",
					len(values), len(headers), strings.Join(headers, ", ")),
			}
		}

		record := make(map[string]string, len(headers))
		for j, header := range headers {
			record[header] = values[j]
		}
		records = append(records, record)
	}

	return records, nil
}

// splitRows splits raw content into logical rows, keeping newlines that occur
// inside quoted fields. Blank rows are dropped.
func splitRows(content, group string) ([]string, error) {
	var rows []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(content); i++ {
		ch := content[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(content) && content[i+1] == '"' {
				current.WriteString(`""`)
				i++
			} else {
				inQuotes = !inQuotes
				current.WriteByte(ch)
			}
		case !inQuotes && (ch == '\n' || (ch == '\r' && i+1 < len(content) && content[i+1] == '\n')):
			if strings.TrimSpace(current.String()) != "" {
				rows = append(rows, current.String())
			}
			current.Reset()
			if ch == '\r' {
				i++
			}
		default:
			current.WriteByte(ch)
		}
	}

	if inQuotes {
		return nil, &CSVError{Group: group, Message: "unterminated quoted field"}
	}

	if strings.TrimSpace(current.String()) != "" {
		rows = append(rows, current.String())
	}

	return rows, nil
}

// splitFields splits one logical row into trimmed cell values.
func splitFields(row string) ([]string, error) {
	var values []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(row); i++ {
		ch := row[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(row) && row[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			values = append(values, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}

	if inQuotes {
		return nil, fmt.Errorf("unterminated quoted field")
	}

	values = append(values, strings.TrimSpace(current.String()))
	return values, nil
}
