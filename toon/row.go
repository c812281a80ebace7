package toon

import (
	"strings"
)

// ============================================================
// Row Codec
// ============================================================
//
// Rows are comma-delimited cells, each line ending with a period:
//
//   1,Alice,NYC.
//   2,Bob,LA.
//
// The last row of a block ends with a period and no newline.

const (
	// Delimiter separates cells within a row.
	Delimiter = ','
	// Terminator ends every row.
	Terminator = '.'
)

// EncodeRow joins the cell text of values with the delimiter.
func EncodeRow(values []*Value) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(Delimiter)
		}
		sb.WriteString(CellText(v))
	}
	return sb.String()
}

// EncodeRows terminates each line and joins them with newlines.
func EncodeRows(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
		sb.WriteByte(Terminator)
	}
	return sb.String()
}

// DecodeRow splits one row line into trimmed cell texts.
// A single trailing terminator is removed first.
func DecodeRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimSuffix(line, string(Terminator))
	cells := strings.Split(line, string(Delimiter))
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// DecodeRows splits block body text into rows, skipping blank lines.
func DecodeRows(text string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, DecodeRow(line))
	}
	return rows
}

// recordCells fetches the cells for keys from record. Scalar blocks
// resolve keys as paths; child blocks use direct field lookup.
func recordCells(record *Value, keys []string, paths bool) []*Value {
	cells := make([]*Value, len(keys))
	for i, key := range keys {
		if paths {
			cells[i] = GetPath(record, key)
		} else {
			cells[i] = record.Get(key)
		}
	}
	return cells
}
