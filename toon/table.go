package toon

import (
	"fmt"
	"strings"
)

// ============================================================
// Single Table Codec
// ============================================================
//
// The single-table form is one root block with no child blocks. Every
// field of the first record is a column, lists included; a list cell
// is written as null.

// EncodeTable encodes records as one block named name.
func EncodeTable(records []*Value, name string) (string, error) {
	if !ValidName(name) {
		return "", ErrInvalidName.New(name)
	}
	if len(records) == 0 {
		return (&Block{Name: name}).String(), nil
	}
	for i, r := range records {
		if !r.IsMap() {
			return "", ErrNotRecord.New(i, r.Type())
		}
	}
	keys := flattenAllKeys(records[0])
	return EncodeBlock(name, nil, keys, records, true).String(), nil
}

// DecodeTable decodes text holding exactly one root block.
func DecodeTable(text string) (string, []*Value, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil, ErrMalformedDocument.New("empty input")
	}
	blocks, err := ParseBlocks(text)
	if err != nil {
		return "", nil, err
	}
	if len(blocks) != 1 {
		return "", nil, ErrMalformedDocument.New(fmt.Sprintf("expected one table, found %d", len(blocks)))
	}
	b := blocks[0]
	if !b.IsRoot() {
		return "", nil, ErrMalformedHeader.New(b.Line, "relation not allowed in a single table")
	}

	records := make([]*Value, 0, len(b.Rows))
	for _, row := range b.Rows {
		records = append(records, BuildRecord(b.Keys, row))
	}
	return b.Name, records, nil
}
