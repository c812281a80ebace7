package toon

import (
	"bytes"
	"strconv"
	"strings"
)

// ============================================================
// Table Block Encoder
// ============================================================
//
// A block is a header line followed by its rows:
//
//   clientes[2]{id,name,address.city}:
//   1,Alice,NYC.
//   2,Bob,LA.
//
// Child blocks carry a relation to one parent record:
//
//   orders(cliente_id:1)[1]{id,item}:
//   10,Book.

// Relation links a child block to the root record whose id is ParentID.
// Key is informational; matching uses ParentID alone.
type Relation struct {
	Key      string
	ParentID string
}

// String returns the relation as written in a header: (key:parent).
func (r Relation) String() string {
	return "(" + r.Key + ":" + r.ParentID + ")"
}

// Block is one named table of a document.
type Block struct {
	Name     string
	Relation *Relation // nil for a root block
	Count    int       // declared row count; advisory
	Keys     []string
	Rows     [][]string

	// Set by the parser.
	RawRelation string // relation text between the parentheses, as written
	Line        int    // 1-based line of the header
}

// IsRoot reports whether the block has no relation text at all.
func (b *Block) IsRoot() bool {
	return b.Relation == nil && b.RawRelation == ""
}

// EncodeBlock builds a block from records. When paths is true, keys are
// dot paths resolved with GetPath; otherwise they are plain field names.
func EncodeBlock(name string, rel *Relation, keys []string, records []*Value, paths bool) *Block {
	b := &Block{
		Name:     name,
		Relation: rel,
		Count:    len(records),
		Keys:     keys,
		Rows:     make([][]string, 0, len(records)),
	}
	for _, rec := range records {
		cells := recordCells(rec, keys, paths)
		row := make([]string, len(cells))
		for i, c := range cells {
			row[i] = CellText(c)
		}
		b.Rows = append(b.Rows, row)
	}
	return b
}

// EmitBlock writes the full text of b: header, newline, rows. A block
// without rows is its header alone.
func EmitBlock(out *bytes.Buffer, b *Block) {
	emitHeader(out, b)
	if len(b.Rows) == 0 {
		return
	}
	out.WriteByte('\n')

	lines := make([]string, len(b.Rows))
	for i, row := range b.Rows {
		lines[i] = strings.Join(row, string(Delimiter))
	}
	out.WriteString(EncodeRows(lines))
}

// emitHeader writes: name(rel)[count]{k1,k2}:
func emitHeader(out *bytes.Buffer, b *Block) {
	out.WriteString(b.Name)
	if b.Relation != nil {
		out.WriteString(b.Relation.String())
	}
	out.WriteByte('[')
	out.WriteString(strconv.Itoa(b.Count))
	out.WriteString("]{")
	out.WriteString(strings.Join(b.Keys, string(Delimiter)))
	out.WriteString("}:")
}

// String returns the block text.
func (b *Block) String() string {
	var buf bytes.Buffer
	EmitBlock(&buf, b)
	return buf.String()
}

// ValidName reports whether name can be written as a block name.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isNameByte(name[i]) {
			return false
		}
	}
	return true
}

func isNameByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
