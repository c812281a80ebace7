package toon

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockReaderBasic(t *testing.T) {
	input := `clientes[2]{id,name,address.city}:
1,Alice,NYC.
2,Bob,LA.

orders(cliente_id:1)[1]{id,item}:
10,Book.`

	br := NewBlockReader(input)

	root, err := br.Next()
	require.NoError(t, err)
	assert.Equal(t, "clientes", root.Name)
	assert.True(t, root.IsRoot())
	assert.Equal(t, 2, root.Count)
	assert.Equal(t, []string{"id", "name", "address.city"}, root.Keys)
	assert.Equal(t, [][]string{{"1", "Alice", "NYC"}, {"2", "Bob", "LA"}}, root.Rows)
	assert.Equal(t, 1, root.Line)

	child, err := br.Next()
	require.NoError(t, err)
	assert.Equal(t, "orders", child.Name)
	require.NotNil(t, child.Relation)
	assert.Equal(t, Relation{Key: "cliente_id", ParentID: "1"}, *child.Relation)
	assert.Equal(t, "(cliente_id:1)", child.RawRelation)
	assert.Equal(t, [][]string{{"10", "Book"}}, child.Rows)
	assert.Equal(t, 5, child.Line)

	_, err = br.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 2, br.BlockNum())
}

func TestBlockReaderEmptyKeyList(t *testing.T) {
	blocks, err := ParseBlocks("r[0]{}:")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "r", blocks[0].Name)
	assert.Equal(t, 0, blocks[0].Count)
	assert.Empty(t, blocks[0].Keys)
	assert.Empty(t, blocks[0].Rows)
}

func TestBlockReaderBlankLineInsideRows(t *testing.T) {
	input := "r[3]{a,b}:\n1,x.\n\n2,y.\n\n\n3,z.\n"
	blocks, err := ParseBlocks(input)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Len(t, blocks[0].Rows, 3)
}

func TestBlockReaderHeaderWithoutBlankLineIsRowData(t *testing.T) {
	input := "r[1]{a}:\n1.\nitems(r_id:1)[1]{x}:\n"
	blocks, err := ParseBlocks(input)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Len(t, blocks[0].Rows, 2)
}

func TestBlockReaderLeadingBlankLinesAndCRLF(t *testing.T) {
	input := "\n\n  \r\nr[1]{a,b}:\r\n1,2.\r\n\r\nc(r_id:1)[1]{x}:\r\ny.\r\n"
	blocks, err := ParseBlocks(input)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, [][]string{{"1", "2"}}, blocks[0].Rows)
	assert.Equal(t, [][]string{{"y"}}, blocks[1].Rows)
}

func TestBlockReaderRowOnHeaderLine(t *testing.T) {
	blocks, err := ParseBlocks("r[2]{a,b}: 1,2.\n3,4.")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, [][]string{{"1", "2"}, {"3", "4"}}, blocks[0].Rows)
}

func TestBlockReaderKeysAreTrimmed(t *testing.T) {
	blocks, err := ParseBlocks("r[1]{ id , name }:\n1,a.")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, blocks[0].Keys)
}

func TestBlockReaderUnparseableRelation(t *testing.T) {
	blocks, err := ParseBlocks("r[1]{id}:\n1.\n\nc(nocolon)[1]{x}:\ny.")
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Nil(t, blocks[1].Relation)
	assert.Equal(t, "(nocolon)", blocks[1].RawRelation)
	assert.False(t, blocks[1].IsRoot())
}

func TestBlockReaderErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		header bool // ErrMalformedHeader, else ErrMalformedDocument
	}{
		{"not a document", "hello world", false},
		{"json", `[{"id":1}]`, false},
		{"bad count", "r[x]{a}:\n1.", true},
		{"empty count", "r[]{a}:\n1.", true},
		{"missing keys", "r[1]:\n1.", true},
		{"unterminated keys", "r[1]{a,b:\n1.", true},
		{"missing colon", "r[1]{a}\n1.", true},
		{"unterminated relation", "r(a:1[1]{a}:\n1.", true},
		{"unterminated count", "r[1{a}:", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBlocks(tt.input)
			require.Error(t, err)
			if tt.header {
				assert.True(t, ErrMalformedHeader.Is(err), "got %v", err)
			} else {
				assert.True(t, ErrMalformedDocument.Is(err), "got %v", err)
			}
		})
	}
}

func TestParseRelation(t *testing.T) {
	tests := []struct {
		text string
		want *Relation
	}{
		{"(cliente_id:1)", &Relation{Key: "cliente_id", ParentID: "1"}},
		{"( fk : 42 )", &Relation{Key: "fk", ParentID: "42"}},
		{"(fk:a:b)", &Relation{Key: "fk", ParentID: "a:b"}},
		{"(fk)", nil},
		{"(:1)", nil},
		{"(fk:)", nil},
		{"()", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRelation(tt.text), "relation %q", tt.text)
	}
}

func TestLooksLikeHeader(t *testing.T) {
	assert.True(t, looksLikeHeader("r[1]{a}:"))
	assert.True(t, looksLikeHeader("  orders(x:1)[1]{a}:"))
	assert.False(t, looksLikeHeader("1,2."))
	assert.False(t, looksLikeHeader("[1]{a}:"))
	assert.False(t, looksLikeHeader("name"))
	assert.False(t, looksLikeHeader(""))
}
