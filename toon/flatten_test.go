package toon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCustomer() *Value {
	return Map(
		Field("id", Int(1)),
		Field("name", Str("Alice")),
		Field("tags", List(Str("a"), Str("b"))),
		Field("address", Map(
			Field("city", Str("NYC")),
			Field("geo", Map(Field("lat", Float(40.7)))),
		)),
		Field("note", Null()),
	)
}

func TestFlattenKeys(t *testing.T) {
	keys := FlattenKeys(makeCustomer())
	assert.Equal(t, []string{"id", "name", "address.city", "address.geo.lat", "note"}, keys)
}

func TestFlattenKeysEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		rec  *Value
		want []string
	}{
		{"nil", nil, nil},
		{"scalar", Str("x"), nil},
		{"empty record", Map(), nil},
		{"empty nested record", Map(Field("a", Map()), Field("b", Int(1))), []string{"b"}},
		{"only lists", Map(Field("xs", List())), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FlattenKeys(tt.rec))
		})
	}
}

func TestFlattenAllKeysKeepsLists(t *testing.T) {
	keys := flattenAllKeys(makeCustomer())
	assert.Equal(t, []string{"id", "name", "tags", "address.city", "address.geo.lat", "note"}, keys)
}

func TestGetPath(t *testing.T) {
	rec := makeCustomer()

	assert.Equal(t, "NYC", CellText(GetPath(rec, "address.city")))
	assert.Equal(t, "40.7", CellText(GetPath(rec, "address.geo.lat")))
	assert.True(t, GetPath(rec, "note").IsNull())

	// Missing segments and non-record intermediates yield nil.
	assert.Nil(t, GetPath(rec, "address.zip"))
	assert.Nil(t, GetPath(rec, "name.first"))
	assert.Nil(t, GetPath(rec, "missing.deep.path"))
	assert.Nil(t, GetPath(nil, "id"))
}

func TestSetPath(t *testing.T) {
	rec := Map()
	SetPath(rec, "address.city", Str("NYC"))
	SetPath(rec, "address.zip", Str("10001"))
	SetPath(rec, "id", Str("1"))

	assert.Equal(t, `{"address":{"city":"NYC","zip":"10001"},"id":"1"}`, rec.String())
}

func TestSetPathOverwritesScalarIntermediate(t *testing.T) {
	rec := Map(Field("a", Str("x")))
	SetPath(rec, "a.b", Str("y"))

	assert.Equal(t, `{"a":{"b":"y"}}`, rec.String())
}

func TestBuildRecord(t *testing.T) {
	keys := []string{"id", "name", "address.city"}

	t.Run("full row", func(t *testing.T) {
		rec := BuildRecord(keys, []string{"1", "Alice", "NYC"})
		assert.Equal(t, `{"id":"1","name":"Alice","address":{"city":"NYC"}}`, rec.String())
	})

	t.Run("short row", func(t *testing.T) {
		rec := BuildRecord(keys, []string{"1"})
		assert.Equal(t, `{"id":"1","name":null,"address":{"city":null}}`, rec.String())
	})

	t.Run("extra values", func(t *testing.T) {
		rec := BuildRecord(keys, []string{"1", "Alice", "NYC", "extra"})
		assert.Equal(t, 3, rec.Len())
	})

	t.Run("fresh record per call", func(t *testing.T) {
		a := BuildRecord(keys, []string{"1", "A", "X"})
		b := BuildRecord(keys, []string{"2", "B", "Y"})
		require.NotSame(t, a.Get("address"), b.Get("address"))
		assert.Equal(t, "X", CellText(GetPath(a, "address.city")))
	})
}
