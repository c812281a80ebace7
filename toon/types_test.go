package toon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAccessors(t *testing.T) {
	rec := makeCustomer()

	assert.Equal(t, TypeMap, rec.Type())
	assert.Equal(t, 5, rec.Len())
	assert.True(t, rec.Has("note"))
	assert.False(t, rec.Has("missing"))

	name, err := rec.Get("name").AsStr()
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	_, err = rec.Get("id").AsStr()
	assert.Error(t, err)

	tags, err := rec.Get("tags").AsList()
	require.NoError(t, err)
	assert.Len(t, tags, 2)

	var nilVal *Value
	assert.True(t, nilVal.IsNull())
	assert.Equal(t, TypeNull, nilVal.Type())
	assert.Equal(t, 0, nilVal.Len())
	assert.Nil(t, nilVal.Get("x"))
}

func TestValueSetKeepsOrder(t *testing.T) {
	rec := Map(Field("a", Int(1)), Field("b", Int(2)))
	rec.Set("a", Int(3))
	rec.Set("c", Int(4))

	assert.Equal(t, []string{"a", "b", "c"}, rec.Keys())
	assert.Equal(t, `{"a":3,"b":2,"c":4}`, rec.String())
}

func TestValueCloneIsDeep(t *testing.T) {
	orig := makeCustomer()
	c := orig.Clone()
	require.True(t, orig.Equal(c))

	SetPath(c, "address.city", Str("LA"))
	c.Get("tags").Append(Str("c"))

	assert.Equal(t, "NYC", CellText(GetPath(orig, "address.city")))
	assert.Equal(t, 2, orig.Get("tags").Len())
	assert.False(t, orig.Equal(c))
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Null().Equal(nil))
	assert.False(t, Int(1).Equal(Float(1)))
	assert.False(t, Map(Field("a", Int(1)), Field("b", Int(2))).Equal(Map(Field("b", Int(2)), Field("a", Int(1)))))
	assert.True(t, List(Str("x")).Equal(List(Str("x"))))
}

func TestValueMutatorsPanicOnWrongType(t *testing.T) {
	assert.Panics(t, func() { Int(1).Set("a", Null()) })
	assert.Panics(t, func() { Map().Append(Null()) })
}
