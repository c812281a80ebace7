package toon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSONPreservesKeyOrder(t *testing.T) {
	v, err := FromJSON([]byte(`{"b":1,"a":{"z":2,"y":[true,null,"s",1.5]}}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, v.Keys())
	assert.Equal(t, []string{"z", "y"}, v.Get("a").Keys())

	out, err := ToJSON(v)
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":{"z":2,"y":[true,null,"s",1.5]}}`, string(out))
}

func TestFromJSONNumbers(t *testing.T) {
	v, err := FromJSON([]byte(`[1, -7, 1.25, 1e3, 12345678901234567890]`))
	require.NoError(t, err)
	require.Equal(t, 5, v.Len())

	types := make([]VType, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		elem, err := v.Index(i)
		require.NoError(t, err)
		types = append(types, elem.Type())
	}
	assert.Equal(t, []VType{TypeInt, TypeInt, TypeFloat, TypeFloat, TypeFloat}, types)
}

func TestFromJSONErrors(t *testing.T) {
	for _, in := range []string{``, `{`, `[1,]`, `{"a":1} {"b":2}`, `nope`} {
		_, err := FromJSON([]byte(in))
		assert.Error(t, err, "input %q", in)
	}
}

func TestRecordsFromJSON(t *testing.T) {
	recs, err := RecordsFromJSON([]byte(`[{"id":1},{"id":2}]`))
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	_, err = RecordsFromJSON([]byte(`{"id":1}`))
	assert.True(t, ErrNotArray.Is(err), "got %v", err)
}

func TestToJSONIndent(t *testing.T) {
	out, err := RecordsToJSONIndent([]*Value{Map(Field("id", Str("1")))}, "  ")
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"id\": \"1\"\n  }\n]", string(out))
}

func TestToJSONEscapesStrings(t *testing.T) {
	out, err := ToJSON(Map(Field("q\"k", Str("line\nbreak"))))
	require.NoError(t, err)
	assert.Equal(t, `{"q\"k":"line\nbreak"}`, string(out))
}
