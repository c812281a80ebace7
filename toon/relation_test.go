package toon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingularForeignKey(t *testing.T) {
	tests := map[string]string{
		"clientes": "cliente_id",
		"users":    "user_id",
		"person":   "person_id",
		"data":     "data_id",
		"ss":       "s_id",
		"s":        "s_id",
	}
	for root, want := range tests {
		assert.Equal(t, want, SingularForeignKey(root), root)
	}
}

func TestFixedForeignKey(t *testing.T) {
	namer := FixedForeignKey("owner_ref")
	assert.Equal(t, "owner_ref", namer("anything"))
}

func TestIDsEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"1", "1", true},
		{"1", " 1 ", true},
		{"1", "1.0", true},
		{"10", "1e1", false},
		{"1", "1e-10000000", false},
		{"1e-10000000", "1e10000000", false},
		{"1e5", "1e5", true},
		{"-1.50", "-1.5", true},
		{"1.", "1", false},
		{"1", "1." + strings.Repeat("0", 100), false},
		{"-0", "0", true},
		{"01", "1", true},
		{"1", "2", false},
		{"abc", "abc", true},
		{"abc", "ABC", false},
		{"01a", "1a", false},
		{"null", "0", false},
		{"", "", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IDsEqual(tt.a, tt.b), "IDsEqual(%q, %q)", tt.a, tt.b)
	}
}

func TestFindParent(t *testing.T) {
	roots := []*Value{
		Map(Field("name", Str("no id"))),
		Map(Field("id", Int(3))),
		Map(Field("id", Str("3"))),
	}
	assert.Same(t, roots[1], findParent(roots, "3"))
	assert.Nil(t, findParent(roots, "4"))
	assert.Nil(t, findParent(nil, "1"))
}

func TestRelationPolicyString(t *testing.T) {
	assert.Equal(t, "best-effort", BestEffort.String())
	assert.Equal(t, "strict", Strict.String())
}
