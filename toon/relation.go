package toon

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// IDField is the root record field that child blocks refer to.
const IDField = "id"

// RelationNamer derives the foreign key name written in child block
// headers from the root block name.
type RelationNamer func(rootName string) string

// SingularForeignKey strips one trailing "s" and appends "_id":
// clientes → cliente_id, person → person_id. A name that is only "s"
// keeps it: s → s_id.
func SingularForeignKey(rootName string) string {
	if singular := strings.TrimSuffix(rootName, "s"); singular != "" {
		return singular + "_id"
	}
	return rootName + "_id"
}

// FixedForeignKey returns a namer that always yields name.
func FixedForeignKey(name string) RelationNamer {
	return func(string) string { return name }
}

// ValidForeignKey reports whether key can be written before the colon
// of a relation descriptor.
func ValidForeignKey(key string) bool {
	return strings.TrimSpace(key) != "" && !strings.ContainsAny(key, ":()\r\n")
}

// validParentID reports whether id can be written after the colon of a
// relation descriptor.
func validParentID(id string) bool {
	return strings.TrimSpace(id) != "" && !strings.ContainsAny(id, ")\r\n")
}

// RelationPolicy decides what happens to a child block that cannot be
// attached to a parent.
type RelationPolicy uint8

const (
	// BestEffort drops the block and keeps decoding.
	BestEffort RelationPolicy = iota
	// Strict fails the decode.
	Strict
)

// String returns the policy name.
func (p RelationPolicy) String() string {
	switch p {
	case BestEffort:
		return "best-effort"
	case Strict:
		return "strict"
	default:
		return "unknown"
	}
}

// plainDecimal matches ids compared numerically. Exponent forms and
// ids longer than maxNumericID compare as text, so the rescale done by
// decimal.Equal stays small.
var plainDecimal = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

const maxNumericID = 64

func isNumericID(s string) bool {
	return len(s) <= maxNumericID && plainDecimal.MatchString(s)
}

// IDsEqual compares two identifiers as text. Surrounding space is
// ignored, and two plain decimal numbers are equal when numerically
// equal, so "1" matches "1.0".
func IDsEqual(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == b {
		return true
	}
	if !isNumericID(a) || !isNumericID(b) {
		return false
	}
	da, err := decimal.NewFromString(a)
	if err != nil {
		return false
	}
	db, err := decimal.NewFromString(b)
	if err != nil {
		return false
	}
	return da.Equal(db)
}

// findParent returns the first root record whose id matches parentID.
func findParent(roots []*Value, parentID string) *Value {
	for _, r := range roots {
		id, ok := r.Lookup(IDField)
		if !ok {
			continue
		}
		if IDsEqual(CellText(id), parentID) {
			return r
		}
	}
	return nil
}

// attach appends rows of a child block to the parent's list field,
// creating the field (or replacing a non-list value) as needed.
func attach(parent *Value, b *Block) {
	list, ok := parent.Lookup(b.Name)
	if !ok || !list.IsList() {
		list = List()
		parent.Set(b.Name, list)
	}
	for _, row := range b.Rows {
		list.Append(BuildRecord(b.Keys, row))
	}
}
