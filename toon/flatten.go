package toon

import "strings"

// ============================================================
// Key-Path Flattening
// ============================================================
//
// A record's nested scalar fields are addressed by dot paths:
//
//   {id=1 address={city=NYC zip=10001}}  →  [id address.city address.zip]
//
// List-valued fields are not paths. They become child blocks.

// PathSeparator joins the segments of a key path.
const PathSeparator = "."

// FlattenKeys returns the dot paths of every scalar leaf in record,
// depth first in field order. List fields are skipped.
func FlattenKeys(record *Value) []string {
	return flattenKeys(record, "", true)
}

// flattenAllKeys is FlattenKeys but treats lists as leaves.
func flattenAllKeys(record *Value) []string {
	return flattenKeys(record, "", false)
}

func flattenKeys(record *Value, prefix string, skipLists bool) []string {
	if !record.IsMap() {
		return nil
	}
	var keys []string
	for _, e := range record.mapVal {
		path := e.Key
		if prefix != "" {
			path = prefix + PathSeparator + e.Key
		}
		switch e.Value.Type() {
		case TypeList:
			if skipLists {
				continue
			}
			keys = append(keys, path)
		case TypeMap:
			keys = append(keys, flattenKeys(e.Value, path, skipLists)...)
		default:
			keys = append(keys, path)
		}
	}
	return keys
}

// splitPath splits a key path into segments.
func splitPath(path string) []string {
	return strings.Split(path, PathSeparator)
}

// GetPath returns the value at path, or nil when any segment is missing
// or an intermediate value is not a record.
func GetPath(record *Value, path string) *Value {
	cur := record
	for _, seg := range splitPath(path) {
		next, ok := cur.Lookup(seg)
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// SetPath assigns value at path, creating intermediate records and
// replacing any non-record value found on the way. record is modified
// in place and must be a record.
func SetPath(record *Value, path string, value *Value) {
	segs := splitPath(path)
	cur := record
	for _, seg := range segs[:len(segs)-1] {
		next, ok := cur.Lookup(seg)
		if !ok || !next.IsMap() {
			next = Map()
			cur.Set(seg, next)
		}
		cur = next
	}
	cur.Set(segs[len(segs)-1], value)
}

// BuildRecord returns a new record with values[i] placed at keys[i].
// Keys without a value are null; extra values are ignored.
func BuildRecord(keys []string, values []string) *Value {
	record := Map()
	for i, key := range keys {
		var val *Value
		if i < len(values) {
			val = Str(values[i])
		} else {
			val = Null()
		}
		SetPath(record, key, val)
	}
	return record
}
