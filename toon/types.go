package toon

import (
	"fmt"
)

// VType represents the kind of a Value.
type VType uint8

const (
	TypeNull VType = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeStr
	TypeList
	TypeMap // Ordered record: field order is insertion order
)

// String returns the type name.
func (t VType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeStr:
		return "str"
	case TypeList:
		return "list"
	case TypeMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is a node of the in-memory data model. A nil *Value is null.
type Value struct {
	typ VType

	// Scalar values (only one valid based on typ)
	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string

	// Container values
	listVal []*Value
	mapVal  []MapEntry
}

// MapEntry represents a key-value pair in a record.
type MapEntry struct {
	Key   string
	Value *Value
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null value.
func Null() *Value {
	return &Value{typ: TypeNull}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{typ: TypeBool, boolVal: v}
}

// Int creates an integer value.
func Int(v int64) *Value {
	return &Value{typ: TypeInt, intVal: v}
}

// Float creates a float value.
func Float(v float64) *Value {
	return &Value{typ: TypeFloat, floatVal: v}
}

// Str creates a string value.
func Str(v string) *Value {
	return &Value{typ: TypeStr, strVal: v}
}

// List creates a list value.
func List(values ...*Value) *Value {
	return &Value{typ: TypeList, listVal: values}
}

// Map creates a record from key-value pairs, keeping their order.
func Map(entries ...MapEntry) *Value {
	return &Value{typ: TypeMap, mapVal: entries}
}

// Field creates a MapEntry for use in Map construction.
func Field(key string, value *Value) MapEntry {
	return MapEntry{Key: key, Value: value}
}

// ============================================================
// Accessors
// ============================================================

// Type returns the value type.
func (v *Value) Type() VType {
	if v == nil {
		return TypeNull
	}
	return v.typ
}

// IsNull returns true if this is a null value.
func (v *Value) IsNull() bool {
	return v == nil || v.typ == TypeNull
}

// IsList returns true if this is a list.
func (v *Value) IsList() bool {
	return v != nil && v.typ == TypeList
}

// IsMap returns true if this is a record.
func (v *Value) IsMap() bool {
	return v != nil && v.typ == TypeMap
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if v == nil {
		return false, fmt.Errorf("toon: nil value")
	}
	if v.typ != TypeBool {
		return false, fmt.Errorf("toon: expected bool, got %s", v.typ)
	}
	return v.boolVal, nil
}

// AsInt returns the integer value.
func (v *Value) AsInt() (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("toon: nil value")
	}
	if v.typ != TypeInt {
		return 0, fmt.Errorf("toon: expected int, got %s", v.typ)
	}
	return v.intVal, nil
}

// AsFloat returns the float value.
func (v *Value) AsFloat() (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("toon: nil value")
	}
	if v.typ != TypeFloat {
		return 0, fmt.Errorf("toon: expected float, got %s", v.typ)
	}
	return v.floatVal, nil
}

// AsStr returns the string value.
func (v *Value) AsStr() (string, error) {
	if v == nil {
		return "", fmt.Errorf("toon: nil value")
	}
	if v.typ != TypeStr {
		return "", fmt.Errorf("toon: expected str, got %s", v.typ)
	}
	return v.strVal, nil
}

// AsList returns the list elements.
func (v *Value) AsList() ([]*Value, error) {
	if v == nil {
		return nil, fmt.Errorf("toon: nil value")
	}
	if v.typ != TypeList {
		return nil, fmt.Errorf("toon: expected list, got %s", v.typ)
	}
	return v.listVal, nil
}

// AsMap returns the record entries.
func (v *Value) AsMap() ([]MapEntry, error) {
	if v == nil {
		return nil, fmt.Errorf("toon: nil value")
	}
	if v.typ != TypeMap {
		return nil, fmt.Errorf("toon: expected map, got %s", v.typ)
	}
	return v.mapVal, nil
}

// Len returns the length of a list or record.
func (v *Value) Len() int {
	switch v.Type() {
	case TypeList:
		return len(v.listVal)
	case TypeMap:
		return len(v.mapVal)
	default:
		return 0
	}
}

// Keys returns the field names of a record in order.
func (v *Value) Keys() []string {
	if !v.IsMap() {
		return nil
	}
	keys := make([]string, len(v.mapVal))
	for i, e := range v.mapVal {
		keys[i] = e.Key
	}
	return keys
}

// Lookup returns a field value and whether the field exists.
func (v *Value) Lookup(key string) (*Value, bool) {
	if !v.IsMap() {
		return nil, false
	}
	for _, e := range v.mapVal {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Get returns a field value by key, or nil if absent.
func (v *Value) Get(key string) *Value {
	val, _ := v.Lookup(key)
	return val
}

// Has reports whether a record has the given field.
func (v *Value) Has(key string) bool {
	_, ok := v.Lookup(key)
	return ok
}

// Index returns the i-th element of a list.
func (v *Value) Index(i int) (*Value, error) {
	if !v.IsList() {
		return nil, fmt.Errorf("toon: not a list")
	}
	if i < 0 || i >= len(v.listVal) {
		return nil, fmt.Errorf("toon: index %d out of bounds (len=%d)", i, len(v.listVal))
	}
	return v.listVal[i], nil
}

// ============================================================
// Mutators
// ============================================================

// Set sets a field value on a record, appending new fields at the end.
func (v *Value) Set(key string, val *Value) {
	if v == nil || v.typ != TypeMap {
		panic("toon: cannot set on non-map")
	}
	for i := range v.mapVal {
		if v.mapVal[i].Key == key {
			v.mapVal[i].Value = val
			return
		}
	}
	v.mapVal = append(v.mapVal, MapEntry{Key: key, Value: val})
}

// Append adds values to a list.
func (v *Value) Append(vals ...*Value) {
	if v == nil || v.typ != TypeList {
		panic("toon: cannot append to non-list")
	}
	v.listVal = append(v.listVal, vals...)
}

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	c := *v
	switch v.typ {
	case TypeList:
		c.listVal = make([]*Value, len(v.listVal))
		for i, elem := range v.listVal {
			c.listVal[i] = elem.Clone()
		}
	case TypeMap:
		c.mapVal = make([]MapEntry, len(v.mapVal))
		for i, e := range v.mapVal {
			c.mapVal[i] = MapEntry{Key: e.Key, Value: e.Value.Clone()}
		}
	}
	return &c
}

// Equal reports whether two values are structurally equal.
// Record field order is significant.
func (v *Value) Equal(o *Value) bool {
	if v.Type() != o.Type() {
		return false
	}
	switch v.Type() {
	case TypeNull:
		return true
	case TypeBool:
		return v.boolVal == o.boolVal
	case TypeInt:
		return v.intVal == o.intVal
	case TypeFloat:
		return v.floatVal == o.floatVal
	case TypeStr:
		return v.strVal == o.strVal
	case TypeList:
		if len(v.listVal) != len(o.listVal) {
			return false
		}
		for i := range v.listVal {
			if !v.listVal[i].Equal(o.listVal[i]) {
				return false
			}
		}
		return true
	case TypeMap:
		if len(v.mapVal) != len(o.mapVal) {
			return false
		}
		for i := range v.mapVal {
			if v.mapVal[i].Key != o.mapVal[i].Key || !v.mapVal[i].Value.Equal(o.mapVal[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// String returns a compact debug rendering.
func (v *Value) String() string {
	b, err := ToJSON(v)
	if err != nil {
		return fmt.Sprintf("<%s>", v.Type())
	}
	return string(b)
}
