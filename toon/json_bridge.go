package toon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
)

// ============================================================
// JSON Bridge
// ============================================================
//
// Converts between JSON and Value. Object key order is kept in both
// directions since column order comes from the first record.

// FromJSON converts JSON bytes to a Value.
func FromJSON(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("JSON parse error: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("JSON parse error: trailing data after value")
	}
	return v, nil
}

// RecordsFromJSON parses a JSON array into root records.
func RecordsFromJSON(data []byte) ([]*Value, error) {
	v, err := FromJSON(data)
	if err != nil {
		return nil, err
	}
	if !v.IsList() {
		return nil, ErrNotArray.New(v.Type())
	}
	return v.listVal, nil
}

func decodeJSONValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return Str(t), nil
	case json.Number:
		return fromJSONNumber(t)
	case json.Delim:
		switch t {
		case '[':
			list := List()
			for dec.More() {
				elem, err := decodeJSONValue(dec)
				if err != nil {
					return nil, fmt.Errorf("array[%d]: %w", list.Len(), err)
				}
				list.Append(elem)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return list, nil
		case '{':
			obj := Map()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T, expected string", keyTok)
				}
				elem, err := decodeJSONValue(dec)
				if err != nil {
					return nil, fmt.Errorf("object[%q]: %w", key, err)
				}
				obj.Set(key, elem)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		}
	}
	return nil, fmt.Errorf("unexpected JSON token %v", tok)
}

func fromJSONNumber(n json.Number) (*Value, error) {
	if i, err := n.Int64(); err == nil {
		return Int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", n, err)
	}
	return Float(f), nil
}

// ============================================================
// ToJSON - Value to JSON
// ============================================================

// ToJSON converts a Value to compact JSON, keeping record field order.
func ToJSON(v *Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToJSONIndent converts a Value to indented JSON.
func ToJSONIndent(v *Value, prefix, indent string) ([]byte, error) {
	compact, err := ToJSON(v)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// RecordsToJSONIndent renders a root collection as an indented JSON array.
// An empty indent gives compact output.
func RecordsToJSONIndent(records []*Value, indent string) ([]byte, error) {
	if indent == "" {
		return ToJSON(List(records...))
	}
	return ToJSONIndent(List(records...), "", indent)
}

func writeJSON(buf *bytes.Buffer, v *Value) error {
	switch v.Type() {
	case TypeNull:
		buf.WriteString("null")
	case TypeBool:
		buf.WriteString(strconv.FormatBool(v.boolVal))
	case TypeInt:
		buf.WriteString(strconv.FormatInt(v.intVal, 10))
	case TypeFloat:
		if math.IsNaN(v.floatVal) || math.IsInf(v.floatVal, 0) {
			return fmt.Errorf("NaN/Infinity not allowed in JSON")
		}
		buf.WriteString(canonFloat(v.floatVal))
	case TypeStr:
		writeJSONString(buf, v.strVal)
	case TypeList:
		buf.WriteByte('[')
		for i, elem := range v.listVal {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case TypeMap:
		buf.WriteByte('{')
		for i, e := range v.mapVal {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, e.Key)
			buf.WriteByte(':')
			if err := writeJSON(buf, e.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unsupported value type: %s", v.Type())
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	b, _ := json.Marshal(s)
	buf.Write(b)
}
