package entity

import (
	"bytes"
	"encoding/json"
)

// Record is one CSV row keyed by column name. Values are int64, float64,
// bool or string and line up with Columns by index.
type Record struct {
	Columns []string
	Values  []any
}

// Get returns the value stored under column.
func (r Record) Get(column string) (any, bool) {
	for i, name := range r.Columns {
		if name == column && i < len(r.Values) {
			return r.Values[i], true
		}
	}
	return nil, false
}

// MarshalJSON encodes the record as a JSON object whose keys follow column order.
func (r Record) MarshalJSON() ([]byte, error) {
	return marshalOrdered(r.Columns, func(i int) any {
		if i < len(r.Values) {
			return r.Values[i]
		}
		return nil
	})
}

func marshalOrdered(keys []string, value func(i int) any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := marshalValue(value(i))
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// marshalValue encodes v like json.Marshal, except that whole float64 values
// keep a ".0" so float columns never read back as integers.
func marshalValue(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	if _, ok := v.(float64); ok && !bytes.ContainsAny(b, ".eE") {
		b = append(b, '.', '0')
	}
	return b, nil
}
