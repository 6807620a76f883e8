package httpclient

import (
	"bytes"
	"encoding/json"
)

// CleanJSON encodes v as JSON with every null-valued object key removed,
// at any depth. Null array elements are kept so positions are preserved.
func CleanJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	return json.Marshal(stripNulls(tree))
}

func stripNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			if child == nil {
				delete(t, k)
				continue
			}
			t[k] = stripNulls(child)
		}
		return t
	case []any:
		for i, child := range t {
			t[i] = stripNulls(child)
		}
		return t
	default:
		return v
	}
}
