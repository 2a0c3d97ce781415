// Package output serializes cleaned tables.
package output

import "encoding/json"

// ToJSON marshals v, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
