package models

import "encoding/json"

// Order carries an identifier plus whatever fields the upstream defines.
// The extra fields are not modeled; they pass through to rendering opaquely.
type Order struct {
	ID     string
	Fields map[string]json.RawMessage
}

// UnmarshalJSON keeps the id typed and everything else raw.
func (o *Order) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if raw, ok := fields["id"]; ok {
		// id may arrive as a string or a number; normalise to string.
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			var n json.Number
			if err := json.Unmarshal(raw, &n); err != nil {
				return err
			}
			s = n.String()
		}
		o.ID = s
		delete(fields, "id")
	}

	o.Fields = fields
	return nil
}

// Field returns the named passthrough field as a display string, or "" when
// absent.
func (o *Order) Field(name string) string {
	raw, ok := o.Fields[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	// Non-string values display as their JSON text.
	return string(raw)
}
