package model

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Theme is display metadata for a sheet. The core never interprets it:
// keys other than mode and color are carried through load and save
// untouched.
type Theme struct {
	Mode  string `json:"mode"`
	Color string `json:"color"`

	// extra is a compact JSON object of the unknown keys, or "". A string
	// keeps Theme (and Sheet) comparable with ==.
	extra string
}

// DefaultTheme is assigned to newly created sheets.
var DefaultTheme = Theme{Mode: "light", Color: "blue"}

// themeFields has the field order of the persisted blob.
type themeFields struct {
	Mode  string `json:"mode"`
	Color string `json:"color"`
}

// Extra returns the unknown keys as a JSON object, or "" when there are none.
func (t Theme) Extra() string {
	return t.extra
}

// MarshalJSON writes mode and color plus any carried keys.
func (t Theme) MarshalJSON() ([]byte, error) {
	if t.extra == "" {
		return json.Marshal(themeFields{Mode: t.Mode, Color: t.Color})
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(t.extra), &fields); err != nil {
		return nil, fmt.Errorf("theme extra keys: %w", err)
	}
	for k, v := range map[string]string{"mode": t.Mode, "color": t.Color} {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		fields[k] = raw
	}
	return json.Marshal(fields)
}

// UnmarshalJSON reads mode and color and keeps every other key.
func (t *Theme) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	*t = Theme{}
	for key, dst := range map[string]*string{"mode": &t.Mode, "color": &t.Color} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("theme %s: %w", key, err)
		}
		delete(fields, key)
	}
	if len(fields) == 0 {
		return nil
	}
	extra, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("theme extra keys: %w", err)
	}
	t.extra = string(extra)
	return nil
}
