package model

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestTheme_CarriesUnknownKeys(t *testing.T) {
	var th Theme
	if err := json.Unmarshal([]byte(`{"mode":"dark","color":"red","accent":"gold","radius":4}`), &th); err != nil {
		t.Fatal(err)
	}
	if th.Mode != "dark" || th.Color != "red" {
		t.Fatalf("decoded %+v", th)
	}
	if th.Extra() != `{"accent":"gold","radius":4}` {
		t.Errorf("Extra = %s", th.Extra())
	}

	th.Color = "green"
	out, err := json.Marshal(th)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"accent":"gold","color":"green","mode":"dark","radius":4}`
	if string(out) != want {
		t.Errorf("Marshal = %s, want %s", out, want)
	}

	var again Theme
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatal(err)
	}
	if again != th {
		t.Errorf("round trip = %+v, want %+v", again, th)
	}
}

func TestTheme_KnownKeysOnly(t *testing.T) {
	out, err := json.Marshal(DefaultTheme)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"mode":"light","color":"blue"}` {
		t.Errorf("Marshal = %s", out)
	}

	var th Theme
	if err := json.Unmarshal([]byte(`{"mode":"light","color":"blue"}`), &th); err != nil {
		t.Fatal(err)
	}
	if th != DefaultTheme {
		t.Errorf("decoded %+v, want DefaultTheme", th)
	}
}

func TestTheme_BadInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not an object", `"blue"`},
		{"mode not a string", `{"mode":1,"color":"red"}`},
		{"color not a string", `{"mode":"dark","color":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var th Theme
			if err := json.Unmarshal([]byte(tt.raw), &th); err == nil {
				t.Errorf("Unmarshal(%s) succeeded: %+v", tt.raw, th)
			}
		})
	}
}
