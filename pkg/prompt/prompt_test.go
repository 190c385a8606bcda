package prompt

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

var (
	_ Interactive = (*Huh)(nil)
	_ Interactive = (*Line)(nil)
	_ Interactive = (*Script)(nil)
)

func TestLine_Text(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		def    string
		want   string
		wantOK bool
	}{
		{"typed value", "Legs\n", "Push", "Legs", true},
		{"empty accepts default", "\n", "Push", "Push", true},
		{"crlf", "Pull\r\n", "", "Pull", true},
		{"last line without newline", "Core", "", "Core", true},
		{"eof cancels", "", "Push", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			got, ok, err := NewLine(strings.NewReader(tt.input), &out).Text("Name", tt.def)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Text = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLine_TextShowsDefault(t *testing.T) {
	var out strings.Builder
	NewLine(strings.NewReader("\n"), &out).Text("Reps", "8")
	if out.String() != "Reps [8]: " {
		t.Errorf("prompt = %q", out.String())
	}
}

func TestLine_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"n\n", false},
		{"\n", false},
		{"maybe\n", false},
		{"", false},
	}
	for _, tt := range tests {
		got, err := NewLine(strings.NewReader(tt.input), &strings.Builder{}).Confirm("Delete?")
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLine_Choose(t *testing.T) {
	options := []Option{{Key: "list", Label: "List sheets"}, {Key: "new", Label: "New sheet"}}
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"by number", "2\n", "new", true},
		{"by key", "LIST\n", "list", true},
		{"retry after bad input", "9\nnew\n", "new", true},
		{"empty cancels", "\n", "", false},
		{"eof cancels", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := NewLine(strings.NewReader(tt.input), &strings.Builder{}).Choose("Menu", options)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Choose = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestChoose_NoOptions(t *testing.T) {
	if _, _, err := NewLine(strings.NewReader("1\n"), &strings.Builder{}).Choose("Menu", nil); !errors.Is(err, ErrNoOptions) {
		t.Errorf("Line err = %v", err)
	}
	if _, _, err := (&Script{}).Choose("Menu", nil); !errors.Is(err, ErrNoOptions) {
		t.Errorf("Script err = %v", err)
	}
}

func TestScript_ReplaysAndRecords(t *testing.T) {
	s := &Script{
		Texts:    []Answer{Reply("Legs"), Cancelled},
		Confirms: []bool{true},
	}

	v, ok, err := s.Text("Name", "Push")
	if v != "Legs" || !ok || err != nil {
		t.Errorf("first Text = (%q, %v, %v)", v, ok, err)
	}
	if _, ok, _ := s.Text("Notes", ""); ok {
		t.Error("second Text should be cancelled")
	}
	if yes, _ := s.Confirm("Delete?"); !yes {
		t.Error("Confirm should replay true")
	}
	if _, _, err := s.Text("More", ""); !errors.Is(err, ErrScriptExhausted) {
		t.Errorf("expected ErrScriptExhausted, got %v", err)
	}

	want := []string{"Name [Push]", "Notes []", "Delete?", "More []"}
	if !reflect.DeepEqual(s.Asked, want) {
		t.Errorf("Asked = %q, want %q", s.Asked, want)
	}
}
