package cli

import (
	"maps"
	"slices"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		defaults []string
		want     []string
	}{
		{"Empty", "", nil, []string{"svg"}},
		{"EmptyWithConfig", "", []string{"png", "dot"}, []string{"png", "dot"}},
		{"Single", "png", nil, []string{"png"}},
		{"FlagBeatsConfig", "dot", []string{"png"}, []string{"dot"}},
		{"CommaSeparated", "svg,png", nil, []string{"svg", "png"}},
		{"TrimsWhitespace", " svg , png ", nil, []string{"svg", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.flag, tt.defaults); !slices.Equal(got, tt.want) {
				t.Errorf("parseFormats(%q, %v) = %v, want %v", tt.flag, tt.defaults, got, tt.want)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	if err := validateFormats([]string{"dot", "svg", "png"}); err != nil {
		t.Errorf("validateFormats() error = %v, want nil", err)
	}
	if err := validateFormats([]string{"svg", "pdf"}); err == nil {
		t.Error("validateFormats() accepted pdf, want error")
	}
}

func TestParseAttrs(t *testing.T) {
	attrs, err := parseAttrs([]string{"rankdir=LR", "label=my graph"})
	if err != nil {
		t.Fatalf("parseAttrs() error = %v", err)
	}
	want := map[string]string{"rankdir": "LR", "label": "my graph"}
	if !maps.Equal(attrs, want) {
		t.Errorf("parseAttrs() = %v, want %v", attrs, want)
	}

	// Values may contain '=': only the first one splits.
	attrs, err = parseAttrs([]string{"URL=https://example.com?a=b"})
	if err != nil {
		t.Fatalf("parseAttrs() error = %v", err)
	}
	if attrs["URL"] != "https://example.com?a=b" {
		t.Errorf("parseAttrs() URL = %q", attrs["URL"])
	}

	for _, bad := range []string{"rankdir", "=LR"} {
		if _, err := parseAttrs([]string{bad}); err == nil {
			t.Errorf("parseAttrs(%q) succeeded, want error", bad)
		}
	}

	attrs, err = parseAttrs(nil)
	if err != nil || attrs != nil {
		t.Errorf("parseAttrs(nil) = %v, %v, want nil, nil", attrs, err)
	}
}

func TestMergeAttrs(t *testing.T) {
	base := map[string]string{"rankdir": "TB", "bgcolor": "white"}
	override := map[string]string{"rankdir": "LR"}

	merged := mergeAttrs(base, override)
	if merged["rankdir"] != "LR" {
		t.Errorf("mergeAttrs() rankdir = %q, want LR (flag wins)", merged["rankdir"])
	}
	if merged["bgcolor"] != "white" {
		t.Errorf("mergeAttrs() bgcolor = %q, want white (config kept)", merged["bgcolor"])
	}

	if got := mergeAttrs(nil, nil); got != nil {
		t.Errorf("mergeAttrs(nil, nil) = %v, want nil", got)
	}
}
