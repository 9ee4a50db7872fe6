package handler

import "testing"

func TestParseTags(t *testing.T) {
	tags, err := parseTags(`["bestseller","eggless"]`)
	if err != nil {
		t.Fatalf("parseTags() unexpected error: %v", err)
	}
	if len(tags) != 2 || tags[0] != "bestseller" || tags[1] != "eggless" {
		t.Errorf("parseTags() = %v", tags)
	}
}

func TestParseTagsAbsent(t *testing.T) {
	tags, err := parseTags("")
	if err != nil {
		t.Fatalf("parseTags() unexpected error: %v", err)
	}
	if tags == nil {
		t.Fatal("parseTags(\"\") returned nil slice")
	}
	if len(tags) != 0 {
		t.Errorf("parseTags(\"\") = %v, want empty", tags)
	}
}

func TestParseTagsInvalid(t *testing.T) {
	for _, raw := range []string{"bestseller", `{"a":1}`, `[1,2]`} {
		if _, err := parseTags(raw); err == nil {
			t.Errorf("parseTags(%q) expected error", raw)
		}
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"false", false},
		{"", false},
		{"TRUE", false},
		{"1", false},
		{"yes", false},
	}

	for _, tt := range tests {
		if got := parseBool(tt.raw); got != tt.want {
			t.Errorf("parseBool(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
