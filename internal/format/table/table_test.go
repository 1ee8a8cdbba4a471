package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"dir", "- List files"},
		{"ipconfig", "- Network settings"},
	}
	got := Format(rows, nil, " ")
	want := []string{
		"dir      - List files",
		"ipconfig - Network settings",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatRightAlign(t *testing.T) {
	got := Format([][]string{{"1", "a"}, {"100", "b"}}, []Alignment{AlignRight}, "  ")
	if got[0] != "  1  a" || got[1] != "100  b" {
		t.Fatalf("unexpected rows %q", got)
	}
}

func TestFormatWideRunes(t *testing.T) {
	got := Format([][]string{{"日本", "x"}, {"ab", "y"}}, nil, " ")
	if got[1] != "ab   y" {
		t.Fatalf("expected wide runes to count double, got %q", got[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil, " "); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
