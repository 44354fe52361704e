package stats

import "testing"

func TestTextTableAlignsColumns(t *testing.T) {
	tbl := newTextTable("Operator", "Accuracy", "Correct").alignRight(1, 2)
	tbl.add("Addition", "97.50%", "12")
	tbl.add("Division", "8.00%", "3")

	lines := tbl.lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Operator Accuracy Correct" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "Addition   97.50%      12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Division    8.00%       3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestTextTableMeasuresWideRunes(t *testing.T) {
	tbl := newTextTable("Word", "Meaning")
	tbl.add("كلب", "dog")
	tbl.add("⭐", "star")
	lines := tbl.lines()
	if lines[1] != "كلب  dog" {
		t.Fatalf("unexpected arabic row: %q", lines[1])
	}
	if lines[2] != "⭐   star" {
		t.Fatalf("unexpected emoji row: %q", lines[2])
	}
}
