package libdiff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	got := Lines("a\nb\nc\n", "a\nB\nc\nd")
	want := []Line{
		{Op: Equal, Text: "a"},
		{Op: Delete, Text: "b"},
		{Op: Insert, Text: "B"},
		{Op: Equal, Text: "c"},
		{Op: Insert, Text: "d", NoEOL: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestUnifiedEqual(t *testing.T) {
	if s := String("a", "b", "x\ny\n", "x\ny\n", nil); s != "" {
		t.Errorf("got %q", s)
	}
}

func TestUnified(t *testing.T) {
	from := "{\n  \"greeting\": \"hi\"\n}"
	to := "{\n  \"greeting\": \"hi\",\n  \"wizard\": {}\n}"
	want := strings.Join([]string{
		"--- fr/translation.json",
		"+++ fr/translation.json",
		"@@ -1,3 +1,4 @@",
		" {",
		"-  \"greeting\": \"hi\"",
		"+  \"greeting\": \"hi\",",
		"+  \"wizard\": {}",
		" }",
		`\ No newline at end of file`,
		"",
	}, "\n")
	got := String("fr/translation.json", "fr/translation.json", from, to, nil)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestHunks(t *testing.T) {
	var from, to []string
	for i := 0; i < 20; i++ {
		from = append(from, string(rune('a'+i)))
		to = append(to, string(rune('a'+i)))
	}
	to[1] = "X"
	to[17] = "Y"
	lines := Lines(strings.Join(from, "\n")+"\n", strings.Join(to, "\n")+"\n")
	hunks := Hunks(lines, 3)
	if len(hunks) != 2 {
		t.Fatalf("got %d hunks, want 2", len(hunks))
	}
	h := hunks[0]
	if h.FromLine != 1 || h.FromCount != 5 || h.ToLine != 1 || h.ToCount != 5 {
		t.Errorf("first hunk %+v", h)
	}
	h = hunks[1]
	if h.FromLine != 15 || h.FromCount != 6 || h.ToLine != 15 || h.ToCount != 6 {
		t.Errorf("second hunk %+v", h)
	}
	if got := Hunks(lines, 10); len(got) != 1 {
		t.Errorf("wide context: got %d hunks, want 1", len(got))
	}
}
