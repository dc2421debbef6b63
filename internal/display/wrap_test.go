package display

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestWrap(t *testing.T) {
	long := strings.Repeat("snowdrift ", 20)

	for _, line := range strings.Split(Wrap(long), "\n") {
		if len(line) > DefaultWidth {
			t.Errorf("line exceeds %d characters: %q", DefaultWidth, line)
		}
	}

	// Short text is untouched.
	testutil.AssertEqual(t, "short text", Wrap("a quiet day"), "a quiet day")
}

func TestCapitalize(t *testing.T) {
	tests := map[string]struct {
		in  string
		exp string
	}{
		"lowercase":   {in: "the valley", exp: "The valley"},
		"already cap": {in: "The valley", exp: "The valley"},
		"single rune": {in: "a", exp: "A"},
		"empty":       {in: "", exp: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "capitalized", Capitalize(tt.in), tt.exp)
		})
	}
}

func TestParagraphs(t *testing.T) {
	got := Paragraphs([]string{"day 3", "", "the storm breaks."})
	testutil.AssertEqual(t, "joined", got, "Day 3\n\nThe storm breaks.")

	testutil.AssertEqual(t, "empty input", Paragraphs(nil), "")
}
