package finder

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestHighlightMatchesKeepsEmphasisOnCursorRow(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	display := "Project Roadmap"
	matched := []int{0, 1, 2}

	plain := highlightMatches(display, nil, true)
	highlighted := highlightMatches(display, matched, true)
	if highlighted == plain {
		t.Fatalf("expected matched runes to stay emphasized on the cursor row")
	}

	if highlightMatches(display, matched, false) == display {
		t.Fatalf("expected matched runes emphasized off the cursor row")
	}
}

func TestHighlightMatchesNoMatchesIsPlainOffCursor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	if got := highlightMatches("Groceries", nil, false); got != "Groceries" {
		t.Fatalf("expected unstyled text off cursor without matches, got %q", got)
	}
}
