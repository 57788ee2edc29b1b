package suggest

import (
	"testing"

	"github.com/Paintersrp/lens/internal/display"
)

func allOn() Policy {
	return Policy{IncludeFilename: true, IncludeAliases: true}
}

func TestForLinkEmptyQueryReturnsEveryRecord(t *testing.T) {
	records := []display.Record{
		{Path: "/v/a.md", DisplayName: "Alpha", IsCustom: true},
		{Path: "/v/b.md", DisplayName: "b"},
	}

	out := ForLink(records, "", allOn())
	if len(out) != 2 {
		t.Fatalf("expected all records for empty query, got %d", len(out))
	}
	for _, sug := range out {
		if sug.Kind != KindNote {
			t.Fatalf("expected only note rows, got %+v", sug)
		}
	}
}

func TestForLinkRanksTitleAboveLooserMatches(t *testing.T) {
	records := []display.Record{
		{Path: "/v/a.md", DisplayName: "Apple Pie", IsCustom: true},
		{Path: "/v/b.md", DisplayName: "Banana Apple"},
		{Path: "/v/c.md", DisplayName: "apple"},
	}

	out := ForLink(records, "apple", allOn())
	if len(out) != 3 {
		t.Fatalf("expected three matches, got %d", len(out))
	}
	if out[0].Display != "apple" {
		t.Fatalf("expected exact match first, got %q", out[0].Display)
	}
	if out[1].Display != "Apple Pie" {
		t.Fatalf("expected prefix match second, got %q", out[1].Display)
	}
	if out[2].Display != "Banana Apple" {
		t.Fatalf("expected contains match last, got %q", out[2].Display)
	}
}

func TestForLinkReasonFlags(t *testing.T) {
	records := []display.Record{
		{Path: "/v/ideas.md", DisplayName: "Big Ideas", IsCustom: true, Aliases: []string{"brainstorm"}},
	}

	out := ForLink(records, "ideas", allOn())
	if len(out) != 1 {
		t.Fatalf("expected one match, got %d", len(out))
	}
	reason := out[0].Reason
	if !reason.Title {
		t.Fatalf("expected title reason, got %+v", reason)
	}
	if !reason.Filename {
		t.Fatalf("expected filename reason for ideas.md, got %+v", reason)
	}
	if reason.Alias {
		t.Fatalf("did not expect alias reason, got %+v", reason)
	}

	out = ForLink(records, "brainstorm", allOn())
	if len(out) != 1 || !out[0].Reason.Alias {
		t.Fatalf("expected alias-only match, got %+v", out)
	}
}

func TestForLinkPolicyDisablesFields(t *testing.T) {
	records := []display.Record{
		{Path: "/v/q3-review.md", DisplayName: "Quarterly Review", IsCustom: true, Aliases: []string{"retro"}},
	}

	// Filename disabled: "q3" only appears in the filename.
	out := ForLink(records, "q3", Policy{IncludeFilename: false, IncludeAliases: true})
	if len(out) != 1 || out[0].Kind != KindNoMatch {
		t.Fatalf("expected sentinel with filename matching off, got %+v", out)
	}

	// Aliases disabled: "retro" only appears as an alias.
	out = ForLink(records, "retro", Policy{IncludeFilename: true, IncludeAliases: false})
	if len(out) != 1 || out[0].Kind != KindNoMatch {
		t.Fatalf("expected sentinel with alias matching off, got %+v", out)
	}

	out = ForLink(records, "retro", allOn())
	if len(out) != 1 || out[0].Kind != KindNote {
		t.Fatalf("expected alias match with aliases on, got %+v", out)
	}
}

func TestForLinkNoMatchSentinel(t *testing.T) {
	records := []display.Record{
		{Path: "/v/a.md", DisplayName: "Alpha"},
	}

	out := ForLink(records, "zzz9", allOn())
	if len(out) != 1 {
		t.Fatalf("expected single sentinel row, got %d", len(out))
	}
	sentinel := out[0]
	if sentinel.Kind != KindNoMatch || sentinel.Display != NoMatchLabel || sentinel.Query != "zzz9" {
		t.Fatalf("unexpected sentinel %+v", sentinel)
	}
	if sentinel.Path != "" {
		t.Fatalf("sentinel must not point at a note, got %q", sentinel.Path)
	}
}

func TestForLinkTieBreakIsLexicographic(t *testing.T) {
	records := []display.Record{
		{Path: "/v/b.md", DisplayName: "note beta"},
		{Path: "/v/a.md", DisplayName: "note alpha"},
	}

	for i := 0; i < 10; i++ {
		out := ForLink(records, "note", allOn())
		if len(out) != 2 {
			t.Fatalf("expected two matches, got %d", len(out))
		}
		if out[0].Display != "note alpha" || out[1].Display != "note beta" {
			t.Fatalf("expected deterministic lexicographic order, got %q then %q",
				out[0].Display, out[1].Display)
		}
	}
}

func TestForSwitcherEmptyQueryReturnsRecents(t *testing.T) {
	records := []display.Record{
		{Path: "/v/a.md", DisplayName: "Alpha"},
		{Path: "/v/b.md", DisplayName: "Beta"},
		{Path: "/v/c.md", DisplayName: "Gamma"},
	}
	recents := []string{"/v/c.md", "/v/a.md", "/v/missing.md"}

	out := ForSwitcher(records, "", allOn(), recents, Limits{Recent: 10})
	if len(out) != 2 {
		t.Fatalf("expected two recents with dangling entry skipped, got %d", len(out))
	}
	if out[0].Path != "/v/c.md" || out[1].Path != "/v/a.md" {
		t.Fatalf("expected recency order preserved, got %+v", out)
	}
	if out[0].Score != out[1].Score {
		t.Fatalf("expected uniform recent score, got %d and %d", out[0].Score, out[1].Score)
	}
}

func TestForSwitcherRecentLimit(t *testing.T) {
	records := []display.Record{
		{Path: "/v/a.md", DisplayName: "Alpha"},
		{Path: "/v/b.md", DisplayName: "Beta"},
		{Path: "/v/c.md", DisplayName: "Gamma"},
	}
	recents := []string{"/v/a.md", "/v/b.md", "/v/c.md"}

	out := ForSwitcher(records, "", allOn(), recents, Limits{Recent: 2})
	if len(out) != 2 {
		t.Fatalf("expected recent list capped at 2, got %d", len(out))
	}
}

func TestForSwitcherHighlightsTitleMatches(t *testing.T) {
	records := []display.Record{
		{Path: "/v/proj.md", DisplayName: "Project Roadmap", IsCustom: true},
		{Path: "/v/groceries.md", DisplayName: "Groceries"},
	}

	out := ForSwitcher(records, "roadmap", allOn(), nil, Limits{})
	if len(out) == 0 {
		t.Fatalf("expected a match for roadmap")
	}
	top := out[0]
	if top.Path != "/v/proj.md" {
		t.Fatalf("expected roadmap note first, got %+v", top)
	}
	if !top.Reason.Title {
		t.Fatalf("expected title reason, got %+v", top.Reason)
	}
	if len(top.Matched) == 0 {
		t.Fatalf("expected matched indexes for highlighting")
	}
	for _, i := range top.Matched {
		if i < 0 || i >= len(top.Display) {
			t.Fatalf("matched index %d out of range for %q", i, top.Display)
		}
	}
}

func TestForSwitcherExactMatchWinsOverFuzzy(t *testing.T) {
	records := []display.Record{
		{Path: "/v/plan.md", DisplayName: "Plan"},
		{Path: "/v/planning.md", DisplayName: "Planning the Plan of Plans"},
	}

	out := ForSwitcher(records, "plan", allOn(), nil, Limits{})
	if len(out) < 2 {
		t.Fatalf("expected both notes to match, got %d", len(out))
	}
	if out[0].Path != "/v/plan.md" {
		t.Fatalf("expected exact title first, got %+v", out[0])
	}
}

func TestForSwitcherAliasOnlySortsBelowTitleMatches(t *testing.T) {
	records := []display.Record{
		{Path: "/v/standup.md", DisplayName: "standup notes"},
		{Path: "/v/sync.md", DisplayName: "Weekly Sync", Aliases: []string{"standup"}},
	}

	out := ForSwitcher(records, "standup", allOn(), nil, Limits{})
	if len(out) != 2 {
		t.Fatalf("expected two matches, got %d", len(out))
	}
	if out[0].Path != "/v/standup.md" {
		t.Fatalf("expected title match above alias-only match, got %+v", out)
	}
	if !out[1].Reason.Alias || out[1].Reason.Title {
		t.Fatalf("expected alias-only reason on second row, got %+v", out[1].Reason)
	}
}

func TestForSwitcherCreateEntryWhenNothingMatches(t *testing.T) {
	records := []display.Record{
		{Path: "/v/a.md", DisplayName: "Alpha"},
	}

	out := ForSwitcher(records, "zzz9", allOn(), nil, Limits{})
	if len(out) != 1 {
		t.Fatalf("expected single create row, got %d", len(out))
	}
	create := out[0]
	if create.Kind != KindCreate || create.Display != "zzz9" || create.Query != "zzz9" {
		t.Fatalf("unexpected create row %+v", create)
	}
}

func TestForSwitcherMaxResultsTruncates(t *testing.T) {
	records := make([]display.Record, 0, 20)
	names := []string{
		"note alpha", "note beta", "note gamma", "note delta", "note epsilon",
		"note zeta", "note eta", "note theta", "note iota", "note kappa",
	}
	for i, name := range names {
		records = append(records, display.Record{
			Path:        "/v/" + name + ".md",
			DisplayName: name,
			IsCustom:    i%2 == 0,
		})
	}

	out := ForSwitcher(records, "note", allOn(), nil, Limits{MaxResults: 3})
	if len(out) != 3 {
		t.Fatalf("expected truncation to 3 rows, got %d", len(out))
	}
}

func TestForSwitcherFilenameMatchRespectsPolicy(t *testing.T) {
	records := []display.Record{
		{Path: "/v/2024-07-01.md", DisplayName: "Monday Standup", IsCustom: true},
	}

	out := ForSwitcher(records, "2024", Policy{IncludeFilename: true}, nil, Limits{})
	if len(out) != 1 || !out[0].Reason.Filename {
		t.Fatalf("expected filename match, got %+v", out)
	}

	out = ForSwitcher(records, "2024", Policy{IncludeFilename: false}, nil, Limits{})
	if len(out) != 1 || out[0].Kind != KindCreate {
		t.Fatalf("expected create row with filename matching off, got %+v", out)
	}
}
