package display

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Paintersrp/lens/internal/vault"
)

func writeTestNote(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func buildIndex(t *testing.T, dir, property string) *Index {
	t.Helper()
	idx := NewIndex(vault.New(dir, nil), property)
	if err := idx.Rebuild(); err != nil {
		t.Fatalf("Rebuild returned error: %v", err)
	}
	return idx
}

func TestRebuildDerivesCustomAndFallbackNames(t *testing.T) {
	dir := t.TempDir()
	custom := writeTestNote(t, dir, "note-a.md", "---\ntitle: My Custom Title\n---\n")
	plain := writeTestNote(t, dir, "note-b.md", "Body only.\n")

	idx := buildIndex(t, dir, "title")

	rec, ok := idx.Get(custom)
	if !ok {
		t.Fatalf("expected record for %s", custom)
	}
	if rec.DisplayName != "My Custom Title" || !rec.IsCustom {
		t.Fatalf("expected custom display name, got %+v", rec)
	}

	rec, ok = idx.Get(plain)
	if !ok {
		t.Fatalf("expected record for %s", plain)
	}
	if rec.DisplayName != "note-b" || rec.IsCustom {
		t.Fatalf("expected basename fallback, got %+v", rec)
	}
}

func TestDeriveTrimsAndIgnoresWhitespaceOnlyProperty(t *testing.T) {
	dir := t.TempDir()
	padded := writeTestNote(t, dir, "padded.md", "---\ntitle: '  Padded Title  '\n---\n")
	blank := writeTestNote(t, dir, "blank.md", "---\ntitle: '   '\n---\n")

	idx := buildIndex(t, dir, "title")

	rec, _ := idx.Get(padded)
	if rec.DisplayName != "Padded Title" || !rec.IsCustom {
		t.Fatalf("expected trimmed custom name, got %+v", rec)
	}

	rec, _ = idx.Get(blank)
	if rec.DisplayName != "blank" || rec.IsCustom {
		t.Fatalf("expected whitespace-only value to fall back, got %+v", rec)
	}
}

func TestDeriveRespectsConfiguredProperty(t *testing.T) {
	dir := t.TempDir()
	note := writeTestNote(t, dir, "note.md", "---\ntitle: Title Value\nheadline: Headline Value\n---\n")

	idx := buildIndex(t, dir, "headline")

	rec, _ := idx.Get(note)
	if rec.DisplayName != "Headline Value" {
		t.Fatalf("expected headline property to win, got %+v", rec)
	}
}

func TestDeriveNormalizesAliases(t *testing.T) {
	dir := t.TempDir()
	note := writeTestNote(t, dir, "note.md", "---\ntitle: T\naliases:\n  - ' first '\n  - ''\n  - second\n---\n")

	idx := buildIndex(t, dir, "title")

	rec, _ := idx.Get(note)
	if len(rec.Aliases) != 2 || rec.Aliases[0] != "first" || rec.Aliases[1] != "second" {
		t.Fatalf("expected trimmed aliases with empties dropped, got %v", rec.Aliases)
	}
}

func TestMalformedFrontMatterFallsBackToBasename(t *testing.T) {
	dir := t.TempDir()
	note := writeTestNote(t, dir, "broken.md", "---\ntitle: [oops\n---\n")

	idx := buildIndex(t, dir, "title")

	rec, ok := idx.Get(note)
	if !ok {
		t.Fatalf("expected record despite malformed front matter")
	}
	if rec.DisplayName != "broken" || rec.IsCustom {
		t.Fatalf("expected basename fallback, got %+v", rec)
	}
}

func TestInvalidateUpdatesSingleRecord(t *testing.T) {
	dir := t.TempDir()
	note := writeTestNote(t, dir, "note.md", "---\ntitle: Before\n---\n")

	idx := buildIndex(t, dir, "title")

	writeTestNote(t, dir, "note.md", "---\ntitle: After\n---\n")
	if err := idx.Invalidate(note); err != nil {
		t.Fatalf("Invalidate returned error: %v", err)
	}

	rec, _ := idx.Get(note)
	if rec.DisplayName != "After" {
		t.Fatalf("expected updated display name, got %+v", rec)
	}

	// Invalidating an unchanged note is a no-op, not an error.
	if err := idx.Invalidate(note); err != nil {
		t.Fatalf("second Invalidate returned error: %v", err)
	}
	rec, _ = idx.Get(note)
	if rec.DisplayName != "After" {
		t.Fatalf("expected stable record after repeat invalidation, got %+v", rec)
	}
}

func TestInvalidateMissingNoteRemovesRecord(t *testing.T) {
	dir := t.TempDir()
	note := writeTestNote(t, dir, "note.md", "---\ntitle: Gone Soon\n---\n")

	idx := buildIndex(t, dir, "title")

	if err := os.Remove(note); err != nil {
		t.Fatalf("remove note: %v", err)
	}
	if err := idx.Invalidate(note); err != nil {
		t.Fatalf("Invalidate returned error: %v", err)
	}

	if _, ok := idx.Get(note); ok {
		t.Fatalf("expected record removed for deleted note")
	}
	if idx.Len() != 0 {
		t.Fatalf("expected empty index, got %d records", idx.Len())
	}
}

func TestInvalidateMatchesRebuild(t *testing.T) {
	dir := t.TempDir()
	note := writeTestNote(t, dir, "note.md", "---\ntitle: Original\n---\n")
	writeTestNote(t, dir, "other.md", "---\ntitle: Untouched\n---\n")

	incremental := buildIndex(t, dir, "title")

	writeTestNote(t, dir, "note.md", "---\ntitle: Edited\n---\n")
	if err := incremental.Invalidate(note); err != nil {
		t.Fatalf("Invalidate returned error: %v", err)
	}

	fresh := buildIndex(t, dir, "title")

	got := incremental.Records()
	want := fresh.Records()
	if len(got) != len(want) {
		t.Fatalf("record count mismatch: %d vs %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Path != want[i].Path || got[i].DisplayName != want[i].DisplayName || got[i].IsCustom != want[i].IsCustom {
			t.Fatalf("record %d diverged: %+v vs %+v", i, got[i], want[i])
		}
	}
}

func TestRebuildEmptyVault(t *testing.T) {
	dir := t.TempDir()
	idx := buildIndex(t, dir, "title")
	if idx.Len() != 0 {
		t.Fatalf("expected empty index, got %d records", idx.Len())
	}
	if got := idx.Records(); len(got) != 0 {
		t.Fatalf("expected no records, got %v", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	dir := t.TempDir()
	note := writeTestNote(t, dir, "note.md", "---\ntitle: Shared\n---\n")

	idx := buildIndex(t, dir, "title")
	clone := idx.Clone()

	idx.Remove(note)
	if _, ok := clone.Get(note); !ok {
		t.Fatalf("expected clone to keep record removed from original")
	}
}

func TestNewIndexEmptyPropertyDefaultsToTitle(t *testing.T) {
	idx := NewIndex(vault.New(t.TempDir(), nil), "  ")
	if idx.Property() != "title" {
		t.Fatalf("expected default property title, got %q", idx.Property())
	}
}
