package fzf

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/lens/internal/display"
	"github.com/Paintersrp/lens/internal/vault"
)

// FuzzyFinder presents the vault's notes by display name with a markdown
// preview. Candidates come from a display index snapshot, so what the user
// sees and filters on is the configured property, not the filename.
type FuzzyFinder struct {
	Header  string
	records []display.Record
}

func NewFuzzyFinder(snapshot *display.Index, header string) *FuzzyFinder {
	return &FuzzyFinder{
		Header:  header,
		records: snapshot.Records(),
	}
}

// Run presents the finder and returns the selected note's path.
func (f *FuzzyFinder) Run() (string, error) {
	return f.find("")
}

// RunWithQuery presents the finder pre-filled with query.
func (f *FuzzyFinder) RunWithQuery(query string) (string, error) {
	return f.find(query)
}

func (f *FuzzyFinder) find(query string) (string, error) {
	if len(f.records) == 0 {
		return "", fmt.Errorf("no notes in vault")
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderMarkdownPreview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := fuzzyfinder.Find(f.records, func(i int) string {
		return f.labelFor(f.records[i])
	}, options...)
	if err != nil {
		return "", err
	}

	return f.records[idx].Path, nil
}

// labelFor renders one candidate line: the display name, with the filename
// alongside when the note carries a custom display property, and any aliases.
func (f *FuzzyFinder) labelFor(rec display.Record) string {
	label := rec.DisplayName
	if rec.IsCustom {
		label = fmt.Sprintf("%s (%s.md)", rec.DisplayName, vault.Basename(rec.Path))
	}
	if len(rec.Aliases) > 0 {
		label = fmt.Sprintf("%s [aka: %s]", label, strings.Join(rec.Aliases, ", "))
	}
	return label
}

func (f *FuzzyFinder) renderMarkdownPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	content, err := os.ReadFile(f.records[i].Path)
	if err != nil {
		return "Error reading file"
	}

	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(100),
		glamour.WithColorProfile(termenv.ANSI256),
	)

	markdown, err := r.Render(string(content))
	if err != nil {
		return "Error rendering markdown"
	}

	return markdown
}

// IsAbort reports whether err is the finder's "user backed out" error, which
// callers treat as a no-op rather than a failure.
func IsAbort(err error) bool {
	return err == fuzzyfinder.ErrAbort
}
