package suggest

import (
	"log"
	"sort"
	"strings"

	sahilm "github.com/sahilm/fuzzy"

	"github.com/Paintersrp/lens/internal/display"
	"github.com/Paintersrp/lens/internal/fuzzy"
	"github.com/Paintersrp/lens/internal/vault"
)

// Kind discriminates real notes from the two synthetic rows the engine can
// emit: the non-selectable "no matches" sentinel and the "create new note"
// entry carrying the literal query.
type Kind int

const (
	KindNote Kind = iota
	KindNoMatch
	KindCreate
)

// Reason records which fields matched the query. It exists for presentation
// (icon selection) only and is recomputed on every call.
type Reason struct {
	Title    bool
	Filename bool
	Alias    bool
}

// Policy is the per-call search configuration. It is read fresh on every
// query rather than cached.
type Policy struct {
	IncludeFilename bool
	IncludeAliases  bool
}

// Limits bounds switcher output.
type Limits struct {
	Recent     int
	MaxResults int
}

// Suggestion is one ranked row. Matched holds rune indexes into Display for
// highlight rendering and is only set for structured title matches.
type Suggestion struct {
	Kind     Kind
	Path     string
	Display  string
	IsCustom bool
	Score    int
	Reason   Reason
	Matched  []int
	Query    string
}

// NoMatchLabel is the sentinel row text for a query that matched nothing.
const NoMatchLabel = "No matches found"

const (
	recentScore    = 500
	aliasOnlyScore = -100
	exactBoost     = 10000
)

// ForLink ranks records against a live link-completion query. Empty queries
// match everything; a non-empty query with no matches yields the single
// sentinel row. A panic while scoring is contained here: the engine logs and
// returns nothing rather than taking the caller down.
func ForLink(records []display.Record, query string, pol Policy) (out []Suggestion) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("suggest: link query %q failed: %v", query, r)
			out = nil
		}
	}()

	out = make([]Suggestion, 0, len(records))
	for _, rec := range records {
		base := vault.Basename(rec.Path)

		var reason Reason
		if query != "" {
			reason.Title = fuzzy.Match(rec.DisplayName, query)
			reason.Filename = pol.IncludeFilename &&
				base != rec.DisplayName &&
				fuzzy.Match(base, query)
			reason.Alias = pol.IncludeAliases && anyAliasMatches(rec.Aliases, query)

			if !reason.Title && !reason.Filename && !reason.Alias {
				continue
			}
		}

		out = append(out, Suggestion{
			Kind:     KindNote,
			Path:     rec.Path,
			Display:  rec.DisplayName,
			IsCustom: rec.IsCustom,
			Score:    fuzzy.Score(rec.DisplayName, query, base, pol.IncludeFilename),
			Reason:   reason,
		})
	}

	if len(out) == 0 && query != "" {
		return []Suggestion{{Kind: KindNoMatch, Display: NoMatchLabel, Query: query}}
	}

	sortSuggestions(out)
	return out
}

// ForSwitcher ranks records for the quick switcher. An empty query returns
// the recent files, in recency order, with a uniform score and no filtering.
// Otherwise the structured fuzzy primitive ranks titles and filenames and
// reports matched rune positions, with the subsequence matcher as the alias
// fallback; alias-only hits carry a placeholder score that sorts below any
// genuine title match. An empty result set becomes one "create" entry.
func ForSwitcher(
	records []display.Record,
	query string,
	pol Policy,
	recents []string,
	lim Limits,
) (out []Suggestion) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("suggest: switcher query %q failed: %v", query, r)
			out = nil
		}
	}()

	if lim.Recent <= 0 {
		lim.Recent = 10
	}

	if query == "" {
		return recentSuggestions(records, recents, lim.Recent)
	}

	displays := make([]string, len(records))
	basenames := make([]string, len(records))
	for i, rec := range records {
		displays[i] = rec.DisplayName
		basenames[i] = vault.Basename(rec.Path)
	}

	titleMatches := make(map[int]sahilm.Match, len(records))
	for _, m := range sahilm.Find(query, displays) {
		titleMatches[m.Index] = m
	}

	nameMatches := make(map[int]sahilm.Match)
	if pol.IncludeFilename {
		for _, m := range sahilm.Find(query, basenames) {
			if basenames[m.Index] != displays[m.Index] {
				nameMatches[m.Index] = m
			}
		}
	}

	out = make([]Suggestion, 0, len(titleMatches)+len(nameMatches))
	for i, rec := range records {
		title, hasTitle := titleMatches[i]
		name, hasName := nameMatches[i]
		hasAlias := pol.IncludeAliases && anyAliasMatches(rec.Aliases, query)

		if !hasTitle && !hasName && !hasAlias {
			continue
		}

		sug := Suggestion{
			Kind:     KindNote,
			Path:     rec.Path,
			Display:  rec.DisplayName,
			IsCustom: rec.IsCustom,
			Reason:   Reason{Title: hasTitle, Filename: hasName, Alias: hasAlias},
		}

		switch {
		case hasTitle:
			sug.Score = title.Score
			sug.Matched = title.MatchedIndexes
			if strings.EqualFold(rec.DisplayName, query) {
				sug.Score += exactBoost
			}
		case hasName:
			sug.Score = name.Score
			if strings.EqualFold(basenames[i], query) {
				sug.Score += exactBoost
			}
		default:
			sug.Score = aliasOnlyScore
		}

		out = append(out, sug)
	}

	if len(out) == 0 {
		return []Suggestion{{Kind: KindCreate, Display: query, Query: query}}
	}

	sortSuggestions(out)
	if lim.MaxResults > 0 && len(out) > lim.MaxResults {
		out = out[:lim.MaxResults]
	}
	return out
}

func recentSuggestions(records []display.Record, recents []string, limit int) []Suggestion {
	byPath := make(map[string]display.Record, len(records))
	for _, rec := range records {
		byPath[rec.Path] = rec
	}

	out := make([]Suggestion, 0, limit)
	for _, path := range recents {
		rec, ok := byPath[path]
		if !ok {
			// Recency entries can outlive their notes; skip dangling ones.
			continue
		}
		out = append(out, Suggestion{
			Kind:     KindNote,
			Path:     rec.Path,
			Display:  rec.DisplayName,
			IsCustom: rec.IsCustom,
			Score:    recentScore,
		})
		if len(out) == limit {
			break
		}
	}
	return out
}

func anyAliasMatches(aliases []string, query string) bool {
	for _, alias := range aliases {
		if fuzzy.Match(alias, query) {
			return true
		}
	}
	return false
}

// sortSuggestions orders by score descending with an explicit ascending
// lexicographic tie-break on display text, so equal scores never depend on
// map iteration order.
func sortSuggestions(out []Suggestion) {
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Display < out[j].Display
	})
}
