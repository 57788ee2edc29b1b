package fuzzy

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Score tiers. Each tier must stay strictly above everything a lower tier can
// reach after bonuses, so exact > prefix > contains always holds.
const (
	scoreExact       = 1000
	scoreExactAlt    = 900
	scorePrefix      = 100
	scorePrefixAlt   = 80
	scoreContains    = 50
	scoreContainsAlt = 30

	boundaryBonus = 20
	maxPenalty    = 10
)

// Match reports whether query's characters appear in candidate in order,
// case-insensitively and not necessarily contiguously. An empty query
// matches everything.
func Match(candidate, query string) bool {
	if query == "" {
		return true
	}

	qr := []rune(query)
	qi := 0
	for _, r := range candidate {
		if qi >= len(qr) {
			break
		}
		if unicode.ToLower(r) == unicode.ToLower(qr[qi]) {
			qi++
		}
	}
	return qi == len(qr)
}

// Score ranks candidate against query, higher is better. alt is the
// secondary field (the filename) and only participates when includeAlt is
// set. The result is deterministic; ties are broken by the caller, not here.
func Score(candidate, query, alt string, includeAlt bool) int {
	c := strings.ToLower(candidate)
	q := strings.ToLower(query)
	a := strings.ToLower(alt)

	var score int
	switch {
	case c == q:
		score = scoreExact
	case includeAlt && a == q:
		score = scoreExactAlt
	case strings.HasPrefix(c, q):
		score = scorePrefix
	case includeAlt && strings.HasPrefix(a, q):
		score = scorePrefixAlt
	case strings.Contains(c, q):
		score = scoreContains
	case includeAlt && strings.Contains(a, q):
		score = scoreContainsAlt
	}

	if atWordBoundary(c, q) || (includeAlt && atWordBoundary(a, q)) {
		score += boundaryBonus
	}

	if diff := len(candidate) - len(query); diff > 0 {
		penalty := diff / 2
		if penalty > maxPenalty {
			penalty = maxPenalty
		}
		score -= penalty
	}

	if score < 0 {
		return 0
	}
	return score
}

// atWordBoundary reports whether query occurs in candidate starting at the
// beginning of a word.
func atWordBoundary(candidate, query string) bool {
	if query == "" {
		return false
	}

	offset := 0
	for {
		i := strings.Index(candidate[offset:], query)
		if i < 0 {
			return false
		}
		at := offset + i
		if at == 0 {
			return true
		}
		prev, _ := utf8.DecodeLastRuneInString(candidate[:at])
		if !unicode.IsLetter(prev) && !unicode.IsDigit(prev) {
			return true
		}
		offset = at + 1
		if offset >= len(candidate) {
			return false
		}
	}
}
