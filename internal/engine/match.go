package engine

import (
	"regexp"
	"strings"

	"larder/internal/models"
)

// MatchKind tags the confidence tier a match came from.
type MatchKind int

const (
	// MatchNone means no inventory entry matched at any tier.
	MatchNone MatchKind = iota
	// MatchExact covers identical normalized names and word-boundary
	// containment ("black beans" against "black beans (dried)").
	MatchExact
	// MatchSubstituted means a rewrite rule or loose descriptor-stripping
	// pass was needed before an entry matched.
	MatchSubstituted
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchSubstituted:
		return "substituted"
	default:
		return "none"
	}
}

// MatchResult is the outcome of matching one ingredient name against an
// inventory. Entry points into the caller's slice and is nil for MatchNone;
// Original carries the query as given when a substitution fired.
type MatchResult struct {
	Kind     MatchKind
	Entry    *models.InventoryEntry
	Original string
}

// descriptors is the closed list of preparation/state words stripped from
// the ends of an ingredient name during normalization.
var descriptors = map[string]struct{}{
	"chopped": {}, "diced": {}, "sliced": {}, "minced": {}, "crushed": {},
	"ground": {}, "grated": {}, "shredded": {}, "melted": {}, "softened": {},
	"beaten": {}, "peeled": {}, "pitted": {}, "cooked": {}, "drained": {},
	"rinsed": {}, "packed": {}, "heaping": {}, "fresh": {}, "dried": {},
	"frozen": {}, "whole": {}, "large": {}, "small": {}, "medium": {},
	"ripe": {}, "optional": {},
}

// looseAdjectives extends descriptors with variety and color qualifiers for
// the last-resort stripping pass. These are deliberately NOT stripped during
// normalization: "yellow onion" must fail the exact tiers first so the
// substitution rules get to record it as a substitution.
var looseAdjectives = map[string]struct{}{
	"yellow": {}, "white": {}, "red": {}, "green": {}, "orange": {},
	"purple": {}, "black": {}, "brown": {}, "sweet": {}, "hot": {},
	"spicy": {}, "mild": {}, "baby": {}, "organic": {}, "raw": {},
	"plain": {}, "light": {}, "dark": {}, "extra": {}, "virgin": {},
	"italian": {}, "thai": {}, "roma": {}, "unsalted": {}, "salted": {},
}

// substitutionRule rewrites a qualified ingredient name to a more generic
// pantry-matchable one. Rules are ordered; the first one that changes the
// query wins.
type substitutionRule struct {
	pattern     *regexp.Regexp
	replacement string
}

var substitutionRules = []substitutionRule{
	// Scallions first: the generic onion-variety rule below would otherwise
	// claim "green onion".
	{regexp.MustCompile(`^(?:green|spring) onions?$`), "scallion"},
	{regexp.MustCompile(`^(?:yellow|white|red|sweet|spanish|pearl) (onions?)$`), "$1"},
	{regexp.MustCompile(`^extra[ -]virgin olive oil$`), "olive oil"},
	{regexp.MustCompile(`^(?:unsalted|salted|clarified) butter$`), "butter"},
	{regexp.MustCompile(`^(?:granulated|caster|superfine|white) sugar$`), "sugar"},
	{regexp.MustCompile(`^(?:all[ -]purpose|plain) flour$`), "flour"},
	{regexp.MustCompile(`^(?:roma|plum|cherry|grape|vine) (tomato(?:es)?)$`), "$1"},
	{regexp.MustCompile(`^(?:red|green|yellow|orange) (bell peppers?)$`), "$1"},
	{regexp.MustCompile(`^(?:skim|whole|low[ -]fat|2%) milk$`), "milk"},
	{regexp.MustCompile(`^(?:kosher|sea|table|coarse) salt$`), "salt"},
	{regexp.MustCompile(`^(?:black|white) pepper$`), "pepper"},
}

var parentheticalRe = regexp.MustCompile(`\([^)]*\)`)

// NormalizeName lowercases an ingredient name, drops parenthetical
// qualifiers and comma-appended preparation notes, and strips descriptor
// words from both ends.
func NormalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = parentheticalRe.ReplaceAllString(s, " ")
	if i := strings.Index(s, ","); i >= 0 {
		s = s[:i]
	}

	words := strings.Fields(s)
	for len(words) > 0 {
		if _, ok := descriptors[words[0]]; !ok {
			break
		}
		words = words[1:]
	}
	for len(words) > 0 {
		if _, ok := descriptors[words[len(words)-1]]; !ok {
			break
		}
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

// singular collapses trailing-s plurals; short words and -ss words
// ("couscous" would survive either way, "ss" guards "molasses") are left
// alone.
func singular(w string) string {
	if len(w) > 3 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") {
		return w[:len(w)-1]
	}
	return w
}

func singularWords(s string) []string {
	fields := strings.Fields(s)
	out := make([]string, len(fields))
	for i, w := range fields {
		out[i] = singular(w)
	}
	return out
}

// wordMatches reports whether a query word counts as present for a
// candidate word: equal, or an unambiguous stem prefix of at least
// minStem characters in either direction.
func wordMatches(qw, cw string, minStem int) bool {
	if qw == cw {
		return true
	}
	if len(qw) >= minStem && strings.HasPrefix(cw, qw) {
		return true
	}
	if len(cw) >= minStem && strings.HasPrefix(qw, cw) {
		return true
	}
	return false
}

// containsAllWords reports whether every query word appears in the
// candidate's word set.
func containsAllWords(qWords, cWords []string, minStem int) bool {
	if len(qWords) == 0 {
		return false
	}
	for _, qw := range qWords {
		found := false
		for _, cw := range cWords {
			if wordMatches(qw, cw, minStem) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// reverseWordHit is the stricter secondary check: every inventory word
// longer than three characters is exactly present in the query. Single-word
// inventory names are excluded; a qualified query against a bare noun
// ("yellow onion" vs "onion") belongs to the substitution tier, not here.
func reverseWordHit(qWords, cWords []string) bool {
	if len(cWords) < 2 {
		return false
	}
	hit := false
	for _, cw := range cWords {
		if len(cw) <= 3 {
			continue
		}
		found := false
		for _, qw := range qWords {
			if qw == cw {
				found = true
				break
			}
		}
		if !found {
			return false
		}
		hit = true
	}
	return hit
}

type matchCandidate struct {
	entry *models.InventoryEntry
	norm  string
	words []string
}

func buildCandidates(inventory []models.InventoryEntry) []matchCandidate {
	cands := make([]matchCandidate, 0, len(inventory))
	for i := range inventory {
		norm := NormalizeName(inventory[i].Name)
		if norm == "" {
			continue
		}
		cands = append(cands, matchCandidate{
			entry: &inventory[i],
			norm:  norm,
			words: singularWords(norm),
		})
	}
	return cands
}

// matchAgainst runs the exact and containment tiers for one normalized
// query string.
func matchAgainst(norm string, cands []matchCandidate, minStem int) *models.InventoryEntry {
	qWords := singularWords(norm)
	for _, c := range cands {
		if c.norm == norm {
			return c.entry
		}
	}
	for _, c := range cands {
		if containsAllWords(qWords, c.words, minStem) || reverseWordHit(qWords, c.words) {
			return c.entry
		}
	}
	return nil
}

// FindMatch matches a recipe ingredient name against an inventory using an
// ordered confidence ladder: exact/containment first, then substitution
// rules, then a loose descriptor-stripping pass. Stronger tiers always run
// first so an aggressive rewrite cannot mask a better direct candidate.
func FindMatch(query string, inventory []models.InventoryEntry) MatchResult {
	nq := NormalizeName(query)
	if nq == "" {
		return MatchResult{Kind: MatchNone}
	}
	cands := buildCandidates(inventory)

	if entry := matchAgainst(nq, cands, 3); entry != nil {
		return MatchResult{Kind: MatchExact, Entry: entry}
	}

	for _, rule := range substitutionRules {
		sub := rule.pattern.ReplaceAllString(nq, rule.replacement)
		if sub == nq {
			continue
		}
		if entry := matchAgainst(sub, cands, 3); entry != nil {
			return MatchResult{Kind: MatchSubstituted, Entry: entry, Original: query}
		}
	}

	if stripped := stripLooseAdjectives(nq); len(stripped) > 2 && stripped != nq {
		if entry := matchAgainst(stripped, cands, 2); entry != nil {
			return MatchResult{Kind: MatchSubstituted, Entry: entry, Original: query}
		}
	}

	return MatchResult{Kind: MatchNone}
}

// stripLooseAdjectives removes generic adjectives from both ends of an
// already-normalized name.
func stripLooseAdjectives(norm string) string {
	words := strings.Fields(norm)
	isLoose := func(w string) bool {
		if _, ok := looseAdjectives[w]; ok {
			return true
		}
		_, ok := descriptors[w]
		return ok
	}
	for len(words) > 0 && isLoose(words[0]) {
		words = words[1:]
	}
	for len(words) > 0 && isLoose(words[len(words)-1]) {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}
