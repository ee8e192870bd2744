package usecase

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/adrg/strutil/metrics"
)

// Scorer finds the candidate most similar to a query on a 0-100 scale
type Scorer interface {
	ExtractOne(query string, choices []string) (match string, score int, ok bool)
}

// Weights applied to the secondary ratios. These are thefuzz's WRatio scales;
// the token-set variants and the scale for very long strings are left out.
const (
	tokenSortScale  = 0.95
	partialScale    = 0.90
	partialMinRatio = 1.5 // length ratio from which partial matching kicks in
)

var nonWordRegex = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// indel is an edit distance without substitutions: a replaced rune costs one
// deletion plus one insertion.
var indel = &metrics.Levenshtein{
	CaseSensitive: true,
	InsertCost:    1,
	DeleteCost:    1,
	ReplaceCost:   2,
}

// WeightedRatio is the default Scorer. It combines the indel similarity ratio
// with token-sorted and partial variants and keeps the best.
type WeightedRatio struct{}

// ExtractOne returns the highest scoring choice. Ties keep the earliest choice.
func (WeightedRatio) ExtractOne(query string, choices []string) (string, int, bool) {
	best, bestScore, found := "", -1, false
	for _, choice := range choices {
		score := WRatio(query, choice)
		if score > bestScore {
			best, bestScore, found = choice, score, true
		}
	}
	if !found {
		return "", 0, false
	}
	return best, bestScore, true
}

// WRatio scores two strings 0-100 after lower-casing and stripping punctuation.
// Strings equal after processing score exactly 100.
func WRatio(a, b string) int {
	pa, pb := processString(a), processString(b)
	if pa == "" || pb == "" {
		return 0
	}
	if pa == pb {
		return 100
	}

	best := ratio(pa, pb)
	best = math.Max(best, ratio(sortTokens(pa), sortTokens(pb))*tokenSortScale)

	la, lb := utf8.RuneCountInString(pa), utf8.RuneCountInString(pb)
	if float64(max(la, lb))/float64(min(la, lb)) >= partialMinRatio {
		best = math.Max(best, partialRatio(pa, pb)*partialScale)
	}

	score := int(math.Round(best))
	// only identical strings may claim a perfect score
	if score >= 100 {
		score = 99
	}
	return score
}

// processString lower-cases s and collapses non-alphanumerics to single spaces
func processString(s string) string {
	s = nonWordRegex.ReplaceAllString(strings.ToLower(s), " ")
	return strings.TrimSpace(s)
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// ratio is 100 * (1 - indel distance / combined length)
func ratio(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 0
	}
	d := indel.Distance(a, b)
	return 100 * (1 - float64(d)/float64(total))
}

// partialRatio slides the shorter string over the longer one and keeps the best window
func partialRatio(a, b string) float64 {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}

	best := 0.0
	for i := 0; i+len(short) <= len(long); i++ {
		r := ratio(string(short), string(long[i:i+len(short)]))
		if r > best {
			best = r
		}
		if best == 100 {
			break
		}
	}
	return best
}
