package l2_service

import (
	"sort"
	"strings"

	"rebalancer/internal/domain"

	"github.com/agnivade/levenshtein"
)

// DefaultFuzzyMatchThreshold is the score a fuzzy match must exceed.
const DefaultFuzzyMatchThreshold = 90.0

var nameSuffixReplacements = map[string]string{
	"Ltd":      "Limited",
	"Ltd.":     "Limited",
	"Limited.": "Limited",
	"Co":       "Company",
	"Co.":      "Company",
	"Company.": "Company",
}

// CleanCompanyName normalises legal suffixes so that "Foo Ltd." and
// "Foo Limited" compare equal.
func CleanCompanyName(name string) string {
	fields := strings.Fields(name)
	for i, f := range fields {
		if replacement, ok := nameSuffixReplacements[f]; ok {
			fields[i] = replacement
		}
	}
	return strings.Join(fields, " ")
}

// SymbolResolver maps free-form company names (as printed in fund
// factsheets) to exchange symbols.
type SymbolResolver struct {
	symbolByName map[string]string
	names        []string
	threshold    float64
}

func NewSymbolResolver(equities []domain.Equity, threshold float64) *SymbolResolver {
	r := &SymbolResolver{
		symbolByName: map[string]string{},
		names:        []string{},
		threshold:    threshold,
	}
	for _, e := range equities {
		cleaned := CleanCompanyName(e.Name)
		if _, ok := r.symbolByName[cleaned]; ok {
			continue
		}
		r.symbolByName[cleaned] = e.Symbol
		r.names = append(r.names, cleaned)
	}
	return r
}

// Resolve tries an exact match, then a case-insensitive substring match,
// then the best fuzzy match above the threshold. Unresolved names are
// returned unchanged.
func (r SymbolResolver) Resolve(name string) string {
	cleaned := CleanCompanyName(name)
	if symbol, ok := r.symbolByName[cleaned]; ok {
		return symbol
	}

	lowered := strings.ToLower(cleaned)
	if lowered != "" {
		for _, companyName := range r.names {
			if strings.Contains(strings.ToLower(companyName), lowered) {
				return r.symbolByName[companyName]
			}
		}
	}

	bestScore := 0.0
	bestSymbol := ""
	for _, companyName := range r.names {
		score := TokenSetRatio(cleaned, companyName)
		if score > bestScore {
			bestScore = score
			bestSymbol = r.symbolByName[companyName]
		}
	}
	if bestScore > r.threshold {
		return bestSymbol
	}

	return name
}

// TokenSetRatio scores two strings from 0 to 100, ignoring word order and
// duplicated words. Shared words are compared against each side's
// remainder so a name that is a word-subset of another scores 100.
func TokenSetRatio(a, b string) float64 {
	tokensA := tokenSet(a)
	tokensB := tokenSet(b)

	intersection := []string{}
	onlyA := []string{}
	onlyB := []string{}
	for t := range tokensA {
		if _, ok := tokensB[t]; ok {
			intersection = append(intersection, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for t := range tokensB {
		if _, ok := tokensA[t]; !ok {
			onlyB = append(onlyB, t)
		}
	}
	sort.Strings(intersection)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(intersection, " ")
	combinedA := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	best := ratio(combinedA, combinedB)
	if base != "" {
		if r := ratio(base, combinedA); r > best {
			best = r
		}
		if r := ratio(base, combinedB); r > best {
			best = r
		}
	}
	return best
}

func tokenSet(s string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, f := range strings.Fields(strings.ToLower(s)) {
		out[f] = struct{}{}
	}
	return out
}

func ratio(a, b string) float64 {
	if a == "" && b == "" {
		return 100
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 100 * (1 - float64(distance)/float64(longest))
}
