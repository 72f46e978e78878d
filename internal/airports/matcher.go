package airports

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/dzair-travel/skyflow/internal/domain"
)

const maxResults = 10

// matchThreshold is the highest normalized edit distance still accepted.
// One-character typos in a four-letter word pass; unrelated strings do not.
const matchThreshold = 0.34

type weightedField struct {
	value  func(*domain.Airport) string
	weight float64
}

var searchFields = []weightedField{
	{func(a *domain.Airport) string { return a.IATACode }, 2.0},
	{func(a *domain.Airport) string { return a.City }, 1.5},
	{func(a *domain.Airport) string { return a.Name }, 1.0},
	{func(a *domain.Airport) string { return a.Country }, 0.5},
}

// Matcher resolves free-text queries to ranked airport candidates. The
// directory is read-only after construction, so Search is safe to call from
// any number of goroutines without locking.
type Matcher struct {
	directory   []domain.Airport
	byIATA      map[string]domain.Airport
	homeCountry string
}

func NewMatcher(directory []domain.Airport, homeCountry string) *Matcher {
	byIATA := make(map[string]domain.Airport, len(directory))
	for _, a := range directory {
		byIATA[a.IATACode] = a
	}
	return &Matcher{directory: directory, byIATA: byIATA, homeCountry: homeCountry}
}

// ByIATA looks up a single airport by its three-letter code.
func (m *Matcher) ByIATA(code string) (domain.Airport, bool) {
	a, ok := m.byIATA[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// Search returns up to ten candidates, best match first. An empty query
// yields the home-country airports in directory order, topped up from the
// rest of the directory.
func (m *Matcher) Search(query string) []domain.Airport {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return m.popular()
	}

	type scored struct {
		airport domain.Airport
		score   float64
	}

	candidates := make([]scored, 0, maxResults)
	for _, a := range m.directory {
		best := math.Inf(1)
		for _, f := range searchFields {
			cost, ok := fieldCost(query, strings.ToLower(f.value(&a)))
			if !ok {
				continue
			}
			if s := cost / f.weight; s < best {
				best = s
			}
		}
		if !math.IsInf(best, 1) {
			candidates = append(candidates, scored{airport: a, score: best})
		}
	}

	// Stable: equal scores keep directory order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score < candidates[j].score
	})

	n := len(candidates)
	if n > maxResults {
		n = maxResults
	}
	results := make([]domain.Airport, 0, n)
	for _, c := range candidates[:n] {
		results = append(results, c.airport)
	}
	return results
}

func (m *Matcher) popular() []domain.Airport {
	results := make([]domain.Airport, 0, maxResults)
	for _, a := range m.directory {
		if a.CountryCode == m.homeCountry {
			results = append(results, a)
			if len(results) == maxResults {
				return results
			}
		}
	}
	for _, a := range m.directory {
		if a.CountryCode != m.homeCountry {
			results = append(results, a)
			if len(results) == maxResults {
				return results
			}
		}
	}
	return results
}

// fieldCost grades how well query matches value; lower is better. Exact
// matches cost 0, prefixes and substrings a small fixed cost, anything else
// falls back to word-level edit distance normalized by word length.
func fieldCost(query, value string) (float64, bool) {
	if value == "" {
		return 0, false
	}
	if value == query {
		return 0, true
	}
	if strings.HasPrefix(value, query) {
		return 0.1, true
	}

	best := math.Inf(1)
	for _, word := range strings.FieldsFunc(value, func(r rune) bool { return r == ' ' || r == '-' }) {
		if strings.HasPrefix(word, query) {
			if 0.15 < best {
				best = 0.15
			}
			continue
		}
		longer := len([]rune(word))
		if l := len([]rune(query)); l > longer {
			longer = l
		}
		norm := float64(levenshtein.ComputeDistance(query, word)) / float64(longer)
		if norm < best {
			best = norm
		}
	}
	if strings.Contains(value, query) && 0.25 < best {
		best = 0.25
	}

	if best > matchThreshold {
		return 0, false
	}
	return best, true
}
