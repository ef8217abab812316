package service

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggester proposes known structure IDs for queries that missed the
// database, and filters the ID list for incremental search.
type Suggester struct {
	ids []string
}

func NewSuggester(ids []string) *Suggester {
	return &Suggester{ids: append([]string(nil), ids...)}
}

// Nearest returns the closest known ID to query. A candidate qualifies when
// its edit distance stays under 40% of the longer string, mirroring the usual
// fuzzy-match cutoff for short identifiers.
func (s *Suggester) Nearest(query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}
	best := ""
	bestDist := -1
	for _, id := range s.ids {
		dist := levenshtein.ComputeDistance(q, strings.ToLower(id))
		maxLen := len(q)
		if len(id) > maxLen {
			maxLen = len(id)
		}
		if maxLen == 0 || float64(dist)/float64(maxLen) >= 0.4 {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			best, bestDist = id, dist
		}
	}
	return best, bestDist != -1
}

// Filter returns the IDs containing the query as a substring, best matches
// (prefix hits, then shorter IDs) first. An empty query returns all IDs.
func (s *Suggester) Filter(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]string, 0, len(s.ids))
	for _, id := range s.ids {
		if q == "" || strings.Contains(strings.ToLower(id), q) {
			out = append(out, id)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi := strings.HasPrefix(strings.ToLower(out[i]), q)
		pj := strings.HasPrefix(strings.ToLower(out[j]), q)
		if pi != pj {
			return pi
		}
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}
