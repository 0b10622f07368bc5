package wordlist

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	// MaxSuggestions is how many alternatives Lookup offers for a typo.
	MaxSuggestions = 3

	prefixRunes = 4
	maxDistance = 3
)

// Suggest ranks up to limit words close to word: first words sharing its first
// four characters in list order, then words within edit distance 3, nearest
// first and alphabetical among equals.
func (wl *WordList) Suggest(word string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	word = normalize(word)
	seen := make(map[string]bool)
	var out []string

	if r := []rune(word); len(r) >= prefixRunes {
		prefix := string(r[:prefixRunes])
		for _, w := range wl.words {
			if len(out) == limit {
				return out
			}
			if strings.HasPrefix(normalize(w), prefix) {
				out = append(out, w)
				seen[w] = true
			}
		}
	}
	if len(out) == limit {
		return out
	}

	type candidate struct {
		word string
		dist int
	}
	var near []candidate
	for _, w := range wl.words {
		if seen[w] {
			continue
		}
		if d := levenshtein.ComputeDistance(word, normalize(w)); d <= maxDistance {
			near = append(near, candidate{word: w, dist: d})
		}
	}
	sort.Slice(near, func(i, j int) bool {
		if near[i].dist != near[j].dist {
			return near[i].dist < near[j].dist
		}
		return near[i].word < near[j].word
	})
	for _, c := range near {
		if len(out) == limit {
			break
		}
		out = append(out, c.word)
	}
	return out
}
