package console

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/soradev/custom-cmd/internal/catalog"
	"github.com/soradev/custom-cmd/internal/logging/events"
)

// Complete returns the completed form of a partially typed pseudo-command.
// "cmd <partial>" completes to the closest detail catalog name; a prefix of
// a pseudo-command completes to the pseudo-command itself.
func (c *Console) Complete(input string) (string, bool) {
	line := strings.TrimLeft(input, " ")
	if strings.HasPrefix(line, DetailPrefix) {
		partial := strings.TrimSpace(line[len(DetailPrefix):])
		details, err := c.catalog.Details()
		if err != nil || len(details) == 0 {
			return "", false
		}
		name, ok := bestMatch(partial, catalog.Names(details))
		if !ok || name == partial {
			return "", false
		}
		completed := DetailPrefix + name
		events.Console.Complete(input, completed)
		return completed, true
	}
	if line == "" {
		return "", false
	}
	for _, candidate := range []string{ListCommand, DetailPrefix} {
		if strings.HasPrefix(candidate, line) && candidate != line {
			events.Console.Complete(input, candidate)
			return candidate, true
		}
	}
	return "", false
}

// bestMatch ranks names by fuzzy distance. Names starting with partial win
// over scattered matches; ties keep catalog order.
func bestMatch(partial string, names []string) (string, bool) {
	if partial == "" {
		return "", false
	}
	lower := strings.ToLower(partial)
	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			return name, true
		}
	}
	ranks := fuzzy.RankFindFold(partial, names)
	if len(ranks) == 0 {
		return "", false
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	return ranks[0].Target, true
}
