package registry

import (
	"sort"
	"strings"

	"github.com/galacticos-fc/ranking-service/internal/domain/roster"
	"github.com/galacticos-fc/ranking-service/internal/mongoexport"
)

// NormalizePosition maps the free-form position strings seen in sheets
// and exports onto draw buckets. Laterals count as defenders and
// pontas as forwards. Anything unrecognized, goalkeepers included,
// lands in the overflow bucket.
func NormalizePosition(raw string) roster.Position {
	pos := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case pos == "":
		return roster.PositionOther
	case strings.Contains(pos, "zag") || strings.Contains(pos, "lateral"):
		return roster.PositionDefender
	case strings.Contains(pos, "mei") || strings.Contains(pos, "volante"):
		return roster.PositionMidfielder
	case strings.Contains(pos, "ata") || strings.Contains(pos, "ponta"):
		return roster.PositionForward
	default:
		return roster.PositionOther
	}
}

// FindPlayer locates a player document by name, tolerating the partial
// names people write on draw sheets. Per document it tries an exact
// match, then whether the document name contains every query word;
// failing the full scan, the first document containing the query's
// first word wins.
func FindPlayer(docs []mongoexport.PlayerDoc, name string) (mongoexport.PlayerDoc, bool) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return mongoexport.PlayerDoc{}, false
	}
	words := strings.Fields(query)

	for _, doc := range docs {
		full := strings.ToLower(doc.Name())
		if full == query || containsAllWords(full, words) {
			return doc, true
		}
	}

	first := words[0]
	for _, doc := range docs {
		if strings.Contains(strings.ToLower(doc.Name()), first) {
			return doc, true
		}
	}

	return mongoexport.PlayerDoc{}, false
}

func containsAllWords(full string, words []string) bool {
	for _, word := range words {
		if !strings.Contains(full, word) {
			return false
		}
	}
	return len(words) > 0
}

func resolvePosition(name, override string, docs []mongoexport.PlayerDoc) roster.Position {
	if strings.TrimSpace(override) != "" {
		return NormalizePosition(override)
	}
	doc, ok := FindPlayer(docs, name)
	if !ok {
		return roster.PositionOther
	}
	if prize := strings.TrimSpace(doc.PrizeDrawPosition); prize != "" {
		return NormalizePosition(prize)
	}
	return NormalizePosition(doc.Position)
}

// expandGroups appends alias spellings to each constraint group so the
// draw engine can match members by plain equality. aliases maps an
// alternate spelling to the canonical name groups are written with.
func expandGroups(groups []roster.ConstraintGroup, aliases map[string]string) []roster.ConstraintGroup {
	if len(groups) == 0 {
		return nil
	}

	aliasNames := make([]string, 0, len(aliases))
	for alias := range aliases {
		aliasNames = append(aliasNames, alias)
	}
	sort.Strings(aliasNames)

	out := make([]roster.ConstraintGroup, 0, len(groups))
	for _, group := range groups {
		expanded := append(roster.ConstraintGroup(nil), group...)
		for _, alias := range aliasNames {
			if group.Contains(aliases[alias]) && !expanded.Contains(alias) {
				expanded = append(expanded, alias)
			}
		}
		out = append(out, expanded)
	}
	return out
}
