package ranking

import (
	"sort"
	"time"

	domainranking "github.com/galacticos-fc/ranking-service/internal/domain/ranking"
	"github.com/galacticos-fc/ranking-service/internal/mongoexport"
)

// accumulator totals category quantities per player while remembering
// the order players were first seen, so builds stay deterministic.
type accumulator struct {
	stats map[string]map[string]int
	order []string
}

func newAccumulator() *accumulator {
	return &accumulator{stats: make(map[string]map[string]int)}
}

func (a *accumulator) add(name, key string, qty int) {
	if qty <= 0 {
		return
	}
	if _, seen := a.stats[name]; !seen {
		a.stats[name] = make(map[string]int)
		a.order = append(a.order, name)
	}
	a.stats[name][key] += qty
}

// tiebreak returns a player's wins and games for sorting. Players with
// no recorded stats rank last on the games key.
func tiebreak(name string, regulars, goalies *accumulator) (wins, games int) {
	if stats, ok := regulars.stats[name]; ok {
		return stats[KeyWins], stats[KeyGames]
	}
	if stats, ok := goalies.stats[name]; ok {
		return stats[KeyWins], stats[KeyGames]
	}
	return 0, 999999
}

// Build folds player documents into the awards board. Only the
// includedTeams entry matching each document's root teamCode counts.
// Goalkeepers are kept out of award categories and their match stats
// are tracked under goleiro_-prefixed categories; season goal and
// assist totals stay shared. Entries sort by quantity, then wins, then
// fewest games.
func Build(docs []mongoexport.PlayerDoc, generatedAt time.Time) domainranking.Board {
	regulars := newAccumulator()
	goalies := newAccumulator()
	images := make(map[string]string)
	nameSet := make(map[string]bool)

	for _, doc := range docs {
		name := doc.Name()
		if name == "" {
			continue
		}
		nameSet[name] = true

		if url := doc.ImageURL(); url != "" {
			if _, ok := images[name]; !ok {
				images[name] = url
			}
		}

		season, ok := doc.CurrentSeason()
		if !ok {
			continue
		}

		target := regulars
		if doc.IsGoalkeeper() {
			target = goalies
		}

		for key, value := range season.Awards {
			target.add(name, key, value.Int())
		}
		target.add(name, KeyGoals, season.TotalGoals.Int())
		target.add(name, KeyAssists, season.TotalAssists.Int())
		target.add(name, KeyGames, season.TotalGames.Int())
		target.add(name, KeyWins, season.TotalWins.Int())
		target.add(name, KeyDefeats, season.TotalDefeats.Int())
		target.add(name, KeyDraws, season.TotalDraws.Int())
	}

	entriesByKey := make(map[string][]domainranking.Entry)

	appendEntry := func(key, player string, qty int) {
		entriesByKey[key] = append(entriesByKey[key], domainranking.Entry{Player: player, Quantity: qty})
	}

	for _, name := range regulars.order {
		for _, key := range statKeys(regulars.stats[name]) {
			appendEntry(key, name, regulars.stats[name][key])
		}
	}
	for _, name := range goalies.order {
		for _, key := range statKeys(goalies.stats[name]) {
			// Goalkeepers never compete for per-match awards.
			if isAwardKey(key) {
				continue
			}
			appendEntry(goalieCategory(key), name, goalies.stats[name][key])
		}
	}

	for key := range entriesByKey {
		entries := entriesByKey[key]
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Quantity != entries[j].Quantity {
				return entries[i].Quantity > entries[j].Quantity
			}
			winsI, gamesI := tiebreak(entries[i].Player, regulars, goalies)
			winsJ, gamesJ := tiebreak(entries[j].Player, regulars, goalies)
			if winsI != winsJ {
				return winsI > winsJ
			}
			return gamesI < gamesJ
		})
	}

	categories := make([]domainranking.Category, 0, len(entriesByKey))
	for _, key := range categoryOrder(entriesByKey) {
		categories = append(categories, domainranking.Category{
			Key:     key,
			Name:    DisplayName(key),
			Icon:    Icon(key),
			Entries: entriesByKey[key],
		})
	}

	players := make([]string, 0, len(nameSet))
	for name := range nameSet {
		players = append(players, name)
	}
	sort.Strings(players)

	return domainranking.Board{
		GeneratedAt: generatedAt.UTC(),
		Categories:  categories,
		Players:     players,
		Images:      images,
	}
}

// statKeys returns a player's stat keys in deterministic order:
// canonical keys first, unknown award keys sorted after.
func statKeys(stats map[string]int) []string {
	keys := make([]string, 0, len(stats))
	seen := make(map[string]bool, len(stats))
	for _, key := range canonicalKeys() {
		if _, ok := stats[key]; ok {
			keys = append(keys, key)
			seen[key] = true
		}
	}
	var extras []string
	for key := range stats {
		if !seen[key] {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	return append(keys, extras...)
}

// goalieCategory maps a goalkeeper stat onto its board category.
// Match stats get the goleiro_ prefix; everything else shares the
// regular category.
func goalieCategory(key string) string {
	for _, matchKey := range matchKeys {
		if key == matchKey {
			return GoalkeeperPrefix + key
		}
	}
	return key
}

func isAwardKey(key string) bool {
	for _, award := range awardKeys {
		if key == award {
			return true
		}
	}
	return false
}

func canonicalKeys() []string {
	keys := make([]string, 0, len(awardKeys)+len(generalKeys)+len(matchKeys))
	keys = append(keys, awardKeys...)
	keys = append(keys, generalKeys...)
	keys = append(keys, matchKeys...)
	return keys
}

// categoryOrder fixes the board's category order: awards, season
// totals, match stats, goalkeeper stats, then any unknown award
// categories sorted by key.
func categoryOrder(entriesByKey map[string][]domainranking.Entry) []string {
	ordered := make([]string, 0, len(entriesByKey))
	seen := make(map[string]bool, len(entriesByKey))

	appendKnown := func(key string) {
		if _, ok := entriesByKey[key]; ok && !seen[key] {
			ordered = append(ordered, key)
			seen[key] = true
		}
	}

	for _, key := range canonicalKeys() {
		appendKnown(key)
	}
	for _, key := range matchKeys {
		appendKnown(GoalkeeperPrefix + key)
	}

	var extras []string
	for key := range entriesByKey {
		if !seen[key] {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	return append(ordered, extras...)
}
