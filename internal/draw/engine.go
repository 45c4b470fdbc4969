package draw

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	domaindraw "github.com/galacticos-fc/ranking-service/internal/domain/draw"
	"github.com/galacticos-fc/ranking-service/internal/domain/roster"
	"github.com/galacticos-fc/ranking-service/internal/logging"
)

// DefaultMaxAttempts bounds how many full reshuffles the engine tries
// before declaring the constraint groups unsatisfiable.
const DefaultMaxAttempts = 50

// Slots every team must fill, in fill order.
var teamSlots = []struct {
	position roster.Position
	count    int
}{
	{roster.PositionDefender, domaindraw.DefendersPerTeam},
	{roster.PositionMidfielder, domaindraw.MidfieldersPerTeam},
	{roster.PositionForward, domaindraw.ForwardsPerTeam},
}

// Config controls engine behavior.
type Config struct {
	// MaxAttempts caps full-draw retries. Non-positive means
	// DefaultMaxAttempts.
	MaxAttempts int
	// Rand pins the random source for reproducible draws. Nil means
	// seeded from the clock.
	Rand   *rand.Rand
	Logger *slog.Logger
}

// Engine produces constraint-respecting team draws. Safe for
// concurrent use.
type Engine struct {
	maxAttempts int
	logger      *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// New builds an Engine, resolving config defaults.
func New(cfg Config) *Engine {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		maxAttempts: maxAttempts,
		logger:      cfg.Logger,
		rng:         rng,
	}
}

// Run draws four teams of two defenders, one midfielder, and two
// forwards each, plus an overflow team holding everyone left over.
// Players sharing a constraint group never share one of the four
// teams. Each attempt reshuffles every position bucket and fills slots
// with the first candidate that keeps the team clean; a dead slot
// restarts the whole attempt. The overflow team is unconstrained.
func (e *Engine) Run(players []roster.Player, groups []roster.ConstraintGroup) (domaindraw.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	buckets := partition(players)

	if missing := shortfall(buckets); len(missing) > 0 {
		return domaindraw.Result{}, &InsufficientPlayersError{Missing: missing}
	}

	positions := positionIndex(players)

	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		teams, leftovers, ok := e.tryDraw(buckets, groups, positions)
		if !ok {
			continue
		}

		overflow := append(leftovers, buckets[roster.PositionOther]...)
		e.rng.Shuffle(len(overflow), func(i, j int) {
			overflow[i], overflow[j] = overflow[j], overflow[i]
		})

		logging.Info(e.logger, "draw complete",
			logging.FieldAttempts, attempt,
			logging.FieldCount, len(players))

		return domaindraw.Result{
			Attempts: attempt,
			Teams:    teams,
			Overflow: buildTeam(domaindraw.OverflowNumber, overflow, positions),
		}, nil
	}

	logging.Warn(e.logger, "draw exhausted attempt budget",
		logging.FieldAttempts, e.maxAttempts)

	return domaindraw.Result{}, &UnsatisfiableConstraintsError{Attempts: e.maxAttempts}
}

// tryDraw runs a single attempt. It reports ok=false when some slot
// has no candidate that keeps its team free of constraint clashes.
func (e *Engine) tryDraw(buckets map[roster.Position][]string, groups []roster.ConstraintGroup, positions map[string]roster.Position) ([]domaindraw.Team, []string, bool) {
	pools := make(map[roster.Position][]string, len(teamSlots))
	for _, slot := range teamSlots {
		pool := append([]string(nil), buckets[slot.position]...)
		e.rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		pools[slot.position] = pool
	}

	teams := make([]domaindraw.Team, 0, domaindraw.TeamCount)
	for number := 1; number <= domaindraw.TeamCount; number++ {
		var members []string
		for _, slot := range teamSlots {
			for i := 0; i < slot.count; i++ {
				pool := pools[slot.position]
				picked := -1
				for idx, candidate := range pool {
					if !violates(candidate, members, groups) {
						picked = idx
						break
					}
				}
				if picked < 0 {
					return nil, nil, false
				}
				members = append(members, pool[picked])
				pools[slot.position] = append(pool[:picked:picked], pool[picked+1:]...)
			}
		}
		teams = append(teams, buildTeam(number, members, positions))
	}

	var leftovers []string
	for _, slot := range teamSlots {
		leftovers = append(leftovers, pools[slot.position]...)
	}
	return teams, leftovers, true
}

// violates reports whether adding name to members would put two
// players from one constraint group on the same team.
func violates(name string, members []string, groups []roster.ConstraintGroup) bool {
	for _, group := range groups {
		if !group.Contains(name) {
			continue
		}
		for _, member := range members {
			if group.Contains(member) {
				return true
			}
		}
	}
	return false
}

func partition(players []roster.Player) map[roster.Position][]string {
	buckets := make(map[roster.Position][]string)
	for _, player := range players {
		pos := player.Position
		if !pos.Drafted() {
			pos = roster.PositionOther
		}
		buckets[pos] = append(buckets[pos], player.Name)
	}
	return buckets
}

func positionIndex(players []roster.Player) map[string]roster.Position {
	index := make(map[string]roster.Position, len(players))
	for _, player := range players {
		pos := player.Position
		if !pos.Drafted() {
			pos = roster.PositionOther
		}
		index[player.Name] = pos
	}
	return index
}

func shortfall(buckets map[roster.Position][]string) map[roster.Position]int {
	missing := make(map[roster.Position]int)
	for _, slot := range teamSlots {
		needed := slot.count * domaindraw.TeamCount
		if have := len(buckets[slot.position]); have < needed {
			missing[slot.position] = needed - have
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return missing
}

func buildTeam(number int, members []string, positions map[string]roster.Position) domaindraw.Team {
	if members == nil {
		members = []string{}
	}
	team := domaindraw.Team{
		Number:    number,
		Players:   members,
		Positions: make(map[string]roster.Position, len(members)),
	}
	for _, name := range members {
		team.Positions[name] = positions[name]
	}
	return team
}
