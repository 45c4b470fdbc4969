package draw

import (
	"errors"
	"fmt"
	"strings"

	"github.com/galacticos-fc/ranking-service/internal/domain/roster"
)

// InsufficientPlayersError reports that the roster cannot fill four
// teams, with the shortfall per position.
type InsufficientPlayersError struct {
	Missing map[roster.Position]int
}

func (e *InsufficientPlayersError) Error() string {
	parts := make([]string, 0, len(e.Missing))
	for _, pos := range []roster.Position{roster.PositionDefender, roster.PositionMidfielder, roster.PositionForward} {
		if n := e.Missing[pos]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s short by %d", pos, n))
		}
	}
	return "insufficient players for draw: " + strings.Join(parts, ", ")
}

// AsInsufficientPlayersError unwraps err into an
// InsufficientPlayersError when possible.
func AsInsufficientPlayersError(err error) (*InsufficientPlayersError, bool) {
	var target *InsufficientPlayersError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// UnsatisfiableConstraintsError reports that no assignment respecting
// the constraint groups was found within the attempt budget.
type UnsatisfiableConstraintsError struct {
	Attempts int
}

func (e *UnsatisfiableConstraintsError) Error() string {
	return fmt.Sprintf("no constraint-satisfying draw found after %d attempts", e.Attempts)
}

// AsUnsatisfiableConstraintsError unwraps err into an
// UnsatisfiableConstraintsError when possible.
func AsUnsatisfiableConstraintsError(err error) (*UnsatisfiableConstraintsError, bool) {
	var target *UnsatisfiableConstraintsError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
