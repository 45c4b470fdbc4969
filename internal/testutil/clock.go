package testutil

import (
	"time"

	"github.com/galacticos-fc/ranking-service/internal/timeutil"
)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseDate parses a calendar date or panics; intended for tests.
func MustParseDate(value string) time.Time {
	t, err := timeutil.ParseDate(value)
	if err != nil {
		panic(err)
	}
	return t
}
