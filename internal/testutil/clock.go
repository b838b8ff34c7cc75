package testutil

import (
	"time"

	"github.com/preston-bernstein/game-management-service/internal/timeutil"
)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseDate parses a YYYY-MM-DD calendar date or panics; intended for tests.
func MustParseDate(v string) timeutil.Date {
	d, err := timeutil.ParseCalendarDate(v)
	if err != nil {
		panic(err)
	}
	return d
}
