// Package challenge implements the daily and weekly bonus challenges. Both
// are keyed per language and per period through the flag store, so a
// completion survives restarts and expires naturally when the key rolls
// over at the period boundary.
package challenge

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/linguaquest/internal/calendar"
	"github.com/abhisek/linguaquest/internal/progression"
	"github.com/abhisek/linguaquest/internal/store"
)

// DailyXP is the bonus for finishing the day's challenge.
const DailyXP = 100

// ErrAlreadyCompleted is returned when a challenge for the current period
// has already been claimed.
var ErrAlreadyCompleted = errors.New("challenge already completed")

// Daily tracks the once-per-day bonus challenge for a language.
type Daily struct {
	flags store.FlagRepo
	prog  *progression.Store

	now func() time.Time
}

// NewDaily builds a daily challenge backed by the given flag store.
func NewDaily(flags store.FlagRepo, prog *progression.Store) *Daily {
	return &Daily{flags: flags, prog: prog, now: time.Now}
}

func (d *Daily) key(languageID string) string {
	return fmt.Sprintf("daily-challenge-%s-%s", calendar.DayKey(d.now()), languageID)
}

// Completed reports whether today's challenge was already claimed for the
// language. Flag-store errors read as not completed.
func (d *Daily) Completed(languageID string) bool {
	v, err := d.flags.Get(d.key(languageID))
	return err == nil && v == "true"
}

// Complete claims today's challenge: the learner gets the XP bonus and a
// streak update, and the day is marked done. A second claim on the same day
// is refused with ErrAlreadyCompleted.
func (d *Daily) Complete(languageID string) (int, error) {
	if d.Completed(languageID) {
		return 0, ErrAlreadyCompleted
	}
	if err := d.flags.Set(d.key(languageID), "true"); err != nil {
		return 0, fmt.Errorf("mark daily challenge: %w", err)
	}
	d.prog.AddXP(DailyXP)
	d.prog.UpdateStreak()
	return DailyXP, nil
}

// ResetsIn returns the time remaining until the next challenge unlocks.
func (d *Daily) ResetsIn() time.Duration {
	now := d.now()
	return calendar.NextMidnight(now).Sub(now)
}
