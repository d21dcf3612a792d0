package challenge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/linguaquest/internal/progression"
	"github.com/abhisek/linguaquest/internal/store"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestDaily_CompleteOncePerDay(t *testing.T) {
	flags := &store.MemoryFlagRepo{}
	prog := progression.Load(&store.MemoryProfileRepo{})
	d := NewDaily(flags, prog)
	d.now = fixedClock(time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC))

	assert.False(t, d.Completed("spanish"))

	xp, err := d.Complete("spanish")
	require.NoError(t, err)
	assert.Equal(t, DailyXP, xp)
	assert.True(t, d.Completed("spanish"))
	assert.Equal(t, DailyXP, prog.Profile().XP)
	assert.Equal(t, 1, prog.Profile().Streak)

	_, err = d.Complete("spanish")
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	assert.Equal(t, DailyXP, prog.Profile().XP)
}

func TestDaily_KeyedPerLanguage(t *testing.T) {
	flags := &store.MemoryFlagRepo{}
	prog := progression.Load(&store.MemoryProfileRepo{})
	d := NewDaily(flags, prog)
	d.now = fixedClock(time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC))

	_, err := d.Complete("spanish")
	require.NoError(t, err)

	assert.False(t, d.Completed("french"))
	_, err = d.Complete("french")
	assert.NoError(t, err)
}

func TestDaily_ResetsAtMidnight(t *testing.T) {
	flags := &store.MemoryFlagRepo{}
	prog := progression.Load(&store.MemoryProfileRepo{})
	d := NewDaily(flags, prog)
	d.now = fixedClock(time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC))

	_, err := d.Complete("spanish")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Hour, d.ResetsIn())

	// Next day, a fresh key: the challenge is available again.
	d.now = fixedClock(time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC))
	assert.False(t, d.Completed("spanish"))
}

func TestWeekly_TasksInOrder(t *testing.T) {
	flags := &store.MemoryFlagRepo{}
	prog := progression.Load(&store.MemoryProfileRepo{})
	w := NewWeekly(flags, prog)
	w.now = fixedClock(time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)) // a Wednesday

	assert.Equal(t, 0, w.Progress("spanish"))

	// Skipping ahead is refused.
	_, err := w.CompleteTask("spanish", 2)
	assert.ErrorIs(t, err, ErrTaskLocked)

	res, err := w.CompleteTask("spanish", 0)
	require.NoError(t, err)
	assert.Equal(t, 50, res.TaskXP)
	assert.Equal(t, 20, res.Progress)
	assert.False(t, res.Done)
	assert.Equal(t, 50, prog.Profile().XP)

	// Re-claiming the same task is refused.
	_, err = w.CompleteTask("spanish", 0)
	assert.ErrorIs(t, err, ErrTaskLocked)
}

func TestWeekly_FinalTaskGrantsBonus(t *testing.T) {
	flags := &store.MemoryFlagRepo{}
	prog := progression.Load(&store.MemoryProfileRepo{})
	w := NewWeekly(flags, prog)
	w.now = fixedClock(time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC))

	taskTotal := 0
	for i, task := range Tasks() {
		res, err := w.CompleteTask("spanish", i)
		require.NoError(t, err)
		taskTotal += task.XP
		if i == len(Tasks())-1 {
			assert.True(t, res.Done)
			assert.Equal(t, WeeklyBonusXP, res.BonusXP)
			assert.Equal(t, 100, res.Progress)
		} else {
			assert.False(t, res.Done)
			assert.Zero(t, res.BonusXP)
		}
	}

	assert.True(t, w.Completed("spanish"))
	assert.Equal(t, 100, w.Progress("spanish"))
	assert.Equal(t, taskTotal+WeeklyBonusXP, prog.Profile().XP)
	assert.Equal(t, 1, prog.Profile().Streak)

	_, err := w.CompleteTask("spanish", 0)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestWeekly_ProgressSurvivesReload(t *testing.T) {
	flags := &store.MemoryFlagRepo{}
	prog := progression.Load(&store.MemoryProfileRepo{})
	when := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	w := NewWeekly(flags, prog)
	w.now = fixedClock(when)
	_, err := w.CompleteTask("spanish", 0)
	require.NoError(t, err)
	_, err = w.CompleteTask("spanish", 1)
	require.NoError(t, err)

	// A fresh instance over the same flags sees the partial week.
	w2 := NewWeekly(flags, prog)
	w2.now = fixedClock(when)
	assert.Equal(t, 40, w2.Progress("spanish"))
	assert.False(t, w2.Completed("spanish"))

	// Next week rolls over to a new key.
	w2.now = fixedClock(when.AddDate(0, 0, 7))
	assert.Equal(t, 0, w2.Progress("spanish"))
}

func TestWeekly_ResetsAtWeekEnd(t *testing.T) {
	flags := &store.MemoryFlagRepo{}
	prog := progression.Load(&store.MemoryProfileRepo{})
	w := NewWeekly(flags, prog)
	// Wednesday noon; the week started Sunday 2025-03-09.
	w.now = fixedClock(time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, 3*24*time.Hour+12*time.Hour, w.ResetsIn())
}
