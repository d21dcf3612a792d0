package challenge

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/abhisek/linguaquest/internal/calendar"
	"github.com/abhisek/linguaquest/internal/progression"
	"github.com/abhisek/linguaquest/internal/store"
)

// WeeklyBonusXP is the extra reward for finishing all weekly tasks.
const WeeklyBonusXP = 100

// taskShare is how much of the weekly bar one task is worth.
const taskShare = 100 / len(weeklyTasks)

// Task is one step of the weekly challenge. Tasks unlock strictly in order.
type Task struct {
	Title string
	XP    int
}

var weeklyTasks = [...]Task{
	{Title: "Complete 3 lessons", XP: 50},
	{Title: "Play 2 mini games", XP: 30},
	{Title: "Maintain 3-day streak", XP: 40},
	{Title: "Score 90%+ on any lesson", XP: 35},
	{Title: "Review 10 vocabulary words", XP: 25},
}

// Tasks returns this week's task list.
func Tasks() []Task {
	return weeklyTasks[:]
}

// ErrTaskLocked is returned when a task is claimed out of order.
var ErrTaskLocked = errors.New("previous tasks not completed yet")

// TaskResult reports one claimed weekly task.
type TaskResult struct {
	TaskXP   int
	BonusXP  int // non-zero only when this task finished the week
	Progress int // 0..100 after the claim
	Done     bool
}

// Weekly tracks the five-task weekly challenge for a language. Progress and
// the completed marker are stored under separate flag keys so a partial week
// survives restarts on its own.
type Weekly struct {
	flags store.FlagRepo
	prog  *progression.Store

	now func() time.Time
}

// NewWeekly builds a weekly challenge backed by the given flag store.
func NewWeekly(flags store.FlagRepo, prog *progression.Store) *Weekly {
	return &Weekly{flags: flags, prog: prog, now: time.Now}
}

func (w *Weekly) key(languageID string) string {
	return fmt.Sprintf("weekly-challenge-%s-%s", calendar.WeekKey(w.now()), languageID)
}

// Progress returns the week's completion percentage for the language.
// Unreadable or malformed progress reads as zero, except when the week is
// already marked completed.
func (w *Weekly) Progress(languageID string) int {
	v, err := w.flags.Get(w.key(languageID) + "-progress")
	if err == nil {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 100 {
			return n
		}
	}
	if w.Completed(languageID) {
		return 100
	}
	return 0
}

// Completed reports whether all tasks were claimed this week.
func (w *Weekly) Completed(languageID string) bool {
	v, err := w.flags.Get(w.key(languageID))
	return err == nil && v == "completed"
}

// CompleteTask claims task i (zero-based). Tasks must be claimed in order:
// the claim is refused unless exactly the preceding tasks are done. The last
// task additionally grants the weekly bonus and a streak update.
func (w *Weekly) CompleteTask(languageID string, i int) (TaskResult, error) {
	if i < 0 || i >= len(weeklyTasks) {
		return TaskResult{}, fmt.Errorf("no such weekly task %d", i)
	}
	if w.Completed(languageID) {
		return TaskResult{}, ErrAlreadyCompleted
	}
	progress := w.Progress(languageID)
	if progress != i*taskShare {
		return TaskResult{}, ErrTaskLocked
	}

	task := weeklyTasks[i]
	next := progress + taskShare
	if next > 100 {
		next = 100
	}
	key := w.key(languageID)
	if err := w.flags.Set(key+"-progress", strconv.Itoa(next)); err != nil {
		return TaskResult{}, fmt.Errorf("save weekly progress: %w", err)
	}
	w.prog.AddXP(task.XP)

	res := TaskResult{TaskXP: task.XP, Progress: next}
	if next >= 100 {
		if err := w.flags.Set(key, "completed"); err != nil {
			return res, fmt.Errorf("mark weekly challenge: %w", err)
		}
		w.prog.AddXP(WeeklyBonusXP)
		w.prog.UpdateStreak()
		res.BonusXP = WeeklyBonusXP
		res.Done = true
	}
	return res, nil
}

// ResetsIn returns the time remaining until next week's challenge.
func (w *Weekly) ResetsIn() time.Duration {
	now := w.now()
	return calendar.WeekStart(now).AddDate(0, 0, 7).Sub(now)
}
