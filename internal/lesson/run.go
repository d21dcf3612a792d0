// Package lesson drives a learner through one lesson: it sequences the
// exercises, grades submissions, applies XP and heart consequences to the
// progression store, and decides completion. A Run is ephemeral; abandoning
// it discards run-local progress but never rolls back XP or hearts already
// applied.
package lesson

import (
	"time"

	"github.com/abhisek/linguaquest/internal/catalog"
	"github.com/abhisek/linguaquest/internal/progression"
)

// FeedbackDelay is how long the feedback state shows before auto-advancing.
const FeedbackDelay = 2 * time.Second

// Phase is the run's position in the state machine.
type Phase int

const (
	Presenting Phase = iota // an exercise is awaiting an answer
	Feedback                // the last answer's outcome is on display
	Completed               // all exercises answered, completion applied
)

// LockoutPolicy decides what happens to submissions at zero hearts.
// LockoutNone keeps accepting them; LockoutBlock refuses until a refill.
type LockoutPolicy int

const (
	LockoutNone LockoutPolicy = iota
	LockoutBlock
)

// Outcome reports one graded submission back to the UI.
type Outcome struct {
	Correct     bool
	XPAwarded   int
	Explanation string
	HeartsLeft  int
	Blocked     bool // submission refused by the lockout policy
}

// Completion summarizes a finished lesson.
type Completion struct {
	LessonID string
	RewardXP int
	EarnedXP int // per-exercise XP accumulated during the run
	TotalXP  int // RewardXP + EarnedXP
	FunFact  string
	Streak   int
}

// Run is the per-lesson state machine.
type Run struct {
	lesson  catalog.Lesson
	store   *progression.Store
	policy  LockoutPolicy
	phase   Phase
	index   int
	earned  int
	correct bool // last answer

	// generation increments on every phase change and on teardown, so a
	// pending feedback timer from an earlier state can be recognized as
	// stale and dropped instead of mutating the run.
	generation int
	done       bool
}

// NewRun starts a lesson at its first exercise.
func NewRun(l catalog.Lesson, store *progression.Store, policy LockoutPolicy) *Run {
	return &Run{lesson: l, store: store, policy: policy, phase: Presenting}
}

// Lesson returns the lesson under play.
func (r *Run) Lesson() catalog.Lesson { return r.lesson }

// Phase returns the current state-machine phase.
func (r *Run) Phase() Phase { return r.phase }

// Index returns the zero-based current exercise index.
func (r *Run) Index() int { return r.index }

// Count returns the number of exercises in the lesson.
func (r *Run) Count() int { return len(r.lesson.Exercises) }

// EarnedXP returns the per-exercise XP accumulated so far in this run.
func (r *Run) EarnedXP() int { return r.earned }

// LastCorrect reports whether the most recent submission was correct.
func (r *Run) LastCorrect() bool { return r.correct }

// Generation tags the current state for stale-timer detection.
func (r *Run) Generation() int { return r.generation }

// Exercise returns the active exercise, or false outside Presenting/Feedback.
func (r *Run) Exercise() (catalog.Exercise, bool) {
	if r.index < 0 || r.index >= len(r.lesson.Exercises) {
		return catalog.Exercise{}, false
	}
	return r.lesson.Exercises[r.index], true
}

// Submit grades the answer for the active exercise and moves to Feedback.
// A correct answer adds the exercise's XP to the store and the run
// accumulator; an incorrect one costs a heart. Returns false if the run is
// not presenting an exercise, or the lockout policy refused the submission.
func (r *Run) Submit(ans Answer) (Outcome, bool) {
	if r.phase != Presenting {
		return Outcome{}, false
	}
	ex, ok := r.Exercise()
	if !ok {
		return Outcome{}, false
	}

	if r.policy == LockoutBlock && r.store.Profile().Hearts == 0 {
		return Outcome{Blocked: true}, false
	}

	correct := Check(ex, ans)
	r.correct = correct

	out := Outcome{Correct: correct, Explanation: ex.Explanation}
	if correct {
		r.store.AddXP(ex.XPValue)
		r.earned += ex.XPValue
		out.XPAwarded = ex.XPValue
	} else {
		r.store.LoseHeart()
	}
	out.HeartsLeft = r.store.Profile().Hearts

	r.phase = Feedback
	r.generation++
	return out, true
}

// Skip moves past the active exercise without grading it. No XP is earned
// and no heart is lost; paying for the skip is the caller's business.
// Returns false outside Presenting.
func (r *Run) Skip() bool {
	if r.phase != Presenting {
		return false
	}
	r.correct = false
	r.generation++
	if r.index+1 < len(r.lesson.Exercises) {
		r.index++
		return true
	}
	// Skipping the last exercise still completes the lesson; route through
	// Feedback so Advance applies the completion once.
	r.phase = Feedback
	return true
}

// Advance leaves Feedback for the next exercise, or completes the lesson if
// it was the last one. Completion applies CompleteLesson, UpdateStreak, and
// the lesson reward exactly once. Returns a non-nil Completion when the
// lesson just finished.
func (r *Run) Advance() *Completion {
	if r.phase != Feedback {
		return nil
	}
	r.generation++

	if r.index+1 < len(r.lesson.Exercises) {
		r.index++
		r.phase = Presenting
		return nil
	}

	r.phase = Completed
	if r.done {
		return nil
	}
	r.done = true

	r.store.CompleteLesson(r.lesson.ID)
	r.store.UpdateStreak()
	r.store.AddXP(r.lesson.XPReward)

	return &Completion{
		LessonID: r.lesson.ID,
		RewardXP: r.lesson.XPReward,
		EarnedXP: r.earned,
		TotalXP:  r.lesson.XPReward + r.earned,
		FunFact:  r.lesson.FunFact,
		Streak:   r.store.Profile().Streak,
	}
}

// Teardown invalidates any pending timers for this run. State already
// applied to the progression store is kept; only run-local progress dies.
func (r *Run) Teardown() {
	r.generation++
}
