package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/linguaquest/internal/catalog"
	"github.com/abhisek/linguaquest/internal/progression"
	"github.com/abhisek/linguaquest/internal/store"
)

func testLesson() catalog.Lesson {
	return catalog.Lesson{
		ID:       "test-lesson-1",
		Title:    "Test Lesson",
		XPReward: 50,
		FunFact:  "Testing is fun!",
		Exercises: []catalog.Exercise{
			{
				ID:      "e1",
				Type:    catalog.MultipleChoice,
				Prompt:  "Pick A",
				Options: []string{"A", "B"},
				Answer:  "A",
				XPValue: 10,
			},
			{
				ID:      "e2",
				Type:    catalog.FillBlank,
				Prompt:  "Type hola",
				Answer:  "hola",
				XPValue: 15,
			},
		},
	}
}

func newRun(t *testing.T, policy LockoutPolicy) (*Run, *progression.Store) {
	t.Helper()
	ps := progression.Load(&store.MemoryProfileRepo{})
	return NewRun(testLesson(), ps, policy), ps
}

func TestRun_HappyPathCompletion(t *testing.T) {
	// Spec scenario 1: fresh user, 2-exercise lesson, both correct → 75 XP,
	// lesson completed, streak 1.
	r, ps := newRun(t, LockoutNone)

	assert.Equal(t, Presenting, r.Phase())
	assert.Equal(t, 0, r.Index())
	assert.Equal(t, 2, r.Count())

	out, ok := r.Submit(Answer{Text: "A"})
	require.True(t, ok)
	assert.True(t, out.Correct)
	assert.Equal(t, 10, out.XPAwarded)
	assert.Equal(t, Feedback, r.Phase())

	assert.Nil(t, r.Advance())
	assert.Equal(t, Presenting, r.Phase())
	assert.Equal(t, 1, r.Index())

	out, ok = r.Submit(Answer{Text: " HOLA "})
	require.True(t, ok)
	assert.True(t, out.Correct)

	comp := r.Advance()
	require.NotNil(t, comp)
	assert.Equal(t, Completed, r.Phase())
	assert.Equal(t, 50, comp.RewardXP)
	assert.Equal(t, 25, comp.EarnedXP)
	assert.Equal(t, 75, comp.TotalXP)
	assert.Equal(t, "Testing is fun!", comp.FunFact)
	assert.Equal(t, 1, comp.Streak)

	p := ps.Profile()
	assert.Equal(t, 75, p.XP)
	assert.Equal(t, progression.DefaultMaxHearts, p.Hearts)
	assert.True(t, ps.LessonCompleted("test-lesson-1"))
	assert.Equal(t, 1, p.Streak)
	assert.NotEmpty(t, p.LastPlayDate)
}

func TestRun_WrongAnswerCostsHeart(t *testing.T) {
	r, ps := newRun(t, LockoutNone)

	out, ok := r.Submit(Answer{Text: "B"})
	require.True(t, ok)
	assert.False(t, out.Correct)
	assert.Equal(t, 0, out.XPAwarded)
	assert.Equal(t, progression.DefaultMaxHearts-1, out.HeartsLeft)
	assert.Equal(t, progression.DefaultMaxHearts-1, ps.Profile().Hearts)
	assert.Equal(t, 0, ps.Profile().XP)
	assert.Equal(t, 0, r.EarnedXP())
}

func TestRun_MixedAnswersTotal(t *testing.T) {
	r, ps := newRun(t, LockoutNone)

	r.Submit(Answer{Text: "B"}) // wrong: no XP, one heart
	r.Advance()
	r.Submit(Answer{Text: "hola"}) // right: +15
	comp := r.Advance()

	require.NotNil(t, comp)
	assert.Equal(t, 15, comp.EarnedXP)
	assert.Equal(t, 65, comp.TotalXP)
	assert.Equal(t, 65, ps.Profile().XP)
	assert.Equal(t, progression.DefaultMaxHearts-1, ps.Profile().Hearts)
}

func TestRun_SubmitOutsidePresentingRejected(t *testing.T) {
	r, _ := newRun(t, LockoutNone)

	r.Submit(Answer{Text: "A"})
	// In Feedback: a second submit is refused.
	_, ok := r.Submit(Answer{Text: "A"})
	assert.False(t, ok)

	// Advance without Feedback is a no-op.
	r.Advance()
	assert.Nil(t, r.Advance())
}

func TestRun_PermissivePolicyAtZeroHearts(t *testing.T) {
	r, ps := newRun(t, LockoutNone)
	for i := 0; i < progression.DefaultMaxHearts; i++ {
		ps.LoseHeart()
	}
	require.Equal(t, 0, ps.Profile().Hearts)

	// Reference behavior: submissions still accepted, heart loss floors.
	out, ok := r.Submit(Answer{Text: "B"})
	require.True(t, ok)
	assert.False(t, out.Correct)
	assert.Equal(t, 0, out.HeartsLeft)
	assert.Equal(t, 0, ps.Profile().Hearts)
}

func TestRun_BlockPolicyAtZeroHearts(t *testing.T) {
	r, ps := newRun(t, LockoutBlock)
	for i := 0; i < progression.DefaultMaxHearts; i++ {
		ps.LoseHeart()
	}

	out, ok := r.Submit(Answer{Text: "A"})
	assert.False(t, ok)
	assert.True(t, out.Blocked)
	assert.Equal(t, Presenting, r.Phase())
	assert.Equal(t, 0, ps.Profile().XP)
}

func TestRun_CompletionAppliedOnce(t *testing.T) {
	r, ps := newRun(t, LockoutNone)

	r.Submit(Answer{Text: "A"})
	r.Advance()
	r.Submit(Answer{Text: "hola"})
	comp := r.Advance()
	require.NotNil(t, comp)

	// Forcing another Advance out of a stale Feedback cannot re-complete.
	r.phase = Feedback
	assert.Nil(t, r.Advance())
	assert.Equal(t, 75, ps.Profile().XP)
	assert.Equal(t, []string{"test-lesson-1"}, ps.Profile().CompletedLessons)
}

func TestRun_AbandonKeepsAppliedState(t *testing.T) {
	r, ps := newRun(t, LockoutNone)

	r.Submit(Answer{Text: "A"}) // +10 XP applied through the store
	r.Teardown()

	// Run-local progress dies with the run; granted XP stays.
	assert.Equal(t, 10, ps.Profile().XP)
	assert.False(t, ps.LessonCompleted("test-lesson-1"))
}

func TestRun_SkipAdvancesWithoutConsequence(t *testing.T) {
	r, ps := newRun(t, LockoutNone)

	require.True(t, r.Skip())
	assert.Equal(t, 1, r.Index())
	assert.Equal(t, Presenting, r.Phase())
	assert.Equal(t, 0, ps.Profile().XP)
	assert.Equal(t, progression.DefaultMaxHearts, ps.Profile().Hearts)

	// Skipping the last exercise routes through Feedback to completion.
	require.True(t, r.Skip())
	assert.Equal(t, Feedback, r.Phase())
	comp := r.Advance()
	require.NotNil(t, comp)
	assert.Equal(t, 0, comp.EarnedXP)
	assert.Equal(t, 50, comp.TotalXP)

	// Not skippable once the lesson is over.
	assert.False(t, r.Skip())
}

func TestRun_GenerationInvalidatesStaleTimers(t *testing.T) {
	r, _ := newRun(t, LockoutNone)

	r.Submit(Answer{Text: "A"})
	gen := r.Generation()

	// The feedback timer fires against this generation...
	assert.Equal(t, gen, r.Generation())
	r.Advance()

	// ...but after advancing (or teardown), the old generation is stale.
	assert.NotEqual(t, gen, r.Generation())
	r.Teardown()
	assert.NotEqual(t, gen, r.Generation())
}
