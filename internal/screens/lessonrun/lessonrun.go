// Package lessonrun is the screen that plays one lesson end to end:
// exercise presentation, grading feedback with an auto-advance timer, the
// out-of-hearts offer, and the completion summary.
package lessonrun

import (
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linguaquest/internal/catalog"
	"github.com/abhisek/linguaquest/internal/lesson"
	"github.com/abhisek/linguaquest/internal/notify"
	"github.com/abhisek/linguaquest/internal/progression"
	"github.com/abhisek/linguaquest/internal/router"
	"github.com/abhisek/linguaquest/internal/screen"
	"github.com/abhisek/linguaquest/internal/shop"
	"github.com/abhisek/linguaquest/internal/ui/components"
	"github.com/abhisek/linguaquest/internal/ui/layout"
)

// LessonScreen implements screen.Screen for an active lesson run.
type LessonScreen struct {
	run  *lesson.Run
	prog *progression.Store
	shop *shop.Shop

	choice components.MultiChoice
	input  components.TextInput
	match  components.DragMatch

	outcome    *lesson.Outcome
	completion *lesson.Completion
	showQuit   bool
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)
var _ screen.EscHandler = (*LessonScreen)(nil)

// New creates a lesson screen for the given lesson.
func New(l catalog.Lesson, prog *progression.Store) *LessonScreen {
	s := &LessonScreen{
		run:  lesson.NewRun(l, prog, lesson.LockoutNone),
		prog: prog,
		shop: shop.New(prog),
	}
	s.setupExercise()
	return s
}

func (s *LessonScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *LessonScreen) Title() string {
	return s.run.Lesson().Title
}

// HandlesEsc keeps Esc local: it opens the quit confirmation rather than
// popping the screen with lesson progress still in flight.
func (s *LessonScreen) HandlesEsc() bool {
	return s.completion == nil
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.showQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave lesson"},
			{Key: "N", Description: "Keep going"},
		}
	case s.completion != nil:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back to lessons"},
		}
	case s.run.Phase() == lesson.Feedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+S", Description: "Skip (20 XP)"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		if msg.generation != s.run.Generation() {
			return s, nil
		}
		return s.advance()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showQuit {
		switch key {
		case "y", "Y":
			s.run.Teardown()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showQuit = false
		}
		return s, nil
	}

	if s.completion != nil {
		if key == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.run.Phase() == lesson.Feedback {
		// Refill offer while the wrong-answer feedback is up.
		if key == "r" && s.outcome != nil && s.outcome.HeartsLeft == 0 {
			return s, s.refillHearts()
		}
		return s.advance()
	}

	// Presenting.
	switch key {
	case "esc":
		s.showQuit = true
		return s, nil
	case "ctrl+s":
		return s, s.buySkip()
	}

	ex, ok := s.run.Exercise()
	if !ok {
		return s, nil
	}

	switch ex.Type {
	case catalog.MultipleChoice, catalog.StoryMode:
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			return s.submit(lesson.Answer{Text: s.choice.Value()})
		}
		return s, cmd

	case catalog.FillBlank:
		if key == "enter" {
			return s.submit(lesson.Answer{Text: s.input.Value()})
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case catalog.DragDrop:
		if key == "enter" && s.match.Complete() {
			return s.submit(lesson.Answer{Placement: s.match.Placement()})
		}
		var cmd tea.Cmd
		s.match, cmd = s.match.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *LessonScreen) submit(ans lesson.Answer) (screen.Screen, tea.Cmd) {
	out, ok := s.run.Submit(ans)
	if !ok {
		return s, nil
	}
	s.outcome = &out
	if ex, exOK := s.run.Exercise(); exOK {
		s.input.Submit(out.Correct && ex.Type == catalog.FillBlank)
	}

	gen := s.run.Generation()
	return s, tea.Tick(lesson.FeedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{generation: gen}
	})
}

func (s *LessonScreen) advance() (screen.Screen, tea.Cmd) {
	comp := s.run.Advance()
	s.outcome = nil
	if comp != nil {
		s.completion = comp
		return s, nil
	}
	s.setupExercise()
	return s, s.input.Init()
}

func (s *LessonScreen) buySkip() tea.Cmd {
	if err := s.shop.BuySkip(); err != nil {
		return notify.ErrorCmd("Not enough XP to skip")
	}
	if !s.run.Skip() {
		return nil
	}
	if s.run.Phase() == lesson.Feedback {
		// Skipped the last exercise; complete straight away.
		s.completion = s.run.Advance()
		return notify.SuccessCmd("Question skipped")
	}
	s.setupExercise()
	return tea.Batch(s.input.Init(), notify.SuccessCmd("Question skipped"))
}

func (s *LessonScreen) refillHearts() tea.Cmd {
	if err := s.shop.RefillHearts(); err != nil {
		return notify.ErrorCmd("Not enough XP to refill hearts")
	}
	return notify.SuccessCmd("Hearts restored!")
}

// setupExercise rebuilds the input component for the active exercise.
func (s *LessonScreen) setupExercise() {
	ex, ok := s.run.Exercise()
	if !ok {
		return
	}

	switch ex.Type {
	case catalog.MultipleChoice, catalog.StoryMode:
		correct := 0
		for i, opt := range ex.Options {
			if opt == ex.Answer {
				correct = i
				break
			}
		}
		s.choice = components.NewMultiChoice(ex.Prompt, ex.Options, correct)

	case catalog.FillBlank:
		s.input = components.NewTextInput("Type your answer...", 40)

	case catalog.DragDrop:
		pool := make([]string, len(ex.AnswerSeq))
		copy(pool, ex.AnswerSeq)
		rand.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		s.match = components.NewDragMatch(ex.Prompt, ex.Options, pool)
	}
}
