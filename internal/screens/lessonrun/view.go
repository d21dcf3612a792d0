package lessonrun

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguaquest/internal/catalog"
	"github.com/abhisek/linguaquest/internal/lesson"
	"github.com/abhisek/linguaquest/internal/shop"
	"github.com/abhisek/linguaquest/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	switch {
	case s.showQuit:
		return renderQuitConfirm(width)
	case s.completion != nil:
		return s.renderCompletion(width)
	case s.run.Phase() == lesson.Feedback:
		return s.renderFeedback(width)
	default:
		return s.renderExercise(width)
	}
}

func (s *LessonScreen) renderExercise(width int) string {
	ex, ok := s.run.Exercise()
	if !ok {
		return ""
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.run.Lesson().Title))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Exercise %d/%d  ⚡ +%d",
			s.run.Index()+1, s.run.Count(), s.run.EarnedXP()))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	switch ex.Type {
	case catalog.MultipleChoice, catalog.StoryMode:
		b.WriteString(s.choice.View())
	case catalog.FillBlank:
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		b.WriteString(prompt.Render(ex.Prompt))
		b.WriteString("\n\n  " + s.input.View())
	case catalog.DragDrop:
		b.WriteString(s.match.View())
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Worth %d XP", ex.XPValue)))

	return b.String()
}

func (s *LessonScreen) renderFeedback(width int) string {
	out := s.outcome
	if out == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if out.Correct {
		b.WriteString(center.Foreground(theme.Success).Bold(true).
			Render(fmt.Sprintf("✓ Correct!  +%d XP", out.XPAwarded)))
	} else {
		b.WriteString(center.Foreground(theme.Error).Bold(true).
			Render("✗ Not quite"))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Hearts).
			Render(fmt.Sprintf("♥ %d hearts left", out.HeartsLeft)))
	}

	if out.Explanation != "" {
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.TextDim).Render(out.Explanation))
	}

	if out.HeartsLeft == 0 {
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.Accent).
			Render(fmt.Sprintf("Out of hearts! Press R to refill (%d XP)", shop.HeartRefillCost)))
	}

	return b.String()
}

func (s *LessonScreen) renderCompletion(width int) string {
	comp := s.completion

	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Accent).Bold(true).Render("🏆 Lesson Complete!"))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Text).
		Render(fmt.Sprintf("Exercises: +%d XP    Reward: +%d XP", comp.EarnedXP, comp.RewardXP)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("⚡ %d XP total", comp.TotalXP)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Streak).
		Render(fmt.Sprintf("🔥 %d day streak", comp.Streak)))

	if comp.FunFact != "" {
		b.WriteString("\n\n")
		card := theme.Card.Width(min(width-8, 60)).Render(
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Fun fact: " + comp.FunFact))
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(card))
	}

	return b.String()
}

func renderQuitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	return "\n\n" +
		center.Foreground(theme.Text).Bold(true).Render("Leave this lesson?") + "\n\n" +
		center.Foreground(theme.TextDim).Render("Progress in this lesson will be lost. (Y/N)")
}
