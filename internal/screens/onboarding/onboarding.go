// Package onboarding asks a first-time learner for their skill level. The
// answer is recorded once and never asked again.
package onboarding

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguaquest/internal/progression"
	"github.com/abhisek/linguaquest/internal/router"
	"github.com/abhisek/linguaquest/internal/screen"
	"github.com/abhisek/linguaquest/internal/ui/components"
	"github.com/abhisek/linguaquest/internal/ui/theme"
)

type levelOption struct {
	level       progression.SkillLevel
	title       string
	description string
}

var levels = []levelOption{
	{progression.SkillNewbie, "Newbie", "I know nothing or very little about this language"},
	{progression.SkillBeginner, "Beginner", "I know a few words and basic phrases"},
	{progression.SkillIntermediate, "Intermediate", "I can have simple conversations"},
	{progression.SkillAdvanced, "Advanced", "I'm comfortable and want to polish my skills"},
}

// OnboardingScreen lets the learner pick a starting skill level.
type OnboardingScreen struct {
	prog *progression.Store
	menu components.Menu
}

var _ screen.Screen = (*OnboardingScreen)(nil)

// New creates the onboarding screen. nextFactory produces the screen shown
// after the level is saved.
func New(prog *progression.Store, nextFactory func() screen.Screen) *OnboardingScreen {
	s := &OnboardingScreen{prog: prog}

	items := make([]components.MenuItem, len(levels))
	for i, opt := range levels {
		opt := opt
		items[i] = components.MenuItem{
			Label: opt.title,
			Action: func() tea.Cmd {
				prog.SetSkillLevel(opt.level)
				next := nextFactory()
				return func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: next}
				}
			},
		}
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *OnboardingScreen) Init() tea.Cmd {
	return nil
}

func (s *OnboardingScreen) Title() string {
	return "Welcome"
}

func (s *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *OnboardingScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("What's your level?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("We'll tailor your quest to match"))
	b.WriteString("\n\n")

	b.WriteString(s.menu.View())

	if s.menu.Selected >= 0 && s.menu.Selected < len(levels) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render(fmt.Sprintf("  %s", levels[s.menu.Selected].description)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
