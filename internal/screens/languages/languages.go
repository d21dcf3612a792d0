// Package languages is the language picker. Languages without lessons yet
// are listed but cannot be selected.
package languages

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguaquest/internal/catalog"
	"github.com/abhisek/linguaquest/internal/progression"
	"github.com/abhisek/linguaquest/internal/router"
	"github.com/abhisek/linguaquest/internal/screen"
	"github.com/abhisek/linguaquest/internal/ui/components"
	"github.com/abhisek/linguaquest/internal/ui/theme"
)

// LanguagesScreen lets the learner pick which language to study.
type LanguagesScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*LanguagesScreen)(nil)

// New creates the language picker. dashFactory produces the dashboard for
// the chosen language.
func New(cat catalog.Catalog, prog *progression.Store, dashFactory func(lang catalog.Language) screen.Screen) *LanguagesScreen {
	langs := cat.Languages()

	items := make([]components.MenuItem, len(langs))
	for i, lang := range langs {
		lang := lang
		available := len(cat.Lessons(lang.ID)) > 0

		label := fmt.Sprintf("%s  %s", lang.Flag, lang.Name)
		if !available {
			label += "  (coming soon)"
		}

		items[i] = components.MenuItem{
			Label:    label,
			Disabled: !available,
			Action: func() tea.Cmd {
				prog.SetSelectedLanguage(lang.ID)
				dash := dashFactory(lang)
				return func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: dash}
				}
			},
		}
	}

	return &LanguagesScreen{menu: components.NewMenu(items)}
}

func (s *LanguagesScreen) Init() tea.Cmd {
	return nil
}

func (s *LanguagesScreen) Title() string {
	return "Languages"
}

func (s *LanguagesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LanguagesScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Choose your quest"))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
