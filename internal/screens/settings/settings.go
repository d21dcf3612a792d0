// Package settings holds the settings hub and its subscreens: profile,
// themes, the XP store, and notes.
package settings

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguaquest/internal/progression"
	"github.com/abhisek/linguaquest/internal/router"
	"github.com/abhisek/linguaquest/internal/screen"
	"github.com/abhisek/linguaquest/internal/shop"
	"github.com/abhisek/linguaquest/internal/ui/components"
	"github.com/abhisek/linguaquest/internal/ui/theme"
)

// SettingsScreen is the settings menu.
type SettingsScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*SettingsScreen)(nil)

// New creates the settings hub.
func New(prog *progression.Store) *SettingsScreen {
	sh := shop.New(prog)

	items := []components.MenuItem{
		{Label: "Profile", Action: push(func() screen.Screen { return newProfileScreen(prog) })},
		{Label: "Themes", Action: push(func() screen.Screen { return newThemesScreen(prog, sh) })},
		{Label: "XP Store", Action: push(func() screen.Screen { return newStoreScreen(prog, sh) })},
		{Label: "Notes", Action: push(func() screen.Screen { return newNotesScreen(prog) })},
	}

	return &SettingsScreen{menu: components.NewMenu(items)}
}

func push(factory func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: factory()}
		}
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SettingsScreen) View(width, height int) string {
	header := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Settings")

	return header + "\n\n" + s.menu.View()
}
