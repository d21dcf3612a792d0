package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguaquest/internal/notify"
	"github.com/abhisek/linguaquest/internal/progression"
	"github.com/abhisek/linguaquest/internal/screen"
	"github.com/abhisek/linguaquest/internal/shop"
	"github.com/abhisek/linguaquest/internal/ui/components"
	"github.com/abhisek/linguaquest/internal/ui/theme"
)

// themesScreen is the cosmetic theme picker and storefront.
type themesScreen struct {
	prog *progression.Store
	shop *shop.Shop
	menu components.Menu
}

var _ screen.Screen = (*themesScreen)(nil)

func newThemesScreen(prog *progression.Store, sh *shop.Shop) *themesScreen {
	s := &themesScreen{prog: prog, shop: sh}
	s.menu = components.NewMenu(s.buildItems())
	return s
}

func (s *themesScreen) buildItems() []components.MenuItem {
	p := s.prog.Profile()

	var items []components.MenuItem
	for _, t := range shop.Themes() {
		t := t

		label := fmt.Sprintf("%s  %s", t.Preview, t.Name)
		switch {
		case t.ID == p.SelectedTheme:
			label += "  (active)"
		case t.Cost == 0 || s.prog.ThemeUnlocked(t.ID):
			label += "  (owned)"
		default:
			label += fmt.Sprintf("  — %d XP", t.Cost)
		}

		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				return s.selectTheme(t.ID)
			},
		})
	}
	return items
}

func (s *themesScreen) selectTheme(id string) tea.Cmd {
	out, err := s.shop.SelectTheme(id)
	if err != nil {
		return notify.ErrorCmd("Not enough XP to purchase this theme")
	}

	theme.Apply(out.Theme.Colors.Primary, out.Theme.Colors.Secondary, out.Theme.Colors.Accent)

	selected := s.menu.Selected
	s.menu = components.NewMenu(s.buildItems())
	s.menu.Selected = selected

	if out.Purchased {
		return notify.SuccessCmd(fmt.Sprintf("%s theme purchased and activated!", out.Theme.Name))
	}
	return notify.SuccessCmd(fmt.Sprintf("%s theme activated!", out.Theme.Name))
}

func (s *themesScreen) Init() tea.Cmd {
	return nil
}

func (s *themesScreen) Title() string {
	return "Themes"
}

func (s *themesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *themesScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Choose Theme"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Balance: ⚡ %d XP", s.prog.Profile().XP)))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())
	return b.String()
}
