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

// storeScreen sells XP boosts. Skips are bought in the middle of a lesson,
// so only the heart refill is purchasable here.
type storeScreen struct {
	prog *progression.Store
	shop *shop.Shop
	menu components.Menu
}

var _ screen.Screen = (*storeScreen)(nil)

func newStoreScreen(prog *progression.Store, sh *shop.Shop) *storeScreen {
	s := &storeScreen{prog: prog, shop: sh}
	s.menu = components.NewMenu([]components.MenuItem{
		{
			Label: fmt.Sprintf("Restore Hearts  — %d XP", shop.HeartRefillCost),
			Action: func() tea.Cmd {
				return s.refill()
			},
		},
	})
	return s
}

func (s *storeScreen) refill() tea.Cmd {
	switch err := s.shop.RefillHearts(); err {
	case nil:
		return notify.SuccessCmd("Hearts fully restored!")
	case shop.ErrHeartsFull:
		return notify.InfoCmd("Your hearts are already full")
	default:
		return notify.ErrorCmd("Not enough XP")
	}
}

func (s *storeScreen) Init() tea.Cmd {
	return nil
}

func (s *storeScreen) Title() string {
	return "XP Store"
}

func (s *storeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *storeScreen) View(width, height int) string {
	p := s.prog.Profile()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  XP Store"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Balance: ⚡ %d XP    Hearts: ♥ %d/%d", p.XP, p.Hearts, p.MaxHearts)))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render(fmt.Sprintf("  Tip: press Ctrl+S during a lesson to skip a question for %d XP", shop.SkipQuestionCost)))
	return b.String()
}
