// Package challenges shows the daily and weekly challenges for the selected
// language and lets the learner claim them.
package challenges

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguaquest/internal/challenge"
	"github.com/abhisek/linguaquest/internal/notify"
	"github.com/abhisek/linguaquest/internal/progression"
	"github.com/abhisek/linguaquest/internal/screen"
	"github.com/abhisek/linguaquest/internal/store"
	"github.com/abhisek/linguaquest/internal/ui/components"
	"github.com/abhisek/linguaquest/internal/ui/layout"
	"github.com/abhisek/linguaquest/internal/ui/theme"
)

// ChallengesScreen lists the claimable challenges.
type ChallengesScreen struct {
	languageID string
	daily      *challenge.Daily
	weekly     *challenge.Weekly
	menu       components.Menu
}

var _ screen.Screen = (*ChallengesScreen)(nil)
var _ screen.KeyHintProvider = (*ChallengesScreen)(nil)

// New creates the challenges screen for a language.
func New(flags store.FlagRepo, prog *progression.Store, languageID string) *ChallengesScreen {
	s := &ChallengesScreen{
		languageID: languageID,
		daily:      challenge.NewDaily(flags, prog),
		weekly:     challenge.NewWeekly(flags, prog),
	}
	s.menu = components.NewMenu(s.buildItems())
	return s
}

func (s *ChallengesScreen) buildItems() []components.MenuItem {
	var items []components.MenuItem

	dailyDone := s.daily.Completed(s.languageID)
	dailyLabel := fmt.Sprintf("Daily challenge  (+%d XP, streak +1)", challenge.DailyXP)
	if dailyDone {
		dailyLabel = "Daily challenge  ✓ done for today"
	}
	items = append(items, components.MenuItem{
		Label:    dailyLabel,
		Disabled: dailyDone,
		Action: func() tea.Cmd {
			return s.claimDaily()
		},
	})

	progress := s.weekly.Progress(s.languageID)
	weekDone := s.weekly.Completed(s.languageID)
	for i, task := range challenge.Tasks() {
		i := i
		taskDone := progress >= (i+1)*20
		claimable := !weekDone && progress == i*20

		label := fmt.Sprintf("%s  (+%d XP)", task.Title, task.XP)
		if taskDone {
			label = fmt.Sprintf("%s  ✓", task.Title)
		}
		items = append(items, components.MenuItem{
			Label:    label,
			Disabled: !claimable,
			Action: func() tea.Cmd {
				return s.claimTask(i)
			},
		})
	}

	return items
}

func (s *ChallengesScreen) claimDaily() tea.Cmd {
	xp, err := s.daily.Complete(s.languageID)
	if err != nil {
		return notify.ErrorCmd("Daily challenge already claimed")
	}
	s.refresh()
	return notify.SuccessCmd(fmt.Sprintf("Daily challenge complete! +%d XP 🎉", xp))
}

func (s *ChallengesScreen) claimTask(i int) tea.Cmd {
	res, err := s.weekly.CompleteTask(s.languageID, i)
	if err != nil {
		return notify.ErrorCmd("Complete the earlier tasks first")
	}
	s.refresh()
	if res.Done {
		return notify.SuccessCmd(fmt.Sprintf("Weekly challenge complete! +%d XP 🏆", res.TaskXP+res.BonusXP))
	}
	return notify.SuccessCmd(fmt.Sprintf("Task complete! +%d XP ⭐", res.TaskXP))
}

func (s *ChallengesScreen) refresh() {
	selected := s.menu.Selected
	s.menu = components.NewMenu(s.buildItems())
	if selected < len(s.menu.Items) {
		s.menu.Selected = selected
	}
}

func (s *ChallengesScreen) Init() tea.Cmd {
	return nil
}

func (s *ChallengesScreen) Title() string {
	return "Challenges"
}

func (s *ChallengesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Claim"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ChallengesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ChallengesScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Challenges"))
	b.WriteString("\n")

	resets := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Daily resets in %s  ·  weekly in %s",
			formatDuration(s.daily.ResetsIn()), formatDuration(s.weekly.ResetsIn())))
	b.WriteString(resets)
	b.WriteString("\n\n")

	progress := s.weekly.Progress(s.languageID)
	bar := components.NewProgressBar("  Weekly progress", float64(progress)/100, true, width-8)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(s.menu.View())

	return b.String()
}

func formatDuration(d time.Duration) string {
	if d >= 24*time.Hour {
		days := int(d.Hours()) / 24
		hours := int(d.Hours()) % 24
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, mins)
}
