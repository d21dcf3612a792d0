// Package dashboard is the per-language home: the lesson track, challenge
// shortcuts, and navigation into settings.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguaquest/internal/catalog"
	"github.com/abhisek/linguaquest/internal/challenge"
	"github.com/abhisek/linguaquest/internal/progression"
	"github.com/abhisek/linguaquest/internal/router"
	"github.com/abhisek/linguaquest/internal/screen"
	"github.com/abhisek/linguaquest/internal/screens/lessonrun"
	"github.com/abhisek/linguaquest/internal/store"
	"github.com/abhisek/linguaquest/internal/ui/components"
	"github.com/abhisek/linguaquest/internal/ui/theme"
)

// DashboardScreen is the home screen for the selected language.
type DashboardScreen struct {
	cat    catalog.Catalog
	prog   *progression.Store
	lang   catalog.Language
	daily  *challenge.Daily
	weekly *challenge.Weekly

	challengesFactory func() screen.Screen
	settingsFactory   func() screen.Screen
	languagesFactory  func() screen.Screen

	menu components.Menu
}

var _ screen.Screen = (*DashboardScreen)(nil)

// Deps carries what the dashboard and its child screens need.
type Deps struct {
	Catalog catalog.Catalog
	Prog    *progression.Store
	Flags   store.FlagRepo

	ChallengesFactory func() screen.Screen
	SettingsFactory   func() screen.Screen
	LanguagesFactory  func() screen.Screen
}

// New creates the dashboard for a language.
func New(deps Deps, lang catalog.Language) *DashboardScreen {
	s := &DashboardScreen{
		cat:               deps.Catalog,
		prog:              deps.Prog,
		lang:              lang,
		daily:             challenge.NewDaily(deps.Flags, deps.Prog),
		weekly:            challenge.NewWeekly(deps.Flags, deps.Prog),
		challengesFactory: deps.ChallengesFactory,
		settingsFactory:   deps.SettingsFactory,
		languagesFactory:  deps.LanguagesFactory,
	}
	s.menu = components.NewMenu(s.buildItems())
	return s
}

// buildItems derives menu entries from the current progression state, so
// lock markers stay fresh after a lesson completes.
func (s *DashboardScreen) buildItems() []components.MenuItem {
	lessons := s.cat.Lessons(s.lang.ID)
	completed := s.prog.CompletedSet()

	var items []components.MenuItem
	for i, l := range lessons {
		l := l
		locked := catalog.Locked(lessons, completed, i)

		var marker string
		switch {
		case completed[l.ID]:
			marker = "✓ "
		case locked:
			marker = "🔒 "
		default:
			marker = "  "
		}

		items = append(items, components.MenuItem{
			Label:    fmt.Sprintf("%s%s  (+%d XP)", marker, l.Title, l.XPReward),
			Disabled: locked,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: lessonrun.New(l, s.prog)}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{
			Label: "Challenges",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: s.challengesFactory()}
				}
			},
		},
		components.MenuItem{
			Label: "Settings",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: s.settingsFactory()}
				}
			},
		},
		components.MenuItem{
			Label: "Switch Language",
			Action: func() tea.Cmd {
				next := s.languagesFactory()
				return func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: next}
				}
			},
		},
		components.MenuItem{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)

	return items
}

func (s *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (s *DashboardScreen) Title() string {
	return fmt.Sprintf("%s %s", s.lang.Flag, s.lang.Name)
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Rebuild lock markers before handling input: a lesson may have been
	// completed since this screen was last on top.
	selected := s.menu.Selected
	s.menu = components.NewMenu(s.buildItems())
	if selected < len(s.menu.Items) && !s.menu.Items[selected].Disabled {
		s.menu.Selected = selected
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *DashboardScreen) View(width, height int) string {
	lessons := s.cat.Lessons(s.lang.ID)
	completed := s.prog.CompletedSet()

	done := 0
	for _, l := range lessons {
		if completed[l.ID] {
			done++
		}
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  %s %s Quest", s.lang.Flag, s.lang.Name)))
	b.WriteString("\n\n")

	var pct float64
	if len(lessons) > 0 {
		pct = float64(done) / float64(len(lessons))
	}
	bar := components.NewProgressBar(
		fmt.Sprintf("  Progress %d/%d", done, len(lessons)), pct, true, width-8)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	challengeLine := "  Daily challenge: "
	if s.daily.Completed(s.lang.ID) {
		challengeLine += "done ✓"
	} else {
		challengeLine += fmt.Sprintf("+%d XP waiting", challenge.DailyXP)
	}
	challengeLine += fmt.Sprintf("    Weekly: %d%%", s.weekly.Progress(s.lang.ID))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(challengeLine))
	b.WriteString("\n\n")

	b.WriteString(s.menu.View())

	return b.String()
}
