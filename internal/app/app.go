// Package app wires the whole TUI together: the screen router, the header
// stats, the toast area, and the first-run flow.
package app

import (
	"fmt"
	imgcolor "image/color"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguaquest/internal/catalog"
	"github.com/abhisek/linguaquest/internal/notify"
	"github.com/abhisek/linguaquest/internal/progression"
	"github.com/abhisek/linguaquest/internal/router"
	"github.com/abhisek/linguaquest/internal/screen"
	"github.com/abhisek/linguaquest/internal/screens/challenges"
	"github.com/abhisek/linguaquest/internal/screens/dashboard"
	"github.com/abhisek/linguaquest/internal/screens/languages"
	"github.com/abhisek/linguaquest/internal/screens/onboarding"
	"github.com/abhisek/linguaquest/internal/screens/settings"
	"github.com/abhisek/linguaquest/internal/screens/welcome"
	"github.com/abhisek/linguaquest/internal/shop"
	"github.com/abhisek/linguaquest/internal/store"
	"github.com/abhisek/linguaquest/internal/ui/layout"
	"github.com/abhisek/linguaquest/internal/ui/theme"
)

const toastDuration = 3 * time.Second

// clearToastMsg expires a toast. Seq guards against clearing a newer toast
// with an older timer.
type clearToastMsg struct {
	seq int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	prog   *progression.Store
	width  int
	height int

	toast    *notify.Notification
	toastSeq int
}

// newAppModel builds the model and the screen factory graph.
func newAppModel(st *store.Store, cat catalog.Catalog) AppModel {
	prog := progression.Load(st.ProfileRepo())
	flags := st.FlagRepo()

	// Paint with the learner's selected theme from the start.
	colors := shop.ThemeByID(prog.Profile().SelectedTheme).Colors
	theme.Apply(colors.Primary, colors.Secondary, colors.Accent)

	var languagesFactory func() screen.Screen

	dashFactory := func(lang catalog.Language) screen.Screen {
		return dashboard.New(dashboard.Deps{
			Catalog: cat,
			Prog:    prog,
			Flags:   flags,
			ChallengesFactory: func() screen.Screen {
				return challenges.New(flags, prog, lang.ID)
			},
			SettingsFactory: func() screen.Screen {
				return settings.New(prog)
			},
			LanguagesFactory: func() screen.Screen {
				return languagesFactory()
			},
		}, lang)
	}

	languagesFactory = func() screen.Screen {
		return languages.New(cat, prog, dashFactory)
	}

	// After the splash: onboarding on first run, then straight to the
	// learner's language if one is already selected.
	next := func() screen.Screen {
		home := func() screen.Screen {
			if id := prog.Profile().SelectedLanguage; id != "" {
				for _, lang := range cat.Languages() {
					if lang.ID == id && len(cat.Lessons(id)) > 0 {
						return dashFactory(lang)
					}
				}
			}
			return languagesFactory()
		}
		if prog.Profile().SkillLevel == "" {
			return onboarding.New(prog, home)
		}
		return home()
	}

	return AppModel{
		router: router.New(welcome.New(next)),
		prog:   prog,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case notify.Notification:
		m.toast = &msg
		m.toastSeq++
		seq := m.toastSeq
		return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
			return clearToastMsg{seq: seq}
		})

	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	p := m.prog.Profile()
	header := layout.RenderHeader(title, layout.HeaderStats{
		Hearts:    p.Hearts,
		MaxHearts: p.MaxHearts,
		XP:        p.XP,
		Streak:    p.Streak,
	}, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)

	if m.toast != nil {
		content = m.renderToast() + "\n" + content
	}

	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) renderToast() string {
	var color imgcolor.Color
	switch m.toast.Severity {
	case notify.Success:
		color = theme.Success
	case notify.Error:
		color = theme.Error
	default:
		color = theme.Secondary
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(color).
		Bold(true).
		Render(m.toast.Message)
}

// Run starts the Bubble Tea program.
func Run(st *store.Store, cat catalog.Catalog) error {
	p := tea.NewProgram(newAppModel(st, cat))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
