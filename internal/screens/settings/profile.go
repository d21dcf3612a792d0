package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguaquest/internal/notify"
	"github.com/abhisek/linguaquest/internal/progression"
	"github.com/abhisek/linguaquest/internal/screen"
	"github.com/abhisek/linguaquest/internal/ui/components"
	"github.com/abhisek/linguaquest/internal/ui/layout"
	"github.com/abhisek/linguaquest/internal/ui/theme"
)

// profileScreen shows the learner's stats and lets them rename themselves.
type profileScreen struct {
	prog    *progression.Store
	input   components.TextInput
	editing bool
}

var _ screen.Screen = (*profileScreen)(nil)
var _ screen.KeyHintProvider = (*profileScreen)(nil)
var _ screen.EscHandler = (*profileScreen)(nil)

// HandlesEsc keeps Esc local while a rename is in progress.
func (s *profileScreen) HandlesEsc() bool {
	return s.editing
}

func newProfileScreen(prog *progression.Store) *profileScreen {
	return &profileScreen{prog: prog}
}

func (s *profileScreen) Init() tea.Cmd {
	return nil
}

func (s *profileScreen) Title() string {
	return "Profile"
}

func (s *profileScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save name"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "E", Description: "Edit name"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *profileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.editing {
		switch kmsg.String() {
		case "enter":
			name := strings.TrimSpace(s.input.Value())
			s.editing = false
			if name == "" {
				return s, nil
			}
			s.prog.SetName(name)
			return s, notify.SuccessCmd("Name updated")
		case "esc":
			s.editing = false
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(kmsg)
		return s, cmd
	}

	if kmsg.String() == "e" {
		s.editing = true
		s.input = components.NewTextInput(s.prog.Profile().Name, 30)
		return s, s.input.Init()
	}

	return s, nil
}

func (s *profileScreen) View(width, height int) string {
	p := s.prog.Profile()

	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Profile"))
	b.WriteString("\n\n")

	if s.editing {
		b.WriteString(label.Render("  Name:  ") + s.input.View() + "\n")
	} else {
		b.WriteString(label.Render("  Name:         ") + value.Render(p.Name) + "\n")
	}

	level := string(p.SkillLevel)
	if level == "" {
		level = "not set"
	}
	b.WriteString(label.Render("  Skill level:  ") + value.Render(level) + "\n\n")

	b.WriteString(label.Render("  XP:           ") + value.Render(fmt.Sprintf("⚡ %d", p.XP)) + "\n")
	b.WriteString(label.Render("  Hearts:       ") + value.Render(fmt.Sprintf("♥ %d/%d", p.Hearts, p.MaxHearts)) + "\n")
	b.WriteString(label.Render("  Streak:       ") + value.Render(fmt.Sprintf("🔥 %d days", p.Streak)) + "\n")
	b.WriteString(label.Render("  Lessons done: ") + value.Render(fmt.Sprintf("%d", len(p.CompletedLessons))) + "\n")

	return b.String()
}
