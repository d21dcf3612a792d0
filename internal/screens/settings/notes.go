package settings

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguaquest/internal/notify"
	"github.com/abhisek/linguaquest/internal/progression"
	"github.com/abhisek/linguaquest/internal/screen"
	"github.com/abhisek/linguaquest/internal/ui/layout"
	"github.com/abhisek/linguaquest/internal/ui/theme"
)

// notesScreen is a free-form scratchpad persisted on the profile.
type notesScreen struct {
	prog *progression.Store
	area textarea.Model
}

var _ screen.Screen = (*notesScreen)(nil)
var _ screen.KeyHintProvider = (*notesScreen)(nil)

func newNotesScreen(prog *progression.Store) *notesScreen {
	ta := textarea.New()
	ta.Placeholder = "Vocabulary, grammar rules, mnemonics..."
	ta.SetValue(prog.Profile().Notes)
	ta.Focus()

	return &notesScreen{prog: prog, area: ta}
}

func (s *notesScreen) Init() tea.Cmd {
	return s.area.Focus()
}

func (s *notesScreen) Title() string {
	return "Notes"
}

func (s *notesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *notesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "ctrl+s" {
		s.prog.UpdateNotes(s.area.Value())
		return s, notify.SuccessCmd("Notes saved!")
	}

	var cmd tea.Cmd
	s.area, cmd = s.area.Update(msg)
	return s, cmd
}

func (s *notesScreen) View(width, height int) string {
	s.area.SetWidth(width - 6)
	s.area.SetHeight(height - 4)

	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  My Notes")
	return header + "\n\n" + s.area.View()
}
