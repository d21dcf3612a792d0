package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguaquest/internal/ui/theme"
)

// DragMatch is the keyboard rendition of a drag-and-drop exercise: each item
// on the left must be matched with one target from the pool. The caller
// supplies the pool pre-shuffled so the solution isn't given away by order.
type DragMatch struct {
	Question  string
	Items     []string // fixed rows, matched top to bottom
	Pool      []string // targets to assign, display order
	Submitted bool

	assigned []int // pool index per item, -1 while empty
	used     []bool
	cursor   int // highlighted pool entry
	row      int // next item to fill
}

// NewDragMatch creates a new matching component.
func NewDragMatch(question string, items, pool []string) DragMatch {
	assigned := make([]int, len(items))
	for i := range assigned {
		assigned[i] = -1
	}
	return DragMatch{
		Question: question,
		Items:    items,
		Pool:     pool,
		assigned: assigned,
		used:     make([]bool, len(pool)),
	}
}

// Init returns nil.
func (d DragMatch) Init() tea.Cmd {
	return nil
}

// Update handles pool navigation, assignment, and undo.
func (d DragMatch) Update(msg tea.Msg) (DragMatch, tea.Cmd) {
	if d.Submitted {
		return d, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "left", "h", "up", "k":
		for i := d.cursor - 1; i >= 0; i-- {
			if !d.used[i] {
				d.cursor = i
				break
			}
		}
	case "right", "l", "down", "j":
		for i := d.cursor + 1; i < len(d.Pool); i++ {
			if !d.used[i] {
				d.cursor = i
				break
			}
		}
	case "enter":
		if d.row < len(d.Items) && d.cursor < len(d.Pool) && !d.used[d.cursor] {
			d.assigned[d.row] = d.cursor
			d.used[d.cursor] = true
			d.row++
			d.moveCursorToFree()
		}
	case "backspace":
		if d.row > 0 {
			d.row--
			freed := d.assigned[d.row]
			d.assigned[d.row] = -1
			d.used[freed] = false
			d.cursor = freed
		}
	}

	return d, nil
}

func (d *DragMatch) moveCursorToFree() {
	if d.cursor < len(d.Pool) && !d.used[d.cursor] {
		return
	}
	for i := range d.Pool {
		if !d.used[i] {
			d.cursor = i
			return
		}
	}
}

// Complete reports whether every item has a match.
func (d DragMatch) Complete() bool {
	return d.row >= len(d.Items)
}

// Placement returns the matched target per item, in item order. Unfilled
// rows come back as empty strings.
func (d DragMatch) Placement() []string {
	out := make([]string, len(d.Items))
	for i, p := range d.assigned {
		if p >= 0 {
			out[i] = d.Pool[p]
		}
	}
	return out
}

// View renders the matched rows and the remaining pool.
func (d DragMatch) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(d.Question) + "\n\n"

	for i, item := range d.Items {
		line := fmt.Sprintf("  %s  →  ", item)
		switch {
		case d.assigned[i] >= 0:
			line += d.Pool[d.assigned[i]]
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		case i == d.row && !d.Submitted:
			line += "_____"
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			line += "_____"
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		}
	}

	if d.Submitted {
		return s
	}

	s += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Pick a match:") + "\n  "
	for i, opt := range d.Pool {
		if d.used[i] {
			continue
		}
		if i == d.cursor {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("[ "+opt+" ]") + "  "
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render("  "+opt+"  ") + "  "
		}
	}
	s += "\n"

	return s
}
