package challenges

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linguaquest/internal/challenge"
	"github.com/abhisek/linguaquest/internal/notify"
	"github.com/abhisek/linguaquest/internal/progression"
	"github.com/abhisek/linguaquest/internal/screen"
	"github.com/abhisek/linguaquest/internal/store"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen() (*ChallengesScreen, *progression.Store) {
	prog := progression.Load(&store.MemoryProfileRepo{})
	return New(&store.MemoryFlagRepo{}, prog, "spanish"), prog
}

func TestClaimDaily(t *testing.T) {
	s, prog := testScreen()

	// The daily challenge is the first menu entry.
	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a notification command")
	}
	n, ok := cmd().(notify.Notification)
	if !ok {
		t.Fatalf("expected notify.Notification, got %T", cmd())
	}
	if n.Severity != notify.Success {
		t.Errorf("severity = %v, want success", n.Severity)
	}
	if prog.Profile().XP != challenge.DailyXP {
		t.Errorf("XP = %d, want %d", prog.Profile().XP, challenge.DailyXP)
	}

	// Claimed entry is disabled, so the cursor stays elsewhere and the
	// label shows it done.
	ss := scr.(*ChallengesScreen)
	if !strings.Contains(ss.View(80, 24), "done for today") {
		t.Error("expected the daily entry marked done")
	}
}

func TestClaimWeeklyTaskInOrder(t *testing.T) {
	s, prog := testScreen()

	// Move to the first weekly task and claim it.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a notification command")
	}
	n := cmd().(notify.Notification)
	if n.Severity != notify.Success {
		t.Errorf("severity = %v, want success", n.Severity)
	}

	tasks := challenge.Tasks()
	if prog.Profile().XP != tasks[0].XP {
		t.Errorf("XP = %d, want %d", prog.Profile().XP, tasks[0].XP)
	}

	ss := scr.(*ChallengesScreen)
	if ss.weekly.Progress("spanish") != 20 {
		t.Errorf("progress = %d, want 20", ss.weekly.Progress("spanish"))
	}
}

func TestViewShowsResetTimers(t *testing.T) {
	s, _ := testScreen()
	view := s.View(80, 24)
	if !strings.Contains(view, "Daily resets in") {
		t.Error("expected reset timers in the view")
	}
	if !strings.Contains(view, "Weekly progress") {
		t.Error("expected the weekly progress bar in the view")
	}
}

func TestKeyHints(t *testing.T) {
	s, _ := testScreen()
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}
