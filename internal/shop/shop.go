// Package shop is the XP economy: the cosmetic theme catalog and the boost
// items learners spend XP on. All balance checks go through the progression
// store's SpendXP, so a purchase can never overdraw.
package shop

import (
	"errors"
	"fmt"

	"github.com/abhisek/linguaquest/internal/progression"
)

// Boost prices in XP.
const (
	SkipQuestionCost = 20
	HeartRefillCost  = 50
	BonusLessonCost  = 100
)

var (
	ErrInsufficientXP = errors.New("not enough XP")
	ErrHeartsFull     = errors.New("hearts already full")
)

// ThemeColors are the terminal colors a cosmetic theme paints the UI with.
type ThemeColors struct {
	Primary   string
	Secondary string
	Accent    string
}

// Theme is one purchasable color theme. Cost zero means always available.
type Theme struct {
	ID      string
	Name    string
	Preview string
	Cost    int
	Colors  ThemeColors
}

var themes = []Theme{
	{
		ID:      progression.DefaultThemeID,
		Name:    "Ocean Deep",
		Preview: "🌊",
		Cost:    0,
		Colors:  ThemeColors{Primary: "#3399FF", Secondary: "#5C2EB8", Accent: "#F7C331"},
	},
	{
		ID:      "forest",
		Name:    "Forest Green",
		Preview: "🌲",
		Cost:    100,
		Colors:  ThemeColors{Primary: "#16A34A", Secondary: "#41D741", Accent: "#F59E0B"},
	},
	{
		ID:      "sunset",
		Name:    "Sunset Orange",
		Preview: "🌅",
		Cost:    150,
		Colors:  ThemeColors{Primary: "#FF6933", Secondary: "#EF4444", Accent: "#F7C331"},
	},
	{
		ID:      "royal",
		Name:    "Royal Purple",
		Preview: "👑",
		Cost:    200,
		Colors:  ThemeColors{Primary: "#9933FF", Secondary: "#7A2EB8", Accent: "#F7C331"},
	},
}

// Themes lists every theme in display order.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// ThemeByID looks a theme up, falling back to the default theme when the id
// is unknown (a profile may reference a theme from a newer build).
func ThemeByID(id string) Theme {
	for _, t := range themes {
		if t.ID == id {
			return t
		}
	}
	return themes[0]
}

// Shop mediates purchases against one learner's progression.
type Shop struct {
	prog *progression.Store
}

// New builds a shop over the learner's progression store.
func New(prog *progression.Store) *Shop {
	return &Shop{prog: prog}
}

// ThemeOutcome reports a theme selection.
type ThemeOutcome struct {
	Theme     Theme
	Purchased bool // XP was spent this time, not just re-activated
}

// SelectTheme activates the theme, buying it first if needed. Free and
// already-owned themes activate without charge; otherwise the cost is
// deducted and the theme is permanently unlocked before activation.
func (s *Shop) SelectTheme(id string) (ThemeOutcome, error) {
	var theme *Theme
	for i := range themes {
		if themes[i].ID == id {
			theme = &themes[i]
			break
		}
	}
	if theme == nil {
		return ThemeOutcome{}, fmt.Errorf("unknown theme %q", id)
	}

	if theme.Cost == 0 || s.prog.ThemeUnlocked(id) {
		s.prog.SetSelectedTheme(id)
		return ThemeOutcome{Theme: *theme}, nil
	}
	if !s.prog.SpendXP(theme.Cost) {
		return ThemeOutcome{}, ErrInsufficientXP
	}
	s.prog.UnlockTheme(id)
	s.prog.SetSelectedTheme(id)
	return ThemeOutcome{Theme: *theme, Purchased: true}, nil
}

// RefillHearts buys a full heart restore. Refused when hearts are already
// full so the learner cannot waste XP on nothing.
func (s *Shop) RefillHearts() error {
	p := s.prog.Profile()
	if p.Hearts >= p.MaxHearts {
		return ErrHeartsFull
	}
	if !s.prog.SpendXP(HeartRefillCost) {
		return ErrInsufficientXP
	}
	s.prog.RestoreHearts()
	return nil
}

// BuySkip pays for skipping one question during a lesson. The caller applies
// the skip to its run after a successful purchase.
func (s *Shop) BuySkip() error {
	if !s.prog.SpendXP(SkipQuestionCost) {
		return ErrInsufficientXP
	}
	return nil
}
