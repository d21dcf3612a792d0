package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/linguaquest/internal/progression"
	"github.com/abhisek/linguaquest/internal/store"
)

func newShop(t *testing.T) (*Shop, *progression.Store) {
	t.Helper()
	prog := progression.Load(&store.MemoryProfileRepo{})
	return New(prog), prog
}

func TestThemeByID_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, "Royal Purple", ThemeByID("royal").Name)
	assert.Equal(t, progression.DefaultThemeID, ThemeByID("no-such-theme").ID)
}

func TestSelectTheme_FreeThemeActivatesWithoutCharge(t *testing.T) {
	s, prog := newShop(t)
	prog.AddXP(500)

	out, err := s.SelectTheme(progression.DefaultThemeID)
	require.NoError(t, err)
	assert.False(t, out.Purchased)
	assert.Equal(t, 500, prog.Profile().XP)
}

func TestSelectTheme_PurchaseUnlocksAndActivates(t *testing.T) {
	s, prog := newShop(t)
	prog.AddXP(150)

	out, err := s.SelectTheme("forest")
	require.NoError(t, err)
	assert.True(t, out.Purchased)
	assert.Equal(t, 50, prog.Profile().XP)
	assert.True(t, prog.ThemeUnlocked("forest"))
	assert.Equal(t, "forest", prog.Profile().SelectedTheme)

	// Re-selecting an owned theme is free.
	prog.SetSelectedTheme(progression.DefaultThemeID)
	out, err = s.SelectTheme("forest")
	require.NoError(t, err)
	assert.False(t, out.Purchased)
	assert.Equal(t, 50, prog.Profile().XP)
}

func TestSelectTheme_InsufficientXP(t *testing.T) {
	s, prog := newShop(t)
	prog.AddXP(80)

	_, err := s.SelectTheme("forest")
	assert.ErrorIs(t, err, ErrInsufficientXP)
	assert.Equal(t, 80, prog.Profile().XP)
	assert.False(t, prog.ThemeUnlocked("forest"))
	assert.Equal(t, progression.DefaultThemeID, prog.Profile().SelectedTheme)
}

func TestSelectTheme_UnknownID(t *testing.T) {
	s, _ := newShop(t)
	_, err := s.SelectTheme("neon")
	assert.Error(t, err)
}

func TestRefillHearts(t *testing.T) {
	s, prog := newShop(t)
	prog.AddXP(60)

	assert.ErrorIs(t, s.RefillHearts(), ErrHeartsFull)

	prog.LoseHeart()
	prog.LoseHeart()
	require.NoError(t, s.RefillHearts())
	assert.Equal(t, progression.DefaultMaxHearts, prog.Profile().Hearts)
	assert.Equal(t, 10, prog.Profile().XP)

	prog.LoseHeart()
	assert.ErrorIs(t, s.RefillHearts(), ErrInsufficientXP)
}

func TestBuySkip(t *testing.T) {
	s, prog := newShop(t)

	assert.ErrorIs(t, s.BuySkip(), ErrInsufficientXP)

	prog.AddXP(25)
	require.NoError(t, s.BuySkip())
	assert.Equal(t, 5, prog.Profile().XP)
}
