package progression

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/linguaquest/internal/calendar"
	"github.com/abhisek/linguaquest/internal/store"
)

func newTestStore(t *testing.T) (*Store, *store.MemoryProfileRepo) {
	t.Helper()
	repo := &store.MemoryProfileRepo{}
	return Load(repo), repo
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestLoad_FirstRun(t *testing.T) {
	s, _ := newTestStore(t)
	p := s.Profile()

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Language Learner", p.Name)
	assert.Equal(t, 0, p.XP)
	assert.Equal(t, DefaultMaxHearts, p.Hearts)
	assert.Equal(t, DefaultMaxHearts, p.MaxHearts)
	assert.Equal(t, 0, p.Streak)
	assert.Empty(t, p.LastPlayDate)
	assert.Equal(t, []string{DefaultThemeID}, p.UnlockedThemes)
	assert.Equal(t, DefaultThemeID, p.SelectedTheme)
}

func TestLoad_Rehydrates(t *testing.T) {
	repo := &store.MemoryProfileRepo{}
	first := Load(repo)
	first.AddXP(120)
	first.CompleteLesson("spanish-basics-1")
	first.SetSelectedLanguage("spanish")

	second := Load(repo)
	p := second.Profile()
	assert.Equal(t, first.Profile().ID, p.ID)
	assert.Equal(t, 120, p.XP)
	assert.True(t, second.LessonCompleted("spanish-basics-1"))
	assert.Equal(t, "spanish", p.SelectedLanguage)
}

func TestLoad_MalformedRecordFallsBack(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"garbage", "not json at all"},
		{"negative xp", `{"id":"u1","xp":-5,"hearts":5,"maxHearts":5}`},
		{"hearts above ceiling", `{"id":"u1","xp":0,"hearts":9,"maxHearts":5}`},
		{"missing id", `{"xp":10,"hearts":5,"maxHearts":5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &store.MemoryProfileRepo{}
			require.NoError(t, repo.Save([]byte(tt.data)))

			s := Load(repo)
			p := s.Profile()
			assert.NotEmpty(t, p.ID)
			assert.Equal(t, 0, p.XP)
			assert.Equal(t, DefaultMaxHearts, p.Hearts)
		})
	}
}

func TestAddXP(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddXP(10)
	s.AddXP(15)
	assert.Equal(t, 25, s.Profile().XP)

	// Invalid amounts change nothing.
	s.AddXP(0)
	s.AddXP(-5)
	assert.Equal(t, 25, s.Profile().XP)
}

func TestSpendXP(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddXP(80)

	// Spec scenario 2: spending beyond the balance fails and changes nothing.
	assert.False(t, s.SpendXP(100))
	assert.Equal(t, 80, s.Profile().XP)

	assert.True(t, s.SpendXP(80))
	assert.Equal(t, 0, s.Profile().XP)

	// Spending the exact remaining balance, and spending from zero.
	assert.True(t, s.SpendXP(0))
	assert.False(t, s.SpendXP(1))
	assert.Equal(t, 0, s.Profile().XP)
}

func TestSpendXP_ConcurrentSpendsNeverOverdraw(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddXP(100)

	var wg sync.WaitGroup
	succeeded := make(chan bool, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			succeeded <- s.SpendXP(10)
		}()
	}
	wg.Wait()
	close(succeeded)

	wins := 0
	for ok := range succeeded {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 10, wins)
	assert.Equal(t, 0, s.Profile().XP)
}

func TestLoseHeart_FloorsAtZero(t *testing.T) {
	s, _ := newTestStore(t)

	// Spec property: hearts+k losses still land on exactly zero.
	for i := 0; i < DefaultMaxHearts+3; i++ {
		s.LoseHeart()
	}
	assert.Equal(t, 0, s.Profile().Hearts)
}

func TestRestoreHearts(t *testing.T) {
	s, _ := newTestStore(t)
	s.LoseHeart()
	s.LoseHeart()

	s.RestoreHearts()
	assert.Equal(t, DefaultMaxHearts, s.Profile().Hearts)

	// Idempotent at the ceiling.
	s.RestoreHearts()
	assert.Equal(t, DefaultMaxHearts, s.Profile().Hearts)
}

func TestUpdateStreak_FirstPlay(t *testing.T) {
	s, _ := newTestStore(t)
	today := time.Date(2026, time.August, 29, 10, 0, 0, 0, time.Local)
	s.now = fixedClock(today)

	s.UpdateStreak()
	p := s.Profile()
	assert.Equal(t, 1, p.Streak)
	assert.Equal(t, calendar.DayKey(today), p.LastPlayDate)
}

func TestUpdateStreak_SameDayIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	today := time.Date(2026, time.August, 29, 10, 0, 0, 0, time.Local)
	s.now = fixedClock(today)

	s.UpdateStreak()
	s.UpdateStreak()
	s.UpdateStreak()

	p := s.Profile()
	assert.Equal(t, 1, p.Streak)
	assert.Equal(t, calendar.DayKey(today), p.LastPlayDate)
}

func TestUpdateStreak_ConsecutiveDay(t *testing.T) {
	s, _ := newTestStore(t)
	day1 := time.Date(2026, time.August, 28, 22, 0, 0, 0, time.Local)
	day2 := time.Date(2026, time.August, 29, 7, 0, 0, 0, time.Local)

	s.now = fixedClock(day1)
	s.UpdateStreak()

	// Spec scenario 4: played yesterday at streak 4 → 5 today.
	s.mu.Lock()
	s.profile.Streak = 4
	s.mu.Unlock()

	s.now = fixedClock(day2)
	s.UpdateStreak()

	p := s.Profile()
	assert.Equal(t, 5, p.Streak)
	assert.Equal(t, calendar.DayKey(day2), p.LastPlayDate)

	// Same-day repeat leaves it at 5.
	s.UpdateStreak()
	assert.Equal(t, 5, s.Profile().Streak)
}

func TestUpdateStreak_GapResets(t *testing.T) {
	s, _ := newTestStore(t)
	day1 := time.Date(2026, time.August, 26, 12, 0, 0, 0, time.Local)
	day2 := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.Local)

	s.now = fixedClock(day1)
	s.UpdateStreak()
	s.mu.Lock()
	s.profile.Streak = 7
	s.mu.Unlock()

	// Spec scenario 5: three days later, streak resets to 1.
	s.now = fixedClock(day2)
	s.UpdateStreak()
	assert.Equal(t, 1, s.Profile().Streak)
}

func TestCompleteLesson_SetSemantics(t *testing.T) {
	s, _ := newTestStore(t)

	s.CompleteLesson("l1")
	s.CompleteLesson("l1")
	s.CompleteLesson("l2")
	s.CompleteLesson("")

	p := s.Profile()
	assert.Equal(t, []string{"l1", "l2"}, p.CompletedLessons)
	assert.True(t, s.LessonCompleted("l1"))
	assert.False(t, s.LessonCompleted("l3"))
	assert.Equal(t, map[string]bool{"l1": true, "l2": true}, s.CompletedSet())
}

func TestThemes(t *testing.T) {
	s, _ := newTestStore(t)

	assert.True(t, s.ThemeUnlocked(DefaultThemeID))
	assert.False(t, s.ThemeUnlocked("forest"))

	s.UnlockTheme("forest")
	s.UnlockTheme("forest")
	assert.True(t, s.ThemeUnlocked("forest"))
	assert.Equal(t, []string{DefaultThemeID, "forest"}, s.Profile().UnlockedThemes)

	s.SetSelectedTheme("forest")
	assert.Equal(t, "forest", s.Profile().SelectedTheme)
}

func TestSelectedLanguageAndNotes(t *testing.T) {
	s, _ := newTestStore(t)

	s.SetSelectedLanguage("french")
	assert.Equal(t, "french", s.Profile().SelectedLanguage)

	// Empty returns to the picker state.
	s.SetSelectedLanguage("")
	assert.Empty(t, s.Profile().SelectedLanguage)

	s.UpdateNotes("  bonjour = hello  ")
	assert.Equal(t, "  bonjour = hello  ", s.Profile().Notes)
}

func TestSetSkillLevel_Once(t *testing.T) {
	s, _ := newTestStore(t)

	s.SetSkillLevel(SkillBeginner)
	s.SetSkillLevel(SkillAdvanced)
	assert.Equal(t, SkillBeginner, s.Profile().SkillLevel)
}

func TestMutationsPersist(t *testing.T) {
	s, repo := newTestStore(t)
	s.AddXP(42)

	data, err := repo.Load()
	require.NoError(t, err)

	var p Profile
	require.NoError(t, json.Unmarshal(data, &p))
	assert.Equal(t, 42, p.XP)
}
