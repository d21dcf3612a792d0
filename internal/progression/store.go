// Package progression owns the single authoritative learner state: XP,
// hearts, streak, completed lessons, owned themes, and the selected
// language/theme pointers. All mutations go through Store methods; reads
// always reflect the latest committed mutation.
package progression

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/abhisek/linguaquest/internal/calendar"
	"github.com/abhisek/linguaquest/internal/store"
)

// Store is the injectable progression state container. Every mutation
// persists the full profile record through the repo; persistence failures
// never interrupt gameplay (writes are fire-and-forget).
type Store struct {
	mu        sync.Mutex
	profile   Profile
	completed map[string]bool
	unlocked  map[string]bool
	repo      store.ProfileRepo

	// now is the clock, injectable for streak tests.
	now func() time.Time
}

// Load rehydrates the Store from the durable record. A missing or malformed
// record falls back to the default profile; this path never returns an error
// to the caller.
func Load(repo store.ProfileRepo) *Store {
	s := &Store{repo: repo, now: time.Now}

	data, err := repo.Load()
	if err == nil {
		var p Profile
		if json.Unmarshal(data, &p) == nil && p.valid() {
			s.profile = p
		}
	}
	if s.profile.ID == "" {
		s.profile = NewDefaultProfile()
		s.persistLocked()
	}

	s.completed = make(map[string]bool, len(s.profile.CompletedLessons))
	for _, id := range s.profile.CompletedLessons {
		s.completed[id] = true
	}
	s.unlocked = make(map[string]bool, len(s.profile.UnlockedThemes))
	for _, id := range s.profile.UnlockedThemes {
		s.unlocked[id] = true
	}
	if !s.unlocked[DefaultThemeID] {
		s.unlocked[DefaultThemeID] = true
		s.profile.UnlockedThemes = append(s.profile.UnlockedThemes, DefaultThemeID)
	}

	return s
}

// Profile returns a copy of the current profile.
func (s *Store) Profile() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profile
	p.CompletedLessons = append([]string(nil), s.profile.CompletedLessons...)
	p.UnlockedThemes = append([]string(nil), s.profile.UnlockedThemes...)
	return p
}

// AddXP increments XP by amount. Non-positive amounts are ignored.
func (s *Store) AddXP(amount int) {
	if amount <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.XP += amount
	s.persistLocked()
}

// SpendXP decrements XP by amount if the balance covers it, reporting
// success. The check and decrement form one critical section so concurrent
// spends cannot both pass the balance check.
func (s *Store) SpendXP(amount int) bool {
	if amount < 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile.XP < amount {
		return false
	}
	s.profile.XP -= amount
	s.persistLocked()
	return true
}

// LoseHeart decrements hearts, floored at 0. Calls at the floor are no-ops.
func (s *Store) LoseHeart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile.Hearts == 0 {
		return
	}
	s.profile.Hearts--
	s.persistLocked()
}

// RestoreHearts sets hearts back to the ceiling unconditionally.
func (s *Store) RestoreHearts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Hearts = s.profile.MaxHearts
	s.persistLocked()
}

// UpdateStreak advances the daily streak based on the calendar day:
// same day is a no-op, exactly yesterday extends the streak, anything else
// (first play, or a gap of two or more days) restarts it at 1.
func (s *Store) UpdateStreak() {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now()
	last := s.profile.LastPlayDate

	switch {
	case calendar.IsToday(last, today):
		return
	case calendar.IsYesterday(last, today):
		s.profile.Streak++
	default:
		s.profile.Streak = 1
	}
	s.profile.LastPlayDate = calendar.DayKey(today)
	s.persistLocked()
}

// CompleteLesson records a lesson as completed. Recording is set-semantic:
// recompleting a lesson does not duplicate the entry (the XP reward for a
// repeat completion is still the caller's decision).
func (s *Store) CompleteLesson(lessonID string) {
	if lessonID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed[lessonID] {
		return
	}
	s.completed[lessonID] = true
	s.profile.CompletedLessons = append(s.profile.CompletedLessons, lessonID)
	s.persistLocked()
}

// LessonCompleted reports whether lessonID has been completed.
func (s *Store) LessonCompleted(lessonID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed[lessonID]
}

// CompletedSet returns the completed-lesson set as a map.
func (s *Store) CompletedSet() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]bool, len(s.completed))
	for id := range s.completed {
		out[id] = true
	}
	return out
}

// UnlockTheme adds a theme to the owned set.
func (s *Store) UnlockTheme(themeID string) {
	if themeID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unlocked[themeID] {
		return
	}
	s.unlocked[themeID] = true
	s.profile.UnlockedThemes = append(s.profile.UnlockedThemes, themeID)
	s.persistLocked()
}

// ThemeUnlocked reports whether the user owns themeID.
func (s *Store) ThemeUnlocked(themeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unlocked[themeID]
}

// SetSelectedTheme switches the active theme pointer. Ownership and cost
// gating happen in the settings flow before this is called.
func (s *Store) SetSelectedTheme(themeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.SelectedTheme = themeID
	s.persistLocked()
}

// SetSelectedLanguage switches the active language. An empty id returns the
// user to the language picker.
func (s *Store) SetSelectedLanguage(languageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.SelectedLanguage = languageID
	s.persistLocked()
}

// UpdateNotes overwrites the free-text notes verbatim.
func (s *Store) UpdateNotes(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Notes = text
	s.persistLocked()
}

// SetName updates the display name. Blank names are ignored.
func (s *Store) SetName(name string) {
	if name == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Name = name
	s.persistLocked()
}

// SetSkillLevel records the onboarding skill level. It only takes effect
// once; later calls are ignored.
func (s *Store) SetSkillLevel(level SkillLevel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile.SkillLevel != "" {
		return
	}
	s.profile.SkillLevel = level
	s.persistLocked()
}

// persistLocked writes the profile record. Called with the mutex held.
// Failures are dropped: losing a write is acceptable for this data, losing
// the game loop is not.
func (s *Store) persistLocked() {
	if s.repo == nil {
		return
	}
	data, err := json.Marshal(s.profile)
	if err != nil {
		return
	}
	_ = s.repo.Save(data)
}
