package progression

import "github.com/google/uuid"

// SkillLevel is the self-reported level chosen during onboarding. It is
// display-only; nothing else branches on it.
type SkillLevel string

const (
	SkillNewbie       SkillLevel = "newbie"
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// DefaultThemeID is the free theme every profile owns.
const DefaultThemeID = "default"

// DefaultMaxHearts is the heart ceiling for new profiles.
const DefaultMaxHearts = 5

// Profile is the full persisted learner state. It is serialized as one JSON
// record under a fixed storage key.
//
// Invariants maintained by the Store: 0 <= Hearts <= MaxHearts, XP >= 0,
// Streak >= 0, LastPlayDate is empty or a calendar-day key.
type Profile struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	XP               int        `json:"xp"`
	Hearts           int        `json:"hearts"`
	MaxHearts        int        `json:"maxHearts"`
	Streak           int        `json:"streak"`
	LastPlayDate     string     `json:"lastPlayDate"`
	CompletedLessons []string   `json:"completedLessons"`
	UnlockedThemes   []string   `json:"unlockedThemes"`
	Notes            string     `json:"notes"`
	SkillLevel       SkillLevel `json:"skillLevel,omitempty"`
	SelectedLanguage string     `json:"selectedLanguage,omitempty"`
	SelectedTheme    string     `json:"selectedTheme"`
}

// NewDefaultProfile returns the first-run profile.
func NewDefaultProfile() Profile {
	return Profile{
		ID:             uuid.New().String(),
		Name:           "Language Learner",
		Hearts:         DefaultMaxHearts,
		MaxHearts:      DefaultMaxHearts,
		UnlockedThemes: []string{DefaultThemeID},
		SelectedTheme:  DefaultThemeID,
	}
}

// valid reports whether a rehydrated profile is usable. Anything failing
// here falls back to a fresh default (malformed persisted state is never
// surfaced as an error).
func (p Profile) valid() bool {
	return p.ID != "" &&
		p.MaxHearts > 0 &&
		p.Hearts >= 0 && p.Hearts <= p.MaxHearts &&
		p.XP >= 0 &&
		p.Streak >= 0
}
