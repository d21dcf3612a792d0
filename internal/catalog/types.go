// Package catalog holds the read-only content catalog: languages and their
// ordered lesson lists. Content is embedded at build time and validated
// against a JSON schema on load; it is never mutated at runtime.
package catalog

// ExerciseType discriminates the four exercise interaction kinds.
type ExerciseType string

const (
	MultipleChoice ExerciseType = "multiple-choice"
	FillBlank      ExerciseType = "fill-blank"
	DragDrop       ExerciseType = "drag-drop"
	StoryMode      ExerciseType = "story-mode"
)

// Difficulty tags a lesson's tier.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Language is a learnable language.
type Language struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// Exercise is a single gradable question unit within a lesson.
//
// Answer holds the correct value for multiple-choice, fill-blank and
// story-mode. AnswerSeq holds the drag-drop answer list, paired positionally
// with Options.
type Exercise struct {
	ID          string       `json:"id"`
	Type        ExerciseType `json:"type"`
	Prompt      string       `json:"prompt"`
	Options     []string     `json:"options,omitempty"`
	Answer      string       `json:"answer,omitempty"`
	AnswerSeq   []string     `json:"answerSeq,omitempty"`
	Explanation string       `json:"explanation,omitempty"`
	XPValue     int          `json:"xpValue"`
}

// Lesson is an ordered sequence of exercises with a completion reward.
type Lesson struct {
	ID          string     `json:"id"`
	LanguageID  string     `json:"-"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	XPReward    int        `json:"xpReward"`
	FunFact     string     `json:"funFact,omitempty"`
	Exercises   []Exercise `json:"exercises"`
}

// Locked reports whether the lesson at index i in an ordered lesson list is
// locked for a user with the given completed-lesson set. The first lesson is
// always unlocked; later lessons unlock when their predecessor is completed.
func Locked(lessons []Lesson, completed map[string]bool, i int) bool {
	if i <= 0 {
		return false
	}
	if i >= len(lessons) {
		return true
	}
	return !completed[lessons[i-1].ID]
}
