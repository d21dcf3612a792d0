package lesson

import (
	"strings"

	"github.com/abhisek/linguaquest/internal/catalog"
)

// Answer is the learner's submission for one exercise. Text carries the
// selected option or typed input; Placement carries the drag-drop mapping,
// where Placement[i] is the target the learner dropped Options[i] onto.
type Answer struct {
	Text      string
	Placement []string
}

// Check evaluates an answer against the exercise's correct value.
//
// Multiple-choice and story-mode compare the selected option exactly.
// Fill-blank compares typed input case-insensitively with surrounding
// whitespace trimmed. Drag-drop requires every option to be placed on its
// positionally-paired target; a partial placement is never correct.
func Check(ex catalog.Exercise, ans Answer) bool {
	switch ex.Type {
	case catalog.MultipleChoice, catalog.StoryMode:
		return ans.Text == ex.Answer
	case catalog.FillBlank:
		return strings.EqualFold(strings.TrimSpace(ans.Text), strings.TrimSpace(ex.Answer))
	case catalog.DragDrop:
		if len(ans.Placement) != len(ex.AnswerSeq) {
			return false
		}
		for i, target := range ex.AnswerSeq {
			if ans.Placement[i] != target {
				return false
			}
		}
		return true
	default:
		return false
	}
}
