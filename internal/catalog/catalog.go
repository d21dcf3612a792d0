package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed content.json
var embeddedContent []byte

// Catalog is the read-only lookup surface the rest of the application uses.
// Tests inject synthetic catalogs through this interface.
type Catalog interface {
	// Languages returns all languages in display order.
	Languages() []Language

	// Lessons returns the ordered lesson list for a language.
	// A language with no lessons yields an empty slice ("coming soon").
	Lessons(languageID string) []Lesson

	// Lesson looks up a single lesson by id across all languages.
	Lesson(id string) (Lesson, bool)
}

// content mirrors the embedded JSON document.
type content struct {
	Languages []Language          `json:"languages"`
	Lessons   map[string][]Lesson `json:"lessons"`
}

type staticCatalog struct {
	languages []Language
	lessons   map[string][]Lesson
	byID      map[string]Lesson
}

// Load parses and validates the embedded content catalog.
func Load() (Catalog, error) {
	return loadFrom(embeddedContent)
}

func loadFrom(raw []byte) (Catalog, error) {
	if err := validateContent(raw); err != nil {
		return nil, fmt.Errorf("content catalog: %w", err)
	}

	var doc content
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("content catalog: %w", err)
	}

	c := &staticCatalog{
		languages: doc.Languages,
		lessons:   doc.Lessons,
		byID:      make(map[string]Lesson),
	}

	for langID, lessons := range doc.Lessons {
		for i := range lessons {
			lessons[i].LanguageID = langID
			if err := checkExercises(lessons[i]); err != nil {
				return nil, fmt.Errorf("content catalog: lesson %s: %w", lessons[i].ID, err)
			}
			if _, dup := c.byID[lessons[i].ID]; dup {
				return nil, fmt.Errorf("content catalog: duplicate lesson id %s", lessons[i].ID)
			}
			c.byID[lessons[i].ID] = lessons[i]
		}
	}

	return c, nil
}

// checkExercises enforces the answer shape per exercise type.
func checkExercises(l Lesson) error {
	for _, ex := range l.Exercises {
		switch ex.Type {
		case DragDrop:
			if len(ex.AnswerSeq) == 0 {
				return fmt.Errorf("exercise %s: drag-drop requires answerSeq", ex.ID)
			}
			if len(ex.AnswerSeq) != len(ex.Options) {
				return fmt.Errorf("exercise %s: answerSeq and options length mismatch", ex.ID)
			}
		case MultipleChoice, StoryMode:
			if ex.Answer == "" {
				return fmt.Errorf("exercise %s: %s requires answer", ex.ID, ex.Type)
			}
			if !contains(ex.Options, ex.Answer) {
				return fmt.Errorf("exercise %s: answer not among options", ex.ID)
			}
		case FillBlank:
			if ex.Answer == "" {
				return fmt.Errorf("exercise %s: fill-blank requires answer", ex.ID)
			}
		default:
			return fmt.Errorf("exercise %s: unknown type %q", ex.ID, ex.Type)
		}
	}
	return nil
}

func contains(opts []string, v string) bool {
	for _, o := range opts {
		if o == v {
			return true
		}
	}
	return false
}

func (c *staticCatalog) Languages() []Language {
	return c.languages
}

func (c *staticCatalog) Lessons(languageID string) []Lesson {
	return c.lessons[languageID]
}

func (c *staticCatalog) Lesson(id string) (Lesson, bool) {
	l, ok := c.byID[id]
	return l, ok
}

// Static builds a Catalog from already-constructed values, for tests and
// previews. No schema validation is applied.
func Static(languages []Language, lessons map[string][]Lesson) Catalog {
	c := &staticCatalog{
		languages: languages,
		lessons:   lessons,
		byID:      make(map[string]Lesson),
	}
	for langID, ls := range lessons {
		for i := range ls {
			ls[i].LanguageID = langID
			c.byID[ls[i].ID] = ls[i]
		}
	}
	return c
}
