package model

import (
	"encoding/json"
	"strings"
)

// QuestionCategory groups the questions of one questionnaire section.
type QuestionCategory struct {
	QuestionsType string     `json:"questions_type"`
	Questions     []Question `json:"questions"`
}

// Excluded reports whether the whole category is skipped by the rated flow.
func (c QuestionCategory) Excluded() bool {
	return strings.Contains(c.QuestionsType, "COMMENT")
}

// Question is a single catalog question. QuestionID is kept verbatim; the
// backend is inconsistent about its wire type and the value is only echoed
// back inside submissions.
type Question struct {
	QuestionID json.RawMessage `json:"question_id"`
	Text       string          `json:"question"`
}

// QuestionKind tags the three ways a catalog question is handled.
type QuestionKind int

const (
	// KindRated questions are answered from a fixed option vocabulary.
	KindRated QuestionKind = iota
	// KindNameEntry questions ask for the lecturer's name. They never
	// render as rated controls; their answer is back-filled per course at
	// submission time.
	KindNameEntry
	// KindFreeText questions ask for open-ended feedback and are excluded
	// from the structured flow entirely.
	KindFreeText
)

// Fixed option vocabularies for rated questions.
var (
	RatingOptions        = []string{"Excellent", "Good", "Average", "Fair", "Poor"}
	ParticipationOptions = []string{"100%", "80%", "60%", "40%", "20%"}
	YesNoOptions         = []string{"Yes", "No"}
)

var nameEntryMarkers = []string{
	"name of the lecturer",
	"Provide the name",
}

var freeTextMarkers = []string{
	"Mention at least",
	"What factors",
	"What challenges",
	"obstacles",
	"Given another chance",
	"recommendations",
}

// Classification is the result of classifying a question's text.
// Options is non-nil only for KindRated.
type Classification struct {
	Kind    QuestionKind
	Options []string
}

// Classify maps a question's text to exactly one handling kind using the
// backend's fixed marker phrases. Name-entry markers take precedence over
// free-text markers, matching the catalog's actual wording.
func Classify(text string) Classification {
	for _, m := range nameEntryMarkers {
		if strings.Contains(text, m) {
			return Classification{Kind: KindNameEntry}
		}
	}
	for _, m := range freeTextMarkers {
		if strings.Contains(text, m) {
			return Classification{Kind: KindFreeText}
		}
	}

	options := RatingOptions
	if strings.Contains(text, "level of participation") || strings.Contains(text, "level of preparation") {
		options = ParticipationOptions
	} else if strings.Contains(text, "would you want to have another course") {
		options = YesNoOptions
	}
	return Classification{Kind: KindRated, Options: options}
}
