package model

import "encoding/json"

// AnswerQuestion is one (question, answer) tuple inside an answer set.
// It mirrors the catalog question and carries the chosen answer label.
type AnswerQuestion struct {
	QuestionID json.RawMessage `json:"question_id"`
	Text       string          `json:"question"`
	Answer     string          `json:"answer"`
}

// AnswerCategory mirrors one catalog category inside an answer set.
type AnswerCategory struct {
	QuestionsType string           `json:"questions_type"`
	Questions     []AnswerQuestion `json:"questions"`
}

// AnswerSet is the shared questionnaire state of one wizard run. It mirrors
// the full catalog — excluded questions included — so submissions keep the
// catalog's exact shape. Rated answers stay "" until the user picks an
// option; unanswered questions are submitted as empty strings.
type AnswerSet []AnswerCategory

// BuildAnswerSet creates a fresh answer set mirroring the question catalog,
// with every answer empty.
func BuildAnswerSet(catalog []QuestionCategory) AnswerSet {
	set := make(AnswerSet, 0, len(catalog))
	for _, cat := range catalog {
		questions := make([]AnswerQuestion, 0, len(cat.Questions))
		for _, q := range cat.Questions {
			questions = append(questions, AnswerQuestion{
				QuestionID: cloneRaw(q.QuestionID),
				Text:       q.Text,
				Answer:     "",
			})
		}
		set = append(set, AnswerCategory{
			QuestionsType: cat.QuestionsType,
			Questions:     questions,
		})
	}
	return set
}

// Select records label as the answer of the (category, question) pair.
// Last selection wins; re-selecting the same label is a no-op. Out-of-range
// indices are ignored.
func (s AnswerSet) Select(catIdx, qIdx int, label string) {
	if catIdx < 0 || catIdx >= len(s) {
		return
	}
	if qIdx < 0 || qIdx >= len(s[catIdx].Questions) {
		return
	}
	s[catIdx].Questions[qIdx].Answer = label
}

// Clone returns a deep copy. Each submission mutates its own copy, so the
// shared set of the wizard run is never touched.
func (s AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, 0, len(s))
	for _, cat := range s {
		questions := make([]AnswerQuestion, len(cat.Questions))
		copy(questions, cat.Questions)
		for i := range questions {
			questions[i].QuestionID = cloneRaw(questions[i].QuestionID)
		}
		out = append(out, AnswerCategory{
			QuestionsType: cat.QuestionsType,
			Questions:     questions,
		})
	}
	return out
}

// FillLecturerName overwrites the answer of every name-entry question.
func (s AnswerSet) FillLecturerName(name string) {
	for ci := range s {
		for qi := range s[ci].Questions {
			if Classify(s[ci].Questions[qi].Text).Kind == KindNameEntry {
				s[ci].Questions[qi].Answer = name
			}
		}
	}
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out
}

// EvaluationRequest is the payload for recording one course evaluation.
type EvaluationRequest struct {
	Answers AnswerSet       `json:"answers"`
	ClassID json.RawMessage `json:"class_id"`
}
