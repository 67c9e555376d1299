package domain

import "strings"

// AnswerKey is the label of the correct option of a quiz question.
type AnswerKey string

// The four option labels.
const (
	AnswerA AnswerKey = "A"
	AnswerB AnswerKey = "B"
	AnswerC AnswerKey = "C"
	AnswerD AnswerKey = "D"
)

// Valid reports whether a is one of the four option labels.
func (a AnswerKey) Valid() bool {
	switch a {
	case AnswerA, AnswerB, AnswerC, AnswerD:
		return true
	}
	return false
}

// NormalizeAnswerKey trims and upper-cases raw user input into an AnswerKey.
// The result may still be invalid; callers check Valid.
func NormalizeAnswerKey(s string) AnswerKey {
	return AnswerKey(strings.ToUpper(strings.TrimSpace(s)))
}

// QuizQuestion is a four-option multiple choice question.
// Rows live in the quiz table; the ID is server-assigned and immutable.
type QuizQuestion struct {
	ID       int64
	Question string
	OptionA  string
	OptionB  string
	OptionC  string
	OptionD  string
	Answer   AnswerKey
}

// EntityKind implements Entity.
func (q *QuizQuestion) EntityKind() Kind { return KindQuiz }

// EntityID implements Entity.
func (q *QuizQuestion) EntityID() int64 { return q.ID }
