package dashboard

import "github.com/arlearn/admin-backend/internal/domain"

// FormBuffer unions both kinds' editable fields. It is transient: filled
// when a modal opens, drained into a kind-scoped payload on submit, and
// reset on close. Never persisted.
type FormBuffer struct {
	Name        string
	Description string

	Question string
	OptionA  string
	OptionB  string
	OptionC  string
	OptionD  string
	Answer   string
}

// Reset clears every field of both kinds.
func (f *FormBuffer) Reset() {
	*f = FormBuffer{}
}

// LoadModel fills the model fields and resets the quiz fields.
func (f *FormBuffer) LoadModel(m *domain.ARModel) {
	f.Reset()
	f.Name = m.Name
	f.Description = m.Description
}

// LoadQuestion fills the quiz fields and resets the model fields.
func (f *FormBuffer) LoadQuestion(q *domain.QuizQuestion) {
	f.Reset()
	f.Question = q.Question
	f.OptionA = q.OptionA
	f.OptionB = q.OptionB
	f.OptionC = q.OptionC
	f.OptionD = q.OptionD
	f.Answer = string(q.Answer)
}

// modelFields extracts the model payload, ignoring any quiz residue.
func (f *FormBuffer) modelFields() ModelFields {
	return ModelFields{
		Name:        f.Name,
		Description: f.Description,
	}
}

// quizFields extracts the quiz payload, ignoring any model residue.
func (f *FormBuffer) quizFields() QuizFields {
	return QuizFields{
		Question: f.Question,
		OptionA:  f.OptionA,
		OptionB:  f.OptionB,
		OptionC:  f.OptionC,
		OptionD:  f.OptionD,
		Answer:   f.Answer,
	}
}
