package catalog

import (
	"strings"

	"github.com/arlearn/admin-backend/internal/domain"
)

// ModelInput holds the editable fields of an AR model description. The same
// shape serves create and update; every field is written on both.
type ModelInput struct {
	Name        string
	Description string
}

// Validate checks all fields and collects all errors.
func (i ModelInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ModelInput) toDomain() *domain.ARModel {
	return &domain.ARModel{
		Name:        strings.TrimSpace(i.Name),
		Description: strings.TrimSpace(i.Description),
	}
}

// QuizInput holds the editable fields of a quiz question.
type QuizInput struct {
	Question string
	OptionA  string
	OptionB  string
	OptionC  string
	OptionD  string
	Answer   string
}

// Validate checks all fields and collects all errors. The answer must name
// one of the four options.
func (i QuizInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Question) == "" {
		errs = append(errs, domain.FieldError{Field: "question", Message: "required"})
	}
	for _, opt := range []struct {
		field string
		value string
	}{
		{"option_a", i.OptionA},
		{"option_b", i.OptionB},
		{"option_c", i.OptionC},
		{"option_d", i.OptionD},
	} {
		if strings.TrimSpace(opt.value) == "" {
			errs = append(errs, domain.FieldError{Field: opt.field, Message: "required"})
		}
	}

	if !domain.NormalizeAnswerKey(i.Answer).Valid() {
		errs = append(errs, domain.FieldError{Field: "answer", Message: "must be one of A, B, C, D"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i QuizInput) toDomain() *domain.QuizQuestion {
	return &domain.QuizQuestion{
		Question: strings.TrimSpace(i.Question),
		OptionA:  strings.TrimSpace(i.OptionA),
		OptionB:  strings.TrimSpace(i.OptionB),
		OptionC:  strings.TrimSpace(i.OptionC),
		OptionD:  strings.TrimSpace(i.OptionD),
		Answer:   domain.NormalizeAnswerKey(i.Answer),
	}
}
