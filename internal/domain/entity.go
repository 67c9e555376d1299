package domain

// Kind selects which of the two managed entity types the dashboard is
// currently listing and editing.
type Kind string

const (
	KindModel Kind = "model"
	KindQuiz  Kind = "quiz"
)

// Valid reports whether k is one of the two known kinds.
func (k Kind) Valid() bool {
	return k == KindModel || k == KindQuiz
}

// TableName returns the database table backing the kind. The table names are
// inherited from the legacy deployment and cannot change without a data
// migration.
func (k Kind) TableName() string {
	if k == KindQuiz {
		return "quiz"
	}
	return "infoar"
}

// Entity is the tagged variant over the two managed row types. Callers switch
// on EntityKind instead of probing for field presence.
type Entity interface {
	EntityKind() Kind
	EntityID() int64
}
