package domain

// ARModel describes a 3D model shown in the AR viewer.
// Rows live in the infoar table; the ID is server-assigned and immutable.
type ARModel struct {
	ID          int64
	Name        string
	Description string
}

// EntityKind implements Entity.
func (m *ARModel) EntityKind() Kind { return KindModel }

// EntityID implements Entity.
func (m *ARModel) EntityID() int64 { return m.ID }
