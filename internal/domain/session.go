package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// SessionRecord is the sole artifact proving a caller is logged in. It is
// created on successful login, held by the client for the lifetime of the
// tab, and destroyed on logout.
//
// Unlike the rest of the domain, SessionRecord carries json tags: its wire
// form IS its identity. The gate accepts any well-formed record without a
// signature or expiry check; anyone who can hand-craft the JSON is
// "logged in". Possession of the record is the whole proof.
type SessionRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	LoginTime time.Time `json:"loginTime"`
}

// ParseSessionRecord decodes the wire form of a session record.
// Malformed JSON is the only rejection reason.
func ParseSessionRecord(data []byte) (SessionRecord, error) {
	var rec SessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return SessionRecord{}, fmt.Errorf("parse session record: %w", err)
	}
	return rec, nil
}

// Encode returns the canonical wire form of the record.
func (r SessionRecord) Encode() []byte {
	b, _ := json.Marshal(r) // struct of scalars, cannot fail
	return b
}
