package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// EmergencyAccessToken is the hashed form of the secret handed to emergency
// responders. The clear token is shown to the user once and never stored.
type EmergencyAccessToken struct {
	ID         int64
	UserID     int64
	TokenHash  string
	IsActive   bool
	RevokedAt  *time.Time
	LastUsedAt *time.Time
	CreatedAt  time.Time
}

// EmergencyDocument references a document the user marked as relevant in an
// emergency. The document itself lives in the document store.
type EmergencyDocument struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// EmergencyProfile is the curated read-only view served through the
// emergency gate.
type EmergencyProfile struct {
	UserID             int64                 `json:"-"`
	UserUUID           string                `json:"user_uuid,omitempty"`
	Name               string                `json:"name,omitempty"`
	MedicalInfo        JSONMap               `json:"medical_info"`
	EmergencyDocuments EmergencyDocumentList `json:"emergency_documents"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

// EmergencyDocumentList is persisted as a JSON array.
type EmergencyDocumentList []EmergencyDocument

// Value implements [driver.Valuer].
func (l EmergencyDocumentList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]EmergencyDocument(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (l *EmergencyDocumentList) Scan(src any) error {
	return scanJSON(src, l)
}
