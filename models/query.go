package models

import "time"

// Query is one persisted ask-and-answer interaction. A record is created
// exactly once per successful ask and is immutable afterwards.
type Query struct {
	// QueryID is the internal unique identifier of the query.
	QueryID int64 `json:"queryId"`

	// UserID references the owning user.
	UserID int64 `json:"userId"`

	// VoiceData is the raw voice transcript as received from the client.
	// Stored without the account-context suffix.
	VoiceData string `json:"voiceData,omitempty"`

	// Text is the raw typed question as received from the client.
	Text string `json:"text,omitempty"`

	// Language is the locale code selected for the ask.
	Language string `json:"language"`

	// ShortAnswer and LongAnswer are the two answer variants returned by
	// the adaptive-answer service.
	ShortAnswer string `json:"shortAnswer"`
	LongAnswer  string `json:"longAnswer"`

	// ProvidedDoc is the storage path of the PDF that accompanied the ask,
	// if any. The file itself is removed after answering; only the path
	// string remains as a historical reference.
	ProvidedDoc string `json:"providedDoc,omitempty"`

	// CreatedAt is the timestamp when the query was persisted.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Query model.
func (q Query) TableName() string {
	return "queries"
}
