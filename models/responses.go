package models

// Envelope is the uniform response shape used by every API endpoint.
// Exactly one of the payload fields is populated depending on the endpoint;
// Message carries human-readable status or error text.
//
// By default every response, including failures, is written with HTTP 200 and
// callers inspect Success. This is the wire contract inherited by the API;
// see the server's StrictStatusCodes setting for the conventional mapping.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	User      *User              `json:"user,omitempty"`
	Query     *Query             `json:"query,omitempty"`
	Content   *AwarenessContent  `json:"content,omitempty"`
	Contents  []AwarenessContent `json:"contents,omitempty"`
	Analytics *AnalyticsEntry    `json:"analytics,omitempty"`
}
