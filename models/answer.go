package models

// Answer is the two-field response of the adaptive-answer service.
type Answer struct {
	ShortAnswer string `json:"short_answer"`
	LongAnswer  string `json:"long_answer"`
}

// AskRequest is the orchestrator's input assembled by the HTTP layer from a
// multipart request: the two text inputs, the selected language and the
// optional already-stored PDF.
type AskRequest struct {
	VoiceData string
	Text      string
	Language  string
	File      *UploadedFile
}
