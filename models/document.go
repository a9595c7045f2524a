package models

import "time"

// Document records the metadata of an uploaded PDF. The bytes on disk are
// deleted once the ask completes; the metadata row stays for auditing.
type Document struct {
	DocumentID   int64     `json:"documentId"`
	UserID       int64     `json:"userId"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	FilePath     string    `json:"filePath"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}
