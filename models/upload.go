package models

// UploadedFile describes a PDF received with a single request. It exists only
// for the duration of that request: the orchestrator deletes the stored file
// from disk once the ask finishes, whether it succeeded or failed.
type UploadedFile struct {
	// OriginalName is the filename as sent by the client.
	OriginalName string

	// Extension is the lowercased file extension including the dot.
	Extension string

	// StorageName is the collision-resistant on-disk name in the form
	// <16-hex-random>-<original-basename><ext>.
	StorageName string

	// Path is the full storage path of the written file.
	Path string

	// MimeType is the content type reported by the client.
	MimeType string

	// Size is the number of bytes written.
	Size int64
}
