package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is an uploaded file owned by a user. The content lives in the file store under StorageKey.
type Document struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Filename   string    `json:"filename"`    // Original client-side filename.
	MediaType  string    `json:"media_type"`  // Declared or sniffed MIME type.
	StorageKey string    `json:"-"`           // Key in the file store.
	Size       int64     `json:"size"`        // Stored size in bytes.
	Checksum   string    `json:"checksum"`    // Hex SHA-256 of the content.
	UploadedAt time.Time `json:"uploaded_at"` // Timestamp of the upload.
}
