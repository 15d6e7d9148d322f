package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentModel mirrors the 'documents' table. Content is kept in the file store under StorageKey.
type DocumentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Filename   string    `gorm:"type:varchar(255);not null"`
	MediaType  string    `gorm:"type:varchar(255);not null"`
	StorageKey string    `gorm:"type:varchar(512);uniqueIndex;not null"`
	Size       int64     `gorm:"not null"`
	Checksum   string    `gorm:"type:char(64);not null"`
	UploadedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (DocumentModel) TableName() string {
	return "documents"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *DocumentModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
