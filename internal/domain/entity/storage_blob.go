package entity

import "time"

// StorageBlob is one key of the blob store when backed by PostgreSQL
type StorageBlob struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for StorageBlob
func (StorageBlob) TableName() string {
	return "storage_blobs"
}
