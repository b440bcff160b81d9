package models

import "time"

// ClientEntry is one durable key/value pair of a browser client.
type ClientEntry struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	ClientID  string `gorm:"size:64;not null;uniqueIndex:idx_client_entries_client_key"`
	Key       string `gorm:"column:entry_key;size:255;not null;uniqueIndex:idx_client_entries_client_key"`
	Value     string `gorm:"type:text;not null"`
}
