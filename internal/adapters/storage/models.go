package storage

import "time"

// KVModel is the GORM model for the kv_entries table
type KVModel struct {
	CreatedAt time.Time
	Key       string `gorm:"primaryKey"`
	UpdatedAt time.Time
	Value     []byte `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KVModel) TableName() string { return "kv_entries" }
