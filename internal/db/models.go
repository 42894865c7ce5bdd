package db

import (
	"time"

	"gorm.io/datatypes"
)

// Document is one record of a schemaless collection.
//
// Composite PK: (Collection, ID)
//   - IDs are unique per collection only; the same id may appear in
//     "presence" and "users" for one patron.
//
// Indexes:
//   - idx_collection_created(collection, created_at, id)
//     Serves the default snapshot order (creation time, then id).
//
// Fields:
//   - Data: JSON object with the record's fields. Stored in a native JSON
//     column so filters run as JSON_EXTRACT in SQL.
//   - CreatedAt: set on first write, kept across upserts.
//   - UpdatedAt: bumped on every write.
type Document struct {
	Collection string         `gorm:"primaryKey;size:64;index:idx_collection_created,priority:1"`
	ID         string         `gorm:"primaryKey;size:191"`
	Data       datatypes.JSON `gorm:"not null"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index:idx_collection_created,priority:2"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}
