package store

import "time"

// PatternRow persists one entry of the phrase dictionary. Position keeps the
// table order the analyzer reports matches in.
type PatternRow struct {
	ID          uint   `gorm:"primaryKey"`
	Position    int    `gorm:"index"`
	Phrase      string `gorm:"size:255;uniqueIndex"`
	Weight      int
	Description string `gorm:"size:512"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName pins the table name independent of the struct name.
func (PatternRow) TableName() string {
	return "patterns"
}
