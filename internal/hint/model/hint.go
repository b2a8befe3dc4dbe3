// Package model provides domain models for the hint module.
package model

import "time"

// Hint represents a broadcast hint. Hints are append-only: created when an
// operator broadcasts one, never mutated or deleted.
// Matches the hints table schema.
type Hint struct {
	ID        int64     `gorm:"primaryKey;column:id;autoIncrement"                        json:"id"`
	HintText  string    `gorm:"column:hint_text;type:text;not null"                       json:"hintText"`
	CreatedAt time.Time `gorm:"column:created_at;not null"                                json:"createdAt"`
}

// TableName specifies the table name for GORM.
func (Hint) TableName() string {
	return "hints"
}
