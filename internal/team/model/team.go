package model

import (
	"time"

	"gorm.io/gorm"
)

// Team represents a competing team.
// Matches the teams table schema.
type Team struct {
	TeamName     string    `gorm:"primaryKey;column:team_name;type:varchar(255)"              json:"team_name"`
	TeamPassword string    `gorm:"column:team_password;type:varchar(255);not null"            json:"-"`
	Locked       bool      `gorm:"column:locked;type:boolean;not null;default:false"          json:"locked"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"                            json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null"                            json:"-"`
	Users        []User    `gorm:"foreignKey:TeamName;references:TeamName"                    json:"users"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}
