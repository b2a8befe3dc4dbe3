package model

import "time"

// User represents a team member. Users exist only as part of their team's
// registration and are immutable afterwards. The enrollment number is
// globally unique, so a user can belong to at most one team.
// Matches the users table schema.
type User struct {
	EnrollNo  string    `gorm:"primaryKey;column:enroll_no;type:varchar(255)"                         json:"EnrollNo"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"                                json:"name"`
	TeamName  string    `gorm:"column:team_name;type:varchar(255);not null;index:idx_users_team_name" json:"team_name"`
	CreatedAt time.Time `gorm:"column:created_at;not null"                                            json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
