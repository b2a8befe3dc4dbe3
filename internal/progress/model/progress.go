package model

import "time"

// TeamProgress records a team's completion of a single question. A row exists
// only once the pair has been completed (failed attempts leave no trace). The
// unique index over (team_name, question_id) is the sole guard against two
// concurrent first-time submissions both recording a completion.
// Matches the team_progress table schema.
type TeamProgress struct {
	ProgressID  string     `gorm:"primaryKey;column:progress_id;type:varchar(255)"                                    json:"progress_id"`
	TeamName    string     `gorm:"column:team_name;type:varchar(255);not null;uniqueIndex:idx_progress_team_question" json:"team_name"`
	QuestionID  string     `gorm:"column:question_id;type:varchar(255);not null;uniqueIndex:idx_progress_team_question" json:"question_id"`
	IsCompleted bool       `gorm:"column:is_completed;type:boolean;not null;default:false"                            json:"is_completed"`
	SolvedAt    *time.Time `gorm:"column:solved_at"                                                                   json:"solved_at,omitempty"`
}

// TableName specifies the table name for GORM.
func (TeamProgress) TableName() string {
	return "team_progress"
}
