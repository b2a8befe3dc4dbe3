package model

import "time"

// Question represents a trivia question. Questions are immutable after
// creation; the stored answer is never serialized.
// Matches the questions table schema.
type Question struct {
	QuestionID          string    `gorm:"primaryKey;column:question_id;type:varchar(255)"           json:"question_id"`
	QuestionText        string    `gorm:"column:question_text;type:text;not null"                   json:"question_text"`
	QuestionDescription string    `gorm:"column:question_description;type:text;not null"            json:"question_description"`
	Answer              string    `gorm:"column:answer;type:varchar(255);not null"                  json:"-"`
	CreatedAt           time.Time `gorm:"column:created_at;not null"                                json:"-"`
}

// TableName specifies the table name for GORM.
func (Question) TableName() string {
	return "questions"
}
