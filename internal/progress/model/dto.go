// Package model provides domain models and DTOs for the progress module.
package model

// SubmitAnswerRequest represents an answer submission for a (team, question) pair.
type SubmitAnswerRequest struct {
	TeamName   string `json:"team_name"   binding:"required"`
	QuestionID string `json:"question_id" binding:"required"`
	Answer     string `json:"answer"      binding:"required"`
}

// SubmitResult reports a successful (correct) submission.
type SubmitResult struct {
	// Created is true when this submission created the progress record,
	// false when it completed a previously attempted pair.
	Created bool
}
