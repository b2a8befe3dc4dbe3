package model

import "errors"

var (
	// ErrProgressNotFound indicates that no progress record exists for the pair.
	ErrProgressNotFound = errors.New("progress record not found")
	// ErrAlreadyCompleted indicates the team has already solved this question.
	// Also returned when a concurrent submission wins the race on first create.
	ErrAlreadyCompleted = errors.New("question already completed by this team")
	// ErrIncorrectAnswer indicates the submitted answer does not match.
	ErrIncorrectAnswer = errors.New("incorrect answer")
)
