package model

import "errors"

var (
	// ErrQuestionNotFound indicates that the requested question does not exist.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrInvalidQuestion indicates that the question payload is invalid (e.g., empty fields).
	ErrInvalidQuestion = errors.New("invalid question")
)
