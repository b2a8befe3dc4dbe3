// Package model provides domain models and DTOs for the question module.
package model

// AddQuestionRequest represents the request to create a question.
type AddQuestionRequest struct {
	QuestionText        string `json:"question_text"        binding:"required"`
	QuestionDescription string `json:"question_description" binding:"required"`
	Answer              string `json:"answer"               binding:"required"`
}

// QuestionView is a question as exposed through the listing endpoint.
// The answer is deliberately absent.
type QuestionView struct {
	QuestionID          string `json:"question_id"`
	QuestionText        string `json:"question_text"`
	QuestionDescription string `json:"question_description"`
}
