package service

import "strings"

// AnswersMatch compares a submitted answer to the stored one, lower-casing
// both operands. Whitespace is deliberately not trimmed: "paris " does not
// match "paris".
func AnswersMatch(submitted, stored string) bool {
	return strings.ToLower(submitted) == strings.ToLower(stored)
}
