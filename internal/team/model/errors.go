package model

import "errors"

var (
	// ErrTeamExists indicates that a team with the given name already exists.
	ErrTeamExists = errors.New("team name already exists")
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrUserTaken indicates that a user already belongs to another team.
	ErrUserTaken = errors.New("user in another team")
	// ErrInvalidCredentials indicates a failed login (unknown team or wrong password).
	ErrInvalidCredentials = errors.New("invalid team name or password")
	// ErrInvalidTeamName indicates that the provided team name is invalid (e.g., empty).
	ErrInvalidTeamName = errors.New("invalid team name")
)
