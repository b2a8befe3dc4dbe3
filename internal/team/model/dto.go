// Package model provides domain models and DTOs for the team module.
package model

// UserPayload represents a team member in the registration request.
type UserPayload struct {
	EnrollNo string `json:"EnrollNo" binding:"required"`
	Name     string `json:"name"     binding:"required"`
}

// RegisterTeamRequest represents the request to register a team with its members.
type RegisterTeamRequest struct {
	TeamName     string        `json:"team_name"     binding:"required"`
	TeamPassword string        `json:"team_password" binding:"required"`
	Users        []UserPayload `json:"users"         binding:"required,dive"`
}

// LoginRequest represents the team login request.
type LoginRequest struct {
	TeamName     string `json:"team_name"     binding:"required"`
	TeamPassword string `json:"team_password" binding:"required"`
}

// LoginResponse represents the response after a successful login.
type LoginResponse struct {
	Message  string `json:"message"`
	TeamName string `json:"team_name"`
}

// TeamNameRequest carries a single team name, used by lock operations.
type TeamNameRequest struct {
	TeamName string `json:"team_name" binding:"required"`
}

// LockStatusResponse reports a team's lock flag.
type LockStatusResponse struct {
	TeamName string `json:"team_name"`
	Locked   bool   `json:"locked"`
}
