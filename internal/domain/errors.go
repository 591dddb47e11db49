package domain

import "errors"

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrSquadNotFound  = errors.New("squad not found")
	ErrMatchNotFound  = errors.New("match not found")

	ErrNotAdmin      = errors.New("requester is not a squad admin")
	ErrAlreadyAdmin  = errors.New("player is already a squad admin")
	ErrLastAdmin     = errors.New("squad must keep at least one admin")
	ErrAlreadyMember = errors.New("player is already a squad member")
	ErrNotMember     = errors.New("player is not a squad member")

	ErrEmptyID            = errors.New("empty id")
	ErrEmptyName          = errors.New("squad name must not be empty")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrNoCredential       = errors.New("account needs a password or an external identity")
	ErrRatingOutOfRange   = errors.New("rating out of range")
	ErrInvalidPlayerCount = errors.New("player count must be even and at least 2")
	ErrInvalidTeamSize    = errors.New("team size must be positive")
	ErrTeamPartition      = errors.New("teams must split the match participants exactly")
	ErrInvalidWinner      = errors.New("winner must be team_a, team_b or draw")
	ErrMatchCompleted     = errors.New("match result is already recorded")
)
