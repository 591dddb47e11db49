package web

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"squadmatch/internal/domain"
)

var (
	ErrEmptyEmail       = errors.New("email must not be empty")
	ErrEmptyPassword    = errors.New("password must not be empty")
	ErrPasswordMismatch = errors.New("password confirmation does not match")
	ErrEmptySquadName   = errors.New("squad name must not be empty")
	ErrMissingPlayer    = errors.New("player id must not be empty")
	ErrMissingSquad     = errors.New("squad id must not be empty")
	ErrOddPlayers       = errors.New("participant count must be even and at least two")
	ErrDuplicatePlayer  = errors.New("participant list contains duplicates")
	ErrUnknownWinner    = errors.New("winner must be team_a, team_b or draw")
	ErrMalformedBody    = errors.New("malformed request body")
	ErrBadID            = errors.New("malformed id in path")
)

type signUpRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	PasswordRepeat string `json:"passwordRepeat"`
}

func (r signUpRequest) Validate() error {
	var err error
	if r.Email == "" {
		err = errors.Join(err, ErrEmptyEmail)
	}
	if r.Password == "" {
		err = errors.Join(err, ErrEmptyPassword)
	}
	if r.Password != r.PasswordRepeat {
		err = errors.Join(err, ErrPasswordMismatch)
	}
	return err
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r signInRequest) Validate() error {
	var err error
	if r.Email == "" {
		err = errors.Join(err, ErrEmptyEmail)
	}
	if r.Password == "" {
		err = errors.Join(err, ErrEmptyPassword)
	}
	return err
}

type createSquadRequest struct {
	Name string `json:"name"`
}

func (r createSquadRequest) Validate() error {
	if r.Name == "" {
		return ErrEmptySquadName
	}
	return nil
}

type squadAdminRequest struct {
	PlayerID uuid.UUID `json:"playerId"`
}

func (r squadAdminRequest) Validate() error {
	if r.PlayerID == uuid.Nil {
		return ErrMissingPlayer
	}
	return nil
}

type createMatchRequest struct {
	SquadID     uuid.UUID   `json:"squadId"`
	ScheduledAt time.Time   `json:"scheduledAt"`
	PlayerIDs   []uuid.UUID `json:"playerIds"`
	TeamSize    int         `json:"teamSize"`
}

func (r createMatchRequest) Validate() error {
	var err error
	if r.SquadID == uuid.Nil {
		err = errors.Join(err, ErrMissingSquad)
	}
	if len(r.PlayerIDs) < 2 || len(r.PlayerIDs)%2 != 0 {
		err = errors.Join(err, ErrOddPlayers)
	}
	seen := make(map[uuid.UUID]struct{}, len(r.PlayerIDs))
	for _, id := range r.PlayerIDs {
		if id == uuid.Nil {
			err = errors.Join(err, ErrMissingPlayer)
			break
		}
		if _, ok := seen[id]; ok {
			err = errors.Join(err, ErrDuplicatePlayer)
			break
		}
		seen[id] = struct{}{}
	}
	return err
}

type recordResultRequest struct {
	Winner   string `json:"winner"`
	Feedback string `json:"feedback"`
}

func (r recordResultRequest) Validate() error {
	switch domain.Winner(r.Winner) {
	case domain.WinnerTeamA, domain.WinnerTeamB, domain.WinnerDraw:
		return nil
	}
	return ErrUnknownWinner
}
