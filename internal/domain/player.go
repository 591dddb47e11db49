package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"

	"squadmatch/internal/normalize"
)

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// PlayerAccount is the login identity of a player. Per-squad ratings live
// on the Squad aggregate, the account only tracks which squads it joined.
//
// An account carries exactly one credential: a password secret or an
// external identity provider id.
type PlayerAccount struct {
	ID           uuid.UUID
	Email        string
	PasswordHash []byte
	PasswordSalt []byte
	ExternalID   string
	RegisteredAt time.Time

	squadIDs []uuid.UUID
}

// NewPlayerAccount creates a password-credentialed account. The email is
// normalized and validated; hashing happens in the auth service.
func NewPlayerAccount(email string, hash, salt []byte) (PlayerAccount, error) {
	email, err := validateEmail(email)
	if err != nil {
		return PlayerAccount{}, err
	}
	if len(hash) == 0 || len(salt) == 0 {
		return PlayerAccount{}, ErrNoCredential
	}
	return PlayerAccount{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
		RegisteredAt: time.Now(),
	}, nil
}

// NewExternalPlayerAccount creates an account backed by an external
// identity provider instead of a password.
func NewExternalPlayerAccount(email string, externalID string) (PlayerAccount, error) {
	email, err := validateEmail(email)
	if err != nil {
		return PlayerAccount{}, err
	}
	if externalID == "" {
		return PlayerAccount{}, ErrNoCredential
	}
	return PlayerAccount{
		ID:           uuid.New(),
		Email:        email,
		ExternalID:   externalID,
		RegisteredAt: time.Now(),
	}, nil
}

// RestorePlayerAccount rebuilds an account from storage. Only the storage
// converters call it; command paths go through the New* factories.
func RestorePlayerAccount(id uuid.UUID, email string, hash, salt []byte, externalID string, registeredAt time.Time, squadIDs []uuid.UUID) PlayerAccount {
	return PlayerAccount{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
		ExternalID:   externalID,
		RegisteredAt: registeredAt,
		squadIDs:     squadIDs,
	}
}

// JoinSquad records the membership on the account side. The Squad
// aggregate owns the rating; this list only answers "which squads".
func (p *PlayerAccount) JoinSquad(squadID uuid.UUID) error {
	if squadID == uuid.Nil {
		return ErrEmptyID
	}
	for _, id := range p.squadIDs {
		if id == squadID {
			return ErrAlreadyMember
		}
	}
	p.squadIDs = append(p.squadIDs, squadID)
	return nil
}

// LeaveSquad detaches the squad from the account. The squad-side removal
// already validated membership, so a missing entry is a no-op.
func (p *PlayerAccount) LeaveSquad(squadID uuid.UUID) {
	for i, id := range p.squadIDs {
		if id == squadID {
			p.squadIDs = append(p.squadIDs[:i], p.squadIDs[i+1:]...)
			return
		}
	}
}

func (p *PlayerAccount) SquadIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(p.squadIDs))
	copy(ids, p.squadIDs)
	return ids
}

func validateEmail(email string) (string, error) {
	email = normalize.Email(email)
	if !emailRegexp.MatchString(email) {
		return "", ErrInvalidEmail
	}
	return email, nil
}
