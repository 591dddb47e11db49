package storage

import (
	"context"

	"github.com/google/uuid"

	"squadmatch/internal/domain"
)

// Not-found is reported with the matching domain sentinel
// (domain.ErrPlayerNotFound and friends), never with driver errors.

type PlayerStorage interface {
	GetPlayer(ctx context.Context, id uuid.UUID) (domain.PlayerAccount, error)
	GetPlayerByEmail(ctx context.Context, email string) (domain.PlayerAccount, error)
	GetPlayerByExternalID(ctx context.Context, externalID string) (domain.PlayerAccount, error)
	AddPlayer(ctx context.Context, account domain.PlayerAccount) error
	UpdatePlayer(ctx context.Context, account domain.PlayerAccount) error
}

type SquadStorage interface {
	GetSquad(ctx context.Context, id uuid.UUID) (*domain.Squad, error)
	ListSquadsForPlayer(ctx context.Context, playerID uuid.UUID) ([]*domain.Squad, error)
	AddSquad(ctx context.Context, squad *domain.Squad) error
	UpdateSquad(ctx context.Context, squad *domain.Squad) error
}

type MatchStorage interface {
	GetMatch(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	ListMatchesForSquad(ctx context.Context, squadID uuid.UUID) ([]*domain.Match, error)
	AddMatch(ctx context.Context, match *domain.Match) error
	// UpdateMatch persists the match. For the pending -> completed
	// transition the implementation must apply the status check and the
	// write atomically and report a lost race as domain.ErrMatchCompleted.
	UpdateMatch(ctx context.Context, match *domain.Match) error
}
