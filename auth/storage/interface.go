package storage

import (
	"context"

	"github.com/google/uuid"

	"squadmatch/internal/domain"
)

// AuthStorage is the slice of player persistence the auth service needs.
// The sqlite player storage satisfies it.
type AuthStorage interface {
	GetPlayer(ctx context.Context, id uuid.UUID) (domain.PlayerAccount, error)
	GetPlayerByEmail(ctx context.Context, email string) (domain.PlayerAccount, error)
	GetPlayerByExternalID(ctx context.Context, externalID string) (domain.PlayerAccount, error)
	AddPlayer(ctx context.Context, account domain.PlayerAccount) error
}
