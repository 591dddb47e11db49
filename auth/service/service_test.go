package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"squadmatch/internal/domain"
	"squadmatch/internal/logger"
)

type memStorage struct {
	accounts map[uuid.UUID]domain.PlayerAccount
}

func (m *memStorage) GetPlayer(_ context.Context, id uuid.UUID) (domain.PlayerAccount, error) {
	acc, ok := m.accounts[id]
	if !ok {
		return domain.PlayerAccount{}, domain.ErrPlayerNotFound
	}
	return acc, nil
}

func (m *memStorage) GetPlayerByEmail(_ context.Context, email string) (domain.PlayerAccount, error) {
	for _, acc := range m.accounts {
		if acc.Email == email {
			return acc, nil
		}
	}
	return domain.PlayerAccount{}, domain.ErrPlayerNotFound
}

func (m *memStorage) GetPlayerByExternalID(_ context.Context, externalID string) (domain.PlayerAccount, error) {
	for _, acc := range m.accounts {
		if acc.ExternalID != "" && acc.ExternalID == externalID {
			return acc, nil
		}
	}
	return domain.PlayerAccount{}, domain.ErrPlayerNotFound
}

func (m *memStorage) AddPlayer(_ context.Context, acc domain.PlayerAccount) error {
	m.accounts[acc.ID] = acc
	return nil
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := New(
		context.Background(),
		Config{Token: "test-secret", Expiration: "1h", PasswordPepper: "pepper"},
		&memStorage{accounts: make(map[uuid.UUID]domain.PlayerAccount)},
		logger.New(false),
	)
	require.NoError(t, err)
	return s
}

func TestSignUpAndLogin(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	created, err := s.SignUp(ctx, "Player@Mail.com", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "player@mail.com", created.Email)

	logged, err := s.Login(ctx, "player@mail.com", "hunter2")
	require.NoError(t, err)
	require.Equal(t, created.ID, logged.ID)

	_, err = s.Login(ctx, "player@mail.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(ctx, "nobody@mail.com", "hunter2")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	_, err := s.SignUp(ctx, "player@mail.com", "hunter2")
	require.NoError(t, err)

	// Same address, different case: still taken.
	_, err = s.SignUp(ctx, "PLAYER@mail.com", "other")
	require.ErrorIs(t, err, domain.ErrEmailTaken)

	_, err = s.SignUpExternal(ctx, "player@mail.com", "provider|7")
	require.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestSignUpExternal(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	first, err := s.SignUpExternal(ctx, "ext@mail.com", "provider|42")
	require.NoError(t, err)

	// The provider id is the identity: a repeat sign-up is a login.
	again, err := s.SignUpExternal(ctx, "ext@mail.com", "provider|42")
	require.NoError(t, err)
	require.Equal(t, first.ID, again.ID)

	// An external account cannot password-login.
	_, err = s.Login(ctx, "ext@mail.com", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	acc, err := s.SignUp(ctx, "player@mail.com", "hunter2")
	require.NoError(t, err)

	cookie, err := s.GenerateJWTCookie(acc.ID, "localhost")
	require.NoError(t, err)

	got, err := s.Auth(ctx, cookie.Value)
	require.NoError(t, err)
	require.Equal(t, acc.ID, got.ID)

	_, err = s.Auth(ctx, "")
	require.ErrorIs(t, err, ErrNotAuthorized)
	_, err = s.Auth(ctx, "garbage.token.value")
	require.ErrorIs(t, err, ErrInvalidToken)
}
