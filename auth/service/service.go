package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"squadmatch/auth/storage"
	"squadmatch/auth/users"
	"squadmatch/internal/domain"
)

var (
	ErrNotAuthorized      = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Service handles account creation and identity verification. Accounts
// carry exactly one credential: a salted password secret or an external
// provider id.
type Service struct {
	storage storage.AuthStorage
	cfg     Config
	log     *logrus.Entry
}

func New(ctx context.Context, cfg Config, storage storage.AuthStorage, log *logrus.Logger) (*Service, error) {
	s := Service{
		cfg:     cfg,
		storage: storage,
		log:     log.WithField("name", "auth"),
	}
	if cfg.RootEmail != "" {
		if err := s.bootstrapRoot(ctx); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

// bootstrapRoot creates the configured root account on first start.
func (s *Service) bootstrapRoot(ctx context.Context) error {
	_, err := s.storage.GetPlayerByEmail(ctx, s.cfg.RootEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrPlayerNotFound) {
		return err
	}
	_, err = s.SignUp(ctx, s.cfg.RootEmail, s.cfg.RootPassword)
	if err != nil {
		return err
	}
	s.log.WithField("email", s.cfg.RootEmail).Info("root account created")
	return nil
}

// SignUp registers a password-credentialed account. The email must be
// globally unique after normalization.
func (s *Service) SignUp(ctx context.Context, email string, password string) (domain.PlayerAccount, error) {
	if password == "" {
		return domain.PlayerAccount{}, ErrInvalidCredentials
	}
	salt, err := randomSalt()
	if err != nil {
		return domain.PlayerAccount{}, err
	}
	secret := generateSecret(password, s.cfg.PasswordPepper, salt)
	account, err := domain.NewPlayerAccount(email, secret.PasswordHash, secret.Salt)
	if err != nil {
		return domain.PlayerAccount{}, err
	}
	if err := s.checkEmailFree(ctx, account.Email); err != nil {
		return domain.PlayerAccount{}, err
	}
	if err := s.storage.AddPlayer(ctx, account); err != nil {
		return domain.PlayerAccount{}, err
	}
	return account, nil
}

// SignUpExternal registers or signs in an account backed by an external
// identity provider. A known provider id is a login, not a duplicate.
func (s *Service) SignUpExternal(ctx context.Context, email string, externalID string) (domain.PlayerAccount, error) {
	account, err := s.storage.GetPlayerByExternalID(ctx, externalID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, domain.ErrPlayerNotFound) {
		return domain.PlayerAccount{}, err
	}
	account, err = domain.NewExternalPlayerAccount(email, externalID)
	if err != nil {
		return domain.PlayerAccount{}, err
	}
	if err := s.checkEmailFree(ctx, account.Email); err != nil {
		return domain.PlayerAccount{}, err
	}
	if err := s.storage.AddPlayer(ctx, account); err != nil {
		return domain.PlayerAccount{}, err
	}
	return account, nil
}

func (s *Service) Login(ctx context.Context, email string, password string) (domain.PlayerAccount, error) {
	account, err := s.storage.GetPlayerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			return domain.PlayerAccount{}, ErrInvalidCredentials
		}
		return domain.PlayerAccount{}, err
	}
	stored := users.Secret{PasswordHash: account.PasswordHash, Salt: account.PasswordSalt}
	if stored.Empty() {
		// External accounts have no password to check.
		return domain.PlayerAccount{}, ErrInvalidCredentials
	}
	secret := generateSecret(password, s.cfg.PasswordPepper, stored.Salt)
	if subtle.ConstantTimeCompare(secret.PasswordHash, stored.PasswordHash) != 1 {
		return domain.PlayerAccount{}, ErrInvalidCredentials
	}
	return account, nil
}

func (s *Service) GenerateJWTCookie(userID uuid.UUID, host string) (*fiber.Cookie, error) {
	expiresIn, err := time.ParseDuration(s.cfg.Expiration)
	if err != nil {
		return nil, err
	}
	expirationTime := time.Now().Add(expiresIn)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: expirationTime.Unix(),
		IssuedAt:  time.Now().Unix(),
		Subject:   userID.String(),
	})
	tokenString, err := token.SignedString([]byte(s.cfg.Token))
	if err != nil {
		return nil, err
	}
	return &fiber.Cookie{
		Name:     "token",
		Value:    tokenString,
		Path:     "/",
		Domain:   host,
		Expires:  expirationTime,
		HTTPOnly: true,
	}, nil
}

// Auth resolves the account behind a token cookie.
func (s *Service) Auth(ctx context.Context, cookie string) (domain.PlayerAccount, error) {
	if cookie == "" {
		return domain.PlayerAccount{}, ErrNotAuthorized
	}
	token, err := jwt.ParseWithClaims(cookie, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Token), nil
	})
	if err != nil || !token.Valid {
		return domain.PlayerAccount{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok {
		return domain.PlayerAccount{}, ErrInvalidToken
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.PlayerAccount{}, ErrInvalidToken
	}
	account, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return domain.PlayerAccount{}, ErrNotAuthorized
	}
	return account, nil
}

func (s *Service) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.storage.GetPlayerByEmail(ctx, email)
	if err == nil {
		return domain.ErrEmailTaken
	}
	if errors.Is(err, domain.ErrPlayerNotFound) {
		return nil
	}
	return err
}

func randomSalt() ([]byte, error) {
	salt := make([]byte, 8)
	_, err := rand.Read(salt)
	if err != nil {
		return nil, err
	}
	return salt, nil
}

func generateSecret(password string, pepper string, salt []byte) users.Secret {
	sha := sha256.New()
	sha.Write([]byte(pepper + password))
	sha.Write(salt)
	return users.Secret{
		PasswordHash: sha.Sum(nil),
		Salt:         salt,
	}
}
