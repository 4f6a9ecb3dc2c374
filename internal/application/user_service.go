package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/internal/domain/apperror"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	repo "github.com/oksasatya/go-todo-api/internal/domain/repository"
)

var (
	ErrInvalidCredentials = apperror.New(apperror.ErrUnauthenticated, "Incorrect email or password")
	ErrInvalidEmail       = apperror.New(apperror.ErrValidation, "email must have a non-empty local part")
	ErrEmptyPassword      = apperror.New(apperror.ErrValidation, "password must not be empty")
)

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, encoded string) (bool, error)
}

type TokenIssuer interface {
	Issue(subject, email string) (string, time.Time, error)
}

// UserService is the user directory: account creation, lookup and credential checks,
// plus minting access tokens for register and login.
type UserService struct {
	Repo   repo.UserRepository
	Hasher PasswordHasher
	Tokens TokenIssuer
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, hasher PasswordHasher, tokens TokenIssuer, logger *logrus.Logger) *UserService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &UserService{Repo: repo, Hasher: hasher, Tokens: tokens, Logger: logger}
}

type AccessToken struct {
	Token     string
	Type      string
	ExpiresAt time.Time
}

// Create registers a new account. The id is derived from the email's local part.
func (s *UserService) Create(ctx context.Context, email, password string, name *string) (*entity.User, error) {
	if entity.UserIDForEmail(email) == "user_" {
		return nil, ErrInvalidEmail
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}

	existing, err := s.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, repo.ErrEmailTaken
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		s.Logger.WithError(err).Error("hash password failed")
		return nil, apperror.Wrap(apperror.ErrInternal, "Failed to create user", err)
	}

	u := &entity.User{
		ID:           entity.UserIDForEmail(email),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			s.Logger.WithField("user_id", u.ID).WithError(err).Info("registration conflict")
			return nil, err
		}
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("create user failed")
		return nil, apperror.Wrap(apperror.ErrInternal, "Failed to create user", err)
	}
	return u, nil
}

// FindByEmail returns (nil, nil) when no account uses email.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// Authenticate returns the account when email and password match and (nil, nil) otherwise.
// Unknown email and wrong password are deliberately indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.FindByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, err
	}
	ok, err := s.Hasher.Verify(password, u.PasswordHash)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("stored password hash unreadable")
		return nil, apperror.Wrap(apperror.ErrInternal, "could not verify credentials", err)
	}
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (s *UserService) Register(ctx context.Context, email, password string, name *string) (AccessToken, error) {
	u, err := s.Create(ctx, email, password, name)
	if err != nil {
		return AccessToken{}, err
	}
	return s.issue(u)
}

func (s *UserService) Login(ctx context.Context, email, password string) (AccessToken, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return AccessToken{}, err
	}
	if u == nil {
		return AccessToken{}, ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *UserService) issue(u *entity.User) (AccessToken, error) {
	tok, exp, err := s.Tokens.Issue(u.ID, u.Email)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		return AccessToken{}, apperror.Wrap(apperror.ErrInternal, "could not issue token", err)
	}
	return AccessToken{Token: tok, Type: "bearer", ExpiresAt: exp}, nil
}
