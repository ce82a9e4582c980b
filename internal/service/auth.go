package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/cs329-classwork/jwt-pizza-service/internal/config"
	"github.com/cs329-classwork/jwt-pizza-service/internal/domain"
	"github.com/cs329-classwork/jwt-pizza-service/internal/repository"
)

const tokenBytes = 32

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrEmailTaken         = errors.New("email already registered")
)

type AuthService struct {
	store      UserStore
	sessions   SessionCache
	ttl        time.Duration
	bcryptCost int
}

func NewAuthService(store UserStore, sessions SessionCache, cfg *config.AuthConfig) *AuthService {
	return &AuthService{
		store:      store,
		sessions:   sessions,
		ttl:        cfg.SessionTTL,
		bcryptCost: cfg.BcryptCost,
	}
}

func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, req.Name, req.Email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issue(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.store.UserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	s.sessions.Delete(token)
	if err := s.store.DeleteSession(ctx, token); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnauthorized
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Authenticate resolves a bearer token to its user, consulting the session
// cache before the store.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	userID, ok := s.sessions.Get(token)
	if !ok {
		id, err := s.store.SessionUser(ctx, token)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrUnauthorized
			}
			return nil, fmt.Errorf("failed to find session: %w", err)
		}
		userID = id
		s.sessions.Set(token, userID)
	}

	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (s *AuthService) issue(ctx context.Context, user *domain.User) (*domain.AuthResponse, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	if err := s.store.CreateSession(ctx, token, user.ID, time.Now().Add(s.ttl)); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	s.sessions.Set(token, user.ID)

	return &domain.AuthResponse{User: user, Token: token}, nil
}
