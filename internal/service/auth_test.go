package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cs329-classwork/jwt-pizza-service/internal/config"
	"github.com/cs329-classwork/jwt-pizza-service/internal/domain"
	"github.com/cs329-classwork/jwt-pizza-service/internal/repository"
	"github.com/cs329-classwork/jwt-pizza-service/internal/service"
	"github.com/cs329-classwork/jwt-pizza-service/internal/service/mocks"
)

var authCfg = &config.AuthConfig{SessionTTL: time.Hour, BcryptCost: bcrypt.MinCost}

func newAuth(t *testing.T) (*service.AuthService, *mocks.MockUserStore, *mocks.MockSessionCache) {
	store := mocks.NewMockUserStore(t)
	sessions := mocks.NewMockSessionCache(t)
	return service.NewAuthService(store, sessions, authCfg), store, sessions
}

func hashed(t *testing.T, password string) []byte {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

// Register tests

func TestRegister_Success(t *testing.T) {
	svc, store, sessions := newAuth(t)

	var storedHash []byte
	store.EXPECT().CreateUser(mock.Anything, "pizza diner", "d@jwt.com", mock.Anything).
		Run(func(_ context.Context, _, _ string, h []byte) { storedHash = h }).
		Return(&domain.User{ID: 4, Name: "pizza diner", Email: "d@jwt.com"}, nil)

	var token string
	store.EXPECT().CreateSession(mock.Anything, mock.Anything, int64(4), mock.Anything).
		Run(func(_ context.Context, tok string, _ int64, expires time.Time) {
			token = tok
			assert.WithinDuration(t, time.Now().Add(time.Hour), expires, time.Minute)
		}).Return(nil)
	sessions.EXPECT().Set(mock.Anything, int64(4)).Return()

	resp, err := svc.Register(context.Background(), domain.RegisterRequest{Name: "pizza diner", Email: "d@jwt.com", Password: "diner"})
	require.NoError(t, err)

	assert.Equal(t, int64(4), resp.User.ID)
	assert.Equal(t, token, resp.Token)
	assert.Len(t, resp.Token, 43)
	assert.NoError(t, bcrypt.CompareHashAndPassword(storedHash, []byte("diner")))
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, store, _ := newAuth(t)
	store.EXPECT().CreateUser(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, repository.ErrDuplicate)

	_, err := svc.Register(context.Background(), domain.RegisterRequest{Name: "d", Email: "d@jwt.com", Password: "diner"})
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestRegister_StoreError(t *testing.T) {
	svc, store, _ := newAuth(t)
	dbErr := errors.New("connection refused")
	store.EXPECT().CreateUser(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, dbErr)

	_, err := svc.Register(context.Background(), domain.RegisterRequest{Name: "d", Email: "d@jwt.com", Password: "diner"})
	assert.ErrorIs(t, err, dbErr)
}

// Login tests

func TestLogin_Success(t *testing.T) {
	svc, store, sessions := newAuth(t)
	store.EXPECT().UserByEmail(mock.Anything, "d@jwt.com").
		Return(&domain.User{ID: 2, Email: "d@jwt.com", PasswordHash: hashed(t, "diner")}, nil)
	store.EXPECT().CreateSession(mock.Anything, mock.Anything, int64(2), mock.Anything).Return(nil)
	sessions.EXPECT().Set(mock.Anything, int64(2)).Return()

	resp, err := svc.Login(context.Background(), domain.LoginRequest{Email: "d@jwt.com", Password: "diner"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, store, _ := newAuth(t)
	store.EXPECT().UserByEmail(mock.Anything, "d@jwt.com").
		Return(&domain.User{ID: 2, PasswordHash: hashed(t, "diner")}, nil)

	_, err := svc.Login(context.Background(), domain.LoginRequest{Email: "d@jwt.com", Password: "guess"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, store, _ := newAuth(t)
	store.EXPECT().UserByEmail(mock.Anything, "x@jwt.com").Return(nil, repository.ErrNotFound)

	_, err := svc.Login(context.Background(), domain.LoginRequest{Email: "x@jwt.com", Password: "guess"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

// Logout tests

func TestLogout(t *testing.T) {
	svc, store, sessions := newAuth(t)
	sessions.EXPECT().Delete("tok").Return()
	store.EXPECT().DeleteSession(mock.Anything, "tok").Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), "tok"))
}

func TestLogout_UnknownToken(t *testing.T) {
	svc, store, sessions := newAuth(t)
	sessions.EXPECT().Delete("stale").Return()
	store.EXPECT().DeleteSession(mock.Anything, "stale").Return(repository.ErrNotFound)

	assert.ErrorIs(t, svc.Logout(context.Background(), "stale"), service.ErrUnauthorized)
}

// Authenticate tests

func TestAuthenticate_CacheHit(t *testing.T) {
	svc, store, sessions := newAuth(t)
	sessions.EXPECT().Get("tok").Return(int64(9), true)
	store.EXPECT().UserByID(mock.Anything, int64(9)).Return(&domain.User{ID: 9}, nil)

	u, err := svc.Authenticate(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, int64(9), u.ID)
	store.AssertNotCalled(t, "SessionUser", mock.Anything, mock.Anything)
}

func TestAuthenticate_CacheMissFillsCache(t *testing.T) {
	svc, store, sessions := newAuth(t)
	sessions.EXPECT().Get("tok").Return(int64(0), false)
	store.EXPECT().SessionUser(mock.Anything, "tok").Return(int64(9), nil)
	sessions.EXPECT().Set("tok", int64(9)).Return()
	store.EXPECT().UserByID(mock.Anything, int64(9)).Return(&domain.User{ID: 9}, nil)

	u, err := svc.Authenticate(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, int64(9), u.ID)
}

func TestAuthenticate_Rejects(t *testing.T) {
	svc, store, sessions := newAuth(t)

	_, err := svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrUnauthorized)

	sessions.EXPECT().Get("expired").Return(int64(0), false)
	store.EXPECT().SessionUser(mock.Anything, "expired").Return(int64(0), repository.ErrNotFound)

	_, err = svc.Authenticate(context.Background(), "expired")
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}
