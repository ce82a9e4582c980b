package repository

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/cs329-classwork/jwt-pizza-service/internal/domain"
)

type session struct {
	userID  int64
	expires time.Time
}

// MemoryStore keeps users, sessions, the menu and orders in process memory.
// It is the default store when no database is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[int64]*domain.User
	byEmail  map[string]int64
	sessions map[string]session
	menu     []domain.MenuItem
	orders   []domain.Order
	nextID   int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[int64]*domain.User),
		byEmail:  make(map[string]int64),
		sessions: make(map[string]session),
	}
}

func (s *MemoryStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *MemoryStore) CreateUser(_ context.Context, name, email string, passwordHash []byte) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(email)
	if _, ok := s.byEmail[key]; ok {
		return nil, ErrDuplicate
	}

	u := &domain.User{ID: s.id(), Name: name, Email: email, PasswordHash: slices.Clone(passwordHash)}
	s.users[u.ID] = u
	s.byEmail[key] = u.ID

	out := *u
	return &out, nil
}

func (s *MemoryStore) UserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	out := *s.users[id]
	return &out, nil
}

func (s *MemoryStore) UserByID(_ context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *u
	return &out, nil
}

func (s *MemoryStore) CreateSession(_ context.Context, token string, userID int64, expires time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return ErrNotFound
	}
	s.sessions[token] = session{userID: userID, expires: expires}
	return nil
}

func (s *MemoryStore) SessionUser(_ context.Context, token string) (int64, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return 0, ErrNotFound
	}
	if time.Now().After(sess.expires) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return 0, ErrNotFound
	}
	return sess.userID, nil
}

func (s *MemoryStore) DeleteSession(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, token)
	return nil
}

func (s *MemoryStore) Menu(_ context.Context) ([]domain.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.menu), nil
}

func (s *MemoryStore) AddMenuItem(_ context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.id()
	s.menu = append(s.menu, item)
	return &item, nil
}

func (s *MemoryStore) CreateOrder(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[order.DinerID]; !ok {
		return ErrNotFound
	}
	order.ID = s.id()
	stored := *order
	stored.Items = slices.Clone(order.Items)
	s.orders = append(s.orders, stored)
	return nil
}

func (s *MemoryStore) OrdersByDiner(_ context.Context, dinerID int64) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Order
	for _, o := range s.orders {
		if o.DinerID == dinerID {
			o.Items = slices.Clone(o.Items)
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *MemoryStore) Close() {}
