package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cs329-classwork/jwt-pizza-service/internal/config"
	"github.com/cs329-classwork/jwt-pizza-service/internal/domain"
)

const uniqueViolation = "23505"

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id       BIGSERIAL PRIMARY KEY,
	name     TEXT NOT NULL,
	email    TEXT NOT NULL UNIQUE,
	password BYTEA NOT NULL
);
CREATE TABLE IF NOT EXISTS sessions (
	token      TEXT PRIMARY KEY,
	user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	expires_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS menu (
	id          BIGSERIAL PRIMARY KEY,
	title       TEXT NOT NULL,
	image       TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	price       DOUBLE PRECISION NOT NULL
);
CREATE TABLE IF NOT EXISTS orders (
	id           BIGSERIAL PRIMARY KEY,
	diner_id     BIGINT NOT NULL REFERENCES users(id),
	franchise_id BIGINT NOT NULL,
	store_id     BIGINT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS order_items (
	id          BIGSERIAL PRIMARY KEY,
	order_id    BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	menu_id     BIGINT NOT NULL,
	description TEXT NOT NULL,
	price       DOUBLE PRECISION NOT NULL
);`

type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects, applies the schema and returns the store. Every
// statement issued through the pool is reported to tracer when it is set.
func NewPostgresStore(ctx context.Context, cfg *config.DatabaseConfig, tracer pgx.QueryTracer) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if tracer != nil {
		poolCfg.ConnConfig.Tracer = tracer
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) CreateUser(ctx context.Context, name, email string, passwordHash []byte) (*domain.User, error) {
	u := &domain.User{Name: name, Email: email, PasswordHash: passwordHash}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id`,
		name, email, passwordHash,
	).Scan(&u.ID)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return u, nil
}

func (s *PostgresStore) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.user(ctx, `SELECT id, name, email, password FROM users WHERE lower(email) = lower($1)`, email)
}

func (s *PostgresStore) UserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.user(ctx, `SELECT id, name, email, password FROM users WHERE id = $1`, id)
}

func (s *PostgresStore) user(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := s.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

func (s *PostgresStore) CreateSession(ctx context.Context, token string, userID int64, expires time.Time) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO sessions (token, user_id, expires_at) VALUES ($1, $2, $3)`,
		token, userID, expires,
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (s *PostgresStore) SessionUser(ctx context.Context, token string) (int64, error) {
	var userID int64
	err := s.pool.QueryRow(ctx,
		`SELECT user_id FROM sessions WHERE token = $1 AND expires_at > now()`,
		token,
	).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to find session: %w", err)
	}
	return userID, nil
}

func (s *PostgresStore) DeleteSession(ctx context.Context, token string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Menu(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, title, image, description, price FROM menu ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MenuItem, error) {
		var m domain.MenuItem
		err := row.Scan(&m.ID, &m.Title, &m.Image, &m.Description, &m.Price)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read menu: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) AddMenuItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO menu (title, image, description, price) VALUES ($1, $2, $3, $4) RETURNING id`,
		item.Title, item.Image, item.Description, item.Price,
	).Scan(&item.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert menu item: %w", err)
	}
	return &item, nil
}

// CreateOrder writes the order and its items in one transaction.
func (s *PostgresStore) CreateOrder(ctx context.Context, order *domain.Order) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO orders (diner_id, franchise_id, store_id, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
			order.DinerID, order.FranchiseID, order.StoreID, order.Date,
		).Scan(&order.ID)
		if err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}

		batch := &pgx.Batch{}
		for _, item := range order.Items {
			batch.Queue(
				`INSERT INTO order_items (order_id, menu_id, description, price) VALUES ($1, $2, $3, $4)`,
				order.ID, item.MenuID, item.Description, item.Price,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert order items: %w", err)
		}
		return nil
	})
}

func (s *PostgresStore) OrdersByDiner(ctx context.Context, dinerID int64) ([]domain.Order, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT o.id, o.franchise_id, o.store_id, o.created_at, i.menu_id, i.description, i.price
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE o.diner_id = $1
		ORDER BY o.id, i.id`, dinerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var (
			o    domain.Order
			item domain.OrderItem
		)
		if err := rows.Scan(&o.ID, &o.FranchiseID, &o.StoreID, &o.Date, &item.MenuID, &item.Description, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to read order: %w", err)
		}
		if n := len(orders); n > 0 && orders[n-1].ID == o.ID {
			orders[n-1].Items = append(orders[n-1].Items, item)
			continue
		}
		o.DinerID = dinerID
		o.Items = []domain.OrderItem{item}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}
	return orders, nil
}
