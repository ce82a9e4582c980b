package traffic

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cs329-classwork/jwt-pizza-service/internal/domain"
)

const (
	bypassHeader  = "X-Rate-Limit-Bypass"
	dinerPassword = "traffic-diner"
)

var defaultMenu = []domain.MenuItem{
	{Title: "Veggie", Image: "pizza1.png", Description: "A garden of delight", Price: 0.0038},
	{Title: "Pepperoni", Image: "pizza2.png", Description: "Spicy treat", Price: 0.0042},
	{Title: "Margarita", Image: "pizza3.png", Description: "Essential classic", Price: 0.0042},
}

// Diner is a registered account used to drive authenticated traffic.
type Diner struct {
	Email string
	Token string
}

// Fixture is the state the attack needs before it starts.
type Fixture struct {
	Diners []Diner
	Menu   []domain.MenuItem
}

type seeder struct {
	client       *http.Client
	baseURL      string
	bypassSecret string
}

// Seed registers count diners concurrently and makes sure the menu is not
// empty, adding a few items when it is.
func Seed(ctx context.Context, cfg *Config) (*Fixture, error) {
	numWorkers := runtime.NumCPU() * 2
	fmt.Printf("Registering %d diners (workers: %d)...\n", cfg.Diners, numWorkers)

	s := &seeder{
		client: &http.Client{
			Timeout: cfg.SeedTimeout,
			Transport: &http.Transport{
				TLSClientConfig:     &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify},
				MaxIdleConns:        numWorkers * 2,
				MaxIdleConnsPerHost: numWorkers * 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL:      cfg.BaseURL,
		bypassSecret: cfg.RateLimitBypass,
	}

	runID := time.Now().UnixNano()
	diners := make([]Diner, cfg.Diners)
	var progress atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)

	for i := range cfg.Diners {
		g.Go(func() error {
			email := fmt.Sprintf("diner-%d-%d@traffic.test", runID, i)
			token, err := s.register(gctx, fmt.Sprintf("traffic diner %d", i), email)
			if err != nil {
				return fmt.Errorf("failed to register diner %d: %w", i, err)
			}
			diners[i] = Diner{Email: email, Token: token}
			fmt.Printf("\rProgress: %d/%d", progress.Add(1), cfg.Diners)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	fmt.Printf("\nRegistered %d diners\n", len(diners))

	menu, err := s.menu(ctx)
	if err != nil {
		return nil, err
	}
	if len(menu) == 0 && len(diners) > 0 {
		for _, item := range defaultMenu {
			if menu, err = s.addMenuItem(ctx, diners[0].Token, item); err != nil {
				return nil, err
			}
		}
		fmt.Printf("Added %d menu items\n", len(menu))
	}

	return &Fixture{Diners: diners, Menu: menu}, nil
}

func (s *seeder) register(ctx context.Context, name, email string) (string, error) {
	var resp domain.AuthResponse
	err := s.call(ctx, http.MethodPost, "/api/auth", "", domain.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: dinerPassword,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (s *seeder) menu(ctx context.Context) ([]domain.MenuItem, error) {
	var menu []domain.MenuItem
	if err := s.call(ctx, http.MethodGet, "/api/order/menu", "", nil, &menu); err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	return menu, nil
}

func (s *seeder) addMenuItem(ctx context.Context, token string, item domain.MenuItem) ([]domain.MenuItem, error) {
	var menu []domain.MenuItem
	if err := s.call(ctx, http.MethodPut, "/api/order/menu", token, item, &menu); err != nil {
		return nil, fmt.Errorf("failed to add menu item %q: %w", item.Title, err)
	}
	return menu, nil
}

func (s *seeder) call(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if s.bypassSecret != "" {
		req.Header.Set(bypassHeader, s.bypassSecret)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
