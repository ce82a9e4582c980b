package traffic

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"

	vegeta "github.com/tsenart/vegeta/v12/lib"

	"github.com/cs329-classwork/jwt-pizza-service/internal/domain"
)

const maxPizzasPerOrder = 3

func baseHeader(bypassSecret string) http.Header {
	header := http.Header{"Content-Type": []string{"application/json"}}
	if bypassSecret != "" {
		header.Set(bypassHeader, bypassSecret)
	}
	return header
}

func MenuTargeter(baseURL, bypassSecret string) vegeta.Targeter {
	header := baseHeader(bypassSecret)
	url := baseURL + "/api/order/menu"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = url
		t.Header = header
		return nil
	}
}

// OrderTargeter places orders for random diners with one to three pizzas
// priced from the menu.
func OrderTargeter(baseURL string, fx *Fixture, bypassSecret string) vegeta.Targeter {
	url := baseURL + "/api/order"

	return func(t *vegeta.Target) error {
		diner := fx.Diners[rand.IntN(len(fx.Diners))]

		n := 1 + rand.IntN(maxPizzasPerOrder)
		items := make([]domain.OrderItem, n)
		for i := range items {
			m := fx.Menu[rand.IntN(len(fx.Menu))]
			items[i] = domain.OrderItem{MenuID: m.ID, Description: m.Title, Price: m.Price}
		}

		body, err := json.Marshal(domain.CreateOrderRequest{FranchiseID: 1, StoreID: 1, Items: items})
		if err != nil {
			return err
		}

		header := baseHeader(bypassSecret)
		header.Set("Authorization", "Bearer "+diner.Token)

		t.Method = http.MethodPost
		t.URL = url
		t.Header = header
		t.Body = body
		return nil
	}
}

// LoginTargeter logs seeded diners in. A badRatio share of attempts uses a
// wrong password so both login outcomes show up in the metrics.
func LoginTargeter(baseURL string, fx *Fixture, badRatio float64, bypassSecret string) vegeta.Targeter {
	header := baseHeader(bypassSecret)
	url := baseURL + "/api/auth"

	return func(t *vegeta.Target) error {
		diner := fx.Diners[rand.IntN(len(fx.Diners))]
		password := dinerPassword
		if rand.Float64() < badRatio {
			password = "not-" + dinerPassword
		}

		body, err := json.Marshal(domain.LoginRequest{Email: diner.Email, Password: password})
		if err != nil {
			return err
		}

		t.Method = http.MethodPut
		t.URL = url
		t.Header = header
		t.Body = body
		return nil
	}
}

func MixedTargeter(baseURL string, fx *Fixture, cfg *Config) vegeta.Targeter {
	menuTarget := MenuTargeter(baseURL, cfg.RateLimitBypass)
	orderTarget := OrderTargeter(baseURL, fx, cfg.RateLimitBypass)
	loginTarget := LoginTargeter(baseURL, fx, cfg.BadLoginRatio, cfg.RateLimitBypass)

	return func(t *vegeta.Target) error {
		switch r := rand.Float64(); {
		case r < cfg.OrderRatio:
			return orderTarget(t)
		case r < cfg.OrderRatio+cfg.LoginRatio:
			return loginTarget(t)
		default:
			return menuTarget(t)
		}
	}
}
