package admin

import (
	"context"
	_ "embed"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/Werneck0live/calculadora-pj/internal/models"
	"github.com/Werneck0live/calculadora-pj/internal/taxengine"
)

//go:embed seeds/exchange_rates.json
var exchangeRatesJSON []byte

type seedItem struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

type RateSeeder interface {
	InsertIfMissing(ctx context.Context, rate *models.ExchangeRate) (bool, error)
}

// SeedExchangeRates é idempotente: cria se não existir; se já existir, ignora
// (não sobrescreve cotação ajustada manualmente).
func SeedExchangeRates(ctx context.Context, repo RateSeeder, log *slog.Logger) error {
	return seedFrom(ctx, exchangeRatesJSON, repo, log)
}

func seedFrom(ctx context.Context, raw []byte, repo RateSeeder, log *slog.Logger) error {
	var items []seedItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return err
	}

	created := 0
	for _, s := range items {
		cur, err := taxengine.ParseCurrency(s.Currency)
		if err != nil || s.Rate <= 0 {
			log.Warn("seed_skip_invalid_rate", "currency", s.Currency, "rate", s.Rate)
			continue
		}

		r := models.ExchangeRate{
			Currency:  string(cur),
			Rate:      s.Rate,
			Source:    "seed",
			UpdatedAt: time.Now().UTC(),
		}

		// timeout curto por item pra não travar
		ictx, cancel := context.WithTimeout(ctx, 3*time.Second)
		ok, err := repo.InsertIfMissing(ictx, &r)
		cancel()
		if err != nil {
			return err
		}
		if !ok {
			log.Info("seed_rate_exists", "currency", r.Currency)
			continue
		}
		created++
		log.Info("seed_rate_created", "currency", r.Currency, "rate", r.Rate)
	}

	log.Info("seed_exchange_rates_done", "count", len(items), "created", created)
	return nil
}
