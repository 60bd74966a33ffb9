package rates

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Werneck0live/calculadora-pj/internal/metrics"
	"github.com/Werneck0live/calculadora-pj/internal/models"
	"github.com/Werneck0live/calculadora-pj/internal/repository"
	"github.com/Werneck0live/calculadora-pj/internal/taxengine"
)

const (
	SourceCache  = "cache"
	SourceMongo  = "mongo"
	SourceStatic = "static"
)

type Store interface {
	GetByCurrency(ctx context.Context, code string) (*models.ExchangeRate, error)
	GetAll(ctx context.Context) ([]models.ExchangeRate, error)
	Upsert(ctx context.Context, rate *models.ExchangeRate) error
}

type Cache interface {
	Get(ctx context.Context, code string) (float64, bool, error)
	Set(ctx context.Context, code string, rate float64) error
	Invalidate(ctx context.Context, code string) error
}

// Quote é uma cotação com a origem de onde foi lida.
type Quote struct {
	Currency taxengine.Currency `json:"currency"`
	Rate     float64            `json:"rate"`
	Source   string             `json:"source"`
}

// Service consulta cache -> Mongo -> tabela estática, nessa ordem.
// Store e Cache podem ser nil.
type Service struct {
	store    Store
	cache    Cache
	fallback Provider
	log      *slog.Logger
}

func NewService(store Store, cache Cache, fallback Provider, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	if fallback == nil {
		fallback = StaticProvider(ReferenceRates)
	}
	return &Service{store: store, cache: cache, fallback: fallback, log: log.With("cmp", "rates")}
}

var _ Provider = (*Service)(nil)

// Rate satisfaz Provider, devolvendo só o valor da cotação.
func (s *Service) Rate(ctx context.Context, cur taxengine.Currency) (float64, error) {
	q, err := s.Quote(ctx, cur)
	if err != nil {
		return 0, err
	}
	return q.Rate, nil
}

func (s *Service) Quote(ctx context.Context, cur taxengine.Currency) (Quote, error) {
	if !cur.Valid() {
		return Quote{}, fmt.Errorf("%w: %q", taxengine.ErrUnsupportedCurrency, cur)
	}
	code := string(cur)

	if s.cache != nil {
		v, ok, err := s.cache.Get(ctx, code)
		switch {
		case err != nil:
			s.log.Warn("rate_cache_error", "currency", code, "err", err)
		case ok:
			metrics.RateLookupsTotal.WithLabelValues(SourceCache).Inc()
			return Quote{Currency: cur, Rate: v, Source: SourceCache}, nil
		default:
			s.log.Debug("rate_cache_miss", "currency", code)
		}
	}

	if s.store != nil {
		r, err := s.store.GetByCurrency(ctx, code)
		switch {
		case err == nil && r.Rate > 0:
			s.remember(ctx, code, r.Rate)
			metrics.RateLookupsTotal.WithLabelValues(SourceMongo).Inc()
			return Quote{Currency: cur, Rate: r.Rate, Source: SourceMongo}, nil
		case err != nil && !errors.Is(err, repository.ErrNotFound):
			s.log.Warn("rate_store_error", "currency", code, "err", err)
		}
	}

	v, err := s.fallback.Rate(ctx, cur)
	if err != nil {
		metrics.RateLookupsTotal.WithLabelValues("miss").Inc()
		return Quote{}, err
	}
	s.log.Info("rate_fallback_static", "currency", code, "rate", v)
	metrics.RateLookupsTotal.WithLabelValues(SourceStatic).Inc()
	return Quote{Currency: cur, Rate: v, Source: SourceStatic}, nil
}

// List devolve uma cotação por moeda aceita, preenchendo com a tabela
// estática o que não estiver no Mongo.
func (s *Service) List(ctx context.Context) ([]Quote, error) {
	stored := map[string]float64{}
	if s.store != nil {
		all, err := s.store.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, r := range all {
			stored[r.Currency] = r.Rate
		}
	}

	out := make([]Quote, 0, len(taxengine.Currencies()))
	for _, cur := range taxengine.Currencies() {
		if v, ok := stored[string(cur)]; ok && v > 0 {
			out = append(out, Quote{Currency: cur, Rate: v, Source: SourceMongo})
			continue
		}
		if v, err := s.fallback.Rate(ctx, cur); err == nil {
			out = append(out, Quote{Currency: cur, Rate: v, Source: SourceStatic})
		}
	}
	return out, nil
}

// Set cadastra uma cotação manual e invalida o cache da moeda.
func (s *Service) Set(ctx context.Context, cur taxengine.Currency, rate float64) (Quote, error) {
	if !cur.Valid() {
		return Quote{}, fmt.Errorf("%w: %q", taxengine.ErrUnsupportedCurrency, cur)
	}
	if s.store == nil {
		return Quote{}, errors.New("rate store not configured")
	}
	doc := &models.ExchangeRate{
		Currency:  string(cur),
		Rate:      rate,
		Source:    "manual",
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.store.Upsert(ctx, doc); err != nil {
		return Quote{}, err
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, doc.Currency); err != nil {
			s.log.Warn("rate_cache_invalidate_error", "currency", doc.Currency, "err", err)
		}
	}
	s.log.Info("rate_updated", "currency", doc.Currency, "rate", rate)
	return Quote{Currency: cur, Rate: rate, Source: SourceMongo}, nil
}

func (s *Service) remember(ctx context.Context, code string, rate float64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, code, rate); err != nil {
		s.log.Warn("rate_cache_set_error", "currency", code, "err", err)
	}
}
