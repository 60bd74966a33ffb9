package rates

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Werneck0live/calculadora-pj/internal/models"
	"github.com/Werneck0live/calculadora-pj/internal/repository"
	"github.com/Werneck0live/calculadora-pj/internal/taxengine"
)

type storeMock struct {
	data    map[string]float64
	err     error
	upserts []models.ExchangeRate
}

func (m *storeMock) GetByCurrency(_ context.Context, code string) (*models.ExchangeRate, error) {
	if m.err != nil {
		return nil, m.err
	}
	v, ok := m.data[code]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &models.ExchangeRate{Currency: code, Rate: v}, nil
}

func (m *storeMock) GetAll(_ context.Context) ([]models.ExchangeRate, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.ExchangeRate
	for k, v := range m.data {
		out = append(out, models.ExchangeRate{Currency: k, Rate: v})
	}
	return out, nil
}

func (m *storeMock) Upsert(_ context.Context, r *models.ExchangeRate) error {
	if m.err != nil {
		return m.err
	}
	m.upserts = append(m.upserts, *r)
	if m.data == nil {
		m.data = map[string]float64{}
	}
	m.data[r.Currency] = r.Rate
	return nil
}

type cacheMock struct {
	data        map[string]float64
	invalidated []string
}

func (c *cacheMock) Get(_ context.Context, code string) (float64, bool, error) {
	v, ok := c.data[code]
	return v, ok, nil
}

func (c *cacheMock) Set(_ context.Context, code string, rate float64) error {
	c.data[code] = rate
	return nil
}

func (c *cacheMock) Invalidate(_ context.Context, code string) error {
	delete(c.data, code)
	c.invalidated = append(c.invalidated, code)
	return nil
}

func TestService_CacheHit(t *testing.T) {
	cache := &cacheMock{data: map[string]float64{"USD": 5.1}}
	s := NewService(&storeMock{data: map[string]float64{"USD": 5.3}}, cache, nil, nil)

	q, err := s.Quote(context.Background(), taxengine.USD)
	require.NoError(t, err)
	assert.Equal(t, SourceCache, q.Source)
	assert.Equal(t, 5.1, q.Rate)
}

func TestService_StoreHitFillsCache(t *testing.T) {
	cache := &cacheMock{data: map[string]float64{}}
	s := NewService(&storeMock{data: map[string]float64{"EUR": 5.7}}, cache, nil, nil)

	q, err := s.Quote(context.Background(), taxengine.EUR)
	require.NoError(t, err)
	assert.Equal(t, SourceMongo, q.Source)
	assert.Equal(t, 5.7, cache.data["EUR"])
}

func TestService_FallbackStatic(t *testing.T) {
	s := NewService(&storeMock{}, nil, nil, nil)

	v, err := s.Rate(context.Background(), taxengine.GBP)
	require.NoError(t, err)
	assert.Equal(t, 6.45, v)
}

func TestService_StoreErrorFallsBack(t *testing.T) {
	s := NewService(&storeMock{err: errors.New("mongo down")}, nil, nil, nil)

	q, err := s.Quote(context.Background(), taxengine.CAD)
	require.NoError(t, err)
	assert.Equal(t, SourceStatic, q.Source)
	assert.Equal(t, 3.89, q.Rate)
}

func TestService_NoSourceAnswers(t *testing.T) {
	s := NewService(nil, nil, StaticProvider{}, nil)

	_, err := s.Rate(context.Background(), taxengine.AUD)
	assert.ErrorIs(t, err, ErrRateNotFound)
}

func TestService_UnsupportedCurrency(t *testing.T) {
	s := NewService(nil, nil, nil, nil)

	_, err := s.Rate(context.Background(), taxengine.Currency("BRL"))
	assert.ErrorIs(t, err, taxengine.ErrUnsupportedCurrency)
}

func TestService_List(t *testing.T) {
	s := NewService(&storeMock{data: map[string]float64{"USD": 5.5}}, nil, nil, nil)

	list, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, len(taxengine.Currencies()))
	assert.Equal(t, taxengine.USD, list[0].Currency)
	assert.Equal(t, SourceMongo, list[0].Source)
	assert.Equal(t, 5.5, list[0].Rate)
	assert.Equal(t, SourceStatic, list[1].Source)
}

func TestService_SetInvalidatesCache(t *testing.T) {
	store := &storeMock{}
	cache := &cacheMock{data: map[string]float64{"USD": 5.0}}
	s := NewService(store, cache, nil, nil)

	q, err := s.Set(context.Background(), taxengine.USD, 5.42)
	require.NoError(t, err)
	assert.Equal(t, 5.42, q.Rate)
	require.Len(t, store.upserts, 1)
	assert.Equal(t, "manual", store.upserts[0].Source)
	assert.Equal(t, []string{"USD"}, cache.invalidated)

	// próxima leitura vem do Mongo
	q, err = s.Quote(context.Background(), taxengine.USD)
	require.NoError(t, err)
	assert.Equal(t, SourceMongo, q.Source)
	assert.Equal(t, 5.42, q.Rate)
}

func TestService_SetWithoutStore(t *testing.T) {
	s := NewService(nil, nil, nil, nil)
	_, err := s.Set(context.Background(), taxengine.USD, 5)
	assert.Error(t, err)
}
