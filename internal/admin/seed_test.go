package admin

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Werneck0live/calculadora-pj/internal/models"
	"github.com/Werneck0live/calculadora-pj/internal/rates"
	"github.com/Werneck0live/calculadora-pj/internal/taxengine"
)

type memSeeder struct {
	docs map[string]models.ExchangeRate
	err  error
}

func (m *memSeeder) InsertIfMissing(_ context.Context, r *models.ExchangeRate) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.docs[r.Currency]; ok {
		return false, nil
	}
	m.docs[r.Currency] = *r
	return true, nil
}

func TestSeedExchangeRates_MatchesReferenceTable(t *testing.T) {
	m := &memSeeder{docs: map[string]models.ExchangeRate{}}
	require.NoError(t, SeedExchangeRates(context.Background(), m, slog.Default()))

	require.Len(t, m.docs, len(taxengine.Currencies()))
	for _, cur := range taxengine.Currencies() {
		doc, ok := m.docs[string(cur)]
		require.True(t, ok, "missing %s", cur)
		assert.Equal(t, rates.ReferenceRates[cur], doc.Rate, "%s", cur)
		assert.Equal(t, "seed", doc.Source)
	}
}

func TestSeedExchangeRates_Idempotent(t *testing.T) {
	m := &memSeeder{docs: map[string]models.ExchangeRate{
		"USD": {Currency: "USD", Rate: 5.5, Source: "manual"},
	}}
	require.NoError(t, SeedExchangeRates(context.Background(), m, slog.Default()))
	require.NoError(t, SeedExchangeRates(context.Background(), m, slog.Default()))

	assert.Equal(t, 5.5, m.docs["USD"].Rate, "manual rate must be kept")
	assert.Len(t, m.docs, 5)
}

func TestSeedFrom_SkipsInvalidAndPropagatesErrors(t *testing.T) {
	raw := []byte(`[{"currency":"JPY","rate":0.035},{"currency":"USD","rate":0},{"currency":"eur","rate":5.6}]`)
	m := &memSeeder{docs: map[string]models.ExchangeRate{}}
	require.NoError(t, seedFrom(context.Background(), raw, m, slog.Default()))
	assert.Len(t, m.docs, 1)
	assert.Contains(t, m.docs, "EUR")

	boom := errors.New("boom")
	err := seedFrom(context.Background(), raw, &memSeeder{err: boom}, slog.Default())
	assert.ErrorIs(t, err, boom)

	assert.Error(t, seedFrom(context.Background(), []byte(`{`), m, slog.Default()))
}
