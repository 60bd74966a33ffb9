package handlers

import (
	"context"
	"errors"

	"github.com/Werneck0live/calculadora-pj/internal/models"
	"github.com/Werneck0live/calculadora-pj/internal/rates"
	"github.com/Werneck0live/calculadora-pj/internal/taxengine"
)

type rateMock struct {
	QuoteFn func(ctx context.Context, cur taxengine.Currency) (rates.Quote, error)
	ListFn  func(ctx context.Context) ([]rates.Quote, error)
	SetFn   func(ctx context.Context, cur taxengine.Currency, rate float64) (rates.Quote, error)
}

func (m *rateMock) Quote(ctx context.Context, cur taxengine.Currency) (rates.Quote, error) {
	if m.QuoteFn == nil {
		return rates.Quote{}, errors.New("QuoteFn not set")
	}
	return m.QuoteFn(ctx, cur)
}
func (m *rateMock) List(ctx context.Context) ([]rates.Quote, error) {
	if m.ListFn == nil {
		return nil, errors.New("ListFn not set")
	}
	return m.ListFn(ctx)
}
func (m *rateMock) Set(ctx context.Context, cur taxengine.Currency, rate float64) (rates.Quote, error) {
	if m.SetFn == nil {
		return rates.Quote{}, errors.New("SetFn not set")
	}
	return m.SetFn(ctx, cur, rate)
}

type pubMock struct {
	PublishEventFn func(ctx context.Context, ev *models.CalculationEvent) error
	CloseFn        func() error
}

func (p *pubMock) PublishEvent(ctx context.Context, ev *models.CalculationEvent) error {
	if p.PublishEventFn == nil {
		return nil
	}
	return p.PublishEventFn(ctx, ev)
}
func (p *pubMock) Close() error {
	if p.CloseFn == nil {
		return nil
	}
	return p.CloseFn()
}
