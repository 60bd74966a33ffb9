package broker

import (
	"testing"
	"time"

	"github.com/Werneck0live/calculadora-pj/internal/models"
)

func TestEventHeaders(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	h := EventHeaders(&models.CalculationEvent{ID: "x", Currency: "EUR", BestRegime: "lucro_presumido", CreatedAt: ts})

	if h["currency"] != "EUR" || h["best_regime"] != "lucro_presumido" || h["event_id"] != "x" {
		t.Fatalf("headers: %#v", h)
	}
	if h["timestamp"] != "2024-05-01T12:00:00Z" {
		t.Fatalf("timestamp: %v", h["timestamp"])
	}
}
