package models

import "time"

// CalculationEvent é publicado no RabbitMQ a cada cálculo e repassado aos
// clientes WebSocket. Não é persistido.
type CalculationEvent struct {
	ID               string    `json:"id"`
	Currency         string    `json:"currency"`
	ForeignAmount    float64   `json:"foreign_amount"`
	ExchangeRate     float64   `json:"exchange_rate"`
	ReceivedByEntity float64   `json:"received_by_entity"`
	SimplesNet       float64   `json:"simples_net"`
	PresumidoNet     float64   `json:"presumido_net"`
	BestRegime       string    `json:"best_regime"`
	Difference       float64   `json:"difference"`
	Summary          string    `json:"summary"`
	CreatedAt        time.Time `json:"created_at"`
}
