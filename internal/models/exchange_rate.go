package models

import "time"

// ExchangeRate é a cotação de referência de uma moeda (BRL por unidade).
// O _id é o próprio código da moeda.
type ExchangeRate struct {
	Currency  string    `bson:"_id" json:"currency"`
	Rate      float64   `bson:"rate" json:"rate"`
	Source    string    `bson:"source" json:"source"` // seed | manual
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
