// Package rates resolve a cotação usada na conversão. A cotação vem de uma
// tabela de referência (Mongo, com cache Redis opcional); não há integração
// com cotação em tempo real.
package rates

import (
	"context"
	"errors"
	"fmt"

	"github.com/Werneck0live/calculadora-pj/internal/taxengine"
)

var ErrRateNotFound = errors.New("exchange rate not available")

// Provider devolve BRL por unidade da moeda.
type Provider interface {
	Rate(ctx context.Context, cur taxengine.Currency) (float64, error)
}

// ReferenceRates são as cotações de referência usadas quando nada foi cadastrado.
var ReferenceRates = map[taxengine.Currency]float64{
	taxengine.USD: 5.25,
	taxengine.EUR: 5.68,
	taxengine.GBP: 6.45,
	taxengine.CAD: 3.89,
	taxengine.AUD: 3.52,
}

// StaticProvider responde a partir de um mapa fixo.
type StaticProvider map[taxengine.Currency]float64

func (p StaticProvider) Rate(_ context.Context, cur taxengine.Currency) (float64, error) {
	if v, ok := p[cur]; ok && v > 0 {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrRateNotFound, cur)
}
