package taxengine

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Currency é a moeda da fatura. Só informativa: não entra nas fórmulas.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
)

var symbols = map[Currency]string{
	USD: "$",
	EUR: "€",
	GBP: "£",
	CAD: "C$",
	AUD: "A$",
}

// Currencies lista as moedas aceitas, na ordem exibida ao usuário.
func Currencies() []Currency {
	return []Currency{USD, EUR, GBP, CAD, AUD}
}

// ParseCurrency normaliza o código (case-insensitive) e rejeita moedas fora da lista.
func ParseCurrency(s string) (Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, s)
	}
	c := Currency(unit.String())
	if _, ok := symbols[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, s)
	}
	return c, nil
}

func (c Currency) Valid() bool {
	_, ok := symbols[c]
	return ok
}

func (c Currency) Symbol() string {
	if s, ok := symbols[c]; ok {
		return s
	}
	return string(c)
}
