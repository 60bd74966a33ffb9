package handlers

import (
	"errors"
	"math"
)

// validateCalculationDTO cobre apenas o formato do corpo; as regras de
// domínio ficam em taxengine.CalculationInput.Validate.
func validateCalculationDTO(d CalculationRequestDTO) error {
	if d.ForeignAmount == nil {
		return errors.New("foreign_amount is required")
	}
	if d.Currency == "" {
		return errors.New("currency is required")
	}
	if d.ExchangeRate != nil && *d.ExchangeRate < 0 {
		return errors.New("exchange_rate must be > 0")
	}
	return nil
}

func validateRateUpdateDTO(d RateUpdateDTO) error {
	if d.Rate == nil {
		return errors.New("rate is required")
	}
	if math.IsNaN(*d.Rate) || math.IsInf(*d.Rate, 0) || *d.Rate <= 0 {
		return errors.New("rate must be > 0")
	}
	return nil
}
