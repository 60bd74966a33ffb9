package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Werneck0live/calculadora-pj/internal/taxengine"
	"github.com/Werneck0live/calculadora-pj/internal/utils"
)

// ExchangeRates atende GET /api/exchange-rates.
func (h *CalculationHandler) ExchangeRates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	list, err := h.Rates.List(ctx)
	if err != nil {
		writeRateError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, RateListDTO{Rates: list})
}

// ExchangeRateByCode atende GET e PUT /api/exchange-rates/{code}.
func (h *CalculationHandler) ExchangeRateByCode(w http.ResponseWriter, r *http.Request) {
	code, ok := parseCodeFromPath(r.URL.Path)
	if !ok {
		utils.WriteError(w, http.StatusNotFound, "not found")
		return
	}
	cur, err := taxengine.ParseCurrency(code)
	if err != nil {
		utils.BadRequest(w, err.Error())
		return
	}

	switch r.Method {
	case http.MethodGet:
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		q, err := h.Rates.Quote(ctx, cur)
		if err != nil {
			writeRateError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, q)

	case http.MethodPut:
		var dto RateUpdateDTO
		r.Body = http.MaxBytesReader(w, r.Body, utils.MaxBodyBytes)
		if err := utils.DecodeStrict(r.Body, &dto); err != nil {
			utils.BadRequest(w, utils.DecodeErrorMessage(err))
			return
		}
		if err := validateRateUpdateDTO(dto); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		q, err := h.Rates.Set(ctx, cur, *dto.Rate)
		if err != nil {
			writeRateError(w, err)
			return
		}
		h.logger().Info("exchange_rate_set", "currency", cur, "rate", q.Rate)
		utils.WriteJSON(w, http.StatusOK, q)

	default:
		w.Header().Set("Allow", "GET, PUT")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
