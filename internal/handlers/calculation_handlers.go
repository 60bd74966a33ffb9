package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Werneck0live/calculadora-pj/internal/format"
	"github.com/Werneck0live/calculadora-pj/internal/metrics"
	"github.com/Werneck0live/calculadora-pj/internal/models"
	"github.com/Werneck0live/calculadora-pj/internal/rates"
	"github.com/Werneck0live/calculadora-pj/internal/taxengine"
	"github.com/Werneck0live/calculadora-pj/internal/utils"
)

type RateService interface {
	Quote(ctx context.Context, cur taxengine.Currency) (rates.Quote, error)
	List(ctx context.Context) ([]rates.Quote, error)
	Set(ctx context.Context, cur taxengine.Currency, rate float64) (rates.Quote, error)
}

type Publisher interface {
	PublishEvent(ctx context.Context, ev *models.CalculationEvent) error
	Close() error
}

type CalculationHandler struct {
	Rates          RateService
	Pub            Publisher // opcional
	DefaultISSRate float64
	Log            *slog.Logger
}

func NewCalculationHandler(rs RateService, pub Publisher, defaultISS float64, log *slog.Logger) *CalculationHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CalculationHandler{Rates: rs, Pub: pub, DefaultISSRate: defaultISS, Log: log.With("cmp", "handlers")}
}

func (h *CalculationHandler) logger() *slog.Logger {
	if h.Log == nil {
		return slog.Default()
	}
	return h.Log
}

func (h *CalculationHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Calculations atende POST /api/calculations. Nada é gravado.
func (h *CalculationHandler) Calculations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var dto CalculationRequestDTO
	r.Body = http.MaxBytesReader(w, r.Body, utils.MaxBodyBytes)
	if err := utils.DecodeStrict(r.Body, &dto); err != nil {
		utils.BadRequest(w, utils.DecodeErrorMessage(err))
		return
	}
	if err := validateCalculationDTO(dto); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}
	cur, err := taxengine.ParseCurrency(dto.Currency)
	if err != nil {
		utils.BadRequest(w, err.Error())
		return
	}

	in := taxengine.CalculationInput{
		Version:          taxengine.InputVersion,
		ForeignAmount:    *dto.ForeignAmount,
		Currency:         cur,
		MonthlyProLabore: dto.ProLabore,
		ISSRate:          h.DefaultISSRate,
		ContributeINSS:   dto.ContributeINSS,
	}
	if dto.ISSRate != nil {
		in.ISSRate = *dto.ISSRate
	}

	source := "input"
	if dto.ExchangeRate != nil && *dto.ExchangeRate > 0 {
		in.ExchangeRate = *dto.ExchangeRate
	} else {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		q, err := h.Rates.Quote(ctx, cur)
		cancel()
		if err != nil {
			h.logger().Error("rate_lookup_failed", "currency", cur, "err", err)
			utils.WriteError(w, http.StatusBadGateway, "exchange rate unavailable for "+string(cur))
			return
		}
		in.ExchangeRate = q.Rate
		source = q.Source
	}

	if err := in.Validate(); err != nil {
		utils.BadRequest(w, strings.ReplaceAll(err.Error(), "\n", "; "))
		return
	}

	res := taxengine.Compute(in)
	resp := buildResponse(in, res, source)
	resp.ID = uuid.NewString()

	metrics.CalculationsTotal.WithLabelValues(string(cur), string(res.Comparison.Best)).Inc()
	h.logger().Info("calculation_done",
		"id", resp.ID, "currency", cur, "amount", in.ForeignAmount,
		"rate_source", source, "best", res.Comparison.Best,
	)

	h.publishEvent(resp.ID, in, res)
	utils.WriteJSON(w, http.StatusOK, resp)
}

func buildResponse(in taxengine.CalculationInput, res taxengine.CalculationResult, source string) CalculationResponseDTO {
	sn, lp, cmp := res.SimplesNacional, res.LucroPresumido, res.Comparison
	return CalculationResponseDTO{
		Currency:         string(in.Currency),
		ForeignAmount:    in.ForeignAmount,
		ExchangeRate:     in.ExchangeRate,
		RateSource:       source,
		ISSRate:          in.ISSRate,
		ContributeINSS:   in.ContributeINSS,
		GrossLocal:       res.GrossLocal,
		PlatformFee:      res.PlatformFee,
		ReceivedByEntity: res.ReceivedByEntity,
		SimplesNacional: SimplesDTO{
			EntityTax:     sn.EntityTax,
			IndividualTax: sn.IndividualTax,
			NetAmount:     sn.NetAmount,
			FatorR:        sn.FatorR,
			Anexo:         sn.BracketName,
			Rate:          sn.Rate,
			OutOfTable:    sn.OutOfTable,
		},
		LucroPresumido: PresumidoDTO{
			EntityTax:      lp.EntityTax,
			IndividualTax:  lp.IndividualTax,
			NetAmount:      lp.NetAmount,
			PresumedProfit: lp.PresumedProfit,
			IRPJ:           lp.IRPJ,
			CSLL:           lp.CSLL,
			ISS:            lp.ISS,
		},
		Comparison: ComparisonDTO{
			Best:                   string(cmp.Best),
			BestLabel:              format.RegimeLabel(cmp.Best),
			Difference:             cmp.Difference,
			SimplesEffectiveRate:   cmp.SimplesEffectiveRate,
			PresumidoEffectiveRate: cmp.PresumidoEffectiveRate,
		},
		Formatted: FormattedDTO{
			GrossLocal:       format.BRL(res.GrossLocal),
			PlatformFee:      format.BRL(res.PlatformFee),
			ReceivedByEntity: format.BRL(res.ReceivedByEntity),
			SimplesNet:       format.BRL(sn.NetAmount),
			PresumidoNet:     format.BRL(lp.NetAmount),
			Difference:       format.BRL(cmp.Difference),
		},
		Breakdown: format.Breakdown(in, res),
	}
}

// publishEvent é best-effort: falha no broker não derruba a resposta.
func (h *CalculationHandler) publishEvent(id string, in taxengine.CalculationInput, res taxengine.CalculationResult) {
	if h.Pub == nil {
		return
	}
	ev := &models.CalculationEvent{
		ID:               id,
		Currency:         string(in.Currency),
		ForeignAmount:    in.ForeignAmount,
		ExchangeRate:     in.ExchangeRate,
		ReceivedByEntity: format.RoundCents(res.ReceivedByEntity),
		SimplesNet:       format.RoundCents(res.SimplesNacional.NetAmount),
		PresumidoNet:     format.RoundCents(res.LucroPresumido.NetAmount),
		BestRegime:       string(res.Comparison.Best),
		Difference:       format.RoundCents(res.Comparison.Difference),
		Summary:          format.Summary(in, res),
		CreatedAt:        time.Now().UTC(),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.Pub.PublishEvent(ctx, ev); err != nil {
		h.logger().Warn("publish_failed", "id", id, "err", err)
	}
}

// parseCodeFromPath espera /api/exchange-rates/{code}.
func parseCodeFromPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 3 && parts[0] == "api" && parts[1] == "exchange-rates" && parts[2] != "" {
		return parts[2], true
	}
	return "", false
}

func writeRateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, taxengine.ErrUnsupportedCurrency):
		utils.BadRequest(w, err.Error())
	case errors.Is(err, rates.ErrRateNotFound):
		utils.WriteError(w, http.StatusNotFound, "not found")
	default:
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
