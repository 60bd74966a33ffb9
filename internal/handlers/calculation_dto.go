package handlers

import "github.com/Werneck0live/calculadora-pj/internal/rates"

// Campos opcionais são ponteiros para distinguir "ausente" de zero.
type CalculationRequestDTO struct {
	ForeignAmount  *float64 `json:"foreign_amount"`
	Currency       string   `json:"currency"`
	ExchangeRate   *float64 `json:"exchange_rate,omitempty"`
	ProLabore      float64  `json:"pro_labore"`
	ISSRate        *float64 `json:"iss_rate,omitempty"`
	ContributeINSS bool     `json:"contribute_inss"`
}

type SimplesDTO struct {
	EntityTax     float64 `json:"entity_tax"`
	IndividualTax float64 `json:"individual_tax"`
	NetAmount     float64 `json:"net_amount"`
	FatorR        float64 `json:"fator_r"`
	Anexo         string  `json:"anexo"`
	Rate          float64 `json:"rate"`
	OutOfTable    bool    `json:"out_of_table,omitempty"`
}

type PresumidoDTO struct {
	EntityTax      float64 `json:"entity_tax"`
	IndividualTax  float64 `json:"individual_tax"`
	NetAmount      float64 `json:"net_amount"`
	PresumedProfit float64 `json:"presumed_profit"`
	IRPJ           float64 `json:"irpj"`
	CSLL           float64 `json:"csll"`
	ISS            float64 `json:"iss"`
}

type ComparisonDTO struct {
	Best                   string  `json:"best"`
	BestLabel              string  `json:"best_label"`
	Difference             float64 `json:"difference"`
	SimplesEffectiveRate   float64 `json:"simples_effective_rate"`
	PresumidoEffectiveRate float64 `json:"presumido_effective_rate"`
}

// FormattedDTO traz os valores já prontos para exibição (pt-BR).
type FormattedDTO struct {
	GrossLocal       string `json:"gross_local"`
	PlatformFee      string `json:"platform_fee"`
	ReceivedByEntity string `json:"received_by_entity"`
	SimplesNet       string `json:"simples_net"`
	PresumidoNet     string `json:"presumido_net"`
	Difference       string `json:"difference"`
}

type CalculationResponseDTO struct {
	ID               string        `json:"id"`
	Currency         string        `json:"currency"`
	ForeignAmount    float64       `json:"foreign_amount"`
	ExchangeRate     float64       `json:"exchange_rate"`
	RateSource       string        `json:"rate_source"` // input | cache | mongo | static
	ISSRate          float64       `json:"iss_rate"`
	ContributeINSS   bool          `json:"contribute_inss"` // aceito e devolvido; o INSS do pró-labore é sempre aplicado
	GrossLocal       float64       `json:"gross_local"`
	PlatformFee      float64       `json:"platform_fee"`
	ReceivedByEntity float64       `json:"received_by_entity"`
	SimplesNacional  SimplesDTO    `json:"simples_nacional"`
	LucroPresumido   PresumidoDTO  `json:"lucro_presumido"`
	Comparison       ComparisonDTO `json:"comparison"`
	Formatted        FormattedDTO  `json:"formatted"`
	Breakdown        []string      `json:"breakdown"`
}

type RateUpdateDTO struct {
	Rate *float64 `json:"rate"`
}

type RateListDTO struct {
	Rates []rates.Quote `json:"rates"`
}
