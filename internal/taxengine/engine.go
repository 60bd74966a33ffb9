// Package taxengine calcula o líquido mensal de um PJ que fatura para o exterior
// nos regimes Simples Nacional e Lucro Presumido.
//
// Todas as funções são puras: nenhuma validação, arredondamento ou estado.
// Entradas negativas ou NaN são propagadas pela aritmética; quem chama decide
// se usa Validate antes.
package taxengine

import (
	"errors"
	"fmt"
	"math"
)

// InputVersion identifica o formato atual de CalculationInput.
const InputVersion = 1

var ErrInvalidInput = errors.New("invalid input")

// CalculationInput é montado uma vez por cálculo e não é alterado depois.
type CalculationInput struct {
	Version          int
	ForeignAmount    float64
	Currency         Currency
	ExchangeRate     float64 // BRL por unidade estrangeira
	MonthlyProLabore float64 // 0 = só distribuição de lucros
	ISSRate          float64 // em %
	// ContributeINSS é aceito mas não lido pelo cálculo: o INSS sobre o
	// pró-labore é sempre aplicado.
	ContributeINSS bool
}

// Validate aplica as regras de domínio que o motor não verifica.
func (in CalculationInput) Validate() error {
	var errs []error
	check := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be a finite number", name))
		}
	}
	check("foreign_amount", in.ForeignAmount)
	check("exchange_rate", in.ExchangeRate)
	check("pro_labore", in.MonthlyProLabore)
	check("iss_rate", in.ISSRate)

	if in.ForeignAmount < 0 {
		errs = append(errs, errors.New("foreign_amount must be >= 0"))
	}
	if in.ExchangeRate <= 0 {
		errs = append(errs, errors.New("exchange_rate must be > 0"))
	}
	if in.MonthlyProLabore < 0 {
		errs = append(errs, errors.New("pro_labore must be >= 0"))
	}
	if in.ISSRate < 0 || in.ISSRate > 100 {
		errs = append(errs, errors.New("iss_rate must be between 0 and 100"))
	}
	if !in.Currency.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, in.Currency))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(errs...))
}

// Regime identifica o regime tributário.
type Regime string

const (
	RegimeSimplesNacional Regime = "simples_nacional"
	RegimeLucroPresumido  Regime = "lucro_presumido"
)

const (
	AnexoIII = "Anexo III"
	AnexoV   = "Anexo V"
)

// SimplesResult é o resultado do Simples Nacional.
type SimplesResult struct {
	EntityTax     float64
	IndividualTax float64
	NetAmount     float64
	FatorR        float64 // em %
	BracketName   string  // AnexoIII ou AnexoV
	Rate          float64 // em %
	// OutOfTable indica que a receita anual ficou fora do Anexo V e a
	// alíquota de fallback foi usada.
	OutOfTable bool
}

// PresumidoResult é o resultado do Lucro Presumido.
type PresumidoResult struct {
	EntityTax      float64
	IndividualTax  float64
	NetAmount      float64
	PresumedProfit float64
	IRPJ           float64
	CSLL           float64
	ISS            float64
}

// Comparison resume qual regime deixa mais dinheiro para a pessoa física.
type Comparison struct {
	Best                   Regime
	Difference             float64
	SimplesEffectiveRate   float64 // (PJ + PF) / recebido, em %
	PresumidoEffectiveRate float64
}

type CalculationResult struct {
	GrossLocal       float64
	PlatformFee      float64
	ReceivedByEntity float64
	SimplesNacional  SimplesResult
	LucroPresumido   PresumidoResult
	Comparison       Comparison
}

// Engine aplica um conjunto de Rules. O valor zero não é utilizável; use New.
type Engine struct {
	rules Rules
}

func New(rules Rules) Engine {
	return Engine{rules: rules}
}

var defaultEngine = New(Rules2024)

// Compute calcula com as tabelas de 2024.
func Compute(in CalculationInput) CalculationResult {
	return defaultEngine.Compute(in)
}

// PersonalTax calcula INSS + IRPF com as tabelas de 2024.
func PersonalTax(monthlyIncome float64) float64 {
	return defaultEngine.PersonalTax(monthlyIncome)
}

// Compute executa conversão, taxa da plataforma e os dois regimes, nessa ordem.
func (e Engine) Compute(in CalculationInput) CalculationResult {
	gross, fee, received := e.convert(in.ForeignAmount, in.ExchangeRate)

	sn := e.simplesNacional(received, in.MonthlyProLabore)
	lp := e.lucroPresumido(received, in.MonthlyProLabore, in.ISSRate)

	return CalculationResult{
		GrossLocal:       gross,
		PlatformFee:      fee,
		ReceivedByEntity: received,
		SimplesNacional:  sn,
		LucroPresumido:   lp,
		Comparison:       compare(received, sn, lp),
	}
}

// convert aplica câmbio e a comissão da plataforma. IOF sobre exportação de
// serviços é zero e não é calculado.
func (e Engine) convert(amount, rate float64) (gross, fee, received float64) {
	gross = amount * rate
	fee = gross * e.rules.PlatformFeeRate
	received = gross - fee
	return gross, fee, received
}

func compare(received float64, sn SimplesResult, lp PresumidoResult) Comparison {
	c := Comparison{
		Best:       RegimeSimplesNacional,
		Difference: math.Abs(sn.NetAmount - lp.NetAmount),
	}
	if lp.NetAmount > sn.NetAmount {
		c.Best = RegimeLucroPresumido
	}
	if received > 0 {
		c.SimplesEffectiveRate = (sn.EntityTax + sn.IndividualTax) / received * 100
		c.PresumidoEffectiveRate = (lp.EntityTax + lp.IndividualTax) / received * 100
	}
	return c
}
