package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Werneck0live/calculadora-pj/internal/taxengine"
)

func TestRoundCents(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{5223.75, 5223.75},
		{505.659, 505.66},
		{4718.091, 4718.09},
		{0.005, 0.01},
		{-0.005, -0.01},
		{809.68125, 809.68},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RoundCents(tc.in), "in=%v", tc.in)
	}
}

func TestBRL(t *testing.T) {
	assert.Equal(t, "R$ 5.250,00", BRL(5250))
	assert.Equal(t, "R$ 26,25", BRL(26.25))
	assert.Equal(t, "R$ 1.234.567,89", BRL(1234567.891))
	assert.Equal(t, "R$ 0,00", BRL(0))
	assert.Equal(t, "-R$ 15,50", BRL(-15.5))
}

func TestForeignAndPercent(t *testing.T) {
	assert.Equal(t, "$ 1,000.00", Foreign(1000, taxengine.USD))
	assert.Equal(t, "€ 12.50", Foreign(12.5, taxengine.EUR))
	assert.Equal(t, "57,4%", Percent(57.4300, 1))
	assert.Equal(t, "6,00%", Percent(6, 2))
}

func TestBreakdown_ScenarioB(t *testing.T) {
	in := taxengine.CalculationInput{
		ForeignAmount:    1000,
		Currency:         taxengine.USD,
		ExchangeRate:     5.25,
		MonthlyProLabore: 3000,
		ISSRate:          2,
	}
	res := taxengine.Compute(in)
	text := strings.Join(Breakdown(in, res), "\n")

	for _, want := range []string{
		"R$ 5.250,00",
		"Taxa da plataforma: R$ 26,25",
		"Valor recebido pela PJ: R$ 5.223,75",
		"Anexo III",
		"Impostos PF (INSS + IRPF): R$ 360,81",
		"Melhor opção: Simples Nacional",
	} {
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, "fora da tabela")
}

func TestSummary(t *testing.T) {
	in := taxengine.CalculationInput{ForeignAmount: 1000, Currency: taxengine.USD, ExchangeRate: 5.25, ISSRate: 2}
	s := Summary(in, taxengine.Compute(in))
	assert.Contains(t, s, "Lucro Presumido")
	assert.Contains(t, s, "R$ 304,02")
}
