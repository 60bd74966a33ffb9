package taxengine

import "math"

// Rules reúne todos os parâmetros legais usados no cálculo.
// Valores atualizados anualmente ficam aqui, não espalhados no código.
type Rules struct {
	Year int

	PlatformFeeRate float64 // comissão da plataforma de recebimento

	// Simples Nacional
	FatorRThreshold float64 // em %, >= usa Anexo III
	AnexoIIIRate    float64
	AnexoV          Table   // faixas anuais
	AnexoVFallback  Bracket // usado quando a receita anual sai da tabela

	// Lucro Presumido (serviços)
	PresumptionRate float64
	IRPJRate        float64
	IRPJSurtaxRate  float64
	IRPJSurtaxLimit float64 // mensal
	CSLLRate        float64

	// Pessoa física
	INSSCeiling float64
	INSSRate    float64
	IRPF        Table // faixas mensais
}

// Rules2024 são as tabelas vigentes em 2024.
var Rules2024 = Rules{
	Year: 2024,
	PlatformFeeRate: 0.005,

	FatorRThreshold: 28,
	AnexoIIIRate:    0.06,
	AnexoV: Table{
		{Min: 0, Max: 180000, Rate: 0.155, Deduction: 0},
		{Min: 180000.01, Max: 360000, Rate: 0.18, Deduction: 4500},
		{Min: 360000.01, Max: 720000, Rate: 0.195, Deduction: 9900},
		{Min: 720000.01, Max: 1800000, Rate: 0.205, Deduction: 17100},
		{Min: 1800000.01, Max: 3600000, Rate: 0.23, Deduction: 62100},
		{Min: 3600000.01, Max: 4800000, Rate: 0.305, Deduction: 540000},
	},
	AnexoVFallback: Bracket{Rate: 0.155, Deduction: 0},

	PresumptionRate: 0.32,
	IRPJRate:        0.15,
	IRPJSurtaxRate:  0.10,
	IRPJSurtaxLimit: 20000,
	CSLLRate:        0.09,

	INSSCeiling: 7786.02,
	INSSRate:    0.11,
	IRPF: Table{
		{Min: 0, Max: 2259.20, Rate: 0, Deduction: 0},
		{Min: 2259.21, Max: 2826.65, Rate: 0.075, Deduction: 169.44},
		{Min: 2826.66, Max: 3751.05, Rate: 0.15, Deduction: 381.44},
		{Min: 3751.06, Max: 4664.68, Rate: 0.225, Deduction: 662.77},
		{Min: 4664.69, Max: math.Inf(1), Rate: 0.275, Deduction: 896.00},
	},
}
