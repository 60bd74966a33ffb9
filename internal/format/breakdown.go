package format

import (
	"fmt"

	"github.com/Werneck0live/calculadora-pj/internal/taxengine"
)

// RegimeLabel devolve o nome de exibição do regime.
func RegimeLabel(r taxengine.Regime) string {
	switch r {
	case taxengine.RegimeSimplesNacional:
		return "Simples Nacional"
	case taxengine.RegimeLucroPresumido:
		return "Lucro Presumido"
	default:
		return string(r)
	}
}

// Summary é a linha curta usada em eventos e logs.
func Summary(in taxengine.CalculationInput, res taxengine.CalculationResult) string {
	return fmt.Sprintf("%s -> %s: melhor opção %s (%s a mais por mês)",
		Foreign(in.ForeignAmount, in.Currency),
		BRL(res.ReceivedByEntity),
		RegimeLabel(res.Comparison.Best),
		BRL(res.Comparison.Difference),
	)
}

// Breakdown descreve o cálculo passo a passo.
func Breakdown(in taxengine.CalculationInput, res taxengine.CalculationResult) []string {
	sn, lp := res.SimplesNacional, res.LucroPresumido

	lines := []string{
		"Conversão de moeda",
		fmt.Sprintf("  %s × %s = %s", Foreign(in.ForeignAmount, in.Currency), Rate(in.ExchangeRate), BRL(res.GrossLocal)),
		"  IOF: isento para exportação de serviços",
		fmt.Sprintf("  Taxa da plataforma: %s", BRL(res.PlatformFee)),
		fmt.Sprintf("  Valor recebido pela PJ: %s", BRL(res.ReceivedByEntity)),
		"",
		"Simples Nacional",
		fmt.Sprintf("  Fator R: (%s × 12) ÷ (%s × 12) × 100 = %s",
			BRL(in.MonthlyProLabore), BRL(res.ReceivedByEntity), Percent(sn.FatorR, 1)),
		fmt.Sprintf("  %s, alíquota %s", sn.BracketName, Percent(sn.Rate, 2)),
	}
	if sn.OutOfTable {
		lines = append(lines, "  Atenção: receita anual fora da tabela do Anexo V, alíquota mínima aplicada")
	}
	lines = append(lines,
		fmt.Sprintf("  Impostos PJ (Simples): %s", BRL(sn.EntityTax)),
		fmt.Sprintf("  Impostos PF (INSS + IRPF): %s", BRL(sn.IndividualTax)),
		fmt.Sprintf("  Valor líquido final: %s", BRL(sn.NetAmount)),
		"",
		"Lucro Presumido",
		"  PIS e COFINS: 0% (exportação)",
		fmt.Sprintf("  IRPJ: %s", BRL(lp.IRPJ)),
		fmt.Sprintf("  CSLL: %s", BRL(lp.CSLL)),
		fmt.Sprintf("  ISS (%s): %s", Percent(in.ISSRate, 1), BRL(lp.ISS)),
		fmt.Sprintf("  Total impostos PJ: %s", BRL(lp.EntityTax)),
		fmt.Sprintf("  Impostos PF: %s", BRL(lp.IndividualTax)),
		fmt.Sprintf("  Valor líquido final: %s", BRL(lp.NetAmount)),
		"",
		fmt.Sprintf("Melhor opção: %s (%s a mais por mês)",
			RegimeLabel(res.Comparison.Best), BRL(res.Comparison.Difference)),
		fmt.Sprintf("Alíquota efetiva: Simples %s, Presumido %s",
			Percent(res.Comparison.SimplesEffectiveRate, 1), Percent(res.Comparison.PresumidoEffectiveRate, 1)),
	)
	return lines
}
