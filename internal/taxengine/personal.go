package taxengine

import "math"

// PersonalTax é o desconto da pessoa física sobre um rendimento mensal:
// INSS limitado ao teto mais IRPF progressivo sobre o que sobra.
func (e Engine) PersonalTax(monthlyIncome float64) float64 {
	inss, irpf := e.PersonalTaxBreakdown(monthlyIncome)
	return inss + irpf
}

// PersonalTaxBreakdown devolve INSS e IRPF separadamente.
func (e Engine) PersonalTaxBreakdown(monthlyIncome float64) (inss, irpf float64) {
	if monthlyIncome <= 0 {
		return 0, 0
	}
	r := e.rules
	inss = math.Min(monthlyIncome, r.INSSCeiling) * r.INSSRate

	base := monthlyIncome - inss
	if b, ok := r.IRPF.Find(base); ok && b.Rate > 0 {
		irpf = b.Apply(base)
	}
	return inss, irpf
}
