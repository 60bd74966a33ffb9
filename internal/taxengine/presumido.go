package taxengine

import "math"

// lucroPresumido calcula IRPJ, CSLL e ISS sobre a presunção de 32%.
// PIS/COFINS são isentos na exportação de serviços e ficam fora.
func (e Engine) lucroPresumido(received, proLabore, issRate float64) PresumidoResult {
	r := e.rules
	presumed := received * r.PresumptionRate

	irpj := presumed*r.IRPJRate + math.Max(0, (presumed-r.IRPJSurtaxLimit)*r.IRPJSurtaxRate)
	csll := presumed * r.CSLLRate
	iss := received * (issRate / 100)
	entityTax := irpj + csll + iss

	// sem pró-labore o sócio recebe só distribuição de lucros, isenta na PF
	var individualTax float64
	if proLabore > 0 {
		individualTax = e.PersonalTax(proLabore)
	}

	return PresumidoResult{
		EntityTax:      entityTax,
		IndividualTax:  individualTax,
		NetAmount:      received - entityTax - individualTax,
		PresumedProfit: presumed,
		IRPJ:           irpj,
		CSLL:           csll,
		ISS:            iss,
	}
}
