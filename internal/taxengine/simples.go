package taxengine

import "math"

// FatorR é a razão folha/receita anual em %. Receita zero (ou negativa) dá 0.
func FatorR(annualProLabore, annualRevenue float64) float64 {
	if annualRevenue > 0 {
		return annualProLabore / annualRevenue * 100
	}
	return 0
}

func (e Engine) simplesNacional(received, proLabore float64) SimplesResult {
	annualRevenue := received * 12
	annualProLabore := proLabore * 12

	fatorR := FatorR(annualProLabore, annualRevenue)
	res := e.simplesEntityTax(received, annualRevenue, fatorR)
	res.FatorR = fatorR
	res.IndividualTax = e.PersonalTax(proLabore)
	res.NetAmount = received - res.EntityTax - res.IndividualTax
	return res
}

// simplesEntityTax escolhe o anexo pelo Fator R e calcula o DAS mensal.
func (e Engine) simplesEntityTax(received, annualRevenue, fatorR float64) SimplesResult {
	if fatorR >= e.rules.FatorRThreshold {
		return SimplesResult{
			BracketName: AnexoIII,
			Rate:        e.rules.AnexoIIIRate * 100,
			EntityTax:   received * e.rules.AnexoIIIRate,
		}
	}

	b, ok := e.rules.AnexoV.Find(annualRevenue)
	if !ok {
		fb := e.rules.AnexoVFallback
		return SimplesResult{
			BracketName: AnexoV,
			Rate:        fb.Rate * 100,
			EntityTax:   (annualRevenue*fb.Rate - fb.Deduction) / 12,
			OutOfTable:  true,
		}
	}
	return SimplesResult{
		BracketName: AnexoV,
		Rate:        b.Rate * 100,
		EntityTax:   math.Max(0, (annualRevenue*b.Rate-b.Deduction)/12),
	}
}
