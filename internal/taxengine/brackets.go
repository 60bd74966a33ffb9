package taxengine

import "math"

// Bracket é uma faixa progressiva: alíquota (fração) e parcela a deduzir.
type Bracket struct {
	Min       float64
	Max       float64 // math.Inf(1) para faixa aberta
	Rate      float64
	Deduction float64
}

// Table é uma lista ordenada de faixas contíguas.
type Table []Bracket

// Find devolve a faixa que contém v.
//
// As faixas são declaradas com limites de centavo (ex.: 180000 / 180000.01).
// Vale a última faixa com Min <= v, então valores entre centavos caem na faixa
// inferior e a tabela cobre [Min da primeira linha, Max da última] sem buracos.
func (t Table) Find(v float64) (Bracket, bool) {
	if len(t) == 0 || math.IsNaN(v) || v < t[0].Min || v > t[len(t)-1].Max {
		return Bracket{}, false
	}
	for i, b := range t {
		if i+1 == len(t) || v < t[i+1].Min {
			return b, true
		}
	}
	return Bracket{}, false
}

// Apply calcula v*Rate - Deduction, nunca negativo.
func (b Bracket) Apply(v float64) float64 {
	return math.Max(0, v*b.Rate-b.Deduction)
}
