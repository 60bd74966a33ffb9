// Package format produz os textos em pt-BR exibidos ao usuário.
// Arredondamento só acontece aqui; o motor de cálculo trabalha sem arredondar.
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Werneck0live/calculadora-pj/internal/taxengine"
)

var (
	ptBR = message.NewPrinter(language.BrazilianPortuguese)
	enUS = message.NewPrinter(language.AmericanEnglish)
)

// RoundCents arredonda para 2 casas, meio para longe do zero.
func RoundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// BRL formata como "R$ 5.250,00".
func BRL(v float64) string {
	return money(ptBR, "R$", v)
}

// Foreign formata o valor na moeda da fatura, ex.: "$ 1,000.00".
func Foreign(v float64, cur taxengine.Currency) string {
	return money(enUS, cur.Symbol(), v)
}

// Percent formata com vírgula decimal, ex.: "57,4%".
func Percent(v float64, decimals int) string {
	d := decimal.NewFromFloat(v).Round(int32(decimals)).InexactFloat64()
	return ptBR.Sprintf(fmt.Sprintf("%%.%df", decimals), d) + "%"
}

// Rate formata a cotação com 4 casas, como exibida no formulário.
func Rate(v float64) string {
	return ptBR.Sprintf("%.4f", v)
}

func money(p *message.Printer, symbol string, v float64) string {
	r := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}
	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(symbol)
	b.WriteByte(' ')
	b.WriteString(p.Sprintf("%.2f", r.InexactFloat64()))
	return b.String()
}
