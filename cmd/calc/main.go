// Command calc roda um cálculo offline e imprime o passo a passo.
//
//	calc -amount 1000 -currency USD -pro-labore 3000
//	calc -amount 2500 -currency EUR -rate 5.9 -iss 5 -json
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Werneck0live/calculadora-pj/internal/config"
	"github.com/Werneck0live/calculadora-pj/internal/format"
	"github.com/Werneck0live/calculadora-pj/internal/rates"
	"github.com/Werneck0live/calculadora-pj/internal/taxengine"
)

func main() {
	_ = config.InitLogger(slog.LevelWarn)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(out)
	amount := fs.Float64("amount", 0, "valor faturado na moeda estrangeira")
	code := fs.String("currency", "USD", "moeda: USD, EUR, GBP, CAD, AUD")
	rate := fs.Float64("rate", 0, "câmbio BRL por unidade (0 = tabela de referência)")
	proLabore := fs.Float64("pro-labore", 0, "pró-labore mensal em BRL")
	iss := fs.Float64("iss", 2, "alíquota de ISS em %")
	asJSON := fs.Bool("json", false, "imprime o resultado em JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cur, err := taxengine.ParseCurrency(*code)
	if err != nil {
		return err
	}
	if *rate == 0 {
		// sem Mongo nem Redis: o serviço cai direto na tabela de referência
		v, err := rates.NewService(nil, nil, nil, slog.Default()).Rate(context.Background(), cur)
		if err != nil {
			return err
		}
		*rate = v
	}

	in := taxengine.CalculationInput{
		Version:          taxengine.InputVersion,
		ForeignAmount:    *amount,
		Currency:         cur,
		ExchangeRate:     *rate,
		MonthlyProLabore: *proLabore,
		ISSRate:          *iss,
	}
	if err := in.Validate(); err != nil {
		return err
	}
	res := taxengine.Compute(in)

	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Input  taxengine.CalculationInput  `json:"input"`
			Result taxengine.CalculationResult `json:"result"`
		}{in, res})
	}

	_, err = fmt.Fprintln(out, strings.Join(format.Breakdown(in, res), "\n"))
	return err
}
