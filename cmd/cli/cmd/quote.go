package cmd

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"premium-quote/core/explanation"
	"premium-quote/core/output"
	"premium-quote/core/quote"
	"premium-quote/core/tariff"
	qerrors "premium-quote/internal/errors"
)

func (a *app) quoteCmd() *cobra.Command {
	var (
		format  string
		details bool
		flags   requestFlags
	)

	cmd := &cobra.Command{
		Use:   "quote [request.json|-]",
		Short: "Price a quote request",
		Long: `Price a quote request read from a JSON file, from stdin ("-"), or built
from flags. Flags override the matching fields of the file.

Examples:
  premium-quote quote --vehicle car --registered 1984-06-01 --status individual
  premium-quote quote request.json --format json
  cat request.json | premium-quote quote - --omnium --value 30000`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readRequest(argOrEmpty(args), cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, req); err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.Format
			}
			if !cmd.Flags().Changed("details") {
				details = a.cfg.Output.ShowDetails
			}

			calc, err := a.calculator()
			if err != nil {
				return err
			}
			res := calc.Calculate(req)
			return a.render(cmd.OutOrStdout(), format, details, req, res, calc.Rules())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "cli", "output format (cli, json, markdown)")
	cmd.Flags().BoolVarP(&details, "details", "d", false, "show the calculation details")
	flags.register(cmd)
	return cmd
}

func (a *app) render(w io.Writer, format string, details bool, req *quote.Request, res quote.Result, rules *tariff.Rules) error {
	tr := a.translator()
	registry := output.DefaultRegistry(tr, details)
	formatter, ok := registry.Get(output.Format(format))
	if !ok {
		return qerrors.Newf(qerrors.TypeInput, "unsupported format %q (want one of %v)", format, registry.Formats())
	}

	out := &output.QuoteOutput{
		Request: req,
		Result:  res,
		Metadata: output.QuoteMetadata{
			Timestamp:     a.now().Format(time.RFC3339),
			TariffVersion: rules.Version,
			Currency:      a.currency(rules),
			Language:      string(tr.Lang()),
			Version:       version,
		},
	}
	if details {
		expl := explanation.BuildExplanationResponse(req, res)
		out.Explanation = &expl
	}
	return formatter.Render(w, out)
}
