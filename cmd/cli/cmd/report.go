package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"premium-quote/core/report"
	qerrors "premium-quote/internal/errors"
)

func (a *app) reportCmd() *cobra.Command {
	var (
		outFile string
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the tariff verification report (markdown)",
		Long: `Price the reference scenarios against the active tariff and write a
markdown report with the results and the full rule table.

With --strict the command fails when a scenario differs from its
expected premium.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			calc, err := a.calculator()
			if err != nil {
				return err
			}
			now := a.now()
			scenarios := report.DefaultScenarios(now)

			var w io.Writer = cmd.OutOrStdout()
			if outFile != "" {
				f, err := os.Create(outFile)
				if err != nil {
					return qerrors.Input("failed to create report", err).WithContext("file", outFile)
				}
				defer f.Close()
				w = f
			}
			if err := report.NewGenerator(calc, now).Render(w, scenarios); err != nil {
				return err
			}
			if outFile != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", outFile)
			}

			bad := report.Mismatches(report.Verify(calc, scenarios))
			if strict && len(bad) > 0 {
				return qerrors.Tariff("%d of %d scenarios differ from their expected premium", len(bad), len(scenarios))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a scenario does not match")
	return cmd
}
