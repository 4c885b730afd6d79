package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"premium-quote/adapters/tariffhcl"
	"premium-quote/core/report"
	"premium-quote/core/tariff"
	qerrors "premium-quote/internal/errors"
)

func (a *app) tariffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tariff",
		Short: "Inspect, check and export tariffs",
	}
	cmd.AddCommand(a.tariffShowCmd(), a.tariffCheckCmd(), a.tariffExportCmd())
	return cmd
}

func (a *app) tariffShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the rule table of the active tariff",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules, err := a.rules()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# Tariff %s (%s)\n\n", rules.Version, a.currency(rules))
			return report.RenderRules(cmd.OutOrStdout(), rules)
		},
	}
}

func (a *app) tariffCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [tariff.hcl]",
		Short: "Validate a tariff file (default: the active tariff)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				rules *tariff.Rules
				err   error
			)
			if len(args) == 1 {
				rules, err = tariffhcl.LoadFile(args[0])
			} else {
				rules, err = a.rules()
				if err == nil {
					err = rules.Validate()
				}
			}
			if err != nil {
				printViolations(cmd, err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tariff %s OK (%d categories, %d vehicle types)\n",
				rules.Version, len(rules.Categories), len(rules.VehicleCategories))
			return nil
		},
	}
}

func (a *app) tariffExportCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active tariff as HCL",
		Long: `Write the active tariff as an HCL file that can be edited and loaded
back with --tariff or tariff.path.

Example:
  premium-quote tariff export -o tariff-2027.hcl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules, err := a.rules()
			if err != nil {
				return err
			}
			src := tariffhcl.Encode(rules)
			if outFile == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(outFile, src, 0o644); err != nil {
				return qerrors.Input("failed to write tariff", err).WithContext("file", outFile)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tariff %s written to %s\n", rules.Version, outFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")
	return cmd
}

func printViolations(cmd *cobra.Command, err error) {
	qe, ok := err.(*qerrors.Error)
	if !ok {
		return
	}
	errs, _ := qe.Context["errors"].([]error)
	for _, e := range errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "  - %v\n", e)
	}
}
