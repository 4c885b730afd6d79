package cmd

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"premium-quote/core/explanation"
	qerrors "premium-quote/internal/errors"
)

func (a *app) compareCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "compare <before.json> <after.json>",
		Short: "Explain the premium difference between two requests",
		Long: `Price two requests with the same tariff and list the breakdown lines
that were added, removed or repriced.

Example:
  premium-quote compare rc-only.json with-omnium.json --format markdown`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			before, err := readRequest(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			after, err := readRequest(args[1], cmd.InOrStdin())
			if err != nil {
				return err
			}

			calc, err := a.calculator()
			if err != nil {
				return err
			}

			tr := a.translator()
			subject := tr.T("options.vehicleTypes." + string(after.VehicleType))
			diff := explanation.Compare(subject, calc.Calculate(before), calc.Calculate(after))
			for i := range diff.Changes {
				diff.Changes[i].Label = tr.Label(diff.Changes[i].Label)
			}
			diff.Build()

			w := cmd.OutOrStdout()
			switch format {
			case "text":
				_, err = fmt.Fprintln(w, diff.Narrative)
			case "markdown":
				_, err = fmt.Fprint(w, diff.ToMarkdown())
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				err = enc.Encode(diff)
			default:
				return qerrors.Newf(qerrors.TypeInput, "unsupported format %q (want text, markdown or json)", format)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, markdown, json)")
	return cmd
}
