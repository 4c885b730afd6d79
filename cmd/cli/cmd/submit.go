package cmd

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"premium-quote/adapters/webhook"
	"premium-quote/core/lead"
	"premium-quote/internal/logging"
)

func (a *app) submitCmd() *cobra.Command {
	var (
		contact  lead.Contact
		vehicle  lead.Vehicle
		contract string
		dryRun   bool
		flags    requestFlags
	)

	cmd := &cobra.Command{
		Use:   "submit [request.json|-]",
		Short: "Price a request and send it as a lead",
		Long: `Price a request, attach the contact details and POST the lead to the
configured webhook (webhook.endpoint). A failed submission is reported and
can be retried by running the command again.

Example:
  premium-quote submit request.json --first-name Ada --last-name Peeters \
    --email ada@example.com --brand Citroen --model "DS 21"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readRequest(argOrEmpty(args), cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, req); err != nil {
				return err
			}

			calc, err := a.calculator()
			if err != nil {
				return err
			}
			tr := a.translator()

			l := lead.New(*req, contact, calc.Calculate(req), a.now())
			l.Vehicle = vehicle
			l.ContractType = lead.ContractType(contract)
			l.Language = string(tr.Lang())

			w := cmd.OutOrStdout()
			if err := l.Validate(); err != nil {
				for _, p := range lead.Problems(err) {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", p.Field, tr.T(p.Message))
				}
				return err
			}

			if dryRun {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(l)
			}

			delivery, err := webhook.New(webhook.FromAppConfig(a.cfg.Webhook)).Send(cmd.Context(), l)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), tr.T("summary.submitError"))
				return err
			}

			logging.Debug("lead delivered")
			fmt.Fprintln(w, tr.T("summary.successTitle"))
			fmt.Fprintln(w, tr.Format("summary.successMessage", map[string]string{"email": l.Email}))
			fmt.Fprintf(w, "lead %s (%d)\n", delivery.LeadID, delivery.StatusCode)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&contact.FirstName, "first-name", "", "contact first name")
	fs.StringVar(&contact.LastName, "last-name", "", "contact last name")
	fs.StringVar(&contact.Email, "email", "", "contact email")
	fs.StringVar(&contact.Phone, "phone", "", "contact phone (optional)")
	fs.StringVar(&vehicle.Brand, "brand", "", "vehicle brand")
	fs.StringVar(&vehicle.Model, "model", "", "vehicle model")
	fs.StringVar(&vehicle.ChassisNumber, "chassis", "", "chassis number")
	fs.StringVar(&vehicle.RegistrationNumber, "plate", "", "registration number")
	fs.StringVar(&contract, "contract", string(lead.ContractNew), "contract type (new, change)")
	fs.BoolVar(&dryRun, "dry-run", false, "print the lead payload instead of sending it")
	flags.register(cmd)
	return cmd
}
