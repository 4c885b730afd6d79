// Package cmd provides the CLI commands for premium-quote.
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"premium-quote/adapters/tariffhcl"
	"premium-quote/core/premium"
	"premium-quote/core/tariff"
	"premium-quote/internal/config"
	"premium-quote/internal/i18n"
	"premium-quote/internal/logging"
)

// version is set at build time with -ldflags "-X premium-quote/cmd/cli/cmd.version=..."
var version = "0.1.0"

// app carries the state shared by every subcommand
type app struct {
	cfgFile    string
	tariffFile string
	lang       string
	verbose    bool

	cfg *config.Config
	now func() time.Time
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	return newRootCommand(time.Now)
}

func newRootCommand(now func() time.Time) *cobra.Command {
	a := &app{now: now, cfg: config.Default()}

	root := &cobra.Command{
		Use:   "premium-quote",
		Short: "Price classic-vehicle insurance quotes",
		Long: `premium-quote prices insurance quotes for classic vehicles against a
versioned tariff, explains every line of the premium and submits leads
to the sales webhook.

Examples:
  premium-quote quote --vehicle car --registered 1972-04-01
  premium-quote quote request.json --format markdown --details
  premium-quote compare before.json after.json
  premium-quote submit request.json --first-name Ada --last-name Peeters --email ada@example.com
  premium-quote tariff show`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.config/premium-quote/config.yaml)")
	root.PersistentFlags().StringVar(&a.tariffFile, "tariff", "", "HCL tariff file (overrides tariff.path)")
	root.PersistentFlags().StringVarP(&a.lang, "lang", "l", "", "label language: fr, en, nl or an Accept-Language value")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(a.quoteCmd())
	root.AddCommand(a.compareCmd())
	root.AddCommand(a.submitCmd())
	root.AddCommand(a.tariffCmd())
	root.AddCommand(a.reportCmd())
	root.AddCommand(versionCmd())
	return root
}

// Execute runs the CLI
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the CLI with a cancellable context
func ExecuteContext(ctx context.Context) error {
	defer logging.Sync()
	return NewRootCommand().ExecuteContext(ctx)
}

func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if a.lang != "" {
		cfg.Output.Language = a.lang
	}
	if a.tariffFile != "" {
		cfg.Tariff.Path = a.tariffFile
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	a.cfg = cfg
	logging.Debug("configuration loaded", zap.Stringer("config", cfg))
	return nil
}

// rules returns the configured tariff, or the built-in grid
func (a *app) rules() (*tariff.Rules, error) {
	if a.cfg.Tariff.Path == "" {
		return tariff.Default2026(), nil
	}
	return tariffhcl.LoadFile(a.cfg.Tariff.Path)
}

func (a *app) calculator() (*premium.Calculator, error) {
	rules, err := a.rules()
	if err != nil {
		return nil, err
	}
	return premium.New(rules, premium.WithClock(a.now)), nil
}

func (a *app) translator() *i18n.Translator {
	return i18n.New(a.cfg.Output.Language)
}

func (a *app) currency(rules *tariff.Rules) string {
	if rules.Currency != "" {
		return rules.Currency
	}
	return a.cfg.Tariff.Currency
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "premium-quote version %s (built-in tariff %s)\n", version, tariff.DefaultVersion)
		},
	}
}
