// Package root contains the root command for the application
package root

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/categorizer"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/config"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/logging"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/receiptparser"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/store"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/templates"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/validation"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "receipt-digitizer",
		Short: "Extract and validate structured records from OCR'd receipt text.",
		Long: `receipt-digitizer turns raw OCR text from retail receipts into structured
financial records (vendor, date, amounts, tax, category) and validates them
against consistency rules before they are stored.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to receipt-digitizer!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			receiptparser.SetLogger(Log)
			store.SetLogger(Log)
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&configOverride.LedgerPath, "ledger", "", "Path to the receipts ledger CSV (defaults to the configured data directory)")
}

// configOverride carries persistent flag values that take precedence over the
// loaded configuration.
var configOverride struct {
	LedgerPath string
}

// LoadConfig loads the hierarchical application configuration, falling back
// to defaults when no config file is present.
func LoadConfig() *config.Config {
	cfg, err := config.InitializeConfig()
	if err != nil {
		Log.WithError(err).Fatal("Invalid configuration")
	}
	return cfg
}

// NewParser wires the template registry and categorizer into a receipt parser
// according to the loaded configuration.
func NewParser(cfg *config.Config) *receiptparser.Parser {
	cfgStore := store.NewConfigStore("categories.yaml", "templates.yaml")

	registry := templates.Default()
	if tmplCfgs, err := cfgStore.LoadTemplates(); err != nil {
		Log.WithError(err).Warn("Ignoring unreadable templates file")
	} else if len(tmplCfgs) > 0 {
		extra, err := templates.CompileAll(tmplCfgs)
		if err != nil {
			Log.WithError(err).Fatal("Invalid template configuration")
		}
		registry = templates.DefaultWith(extra)
	}

	var aiClient categorizer.AIClient
	if cfg.AI.Enabled {
		aiClient = categorizer.NewGeminiClient(
			cfg.AI.APIKey,
			cfg.AI.Model,
			time.Duration(cfg.AI.TimeoutSeconds)*time.Second,
			logging.NewLogrusAdapterFromLogger(Log),
		)
	}

	cat := categorizer.NewCategorizer(cfgStore, aiClient, logging.NewLogrusAdapterFromLogger(Log))
	return receiptparser.New(registry, cat)
}

// NewLedger opens the receipts ledger at the configured (or overridden) path.
func NewLedger(cfg *config.Config) *store.Ledger {
	path := configOverride.LedgerPath
	if path == "" {
		path = cfg.Data.Directory + "/" + cfg.Data.LedgerFile
	}
	return store.NewLedger(path)
}

// NewEngine creates the validation engine with the configured tax band and
// the ledger as duplicate-check collaborator.
func NewEngine(cfg *config.Config, checker validation.ExistenceChecker) *validation.Engine {
	return validation.NewEngineWithBand(
		checker,
		cfg.Tax.ExpectedRate,
		cfg.Tax.Tolerance,
		logging.NewLogrusAdapterFromLogger(Log),
	)
}
