package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/trivia/config"
	"github.com/s0up4200/trivia/opentdb"
)

var (
	cfgFile      string
	outputFormat string
	cfg          *config.Config
	logger       zerolog.Logger
	client       opentdb.API

	// newClient is replaced in tests
	newClient = func(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (opentdb.API, error) {
		opts := []opentdb.Option{
			opentdb.WithBaseURL(cfg.OpenTDB.URL),
			opentdb.WithTimeout(cfg.OpenTDB.Timeout),
		}
		if cfg.OpenTDB.UserAgent != "" {
			opts = append(opts, opentdb.WithUserAgent(cfg.OpenTDB.UserAgent))
		}
		c, err := opentdb.NewClient(ctx, logger, opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "trivia",
	Short: "Fetch trivia questions from the Open Trivia Database",
	Long: `trivia is a CLI for the Open Trivia Database. It lists categories,
fetches batches of questions filtered by category, difficulty and type, and
reports question counts. Session tokens are managed automatically so
questions are not repeated.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: text, json or yaml")

	// Add subcommands
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(testCmd)
}

// initializeApp loads the configuration and sets up the logger
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	// Override output format from command line if specified
	if cmd.Flags().Changed("output") {
		if !config.ValidOutputFormat(outputFormat) {
			return fmt.Errorf("invalid output format: %s (must be text, json or yaml)", outputFormat)
		}
		cfg.Output.Format = outputFormat
	}

	return nil
}

// initializeClient connects to the Open Trivia DB; used as PreRunE by commands that need it
func initializeClient(cmd *cobra.Command, args []string) error {
	var err error
	client, err = newClient(cmd.Context(), cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to Open Trivia DB: %w", err)
	}
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; no colours when stderr is redirected
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// categoriesCmd represents the categories command
var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Short:   "List question categories",
	Long:    `List the question categories offered by the Open Trivia Database.`,
	PreRunE: initializeClient,
	RunE:    runCategories,
}

var showIDs bool

func init() {
	categoriesCmd.Flags().BoolVar(&showIDs, "ids", false, "also print category ids")
}

func runCategories(cmd *cobra.Command, args []string) error {
	return writeCategories(cmd.OutOrStdout(), cfg.Output.Format, categoryRows(client), showIDs)
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:     "test",
	Short:   "Test connection to the Open Trivia Database",
	Long:    `Test the connection to the Open Trivia Database and display basic information.`,
	PreRunE: initializeClient,
	RunE:    runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Testing connection to Open Trivia DB at %s...\n", cfg.OpenTDB.URL)

	// Connection is already tested during client creation
	fmt.Fprintln(out, "✓ Connection successful!")

	fmt.Fprintf(out, "\nOpen Trivia DB session:\n")
	fmt.Fprintf(out, "- Session token: %s\n", client.Token())
	fmt.Fprintf(out, "- Categories: %d\n", len(client.Categories()))
	fmt.Fprintf(out, "- Difficulties: %s\n", strings.Join(client.Difficulties(), ", "))
	fmt.Fprintf(out, "- Types: %s\n", strings.Join(client.Types(), ", "))

	return nil
}
