package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/halcyorn/xivseek/config"
	"github.com/halcyorn/xivseek/xivapi"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *xivapi.Client

	appVersion   = "dev"
	appBuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "xivseek",
	Short: "Query FFXIV game content, characters and market boards via XIVAPI",
	Long: `xivseek is a CLI for XIVAPI that lets you search game content indexes,
look up characters, free companies, linkshells and PvP teams on the
Lodestone, and fetch market board listings across worlds.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build metadata injected by the linker.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
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
	rootCmd.PersistentFlags().String("api-key", "", "XIVAPI private key (overrides config)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override API key from command line if specified
	if cmd.Flags().Changed("api-key") {
		cfg.XIVAPI.APIKey, _ = cmd.Flags().GetString("api-key")
	}

	client = xivapi.NewClient(cfg.XIVAPI.APIKey, logger,
		xivapi.WithBaseURL(cfg.XIVAPI.BaseURL),
		xivapi.WithTimeout(cfg.XIVAPI.Timeout),
		xivapi.WithUserAgent(cfg.XIVAPI.UserAgent),
	)

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

	// Console format, colors only when stderr is a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// printJSON writes v to stdout as indented JSON
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// printSearchPage renders a result page header followed by the rows as JSON.
func printSearchPage(page *xivapi.SearchPage) error {
	p := page.Pagination
	fmt.Printf("Page %d/%d, %d total result", p.Page, p.PageTotal, p.ResultsTotal)
	if p.ResultsTotal != 1 {
		fmt.Printf("s")
	}
	fmt.Println()
	fmt.Println(strings.Repeat("━", 50))
	return printJSON(page.Results)
}
