package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gasdata/gie/config"
	"github.com/gasdata/gie/gie"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *gie.Client

	appVersion = "dev"
	buildTime  = "unknown"

	// Command flags
	platformName string
	filterExpr   string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gie",
	Short: "Query the GIE transparency platforms",
	Long: `gie is a CLI for the Gas Infrastructure Europe transparency platforms
(AGSI gas storage and ALSI LNG storage). It queries storage data,
unavailability events, EIC identifier listings and news, and prints
the JSON responses.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records build metadata for the version command.
func SetVersion(version, built string) {
	appVersion = version
	buildTime = built
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&platformName, "platform", "P", "agsi", "platform to query (agsi, alsi, or a configured endpoint)")

	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and the client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Register configured endpoints beyond the built-in platforms
	var extra []gie.Endpoint
	for name, baseURL := range cfg.Endpoints {
		endpoint, err := gie.NewEndpoint(name, baseURL)
		if err != nil {
			return fmt.Errorf("invalid endpoint %q in config: %w", name, err)
		}
		extra = append(extra, endpoint)
	}

	client, err = gie.NewClient(cfg.GIE.APIKey,
		gie.WithTimeout(cfg.GIE.Timeout),
		gie.WithLogger(logger),
		gie.WithEndpoints(extra...),
	)
	if err != nil {
		return fmt.Errorf("failed to create GIE client: %w", err)
	}

	return nil
}

// selectedPlatform resolves the --platform flag against the client's
// recognized endpoint set.
func selectedPlatform() (gie.Endpoint, error) {
	endpoint, ok := client.LookupEndpoint(strings.ToLower(platformName))
	if !ok {
		return gie.Endpoint{}, fmt.Errorf("unknown platform %q", platformName)
	}
	return endpoint, nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
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

	// Console format; color only when stderr is a terminal
	color := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// Version needs no config or client
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gie %s (built %s)\n", appVersion, buildTime)
	},
}
