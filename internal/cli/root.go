package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s41205/hangarctl/internal/api"
	"github.com/s41205/hangarctl/internal/config"
	"github.com/s41205/hangarctl/internal/identity"
	"github.com/s41205/hangarctl/internal/logging"
)

// Exit codes
const (
	ExitOK            = 0
	ExitUsageError    = 2
	ExitAuthError     = 3
	ExitAPIError      = 4
	ExitInternalError = 10
)

// GlobalOptions holds options shared across all commands
type GlobalOptions struct {
	APIURL   string
	Token    string
	LogLevel string
	LogFile  string
}

var globalOpts = &GlobalOptions{}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hangarctl",
	Short: "Terminal client for the Hangar deployment platform",
	Long: `hangarctl is a terminal client for the Hangar deployment platform.

It opens a live dashboard for a deployed workload (run state, metrics,
logs, participants, environment and database linkage) and offers one-shot
commands for scripting the same operations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalOpts.APIURL, "api", "", "API endpoint (or set HANGAR_API_URL)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.Token, "token", "", "Access token (or set HANGAR_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.LogLevel, "log-level", "", "Log level (error|warn|info|debug)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.LogFile, "log-file", "", "Log file path")

	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newLogsCmd())
	rootCmd.AddCommand(newStartCmd())
	rootCmd.AddCommand(newStopCmd())
	rootCmd.AddCommand(newRestartCmd())
	rootCmd.AddCommand(newDeleteCmd())
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if apiErr := api.AsError(err); apiErr != nil && apiErr.Code == "UNAUTHORIZED" {
			os.Exit(ExitAuthError)
		}
		os.Exit(ExitAPIError)
	}
}

// loadConfig merges file and environment configuration with flag overrides.
// Precedence: flags > environment > global config file > defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if globalOpts.APIURL != "" {
		cfg.APIURL = globalOpts.APIURL
	}
	if globalOpts.Token != "" {
		cfg.Token = globalOpts.Token
	}
	if globalOpts.LogLevel != "" {
		cfg.LogLevel = globalOpts.LogLevel
	}
	if globalOpts.LogFile != "" {
		cfg.LogFile = globalOpts.LogFile
	}
	return cfg, nil
}

// newClient builds an API client from the effective configuration.
func newClient() (*api.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Token == "" {
		return nil, nil, fmt.Errorf("no access token configured (use --token or set HANGAR_TOKEN)")
	}
	client, err := api.New(cfg.APIURL, cfg.Token)
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}

// currentUser derives the caller identity from the configured token.
func currentUser(cfg *config.Config) identity.User {
	user, err := identity.FromToken(cfg.Token)
	if err != nil {
		// An undecodable token still works against the API; the dashboard
		// just cannot claim ownership locally and shows the read-only view.
		return identity.User{}
	}
	return user
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logging.New(cfg.LogFile, cfg.LogLevel)
}

// parseWorkloadID parses the positional workload id argument.
func parseWorkloadID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid workload id %q", arg)
	}
	return id, nil
}
