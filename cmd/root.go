// Package cmd contains all CLI commands for maxfit
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/maxfit-project/maxfit/internal/api"
	"github.com/maxfit-project/maxfit/internal/config"
	"github.com/maxfit-project/maxfit/internal/gate"
	"github.com/maxfit-project/maxfit/internal/output"
	"github.com/maxfit-project/maxfit/internal/session"
)

var (
	cfgFile    string
	verbose    bool
	quiet      bool
	colorMode  string
	cfg        *config.Config
	logger     *slog.Logger
	client     *api.Client
	store      *session.Store
	routeTable *gate.Registry
	accessGate *gate.Gate
	version    = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "maxfit",
	Short: "MaxFit fitness platform CLI",
	Long: `maxfit is the terminal client for the MaxFit fitness platform.

Trainees follow assigned workouts, keep a training diary, track physical
progress, and join community challenges. Trainers manage their linked
trainees and assign workout plans. The signed-in session is persisted, so
you only log in once.

Example usage:
  maxfit login --email ana@example.com   # Sign in
  maxfit home                            # Role-aware dashboard
  maxfit workouts list                   # Assigned workout plans
  maxfit challenges list                 # Open community challenges
  maxfit routes                          # Show all screens and who can open them`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .maxfit.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "color output (auto, always, never)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("output.color_mode", rootCmd.PersistentFlags().Lookup("color"))
}

// initApp loads configuration and wires the session store to the API client.
// It runs before every command, so each invocation starts from the persisted
// session on disk.
func initApp() error {
	var err error

	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger = newLogger(cfg)

	storage, err := newSessionStorage(cfg)
	if err != nil {
		return err
	}

	client = api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger)
	store = session.NewStore(storage, client, logger)
	client.SetTokenSource(store)
	client.SetUnauthorizedHook(store.ForceLogout)
	store.Hydrate()

	routeTable = gate.NewRegistry()
	accessGate = gate.New(store)

	logger.Debug("configuration loaded",
		"base_url", cfg.API.BaseURL,
		"session_backend", cfg.Session.Backend,
		"authenticated", store.IsAuthenticated(),
	)

	return nil
}

// newLogger builds the slog logger from config, with --verbose forcing debug.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// newSessionStorage picks the credential storage backend from config.
func newSessionStorage(cfg *config.Config) (session.Storage, error) {
	switch cfg.Session.Backend {
	case "redis":
		return session.NewRedisStorage(redis.NewClient(&redis.Options{
			Addr:     cfg.Session.RedisAddr,
			Password: cfg.Session.RedisPassword,
			DB:       cfg.Session.RedisDB,
		})), nil
	case "memory":
		return session.NewMemoryStorage(), nil
	default:
		dir := cfg.Session.Dir
		if dir == "" {
			var err error
			dir, err = session.DefaultSessionDir()
			if err != nil {
				return nil, fmt.Errorf("resolving session directory: %w", err)
			}
		}
		return session.NewFileStorage(dir), nil
	}
}

// newPrinter creates a printer honoring --color, --quiet, and config colors.
func newPrinter() *output.Printer {
	mode, err := output.ParseColorMode(colorMode)
	if err != nil {
		mode = output.ColorAuto
	}
	return output.NewPrinterWithOptions(output.PrinterOptions{
		ColorMode:    mode,
		ConfigColors: cfg.Output.Colors,
		Quiet:        quiet,
	})
}

// guardRole consults the access gate and maps its decision to a CLI error.
// A zero role means any signed-in account.
func guardRole(required session.Role) error {
	switch accessGate.Check(required) {
	case gate.DecisionLoading:
		return &output.CLIError{
			Summary:  "session not ready",
			Detail:   "the stored session was not restored",
			ExitCode: output.ExitGeneral,
		}
	case gate.DecisionRedirectLogin:
		return &output.CLIError{
			Summary:    "not signed in",
			Suggestion: "Run 'maxfit login' to sign in",
			ExitCode:   output.ExitAuthError,
		}
	case gate.DecisionRedirectHome:
		return &output.CLIError{
			Summary:    fmt.Sprintf("this area is for %s accounts", roleLabel(required)),
			Suggestion: "Run 'maxfit home' to go to your own dashboard",
			ExitCode:   output.ExitAuthError,
		}
	}
	return nil
}

// guardRoute enforces the route table entry for the given path.
func guardRoute(path string) error {
	route, ok := routeTable.Get(path)
	if !ok {
		return fmt.Errorf("unknown route: %s", path)
	}
	if route.Public {
		return nil
	}
	return guardRole(route.RequiredRole)
}

// currentIdentity returns the signed-in identity or an auth error.
func currentIdentity() (session.Identity, error) {
	id, ok := store.Identity()
	if !ok {
		return session.Identity{}, &output.CLIError{
			Summary:    "not signed in",
			Suggestion: "Run 'maxfit login' to sign in",
			ExitCode:   output.ExitAuthError,
		}
	}
	return id, nil
}

func roleLabel(role session.Role) string {
	switch role {
	case session.RoleTrainee:
		return "trainee"
	case session.RoleTrainer:
		return "trainer"
	default:
		return "member"
	}
}

// writeJSON encodes v indented to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseID parses a numeric command argument.
func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, &output.CLIError{
			Summary:  fmt.Sprintf("invalid %s: %s", what, arg),
			Detail:   "expected a positive numeric id",
			ExitCode: output.ExitUsageError,
		}
	}
	return id, nil
}

// apiError turns a backend failure into a structured CLI error. When the
// failure was a 401 the unauthorized hook has already cleared the session.
func apiError(err error, action string) error {
	if errors.Is(err, api.ErrUnauthorized) {
		return &output.CLIError{
			Summary:    "session expired",
			Detail:     "the backend rejected the stored credentials",
			Suggestion: "Run 'maxfit login' to sign in again",
			ExitCode:   output.ExitAuthError,
		}
	}

	var backendErr *api.Error
	if errors.As(err, &backendErr) && backendErr.UserMessage() != "" {
		return &output.CLIError{
			Summary:  action + " failed",
			Detail:   backendErr.UserMessage(),
			ExitCode: output.ExitAPIError,
		}
	}

	return &output.CLIError{
		Summary:    action + " failed",
		Detail:     err.Error(),
		Suggestion: "Check your connection and the configured api.base_url",
		ExitCode:   output.ExitAPIError,
	}
}
