package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/config"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "invest-dashboard",
		Short:         "Server-rendered dashboard for the CryptoInvest platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newConfigCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadValidConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the validated configuration with secrets masked",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadValidConfig()
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(masked(*cfg))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func loadValidConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// masked hides credentials before the configuration is printed
func masked(cfg config.Config) config.Config {
	const hidden = "********"
	if cfg.Session.Secret != "" {
		cfg.Session.Secret = hidden
	}
	if cfg.Database.Password != "" {
		cfg.Database.Password = hidden
	}
	if cfg.Redis.Password != "" {
		cfg.Redis.Password = hidden
	}
	return cfg
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate platform API configuration
	if cfg.API.BaseURL == "" {
		missingConfigs = append(missingConfigs, "api.baseURL (or DASH_API_BASE_URL environment variable)")
	}

	// Validate session configuration
	if cfg.Session.Secret == "" {
		missingConfigs = append(missingConfigs, "session.secret (or DASH_SESSION_SECRET environment variable)")
	}

	switch cfg.Session.Store {
	case "memory":
	case "postgres":
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host (or DASH_DB_HOST environment variable)")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username (or DASH_DB_USERNAME environment variable)")
		}
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (or DASH_DB_NAME environment variable)")
		}
	case "redis":
		if cfg.Redis.Addr == "" {
			missingConfigs = append(missingConfigs, "redis.addr (or DASH_REDIS_ADDR environment variable)")
		}
	default:
		return fmt.Errorf("invalid session.store value: %s, must be one of: memory, postgres, or redis", cfg.Session.Store)
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// Form limits must parse as decimals
	for key, value := range map[string]string{
		"limits.minWithdrawal":        cfg.Limits.MinWithdrawal,
		"limits.minTransfer":          cfg.Limits.MinTransfer,
		"limits.withdrawalFeePercent": cfg.Limits.WithdrawalFeePercent,
	} {
		if _, err := decimal.NewFromString(value); err != nil {
			return fmt.Errorf("invalid %s value %q: %w", key, value, err)
		}
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		if len(cfg.Session.Secret) < 32 {
			warnings = append(warnings, "session.secret should be at least 32 characters in production")
		}

		if !cfg.Session.CookieSecure {
			warnings = append(warnings, "session.cookieSecure should be enabled in production")
		}

		if cfg.Session.Store == "postgres" {
			mode := strings.ToLower(cfg.Database.SSLMode)
			if mode != "require" && mode != "verify-ca" && mode != "verify-full" {
				warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
			}
		}

		if cfg.Session.Store == "memory" {
			warnings = append(warnings, "session.store memory loses every session on restart")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
