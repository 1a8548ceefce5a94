package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rpupo63/portfolio-site/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `portfolio serves a personal portfolio site and the content API behind it.

Available commands:
  serve     Serve the portfolio pages
  api       Serve the content API (profile, projects, skills, experience, contact)
  version   Print the build version`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load environment variables from .env file
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: Error loading %s: %v\n", envFile, err)
		}
		setupLogging(config.New())
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "environment file to load before reading configuration")
}

// setupLogging configures the global zerolog logger from LOG_LEVEL and LOG_FORMAT
func setupLogging(c map[string]string) {
	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(c, config.KeyLogLevel, "info")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.GetString(c, config.KeyLogFormat, "console") == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
