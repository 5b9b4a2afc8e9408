package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/EZ-Api/readability/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "readability",
	Short: "Readability metrics for text documents",
	Long: `readability computes standard readability metrics (Flesch Reading
Ease, Automated Readability Index, Gunning Fog Index, SMOG) and estimated
reading ages for text documents, and keeps a local history of scored files.

Usage:
  readability score report.txt     Score a document
  readability score -              Score text from stdin
  readability history              List previously scored documents`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.readability/config.yaml)")
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cfg, err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	return cfg, nil
}
