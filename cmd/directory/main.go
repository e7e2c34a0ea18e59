// Package main provides the entry point for the professional directory: the HTTP
// server and the terminal commands that run the same query pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const configEnvVar = "DIRECTORY_CONFIG"

var configPath string

var rootCmd = &cobra.Command{
	Use:               "directory",
	Short:             "Professional directory",
	Long:              "Browse a fixed directory of professionals by name, role and city, over HTTP or from the terminal.",
	PersistentPreRunE: loadEnvironment,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML or TOML config file (default $"+configEnvVar+")")
}

// loadEnvironment loads .env before any command reads its settings, so a config path
// set there is honoured. An explicit --config wins.
func loadEnvironment(_ *cobra.Command, _ []string) error {
	// Load .env file if it exists
	_ = godotenv.Load()

	if configPath == "" {
		configPath = os.Getenv(configEnvVar)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
