// Package main is the entry point for the codex server and tooling
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "codex-api",
	Short: "Forge Codex derivation server",
	Long:  `codex-api derives resource costs and display bundles for Forge powers, techniques, and armaments.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&redisAddress, "redis-address", "localhost:6379", "Redis endpoint")
	rootCmd.PersistentFlags().StringVar(&rulesFile, "rules-file", "", "rules YAML file; built-in rarity tiers when empty")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(codexCmd)
}
