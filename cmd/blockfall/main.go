// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play           - Play in the local terminal
//	blockfall serve          - Start SSH server for remote play
//	blockfall sim            - Run a headless game and print the final board
//	blockfall config         - Print the default configuration
//	blockfall version        - Print the version
//
// Global flags:
//
//	--config <path>  - Custom YAML config (speed curve and rules)
//	--seed <value>   - Set RNG seed for reproducible piece sequences
//	--debug          - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle in your terminal",
	Long: `Blockfall drops pieces into a 9x17 well. Fill a row to clear it;
the game restarts when a new piece has no room to spawn.

Available commands:
  play     - Play in the local terminal
  serve    - Start SSH server for remote play
  sim      - Run a headless game and print the final board
  config   - Print the default configuration
  version  - Print the version

Examples:
  blockfall play
  blockfall play --seed 42
  blockfall serve --ssh :2222
  blockfall sim --ticks 500 --script LLUDRR`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config piece_seed, then time based)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
