package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yourusername/ecoswap-market/config"
	"github.com/yourusername/ecoswap-market/internal/platform/logger"
)

var (
	// Global flags
	catalogPath string
	verbose     bool

	cfg *config.Config
	log *logger.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ecoswap",
	Short: "EcoSwap - community marketplace for swapping and lending items",
	Long: `EcoSwap lets neighbours list, reserve and exchange things they no longer need.

Run "ecoswap bot" to start the Telegram shopfront.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if catalogPath != "" {
			cfg.CatalogPath = catalogPath
		}

		mode := cfg.LogMode
		if verbose {
			mode = "development"
		}
		log, err = logger.New(mode)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog file (.xlsx or .yaml), overrides CATALOG_PATH")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(botCmd)
	rootCmd.AddCommand(catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
