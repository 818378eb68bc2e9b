// Package cli implements the legaldoc command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/cache"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/parse"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "legaldoc",
	Short: "Legaldoc - structural analysis of legal documents",
	Long: `Legaldoc ingests a legal document and produces a structural overview:
detected clauses and sections, defined terms, obligations, an extractive
summary, and ranked key points.

The analysis is a deterministic pattern-and-heuristic engine. It surfaces
document structure fast; it does not interpret the law and is not legal
advice.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("legaldoc v0.2.1")
	},
}

// formatsCmd lists the ingestion formats
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported document formats",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("\nSupported file formats:")
		for _, f := range parse.SupportedFormats {
			fmt.Printf("  • %s\n", f)
		}
		fmt.Println()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.legaldoc/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(formatsCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(filepath.Join(home, ".legaldoc"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match LEGALDOC_*
	viper.SetEnvPrefix("LEGALDOC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// newStore builds the layered result cache, or nil when disabled.
func newStore(cfg *model.Config) cache.Cache {
	if !cfg.Cache.Enabled {
		return nil
	}
	dir := cfg.Cache.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cache.NewMemoryCache(cfg.Cache.MemoryTTL, cfg.Cache.MemoryTTL)
		}
		dir = filepath.Join(home, ".legaldoc", "cache")
	}
	return cache.NewLayeredCache(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
}
