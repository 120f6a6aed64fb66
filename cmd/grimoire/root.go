package main

import (
	"github.com/spf13/cobra"

	"github.com/grimoire-css/grimoire/internal/grimoire/config"
)

var rootCmd = &cobra.Command{
	Use:   "grimoire",
	Short: "Compile Grimoire CSS spells into stylesheets",
	Long: `Grimoire compiles a declarative spell/scroll DSL embedded in your
markup into optimized, deduplicated CSS.

Running grimoire with no subcommand is equivalent to "grimoire build".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", config.CanonicalConfigPath, "Path to grimoire.config.json")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress non-error output")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().Bool("lock", false, "Track outputs across runs and remove stale artifacts")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(shortenCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}
