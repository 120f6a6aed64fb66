package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/grimoire-css/grimoire/internal/grimoire/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default grimoire.config.json",
	Long:  `Write a starter config at the canonical path (spec.md §6).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.DefaultConfigJSON), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		quiet, _ := cmd.Flags().GetBool("quiet")
		if !quiet {
			fmt.Printf("Created %s\n", path)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
