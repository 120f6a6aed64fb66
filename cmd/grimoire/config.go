package main

import (
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/grimoire-css/grimoire/internal/grimoire/config"
)

// loadRootConfig loads the config named by the (persistent) --config flag
// and layers CLI flags over it the way the teacher CLI's loadConfig does
// with posflag.Provider — scoped here to the one scalar spec.md §6 exposes
// this way (lock), since grimoire's config is a nested document of
// scrolls/projects/shared/critical lists rather than the teacher's
// flat, flag-shaped generate.*/lint.* tree.
func loadRootConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("lock") {
		cfg.Lock = k.Bool("lock")
	}

	return cfg, nil
}
