package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grimoire-css/grimoire/internal/grimoire/build"
	"github.com/grimoire-css/grimoire/internal/grimoire/diag"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the full compile pipeline",
	Long: `Enumerate every configured project's input files, resolve their
spells into CSS, write per-project (and shared/critical) output, and
update the file tracker (spec.md §4.9).`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := loadRootConfig(cmd)
	if err != nil {
		return reportAndFail(cmd, err)
	}

	results, err := build.New(cfg).Build()
	if err != nil {
		return reportAndFail(cmd, err)
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	if !quiet {
		total := 0
		for _, r := range results {
			total += len(r.Files)
		}
		fmt.Printf("Built %d project(s), %d output file(s).\n", len(results), total)
	}
	return nil
}

// reportAndFail renders any *diag.Diagnostic/*diag.BatchError found in err's
// chain through the diagnostics reporter, then exits the process with
// spec.md §6's documented failure code (1) rather than letting cobra print
// a bare Go error string.
func reportAndFail(cmd *cobra.Command, err error) error {
	color, _ := cmd.Flags().GetBool("color")
	var useColors *bool
	if cmd.Flags().Changed("color") {
		useColors = &color
	}
	reporter := diag.NewReporter(os.Stderr, useColors)

	var batch *diag.BatchError
	var single *diag.Diagnostic
	switch {
	case errors.As(err, &batch):
		reporter.Print(batch.Diagnostics)
	case errors.As(err, &single):
		reporter.Print([]*diag.Diagnostic{single})
	default:
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
	return nil
}
