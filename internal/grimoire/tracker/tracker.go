// Package tracker implements the file tracker (spec.md §4.10): when
// lock=true, persist the set of output paths produced by a run so the
// next run can delete files that are no longer produced.
//
// Grounded on original_source's file_tracker.rs, with one deliberate
// deviation: the lock artifact is written via write-then-rename instead
// of a plain write, so a crash between computing the new path set and
// finishing the write can never leave a truncated lock file on disk.
package tracker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/grimoire-css/grimoire/internal/grimoire/diag"
)

// LockFileName is the well-known lock artifact path, relative to cwd
// (spec.md §4.10's "e.g. grimoire/grimoire.lock.json").
const LockFileName = "grimoire/grimoire.lock.json"

type lockDoc struct {
	Paths []string `json:"paths"`
}

// Track persists builtFiles (relative to cwd) as the new lock state,
// deleting any file present in the previous lock but absent from the new
// one. A previously-tracked file that's already missing on disk logs a
// non-fatal warning rather than failing the run, matching the original's
// eprintln! behavior.
func Track(cwd string, builtFiles []string) error {
	lockPath := filepath.Join(cwd, LockFileName)

	current := make(map[string]bool, len(builtFiles))
	for _, f := range builtFiles {
		current[f] = true
	}

	if data, err := os.ReadFile(lockPath); err == nil {
		var prev lockDoc
		if jerr := json.Unmarshal(data, &prev); jerr != nil {
			return diag.New(diag.KindIO, "corrupt lock file %s: %v", lockPath, jerr).WithSource(lockPath)
		}
		for _, p := range prev.Paths {
			if current[p] {
				continue
			}
			full := filepath.Join(cwd, p)
			if _, statErr := os.Stat(full); statErr != nil {
				fmt.Fprintf(os.Stderr, "warning: file %s does not exist and cannot be deleted\n", p)
				continue
			}
			if err := os.Remove(full); err != nil {
				return diag.New(diag.KindIO, "failed to remove stale file %s: %v", full, err)
			}
		}
	} else if !os.IsNotExist(err) {
		return diag.New(diag.KindIO, "failed to read lock file %s: %v", lockPath, err).WithSource(lockPath)
	}

	paths := make([]string, 0, len(current))
	for p := range current {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	return writeLockAtomic(lockPath, lockDoc{Paths: paths})
}

func writeLockAtomic(lockPath string, doc lockDoc) error {
	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return diag.New(diag.KindIO, "failed to create lock directory: %v", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return diag.New(diag.KindIO, "failed to encode lock file: %v", err)
	}

	tmp := lockPath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return diag.New(diag.KindIO, "failed to write lock file: %v", err)
	}
	if err := os.Rename(tmp, lockPath); err != nil {
		return diag.New(diag.KindIO, "failed to finalize lock file: %v", err)
	}
	return nil
}
