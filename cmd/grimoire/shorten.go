package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/grimoire-css/grimoire/internal/grimoire/components"
	"github.com/grimoire-css/grimoire/internal/grimoire/extract"
	"github.com/grimoire-css/grimoire/internal/grimoire/spell"
)

var shortenCmd = &cobra.Command{
	Use:   "shorten",
	Short: "Rewrite verbose component names to their shortest alias",
	Long: `Scans every project's input files for spell and templated g!...;
occurrences and rewrites component names in place to the shortest known
alias (e.g. background-color -> bgc), leaving everything else untouched
(spec.md §4.3, §6).`,
	RunE: runShorten,
}

func runShorten(cmd *cobra.Command, _ []string) error {
	cfg, err := loadRootConfig(cmd)
	if err != nil {
		return reportAndFail(cmd, err)
	}
	dict := components.New()

	var totalReplaced, totalFiles int
	var bytesSaved int64
	seen := map[string]bool{}

	for _, proj := range cfg.Projects {
		files, err := doublestarGlobAll(cfg.Root, proj.InputPaths)
		if err != nil {
			return reportAndFail(cmd, err)
		}
		for _, path := range files {
			if seen[path] {
				continue
			}
			seen[path] = true

			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			content := string(data)
			newContent, n := shortenContent(path, content, dict)
			if n == 0 || newContent == content {
				continue
			}
			if err := os.WriteFile(path, []byte(newContent), 0644); err != nil {
				return reportAndFail(cmd, fmt.Errorf("writing %s: %w", path, err))
			}
			totalReplaced += n
			totalFiles++
			bytesSaved += int64(len(content)) - int64(len(newContent))
		}
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	if quiet {
		return nil
	}
	if totalFiles == 0 {
		fmt.Println("No shortenable spells found.")
		return nil
	}
	fmt.Printf("%d spell%s shortened in %d file%s, %s saved.\n",
		totalReplaced, plural(totalReplaced), totalFiles, plural(totalFiles), formatByteDelta(bytesSaved))
	return nil
}

// shortenContent rewrites every occurrence of every unique raw token
// Extract finds, in first-seen order, replacing the token's component name
// with its shortest alias. Grounded on original_source's shorten.rs: each
// unique raw spell text is replaced globally via one string.Replace call,
// so a spell repeated verbatim across the file is only computed once.
func shortenContent(path, content string, dict *components.Dictionary) (string, int) {
	tokens := extract.Extract(path, content)

	seenTokens := map[string]bool{}
	replaced := 0
	for _, tok := range tokens {
		if seenTokens[tok.Text] {
			continue
		}
		seenTokens[tok.Text] = true

		rewritten, ok := shortenToken(tok.Text, dict)
		if !ok || rewritten == tok.Text {
			continue
		}
		count := strings.Count(content, tok.Text)
		if count == 0 {
			continue
		}
		content = strings.ReplaceAll(content, tok.Text, rewritten)
		replaced += count
	}
	return content, replaced
}

// shortenToken rewrites one raw class token's component name(s) to their
// shortest alias. Templated g!<a>&<b>;  occurrences rewrite each '&'-joined
// part independently (spec.md §9's resolved Open Question: templated
// occurrences are shortened the same as plain class-attribute tokens).
func shortenToken(token string, dict *components.Dictionary) (string, bool) {
	if strings.HasPrefix(token, "g!") && strings.HasSuffix(token, ";") {
		inner := strings.TrimSuffix(strings.TrimPrefix(token, "g!"), ";")
		parts := strings.Split(inner, "&")
		changed := false
		for i, part := range parts {
			short, ok := shortenBare(part, dict)
			if ok {
				parts[i] = short
				changed = true
			}
		}
		if !changed {
			return token, false
		}
		return "g!" + strings.Join(parts, "&") + ";", true
	}
	return shortenBare(token, dict)
}

func shortenBare(token string, dict *components.Dictionary) (string, bool) {
	sp, err := spell.Parse(token)
	if err != nil || sp.Component == "" {
		return token, false
	}
	short := dict.Shortest(sp.Component)
	if short == sp.Component {
		return token, false
	}
	return strings.Replace(token, sp.Component, short, 1), true
}

func doublestarGlobAll(root string, patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, pat := range patterns {
		full := pat
		if !filepath.IsAbs(pat) {
			full = filepath.Join(root, pat)
		}
		matches, err := doublestar.FilepathGlob(full)
		if err != nil {
			return nil, fmt.Errorf("invalid input glob %q: %w", pat, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// formatByteDelta mirrors original_source's shorten.rs format_size: B below
// 1KB, then KB/MB/GB with two decimal places.
func formatByteDelta(bytes int64) string {
	abs := bytes
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs < 1024:
		return fmt.Sprintf("%d B", bytes)
	case abs < 1024*1024:
		return fmt.Sprintf("%.2f KB", float64(bytes)/1024)
	case abs < 1024*1024*1024:
		return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
	default:
		return fmt.Sprintf("%.2f GB", float64(bytes)/(1024*1024*1024))
	}
}
