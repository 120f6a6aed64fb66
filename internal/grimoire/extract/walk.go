package extract

import (
	"path/filepath"
	"sync"

	ignore "github.com/sabhiram/go-gitignore"
)

// gitignoreCache memoizes one *ignore.GitIgnore per project root, mirroring
// the teacher scanner.go's sync.Once-guarded gitIgnoreCache but keyed by
// root so multiple projects with different roots don't share a cache entry.
var (
	gitignoreMu    sync.Mutex
	gitignoreCache = map[string]*ignore.GitIgnore{}
)

func loadGitignore(root string) *ignore.GitIgnore {
	gitignoreMu.Lock()
	defer gitignoreMu.Unlock()

	if gi, ok := gitignoreCache[root]; ok {
		return gi
	}
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		gi = nil
	}
	gitignoreCache[root] = gi
	return gi
}

// FilterIgnored drops paths matched by root's .gitignore, the same
// graceful-degradation behavior as the teacher's shouldSkipFile: a missing
// .gitignore filters nothing rather than erroring (spec.md §4.8's
// project-wide file-walk mode, supplemented from original_source since
// spec.md itself is silent on ignore files).
func FilterIgnored(root string, paths []string) []string {
	gi := loadGitignore(root)
	if gi == nil {
		return paths
	}

	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil || filepath.IsAbs(rel) {
			out = append(out, p)
			continue
		}
		if gi.MatchesPath(rel) {
			continue
		}
		out = append(out, p)
	}
	return out
}
