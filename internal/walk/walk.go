// Package walk discovers source files under CLI-supplied roots.
package walk

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions is the set of file extensions treated as source by
// default (spec.md §1 out-of-scope "directory walking and extension
// filtering", concretized in SPEC_FULL.md §13).
var DefaultExtensions = []string{".clj", ".cljs", ".cljc", ".edn", ".bb"}

// Files walks roots (files or directories) and returns the matching file
// paths in sorted order, so CLI output and exit status are deterministic
// across runs. A root that is itself a regular file is included
// unconditionally, regardless of its extension.
func Files(roots []string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[ext] = struct{}{}
	}

	var out []string
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if path == root {
				out = append(out, path)
				return nil
			}
			if _, ok := set[filepath.Ext(path)]; ok {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(out)
	return out, nil
}
