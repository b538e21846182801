package cli

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/matzehuels/anchorage/pkg/errors"
)

// scenarioGlob matches scenario files below a directory argument.
const scenarioGlob = "**/*.toml"

// expandScenarioPaths turns command arguments into scenario files.
//
// Plain paths are kept as given so that a missing file is reported by the
// loader. Directories expand to every .toml file below them, and arguments
// with glob characters are matched with ** support:
//
//	examples            -> examples/adaptive_card.toml, examples/nested/grid.toml
//	"scenarios/**/*.toml"
//
// Duplicates are dropped; the first occurrence wins.
func expandScenarioPaths(args []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, arg := range args {
		pattern := arg
		if !containsGlob(arg) {
			info, err := os.Stat(arg)
			if err != nil || !info.IsDir() {
				add(arg)
				continue
			}
			pattern = filepath.Join(arg, scenarioGlob)
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "bad pattern %q", arg)
		}
		if len(matches) == 0 {
			return nil, errors.New(errors.ErrCodeFileNotFound, "no scenarios match %s", arg)
		}
		slices.Sort(matches)
		for _, m := range matches {
			add(m)
		}
	}
	return out, nil
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
