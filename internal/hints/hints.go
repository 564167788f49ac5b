// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"runtime"
	"slices"
	"strings"

	"github.com/alnah/go-blogmark/internal/config"
	"github.com/alnah/go-blogmark/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// goos is swapped in tests.
var goos = runtime.GOOS

// ForWatch returns hints for file watcher failures.
func ForWatch() string {
	var tips []string
	if goos == "linux" {
		tips = append(tips, "raise fs.inotify.max_user_watches if the limit is reached")
	}
	if IsInContainer() {
		tips = append(tips, "bind-mounted files may not emit events inside containers")
	}
	return hint(tips...)
}

// ForTimeout suggests a longer per-file timeout.
func ForTimeout() string {
	return hint("for long posts, raise the limit with --timeout")
}

// ForConfigNotFound suggests --config, or creating the first per-user
// path among searched.
func ForConfigNotFound(searched []string) string {
	tip := "use --config /path/to/file.yaml"
	if i := slices.IndexFunc(searched, func(p string) bool {
		return strings.Contains(strings.ReplaceAll(p, `\`, "/"), config.AppName+"/")
	}); i >= 0 {
		tip += " or create " + searched[i]
	}
	return hint(tip)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return hint("check parent directory exists and is writable")
}

// ForStyleNotFound lists the styles that do exist.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return hint("available: " + strings.Join(available, ", "))
}

// ForPostNotFound lists the slugs the site file defines.
func ForPostNotFound(slugs []string) string {
	if len(slugs) == 0 {
		return hint("the site file defines no posts")
	}
	return hint("known slugs: " + strings.Join(slugs, ", "))
}

// ForSiteFile describes the expected site file shape.
func ForSiteFile() string {
	return hint("the site file needs a top-level blog mapping and a slug for every post")
}

// hint renders tips as one "\n  hint: a; b" suffix, or "" without tips.
func hint(tips ...string) string {
	tips = slices.DeleteFunc(tips, func(t string) bool { return t == "" })
	if len(tips) == 0 {
		return ""
	}
	return "\n  hint: " + strings.Join(tips, "; ")
}
