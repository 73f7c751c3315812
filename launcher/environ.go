package launcher

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// ResolveRoot returns the absolute directory containing the definition file.
func ResolveRoot(definitionFile string) (string, error) {
	path, err := filepath.Abs(definitionFile)
	if err != nil {
		return "", err
	}

	return filepath.Dir(path), nil
}

// BuildPathList appends the source directory of root to an existing path list.
// The existing value is kept verbatim as the prefix.
func BuildPathList(existing string, root string, sourceDir string) string {
	src := filepath.Join(root, sourceDir)

	if existing == "" {
		return src
	}

	return existing + string(os.PathListSeparator) + src
}

func lookupEnv(environ []string, name string) (string, bool) {
	// Last assignment wins, same as exec.Cmd.
	for i := len(environ) - 1; i >= 0; i-- {
		key, value, ok := strings.Cut(environ[i], "=")
		if ok && key == name {
			return value, true
		}
	}

	return "", false
}

func setEnv(environ []string, name string, value string) []string {
	environ = lo.Reject(environ, func(kv string, _ int) bool {
		key, _, _ := strings.Cut(kv, "=")

		return key == name
	})

	return append(environ, name+"="+value)
}
