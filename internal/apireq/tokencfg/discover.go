package tokencfg

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvProjectRoot overrides the project root used for config discovery when no
// explicit root is passed to a tool call.
const EnvProjectRoot = "MCP_API_REQUEST_PROJECT_ROOT"

// maxSearchDepth bounds the upward walk from the working directory.
const maxSearchDepth = 5

// configCandidates lists recognized config filenames in precedence order.
var configCandidates = []string{
	".mcp_api_request.yml",
	".mcp_api_request.yaml",
	".mcp_api_request.json",
}

// ResolveProjectRoot resolves the directory used as the anchor for the config
// file. An explicit non-blank root wins, then the environment override, then
// the current working directory. A leading "~" expands to the user home.
func ResolveProjectRoot(root string) (string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		root = strings.TrimSpace(os.Getenv(EnvProjectRoot))
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Abs(cwd)
	}
	if root == "~" || strings.HasPrefix(root, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		root = filepath.Join(home, strings.TrimPrefix(root, "~"))
	}
	return filepath.Abs(root)
}

// findInDir returns the path of the first recognized config file in dir, or
// the empty string when none exists.
func findInDir(dir string) string {
	for _, name := range configCandidates {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p
		}
	}
	return ""
}

// FindConfig locates the config file that governs a request. The explicit root
// is checked first, then the environment override, then an upward walk from
// the current working directory. It returns the config path (empty when none
// was found — not an error) and the list of directories searched.
func FindConfig(projectRoot string) (string, []string) {
	var searched []string
	seen := map[string]bool{}

	check := func(dir string) string {
		if dir == "" || seen[dir] {
			return ""
		}
		seen[dir] = true
		searched = append(searched, dir)
		return findInDir(dir)
	}

	if root := strings.TrimSpace(projectRoot); root != "" {
		if abs, err := ResolveProjectRoot(root); err == nil {
			if p := check(abs); p != "" {
				return p, searched
			}
		}
	}

	if envRoot := strings.TrimSpace(os.Getenv(EnvProjectRoot)); envRoot != "" {
		if abs, err := filepath.Abs(envRoot); err == nil {
			if p := check(abs); p != "" {
				return p, searched
			}
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", searched
	}
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", searched
	}
	for i := 0; i < maxSearchDepth; i++ {
		if p := check(dir); p != "" {
			return p, searched
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", searched
}
