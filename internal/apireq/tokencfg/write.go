package tokencfg

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yooztech/mcp-api-request/internal/common/apperrors"
)

// WriteConfig writes a credential config file under the resolved project root
// and returns its absolute path. A nil token list writes the built-in
// template. The file is written to a temp path and renamed into place so an
// abrupt failure never leaves a partially written config behind.
func WriteConfig(projectRoot, format string, tokens []TokenEntry, overwrite bool) (string, apperrors.Error) {
	name, err := fileNameForFormat(format)
	if err != nil {
		return "", err
	}

	root, rerr := ResolveProjectRoot(projectRoot)
	if rerr != nil {
		return "", ErrInvalidArgument.MsgErr("unable to resolve project root", rerr)
	}
	path := filepath.Join(root, name)

	if _, serr := os.Stat(path); serr == nil && !overwrite {
		return "", ErrAlreadyExists.Msg("config file already exists at " + path + "; pass overwrite=true to replace it")
	}

	if tokens == nil {
		tokens = DefaultTemplate()
	} else if verr := validateEntries(tokens); verr != nil {
		return "", ErrInvalidArgument.MsgErr("invalid token entry", verr)
	}

	data, merr := marshalEntries(name, tokens)
	if merr != nil {
		return "", ErrInvalidArgument.MsgErr("unable to encode token entries", merr)
	}

	if mkerr := os.MkdirAll(root, 0o755); mkerr != nil {
		return "", ErrInvalidArgument.MsgErr("unable to create project root "+root, mkerr)
	}
	if werr := writeFileAtomic(path, data); werr != nil {
		return "", ErrInvalidArgument.MsgErr("unable to write config file "+path, werr)
	}
	return path, nil
}

func fileNameForFormat(format string) (string, apperrors.Error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "yaml", "yml":
		return configCandidates[0], nil
	case "json":
		return ".mcp_api_request.json", nil
	default:
		return "", ErrInvalidArgument.Msg("unsupported config format " + format + ": must be yaml or json")
	}
}

func marshalEntries(name string, tokens []TokenEntry) ([]byte, error) {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return json.MarshalIndent(tokens, "", "  ")
	}
	return yaml.Marshal(tokens)
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over the destination. Rename within one directory is atomic on
// POSIX filesystems.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
