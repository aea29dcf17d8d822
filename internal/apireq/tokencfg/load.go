package tokencfg

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yooztech/mcp-api-request/internal/common/apperrors"
)

// LoadTokens reads and parses a config file into token entries. An empty or
// null document yields an empty list. Any other shape that is not a list of
// well-formed entries fails with ErrConfigParse; bad entries are never
// silently skipped, since that would mask credential-setup mistakes.
func LoadTokens(path string) ([]TokenEntry, apperrors.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrConfigParse.MsgErr("unable to read config file "+path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var entries []TokenEntry
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, ErrConfigParse.MsgErr("config file "+path+" must be a JSON list of {type, key, value} objects", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, ErrConfigParse.MsgErr("config file "+path+" must be a YAML list of {type, key, value} mappings", err)
		}
	}

	if err := validateEntries(entries); err != nil {
		return nil, ErrConfigParse.MsgErr("config file "+path+" has an invalid entry", err)
	}
	return entries, nil
}
