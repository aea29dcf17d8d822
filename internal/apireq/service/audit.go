package service

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/sjson"
)

// redactJSON renders a merged header/param map as JSON for logging, masking
// values that came from the stored token config. Caller-supplied values are
// the caller's own business and are logged as-is.
func redactJSON(merged, fromConfig map[string]string) []byte {
	data, err := jsoniter.Marshal(merged)
	if err != nil {
		return []byte("{}")
	}
	for key, stored := range fromConfig {
		if merged[key] != stored {
			continue
		}
		if masked, serr := sjson.SetBytes(data, escapePath(key), "***"); serr == nil {
			data = masked
		}
	}
	return data
}

// escapePath escapes sjson path syntax so header names like "X.Custom" are
// treated as literal keys.
func escapePath(key string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`, "|", `\|`, "#", `\#`, "@", `\@`)
	return r.Replace(key)
}
