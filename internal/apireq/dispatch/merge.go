// Package dispatch merges stored credential tokens into a caller-described
// HTTP request, performs the call, and normalizes the response into an
// envelope. The merge step is pure so it can be tested without network I/O.
package dispatch

import "github.com/yooztech/mcp-api-request/internal/apireq/tokencfg"

// Partition splits token entries into header and query-param maps. Entries
// with an empty value are inert and are dropped here, never reaching a
// request.
func Partition(entries []tokencfg.TokenEntry) (headers, params map[string]string) {
	headers = map[string]string{}
	params = map[string]string{}
	for _, e := range entries {
		if e.Value == "" {
			continue
		}
		switch e.Type {
		case tokencfg.KindHeader:
			headers[e.Key] = e.Value
		case tokencfg.KindParam:
			params[e.Key] = e.Value
		}
	}
	return headers, params
}

// Merge overlays caller-supplied values on top of config-derived defaults.
// The caller wins on key collision; stored tokens must never override the
// caller's explicit intent. Neither input map is mutated.
func Merge(base, override map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}
