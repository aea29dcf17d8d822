// Package tokencfg manages the per-project credential config file. A config
// file is an ordered list of token entries, each naming a header or query
// parameter to inject into outgoing API requests. The file lives at the
// project root and is re-read on every request.
package tokencfg

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TokenKind distinguishes where a token entry is injected.
type TokenKind string

const (
	KindHeader TokenKind = "header" // injected as a request header
	KindParam  TokenKind = "param"  // injected as a query parameter
)

// TokenEntry is one stored credential fragment. Entries with an empty Value
// are inert and are never injected into a request.
type TokenEntry struct {
	Type  TokenKind `json:"type" yaml:"type" validate:"required,oneof=header param"`
	Key   string    `json:"key" yaml:"key" validate:"required"`
	Value string    `json:"value" yaml:"value"`
}

var entryValidator = validator.New(validator.WithRequiredStructEnabled())

// normalize trims whitespace and lowercases the kind so hand-edited files with
// stray spacing or casing still validate.
func (t *TokenEntry) normalize() {
	t.Type = TokenKind(strings.ToLower(strings.TrimSpace(string(t.Type))))
	t.Key = strings.TrimSpace(t.Key)
	t.Value = strings.TrimSpace(t.Value)
}

func validateEntries(entries []TokenEntry) error {
	for i := range entries {
		entries[i].normalize()
		if err := entryValidator.Struct(&entries[i]); err != nil {
			return fmt.Errorf("entry %d: type must be header or param and key must be non-empty: %w", i, err)
		}
	}
	return nil
}

// DefaultTemplate returns the token entries written by init_config when the
// caller supplies none. Values are intentionally empty; the user fills them in
// by hand and empty entries are never sent.
func DefaultTemplate() []TokenEntry {
	return []TokenEntry{
		{Type: KindHeader, Key: "Authorization", Value: ""},
		{Type: KindParam, Key: "access_token", Value: ""},
	}
}
