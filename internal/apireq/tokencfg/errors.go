package tokencfg

import (
	"net/http"

	"github.com/yooztech/mcp-api-request/internal/common/apperrors"
)

var (
	// ErrInvalidArgument is returned when a caller-supplied value is malformed.
	// Occurs for unknown formats, bad project roots, or ill-formed token entries.
	ErrInvalidArgument apperrors.Error = apperrors.New("invalid argument").SetStatusCode(http.StatusBadRequest)

	// ErrAlreadyExists is returned when a config file exists and overwrite is not set.
	// The existing file is left untouched; callers can pass overwrite=true to replace it.
	ErrAlreadyExists apperrors.Error = apperrors.New("config file already exists").SetStatusCode(http.StatusConflict)

	// ErrConfigParse is returned when an on-disk config file cannot be parsed into
	// token entries. Malformed content is surfaced verbatim, never auto-repaired.
	ErrConfigParse apperrors.Error = apperrors.New("unable to parse config file").SetStatusCode(http.StatusUnprocessableEntity)
)
