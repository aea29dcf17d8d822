package dispatch

import (
	"net/http"

	"github.com/yooztech/mcp-api-request/internal/common/apperrors"
)

var (
	// ErrInvalidArgument is returned when the request description is malformed.
	// Occurs for empty or unknown HTTP methods and non-absolute URLs.
	ErrInvalidArgument apperrors.Error = apperrors.New("invalid argument").SetStatusCode(http.StatusBadRequest)

	// ErrRequestFailed is returned when the HTTP call itself fails — connection
	// errors, DNS failures, timeouts. The underlying cause is always attached.
	// HTTP error statuses (4xx/5xx) are real responses and never produce this.
	ErrRequestFailed apperrors.Error = apperrors.New("request failed").SetStatusCode(http.StatusBadGateway)
)
