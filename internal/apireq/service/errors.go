package service

import (
	"net/http"

	"github.com/yooztech/mcp-api-request/internal/common/apperrors"
)

var (
	// ErrInvalidRequest is returned when tool-call arguments are malformed.
	// Occurs when arguments are not an object or cannot be decoded.
	ErrInvalidRequest apperrors.Error = apperrors.New("invalid request").SetStatusCode(http.StatusBadRequest)
)
