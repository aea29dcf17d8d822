package dispatch

import (
	"net/url"
	"strings"
	"time"

	"github.com/yooztech/mcp-api-request/internal/common/apperrors"
)

// DefaultTimeout bounds a request when the caller does not supply one.
const DefaultTimeout = 30 * time.Second

// RequestSpec describes one outgoing HTTP request. Headers and Params hold
// the effective values after merging stored tokens with caller input.
type RequestSpec struct {
	Method  string
	URL     string
	Headers map[string]string
	Params  map[string]string
	Body    any
	Timeout time.Duration
}

var supportedMethods = map[string]bool{
	"GET":     true,
	"HEAD":    true,
	"POST":    true,
	"PUT":     true,
	"PATCH":   true,
	"DELETE":  true,
	"OPTIONS": true,
}

// NormalizeMethod uppercases and validates the HTTP method.
func NormalizeMethod(method string) (string, apperrors.Error) {
	m := strings.ToUpper(strings.TrimSpace(method))
	if m == "" {
		return "", ErrInvalidArgument.Msg("method must not be empty: use GET, POST, PUT, PATCH, DELETE, HEAD or OPTIONS")
	}
	if !supportedMethods[m] {
		return "", ErrInvalidArgument.Msg("unsupported HTTP method " + method)
	}
	return m, nil
}

// ValidateURL checks that the target is a syntactically valid absolute
// http(s) URL.
func ValidateURL(rawURL string) apperrors.Error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ErrInvalidArgument.MsgErr("invalid url "+rawURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return ErrInvalidArgument.Msg("url must be absolute, including scheme and host: " + rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidArgument.Msg("url scheme must be http or https: " + rawURL)
	}
	return nil
}
