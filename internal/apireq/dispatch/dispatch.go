package dispatch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"

	"github.com/yooztech/mcp-api-request/internal/common/apperrors"
)

// Do validates the request spec, performs the HTTP call and returns the
// normalized envelope. It never retries and never converts HTTP error
// statuses into tool errors; only transport-level failures produce
// ErrRequestFailed.
func Do(ctx context.Context, spec RequestSpec) (*ResponseEnvelope, apperrors.Error) {
	method, err := NormalizeMethod(spec.Method)
	if err != nil {
		return nil, err
	}
	if err := ValidateURL(spec.URL); err != nil {
		return nil, err
	}

	timeout := spec.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := resty.New().SetTimeout(timeout)
	req := client.R().SetContext(ctx)
	if len(spec.Headers) > 0 {
		req.SetHeaders(spec.Headers)
	}
	if len(spec.Params) > 0 {
		req.SetQueryParams(spec.Params)
	}

	body, bodyKind := prepareBody(spec.Body)
	if bodyKind != "" {
		req.SetBody(body)
	}

	resp, rerr := req.Execute(method, spec.URL)
	if rerr != nil {
		if isTimeout(rerr) {
			return nil, ErrRequestFailed.MsgErr(fmt.Sprintf("request timed out after %s", timeout), rerr)
		}
		return nil, ErrRequestFailed.MsgErr("unable to reach "+spec.URL, rerr)
	}
	return newEnvelope(spec, method, bodyKind, resp), nil
}

// prepareBody passes the caller's body through untransformed: structured
// values go out as JSON, strings that themselves hold a JSON object or array
// are sent as that JSON, any other string is sent raw. Returns the body to
// send and its kind ("" means no body).
func prepareBody(body any) (any, string) {
	switch b := body.(type) {
	case nil:
		return nil, ""
	case string:
		s := strings.TrimSpace(b)
		if s == "" || strings.EqualFold(s, "null") {
			return nil, ""
		}
		if (strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[")) && gjson.Valid(s) {
			var parsed any
			if err := jsoniter.UnmarshalFromString(s, &parsed); err == nil {
				return parsed, BodyJSON
			}
		}
		return s, "raw"
	case []byte:
		if len(b) == 0 {
			return nil, ""
		}
		return b, "raw"
	case map[string]any, []any:
		return b, BodyJSON
	default:
		return fmt.Sprintf("%v", b), "raw"
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}
