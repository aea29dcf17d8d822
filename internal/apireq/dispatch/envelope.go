package dispatch

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"github.com/h2non/filetype"
	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"
)

// Body encodings reported in the response envelope.
const (
	BodyJSON   = "json"
	BodyText   = "text"
	BodyBinary = "binary"
)

// RequestEcho reports the request as it was actually sent, after token
// merging, so callers can see which headers and params took effect.
type RequestEcho struct {
	Method   string            `json:"method"`
	URL      string            `json:"url"`
	Headers  map[string]string `json:"headers,omitempty"`
	Params   map[string]string `json:"params,omitempty"`
	BodyKind string            `json:"body_kind,omitempty"`
}

// ResponseEnvelope is the normalized result of one HTTP call. Error statuses
// are reported verbatim; surfacing the backend's real response, including
// failures, is the point of the tool.
type ResponseEnvelope struct {
	Request      RequestEcho       `json:"request"`
	StatusCode   int               `json:"status_code"`
	Status       string            `json:"status"`
	Headers      map[string]string `json:"headers"`
	ContentType  string            `json:"content_type,omitempty"`
	BodyEncoding string            `json:"body_encoding,omitempty"`
	JSON         any               `json:"json,omitempty"`
	Text         string            `json:"text,omitempty"`
	ElapsedMS    int64             `json:"elapsed_ms"`
	FinalURL     string            `json:"final_url"`
}

func newEnvelope(spec RequestSpec, method, bodyKind string, resp *resty.Response) *ResponseEnvelope {
	env := &ResponseEnvelope{
		Request: RequestEcho{
			Method:   method,
			URL:      spec.URL,
			Headers:  spec.Headers,
			Params:   spec.Params,
			BodyKind: bodyKind,
		},
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Headers:    flattenHeaders(resp),
		ElapsedMS:  resp.Time().Milliseconds(),
		FinalURL:   finalURL(spec.URL, resp),
	}
	env.ContentType = resp.Header().Get("Content-Type")
	env.decodeBody(resp.Body())
	return env
}

// decodeBody classifies the response body. JSON content is returned parsed,
// binary content is summarized rather than dumped, everything else is raw
// text.
func (env *ResponseEnvelope) decodeBody(body []byte) {
	if len(body) == 0 {
		return
	}
	if strings.Contains(strings.ToLower(env.ContentType), "json") && gjson.ValidBytes(body) {
		var parsed any
		if err := jsoniter.Unmarshal(body, &parsed); err == nil {
			env.BodyEncoding = BodyJSON
			env.JSON = parsed
			return
		}
	}
	if !utf8.Valid(body) {
		env.BodyEncoding = BodyBinary
		env.Text = binarySummary(body)
		return
	}
	env.BodyEncoding = BodyText
	env.Text = string(body)
}

func binarySummary(body []byte) string {
	kind := "unknown type"
	if t, err := filetype.Match(body); err == nil && t != filetype.Unknown {
		kind = t.MIME.Value
	}
	return fmt.Sprintf("<binary body: %d bytes, %s>", len(body), kind)
}

func flattenHeaders(resp *resty.Response) map[string]string {
	headers := make(map[string]string, len(resp.Header()))
	for k, v := range resp.Header() {
		headers[k] = strings.Join(v, ", ")
	}
	return headers
}

// finalURL reports where the response actually came from after redirects.
func finalURL(requested string, resp *resty.Response) string {
	raw := resp.RawResponse
	if raw != nil && raw.Request != nil && raw.Request.URL != nil {
		return raw.Request.URL.String()
	}
	return requested
}
