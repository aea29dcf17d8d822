package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yooztech/mcp-api-request/internal/apireq/config"
)

func newTestService() *Service {
	return New(config.DefaultConfig())
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = "test"
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func resultJSON(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &parsed))
	return parsed
}

func TestInitConfigAndRequestRoundTrip(t *testing.T) {
	svc := newTestService()
	root := t.TempDir()

	result, err := svc.handleInitConfig(context.Background(), callRequest(map[string]any{
		"project_root": root,
		"tokens": []any{
			map[string]any{"type": "header", "key": "X-A", "value": "1"},
			map[string]any{"type": "param", "key": "p", "value": "2"},
		},
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, resultText(t, result))
	created := resultJSON(t, result)
	assert.Equal(t, filepath.Join(root, ".mcp_api_request.yml"), created["path"])

	var gotHeader, gotParam string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-A")
		gotParam = r.URL.Query().Get("p")
	}))
	defer srv.Close()

	result, err = svc.handleAPIRequest(context.Background(), callRequest(map[string]any{
		"method":       "GET",
		"url":          srv.URL,
		"project_root": root,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, resultText(t, result))

	assert.Equal(t, "1", gotHeader)
	assert.Equal(t, "2", gotParam)
}

func TestAPIRequestCallerOverridesStoredTokens(t *testing.T) {
	svc := newTestService()
	root := t.TempDir()

	result, err := svc.handleInitConfig(context.Background(), callRequest(map[string]any{
		"project_root": root,
		"tokens": []any{
			map[string]any{"type": "header", "key": "Authorization", "value": "stored"},
		},
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, resultText(t, result))

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	result, err = svc.handleAPIRequest(context.Background(), callRequest(map[string]any{
		"method":       "GET",
		"url":          srv.URL,
		"project_root": root,
		"headers":      map[string]any{"Authorization": "caller"},
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, resultText(t, result))
	assert.Equal(t, "caller", gotAuth)
}

func TestAPIRequestWithoutConfig(t *testing.T) {
	svc := newTestService()
	root := t.TempDir()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	result, err := svc.handleAPIRequest(context.Background(), callRequest(map[string]any{
		"method":       "GET",
		"url":          srv.URL + "/x",
		"project_root": root,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, "missing config must not be an error: %s", resultText(t, result))

	assert.Empty(t, gotAuth)
	envelope := resultJSON(t, result)
	assert.Equal(t, float64(http.StatusOK), envelope["status_code"])
}

func TestAPIRequestMalformedConfig(t *testing.T) {
	svc := newTestService()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".mcp_api_request.json"), []byte(`"bare string"`), 0o600))

	dispatched := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dispatched = true
	}))
	defer srv.Close()

	result, err := svc.handleAPIRequest(context.Background(), callRequest(map[string]any{
		"method":       "GET",
		"url":          srv.URL,
		"project_root": root,
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "parse")
	assert.False(t, dispatched, "request must never be dispatched on config parse failure")
}

func TestInitConfigBadFormat(t *testing.T) {
	svc := newTestService()
	root := t.TempDir()

	result, err := svc.handleInitConfig(context.Background(), callRequest(map[string]any{
		"project_root": root,
		"fmt":          "xml",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "yaml or json")

	files, rerr := os.ReadDir(root)
	require.NoError(t, rerr)
	assert.Empty(t, files)
}

func TestInitConfigRefusesOverwrite(t *testing.T) {
	svc := newTestService()
	root := t.TempDir()

	result, err := svc.handleInitConfig(context.Background(), callRequest(map[string]any{"project_root": root}))
	require.NoError(t, err)
	require.False(t, result.IsError, resultText(t, result))

	result, err = svc.handleInitConfig(context.Background(), callRequest(map[string]any{"project_root": root}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "already exists")

	result, err = svc.handleInitConfig(context.Background(), callRequest(map[string]any{
		"project_root": root,
		"overwrite":    true,
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError, resultText(t, result))
}

func TestLocateConfig(t *testing.T) {
	svc := newTestService()
	root := t.TempDir()

	result, err := svc.handleLocateConfig(context.Background(), callRequest(map[string]any{"project_root": root}))
	require.NoError(t, err)
	found := resultJSON(t, result)
	assert.Equal(t, false, found["config_found"])

	_, err = svc.handleInitConfig(context.Background(), callRequest(map[string]any{"project_root": root}))
	require.NoError(t, err)

	result, err = svc.handleLocateConfig(context.Background(), callRequest(map[string]any{"project_root": root}))
	require.NoError(t, err)
	found = resultJSON(t, result)
	assert.Equal(t, true, found["config_found"])
	assert.Equal(t, filepath.Join(root, ".mcp_api_request.yml"), found["config_path"])
	assert.Equal(t, float64(2), found["tokens_count"])
}

func TestDecodeArgsRejectsNonObject(t *testing.T) {
	svc := newTestService()

	req := mcp.CallToolRequest{}
	req.Params.Name = "api_request"
	req.Params.Arguments = "not an object"

	result, err := svc.handleAPIRequest(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "must be an object")
}

func TestRedactJSON(t *testing.T) {
	merged := map[string]string{
		"Authorization": "stored-secret",
		"X-Caller":      "visible",
	}
	fromConfig := map[string]string{"Authorization": "stored-secret"}

	var logged map[string]string
	require.NoError(t, json.Unmarshal(redactJSON(merged, fromConfig), &logged))
	assert.Equal(t, "***", logged["Authorization"])
	assert.Equal(t, "visible", logged["X-Caller"])
}

func TestRedactJSONCallerOverride(t *testing.T) {
	// when the caller overrode the stored token, the logged value is the
	// caller's own and is not masked
	merged := map[string]string{"Authorization": "caller-value"}
	fromConfig := map[string]string{"Authorization": "stored-secret"}

	var logged map[string]string
	require.NoError(t, json.Unmarshal(redactJSON(merged, fromConfig), &logged))
	assert.Equal(t, "caller-value", logged["Authorization"])
}
