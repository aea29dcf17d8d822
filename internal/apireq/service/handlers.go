package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog/log"

	"github.com/yooztech/mcp-api-request/internal/apireq/dispatch"
	"github.com/yooztech/mcp-api-request/internal/apireq/tokencfg"
	"github.com/yooztech/mcp-api-request/internal/common/apperrors"
)

type initConfigArgs struct {
	ProjectRoot string                `json:"project_root"`
	Overwrite   bool                  `json:"overwrite"`
	Tokens      []tokencfg.TokenEntry `json:"tokens"`
	Format      string                `json:"fmt"`
}

type apiRequestArgs struct {
	Method         string         `json:"method"`
	URL            string         `json:"url"`
	Params         map[string]any `json:"params"`
	Headers        map[string]any `json:"headers"`
	Body           any            `json:"body"`
	ProjectRoot    string         `json:"project_root"`
	TimeoutSeconds float64        `json:"timeout_seconds"`
}

type locateConfigArgs struct {
	ProjectRoot string `json:"project_root"`
}

func (s *Service) handleInitConfig(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args initConfigArgs
	if err := decodeArgs(req, &args); err != nil {
		return errorResult(err), nil
	}

	root := firstNonEmpty(args.ProjectRoot, s.cfg.DefaultProjectRoot)
	path, err := tokencfg.WriteConfig(root, args.Format, args.Tokens, args.Overwrite)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("tool", "init_config").Msg("tool call failed")
		return errorResult(err), nil
	}

	count := len(args.Tokens)
	if args.Tokens == nil {
		count = len(tokencfg.DefaultTemplate())
	}
	log.Ctx(ctx).Info().Str("tool", "init_config").Str("path", path).Int("count", count).Msg("config written")

	return jsonResult(map[string]any{
		"path":    path,
		"created": true,
		"count":   count,
		"note":    "edit the file and fill in token values; entries with an empty value are never sent",
	})
}

func (s *Service) handleAPIRequest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args apiRequestArgs
	if err := decodeArgs(req, &args); err != nil {
		return errorResult(err), nil
	}

	invocationID := uuid.New().String()
	slog := log.Ctx(ctx).With().Str("tool", "api_request").Str("invocation_id", invocationID).Logger()

	root := firstNonEmpty(args.ProjectRoot, s.cfg.DefaultProjectRoot)
	cfgPath, searched := tokencfg.FindConfig(root)

	// Config absence is not an error: the request simply goes out with the
	// caller's own headers and params.
	var entries []tokencfg.TokenEntry
	if cfgPath != "" {
		var err apperrors.Error
		entries, err = tokencfg.LoadTokens(cfgPath)
		if err != nil {
			slog.Error().Err(err).Str("config_path", cfgPath).Msg("config parse failed, request not dispatched")
			return errorResult(err), nil
		}
	} else {
		slog.Debug().Strs("searched_directories", searched).Msg("no config file found")
	}

	cfgHeaders, cfgParams := dispatch.Partition(entries)
	spec := dispatch.RequestSpec{
		Method:  args.Method,
		URL:     args.URL,
		Headers: dispatch.Merge(cfgHeaders, toStringMap(args.Headers)),
		Params:  dispatch.Merge(cfgParams, toStringMap(args.Params)),
		Body:    args.Body,
		Timeout: s.timeoutFor(args.TimeoutSeconds),
	}

	slog.Info().
		Str("method", args.Method).
		Str("url", args.URL).
		Str("config_path", cfgPath).
		RawJSON("headers", redactJSON(spec.Headers, cfgHeaders)).
		RawJSON("params", redactJSON(spec.Params, cfgParams)).
		Msg("dispatching request")

	env, err := dispatch.Do(ctx, spec)
	if err != nil {
		slog.Error().Err(err).Msg("request failed")
		return errorResult(err), nil
	}

	slog.Info().Int("status_code", env.StatusCode).Int64("elapsed_ms", env.ElapsedMS).Msg("request completed")
	return jsonResult(env)
}

func (s *Service) handleLocateConfig(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args locateConfigArgs
	if err := decodeArgs(req, &args); err != nil {
		return errorResult(err), nil
	}

	root := firstNonEmpty(args.ProjectRoot, s.cfg.DefaultProjectRoot)
	path, searched := tokencfg.FindConfig(root)

	result := map[string]any{
		"config_found":         path != "",
		"searched_directories": searched,
	}
	if envRoot := os.Getenv(tokencfg.EnvProjectRoot); envRoot != "" {
		result["env_project_root"] = envRoot
	}
	if cwd, err := os.Getwd(); err == nil {
		result["current_working_directory"] = cwd
	}

	if path == "" {
		result["message"] = "no config file found; run init_config to create one, or set " +
			tokencfg.EnvProjectRoot + " to the project root"
		return jsonResult(result)
	}

	result["config_path"] = path
	entries, err := tokencfg.LoadTokens(path)
	if err != nil {
		result["config_error"] = err.Error()
		return jsonResult(result)
	}
	headerCount, paramCount := 0, 0
	for _, e := range entries {
		switch e.Type {
		case tokencfg.KindHeader:
			headerCount++
		case tokencfg.KindParam:
			paramCount++
		}
	}
	result["tokens_count"] = len(entries)
	result["token_types"] = map[string]int{"header": headerCount, "param": paramCount}
	return jsonResult(result)
}

// timeoutFor converts the caller's timeout to a duration, falling back to the
// configured default.
func (s *Service) timeoutFor(seconds float64) time.Duration {
	if seconds <= 0 {
		seconds = s.cfg.DefaultTimeoutSeconds
	}
	if seconds <= 0 {
		return dispatch.DefaultTimeout
	}
	return time.Duration(seconds * float64(time.Second))
}

// decodeArgs round-trips the argument map through JSON into a typed struct.
func decodeArgs(req mcp.CallToolRequest, v any) apperrors.Error {
	argsMap, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		if req.Params.Arguments != nil {
			return ErrInvalidRequest.Msg("tool arguments must be an object")
		}
		argsMap = map[string]any{}
	}
	data, err := jsoniter.Marshal(argsMap)
	if err != nil {
		return ErrInvalidRequest.MsgErr("unable to encode arguments", err)
	}
	if err := jsoniter.Unmarshal(data, v); err != nil {
		return ErrInvalidRequest.MsgErr("unable to decode arguments", err)
	}
	return nil
}

// toStringMap flattens JSON argument values into strings. Numbers and bools
// are formatted with their default representation.
func toStringMap(m map[string]any) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case string:
			out[k] = val
		case nil:
			continue
		default:
			out[k] = fmt.Sprintf("%v", val)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := jsoniter.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(ErrInvalidRequest.MsgErr("unable to encode result", err)), nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: string(data)},
		},
	}, nil
}

// errorResult maps an application error to the MCP tool-error channel. The
// underlying cause, when present, is appended to the message.
func errorResult(err apperrors.Error) *mcp.CallToolResult {
	msg := err.Error()
	if causes := err.UnwrapAll(); len(causes) >= 2 {
		if cause := causes[len(causes)-1]; cause != nil && cause.Error() != msg {
			msg = msg + ": " + cause.Error()
		}
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
	}
}
