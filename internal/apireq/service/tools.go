package service

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

var initConfigTool = mcp.Tool{
	Name: "init_config",
	Description: "Create a per-project credential config file (.mcp_api_request.yml or .json) " +
		"at the project root. Entries hold {type, key, value} where type is header or param. " +
		"Empty values are templates for the user to fill in by hand; they are never sent.",
	RawInputSchema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "project_root": {
      "type": "string",
      "description": "Directory to write the config file to. Defaults to MCP_API_REQUEST_PROJECT_ROOT or the current working directory."
    },
    "overwrite": {
      "type": "boolean",
      "description": "Replace an existing config file. Defaults to false.",
      "default": false
    },
    "tokens": {
      "type": "array",
      "description": "Token entries to write instead of the built-in template.",
      "items": {
        "type": "object",
        "properties": {
          "type": {"type": "string", "enum": ["header", "param"]},
          "key": {"type": "string"},
          "value": {"type": "string"}
        },
        "required": ["type", "key"]
      }
    },
    "fmt": {
      "type": "string",
      "enum": ["yaml", "json"],
      "description": "On-disk format. Defaults to yaml.",
      "default": "yaml"
    }
  }
}`),
}

var apiRequestTool = mcp.Tool{
	Name: "api_request",
	Description: "Perform an HTTP request with the project's stored credentials merged in. " +
		"Header tokens become request headers and param tokens become query parameters; " +
		"caller-supplied headers and params override stored ones with the same key. " +
		"The real backend response is returned verbatim, including 4xx/5xx statuses.",
	RawInputSchema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "method": {
      "type": "string",
      "description": "HTTP method, e.g. GET, POST, PUT, PATCH, DELETE."
    },
    "url": {
      "type": "string",
      "description": "Absolute http(s) URL to request."
    },
    "params": {
      "type": "object",
      "description": "Query parameters. Override stored param tokens on key collision.",
      "additionalProperties": {"type": "string"}
    },
    "headers": {
      "type": "object",
      "description": "Request headers. Override stored header tokens on key collision.",
      "additionalProperties": {"type": "string"}
    },
    "body": {
      "description": "Request body. Objects and arrays are sent as JSON; strings are sent raw unless they hold a JSON object or array."
    },
    "project_root": {
      "type": "string",
      "description": "Directory to anchor config discovery. Defaults to MCP_API_REQUEST_PROJECT_ROOT or the current working directory."
    },
    "timeout_seconds": {
      "type": "number",
      "description": "Request timeout in seconds. Defaults to 30.",
      "default": 30
    }
  },
  "required": ["method", "url"]
}`),
}

var locateConfigTool = mcp.Tool{
	Name: "locate_config",
	Description: "Report which credential config file would be used for a request and which " +
		"directories were searched. Useful to debug why stored tokens are not applied.",
	RawInputSchema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "project_root": {
      "type": "string",
      "description": "Directory to anchor config discovery. Defaults to MCP_API_REQUEST_PROJECT_ROOT or the current working directory."
    }
  }
}`),
}
