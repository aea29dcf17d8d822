// Package versions defines version constants for the mcp-api-request tool.
package versions

// Version is the current version of the tool.
// The version follows semantic versioning (MAJOR.MINOR.PATCH).
const Version = "0.1.0"
