// Package cli implements the mcp-api-request command line interface.
package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yooztech/mcp-api-request/internal/apireq/versions"
)

var (
	// Global flags
	configFile string
)

var errorLabel = color.New(color.FgRed)

// rootCmd represents the base command. Run without a subcommand it serves
// MCP over stdio, which is how MCP clients normally start the tool.
var rootCmd = &cobra.Command{
	Use:   "mcp-api-request [command] [flags]",
	Short: "MCP server for credential-aware API requests",
	Long: `mcp-api-request is an MCP server that performs HTTP requests with
per-project stored credentials merged in. Tokens live in a
.mcp_api_request.yml (or .json) file at the project root; header tokens
become request headers and param tokens become query parameters. The raw
backend response is returned verbatim, including error statuses.

Examples:
  # Serve MCP over stdio (default; used by MCP client configs)
  mcp-api-request

  # Serve MCP over HTTP on the configured port
  mcp-api-request serve --http

  # Use an explicit server config file
  mcp-api-request serve --config /etc/mcp-api-request.conf`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(false)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "", "", "Path to server configuration file")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newVersionCmd creates and returns a new version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of mcp-api-request",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("mcp-api-request %s\n", versions.Version)
		},
	}
}
