package main

import (
	"github.com/yooztech/mcp-api-request/internal/cli"
)

func main() {
	cli.Execute()
}
