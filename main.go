package main

import "github.com/boswell-ai/boswell-mcp/cmd"

func main() {
	cmd.Execute()
}
