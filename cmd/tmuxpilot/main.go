package main

import "github.com/tmuxpilot/tmuxpilot/internal/cli"

func main() {
	cli.Execute()
}
