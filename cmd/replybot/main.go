package main

import "github.com/sant0-9/replybot/internal/cli"

var version = "dev"

func main() {
	cli.Version = version
	cli.Execute()
}
