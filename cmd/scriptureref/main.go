package main

import "scriptureref/internal/cli"

func main() {
	cli.Execute()
}
