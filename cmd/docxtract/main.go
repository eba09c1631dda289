package main

import "github.com/tsawler/docxtract/internal/cli"

func main() {
	cli.Execute()
}
