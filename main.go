package main

import "github.com/s41205/hangarctl/internal/cli"

func main() {
	cli.Execute()
}
