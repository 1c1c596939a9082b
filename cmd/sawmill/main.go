package main

import "github.com/tailwater/sawmill/internal/cli"

func main() {
	cli.Execute()
}
