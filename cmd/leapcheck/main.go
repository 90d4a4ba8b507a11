// Package main is the entry point for leapcheck, the leap-year service CLI.
package main

import "github.com/jsamuelsen11/leapyear-service/internal/cli"

func main() {
	cli.Execute()
}
