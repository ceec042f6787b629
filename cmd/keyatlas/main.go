// Package main provides the entry point for the keyatlas CLI tool.
package main

import (
	"github.com/keystation/keyatlas/cmd/keyatlas/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
