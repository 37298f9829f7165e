// Package main provides the entry point for the royaltyflow CLI tool.
package main

import "github.com/greenbox/royaltyflow/cmd/royaltyflow/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
