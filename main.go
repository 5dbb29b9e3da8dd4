package main

import "github.com/kevr/gensrc/cmd"

// main is the entry point of the gensrc CLI application.
// It executes the root command which handles argument parsing and exit codes.
func main() {
	cmd.Execute()
}
