// Command jssp-solve runs a single job-shop scheduling solver over an
// instance file and prints the resulting schedule in the §6 stdout contract.
package main

import (
	"os"

	"github.com/nvollmar/jssp-heuristics/cmd/jssp-solve/cmd"
)

func main() {
	cmd.Execute()
	os.Exit(cmd.ExitCode())
}
