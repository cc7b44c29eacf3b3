// Command hotelctl is the operator CLI for the hotel store.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root, h := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if cerr := h.close(); cerr != nil && err == nil {
		err = systemError(cerr)
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", message(err))
		return exitCode(err)
	}
	return 0
}
