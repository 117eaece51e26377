package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess    = 0 // run completed, gates passed
	ExitGateFailed = 1 // run completed, but a CI gate failed
	ExitError      = 2 // configuration or runtime error
)

// GateFailureError indicates that aggregation ran successfully, but the
// results violated a configured CI gate.
type GateFailureError struct {
	Message string
}

func (e *GateFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var gateErr *GateFailureError
		if errors.As(err, &gateErr) {
			os.Exit(ExitGateFailed)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
