package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/fixturehost/internal/cli"
	"github.com/vvka-141/fixturehost/pkg/fixturehost"
)

func main() {
	// Host contract violations panic; report them with a stack trace
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(fixturehost.ExitPanic)
		}
	}()

	if os.Getenv("FIXTUREHOST_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(fixturehost.ExitCodeForError(err))
	}
}
