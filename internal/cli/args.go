package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireOneArg validates that exactly one positional argument is provided.
// Returns a helpful error message with usage and an example if missing or too many.
func RequireOneArg(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf(`missing required argument: <%s>

Usage: %s

Example:
  %s -f fixture.yaml /`, name, cmd.UseLine(), cmd.CommandPath())
		}
		if len(args) > 1 {
			return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
		}
		return nil
	}
}

// RequireOptionalPath accepts zero or one path argument, defaulting to the
// fixture's current directory when omitted.
func RequireOptionalPath(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("accepts at most 1 arg(s), received %d", len(args))
	}
	return nil
}
