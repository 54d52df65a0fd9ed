package fixturehost

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Command completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic or contract violation
	ExitConfigError     = 10 // Invalid fixturehost.yaml or environment override
	ExitInvalidFixture  = 11 // Fixture document violates tree invariants
	ExitFixtureNotFound = 12 // Fixture file does not exist
	ExitPathNotFound    = 13 // Queried path is absent from the fixture
)

const (
	// DefaultCurrentDirectory is used when a fixture does not name one.
	DefaultCurrentDirectory = "/"

	// DefaultExecutingFilePath is reported by GetExecutingFilePath when a
	// fixture does not name one.
	DefaultExecutingFilePath = "/fixturehost"

	// NewLine is the line terminator reported by every host.
	NewLine = "\n"

	// ConfigFileName is the project configuration file looked up by the CLI.
	ConfigFileName = "fixturehost.yaml"
)
