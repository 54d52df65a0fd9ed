package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fixturehost/internal/config"
	"github.com/vvka-141/fixturehost/internal/fixture"
	"github.com/vvka-141/fixturehost/internal/host"
	"github.com/vvka-141/fixturehost/internal/logging"
	"github.com/vvka-141/fixturehost/pkg/fixturehost"
)

var rootCmd = &cobra.Command{
	Use:   "fixturehost",
	Short: "Inspect in-memory file system fixtures",
	Long: `fixturehost loads a declarative fixture (a YAML list of paths and contents)
into the same read-only virtual file system that tests use, and answers
queries against it: existence, child listing, filtered recursive search,
and file reads.

Use it to check what a service under test will see before writing
assertions, or capture an existing directory into a new fixture.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or contract violation
  10 - Invalid configuration
  11 - Invalid fixture (conflicting entries)
  12 - Fixture file not found
  13 - Queried path not found`,
	SilenceUsage: true,
}

// globalFlags holds the persistent flag values shared by query commands.
type globalFlags struct {
	verbose   bool
	fixture   string
	configDir string
	caseMode  string
	cwd       string
	logFormat string
}

var rootFlags globalFlags

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout, os.Stderr)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Trace every host query to stderr")
	pf.StringVarP(&rootFlags.fixture, "fixture", "f", "", "Fixture document (default: fixture from fixturehost.yaml)")
	pf.StringVar(&rootFlags.configDir, "config-dir", ".", "Directory holding fixturehost.yaml and .env")
	pf.StringVar(&rootFlags.caseMode, "case", "", "Override the case policy: sensitive or insensitive")
	pf.StringVar(&rootFlags.cwd, "cwd", "", "Override the fixture's current directory")
	pf.StringVar(&rootFlags.logFormat, "log-format", "", "Log format: text or json")

	_ = rootCmd.RegisterFlagCompletionFunc("case", completeCaseModes)
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", completeLogFormats)
}

func resetRootFlags() {
	rootFlags = globalFlags{configDir: "."}
}

// newLogger picks the logger for the resolved log format.
func newLogger(w io.Writer, format string, verbose bool) fixturehost.Logger {
	if format == config.LogFormatJSON {
		return logging.NewStructuredLogger(w, verbose)
	}
	return logging.NewConsoleLoggerTo(w, verbose)
}

// loadHost resolves configuration and builds the host for a query command.
// Precedence (highest to lowest): flags > FIXTUREHOST_* env > fixturehost.yaml > fixture document.
func loadHost(cmd *cobra.Command) (*host.TestServerHost, error) {
	cfg, err := config.Resolve(rootFlags.configDir)
	if err != nil {
		return nil, err
	}

	fixturePath := rootFlags.fixture
	if fixturePath == "" {
		fixturePath = cfg.Fixture
	}
	if fixturePath == "" {
		return nil, fmt.Errorf("%w: pass --fixture or set fixture in %s", fixturehost.ErrFixtureNotFound, config.ConfigFileName)
	}

	doc, err := fixture.LoadFile(fixturePath)
	if err != nil {
		return nil, err
	}

	if cfg.CaseSensitive != nil {
		doc.CaseSensitive = *cfg.CaseSensitive
	}
	if cfg.CurrentDirectory != "" {
		doc.CurrentDirectory = cfg.CurrentDirectory
	}
	if cfg.ExecutingFile != "" {
		doc.ExecutingFile = cfg.ExecutingFile
	}

	switch rootFlags.caseMode {
	case "":
	case "sensitive":
		doc.CaseSensitive = true
	case "insensitive":
		doc.CaseSensitive = false
	default:
		return nil, fmt.Errorf("invalid argument %q for \"--case\": want sensitive or insensitive", rootFlags.caseMode)
	}
	if rootFlags.cwd != "" {
		doc.CurrentDirectory = rootFlags.cwd
	}

	format := cfg.LogFormat
	if rootFlags.logFormat != "" {
		format = rootFlags.logFormat
	}
	logger := newLogger(cmd.ErrOrStderr(), format, rootFlags.verbose)

	h, err := doc.Host(logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fixturePath, err)
	}
	return h, nil
}
