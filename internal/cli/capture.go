package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vvka-141/fixturehost/internal/files/filesystem"
	"github.com/vvka-141/fixturehost/internal/fixture"
	"github.com/vvka-141/fixturehost/pkg/fixturehost"
)

type captureFlags struct {
	mount         string
	output        string
	ignore        []string
	caseSensitive bool
}

var captureOpts captureFlags

var captureCmd = &cobra.Command{
	Use:   "capture <dir>",
	Short: "Record an existing directory as a fixture document",
	Long: `Walk a directory on disk and write a fixture document with one file entry per
file and one folder entry per empty directory.

The directory is mounted at --mount (default "/") inside the fixture.
.git, node_modules and .DS_Store are skipped unless --ignore is given.`,
	Example: `  fixturehost capture ./testdata/project --mount /a/b -o fixture.yaml
  fixturehost capture . --ignore .git --ignore dist`,
	Args: RequireOneArg("dir"),
	RunE: runCapture,
}

type exportFlags struct {
	force bool
}

var exportOpts exportFlags

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Write the fixture out to a real directory",
	Long: `Materialize every folder and file of the fixture beneath a directory on disk.

Drive roots become plain directories ("c:/" becomes "c") and UNC roots
become nested ones ("//server/share/" becomes "server/share"). The target
must be empty unless --force is set.`,
	Args: RequireOneArg("dir"),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(captureCmd)
	rootCmd.AddCommand(exportCmd)

	captureCmd.Flags().StringVar(&captureOpts.mount, "mount", "/", "Fixture path the captured directory maps to")
	captureCmd.Flags().StringVarP(&captureOpts.output, "output", "o", "", "Write the document here instead of stdout")
	captureCmd.Flags().StringArrayVar(&captureOpts.ignore, "ignore", nil, "Base name to skip with its subtree (repeatable)")
	captureCmd.Flags().BoolVar(&captureOpts.caseSensitive, "case-sensitive", false, "Mark the captured fixture as case-sensitive")

	exportCmd.Flags().BoolVar(&exportOpts.force, "force", false, "Write into a non-empty directory")
}

func resetCaptureFlags() {
	captureOpts = captureFlags{mount: "/"}
	exportOpts = exportFlags{}
}

func runCapture(cmd *cobra.Command, args []string) error {
	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s", fixturehost.ErrPathNotFound, dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	doc, err := fixture.Capture(os.DirFS(dir), ".", fixture.CaptureOptions{
		MountAt:       captureOpts.mount,
		Ignore:        captureOpts.ignore,
		CaseSensitive: captureOpts.caseSensitive,
	})
	if err != nil {
		return err
	}

	data, err := doc.Marshal()
	if err != nil {
		return err
	}

	if captureOpts.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(captureOpts.output, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", captureOpts.output, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Captured %d entries from %s into %s\n", len(doc.Entries), dir, captureOpts.output)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	h, err := loadHost(cmd)
	if err != nil {
		return err
	}

	target, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	osFs := afero.NewOsFs()
	if !exportOpts.force {
		exists, err := afero.DirExists(osFs, target)
		if err != nil {
			return fmt.Errorf("failed to inspect %s: %w", target, err)
		}
		if exists {
			empty, err := afero.IsEmpty(osFs, target)
			if err != nil {
				return fmt.Errorf("failed to inspect %s: %w", target, err)
			}
			if !empty {
				return fmt.Errorf("%s is not empty (use --force to write into it)", target)
			}
		}
	}

	if err := osFs.MkdirAll(target, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	if err := filesystem.CopyToAfero(h.Tree(), afero.NewBasePathFs(osFs, target), "/"); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d nodes to %s\n", h.Tree().Len(), target)
	return nil
}
