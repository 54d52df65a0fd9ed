package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fixturehost/internal/tui"
	"github.com/vvka-141/fixturehost/pkg/fixturehost"
)

var existsCmd = &cobra.Command{
	Use:   "exists <path>",
	Short: "Report whether a path is a file, a directory, or absent",
	Long: `Report whether a path resolves to a file, a directory, or nothing in the fixture.

Prints "file", "directory" or "absent". Absent paths exit with code 13.`,
	Example: `  fixturehost exists -f fixture.yaml /a/b/app.ts
  fixturehost exists -f fixture.yaml A/B --case insensitive`,
	Args: RequireOneArg("path"),
	RunE: runExists,
}

var lsCmd = &cobra.Command{
	Use:   "ls <path>",
	Short: "List the immediate children of a directory",
	Long: `List the base names of a directory's immediate children in insertion order.

Files and subdirectories are both listed. A missing or non-directory path
prints nothing.`,
	Args: RequireOneArg("path"),
	RunE: runLs,
}

var catCmd = &cobra.Command{
	Use:   "cat <path>",
	Short: "Print a file's content",
	Args:  RequireOneArg("path"),
	RunE:  runCat,
}

type findFlags struct {
	ext      string
	excludes []string
}

var findOpts findFlags

var findCmd = &cobra.Command{
	Use:   "find <path>",
	Short: "Recursively list files under a directory",
	Long: `Recursively list the full paths of files under a directory, depth-first in
insertion order, optionally filtered by extension and pruned by exclusions.

An excluded path is skipped together with everything beneath it. The
extension comparison follows the fixture's case policy.`,
	Example: `  fixturehost find -f fixture.yaml /a --ext .ts
  fixturehost find -f fixture.yaml /a --exclude /a/node_modules --exclude /a/dist`,
	Args: RequireOneArg("path"),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(existsCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().StringVar(&findOpts.ext, "ext", "", "Only list files ending in this extension (e.g. .ts)")
	findCmd.Flags().StringArrayVar(&findOpts.excludes, "exclude", nil, "Skip this path and its subtree (repeatable)")
}

func resetFindFlags() {
	findOpts = findFlags{}
}

func runExists(cmd *cobra.Command, args []string) error {
	h, err := loadHost(cmd)
	if err != nil {
		return err
	}

	palette := tui.NewPalette(tui.DetectMode(cmd.OutOrStdout()))
	out := cmd.OutOrStdout()
	switch {
	case h.FileExists(args[0]):
		fmt.Fprintln(out, palette.Success("file"))
	case h.DirectoryExists(args[0]):
		fmt.Fprintln(out, palette.Success("directory"))
	default:
		fmt.Fprintln(out, palette.Error("absent"))
		return fmt.Errorf("%w: %s", fixturehost.ErrPathNotFound, args[0])
	}
	return nil
}

func runLs(cmd *cobra.Command, args []string) error {
	h, err := loadHost(cmd)
	if err != nil {
		return err
	}
	for _, name := range h.GetDirectories(args[0]) {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func runCat(cmd *cobra.Command, args []string) error {
	h, err := loadHost(cmd)
	if err != nil {
		return err
	}
	if !h.FileExists(args[0]) {
		return fmt.Errorf("%w: %s is not a file", fixturehost.ErrPathNotFound, args[0])
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), h.ReadFile(args[0]))
	return err
}

func runFind(cmd *cobra.Command, args []string) error {
	h, err := loadHost(cmd)
	if err != nil {
		return err
	}
	for _, p := range h.ReadDirectory(args[0], findOpts.ext, findOpts.excludes) {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}
