package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fixturehost/internal/files/filesystem"
	"github.com/vvka-141/fixturehost/internal/files/pathutil"
	"github.com/vvka-141/fixturehost/internal/tui"
	"github.com/vvka-141/fixturehost/pkg/fixturehost"
)

var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Draw the fixture hierarchy",
	Long: `Draw the folder hierarchy below a path (default: the fixture's current
directory) with children in insertion order.

Output is styled on a terminal and plain when piped, under CI, or when
NO_COLOR is set.`,
	Args: RequireOptionalPath,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	h, err := loadHost(cmd)
	if err != nil {
		return err
	}

	start := h.GetCurrentDirectory()
	if len(args) == 1 {
		start = args[0]
	}

	node, ok := h.Tree().Lookup(start)
	if !ok {
		return fmt.Errorf("%w: %s", fixturehost.ErrPathNotFound, start)
	}

	out := cmd.OutOrStdout()
	renderTree(out, node, tui.NewPalette(tui.DetectMode(out)))
	return nil
}

// renderTree writes node and its descendants using box-drawing connectors.
func renderTree(w io.Writer, node filesystem.Node, p tui.Palette) {
	fmt.Fprintln(w, label(node, node.FullPath(), p))
	if folder, ok := node.(*filesystem.Folder); ok {
		renderChildren(w, folder, "", p)
	}
}

func renderChildren(w io.Writer, folder *filesystem.Folder, prefix string, p tui.Palette) {
	children := folder.Children()
	for i, child := range children {
		last := i == len(children)-1
		connector, indent := tui.SymbolBranch, tui.SymbolPipe
		if last {
			connector, indent = tui.SymbolLastBranch, tui.SymbolSpace
		}

		fmt.Fprintf(w, "%s%s%s\n", p.Branch(prefix), p.Branch(connector), label(child, pathutil.BaseName(child.FullPath()), p))
		if sub, ok := child.(*filesystem.Folder); ok {
			renderChildren(w, sub, prefix+indent, p)
		}
	}
}

func label(node filesystem.Node, name string, p tui.Palette) string {
	switch n := node.(type) {
	case *filesystem.Folder:
		return p.Folder(name)
	case *filesystem.File:
		return p.File(name) + " " + p.Description(fmt.Sprintf("(%d bytes)", len(n.Content())))
	}
	return name
}
