package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fixturehost/internal/config"
	"github.com/vvka-141/fixturehost/internal/files/pathutil"
)

// caseModes contains valid --case values for shell completion.
var caseModes = []string{"sensitive", "insensitive"}

// logFormats contains valid --log-format values for shell completion.
var logFormats = []string{config.LogFormatText, config.LogFormatJSON}

func completeFromList(values []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, toComplete) {
			matches = append(matches, v)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeCaseModes provides shell completion for --case.
func completeCaseModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFromList(caseModes, toComplete)
}

// completeLogFormats provides shell completion for --log-format.
func completeLogFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFromList(logFormats, toComplete)
}

// completeDirectories provides shell completion for a single directory argument.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveFilterDirs
}

// completeFixturePaths completes a path argument against the loaded fixture
// by listing the children of the directory typed so far.
func completeFixturePaths(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	h, err := loadHost(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	dir := pathutil.DirectoryOf(toComplete)
	if toComplete == "" || strings.HasSuffix(toComplete, "/") {
		dir = toComplete
	}
	if dir == "" {
		dir = h.GetCurrentDirectory()
	}

	var matches []string
	for _, name := range h.GetDirectories(dir) {
		candidate := strings.TrimSuffix(dir, "/") + "/" + name
		if strings.HasPrefix(candidate, toComplete) || toComplete == "" {
			if h.DirectoryExists(candidate) {
				candidate += "/"
			}
			matches = append(matches, candidate)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

func init() {
	for _, c := range []*cobra.Command{existsCmd, lsCmd, catCmd, findCmd, treeCmd} {
		c.ValidArgsFunction = completeFixturePaths
	}
	captureCmd.ValidArgsFunction = completeDirectories
	exportCmd.ValidArgsFunction = completeDirectories
}
