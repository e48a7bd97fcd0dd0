package cmd

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/treegen/treegen/tree"
)

type diffArgument struct {
	shallow bool
}

// newDiffCommand creates the command that compares the session tree against
// another saved tree document.
func newDiffCommand(sess *session) *cobra.Command {
	var diffArgs diffArgument

	diffCmd := &cobra.Command{
		Use:   "diff OTHER",
		Short: "Compare the file tree against another saved tree document",
		Long: `Compare the current file tree against the tree stored in the OTHER JSON
document. Entries only present in OTHER are marked '+', entries missing from
OTHER are marked '-' and entries that differ are marked '~'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			return runDiff(sess, diffArgs, arguments[0], command.OutOrStdout())
		},
	}

	diffCmd.Flags().BoolVar(&diffArgs.shallow, "shallow", false, "Compare only the top level entries")

	return diffCmd
}

func runDiff(sess *session, diffArgs diffArgument, other string, sink io.Writer) error {
	if err := sess.requireTree("diff"); err != nil {
		return err
	}

	otherTree, err := tree.LoadFile(other)
	if err != nil {
		return errors.WithMessage(err, "an error occurred while comparing")
	}

	diffRoot, err := tree.Diff(sess.tree, otherTree, !diffArgs.shallow)
	if err != nil {
		return errors.WithMessage(err, "an error occurred while comparing")
	}

	return tree.RenderDiff(sink, diffRoot)
}
