package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

type printArgument struct {
	showHidden bool
}

// newPrintCommand creates the command that renders the session tree as an
// indented diagram.
func newPrintCommand(sess *session) *cobra.Command {
	var printArgs printArgument

	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print the file tree",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			return runPrint(sess, printArgs, command.OutOrStdout())
		},
	}

	defaultHidden := false
	if sess.config.Print.ShowHidden != nil {
		defaultHidden = *sess.config.Print.ShowHidden
	}
	printCmd.Flags().BoolVar(&printArgs.showHidden, "show-hidden", defaultHidden, "Print also hidden files and directories")

	return printCmd
}

func runPrint(sess *session, printArgs printArgument, sink io.Writer) error {
	if err := sess.requireTree("print"); err != nil {
		return err
	}

	return sess.tree.Render(sink, printArgs.showHidden)
}
