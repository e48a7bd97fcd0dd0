package cmd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/treegen/treegen/tree"
)

// newLoadCommand creates the command that loads the session tree from a
// saved JSON document.
func newLoadCommand(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "load INPUT",
		Short: "Load the file tree from the specified JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			return runLoad(sess, arguments[0])
		},
	}
}

func runLoad(sess *session, input string) error {
	root, err := tree.LoadFile(input)
	if err != nil {
		return errors.WithMessage(err, "an error occurred while loading")
	}

	sess.tree = root

	logrus.WithFields(logrus.Fields{
		"file":  input,
		"nodes": root.NumNodes(),
	}).Info("File tree loaded")

	return nil
}
