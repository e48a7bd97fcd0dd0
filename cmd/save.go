package cmd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/treegen/treegen/tree"
)

type saveArgument struct {
	overwrite bool
}

// newSaveCommand creates the command that saves the session tree to a JSON
// document.
func newSaveCommand(sess *session) *cobra.Command {
	var saveArgs saveArgument

	saveCmd := &cobra.Command{
		Use:   "save OUTPUT",
		Short: "Save the file tree to the specified output file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			return runSave(sess, saveArgs, arguments[0])
		},
	}

	saveCmd.Flags().BoolVar(&saveArgs.overwrite, "overwrite", false, "Overwrite existing output file if it already exists")

	return saveCmd
}

func runSave(sess *session, saveArgs saveArgument, output string) error {
	if err := sess.requireTree("save"); err != nil {
		return err
	}

	outcome, err := tree.SaveFile(sess.tree, output, saveArgs.overwrite)
	if err != nil {
		return errors.WithMessage(err, "an error occurred while saving")
	}

	if outcome == tree.OutcomeCreated {
		logrus.WithField("file", output).Info("File tree saved")
	}

	return nil
}
