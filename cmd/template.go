package cmd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/treegen/treegen/tree"
)

type templateArgument struct {
	overwrite bool
}

// newTemplateCommand creates the command that materializes the session tree
// as an empty skeleton on disk. Without a destination the skeleton is
// created in the working directory.
func newTemplateCommand(sess *session) *cobra.Command {
	var templateArgs templateArgument

	templateCmd := &cobra.Command{
		Use:   "template [DESTINATION]",
		Short: "Create a template copy of the file tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			var destination string
			if len(arguments) > 0 {
				destination = arguments[0]
			}
			return runTemplate(sess, templateArgs, destination)
		},
	}

	templateCmd.Flags().BoolVar(&templateArgs.overwrite, "overwrite", false, "Overwrite existing template if it already exists")

	return templateCmd
}

func runTemplate(sess *session, templateArgs templateArgument, destination string) error {
	if err := sess.requireTree("template"); err != nil {
		return err
	}

	outcome, err := sess.tree.Materialize(destination, templateArgs.overwrite)
	if err != nil {
		return errors.WithMessage(err, "an error occurred while creating the template")
	}

	if outcome == tree.OutcomeCreated {
		if destination != "" {
			logrus.WithField("path", destination).Info("Template copy created")
		} else {
			logrus.Info("Template copy created")
		}
	}

	return nil
}
