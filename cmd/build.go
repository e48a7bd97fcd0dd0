package cmd

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/treegen/treegen/tree"
)

type buildArgument struct {
	addHidden bool
}

// newBuildCommand creates the command that builds the session tree by
// scanning a source directory.
func newBuildCommand(sess *session) *cobra.Command {
	var buildArgs buildArgument

	buildCmd := &cobra.Command{
		Use:   "build SOURCE",
		Short: "Build the file tree from the specified directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			return runBuild(sess, buildArgs, arguments[0])
		},
	}

	defaultHidden := false
	if sess.config.Build.AddHidden != nil {
		defaultHidden = *sess.config.Build.AddHidden
	}
	buildCmd.Flags().BoolVar(&buildArgs.addHidden, "add-hidden", defaultHidden, "Include hidden files in the file tree")

	return buildCmd
}

func runBuild(sess *session, buildArgs buildArgument, source string) error {
	absSource, err := filepath.Abs(source)
	if err != nil {
		return errors.WithMessagef(err, "failed to resolve source path %s", source)
	}

	name := filepath.Base(absSource)
	if name == string(filepath.Separator) {
		name = "root"
	}

	root, err := tree.NewDirNode(name)
	if err != nil {
		return err
	}

	if err := root.Scan(source, buildArgs.addHidden); err != nil {
		return errors.WithMessage(err, "an error occurred while building")
	}

	sess.tree = root

	logrus.WithFields(logrus.Fields{
		"source": source,
		"nodes":  root.NumNodes(),
	}).Info("File tree built successfully")

	return nil
}
