package tree

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// TemplateFilePayload is the placeholder content written into every file
// created by Materialize.
const TemplateFilePayload = "This is an empty template file"

// Materialize recreates the tree under destDir as a skeleton of directories
// and placeholder files.
//
// The target path of the receiver is destDir joined with the node name. When
// the target already exists and overwrite is not set, the node and its whole
// subtree are skipped; an existing directory is never merged. The overwrite
// flag does not propagate to children, so entries left behind by an earlier
// run stay in place.
func (node *Node) Materialize(destDir string, overwrite bool) (Outcome, error) {
	target := filepath.Join(destDir, node.Name)

	if _, err := os.Stat(target); err == nil && !overwrite {
		logrus.WithField("path", target).Info("Path already exists, skipping creation")
		return OutcomeSkipped, nil
	}

	switch node.Kind {
	case Directory:
		if err := os.MkdirAll(target, 0755); err != nil {
			return "", errors.WithMessagef(err, "failed to create directory %s", target)
		}
		for _, child := range node.Children {
			if _, err := child.Materialize(target, false); err != nil {
				return "", err
			}
		}
	case File:
		if err := os.WriteFile(target, []byte(TemplateFilePayload), 0644); err != nil {
			return "", errors.WithMessagef(err, "failed to create template file %s", target)
		}
	default:
		return "", errors.WithMessagef(ErrInvalidState, "unknown kind '%s' for node '%s'", node.Kind, node.Name)
	}

	return OutcomeCreated, nil
}
