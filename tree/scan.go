package tree

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Scan populates an empty directory node with the contents of directoryPath.
//
// Directory entries are classified by following symbolic links: entries that
// resolve to directories are attached first in listing order and scanned
// recursively, entries that resolve to regular files are attached after
// them. Anything else (sockets, devices, dangling links) is skipped.
// Unless includeHidden is set, dot-prefixed entries are ignored entirely.
func (node *Node) Scan(directoryPath string, includeHidden bool) error {
	if node.Kind != Directory {
		return errors.WithMessagef(ErrInvalidArgument, "scan target node '%s' is not a directory", node.Name)
	}
	if len(node.Children) > 0 {
		return errors.WithMessagef(ErrInvalidArgument, "scan target node '%s' already has children", node.Name)
	}

	if info, err := os.Stat(directoryPath); err != nil || !info.IsDir() {
		return errors.WithMessagef(ErrNotADirectory, "source '%s'", directoryPath)
	}

	logrus.WithFields(logrus.Fields{
		"path":   directoryPath,
		"hidden": includeHidden,
	}).Debug("Scanning directory")

	entries, err := os.ReadDir(directoryPath)
	if err != nil {
		return errors.WithMessagef(err, "failed to read directory %s", directoryPath)
	}

	var dirNames, fileNames []string
	for _, entry := range entries {
		name := entry.Name()
		if !includeHidden && strings.HasPrefix(name, ".") {
			continue
		}

		info, err := os.Stat(filepath.Join(directoryPath, name))
		if err != nil {
			logrus.WithError(err).WithField("entry", name).Debug("Skipping unreadable directory entry")
			continue
		}

		switch {
		case info.IsDir():
			dirNames = append(dirNames, name)
		case info.Mode().IsRegular():
			fileNames = append(fileNames, name)
		}
	}

	for _, name := range dirNames {
		child, err := NewDirNode(name)
		if err != nil {
			return err
		}
		node.Children = append(node.Children, child)
	}

	for _, child := range node.Children {
		if err := child.Scan(filepath.Join(directoryPath, child.Name), includeHidden); err != nil {
			return err
		}
	}

	for _, name := range fileNames {
		child, err := NewFileNode(name)
		if err != nil {
			return err
		}
		node.Children = append(node.Children, child)
	}

	return nil
}
