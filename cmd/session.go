package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/treegen/treegen/config"
	"github.com/treegen/treegen/tree"
)

// session carries the state shared by all commands of one pipeline run: the
// current file tree, the loaded configuration and the global flag values of
// the invocation.
type session struct {
	tree   *tree.Node // current tree, nil until build or load ran
	config config.AppConfig
	out    io.Writer // sink for tree listings

	traceback        bool
	logLevel         string
	logFile          string
	logColorDisabled bool
}

func newSession() *session {
	return &session{
		out: os.Stdout,
	}
}

// requireTree fails when no tree has been built or loaded yet in this
// pipeline run.
func (sess *session) requireTree(commandName string) error {
	if sess.tree == nil {
		return errors.Errorf("no file tree exists, use `build` or `load` before `%s`", commandName)
	}
	return nil
}
