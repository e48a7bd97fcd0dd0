package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/treegen/treegen/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newRootCommand creates a fresh root command bound to the session. Every
// pipeline segment gets its own command tree so flag state never leaks from
// one chained command into the next.
func newRootCommand(sess *session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "treegen",
		Short: "Model, persist and materialize file tree structures",
		PersistentPreRun: func(*cobra.Command, []string) {
			initLog(sess)
		},
		RunE: func(command *cobra.Command, _ []string) error {
			return command.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultLevel := logrus.InfoLevel.String()
	if sess.config.Log.Level != "" {
		defaultLevel = sess.config.Log.Level
	}

	defaultColorDisabled := false
	if sess.config.Log.ColorDisabled != nil {
		defaultColorDisabled = *sess.config.Log.ColorDisabled
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&sess.traceback, "traceback", sess.traceback, "Show the full diagnostic trace on error")
	flags.StringVar(&sess.logLevel, "log-level", defaultLevel, "Log level")
	flags.StringVar(&sess.logFile, "log-file", sess.config.Log.File, "Also write logs to the given file, with rotation")
	flags.BoolVar(&sess.logColorDisabled, "log-color-disabled", defaultColorDisabled, "Force to disable colorful logs")
	flags.String("config", "", "Path to an explicit configuration file")

	rootCmd.AddCommand(
		newBuildCommand(sess),
		newLoadCommand(sess),
		newSaveCommand(sess),
		newTemplateCommand(sess),
		newPrintCommand(sess),
		newDiffCommand(sess),
	)

	return rootCmd
}

func initLog(sess *session) {
	formatter := logrus.TextFormatter{
		FullTimestamp: true,
	}

	// No ANSI escapes when the output also goes to a file.
	if sess.logColorDisabled || sess.logFile != "" {
		formatter.DisableColors = true
	} else {
		formatter.ForceColors = true
	}

	logrus.SetFormatter(&formatter)

	if sess.logFile != "" {
		logrus.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   sess.logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}))
	}

	level, err := logrus.ParseLevel(sess.logLevel)
	if err != nil {
		logrus.WithError(err).WithField("level", sess.logLevel).Fatal("Failed to parse log level")
	}

	logrus.SetLevel(level)
}

// run loads the configuration, splits the raw arguments into chained command
// segments and executes them in order against the shared session. The first
// failing segment aborts the pipeline.
func run(sess *session, args []string) error {
	globals, segments, err := splitPipeline(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.LoadOptions{ExplicitFilePath: explicitConfigPath(globals)})
	if err != nil {
		return err
	}
	sess.config = cfg

	if len(segments) == 0 {
		return executeSegment(sess, globals)
	}

	for _, segment := range segments {
		argv := append(append([]string{}, globals...), segment...)
		if err := executeSegment(sess, argv); err != nil {
			return err
		}
	}

	return nil
}

func executeSegment(sess *session, argv []string) error {
	rootCmd := newRootCommand(sess)
	// SetArgs(nil) would make cobra fall back to os.Args.
	rootCmd.SetArgs(append([]string{}, argv...))
	rootCmd.SetOut(sess.out)
	return rootCmd.Execute()
}

// explicitConfigPath extracts the --config value from the global flag prefix
// before any cobra parsing happens, since the configuration supplies the
// defaults the commands are constructed with.
func explicitConfigPath(globals []string) string {
	for i, arg := range globals {
		if arg == "--config" && i+1 < len(globals) {
			return globals[i+1]
		}
		if value, found := strings.CutPrefix(arg, "--config="); found {
			return value
		}
	}
	return ""
}

// Execute is the command line entrypoint.
func Execute() {
	sess := newSession()

	if err := run(sess, os.Args[1:]); err != nil {
		if sess.traceback {
			fmt.Printf("%+v\n", err)
		} else {
			fmt.Printf("Error: %v\n", err)
			fmt.Println("use the --traceback flag for more details.")
		}
		os.Exit(1)
	}
}
