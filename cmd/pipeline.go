package cmd

import (
	"strings"

	"github.com/pkg/errors"
)

// pipelineCommands maps every chainable command to the number of positional
// arguments it must consume before a following command name may start a new
// pipeline segment.
var pipelineCommands = map[string]int{
	"build":    1,
	"load":     1,
	"save":     1,
	"template": 0,
	"print":    0,
	"diff":     1,
	"help":     0,
}

// globalValueFlags are the persistent flags that consume the next raw
// argument when written in their space separated form.
var globalValueFlags = map[string]bool{
	"--log-level": true,
	"--log-file":  true,
	"--config":    true,
}

// splitPipeline cuts a raw argument list into the global flag prefix and one
// argument slice per chained command.
//
// A bare argument equal to a command name starts a new segment once the
// current command has consumed its required positionals, so
// "build ./src save out.json print" becomes three segments. A directory that
// shares its name with a command can still be addressed through a path
// prefix such as ./print.
func splitPipeline(args []string) (globals []string, segments [][]string, err error) {
	positionals := 0

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if len(segments) == 0 {
			switch {
			case strings.HasPrefix(arg, "-"):
				globals = append(globals, arg)
				if globalValueFlags[arg] && i+1 < len(args) {
					globals = append(globals, args[i+1])
					i++
				}
			case isPipelineCommand(arg):
				segments = append(segments, []string{arg})
				positionals = 0
			default:
				return nil, nil, errors.Errorf("unknown command '%s', see 'treegen --help'", arg)
			}
			continue
		}

		current := len(segments) - 1
		required := pipelineCommands[segments[current][0]]

		switch {
		case strings.HasPrefix(arg, "-"):
			segments[current] = append(segments[current], arg)
		case isPipelineCommand(arg) && positionals >= required:
			segments = append(segments, []string{arg})
			positionals = 0
		default:
			segments[current] = append(segments[current], arg)
			positionals++
		}
	}

	return globals, segments, nil
}

func isPipelineCommand(name string) bool {
	_, ok := pipelineCommands[name]
	return ok
}
