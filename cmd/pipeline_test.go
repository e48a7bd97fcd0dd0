package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPipeline(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		globals  []string
		segments [][]string
	}{
		{
			name:     "single command",
			args:     []string{"build", "./src"},
			segments: [][]string{{"build", "./src"}},
		},
		{
			name:     "chained commands",
			args:     []string{"build", "./src", "save", "out.json", "print"},
			segments: [][]string{{"build", "./src"}, {"save", "out.json"}, {"print"}},
		},
		{
			name:     "global flags before first command",
			args:     []string{"--log-level", "debug", "--traceback", "build", "./src"},
			globals:  []string{"--log-level", "debug", "--traceback"},
			segments: [][]string{{"build", "./src"}},
		},
		{
			name:     "config flag in equals form",
			args:     []string{"--config=custom.yaml", "print"},
			globals:  []string{"--config=custom.yaml"},
			segments: [][]string{{"print"}},
		},
		{
			name:     "flags stay with their segment",
			args:     []string{"build", "--add-hidden", "./src", "print", "--show-hidden"},
			segments: [][]string{{"build", "--add-hidden", "./src"}, {"print", "--show-hidden"}},
		},
		{
			name:     "command name after optional positional starts a segment",
			args:     []string{"template", "print"},
			segments: [][]string{{"template"}, {"print"}},
		},
		{
			name:     "command name fills a required positional",
			args:     []string{"build", "load"},
			segments: [][]string{{"build", "load"}},
		},
		{
			name:     "path prefix escapes a command name",
			args:     []string{"template", "./print", "print"},
			segments: [][]string{{"template", "./print"}, {"print"}},
		},
		{
			name: "empty arguments",
			args: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			globals, segments, err := splitPipeline(tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.globals, globals)
			assert.Equal(t, tt.segments, segments)
		})
	}
}

func TestSplitPipelineUnknownCommand(t *testing.T) {
	_, _, err := splitPipeline([]string{"frobnicate", "./src"})
	assert.ErrorContains(t, err, "unknown command 'frobnicate'")
}

func TestExplicitConfigPath(t *testing.T) {
	assert.Equal(t, "custom.yaml", explicitConfigPath([]string{"--traceback", "--config", "custom.yaml"}))
	assert.Equal(t, "inline.yaml", explicitConfigPath([]string{"--config=inline.yaml"}))
	assert.Equal(t, "", explicitConfigPath([]string{"--log-level", "debug"}))
}
