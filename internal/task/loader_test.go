package task

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iron-Ham/comux/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func texts(cmds []Command) []string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.Text
	}
	return out
}

func TestLoadDeduplicates(t *testing.T) {
	cmds, err := Load([]string{"sleep 0.1", "sleep 0.1", "exit 2"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"sleep 0.1", "exit 2"}, texts(cmds))
}

func TestLoadTrimsBeforeDedup(t *testing.T) {
	cmds, err := Load([]string{"  true ", "true"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"true"}, texts(cmds))
}

func TestLoadPlainFile(t *testing.T) {
	path := writeFile(t, "tasks.txt", "# build steps\n\nmake build\nmake test\nmake build\n")

	cmds, err := Load(nil, []string{path})
	require.NoError(t, err)
	assert.Equal(t, []string{"make build", "make test"}, texts(cmds))

	for _, c := range cmds {
		assert.Equal(t, OriginFile, c.Origin, "command %q", c.Text)
	}
}

func TestLoadArgumentsPrecedeFiles(t *testing.T) {
	path := writeFile(t, "tasks.txt", "echo from-file\necho from-arg\n")

	cmds, err := Load([]string{"echo from-arg"}, []string{path})
	require.NoError(t, err)
	assert.Equal(t, []string{"echo from-arg", "echo from-file"}, texts(cmds))

	// The first occurrence wins, so the duplicate keeps its argument origin.
	assert.Equal(t, OriginArgument, cmds[0].Origin)
}

func TestLoadStructuredFiles(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "yaml",
			file:    "tasks.yaml",
			content: "commands:\n  - command: make build\n  - command: make test\n",
		},
		{
			name:    "json",
			file:    "tasks.json",
			content: `{"commands": [{"command": "make build"}, {"command": "make test"}]}`,
		},
		{
			name:    "toml",
			file:    "tasks.toml",
			content: "[[commands]]\ncommand = \"make build\"\n\n[[commands]]\ncommand = \"make test\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			cmds, err := Load(nil, []string{path})
			require.NoError(t, err)
			assert.Equal(t, []string{"make build", "make test"}, texts(cmds))
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(nil, []string{filepath.Join(t.TempDir(), "absent.txt")})
		assert.True(t, errors.IsConfig(err), "expected configuration error, got %v", err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "tasks.yaml", "commands: [unclosed\n")
		_, err := Load(nil, []string{path})
		assert.True(t, errors.IsConfig(err), "expected configuration error, got %v", err)
	})

	t.Run("empty command set", func(t *testing.T) {
		path := writeFile(t, "tasks.txt", "# only a comment\n\n")
		_, err := Load(nil, []string{path})
		assert.ErrorIs(t, err, errors.ErrNoCommands)
	})

	t.Run("no input at all", func(t *testing.T) {
		_, err := Load(nil, nil)
		assert.ErrorIs(t, err, errors.ErrNoCommands)
	})
}
