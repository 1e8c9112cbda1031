package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MunavvarSinan/node-docker-cli/pkg/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHomePath(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "home alone", input: "~", expected: home},
		{name: "home prefix", input: "~/.node-docker-cli.yaml", expected: filepath.Join(home, ".node-docker-cli.yaml")},
		{name: "relative path", input: filepath.Join("conf", "a.yaml"), expected: filepath.Join(cwd, "conf", "a.yaml")},
		{
			name:     "absolute path",
			input:    filepath.Join(string(filepath.Separator), "tmp", "a.yaml"),
			expected: filepath.Join(string(filepath.Separator), "tmp", "a.yaml"),
		},
		{name: "tilde inside a name", input: "~x", expected: filepath.Join(cwd, "~x")},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			actual, err := fsutil.ExpandHomePath(testCase.input)

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, actual)
		})
	}
}
