package files

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"orgpulse/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPaths(t *testing.T) *config.Paths {
	t.Helper()
	base := t.TempDir()
	return &config.Paths{
		BaseDir:    base,
		DataDir:    filepath.Join(base, "data"),
		ExportsDir: filepath.Join(base, "exports"),
		LogsDir:    filepath.Join(base, "logs"),
	}
}

func TestManager_WriteFile(t *testing.T) {
	paths := testPaths(t)
	m := NewManager(paths, nil)

	require.NoError(t, m.WriteFile("exports/charts/heatmap.csv", []byte("a,b\n")))

	data, err := os.ReadFile(filepath.Join(paths.ExportsDir, "charts", "heatmap.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))
	assert.True(t, m.FileExists("exports/charts/heatmap.csv"))

	read, err := m.ReadFile("exports/charts/heatmap.csv")
	require.NoError(t, err)
	assert.Equal(t, data, read)
}

func TestManager_WriteStreamFailureLeavesNoFile(t *testing.T) {
	paths := testPaths(t)
	m := NewManager(paths, nil)

	err := m.WriteStream("exports/broken.csv", func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return errors.New("boom")
	})
	require.Error(t, err)
	assert.False(t, m.FileExists("exports/broken.csv"))

	entries, err := os.ReadDir(paths.ExportsDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestManager_ResolvePath(t *testing.T) {
	paths := testPaths(t)
	m := NewManager(paths, nil)

	tests := []struct {
		path string
		want string
	}{
		{path: "exports/a.csv", want: filepath.Join(paths.ExportsDir, "a.csv")},
		{path: "logs/app.log", want: filepath.Join(paths.LogsDir, "app.log")},
		{path: "in_degree.json", want: filepath.Join(paths.DataDir, "in_degree.json")},
		{path: "/abs/file.json", want: "/abs/file.json"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, m.resolvePath(tt.path))
		})
	}
}

func TestManager_EnsureDirectory(t *testing.T) {
	paths := testPaths(t)
	m := NewManager(paths, nil)

	require.NoError(t, m.EnsureDirectory("exports/nested"))
	assert.DirExists(t, filepath.Join(paths.ExportsDir, "nested"))
}
