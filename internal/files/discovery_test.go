package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("[]"), 0644))
	}
}

func TestNewDiscovery(t *testing.T) {
	discovery := NewDiscovery("/test/base")

	assert.NotNil(t, discovery)
	assert.Equal(t, "/test/base", discovery.basePath)
}

func TestFindDataset(t *testing.T) {
	tests := []struct {
		name        string
		files       []string
		wantErr     bool
		errContains string
		validate    func(*testing.T, string, DatasetFiles)
	}{
		{
			name: "complete json dataset",
			files: []string{
				"employee_profile.json", "checking_clean.json", "internal_interactions.json",
				"all_interactions.json", "in_degree.json", "notes.txt",
			},
			validate: func(t *testing.T, dir string, f DatasetFiles) {
				assert.Equal(t, filepath.Join(dir, "employee_profile.json"), f.Profiles)
				assert.Equal(t, filepath.Join(dir, "checking_clean.json"), f.CheckEvents)
				assert.Equal(t, filepath.Join(dir, "internal_interactions.json"), f.InternalInteractions)
				assert.Equal(t, filepath.Join(dir, "all_interactions.json"), f.AllInteractions)
				assert.Equal(t, filepath.Join(dir, "in_degree.json"), f.InDegree)
			},
		},
		{
			name:  "excel and alternate names",
			files: []string{"Profiles.xlsx", "attendance.xlsx", "interactions.json", "indegree.xlsx"},
			validate: func(t *testing.T, dir string, f DatasetFiles) {
				assert.Equal(t, filepath.Join(dir, "Profiles.xlsx"), f.Profiles)
				assert.Equal(t, filepath.Join(dir, "attendance.xlsx"), f.CheckEvents)
				assert.Empty(t, f.InternalInteractions)
				assert.Equal(t, filepath.Join(dir, "interactions.json"), f.AllInteractions)
				assert.Equal(t, filepath.Join(dir, "indegree.xlsx"), f.InDegree)
			},
		},
		{
			name:  "json preferred over xlsx",
			files: []string{"employee_profile.xlsx", "employee_profile.json", "checking_clean.json", "internal_interactions.json", "in_degree.json"},
			validate: func(t *testing.T, dir string, f DatasetFiles) {
				assert.Equal(t, filepath.Join(dir, "employee_profile.json"), f.Profiles)
			},
		},
		{
			name:        "missing check events and in-degree",
			files:       []string{"employee_profile.json", "internal_interactions.json"},
			wantErr:     true,
			errContains: "check_events, in_degree",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			touch(t, dir, tt.files...)

			got, err := NewDiscovery("").FindDataset(dir)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.validate(t, dir, got)
		})
	}
}

func TestFindDataset_RelativeToBase(t *testing.T) {
	base := t.TempDir()
	dataDir := filepath.Join(base, "data")
	require.NoError(t, os.Mkdir(dataDir, 0755))
	touch(t, dataDir, "employee_profile.json", "checking_clean.json", "all_interactions.json", "in_degree.json")

	got, err := NewDiscovery(base).FindDataset("data")
	require.NoError(t, err)
	assert.Equal(t, dataDir, got.Dir)
}

func TestFindDataFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.json", "a.XLSX", "c.csv", "d.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0755))

	files, err := NewDiscovery("").FindDataFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.XLSX", files[0].Name)
	assert.Equal(t, "b.json", files[1].Name)

	_, err = NewDiscovery("").FindDataFiles(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestGetLatestModTime(t *testing.T) {
	_, ok := GetLatestModTime(nil)
	assert.False(t, ok)

	now := time.Now()
	latest, ok := GetLatestModTime([]FileInfo{
		{Name: "a", ModTime: now.Add(-time.Hour)},
		{Name: "b", ModTime: now},
		{Name: "c", ModTime: now.Add(-2 * time.Hour)},
	})
	require.True(t, ok)
	assert.Equal(t, now, latest)
}
