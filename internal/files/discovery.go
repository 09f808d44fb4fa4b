package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Dataset kinds recognized in a data directory.
const (
	KindProfiles             = "profiles"
	KindCheckEvents          = "check_events"
	KindInternalInteractions = "internal_interactions"
	KindAllInteractions      = "all_interactions"
	KindInDegree             = "in_degree"
)

// datasetNames lists the accepted base names per kind, most preferred first.
var datasetNames = map[string][]string{
	KindProfiles:             {"employee_profile", "employee_profiles", "profiles"},
	KindCheckEvents:          {"checking_clean", "checking", "attendance"},
	KindInternalInteractions: {"internal_interactions", "internal_interaction"},
	KindAllInteractions:      {"all_interactions", "interactions"},
	KindInDegree:             {"in_degree", "indegree", "in_degree_stats"},
}

// supportedExtensions are tried in order for every base name.
var supportedExtensions = []string{".json", ".xlsx"}

// DatasetFiles holds the resolved source file of every dataset kind.
// Optional kinds are left empty when no file was found.
type DatasetFiles struct {
	Dir                  string
	Profiles             string
	CheckEvents          string
	InternalInteractions string
	AllInteractions      string
	InDegree             string
}

// Missing returns the required kinds that were not found.
func (f DatasetFiles) Missing() []string {
	var missing []string
	if f.Profiles == "" {
		missing = append(missing, KindProfiles)
	}
	if f.CheckEvents == "" {
		missing = append(missing, KindCheckEvents)
	}
	if f.InternalInteractions == "" && f.AllInteractions == "" {
		missing = append(missing, KindInternalInteractions)
	}
	if f.InDegree == "" {
		missing = append(missing, KindInDegree)
	}
	return missing
}

// Discovery provides file discovery operations
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// FindDataset locates the dataset files in dir. It fails when a required
// kind is absent.
func (d *Discovery) FindDataset(dir string) (DatasetFiles, error) {
	fullPath := d.resolve(dir)

	entries, err := d.FindDataFiles(fullPath)
	if err != nil {
		return DatasetFiles{}, err
	}

	byName := make(map[string]FileInfo, len(entries))
	for _, entry := range entries {
		byName[strings.ToLower(entry.Name)] = entry
	}

	lookup := func(kind string) string {
		for _, base := range datasetNames[kind] {
			for _, ext := range supportedExtensions {
				if f, ok := byName[base+ext]; ok {
					return f.Path
				}
			}
		}
		return ""
	}

	files := DatasetFiles{
		Dir:                  fullPath,
		Profiles:             lookup(KindProfiles),
		CheckEvents:          lookup(KindCheckEvents),
		InternalInteractions: lookup(KindInternalInteractions),
		AllInteractions:      lookup(KindAllInteractions),
		InDegree:             lookup(KindInDegree),
	}

	if missing := files.Missing(); len(missing) > 0 {
		return files, fmt.Errorf("dataset in %s is incomplete, missing %s", fullPath, strings.Join(missing, ", "))
	}
	return files, nil
}

// FindDataFiles lists the JSON and Excel files in dir sorted by name.
func (d *Discovery) FindDataFiles(dir string) ([]FileInfo, error) {
	fullPath := d.resolve(dir)

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !IsSupported(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Path:    filepath.Join(fullPath, entry.Name()),
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// GetLatestModTime returns the most recent modification time across files.
func GetLatestModTime(files []FileInfo) (time.Time, bool) {
	if len(files) == 0 {
		return time.Time{}, false
	}

	latest := files[0].ModTime
	for _, file := range files[1:] {
		if file.ModTime.After(latest) {
			latest = file.ModTime
		}
	}

	return latest, true
}

// IsSupported reports whether name has a loadable extension.
func IsSupported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, supported := range supportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

func (d *Discovery) resolve(dir string) string {
	if filepath.IsAbs(dir) || d.basePath == "" {
		return dir
	}
	return filepath.Join(d.basePath, dir)
}
