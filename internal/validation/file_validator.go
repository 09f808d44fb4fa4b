package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"orgpulse/internal/config"
	"orgpulse/internal/files"
)

// FileValidator checks dataset inputs and output directories before the
// loader or exporters touch them.
type FileValidator struct {
	maxFileSize int64
	logger      *slog.Logger
}

// NewFileValidator creates a validator that rejects dataset files larger
// than config.MaxDatasetFileSize.
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		maxFileSize: config.MaxDatasetFileSize,
		logger:      logger.With(slog.String("component", "file_validator")),
	}
}

// WithMaxFileSize overrides the size limit.
func (v *FileValidator) WithMaxFileSize(n int64) *FileValidator {
	v.maxFileSize = n
	return v
}

// ValidateInputDirectory checks that dir exists and is a directory
func (v *FileValidator) ValidateInputDirectory(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		v.logger.Error("Input directory does not exist", slog.String("directory", dir))
		return fmt.Errorf("input directory %s does not exist", dir)
	}
	if err != nil {
		return fmt.Errorf("failed to stat directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		v.logger.Error("Input path is not a directory", slog.String("path", dir))
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}

// ValidateOutputDirectory ensures output directory exists or can be created
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	testFile, err := os.CreateTemp(dir, ".write_test*")
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	testFile.Close()
	os.Remove(testFile.Name())

	v.logger.Debug("Output directory validated", slog.String("directory", dir))
	return nil
}

// ValidateDatasetFile checks that path is a readable JSON or XLSX file
// within the size limit.
func (v *FileValidator) ValidateDatasetFile(path string) error {
	if !files.IsSupported(path) {
		return fmt.Errorf("file %s is not a supported dataset file (extension: %s)", path, filepath.Ext(path))
	}
	if strings.HasPrefix(filepath.Base(path), "~$") {
		return fmt.Errorf("file %s is a temporary Excel file", path)
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file %s does not exist", path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	if v.maxFileSize > 0 && info.Size() > v.maxFileSize {
		v.logger.Error("Dataset file too large",
			slog.String("file", path),
			slog.Int64("size", info.Size()),
			slog.Int64("limit", v.maxFileSize))
		return fmt.Errorf("file %s is %d bytes, limit is %d", path, info.Size(), v.maxFileSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("file %s is not readable: %w", path, err)
	}
	f.Close()

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateDataset validates every file set in ds.
func (v *FileValidator) ValidateDataset(ds files.DatasetFiles) error {
	for _, path := range []string{ds.Profiles, ds.CheckEvents, ds.InternalInteractions, ds.AllInteractions, ds.InDegree} {
		if path == "" {
			continue
		}
		if err := v.ValidateDatasetFile(path); err != nil {
			return err
		}
	}
	return nil
}
