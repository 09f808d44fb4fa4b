package dataprocessing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"orgpulse/internal/files"
	"orgpulse/pkg/contracts/domain"
)

// Dataset is the complete set of records the charts are built from.
type Dataset struct {
	Profiles             []domain.EmployeeProfile
	CheckEvents          []domain.CheckEvent
	InternalInteractions []domain.InteractionEdge
	AllInteractions      []domain.InteractionEdge
	InDegree             []domain.InDegreeRecord
	LoadedAt             time.Time
}

// GraphInput returns the records consumed by BuildGraph.
func (d *Dataset) GraphInput() GraphInput {
	return GraphInput{
		Internal: d.InternalInteractions,
		InDegree: d.InDegree,
	}
}

// Loader reads dataset files from disk.
type Loader struct {
	location *time.Location
	logger   *slog.Logger
}

// NewLoader creates a loader that reads zone-less timestamps in loc.
func NewLoader(loc *time.Location, logger *slog.Logger) *Loader {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{location: loc, logger: logger}
}

// Load reads every file in ds. Optional interaction files that are not
// set are left empty.
func (l *Loader) Load(ctx context.Context, ds files.DatasetFiles) (*Dataset, error) {
	var (
		dataset Dataset
		err     error
	)

	steps := []struct {
		kind string
		path string
		load func(string) error
	}{
		{files.KindProfiles, ds.Profiles, func(p string) error {
			dataset.Profiles, err = l.LoadProfiles(p)
			return err
		}},
		{files.KindCheckEvents, ds.CheckEvents, func(p string) error {
			dataset.CheckEvents, err = l.LoadCheckEvents(p)
			return err
		}},
		{files.KindInternalInteractions, ds.InternalInteractions, func(p string) error {
			dataset.InternalInteractions, err = l.LoadInteractions(p)
			return err
		}},
		{files.KindAllInteractions, ds.AllInteractions, func(p string) error {
			dataset.AllInteractions, err = l.LoadInteractions(p)
			return err
		}},
		{files.KindInDegree, ds.InDegree, func(p string) error {
			dataset.InDegree, err = l.LoadInDegree(p)
			return err
		}},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if step.path == "" {
			continue
		}
		start := time.Now()
		if err := step.load(step.path); err != nil {
			return nil, fmt.Errorf("load %s from %s: %w", step.kind, step.path, err)
		}
		l.logger.Debug("Loaded dataset file",
			slog.String("kind", step.kind),
			slog.String("path", step.path),
			slog.Duration("duration", time.Since(start)))
	}

	dataset.LoadedAt = time.Now()
	l.logger.Info("Dataset loaded",
		slog.String("dir", ds.Dir),
		slog.Int("profiles", len(dataset.Profiles)),
		slog.Int("check_events", len(dataset.CheckEvents)),
		slog.Int("internal_interactions", len(dataset.InternalInteractions)),
		slog.Int("all_interactions", len(dataset.AllInteractions)),
		slog.Int("in_degree", len(dataset.InDegree)))

	return &dataset, nil
}

// LoadProfiles reads employee profiles from a JSON or XLSX file.
func (l *Loader) LoadProfiles(path string) ([]domain.EmployeeProfile, error) {
	if isWorkbook(path) {
		return ParseProfilesSheet(path)
	}
	var profiles []domain.EmployeeProfile
	if err := decodeJSONFile(path, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// LoadInteractions reads interaction edges from a JSON or XLSX file.
func (l *Loader) LoadInteractions(path string) ([]domain.InteractionEdge, error) {
	if isWorkbook(path) {
		return ParseInteractionsSheet(path)
	}
	var edges []domain.InteractionEdge
	if err := decodeJSONFile(path, &edges); err != nil {
		return nil, err
	}
	return edges, nil
}

// LoadInDegree reads in-degree records from a JSON or XLSX file.
func (l *Loader) LoadInDegree(path string) ([]domain.InDegreeRecord, error) {
	if isWorkbook(path) {
		return ParseInDegreeSheet(path)
	}
	var records []domain.InDegreeRecord
	if err := decodeJSONFile(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// checkEventRecord mirrors the on-disk check event. Punches may be
// strings, epoch milliseconds or null.
type checkEventRecord struct {
	ID       domain.EmployeeID `json:"id"`
	Day      string            `json:"day"`
	Checkin  json.RawMessage   `json:"checkin"`
	Checkout json.RawMessage   `json:"checkout"`
}

// LoadCheckEvents reads check events from a JSON or XLSX file.
// Punches that cannot be parsed are dropped and counted in a warning.
func (l *Loader) LoadCheckEvents(path string) ([]domain.CheckEvent, error) {
	if isWorkbook(path) {
		events, malformed, err := ParseCheckEventsSheet(path, l.location)
		l.warnMalformed(path, malformed)
		return events, err
	}

	var records []checkEventRecord
	if err := decodeJSONFile(path, &records); err != nil {
		return nil, err
	}

	malformed := 0
	events := make([]domain.CheckEvent, 0, len(records))
	for _, rec := range records {
		ev := domain.CheckEvent{ID: rec.ID, Day: rec.Day}
		var bad bool
		ev.Checkin, bad = l.punch(rec.Checkin)
		if bad {
			malformed++
		}
		ev.Checkout, bad = l.punch(rec.Checkout)
		if bad {
			malformed++
		}
		events = append(events, ev)
	}

	l.warnMalformed(path, malformed)
	return events, nil
}

// punch decodes one raw punch. bad reports a value that was present but
// unreadable.
func (l *Loader) punch(raw json.RawMessage) (t *time.Time, bad bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		parsed, ok, err := ParseTimestamp(s, l.location)
		if err != nil {
			return nil, true
		}
		if !ok {
			return nil, false
		}
		return &parsed, false
	}

	var ms int64
	if err := json.Unmarshal(raw, &ms); err == nil {
		parsed := time.UnixMilli(ms).In(l.location)
		return &parsed, false
	}

	return nil, true
}

func (l *Loader) warnMalformed(path string, count int) {
	if count > 0 {
		l.logger.Warn("Dropped unreadable punch timestamps",
			slog.String("path", path),
			slog.Int("count", count))
	}
}

func decodeJSONFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

func isWorkbook(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}
