package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"orgpulse/internal/dataprocessing"
	"orgpulse/internal/exporter"
	"orgpulse/internal/files"
	"orgpulse/internal/infrastructure"
	"orgpulse/internal/validation"
	api "orgpulse/pkg/contracts/api/v1"
	"orgpulse/pkg/contracts/domain"
)

// DatasetLoader reads a discovered dataset from disk.
type DatasetLoader interface {
	Load(ctx context.Context, ds files.DatasetFiles) (*dataprocessing.Dataset, error)
}

// datasetState is replaced as a whole; nothing inside it is mutated.
type datasetState struct {
	dataset *dataprocessing.Dataset
	index   *dataprocessing.DepartmentIndex
	source  string
}

// DatasetInfo summarizes the loaded dataset.
type DatasetInfo struct {
	Source       string    `json:"source"`
	LoadedAt     time.Time `json:"loaded_at"`
	Employees    int       `json:"employees"`
	CheckEvents  int       `json:"check_events"`
	Interactions int       `json:"interactions"`
	InDegree     int       `json:"in_degree"`
}

// ChartService builds chart payloads from the current dataset
type ChartService struct {
	mu    sync.RWMutex
	state *datasetState

	opts      dataprocessing.Options
	loader    DatasetLoader
	discovery *files.Discovery
	validator *validation.FileValidator
	tracer    trace.Tracer
	metrics   *infrastructure.BusinessMetrics
	logger    *slog.Logger
}

// NewChartService creates a chart service. providers may be nil, in which
// case the global tracer is used and no metrics are recorded.
func NewChartService(opts dataprocessing.Options, loader DatasetLoader, providers *infrastructure.OTelProviders, logger *slog.Logger) *ChartService {
	if logger == nil {
		logger = slog.Default()
	}

	s := &ChartService{
		opts:      opts,
		loader:    loader,
		discovery: files.NewDiscovery(""),
		validator: validation.NewFileValidator(logger),
		tracer:    otel.Tracer(infrastructure.MeterName),
		logger:    infrastructure.WithComponent(logger, "chart_service"),
	}
	if providers != nil {
		if providers.Tracer != nil {
			s.tracer = providers.Tracer
		}
		s.metrics = providers.Metrics
	}
	return s
}

// SetDataset installs ds and builds its department index.
func (s *ChartService) SetDataset(ds *dataprocessing.Dataset, source string) {
	state := &datasetState{
		dataset: ds,
		index:   dataprocessing.NewDepartmentIndex(ds.Profiles),
		source:  source,
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	s.logger.Info("Dataset installed",
		slog.String("source", source),
		slog.Int("employees", state.index.Len()),
		slog.Int("check_events", len(ds.CheckEvents)))
}

// LoadDirectory discovers, loads and installs the dataset in dir.
func (s *ChartService) LoadDirectory(ctx context.Context, dir string) error {
	ctx, span := s.tracer.Start(ctx, "ChartService.LoadDirectory",
		trace.WithAttributes(attribute.String("dataset.dir", dir)))
	defer span.End()

	start := time.Now()

	dsFiles, err := s.discovery.FindDataset(dir)
	if err != nil {
		infrastructure.RecordError(ctx, err)
		infrastructure.RecordDatasetLoad(ctx, s.metrics, nil, time.Since(start), err)
		return fmt.Errorf("discover dataset: %w", err)
	}
	if err := s.validator.ValidateDataset(dsFiles); err != nil {
		infrastructure.RecordError(ctx, err)
		infrastructure.RecordDatasetLoad(ctx, s.metrics, nil, time.Since(start), err)
		return fmt.Errorf("validate dataset: %w", err)
	}

	ds, err := s.loader.Load(ctx, dsFiles)
	if err != nil {
		infrastructure.RecordError(ctx, err)
		infrastructure.RecordDatasetLoad(ctx, s.metrics, nil, time.Since(start), err)
		return err
	}

	infrastructure.RecordDatasetLoad(ctx, s.metrics, map[string]int{
		files.KindProfiles:             len(ds.Profiles),
		files.KindCheckEvents:          len(ds.CheckEvents),
		files.KindInternalInteractions: len(ds.InternalInteractions),
		files.KindAllInteractions:      len(ds.AllInteractions),
		files.KindInDegree:             len(ds.InDegree),
	}, time.Since(start), nil)

	s.SetDataset(ds, dsFiles.Dir)
	return nil
}

// Ready reports whether a dataset is installed.
func (s *ChartService) Ready() bool {
	_, err := s.snapshot()
	return err == nil
}

// Info describes the installed dataset.
func (s *ChartService) Info(ctx context.Context) (DatasetInfo, error) {
	st, err := s.snapshot()
	if err != nil {
		return DatasetInfo{}, err
	}

	return DatasetInfo{
		Source:       st.source,
		LoadedAt:     st.dataset.LoadedAt,
		Employees:    st.index.Len(),
		CheckEvents:  len(st.dataset.CheckEvents),
		Interactions: len(st.dataset.InternalInteractions),
		InDegree:     len(st.dataset.InDegree),
	}, nil
}

func (s *ChartService) snapshot() (*datasetState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return nil, ErrDatasetNotLoaded
	}
	return s.state, nil
}

func resolveDepartment(name string) (domain.Department, error) {
	dept, err := domain.ParseDepartment(name)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrDepartmentNotFound, name)
	}
	return dept, nil
}

// Departments lists the fixed departments with their member counts.
func (s *ChartService) Departments(ctx context.Context) ([]domain.DepartmentSummary, error) {
	st, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	out := make([]domain.DepartmentSummary, 0, len(domain.DepartmentOrder))
	for _, dept := range domain.DepartmentOrder {
		out = append(out, domain.DepartmentSummary{
			Department: dept,
			Label:      dept.Label(),
			Members:    len(st.index.Members(dept)),
		})
	}
	return out, nil
}

// BarChart builds the check-in/check-out histogram of a department.
func (s *ChartService) BarChart(ctx context.Context, department string) (domain.BarChartResult, error) {
	dept, err := resolveDepartment(department)
	if err != nil {
		return domain.BarChartResult{}, err
	}
	st, err := s.snapshot()
	if err != nil {
		return domain.BarChartResult{}, err
	}

	var res domain.BarChartResult
	err = s.build(ctx, "histogram", dept, func() {
		res = dataprocessing.BuildBarChart(st.index, st.dataset.CheckEvents, dept, s.opts)
	})
	return res, err
}

// Heatmap builds the organization-wide attendance heatmap.
func (s *ChartService) Heatmap(ctx context.Context) (domain.HeatmapResult, error) {
	st, err := s.snapshot()
	if err != nil {
		return domain.HeatmapResult{}, err
	}

	var res domain.HeatmapResult
	err = s.build(ctx, "heatmap", "", func() {
		res = dataprocessing.BuildHeatmap(st.index, st.dataset.CheckEvents, s.opts)
	})
	return res, err
}

// Graph builds the social graph of a department.
func (s *ChartService) Graph(ctx context.Context, department string) (domain.GraphResult, error) {
	dept, err := resolveDepartment(department)
	if err != nil {
		return domain.GraphResult{}, err
	}
	st, err := s.snapshot()
	if err != nil {
		return domain.GraphResult{}, err
	}

	var res domain.GraphResult
	err = s.build(ctx, "graph", dept, func() {
		res = dataprocessing.BuildGraph(st.dataset.GraphInput(), dept, s.opts)
	})
	return res, err
}

// Dashboard builds every department's histogram and graph plus the
// heatmap, concurrently.
func (s *ChartService) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	st, err := s.snapshot()
	if err != nil {
		return domain.Dashboard{}, err
	}

	ctx, span := s.tracer.Start(ctx, "ChartService.Dashboard")
	defer span.End()

	dash := domain.Dashboard{
		Departments: make([]domain.DepartmentCharts, len(domain.DepartmentOrder)),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.build(gctx, "heatmap", "", func() {
			dash.Heatmap = dataprocessing.BuildHeatmap(st.index, st.dataset.CheckEvents, s.opts)
		})
	})

	for i, dept := range domain.DepartmentOrder {
		i, dept := i, dept
		dash.Departments[i] = domain.DepartmentCharts{Department: dept, Label: dept.Label()}

		g.Go(func() error {
			return s.build(gctx, "histogram", dept, func() {
				dash.Departments[i].Histogram = dataprocessing.BuildBarChart(st.index, st.dataset.CheckEvents, dept, s.opts)
			})
		})
		g.Go(func() error {
			return s.build(gctx, "graph", dept, func() {
				dash.Departments[i].Graph = dataprocessing.BuildGraph(st.dataset.GraphInput(), dept, s.opts)
			})
		})
	}

	if err := g.Wait(); err != nil {
		infrastructure.RecordError(ctx, err)
		return domain.Dashboard{}, err
	}
	return dash, nil
}

// Tables flattens a chart into export tables. department is ignored for
// the heatmap.
func (s *ChartService) Tables(ctx context.Context, chart, department string) ([]exporter.Table, error) {
	switch chart {
	case api.ChartHistogram:
		res, err := s.BarChart(ctx, department)
		if err != nil {
			return nil, err
		}
		return []exporter.Table{exporter.HistogramTable(res)}, nil
	case api.ChartHeatmap:
		res, err := s.Heatmap(ctx)
		if err != nil {
			return nil, err
		}
		return []exporter.Table{exporter.HeatmapTable(res)}, nil
	case api.ChartGraph:
		res, err := s.Graph(ctx, department)
		if err != nil {
			return nil, err
		}
		return exporter.GraphTables(res), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChart, chart)
	}
}

// Export writes a chart to w in the requested format.
func (s *ChartService) Export(ctx context.Context, w io.Writer, req api.ExportRequest) error {
	if _, err := exporter.ContentType(req.Format); err != nil {
		return err
	}

	tables, err := s.Tables(ctx, req.Chart, req.Department)
	if err != nil {
		return err
	}

	if err := exporter.Write(w, req.Format, tables...); err != nil {
		return fmt.Errorf("export %s: %w", req.Chart, err)
	}

	infrastructure.RecordChartExport(ctx, s.metrics, req.Chart, req.Format)
	s.logger.InfoContext(ctx, "Chart exported",
		slog.String("chart", req.Chart),
		slog.String("department", req.Department),
		slog.String("format", req.Format))
	return nil
}

// build runs fn inside a span and records its duration. Builders are pure,
// so cancellation is only checked before they start.
func (s *ChartService) build(ctx context.Context, chart string, dept domain.Department, fn func()) error {
	ctx, span := s.tracer.Start(ctx, "build."+chart,
		trace.WithAttributes(
			attribute.String("chart", chart),
			attribute.String("department", string(dept)),
		))
	defer span.End()

	start := time.Now()
	if err := ctx.Err(); err != nil {
		infrastructure.RecordError(ctx, err)
		infrastructure.RecordChartBuild(ctx, s.metrics, chart, string(dept), time.Since(start), err)
		return err
	}

	fn()

	duration := time.Since(start)
	infrastructure.RecordChartBuild(ctx, s.metrics, chart, string(dept), duration, nil)
	s.logger.DebugContext(ctx, "Chart built",
		slog.String("chart", chart),
		slog.String("department", string(dept)),
		slog.Duration("duration", duration))
	return nil
}
