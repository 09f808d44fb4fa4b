package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"orgpulse/internal/config"
	"orgpulse/internal/dataprocessing"
	"orgpulse/internal/exporter"
	"orgpulse/internal/files"
	"orgpulse/internal/infrastructure"
	"orgpulse/internal/services"
	"orgpulse/internal/validation"
	api "orgpulse/pkg/contracts/api/v1"
	"orgpulse/pkg/contracts/domain"
)

const formatJSON = "json"

// options holds the parsed command line.
type options struct {
	dataDir    string
	outDir     string
	format     string
	department string
}

// job is one output file.
type job struct {
	chart      string
	department domain.Department
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	if err := run(ctx, cfg, os.Args[1:], os.Stdout, logger); err != nil {
		logger.Error("chartgen failed", slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, "chartgen:", err)
		os.Exit(1)
	}
}

func parseFlags(cfg *config.Config, args []string) (options, error) {
	fs := flag.NewFlagSet("chartgen", flag.ContinueOnError)
	var opts options
	fs.StringVar(&opts.dataDir, "data", cfg.Paths.DataDir, "dataset directory")
	fs.StringVar(&opts.outDir, "out", cfg.Paths.ExportsDir, "output directory")
	fs.StringVar(&opts.format, "format", formatJSON, "output format: json, csv or xlsx")
	fs.StringVar(&opts.department, "department", "", "only build this department (default: all)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch opts.format {
	case formatJSON, exporter.FormatCSV, exporter.FormatXLSX:
	default:
		return opts, fmt.Errorf("%w: %q", exporter.ErrUnsupportedFormat, opts.format)
	}
	return opts, nil
}

func run(ctx context.Context, cfg *config.Config, args []string, stdout io.Writer, logger *slog.Logger) error {
	opts, err := parseFlags(cfg, args)
	if err != nil {
		return err
	}
	ctx = infrastructure.EnsureTraceID(ctx)

	departments := domain.DepartmentOrder
	if opts.department != "" {
		dept, err := domain.ParseDepartment(opts.department)
		if err != nil {
			return fmt.Errorf("%w: %q", services.ErrDepartmentNotFound, opts.department)
		}
		departments = []domain.Department{dept}
	}

	analytics, err := dataprocessing.OptionsFromConfig(cfg.Analytics)
	if err != nil {
		return err
	}

	paths, err := config.ResolvePaths(cfg.Paths)
	if err != nil {
		return err
	}
	outDir, err := filepath.Abs(opts.outDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory: %w", err)
	}

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateInputDirectory(opts.dataDir); err != nil {
		return err
	}
	if err := validator.ValidateOutputDirectory(outDir); err != nil {
		return err
	}

	svc := services.NewChartService(analytics, dataprocessing.NewLoader(analytics.Location, logger), nil, logger)

	start := time.Now()
	if err := svc.LoadDirectory(ctx, opts.dataDir); err != nil {
		return err
	}

	jobs := []job{{chart: api.ChartHeatmap}}
	for _, dept := range departments {
		jobs = append(jobs,
			job{chart: api.ChartHistogram, department: dept},
			job{chart: api.ChartGraph, department: dept})
	}

	manager := files.NewManager(paths, logger)
	written := make([]string, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			name := exporter.FileName(j.chart, string(j.department), opts.format)
			target := filepath.Join(outDir, name)
			if err := manager.WriteStream(target, func(w io.Writer) error {
				return writeChart(gctx, svc, w, j, opts.format)
			}); err != nil {
				return err
			}
			written[i] = target
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, path := range written {
		fmt.Fprintln(stdout, path)
	}
	logger.Info("Charts generated",
		slog.Int("files", len(written)),
		slog.String("format", opts.format),
		slog.String("out", outDir),
		slog.Duration("duration", time.Since(start)))
	return nil
}

func writeChart(ctx context.Context, svc *services.ChartService, w io.Writer, j job, format string) error {
	if format != formatJSON {
		return svc.Export(ctx, w, api.ExportRequest{
			Chart:      j.chart,
			Department: string(j.department),
			Format:     format,
		})
	}

	var (
		payload interface{}
		err     error
	)
	switch j.chart {
	case api.ChartHeatmap:
		payload, err = svc.Heatmap(ctx)
	case api.ChartHistogram:
		payload, err = svc.BarChart(ctx, string(j.department))
	case api.ChartGraph:
		payload, err = svc.Graph(ctx, string(j.department))
	default:
		err = fmt.Errorf("%w: %q", services.ErrUnknownChart, j.chart)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
