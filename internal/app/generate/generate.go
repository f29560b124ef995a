package generate

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/slok/sheetgantt/internal/chart"
	"github.com/slok/sheetgantt/internal/conventions"
	"github.com/slok/sheetgantt/internal/log"
	"github.com/slok/sheetgantt/internal/model"
	"github.com/slok/sheetgantt/internal/sheet"
	"github.com/slok/sheetgantt/internal/storage"
)

// DefaultOutputPath is the report file used when none is requested.
const DefaultOutputPath = conventions.DefaultReportFile

// ServiceConfig is the configuration for the generate service.
type ServiceConfig struct {
	Repository storage.TaskRepository
	Renderer   chart.Renderer
	Logger     log.Logger
	// TimeNowFunc is used to get the report creation time (for testing).
	TimeNowFunc func() time.Time
	// IDFunc is used to get new report identifiers (for testing).
	IDFunc func() string
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.Renderer == nil {
		return fmt.Errorf("renderer is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Generate"})

	if c.TimeNowFunc == nil {
		c.TimeNowFunc = time.Now
	}

	if c.IDFunc == nil {
		c.IDFunc = func() string { return ulid.Make().String() }
	}

	return nil
}

// Service generates the spreadsheet report with the task table and Gantt chart.
type Service struct {
	repo     storage.TaskRepository
	renderer chart.Renderer
	logger   log.Logger
	timeNow  func() time.Time
	newID    func() string
}

// NewService creates a new generate service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:     cfg.Repository,
		renderer: cfg.Renderer,
		logger:   cfg.Logger,
		timeNow:  cfg.TimeNowFunc,
		newID:    cfg.IDFunc,
	}, nil
}

// Request represents the generate request parameters.
type Request struct {
	// OutputPath is the xlsx file path, defaults to DefaultOutputPath.
	OutputPath string
	// Title is the chart title, defaults to chart.DefaultTitle.
	Title string
	// SheetName defaults to sheet.DefaultSheetName.
	SheetName string
}

func (r *Request) defaults() error {
	if r.OutputPath == "" {
		r.OutputPath = DefaultOutputPath
	}

	if !conventions.IsReportFile(r.OutputPath) {
		return fmt.Errorf("output file must have %s extension: %w", conventions.ReportFileExt, model.ErrNotValid)
	}

	if r.Title == "" {
		r.Title = chart.DefaultTitle
	}

	if r.SheetName == "" {
		r.SheetName = sheet.DefaultSheetName
	}

	return nil
}

// Result is the generated report information.
type Result struct {
	Report    model.Report
	Path      string
	Tasks     []model.Task
	Rows      int
	SizeBytes int64
}

// Run generates the report file.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	if err := req.defaults(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	report := model.Report{
		ID:        s.newID(),
		Title:     req.Title,
		SheetName: req.SheetName,
		CreatedAt: s.timeNow().UTC(),
	}
	ctx = s.logger.SetValuesOnCtx(ctx, log.Kv{"report-id": report.ID})
	logger := s.logger.WithCtxValues(ctx)

	// Data preparation.
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list tasks: %w", err)
	}

	if err := model.ValidateTasks(tasks); err != nil {
		return nil, fmt.Errorf("invalid tasks: %w", err)
	}
	logger.Debugf("Loaded %d tasks", len(tasks))

	// Image rendering.
	img, err := s.renderer.RenderGantt(ctx, report.Title, tasks)
	if err != nil {
		return nil, fmt.Errorf("could not render chart: %w", err)
	}
	logger.Debugf("Chart rendered (%d bytes)", len(img))

	// Document assembly.
	wb, err := sheet.NewWorkbook(sheet.WorkbookConfig{
		SheetName: report.SheetName,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create workbook: %w", err)
	}
	defer func() {
		if err := wb.Close(); err != nil {
			logger.Warningf("Could not close workbook: %s", err)
		}
	}()

	if err := wb.WriteTasks(tasks); err != nil {
		return nil, fmt.Errorf("could not write tasks: %w", err)
	}

	if err := wb.InsertChart(img, report.Title); err != nil {
		return nil, fmt.Errorf("could not insert chart: %w", err)
	}

	if err := wb.SetProperties(report); err != nil {
		return nil, err
	}

	if err := wb.SaveAs(req.OutputPath); err != nil {
		return nil, err
	}

	info, err := os.Stat(req.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("could not stat report file: %w", err)
	}

	logger.Infof("Report generated at %s", req.OutputPath)

	return &Result{
		Report:    report,
		Path:      req.OutputPath,
		Tasks:     tasks,
		Rows:      len(tasks) + 1,
		SizeBytes: info.Size(),
	}, nil
}
