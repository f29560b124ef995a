package lib

import (
	"context"
	"fmt"
	"time"

	"github.com/slok/sheetgantt/internal/app/generate"
	"github.com/slok/sheetgantt/internal/chart"
	"github.com/slok/sheetgantt/internal/log"
	"github.com/slok/sheetgantt/internal/model"
	"github.com/slok/sheetgantt/internal/storage/memory"
)

// ErrNotValid is returned when the report input is not valid.
var ErrNotValid = model.ErrNotValid

// Config configures the SDK client.
//
// All fields are optional, an empty Config{} renders 80 DPI charts with the
// default font and doesn't log.
type Config struct {
	// Logger receives structured log output from the SDK.
	// Default: noop (silent). See the log sub-package for the interface.
	Logger log.Logger
	// FontData is an optional TrueType/OpenType font used on the chart texts.
	FontData []byte
	// DPI is the chart image resolution.
	// Default: 80.
	DPI int
}

func (c *Config) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}

	if c.DPI < 0 {
		return fmt.Errorf("dpi must be positive: %w", ErrNotValid)
	}

	return nil
}

// Client is the main SDK entry point to generate reports.
type Client struct {
	renderer chart.Renderer
	logger   log.Logger
}

// New creates a new SDK client.
func New(cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	renderer, err := chart.NewGanttRenderer(chart.GanttRendererConfig{
		DPI:      cfg.DPI,
		FontData: cfg.FontData,
		Logger:   cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create chart renderer: %w", err)
	}

	return &Client{
		renderer: renderer,
		logger:   cfg.Logger,
	}, nil
}

// Task is a project task of the report.
type Task struct {
	// Name is the task name shown on the table and the chart.
	Name string
	// Start is the first task day in YYYY-MM-DD format.
	Start string
	// End is the last task day in YYYY-MM-DD format.
	End string
	// Completion is the task completion percentage (0-100).
	Completion int
}

// DefaultTasks returns the built-in project tasks.
func DefaultTasks() []Task {
	tasks := memory.DefaultTasks()
	res := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, Task{
			Name:       t.Name,
			Start:      model.FormatDate(t.Start),
			End:        model.FormatDate(t.End),
			Completion: t.Completion,
		})
	}
	return res
}

func (t Task) toModel() (model.Task, error) {
	start, err := model.ParseDate(t.Start)
	if err != nil {
		return model.Task{}, fmt.Errorf("start: %w", err)
	}

	end, err := model.ParseDate(t.End)
	if err != nil {
		return model.Task{}, fmt.Errorf("end: %w", err)
	}

	return model.Task{
		Name:       t.Name,
		Start:      start,
		End:        end,
		Completion: t.Completion,
	}, nil
}

// GenerateOpts are the options of a report generation.
type GenerateOpts struct {
	// Tasks are the report tasks, in the order they will be shown.
	// Default: [DefaultTasks].
	Tasks []Task
	// OutputPath is the xlsx file path.
	// Default: "project-progress-gantt.xlsx".
	OutputPath string
	// Title is the chart title.
	Title string
	// SheetName is the report sheet name.
	SheetName string
}

// Report is the information of a generated report.
type Report struct {
	// ID is the unique report identifier (ULID), also set on the document properties.
	ID string
	// Path is the written spreadsheet path.
	Path string
	// Tasks is the number of task rows.
	Tasks int
	// SizeBytes is the spreadsheet file size.
	SizeBytes int64
	// CreatedAt is when the report was generated.
	CreatedAt time.Time
}

// Generate writes the report spreadsheet.
//
// Returns [ErrNotValid] if the tasks are not valid.
func (c *Client) Generate(ctx context.Context, opts GenerateOpts) (*Report, error) {
	repoCfg := memory.RepositoryConfig{Logger: c.logger}
	if opts.Tasks != nil {
		repoCfg.Tasks = make([]model.Task, 0, len(opts.Tasks))
		for i, t := range opts.Tasks {
			mt, err := t.toModel()
			if err != nil {
				return nil, fmt.Errorf("task %d: %w", i, err)
			}
			repoCfg.Tasks = append(repoCfg.Tasks, mt)
		}
	}

	repo, err := memory.NewRepository(repoCfg)
	if err != nil {
		return nil, fmt.Errorf("could not create repository: %w", err)
	}

	svc, err := generate.NewService(generate.ServiceConfig{
		Repository: repo,
		Renderer:   c.renderer,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	res, err := svc.Run(ctx, generate.Request{
		OutputPath: opts.OutputPath,
		Title:      opts.Title,
		SheetName:  opts.SheetName,
	})
	if err != nil {
		return nil, err
	}

	return &Report{
		ID:        res.Report.ID,
		Path:      res.Path,
		Tasks:     len(res.Tasks),
		SizeBytes: res.SizeBytes,
		CreatedAt: res.Report.CreatedAt,
	}, nil
}
