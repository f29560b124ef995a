package io

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/slok/sheetgantt/internal/log"
	"github.com/slok/sheetgantt/internal/model"
)

// TaskYAMLRepositoryConfig is the configuration for the YAML task repository.
type TaskYAMLRepositoryConfig struct {
	FS     fs.FS
	Path   string
	Logger log.Logger
}

func (c *TaskYAMLRepositoryConfig) defaults() error {
	if c.FS == nil {
		return fmt.Errorf("filesystem is required")
	}

	if c.Path == "" {
		return fmt.Errorf("path is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.TaskYAML"})
	return nil
}

// TaskYAMLRepository loads report tasks from a YAML file.
type TaskYAMLRepository struct {
	fs     fs.FS
	path   string
	logger log.Logger
}

// NewTaskYAMLRepository creates a new YAML task repository.
func NewTaskYAMLRepository(cfg TaskYAMLRepositoryConfig) (*TaskYAMLRepository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &TaskYAMLRepository{
		fs:     cfg.FS,
		path:   cfg.Path,
		logger: cfg.Logger,
	}, nil
}

// ListTasks loads the tasks from the YAML file in the same order they are declared.
func (r *TaskYAMLRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	data, err := fs.ReadFile(r.fs, r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading tasks file %s: %w", r.path, model.ErrNotFound)
		}
		return nil, fmt.Errorf("reading tasks file: %w", err)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var file TasksFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	tasks := make([]model.Task, 0, len(file.Tasks))
	for i, t := range file.Tasks {
		task, err := t.toModel()
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		tasks = append(tasks, task)
	}

	r.logger.Debugf("Loaded %d tasks from %s", len(tasks), r.path)
	return tasks, nil
}

// TasksFile represents the YAML structure of a tasks file.
type TasksFile struct {
	Tasks []TaskConfig `yaml:"tasks"`
}

// TaskConfig represents the YAML structure of a single task.
type TaskConfig struct {
	Name  string `yaml:"name"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	// Completion accepts plain numbers (`70`) and percentages (`"70%"`).
	Completion string `yaml:"completion"`
}

func (c TaskConfig) toModel() (model.Task, error) {
	if c.Name == "" {
		return model.Task{}, fmt.Errorf("name is required: %w", model.ErrNotValid)
	}

	start, err := model.ParseDate(c.Start)
	if err != nil {
		return model.Task{}, fmt.Errorf("start: %w", err)
	}

	end, err := model.ParseDate(c.End)
	if err != nil {
		return model.Task{}, fmt.Errorf("end: %w", err)
	}

	completion, err := parseCompletion(c.Completion)
	if err != nil {
		return model.Task{}, fmt.Errorf("completion: %w", err)
	}

	return model.Task{
		Name:       c.Name,
		Start:      start,
		End:        end,
		Completion: completion,
	}, nil
}

func parseCompletion(s string) (int, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return 0, nil
	}

	// Completions are always decimal, leading zeros would be read as octal.
	if d := strings.TrimLeft(s, "0"); d != s {
		if d == "" {
			d = "0"
		}
		s = d
	}

	v, err := cast.ToIntE(s)
	if err != nil {
		return 0, fmt.Errorf("invalid completion %q: %w", s, model.ErrNotValid)
	}

	return v, nil
}
