package list

import (
	"context"
	"fmt"

	"github.com/slok/sheetgantt/internal/log"
	"github.com/slok/sheetgantt/internal/model"
	"github.com/slok/sheetgantt/internal/storage"
)

// ServiceConfig is the configuration for the list service.
type ServiceConfig struct {
	Repository storage.TaskRepository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.List"})

	return nil
}

// Service lists the report tasks.
type Service struct {
	repo   storage.TaskRepository
	logger log.Logger
}

// NewService creates a new list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the list request parameters.
type Request struct {
	// SkipValidation returns the tasks even if they are not valid for a report.
	SkipValidation bool
}

// Run lists all the tasks in source order.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Task, error) {
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list tasks: %w", err)
	}

	if !req.SkipValidation {
		for i, t := range tasks {
			if err := t.Validate(); err != nil {
				return nil, fmt.Errorf("task %d (%q): %w", i, t.Name, err)
			}
		}
	}

	s.logger.Debugf("found %d tasks", len(tasks))
	return tasks, nil
}
