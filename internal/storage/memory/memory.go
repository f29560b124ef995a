package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/slok/sheetgantt/internal/log"
	"github.com/slok/sheetgantt/internal/model"
)

// DefaultTasks returns the built-in project task set used when no task source is configured.
func DefaultTasks() []model.Task {
	return []model.Task{
		{Name: "Requirements analysis", Start: model.MustParseDate("2023-10-01"), End: model.MustParseDate("2023-10-04"), Completion: 100},
		{Name: "System design", Start: model.MustParseDate("2023-10-05"), End: model.MustParseDate("2023-10-09"), Completion: 100},
		{Name: "Frontend development", Start: model.MustParseDate("2023-10-10"), End: model.MustParseDate("2023-10-24"), Completion: 70},
		{Name: "Backend development", Start: model.MustParseDate("2023-10-12"), End: model.MustParseDate("2023-10-26"), Completion: 50},
		{Name: "Testing", Start: model.MustParseDate("2023-10-25"), End: model.MustParseDate("2023-10-31"), Completion: 30},
		{Name: "Deployment", Start: model.MustParseDate("2023-11-01"), End: model.MustParseDate("2023-11-05"), Completion: 0},
	}
}

// RepositoryConfig is the configuration for the memory repository.
type RepositoryConfig struct {
	// Tasks are the repository tasks, if nil the default tasks will be used.
	Tasks  []model.Task
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Tasks == nil {
		c.Tasks = DefaultTasks()
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// Repository is an in-memory implementation of storage.TaskRepository.
type Repository struct {
	tasks  []model.Task
	mu     sync.RWMutex
	logger log.Logger
}

// NewRepository creates a new memory repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Own a copy so callers can't mutate the repository tasks.
	tasks := make([]model.Task, len(cfg.Tasks))
	copy(tasks, cfg.Tasks)

	return &Repository{
		tasks:  tasks,
		logger: cfg.Logger,
	}, nil
}

// ListTasks returns all the tasks in insertion order.
func (r *Repository) ListTasks(ctx context.Context) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]model.Task, len(r.tasks))
	copy(tasks, r.tasks)

	r.logger.Debugf("Listed %d tasks from memory", len(tasks))
	return tasks, nil
}
