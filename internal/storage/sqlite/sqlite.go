package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "modernc.org/sqlite"

	"github.com/slok/sheetgantt/internal/log"
	"github.com/slok/sheetgantt/internal/model"
)

// RepositoryConfig is the configuration for the SQLite task repository.
type RepositoryConfig struct {
	DBPath string
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.SQLite"})
	return nil
}

// Repository is a read-only SQLite implementation of storage.TaskRepository.
//
// The database is owned by some other tool, the repository only expects a
// `tasks` table with `name`, `start_date`, `end_date` (YYYY-MM-DD) and
// `completion` columns.
type Repository struct {
	db     *sql.DB
	logger log.Logger
}

// NewRepository opens a SQLite database in read-only mode.
func NewRepository(ctx context.Context, cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Read-only mode doesn't create missing files, but the error SQLite gives is not clear.
	if _, err := os.Stat(cfg.DBPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("database %s: %w", cfg.DBPath, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not access database %s: %w", cfg.DBPath, err)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(5000)", cfg.DBPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	cfg.Logger.Debugf("SQLite task repository opened at %s", cfg.DBPath)

	return &Repository{db: db, logger: cfg.Logger}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error { return r.db.Close() }

// ListTasks returns all the tasks in table insertion order.
func (r *Repository) ListTasks(ctx context.Context) ([]model.Task, error) {
	query := `
		SELECT name, start_date, end_date, COALESCE(completion, 0)
		FROM tasks
		ORDER BY rowid ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var (
			t          model.Task
			start, end string
		)
		if err := rows.Scan(&t.Name, &start, &end, &t.Completion); err != nil {
			return nil, fmt.Errorf("could not scan task: %w", err)
		}

		if t.Start, err = model.ParseDate(start); err != nil {
			return nil, fmt.Errorf("task %q start: %w", t.Name, err)
		}
		if t.End, err = model.ParseDate(end); err != nil {
			return nil, fmt.Errorf("task %q end: %w", t.Name, err)
		}

		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate tasks: %w", err)
	}

	r.logger.Debugf("Listed %d tasks from SQLite", len(tasks))
	return tasks, nil
}
