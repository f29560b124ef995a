package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/sheetgantt/internal/log"
	"github.com/slok/sheetgantt/internal/storage"
	storageio "github.com/slok/sheetgantt/internal/storage/io"
	"github.com/slok/sheetgantt/internal/storage/memory"
	"github.com/slok/sheetgantt/internal/storage/sqlite"
)

// taskSource selects where the report tasks are loaded from.
type taskSource struct {
	file string
	db   string
}

func (s *taskSource) registerFlags(cmd *kingpin.CmdClause) {
	cmd.Flag("tasks-file", "YAML file with the report tasks (defaults to the built-in tasks).").StringVar(&s.file)
	cmd.Flag("tasks-db", "SQLite database with a tasks table, opened read-only (defaults to the built-in tasks).").StringVar(&s.db)
}

// newRepository returns the task repository for the selected source and a close function.
func (s taskSource) newRepository(ctx context.Context, logger log.Logger) (storage.TaskRepository, func() error, error) {
	noClose := func() error { return nil }

	switch {
	case s.file != "" && s.db != "":
		return nil, noClose, fmt.Errorf("tasks file and tasks db can't be used at the same time")

	case s.file != "":
		abs, err := filepath.Abs(s.file)
		if err != nil {
			return nil, noClose, fmt.Errorf("invalid tasks file path: %w", err)
		}

		repo, err := storageio.NewTaskYAMLRepository(storageio.TaskYAMLRepositoryConfig{
			FS:     os.DirFS(filepath.Dir(abs)),
			Path:   filepath.Base(abs),
			Logger: logger,
		})
		if err != nil {
			return nil, noClose, fmt.Errorf("could not create YAML repository: %w", err)
		}
		return repo, noClose, nil

	case s.db != "":
		repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
			DBPath: s.db,
			Logger: logger,
		})
		if err != nil {
			return nil, noClose, fmt.Errorf("could not create SQLite repository: %w", err)
		}
		return repo, repo.Close, nil

	default:
		repo, err := memory.NewRepository(memory.RepositoryConfig{Logger: logger})
		if err != nil {
			return nil, noClose, fmt.Errorf("could not create memory repository: %w", err)
		}
		return repo, noClose, nil
	}
}
