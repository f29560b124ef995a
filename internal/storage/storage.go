package storage

import (
	"context"

	"github.com/slok/sheetgantt/internal/model"
)

// TaskRepository is the interface for report task sources.
// Tasks are returned in source order.
type TaskRepository interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
}
