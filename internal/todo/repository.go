// AngelaMos | 2026
// repository.go

package todo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelamos/todoapp/internal/core"
)

// Repository filters every individually-addressed query by both id and
// owner. The two predicates are bound separately and joined with an explicit
// SQL AND so the ownership check can never collapse into the id check.
type Repository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]Todo, error)
	ListAll(ctx context.Context) ([]Todo, error)
	GetByIDForOwner(ctx context.Context, id, ownerID int64) (*Todo, error)
	Create(ctx context.Context, todo *Todo) error
	Update(ctx context.Context, todo *Todo) error
	Delete(ctx context.Context, id, ownerID int64) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) ListByOwner(
	ctx context.Context,
	ownerID int64,
) ([]Todo, error) {
	query := `
		SELECT id, title, description, priority, complete, owner_id
		FROM todos
		WHERE owner_id = $1
		ORDER BY id`

	todos := []Todo{}
	if err := r.db.SelectContext(ctx, &todos, query, ownerID); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	return todos, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Todo, error) {
	query := `
		SELECT id, title, description, priority, complete, owner_id
		FROM todos
		ORDER BY id`

	todos := []Todo{}
	if err := r.db.SelectContext(ctx, &todos, query); err != nil {
		return nil, fmt.Errorf("list all todos: %w", err)
	}

	return todos, nil
}

func (r *repository) GetByIDForOwner(
	ctx context.Context,
	id, ownerID int64,
) (*Todo, error) {
	query := `
		SELECT id, title, description, priority, complete, owner_id
		FROM todos
		WHERE id = $1 AND owner_id = $2`

	var todo Todo
	err := r.db.GetContext(ctx, &todo, query, id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get todo: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get todo: %w", err)
	}

	return &todo, nil
}

func (r *repository) Create(ctx context.Context, todo *Todo) error {
	query := `
		INSERT INTO todos (title, description, priority, complete, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.GetContext(ctx, &todo.ID, query,
		todo.Title,
		todo.Description,
		todo.Priority,
		todo.Complete,
		todo.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("create todo: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, todo *Todo) error {
	query := `
		UPDATE todos
		SET title = $3, description = $4, priority = $5, complete = $6
		WHERE id = $1 AND owner_id = $2`

	result, err := r.db.ExecContext(ctx, query,
		todo.ID,
		todo.OwnerID,
		todo.Title,
		todo.Description,
		todo.Priority,
		todo.Complete,
	)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update todo: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id, ownerID int64) error {
	query := `
		DELETE FROM todos
		WHERE id = $1 AND owner_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete todo: %w", core.ErrNotFound)
	}

	return nil
}
