// AngelaMos | 2026
// service.go

package todo

import (
	"context"

	"github.com/angelamos/todoapp/internal/middleware"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns only the caller's todos. Admin callers go through ListAll on
// the separate admin endpoint; there is no role branch here.
func (s *Service) List(
	ctx context.Context,
	identity middleware.Identity,
) ([]Todo, error) {
	return s.repo.ListByOwner(ctx, identity.UserID)
}

// ListAll is the privileged, unscoped listing backing the admin endpoint.
func (s *Service) ListAll(ctx context.Context) ([]Todo, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) Get(
	ctx context.Context,
	identity middleware.Identity,
	todoID int64,
) (*Todo, error) {
	return s.repo.GetByIDForOwner(ctx, todoID, identity.UserID)
}

func (s *Service) Create(
	ctx context.Context,
	identity middleware.Identity,
	req TodoRequest,
) (*Todo, error) {
	todo := &Todo{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
		OwnerID:     identity.UserID,
	}

	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

// Update replaces title, description, priority, and complete wholesale. A
// non-owned or missing id surfaces as NotFound.
func (s *Service) Update(
	ctx context.Context,
	identity middleware.Identity,
	todoID int64,
	req TodoRequest,
) (*Todo, error) {
	todo := &Todo{
		ID:          todoID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
		OwnerID:     identity.UserID,
	}

	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

func (s *Service) Delete(
	ctx context.Context,
	identity middleware.Identity,
	todoID int64,
) error {
	return s.repo.Delete(ctx, todoID, identity.UserID)
}
