package service

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	apperrors "todoapi/internal/errors"
	"todoapi/internal/model"
	"todoapi/internal/repository"
)

const maxTitleLength = 200

// TodoService exposes owner-scoped todo operations. The owner id comes from
// the resolved identity of the authenticated caller; no operation here can be
// invoked without one.
type TodoService interface {
	Create(ctx context.Context, ownerID, title string, isDone bool) (*model.Todo, error)
	Get(ctx context.Context, id, ownerID string) (*model.Todo, error)
	Update(ctx context.Context, id, ownerID string, title *string, isDone *bool) (*model.Todo, error)
	Delete(ctx context.Context, id, ownerID string) error
	List(ctx context.Context, ownerID string) ([]model.Todo, error)
	ListDone(ctx context.Context, ownerID string) ([]model.Todo, error)
}

type todoService struct {
	repo repository.TodoRepository
}

// NewTodoService builds a TodoService over the given repository.
func NewTodoService(repo repository.TodoRepository) TodoService {
	return &todoService{repo: repo}
}

func (s *todoService) Create(ctx context.Context, ownerID, title string, isDone bool) (*model.Todo, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	todo := &model.Todo{
		ID:        uuid.NewString(),
		Title:     title,
		IsDone:    isDone,
		UserID:    ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *todoService) Get(ctx context.Context, id, ownerID string) (*model.Todo, error) {
	return s.repo.FindByID(ctx, id, ownerID)
}

// Update applies the present fields only. The updated timestamp is refreshed
// on every accepted update, including an empty field set.
func (s *todoService) Update(ctx context.Context, id, ownerID string, title *string, isDone *bool) (*model.Todo, error) {
	if title != nil {
		if err := validateTitle(*title); err != nil {
			return nil, err
		}
	}

	fields := model.TodoUpdate{
		Title:     title,
		IsDone:    isDone,
		UpdatedAt: time.Now().UTC(),
	}
	return s.repo.Update(ctx, id, ownerID, fields)
}

func (s *todoService) Delete(ctx context.Context, id, ownerID string) error {
	found, err := s.repo.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.ErrTodoNotFound
	}
	return nil
}

func (s *todoService) List(ctx context.Context, ownerID string) ([]model.Todo, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *todoService) ListDone(ctx context.Context, ownerID string) ([]model.Todo, error) {
	return s.repo.ListDoneByOwner(ctx, ownerID)
}

func validateTitle(title string) error {
	if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
		return apperrors.ErrInvalidTitle
	}
	return nil
}
