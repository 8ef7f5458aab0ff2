package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "todoapi/internal/errors"
	"todoapi/internal/model"
)

// TodoRepository defines todo persistence operations. Every read and mutation
// takes the owner id as a mandatory filter, so an owner-less query is
// unreachable from request handling.
type TodoRepository interface {
	Create(ctx context.Context, todo *model.Todo) error
	FindByID(ctx context.Context, id, ownerID string) (*model.Todo, error)
	Update(ctx context.Context, id, ownerID string, fields model.TodoUpdate) (*model.Todo, error)
	Delete(ctx context.Context, id, ownerID string) (bool, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Todo, error)
	ListDoneByOwner(ctx context.Context, ownerID string) ([]model.Todo, error)
}

type todoRepository struct {
	coll *mongo.Collection
}

// NewTodoRepository builds a Mongo-backed todo repository.
func NewTodoRepository(coll *mongo.Collection) TodoRepository {
	return &todoRepository{coll: coll}
}

func (r *todoRepository) Create(ctx context.Context, todo *model.Todo) error {
	if _, err := r.coll.InsertOne(ctx, todo); err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

func (r *todoRepository) FindByID(ctx context.Context, id, ownerID string) (*model.Todo, error) {
	var todo model.Todo
	err := r.coll.FindOne(ctx, ownerFilter(id, ownerID)).Decode(&todo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTodoNotFound
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return &todo, nil
}

// Update applies a partial $set and returns the post-update document. The
// updated_at field is always rewritten, even when no other field is present.
func (r *todoRepository) Update(ctx context.Context, id, ownerID string, fields model.TodoUpdate) (*model.Todo, error) {
	set := bson.M{"updated_at": fields.UpdatedAt}
	if fields.Title != nil {
		set["title"] = *fields.Title
	}
	if fields.IsDone != nil {
		set["is_done"] = *fields.IsDone
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var todo model.Todo
	err := r.coll.FindOneAndUpdate(ctx, ownerFilter(id, ownerID), bson.M{"$set": set}, opts).Decode(&todo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTodoNotFound
		}
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return &todo, nil
}

// Delete hard-deletes the todo and reports whether a document matched.
// "Absent" and "owned by someone else" are indistinguishable to the caller.
func (r *todoRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, ownerFilter(id, ownerID))
	if err != nil {
		return false, fmt.Errorf("delete todo: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *todoRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Todo, error) {
	return r.list(ctx, bson.M{"user_id": ownerID})
}

func (r *todoRepository) ListDoneByOwner(ctx context.Context, ownerID string) ([]model.Todo, error) {
	return r.list(ctx, bson.M{"user_id": ownerID, "is_done": true})
}

func (r *todoRepository) list(ctx context.Context, filter bson.M) ([]model.Todo, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	todos := []model.Todo{}
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}
	return todos, nil
}

func ownerFilter(id, ownerID string) bson.M {
	return bson.M{"_id": id, "user_id": ownerID}
}
