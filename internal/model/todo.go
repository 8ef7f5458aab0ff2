package model

import "time"

// Todo represents a single task owned by exactly one user.
type Todo struct {
	ID        string    `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	IsDone    bool      `json:"is_done" bson:"is_done"`
	UserID    string    `json:"user_id" bson:"user_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// TodoUpdate is a partial update: nil fields are left untouched. UpdatedAt is
// always written, even when no other field is present.
type TodoUpdate struct {
	Title     *string
	IsDone    *bool
	UpdatedAt time.Time
}
