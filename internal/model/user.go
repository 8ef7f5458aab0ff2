package model

import "time"

// User represents an authenticated user in the system. The JSON field names
// are part of the client contract and must not change.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"hashed_password"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
}
