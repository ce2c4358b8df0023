package model

import "context"

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (InsertResult, error)
	Update(ctx context.Context, user User) (UpdateResult, error)
	DeleteByID(ctx context.Context, id string) (DeleteResult, error)
	DeleteByEmail(ctx context.Context, email string) (DeleteResult, error)
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, bool, error)
}

// User is an account record. Password is kept as supplied by the caller.
type User struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Password string `json:"password"`
	Email    string `json:"email"`
}
