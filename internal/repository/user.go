package repository

import (
	"context"

	"github.com/dtroode/taskboard-server/internal/codec"
	"github.com/dtroode/taskboard-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	*Repository[model.User]
}

func NewUserRepository(collection model.Collection, opts ...Option) *UserRepository {
	return &UserRepository{
		Repository: New(collection, codec.User, opts...),
	}
}

// DeleteByEmail removes at most one user with the given email.
func (r *UserRepository) DeleteByEmail(ctx context.Context, email string) (model.DeleteResult, error) {
	return r.deleteOne(ctx, model.Filter{Field: codec.UserFieldEmail, Value: email})
}
