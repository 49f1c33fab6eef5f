package user

import (
	"context"
	"tailorspace/internal/core/user"
)

// UserRepository is the outbound port for user persistence. Lookups return
// (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*user.User, error)
	FindByID(ctx context.Context, id uint) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*user.User, error)
}

type UserDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
