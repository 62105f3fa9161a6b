// Package access holds the single ownership rule shared by every mutating
// operation: the actor must own the resource or be an admin.
package access

import (
	"context"
	"fmt"
	"strings"

	"github.com/GlebRadaev/unitedpets/internal/domain"
)

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type Gate struct {
	users UserRepo
}

func New(users UserRepo) *Gate {
	return &Gate{
		users: users,
	}
}

func (g *Gate) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := g.users.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("find user %q: %w", email, err)
	}
	return user != nil && user.Role == domain.RoleAdmin, nil
}

func (g *Gate) Authorize(ctx context.Context, actor, owner string) error {
	if actor == "" {
		return domain.ErrUnauthorized
	}
	if owner != "" && strings.EqualFold(actor, owner) {
		return nil
	}
	isAdmin, err := g.IsAdmin(ctx, actor)
	if err != nil {
		return err
	}
	if !isAdmin {
		return domain.ErrForbidden
	}
	return nil
}
