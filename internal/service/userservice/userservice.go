package userservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/unitedpets/internal/domain"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	SetRole(ctx context.Context, id, role string) (bool, error)
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Register stores a new profile. Whatever role the caller sent is dropped:
// accounts always start as regular users.
func (s *Service) Register(ctx context.Context, user domain.User) (*domain.User, error) {
	user.Email = normalizeEmail(user.Email)
	if user.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	user.ID = uuid.NewString()
	user.Role = domain.RoleUser
	user.CreatedAt = s.now().UTC()

	created, err := s.repo.Create(ctx, &user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	zap.L().Info("user registered", zap.String("email", created.Email))
	return created, nil
}

func (s *Service) GetRole(ctx context.Context, email string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return "", domain.ErrNotFound
	}
	if user.Role == "" {
		return domain.RoleUser, nil
	}
	return user.Role, nil
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *Service) SetRole(ctx context.Context, id, role string) error {
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	if err := domain.CheckID(id); err != nil {
		return err
	}

	ok, err := s.repo.SetRole(ctx, id, role)
	if err != nil {
		return fmt.Errorf("set role: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	zap.L().Info("user role changed", zap.String("id", id), zap.String("role", role))
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
