package petservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/unitedpets/internal/domain"
)

const (
	DefaultPageLimit    = 10
	MaxPageLimit        = 100
	DefaultLatestCount  = 6
	DefaultSimilarLimit = 4
)

type Repo interface {
	Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	Get(ctx context.Context, id string) (*domain.Pet, error)
	Update(ctx context.Context, pet *domain.Pet) (bool, error)
	SetStatus(ctx context.Context, id, status string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Find(ctx context.Context, filter domain.PetFilter, limit, offset int) ([]domain.Pet, error)
	Count(ctx context.Context, filter domain.PetFilter) (int, error)
	Latest(ctx context.Context, n int) ([]domain.Pet, error)
	Similar(ctx context.Context, category, excludeID string, limit int) ([]domain.Pet, error)
}

type Authorizer interface {
	Authorize(ctx context.Context, actor, owner string) error
}

type Service struct {
	repo Repo
	gate Authorizer
	now  func() time.Time
}

func New(repo Repo, gate Authorizer) *Service {
	return &Service{
		repo: repo,
		gate: gate,
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, actor string, pet domain.Pet) (*domain.Pet, error) {
	pet.ID = uuid.NewString()
	pet.AddedBy = actor
	pet.AdoptionStatus = domain.PetNotAdopted
	pet.AddedTime = s.now().UTC()

	created, err := s.repo.Create(ctx, &pet)
	if err != nil {
		return nil, fmt.Errorf("create pet: %w", err)
	}
	zap.L().Info("pet added", zap.String("id", created.ID), zap.String("added_by", actor))
	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Pet, error) {
	if err := domain.CheckID(id); err != nil {
		return nil, err
	}
	pet, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get pet: %w", err)
	}
	if pet == nil {
		return nil, domain.ErrNotFound
	}
	return pet, nil
}

// owned loads the pet and checks that actor may change it.
func (s *Service) owned(ctx context.Context, actor, id string) (*domain.Pet, error) {
	pet, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Authorize(ctx, actor, pet.AddedBy); err != nil {
		return nil, err
	}
	return pet, nil
}

func (s *Service) Update(ctx context.Context, actor, id string, patch domain.PetPatch) (*domain.Pet, error) {
	pet, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(pet)
	ok, err := s.repo.Update(ctx, pet)
	if err != nil {
		return nil, fmt.Errorf("update pet: %w", err)
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return pet, nil
}

// MarkAdopted is one-way; there is no operation that reverts it.
func (s *Service) MarkAdopted(ctx context.Context, actor, id string) error {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}
	ok, err := s.repo.SetStatus(ctx, id, domain.PetAdopted)
	if err != nil {
		return fmt.Errorf("mark pet adopted: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, actor, id string) error {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	zap.L().Info("pet deleted", zap.String("id", id), zap.String("actor", actor))
	return nil
}

func normalizePage(page domain.Page) domain.Page {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 {
		page.Limit = DefaultPageLimit
	}
	if page.Limit > MaxPageLimit {
		page.Limit = MaxPageLimit
	}
	return page
}

// List returns one page, newest first, with the total count of matches.
func (s *Service) List(ctx context.Context, filter domain.PetFilter, page domain.Page) (*domain.PetPage, error) {
	page = normalizePage(page)
	skip := page.Skip()

	var (
		items []domain.Pet
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.repo.Find(gctx, filter, page.Limit, skip)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}

	return &domain.PetPage{
		Items:   items,
		Total:   total,
		HasMore: skip+len(items) < total,
	}, nil
}

func (s *Service) Latest(ctx context.Context, n int) ([]domain.Pet, error) {
	if n < 1 {
		n = DefaultLatestCount
	}
	pets, err := s.repo.Latest(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("latest pets: %w", err)
	}
	return pets, nil
}

func (s *Service) Similar(ctx context.Context, category, excludeID string, limit int) ([]domain.Pet, error) {
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if limit < 1 {
		limit = DefaultSimilarLimit
	}
	pets, err := s.repo.Similar(ctx, category, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("similar pets: %w", err)
	}
	return pets, nil
}
