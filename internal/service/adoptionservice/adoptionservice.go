package adoptionservice

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/unitedpets/internal/domain"
	"github.com/GlebRadaev/unitedpets/internal/notify"
)

type Repo interface {
	Create(ctx context.Context, req *domain.AdoptionRequest) (*domain.AdoptionRequest, error)
	Get(ctx context.Context, id string) (*domain.AdoptionRequest, error)
	ListByPetIDs(ctx context.Context, petIDs []string) ([]domain.AdoptionRequest, error)
	ListByRequester(ctx context.Context, email string) ([]domain.AdoptionRequest, error)
	UpdateStatusAndAdopt(ctx context.Context, id, status, petID string) error
	Delete(ctx context.Context, id string) (bool, error)
}

type PetRepo interface {
	Get(ctx context.Context, id string) (*domain.Pet, error)
	IDsByOwner(ctx context.Context, email string) ([]string, error)
}

type Authorizer interface {
	Authorize(ctx context.Context, actor, owner string) error
}

type Notifier interface {
	Notify(msg notify.Message)
}

type Service struct {
	repo     Repo
	pets     PetRepo
	gate     Authorizer
	notifier Notifier
	now      func() time.Time
}

func New(repo Repo, pets PetRepo, gate Authorizer, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		pets:     pets,
		gate:     gate,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *Service) pet(ctx context.Context, id string) (*domain.Pet, error) {
	if err := domain.CheckID(id); err != nil {
		return nil, err
	}
	pet, err := s.pets.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get pet: %w", err)
	}
	if pet == nil {
		return nil, domain.ErrNotFound
	}
	return pet, nil
}

func (s *Service) request(ctx context.Context, id string) (*domain.AdoptionRequest, error) {
	if err := domain.CheckID(id); err != nil {
		return nil, err
	}
	req, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get adoption request: %w", err)
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	return req, nil
}

// Create files a request from actor for an existing pet and lets the pet
// owner know about it.
func (s *Service) Create(ctx context.Context, actor string, req domain.AdoptionRequest) (*domain.AdoptionRequest, error) {
	pet, err := s.pet(ctx, req.PetID)
	if err != nil {
		return nil, err
	}

	req.ID = uuid.NewString()
	req.RequesterEmail = actor
	req.Status = domain.RequestPending
	req.CreatedAt = s.now().UTC()

	created, err := s.repo.Create(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("create adoption request: %w", err)
	}
	zap.L().Info("adoption request created", zap.String("id", created.ID), zap.String("pet_id", pet.ID))

	s.notifier.Notify(notify.Message{
		To:      pet.AddedBy,
		Subject: fmt.Sprintf("New adoption request for %s", pet.Name),
		HTML: fmt.Sprintf("<p>%s (%s) wants to adopt <b>%s</b>.</p><p>Phone: %s<br>Address: %s</p>",
			html.EscapeString(created.RequesterName), html.EscapeString(created.RequesterEmail),
			html.EscapeString(pet.Name), html.EscapeString(created.Phone), html.EscapeString(created.Address)),
	})
	return created, nil
}

// ListForOwner returns the requests made for every pet owner has listed.
func (s *Service) ListForOwner(ctx context.Context, owner string) ([]domain.AdoptionRequest, error) {
	petIDs, err := s.pets.IDsByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("owner pets: %w", err)
	}
	requests, err := s.repo.ListByPetIDs(ctx, petIDs)
	if err != nil {
		return nil, fmt.Errorf("list adoption requests: %w", err)
	}
	return requests, nil
}

func (s *Service) ListByRequester(ctx context.Context, email string) ([]domain.AdoptionRequest, error) {
	requests, err := s.repo.ListByRequester(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list adoption requests: %w", err)
	}
	return requests, nil
}

// UpdateStatus stores status on the request and marks its pet Adopted in the
// same transaction, for any status value. Only the pet owner or an admin may
// call it. petID is optional; when given it must name the request's pet.
func (s *Service) UpdateStatus(ctx context.Context, actor, id, status, petID string) (*domain.AdoptionRequest, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", domain.ErrValidation)
	}

	req, err := s.request(ctx, id)
	if err != nil {
		return nil, err
	}
	if petID != "" && petID != req.PetID {
		return nil, fmt.Errorf("%w: request %s is not for pet %s", domain.ErrValidation, id, petID)
	}

	pet, err := s.pet(ctx, req.PetID)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Authorize(ctx, actor, pet.AddedBy); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatusAndAdopt(ctx, req.ID, status, req.PetID); err != nil {
		return nil, fmt.Errorf("update adoption request: %w", err)
	}
	req.Status = status
	zap.L().Info("adoption request status changed",
		zap.String("id", req.ID), zap.String("status", status), zap.String("pet_id", req.PetID))

	s.notifier.Notify(notify.Message{
		To:      req.RequesterEmail,
		Subject: fmt.Sprintf("Your adoption request for %s", pet.Name),
		HTML: fmt.Sprintf("<p>Your request to adopt <b>%s</b> is now <b>%s</b>.</p>",
			html.EscapeString(pet.Name), html.EscapeString(status)),
	})
	return req, nil
}

// Delete is allowed for the requester, the pet owner and admins.
func (s *Service) Delete(ctx context.Context, actor, id string) error {
	req, err := s.request(ctx, id)
	if err != nil {
		return err
	}

	if !strings.EqualFold(actor, req.RequesterEmail) {
		var owner string
		pet, err := s.pets.Get(ctx, req.PetID)
		if err != nil {
			return fmt.Errorf("get pet: %w", err)
		}
		if pet != nil {
			owner = pet.AddedBy
		}
		if err := s.gate.Authorize(ctx, actor, owner); err != nil {
			return err
		}
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete adoption request: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
