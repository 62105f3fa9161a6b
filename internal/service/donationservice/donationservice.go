package donationservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/unitedpets/internal/domain"
)

const (
	DefaultPageLimit     = 9
	MaxPageLimit         = 100
	DefaultCategoryLimit = 3
)

const (
	KindDonate = "donate"
	KindRefund = "refund"
)

type Repo interface {
	CreateCampaign(ctx context.Context, c *domain.DonationCampaign) (*domain.DonationCampaign, error)
	GetCampaign(ctx context.Context, id string) (*domain.DonationCampaign, error)
	UpdateCampaign(ctx context.Context, c *domain.DonationCampaign) (bool, error)
	SetPaused(ctx context.Context, id string, paused bool) (bool, error)
	ListCampaigns(ctx context.Context, limit, offset int) ([]domain.DonationCampaign, error)
	CountCampaigns(ctx context.Context) (int, error)
	ListByCategory(ctx context.Context, category, excludeID string, limit int) ([]domain.DonationCampaign, error)
	ListByOwner(ctx context.Context, email string) ([]domain.DonationCampaign, error)
	Donate(ctx context.Context, record *domain.UserDonation) error
	Refund(ctx context.Context, campaignID, email string, amount domain.Cents) error
	ListUserDonations(ctx context.Context, email string) ([]domain.UserDonation, error)
}

type Authorizer interface {
	Authorize(ctx context.Context, actor, owner string) error
}

type PaymentProvider interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}

type Recorder interface {
	RecordDonation(kind string, amount float64)
}

type Service struct {
	repo     Repo
	gate     Authorizer
	payments PaymentProvider
	recorder Recorder
	currency string
	now      func() time.Time
}

func New(repo Repo, gate Authorizer, payments PaymentProvider, recorder Recorder, currency string) *Service {
	return &Service{
		repo:     repo,
		gate:     gate,
		payments: payments,
		recorder: recorder,
		currency: strings.ToLower(currency),
		now:      time.Now,
	}
}

func (s *Service) Create(ctx context.Context, actor string, c domain.DonationCampaign) (*domain.DonationCampaign, error) {
	if c.MaxAmount <= 0 {
		return nil, fmt.Errorf("%w: max amount must be positive", domain.ErrValidation)
	}
	c.ID = uuid.NewString()
	c.AddedBy = actor
	c.Paused = false
	c.TotalDonated = 0
	c.Donators = []domain.Donator{}
	c.CreatedAt = s.now().UTC()

	created, err := s.repo.CreateCampaign(ctx, &c)
	if err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	zap.L().Info("donation campaign created", zap.String("id", created.ID), zap.String("added_by", actor))
	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.DonationCampaign, error) {
	if err := domain.CheckID(id); err != nil {
		return nil, err
	}
	c, err := s.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *Service) owned(ctx context.Context, actor, id string) (*domain.DonationCampaign, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Authorize(ctx, actor, c.AddedBy); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, actor, id string, patch domain.CampaignPatch) (*domain.DonationCampaign, error) {
	if patch.MaxAmount != nil && *patch.MaxAmount <= 0 {
		return nil, fmt.Errorf("%w: max amount must be positive", domain.ErrValidation)
	}
	c, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(c)
	ok, err := s.repo.UpdateCampaign(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *Service) SetPaused(ctx context.Context, actor, id string, paused bool) error {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}
	ok, err := s.repo.SetPaused(ctx, id, paused)
	if err != nil {
		return fmt.Errorf("pause campaign: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	zap.L().Info("donation campaign pause changed", zap.String("id", id), zap.Bool("paused", paused))
	return nil
}

func (s *Service) List(ctx context.Context, page domain.Page) (*domain.CampaignPage, error) {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 {
		page.Limit = DefaultPageLimit
	}
	if page.Limit > MaxPageLimit {
		page.Limit = MaxPageLimit
	}
	skip := page.Skip()

	var (
		items []domain.DonationCampaign
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.repo.ListCampaigns(gctx, page.Limit, skip)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.CountCampaigns(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	return &domain.CampaignPage{
		Items:   items,
		Total:   total,
		HasMore: skip+len(items) < total,
	}, nil
}

func (s *Service) ListByOwner(ctx context.Context, email string) ([]domain.DonationCampaign, error) {
	campaigns, err := s.repo.ListByOwner(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list owner campaigns: %w", err)
	}
	return campaigns, nil
}

func (s *Service) ListByCategory(ctx context.Context, category, excludeID string, limit int) ([]domain.DonationCampaign, error) {
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if limit < 1 {
		limit = DefaultCategoryLimit
	}
	campaigns, err := s.repo.ListByCategory(ctx, category, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("list campaigns by category: %w", err)
	}
	return campaigns, nil
}

// Donate records a donation of amount from actor. The campaign total, its
// donator list and the user's donation log change together or not at all.
func (s *Service) Donate(ctx context.Context, actor, id string, amount domain.Cents) (*domain.UserDonation, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Paused {
		return nil, fmt.Errorf("%w: campaign is paused", domain.ErrValidation)
	}

	record := &domain.UserDonation{
		ID:         uuid.NewString(),
		CampaignID: id,
		UserEmail:  actor,
		Amount:     amount,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Donate(ctx, record); err != nil {
		return nil, fmt.Errorf("donate: %w", err)
	}
	s.recorder.RecordDonation(KindDonate, amount.Float())
	zap.L().Info("donation received", zap.String("campaign_id", id), zap.Int64("cents", int64(amount)))
	return record, nil
}

// Refund reverses one earlier donation of exactly amount made by actor.
func (s *Service) Refund(ctx context.Context, actor, id string, amount domain.Cents) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if err := domain.CheckID(id); err != nil {
		return err
	}
	if err := s.repo.Refund(ctx, id, actor, amount); err != nil {
		return fmt.Errorf("refund: %w", err)
	}
	s.recorder.RecordDonation(KindRefund, amount.Float())
	zap.L().Info("donation refunded", zap.String("campaign_id", id), zap.Int64("cents", int64(amount)))
	return nil
}

func (s *Service) ListUserDonations(ctx context.Context, email string) ([]domain.UserDonation, error) {
	donations, err := s.repo.ListUserDonations(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list user donations: %w", err)
	}
	return donations, nil
}

// PaymentIntent asks the provider for a client secret for amount.
func (s *Service) PaymentIntent(ctx context.Context, amount domain.Cents) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	secret, err := s.payments.CreatePaymentIntent(ctx, int64(amount), s.currency)
	if err != nil {
		zap.L().Error("payment intent failed", zap.Int64("cents", int64(amount)), zap.Error(err))
		return "", fmt.Errorf("%w: %w", domain.ErrPayment, err)
	}
	return secret, nil
}
