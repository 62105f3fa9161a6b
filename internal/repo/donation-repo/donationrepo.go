package donationrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/unitedpets/internal/domain"
	"github.com/GlebRadaev/unitedpets/internal/pg"
)

const campaignColumns = "id, pet_name, pet_image, pet_category, max_amount, last_date, short_description, long_description, added_by, paused, total_donated, created_at"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanCampaign(row pgx.Row) (*domain.DonationCampaign, error) {
	var c domain.DonationCampaign
	err := row.Scan(&c.ID, &c.PetName, &c.PetImage, &c.PetCategory, &c.MaxAmount, &c.LastDate,
		&c.ShortDescription, &c.LongDescription, &c.AddedBy, &c.Paused, &c.TotalDonated, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCampaigns(rows pgx.Rows) ([]domain.DonationCampaign, error) {
	defer rows.Close()
	campaigns := make([]domain.DonationCampaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *Repository) CreateCampaign(ctx context.Context, c *domain.DonationCampaign) (*domain.DonationCampaign, error) {
	query := `
		INSERT INTO donation_campaigns (id, pet_name, pet_image, pet_category, max_amount, last_date, short_description, long_description, added_by, paused, total_donated, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query, c.ID, c.PetName, c.PetImage, c.PetCategory, c.MaxAmount, c.LastDate,
		c.ShortDescription, c.LongDescription, c.AddedBy, c.Paused, c.TotalDonated, c.CreatedAt)
	if err != nil {
		zap.L().Error("can't save donation campaign", zap.Error(err))
		return nil, err
	}
	return c, nil
}

// GetCampaign returns the campaign with its donators, oldest first.
func (r *Repository) GetCampaign(ctx context.Context, id string) (*domain.DonationCampaign, error) {
	c, err := scanCampaign(r.db.QueryRow(ctx, "SELECT "+campaignColumns+" FROM donation_campaigns WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get donation campaign", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	c.Donators, err = r.Donators(ctx, id)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repository) Donators(ctx context.Context, campaignID string) ([]domain.Donator, error) {
	query := `
		SELECT id, campaign_id, email, amount, donated_at
		FROM donation_donators
		WHERE campaign_id = $1
		ORDER BY donated_at, id
	`
	rows, err := r.db.Query(ctx, query, campaignID)
	if err != nil {
		zap.L().Error("can't get donators", zap.String("campaign_id", campaignID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	donators := make([]domain.Donator, 0)
	for rows.Next() {
		var d domain.Donator
		if err := rows.Scan(&d.ID, &d.CampaignID, &d.Email, &d.Amount, &d.DonatedAt); err != nil {
			zap.L().Error("can't scan donator", zap.Error(err))
			return nil, err
		}
		donators = append(donators, d)
	}
	return donators, rows.Err()
}

func (r *Repository) UpdateCampaign(ctx context.Context, c *domain.DonationCampaign) (bool, error) {
	query := `
		UPDATE donation_campaigns
		SET pet_name = $1, pet_image = $2, pet_category = $3, max_amount = $4, last_date = $5, short_description = $6, long_description = $7
		WHERE id = $8
	`
	tag, err := r.db.Exec(ctx, query, c.PetName, c.PetImage, c.PetCategory, c.MaxAmount, c.LastDate,
		c.ShortDescription, c.LongDescription, c.ID)
	if err != nil {
		zap.L().Error("can't update donation campaign", zap.String("id", c.ID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) SetPaused(ctx context.Context, id string, paused bool) (bool, error) {
	tag, err := r.db.Exec(ctx, "UPDATE donation_campaigns SET paused = $1 WHERE id = $2", paused, id)
	if err != nil {
		zap.L().Error("can't update campaign pause flag", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ListCampaigns(ctx context.Context, limit, offset int) ([]domain.DonationCampaign, error) {
	rows, err := r.db.Query(ctx, "SELECT "+campaignColumns+" FROM donation_campaigns ORDER BY created_at DESC, id LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		zap.L().Error("can't list donation campaigns", zap.Error(err))
		return nil, err
	}
	return collectCampaigns(rows)
}

func (r *Repository) CountCampaigns(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM donation_campaigns").Scan(&total); err != nil {
		zap.L().Error("can't count donation campaigns", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) ListByCategory(ctx context.Context, category, excludeID string, limit int) ([]domain.DonationCampaign, error) {
	query := `
		SELECT ` + campaignColumns + `
		FROM donation_campaigns
		WHERE pet_category ILIKE $1 ESCAPE '\' AND id::text <> $2
		ORDER BY created_at DESC, id
		LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, pg.ContainsPattern(category), excludeID, limit)
	if err != nil {
		zap.L().Error("can't list campaigns by category", zap.Error(err))
		return nil, err
	}
	return collectCampaigns(rows)
}

func (r *Repository) ListByOwner(ctx context.Context, email string) ([]domain.DonationCampaign, error) {
	rows, err := r.db.Query(ctx, "SELECT "+campaignColumns+" FROM donation_campaigns WHERE added_by = $1 ORDER BY created_at DESC, id", email)
	if err != nil {
		zap.L().Error("can't list campaigns by owner", zap.Error(err))
		return nil, err
	}
	return collectCampaigns(rows)
}

// Donate adds the amount to the campaign total, appends a donator entry and
// logs the user donation atomically.
func (r *Repository) Donate(ctx context.Context, record *domain.UserDonation) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, "UPDATE donation_campaigns SET total_donated = total_donated + $1 WHERE id = $2",
			record.Amount, record.CampaignID)
		if err != nil {
			zap.L().Error("can't increment campaign total", zap.String("campaign_id", record.CampaignID), zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}

		_, err = r.db.Exec(ctx, "INSERT INTO donation_donators (campaign_id, email, amount, donated_at) VALUES ($1, $2, $3, $4)",
			record.CampaignID, record.UserEmail, record.Amount, record.CreatedAt)
		if err != nil {
			zap.L().Error("can't append donator", zap.Error(err))
			return err
		}

		_, err = r.db.Exec(ctx, "INSERT INTO user_donations (id, campaign_id, user_email, amount, created_at) VALUES ($1, $2, $3, $4, $5)",
			record.ID, record.CampaignID, record.UserEmail, record.Amount, record.CreatedAt)
		if err != nil {
			zap.L().Error("can't save user donation", zap.Error(err))
			return err
		}
		return nil
	})
}

// Refund reverses one donation of exactly amount. The oldest matching
// record and donator entry are removed; if either is missing nothing changes.
func (r *Repository) Refund(ctx context.Context, campaignID, email string, amount domain.Cents) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		query := `
			DELETE FROM user_donations
			WHERE id = (
				SELECT id FROM user_donations
				WHERE campaign_id = $1 AND user_email = $2 AND amount = $3
				ORDER BY created_at, id
				LIMIT 1
			)
		`
		tag, err := r.db.Exec(ctx, query, campaignID, email, amount)
		if err != nil {
			zap.L().Error("can't delete user donation", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}

		query = `
			DELETE FROM donation_donators
			WHERE id = (
				SELECT id FROM donation_donators
				WHERE campaign_id = $1 AND email = $2 AND amount = $3
				ORDER BY donated_at, id
				LIMIT 1
			)
		`
		tag, err = r.db.Exec(ctx, query, campaignID, email, amount)
		if err != nil {
			zap.L().Error("can't remove donator", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			zap.L().Warn("donation without donator entry", zap.String("campaign_id", campaignID), zap.String("email", email))
			return domain.ErrNotFound
		}

		tag, err = r.db.Exec(ctx, "UPDATE donation_campaigns SET total_donated = total_donated - $1 WHERE id = $2", amount, campaignID)
		if err != nil {
			zap.L().Error("can't decrement campaign total", zap.String("campaign_id", campaignID), zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (r *Repository) ListUserDonations(ctx context.Context, email string) ([]domain.UserDonation, error) {
	query := `
		SELECT id, campaign_id, user_email, amount, created_at
		FROM user_donations
		WHERE user_email = $1
		ORDER BY created_at DESC, id
	`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		zap.L().Error("can't list user donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	donations := make([]domain.UserDonation, 0)
	for rows.Next() {
		var d domain.UserDonation
		if err := rows.Scan(&d.ID, &d.CampaignID, &d.UserEmail, &d.Amount, &d.CreatedAt); err != nil {
			zap.L().Error("can't scan user donation", zap.Error(err))
			return nil, err
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}
