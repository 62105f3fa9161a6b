package adoptionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/unitedpets/internal/domain"
	"github.com/GlebRadaev/unitedpets/internal/pg"
)

const requestColumns = "id, pet_id, requester_email, requester_name, phone, address, status, created_at"

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

func scanRequest(row pgx.Row) (*domain.AdoptionRequest, error) {
	var req domain.AdoptionRequest
	err := row.Scan(&req.ID, &req.PetID, &req.RequesterEmail, &req.RequesterName,
		&req.Phone, &req.Address, &req.Status, &req.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func collectRequests(rows pgx.Rows) ([]domain.AdoptionRequest, error) {
	defer rows.Close()
	requests := make([]domain.AdoptionRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *Repository) Create(ctx context.Context, req *domain.AdoptionRequest) (*domain.AdoptionRequest, error) {
	query := `
		INSERT INTO adoption_requests (id, pet_id, requester_email, requester_name, phone, address, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query, req.ID, req.PetID, req.RequesterEmail, req.RequesterName,
		req.Phone, req.Address, req.Status, req.CreatedAt)
	if err != nil {
		zap.L().Error("can't save adoption request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*domain.AdoptionRequest, error) {
	req, err := scanRequest(r.db.QueryRow(ctx, "SELECT "+requestColumns+" FROM adoption_requests WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get adoption request", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return req, nil
}

// ListByPetIDs fetches the requests of every pet in ids with a single query.
func (r *Repository) ListByPetIDs(ctx context.Context, petIDs []string) ([]domain.AdoptionRequest, error) {
	if len(petIDs) == 0 {
		return []domain.AdoptionRequest{}, nil
	}
	query := "SELECT " + requestColumns + " FROM adoption_requests WHERE pet_id = ANY($1) ORDER BY created_at DESC, id"
	rows, err := r.db.Query(ctx, query, petIDs)
	if err != nil {
		zap.L().Error("can't list adoption requests by pets", zap.Error(err))
		return nil, err
	}
	return collectRequests(rows)
}

func (r *Repository) ListByRequester(ctx context.Context, email string) ([]domain.AdoptionRequest, error) {
	query := "SELECT " + requestColumns + " FROM adoption_requests WHERE requester_email = $1 ORDER BY created_at DESC, id"
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		zap.L().Error("can't list adoption requests by requester", zap.Error(err))
		return nil, err
	}
	return collectRequests(rows)
}

// UpdateStatusAndAdopt stores the new request status and marks the pet Adopted
// in the same transaction, whatever the status value is.
// FIXME: a rejected request still marks the pet adopted.
func (r *Repository) UpdateStatusAndAdopt(ctx context.Context, id, status, petID string) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, "UPDATE adoption_requests SET status = $1 WHERE id = $2", status, id)
		if err != nil {
			zap.L().Error("can't update adoption request status", zap.String("id", id), zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}

		tag, err = r.db.Exec(ctx, "UPDATE pets SET adoption_status = $1 WHERE id = $2", domain.PetAdopted, petID)
		if err != nil {
			zap.L().Error("can't mark pet adopted", zap.String("pet_id", petID), zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM adoption_requests WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete adoption request", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
