package petrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/unitedpets/internal/domain"
	"github.com/GlebRadaev/unitedpets/internal/pg"
)

const petColumns = "id, name, age, category, location, image, short_description, long_description, added_by, adoption_status, added_time"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanPet(row pgx.Row) (*domain.Pet, error) {
	var p domain.Pet
	err := row.Scan(&p.ID, &p.Name, &p.Age, &p.Category, &p.Location, &p.Image,
		&p.ShortDescription, &p.LongDescription, &p.AddedBy, &p.AdoptionStatus, &p.AddedTime)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPets(rows pgx.Rows) ([]domain.Pet, error) {
	defer rows.Close()
	pets := make([]domain.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		pets = append(pets, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return pets, nil
}

// whereClause turns the filter into a WHERE clause. Column names are fixed here,
// only values travel as arguments.
func whereClause(filter domain.PetFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	eq := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	like := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, pg.ContainsPattern(value))
		conds = append(conds, fmt.Sprintf(`%s ILIKE $%d ESCAPE '\'`, column, len(args)))
	}

	eq("name", filter.Name)
	eq("location", filter.Location)
	eq("adoption_status", filter.AdoptionStatus)
	eq("added_by", filter.AddedBy)
	like("category", filter.Category)
	like("name", filter.Search)

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *Repository) Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	query := `
		INSERT INTO pets (id, name, age, category, location, image, short_description, long_description, added_by, adoption_status, added_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query, pet.ID, pet.Name, pet.Age, pet.Category, pet.Location, pet.Image,
		pet.ShortDescription, pet.LongDescription, pet.AddedBy, pet.AdoptionStatus, pet.AddedTime)
	if err != nil {
		zap.L().Error("can't save pet", zap.Error(err))
		return nil, err
	}
	return pet, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*domain.Pet, error) {
	pet, err := scanPet(r.db.QueryRow(ctx, "SELECT "+petColumns+" FROM pets WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get pet", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return pet, nil
}

// Update overwrites the editable fields. Ownership and status are not touched.
func (r *Repository) Update(ctx context.Context, pet *domain.Pet) (bool, error) {
	query := `
		UPDATE pets
		SET name = $1, age = $2, category = $3, location = $4, image = $5, short_description = $6, long_description = $7
		WHERE id = $8
	`
	tag, err := r.db.Exec(ctx, query, pet.Name, pet.Age, pet.Category, pet.Location, pet.Image,
		pet.ShortDescription, pet.LongDescription, pet.ID)
	if err != nil {
		zap.L().Error("can't update pet", zap.String("id", pet.ID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) SetStatus(ctx context.Context, id, status string) (bool, error) {
	tag, err := r.db.Exec(ctx, "UPDATE pets SET adoption_status = $1 WHERE id = $2", status, id)
	if err != nil {
		zap.L().Error("can't update pet status", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM pets WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete pet", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Find(ctx context.Context, filter domain.PetFilter, limit, offset int) ([]domain.Pet, error) {
	where, args := whereClause(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf("SELECT %s FROM pets%s ORDER BY added_time DESC, id LIMIT $%d OFFSET $%d",
		petColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't find pets", zap.Error(err))
		return nil, err
	}
	pets, err := collectPets(rows)
	if err != nil {
		zap.L().Error("can't scan pets", zap.Error(err))
		return nil, err
	}
	return pets, nil
}

func (r *Repository) Count(ctx context.Context, filter domain.PetFilter) (int, error) {
	where, args := whereClause(filter)
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM pets"+where, args...).Scan(&total); err != nil {
		zap.L().Error("can't count pets", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) Latest(ctx context.Context, n int) ([]domain.Pet, error) {
	rows, err := r.db.Query(ctx, "SELECT "+petColumns+" FROM pets ORDER BY added_time DESC, id LIMIT $1", n)
	if err != nil {
		zap.L().Error("can't get latest pets", zap.Error(err))
		return nil, err
	}
	return collectPets(rows)
}

func (r *Repository) Similar(ctx context.Context, category, excludeID string, limit int) ([]domain.Pet, error) {
	query := `
		SELECT ` + petColumns + `
		FROM pets
		WHERE category ILIKE $1 ESCAPE '\' AND id::text <> $2
		ORDER BY added_time DESC, id
		LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, pg.ContainsPattern(category), excludeID, limit)
	if err != nil {
		zap.L().Error("can't get similar pets", zap.Error(err))
		return nil, err
	}
	return collectPets(rows)
}

func (r *Repository) IDsByOwner(ctx context.Context, email string) ([]string, error) {
	rows, err := r.db.Query(ctx, "SELECT id FROM pets WHERE added_by = $1", email)
	if err != nil {
		zap.L().Error("can't get owner pet ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
