package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/cse-motors/internal/domain"
	"github.com/tu-usuario/cse-motors/internal/domain/entity"
	"github.com/tu-usuario/cse-motors/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL.
// Las mutaciones filtran por account_id en el WHERE: la propiedad se verifica
// en la misma sentencia que muta, sin ventana entre chequeo y escritura.
type ReviewRepo struct {
	pool *pgxpool.Pool
}

// NewReviewRepository construye el adaptador de persistencia de reseñas.
func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{pool: pool}
}

const reviewColumns = `
	r.review_id, r.review_text, r.review_date, r.inv_id, r.account_id,
	i.inv_year, i.inv_make, i.inv_model, a.account_firstname`

const reviewJoins = `
	FROM review AS r
	JOIN inventory AS i ON r.inv_id = i.inv_id
	JOIN account AS a ON r.account_id = a.account_id`

func scanReview(row pgx.Row) (*entity.Review, error) {
	var rv entity.Review
	err := row.Scan(
		&rv.ID, &rv.Text, &rv.Date, &rv.VehicleID, &rv.AccountID,
		&rv.VehicleYear, &rv.VehicleMake, &rv.VehicleModel, &rv.AuthorFirstName,
	)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

// Create persiste una reseña nueva y deja el ID generado en la entidad.
func (r *ReviewRepo) Create(ctx context.Context, rv *entity.Review) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO review (review_text, review_date, inv_id, account_id)
		 VALUES ($1, $2, $3, $4) RETURNING review_id`,
		rv.Text, rv.Date, rv.VehicleID, rv.AccountID,
	).Scan(&rv.ID)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// ListByVehicle reseñas de un vehículo, de la más reciente a la más antigua.
func (r *ReviewRepo) ListByVehicle(ctx context.Context, vehicleID int) ([]entity.Review, error) {
	query := `SELECT ` + reviewColumns + reviewJoins + `
		WHERE r.inv_id = $1 ORDER BY r.review_date DESC`
	return r.list(ctx, query, vehicleID)
}

// ListByAccount reseñas escritas por una cuenta.
func (r *ReviewRepo) ListByAccount(ctx context.Context, accountID int) ([]entity.Review, error) {
	query := `SELECT ` + reviewColumns + reviewJoins + `
		WHERE r.account_id = $1 ORDER BY r.review_date DESC`
	return r.list(ctx, query, accountID)
}

func (r *ReviewRepo) list(ctx context.Context, query string, arg any) ([]entity.Review, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []entity.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, *rv)
	}
	return list, rows.Err()
}

// GetOwned lee una reseña solo si pertenece a accountID; ErrNotFound en otro caso.
func (r *ReviewRepo) GetOwned(ctx context.Context, reviewID, accountID int) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + reviewJoins + `
		WHERE r.review_id = $1 AND r.account_id = $2`
	rv, err := scanReview(r.pool.QueryRow(ctx, query, reviewID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get owned review: %w", err)
	}
	return rv, nil
}

// UpdateText cambia el texto de una reseña propia; ErrNotFound si no existe o no es del caller.
func (r *ReviewRepo) UpdateText(ctx context.Context, reviewID, accountID int, text string) (*entity.Review, error) {
	var rv entity.Review
	err := r.pool.QueryRow(ctx,
		`UPDATE review SET review_text = $3
		 WHERE review_id = $1 AND account_id = $2
		 RETURNING review_id, review_text, review_date, inv_id, account_id`,
		reviewID, accountID, text,
	).Scan(&rv.ID, &rv.Text, &rv.Date, &rv.VehicleID, &rv.AccountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update review: %w", err)
	}
	return &rv, nil
}

// Delete borra una reseña propia; ErrNotFound si no existe o no es del caller.
func (r *ReviewRepo) Delete(ctx context.Context, reviewID, accountID int) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM review WHERE review_id = $1 AND account_id = $2`, reviewID, accountID)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
