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

var _ repository.ClassificationRepository = (*ClassificationRepo)(nil)

// ClassificationRepo implementación del puerto ClassificationRepository sobre PostgreSQL.
type ClassificationRepo struct {
	pool *pgxpool.Pool
}

// NewClassificationRepository construye el adaptador.
func NewClassificationRepository(pool *pgxpool.Pool) *ClassificationRepo {
	return &ClassificationRepo{pool: pool}
}

// Create inserta una clasificación. El UNIQUE del nombre convierte el 23505 en ErrDuplicate.
func (r *ClassificationRepo) Create(ctx context.Context, name string) (*entity.Classification, error) {
	var c entity.Classification
	err := r.pool.QueryRow(ctx,
		`INSERT INTO classification (classification_name) VALUES ($1)
		 RETURNING classification_id, classification_name`, name,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert classification: %w", err)
	}
	return &c, nil
}

// GetByID obtiene una clasificación por ID.
func (r *ClassificationRepo) GetByID(ctx context.Context, id int) (*entity.Classification, error) {
	var c entity.Classification
	err := r.pool.QueryRow(ctx,
		`SELECT classification_id, classification_name FROM classification WHERE classification_id = $1`, id,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get classification by id: %w", err)
	}
	return &c, nil
}

// List devuelve todas las clasificaciones ordenadas por nombre.
func (r *ClassificationRepo) List(ctx context.Context) ([]entity.Classification, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT classification_id, classification_name FROM classification ORDER BY classification_name`)
	if err != nil {
		return nil, fmt.Errorf("list classifications: %w", err)
	}
	defer rows.Close()
	var list []entity.Classification
	for rows.Next() {
		var c entity.Classification
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan classification: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// NameExists verifica si ya hay una clasificación con ese nombre.
func (r *ClassificationRepo) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM classification WHERE classification_name = $1)`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check classification name: %w", err)
	}
	return exists, nil
}
