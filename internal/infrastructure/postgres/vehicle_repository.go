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

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación del puerto VehicleRepository sobre PostgreSQL.
type VehicleRepo struct {
	pool *pgxpool.Pool
}

// NewVehicleRepository construye el adaptador de persistencia del inventario.
func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepo {
	return &VehicleRepo{pool: pool}
}

const vehicleColumns = `
	i.inv_id, i.inv_make, i.inv_model, i.inv_year, i.inv_description,
	i.inv_image, i.inv_thumbnail, i.inv_price, i.inv_miles, i.inv_color,
	i.classification_id, c.classification_name`

func scanVehicle(row pgx.Row) (*entity.Vehicle, error) {
	var v entity.Vehicle
	err := row.Scan(
		&v.ID, &v.Make, &v.Model, &v.Year, &v.Description,
		&v.Image, &v.Thumbnail, &v.Price, &v.Miles, &v.Color,
		&v.ClassificationID, &v.ClassificationName,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create persiste un vehículo nuevo y deja el ID generado en la entidad.
func (r *VehicleRepo) Create(ctx context.Context, v *entity.Vehicle) error {
	query := `
		INSERT INTO inventory (inv_make, inv_model, inv_year, inv_description,
			inv_image, inv_thumbnail, inv_price, inv_miles, inv_color, classification_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING inv_id`
	err := r.pool.QueryRow(ctx, query,
		v.Make, v.Model, v.Year, v.Description,
		v.Image, v.Thumbnail, v.Price, v.Miles, v.Color, v.ClassificationID,
	).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

// GetByID obtiene un vehículo con su clasificación.
func (r *VehicleRepo) GetByID(ctx context.Context, id int) (*entity.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM inventory AS i
		JOIN classification AS c ON i.classification_id = c.classification_id
		WHERE i.inv_id = $1`
	v, err := scanVehicle(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get vehicle by id: %w", err)
	}
	return v, nil
}

// ListByClassification lista los vehículos de una clasificación ordenados por marca y modelo.
func (r *VehicleRepo) ListByClassification(ctx context.Context, classificationID int) ([]entity.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM inventory AS i
		JOIN classification AS c ON i.classification_id = c.classification_id
		WHERE i.classification_id = $1
		ORDER BY i.inv_make, i.inv_model`
	rows, err := r.pool.Query(ctx, query, classificationID)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()
	var list []entity.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, *v)
	}
	return list, rows.Err()
}

// Update modifica un vehículo y devuelve la fila actualizada; ErrNotFound si no existe.
func (r *VehicleRepo) Update(ctx context.Context, v *entity.Vehicle) (*entity.Vehicle, error) {
	query := `
		UPDATE inventory
		SET inv_make = $2, inv_model = $3, inv_year = $4, inv_description = $5,
			inv_image = $6, inv_thumbnail = $7, inv_price = $8, inv_miles = $9,
			inv_color = $10, classification_id = $11
		WHERE inv_id = $1
		RETURNING inv_id, inv_make, inv_model, inv_year, inv_description,
			inv_image, inv_thumbnail, inv_price, inv_miles, inv_color, classification_id`
	var out entity.Vehicle
	err := r.pool.QueryRow(ctx, query,
		v.ID, v.Make, v.Model, v.Year, v.Description,
		v.Image, v.Thumbnail, v.Price, v.Miles, v.Color, v.ClassificationID,
	).Scan(
		&out.ID, &out.Make, &out.Model, &out.Year, &out.Description,
		&out.Image, &out.Thumbnail, &out.Price, &out.Miles, &out.Color,
		&out.ClassificationID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update vehicle: %w", err)
	}
	return &out, nil
}

// Delete elimina un vehículo; ErrNotFound si no existía.
func (r *VehicleRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM inventory WHERE inv_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
