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

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	pool *pgxpool.Pool
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

const accountColumns = `account_id, account_firstname, account_lastname, account_email, account_password, account_type, created_at`

// Create persiste una cuenta nueva y deja el ID generado en la entidad.
// El UNIQUE de account_email convierte el 23505 en ErrEmailAlreadyExists.
func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) error {
	query := `
		INSERT INTO account (account_firstname, account_lastname, account_email, account_password, account_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING account_id`
	err := r.pool.QueryRow(ctx, query,
		a.FirstName, a.LastName, a.Email, a.PasswordHash, a.Type, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *AccountRepo) GetByID(ctx context.Context, id int) (*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM account WHERE account_id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByEmail obtiene una cuenta por email.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM account WHERE account_email = $1`
	return r.scanOne(ctx, query, email)
}

func (r *AccountRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Account, error) {
	var a entity.Account
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.PasswordHash, &a.Type, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// EmailInUse indica si el email pertenece a una cuenta distinta de excludeID.
func (r *AccountRepo) EmailInUse(ctx context.Context, email string, excludeID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM account WHERE account_email = $1 AND account_id <> $2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check email in use: %w", err)
	}
	return exists, nil
}

// UpdateInfo actualiza nombre y email y devuelve la fila actualizada.
func (r *AccountRepo) UpdateInfo(ctx context.Context, id int, firstName, lastName, email string) (*entity.Account, error) {
	query := `
		UPDATE account
		SET account_firstname = $2, account_lastname = $3, account_email = $4
		WHERE account_id = $1
		RETURNING ` + accountColumns
	var a entity.Account
	err := r.pool.QueryRow(ctx, query, id, firstName, lastName, email).Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.PasswordHash, &a.Type, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("update account info: %w", err)
	}
	return &a, nil
}

// UpdatePassword reemplaza solo el hash del password.
func (r *AccountRepo) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE account SET account_password = $2 WHERE account_id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update account password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
