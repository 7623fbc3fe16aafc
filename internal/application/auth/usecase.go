package auth

import (
	"context"
	"errors"
	"time"

	"github.com/tu-usuario/cse-motors/internal/domain"
	"github.com/tu-usuario/cse-motors/internal/domain/entity"
	"github.com/tu-usuario/cse-motors/internal/domain/repository"
	"github.com/tu-usuario/cse-motors/pkg/password"
	"github.com/tu-usuario/cse-motors/pkg/token"
)

// JWTConfig configuración para emisión de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TTL duración del token emitido.
func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.ExpMinutes) * time.Minute
}

// AuthUseCase casos de uso de autenticación: registro, login y autoservicio de perfil.
type AuthUseCase struct {
	accounts repository.AccountRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(accounts repository.AccountRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, jwtCfg: jwtCfg}
}

// Register crea una cuenta con rol Client: hashea el password con bcrypt y persiste.
// Devuelve domain.ErrEmailAlreadyExists si el email ya está tomado; el pre-check
// deja una ventana de carrera que cierra el UNIQUE de la tabla (mismo sentinel).
func (uc *AuthUseCase) Register(ctx context.Context, firstName, lastName, email, plain string) (*entity.Account, error) {
	inUse, err := uc.accounts.EmailInUse(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}
	account := &entity.Account{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		Type:         entity.TypeClient,
		CreatedAt:    time.Now(),
	}
	if err := uc.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login verifica email/password y emite el token de sesión con la foto de la cuenta.
// Email desconocido y password incorrecto devuelven el mismo ErrUnauthorized:
// la respuesta nunca revela si el email existe.
func (uc *AuthUseCase) Login(ctx context.Context, email, plain string) (string, *entity.Account, error) {
	account, err := uc.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrUnauthorized
		}
		return "", nil, err
	}
	if !password.Verify(plain, account.PasswordHash) {
		return "", nil, domain.ErrUnauthorized
	}
	tok, err := token.Issue(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, token.AccountClaims{
		AccountID:   account.ID,
		FirstName:   account.FirstName,
		LastName:    account.LastName,
		Email:       account.Email,
		AccountType: account.Type,
	}, uc.jwtCfg.TTL())
	if err != nil {
		return "", nil, err
	}
	return tok, account, nil
}

// UpdateInfo actualiza nombre y email de la cuenta. El email debe seguir siendo
// único excluyendo la propia cuenta.
func (uc *AuthUseCase) UpdateInfo(ctx context.Context, accountID int, firstName, lastName, email string) (*entity.Account, error) {
	inUse, err := uc.accounts.EmailInUse(ctx, email, accountID)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, domain.ErrEmailAlreadyExists
	}
	return uc.accounts.UpdateInfo(ctx, accountID, firstName, lastName, email)
}

// UpdatePassword rehashea y persiste el nuevo password de la cuenta.
func (uc *AuthUseCase) UpdatePassword(ctx context.Context, accountID int, plain string) error {
	hash, err := password.Hash(plain)
	if err != nil {
		return err
	}
	return uc.accounts.UpdatePassword(ctx, accountID, hash)
}

// GetAccount lee una cuenta por ID (vista de edición de perfil).
func (uc *AuthUseCase) GetAccount(ctx context.Context, accountID int) (*entity.Account, error) {
	return uc.accounts.GetByID(ctx, accountID)
}

// EmailInUse expone el pre-check de unicidad para la fase de validación del formulario.
func (uc *AuthUseCase) EmailInUse(ctx context.Context, email string, excludeID int) (bool, error) {
	return uc.accounts.EmailInUse(ctx, email, excludeID)
}
