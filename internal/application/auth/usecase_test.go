package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cse-motors/internal/application/auth"
	"github.com/tu-usuario/cse-motors/internal/domain"
	"github.com/tu-usuario/cse-motors/internal/domain/entity"
	"github.com/tu-usuario/cse-motors/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake in-memory de AccountRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeAccountRepo struct {
	accounts map[int]*entity.Account
	nextID   int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[int]*entity.Account{}, nextID: 1}
}

func (f *fakeAccountRepo) Create(_ context.Context, a *entity.Account) error {
	for _, ex := range f.accounts {
		if ex.Email == a.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	a.ID = f.nextID
	f.nextID++
	f.accounts[a.ID] = a
	return nil
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id int) (*entity.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (f *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*entity.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAccountRepo) EmailInUse(_ context.Context, email string, excludeID int) (bool, error) {
	for _, a := range f.accounts {
		if a.Email == email && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccountRepo) UpdateInfo(_ context.Context, id int, first, last, email string) (*entity.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	a.FirstName, a.LastName, a.Email = first, last, email
	return a, nil
}

func (f *fakeAccountRepo) UpdatePassword(_ context.Context, id int, hash string) error {
	a, ok := f.accounts[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.PasswordHash = hash
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "test-secret-key-for-unit-tests"

func newUseCase(repo *fakeAccountRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "cse-motors-test",
	})
}

func TestRegister_AsignaRolClient(t *testing.T) {
	uc := newUseCase(newFakeAccountRepo())

	acct, err := uc.Register(context.Background(), "Ana", "Bell", "ana@example.com", "Sup3r!LongPassword")
	require.NoError(t, err)

	assert.Equal(t, entity.TypeClient, acct.Type, "toda cuenta nueva nace Client")
	assert.NotEqual(t, "Sup3r!LongPassword", acct.PasswordHash, "el password nunca se guarda en claro")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeAccountRepo()
	uc := newUseCase(repo)

	_, err := uc.Register(context.Background(), "Ana", "Bell", "a@b.com", "Sup3r!LongPassword")
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), "Otra", "Persona", "a@b.com", "Otr0!LongPassword")
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Len(t, repo.accounts, 1, "el segundo registro no debe insertar")
}

func TestLogin_EmiteTokenConFotoDeLaCuenta(t *testing.T) {
	uc := newUseCase(newFakeAccountRepo())
	_, err := uc.Register(context.Background(), "Ana", "Bell", "ana@example.com", "Sup3r!LongPassword")
	require.NoError(t, err)

	tok, acct, err := uc.Login(context.Background(), "ana@example.com", "Sup3r!LongPassword")
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.Equal(t, "ana@example.com", acct.Email)

	claims, err := token.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, acct.ID, claims.AccountID)
	assert.Equal(t, "Ana", claims.FirstName)
	assert.Equal(t, entity.TypeClient, claims.AccountType)
}

func TestLogin_ErrorGenericoNoRevelaSiElEmailExiste(t *testing.T) {
	uc := newUseCase(newFakeAccountRepo())
	_, err := uc.Register(context.Background(), "Ana", "Bell", "ana@example.com", "Sup3r!LongPassword")
	require.NoError(t, err)

	// Password incorrecto y email inexistente producen el mismo sentinel.
	_, _, errBadPass := uc.Login(context.Background(), "ana@example.com", "password-malo")
	_, _, errNoEmail := uc.Login(context.Background(), "nadie@example.com", "da-igual")

	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoEmail, domain.ErrUnauthorized)
}

func TestUpdateInfo_EmailDeOtraCuenta(t *testing.T) {
	uc := newUseCase(newFakeAccountRepo())
	a1, err := uc.Register(context.Background(), "Ana", "Bell", "ana@example.com", "Sup3r!LongPassword")
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), "Bob", "Cruz", "bob@example.com", "Otr0!LongPassword")
	require.NoError(t, err)

	// Cambiar al email de Bob debe rechazarse; conservar el propio debe pasar.
	_, err = uc.UpdateInfo(context.Background(), a1.ID, "Ana", "Bell", "bob@example.com")
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	updated, err := uc.UpdateInfo(context.Background(), a1.ID, "Anita", "Bell", "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Anita", updated.FirstName)
}

func TestUpdatePassword_RehasheaYPermiteLogin(t *testing.T) {
	uc := newUseCase(newFakeAccountRepo())
	acct, err := uc.Register(context.Background(), "Ana", "Bell", "ana@example.com", "Sup3r!LongPassword")
	require.NoError(t, err)

	require.NoError(t, uc.UpdatePassword(context.Background(), acct.ID, "Nuev0!LongPassword"))

	_, _, err = uc.Login(context.Background(), "ana@example.com", "Sup3r!LongPassword")
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "el password viejo deja de servir")

	_, _, err = uc.Login(context.Background(), "ana@example.com", "Nuev0!LongPassword")
	assert.NoError(t, err)
}
