package http_test

import (
	"context"
	"strings"
	"time"

	"github.com/tu-usuario/cse-motors/internal/domain"
	"github.com/tu-usuario/cse-motors/internal/domain/entity"
)

// Fakes en memoria de los puertos de persistencia. Replican el contrato de los
// adaptadores de PostgreSQL: ErrNotFound en ausencia de fila y mutaciones de
// reseña scoped por account_id.

// ── Cuentas ───────────────────────────────────────────────────────────────────

type fakeAccountRepo struct {
	accounts map[int]*entity.Account
	nextID   int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[int]*entity.Account), nextID: 1}
}

func (f *fakeAccountRepo) Create(_ context.Context, a *entity.Account) error {
	for _, other := range f.accounts {
		if strings.EqualFold(other.Email, a.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	a.ID = f.nextID
	f.nextID++
	cp := *a
	f.accounts[a.ID] = &cp
	return nil
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id int) (*entity.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*entity.Account, error) {
	for _, a := range f.accounts {
		if strings.EqualFold(a.Email, email) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAccountRepo) EmailInUse(_ context.Context, email string, excludeID int) (bool, error) {
	for _, a := range f.accounts {
		if strings.EqualFold(a.Email, email) && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccountRepo) UpdateInfo(_ context.Context, id int, firstName, lastName, email string) (*entity.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	a.FirstName, a.LastName, a.Email = firstName, lastName, email
	cp := *a
	return &cp, nil
}

func (f *fakeAccountRepo) UpdatePassword(_ context.Context, id int, passwordHash string) error {
	a, ok := f.accounts[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.PasswordHash = passwordHash
	return nil
}

// ── Clasificaciones ───────────────────────────────────────────────────────────

type fakeClassificationRepo struct {
	items []entity.Classification
}

func (f *fakeClassificationRepo) Create(_ context.Context, name string) (*entity.Classification, error) {
	for _, c := range f.items {
		if c.Name == name {
			return nil, domain.ErrDuplicate
		}
	}
	c := entity.Classification{ID: len(f.items) + 1, Name: name}
	f.items = append(f.items, c)
	return &c, nil
}

func (f *fakeClassificationRepo) GetByID(_ context.Context, id int) (*entity.Classification, error) {
	for _, c := range f.items {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeClassificationRepo) List(_ context.Context) ([]entity.Classification, error) {
	return append([]entity.Classification(nil), f.items...), nil
}

func (f *fakeClassificationRepo) NameExists(_ context.Context, name string) (bool, error) {
	for _, c := range f.items {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// ── Vehículos ─────────────────────────────────────────────────────────────────

type fakeVehicleRepo struct {
	vehicles    map[int]*entity.Vehicle
	nextID      int
	createCalls int
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[int]*entity.Vehicle), nextID: 1}
}

func (f *fakeVehicleRepo) Create(_ context.Context, v *entity.Vehicle) error {
	f.createCalls++
	v.ID = f.nextID
	f.nextID++
	cp := *v
	f.vehicles[v.ID] = &cp
	return nil
}

func (f *fakeVehicleRepo) GetByID(_ context.Context, id int) (*entity.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVehicleRepo) ListByClassification(_ context.Context, classificationID int) ([]entity.Vehicle, error) {
	var list []entity.Vehicle
	for _, v := range f.vehicles {
		if v.ClassificationID == classificationID {
			list = append(list, *v)
		}
	}
	return list, nil
}

func (f *fakeVehicleRepo) Update(_ context.Context, v *entity.Vehicle) (*entity.Vehicle, error) {
	if _, ok := f.vehicles[v.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	cp := *v
	f.vehicles[v.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeVehicleRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.vehicles[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.vehicles, id)
	return nil
}

// ── Reseñas ───────────────────────────────────────────────────────────────────

type fakeReviewRepo struct {
	reviews map[int]*entity.Review
	nextID  int
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[int]*entity.Review), nextID: 1}
}

func (f *fakeReviewRepo) Create(_ context.Context, r *entity.Review) error {
	r.ID = f.nextID
	f.nextID++
	if r.Date.IsZero() {
		r.Date = time.Now()
	}
	cp := *r
	f.reviews[r.ID] = &cp
	return nil
}

func (f *fakeReviewRepo) ListByVehicle(_ context.Context, vehicleID int) ([]entity.Review, error) {
	var list []entity.Review
	for _, r := range f.reviews {
		if r.VehicleID == vehicleID {
			list = append(list, *r)
		}
	}
	return list, nil
}

func (f *fakeReviewRepo) ListByAccount(_ context.Context, accountID int) ([]entity.Review, error) {
	var list []entity.Review
	for _, r := range f.reviews {
		if r.AccountID == accountID {
			list = append(list, *r)
		}
	}
	return list, nil
}

func (f *fakeReviewRepo) GetOwned(_ context.Context, reviewID, accountID int) (*entity.Review, error) {
	r, ok := f.reviews[reviewID]
	if !ok || r.AccountID != accountID {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReviewRepo) UpdateText(_ context.Context, reviewID, accountID int, text string) (*entity.Review, error) {
	r, ok := f.reviews[reviewID]
	if !ok || r.AccountID != accountID {
		return nil, domain.ErrNotFound
	}
	r.Text = text
	cp := *r
	return &cp, nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, reviewID, accountID int) error {
	r, ok := f.reviews[reviewID]
	if !ok || r.AccountID != accountID {
		return domain.ErrNotFound
	}
	delete(f.reviews, reviewID)
	return nil
}

// ── Generador de fichas PDF ───────────────────────────────────────────────────

type fakeBrochureGenerator struct{}

func (fakeBrochureGenerator) GenerateBrochure(_ context.Context, _ *entity.Vehicle) ([]byte, error) {
	return []byte("%PDF-1.4 fake"), nil
}
