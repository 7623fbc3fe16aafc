package ports

import (
	"context"

	"github.com/tu-usuario/cse-motors/internal/domain/entity"
)

// BrochureGenerator genera la ficha técnica imprimible de un vehículo.
// Lo implementa infrastructure/pdf; la interfaz evita acoplar el caso de uso a Maroto.
type BrochureGenerator interface {
	GenerateBrochure(ctx context.Context, v *entity.Vehicle) ([]byte, error)
}
