package repository

import (
	"context"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// DescansoMedicoRepository define el puerto de persistencia para DescansoMedico.
type DescansoMedicoRepository interface {
	GetAll(ctx context.Context) ([]*entity.DescansoMedico, error)
	GetAllByEstado(ctx context.Context, estado bool) ([]*entity.DescansoMedico, error)
	GetAllByPersona(ctx context.Context, idPersona string) ([]*entity.DescansoMedico, error)
	GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.DescansoMedico, int64, error)
	GetByID(ctx context.Context, id string) (*entity.DescansoMedico, error)
	// GetDetalle devuelve el descanso con los nombres de persona, empresa,
	// diagnóstico y contingencia resueltos (para lecturas por ID y constancia).
	GetDetalle(ctx context.Context, id string) (*entity.DescansoMedicoDetalle, error)
	Create(ctx context.Context, d *entity.DescansoMedico) error
	Update(ctx context.Context, d *entity.DescansoMedico) error
	UpdateEstado(ctx context.Context, id string, estado bool, userID string) error
	SoftDelete(ctx context.Context, id, userID string) error
}
