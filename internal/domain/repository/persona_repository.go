package repository

import (
	"context"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// PersonaRepository define el puerto de persistencia para Persona.
type PersonaRepository interface {
	GetAll(ctx context.Context) ([]*entity.Persona, error)
	GetAllByEstado(ctx context.Context, estado bool) ([]*entity.Persona, error)
	GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.Persona, int64, error)
	GetByID(ctx context.Context, id string) (*entity.Persona, error)
	GetByNumeroDocumento(ctx context.Context, numero string) (*entity.Persona, error)
	Create(ctx context.Context, p *entity.Persona) error
	Update(ctx context.Context, p *entity.Persona) error
	UpdateEstado(ctx context.Context, id string, estado bool, userID string) error
	SoftDelete(ctx context.Context, id, userID string) error
}
