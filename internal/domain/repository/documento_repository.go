package repository

import (
	"context"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// DocumentoRepository define el puerto de persistencia para los adjuntos.
// Create se ejecuta dentro de TxRunner junto con la escritura del archivo.
type DocumentoRepository interface {
	GetAllByDescanso(ctx context.Context, idDescanso string) ([]*entity.Documento, error)
	GetByID(ctx context.Context, id string) (*entity.Documento, error)
	Create(ctx context.Context, d *entity.Documento) error
	Update(ctx context.Context, d *entity.Documento) error
	SoftDelete(ctx context.Context, id, userID string) error
}
