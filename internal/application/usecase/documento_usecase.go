package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bsalazar/descansos-api/internal/application/dto"
	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/internal/domain/repository"
)

// DocumentoTx ejecuta el alta del adjunto en una transacción (implementado
// por postgres.TxRunner).
type DocumentoTx interface {
	RunDocumento(ctx context.Context, fn func(docRepo repository.DocumentoRepository) error) error
}

// ArchivoSubido es el archivo del multipart ya leído en memoria.
type ArchivoSubido struct {
	NombreArchivo string
	TipoContenido string
	Contenido     []byte
}

// DocumentoUseCase casos de uso de adjuntos. El archivo se escribe en disco
// dentro de la misma transacción que la fila de metadatos: si el INSERT
// falla, el archivo se borra; si la escritura falla, se hace rollback.
type DocumentoUseCase struct {
	repo         repository.DocumentoRepository
	descansoRepo repository.DescansoMedicoRepository
	tx           DocumentoTx
	dir          string
	maxBytes     int64
}

// NewDocumentoUseCase construye el caso de uso. dir es el directorio raíz de
// uploads; maxBytes limita el tamaño del archivo.
func NewDocumentoUseCase(repo repository.DocumentoRepository, descansoRepo repository.DescansoMedicoRepository, tx DocumentoTx, dir string, maxBytes int64) *DocumentoUseCase {
	return &DocumentoUseCase{repo: repo, descansoRepo: descansoRepo, tx: tx, dir: dir, maxBytes: maxBytes}
}

// GetAllByDescanso lista los adjuntos de un descanso.
func (uc *DocumentoUseCase) GetAllByDescanso(ctx context.Context, idDescanso string) ([]dto.DocumentoResponse, error) {
	items, err := uc.repo.GetAllByDescanso(ctx, idDescanso)
	if err != nil {
		return nil, err
	}
	return dto.NewDocumentoResponseList(items), nil
}

// GetByID obtiene los metadatos de un adjunto.
func (uc *DocumentoUseCase) GetByID(ctx context.Context, id string) (*dto.DocumentoResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewDocumentoResponse(d)
	return &resp, nil
}

// Crear valida, y dentro de una transacción inserta la fila de metadatos y
// escribe el archivo; si cualquiera falla, no queda ni fila ni archivo.
func (uc *DocumentoUseCase) Crear(ctx context.Context, req dto.CreateDocumentoRequest, archivo ArchivoSubido, userID string) (*dto.DocumentoResponse, error) {
	if req.IDDescansoMedico == "" {
		return nil, fmt.Errorf("%w: id_descansomedico es requerido", domain.ErrInvalidInput)
	}
	if len(archivo.Contenido) == 0 {
		return nil, fmt.Errorf("%w: el archivo es requerido", domain.ErrInvalidInput)
	}
	if uc.maxBytes > 0 && int64(len(archivo.Contenido)) > uc.maxBytes {
		return nil, fmt.Errorf("%w: el archivo excede el tamaño máximo permitido", domain.ErrInvalidInput)
	}

	descanso, err := uc.descansoRepo.GetByID(ctx, req.IDDescansoMedico)
	if err != nil {
		return nil, err
	}
	if descanso == nil {
		return nil, fmt.Errorf("%w: el descanso médico no existe", domain.ErrNotFound)
	}

	id := uuid.New().String()
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		nombre = archivo.NombreArchivo
	}
	// Ruta relativa: <id_descanso>/<uuid><ext>. El uuid evita colisiones y
	// sanea cualquier nombre de archivo hostil.
	ruta := filepath.Join(req.IDDescansoMedico, id+filepath.Ext(archivo.NombreArchivo))
	destino := filepath.Join(uc.dir, ruta)

	now := time.Now()
	d := &entity.Documento{
		ID:               id,
		IDDescansoMedico: req.IDDescansoMedico,
		Nombre:           nombre,
		NombreArchivo:    archivo.NombreArchivo,
		Ruta:             ruta,
		TipoContenido:    archivo.TipoContenido,
		Tamanio:          int64(len(archivo.Contenido)),
	}
	d.Estado = true
	d.UserCrea = nullable(userID)
	d.CreatedAt = now
	d.UpdatedAt = now

	err = uc.tx.RunDocumento(ctx, func(docRepo repository.DocumentoRepository) error {
		if err := docRepo.Create(ctx, d); err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(destino), 0o755); err != nil {
			return fmt.Errorf("crear directorio de uploads: %w", err)
		}
		if err := os.WriteFile(destino, archivo.Contenido, 0o644); err != nil {
			return fmt.Errorf("escribir adjunto: %w", err)
		}
		return nil
	})
	if err != nil {
		// El rollback deshizo la fila; el archivo puede haber quedado escrito.
		_ = os.Remove(destino)
		return nil, err
	}

	resp := dto.NewDocumentoResponse(d)
	return &resp, nil
}

// Abrir devuelve los metadatos y el contenido del archivo para descarga.
func (uc *DocumentoUseCase) Abrir(ctx context.Context, id string) (*dto.DocumentoResponse, []byte, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if d == nil {
		return nil, nil, domain.ErrNotFound
	}
	contenido, err := os.ReadFile(filepath.Join(uc.dir, d.Ruta))
	if err != nil {
		return nil, nil, fmt.Errorf("leer adjunto %s: %w", d.ID, err)
	}
	resp := dto.NewDocumentoResponse(d)
	return &resp, contenido, nil
}

// Actualizar cambia el nombre visible o el estado del adjunto.
func (uc *DocumentoUseCase) Actualizar(ctx context.Context, id string, req dto.UpdateDocumentoRequest, userID string) (*dto.DocumentoResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}

	if req.Nombre != nil {
		nombre := strings.TrimSpace(*req.Nombre)
		if nombre == "" {
			return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
		}
		d.Nombre = nombre
	}
	if req.Estado != nil {
		d.Estado = *req.Estado
	}
	d.UserActualiza = nullable(userID)
	d.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	resp := dto.NewDocumentoResponse(d)
	return &resp, nil
}

// Eliminar marca el adjunto como eliminado. El archivo queda en disco para
// auditoría.
func (uc *DocumentoUseCase) Eliminar(ctx context.Context, id, userID string) error {
	return uc.repo.SoftDelete(ctx, id, userID)
}
