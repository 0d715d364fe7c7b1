package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/internal/domain/repository"
)

var _ repository.DocumentoRepository = (*DocumentoRepo)(nil)

const columnasDocumento = `id, id_descansomedico, nombre, nombre_archivo, ruta, tipo_contenido, tamanio,
	user_crea, user_actualiza, user_elimina, sistema, estado, created_at, updated_at, deleted_at`

// DocumentoRepo implementación del puerto DocumentoRepository sobre PostgreSQL.
// Recibe DB para que Create pueda ejecutarse en la transacción de TxRunner
// junto con la escritura del archivo en disco.
type DocumentoRepo struct {
	db DB
}

// NewDocumentoRepository construye el adaptador de persistencia para adjuntos.
func NewDocumentoRepository(db DB) *DocumentoRepo {
	return &DocumentoRepo{db: db}
}

func (r *DocumentoRepo) scan(row interface{ Scan(...any) error }) (*entity.Documento, error) {
	var d entity.Documento
	err := row.Scan(
		&d.ID, &d.IDDescansoMedico, &d.Nombre, &d.NombreArchivo, &d.Ruta, &d.TipoContenido, &d.Tamanio,
		&d.UserCrea, &d.UserActualiza, &d.UserElimina,
		&d.Sistema, &d.Estado, &d.CreatedAt, &d.UpdatedAt, &d.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetAllByDescanso devuelve los adjuntos de un descanso médico.
func (r *DocumentoRepo) GetAllByDescanso(ctx context.Context, idDescanso string) ([]*entity.Documento, error) {
	query := fmt.Sprintf(`SELECT %s FROM documentos
		WHERE id_descansomedico = $1 AND deleted_at IS NULL ORDER BY created_at`, columnasDocumento)
	rows, err := r.db.Query(ctx, query, idDescanso)
	if err != nil {
		return nil, fmt.Errorf("list documentos: %w", err)
	}
	defer rows.Close()

	var result []*entity.Documento
	for rows.Next() {
		d, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan documento: %w", err)
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

// GetByID obtiene un adjunto por ID.
func (r *DocumentoRepo) GetByID(ctx context.Context, id string) (*entity.Documento, error) {
	query := fmt.Sprintf(`SELECT %s FROM documentos WHERE id = $1 AND deleted_at IS NULL`, columnasDocumento)
	d, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get documento: %w", err)
	}
	return d, nil
}

// Create persiste los metadatos de un adjunto.
func (r *DocumentoRepo) Create(ctx context.Context, d *entity.Documento) error {
	query := `
		INSERT INTO documentos (id, id_descansomedico, nombre, nombre_archivo, ruta, tipo_contenido, tamanio,
			user_crea, sistema, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		d.ID, d.IDDescansoMedico, d.Nombre, d.NombreArchivo, d.Ruta, d.TipoContenido, d.Tamanio,
		d.UserCrea, d.Sistema, d.Estado, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert documento: %w", err)
	}
	return nil
}

// Update actualiza el nombre visible de un adjunto.
func (r *DocumentoRepo) Update(ctx context.Context, d *entity.Documento) error {
	query := `
		UPDATE documentos SET nombre = $2, estado = $3, user_actualiza = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.db.Exec(ctx, query, d.ID, d.Nombre, d.Estado, d.UserActualiza, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update documento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el adjunto como eliminado. El archivo queda en disco.
func (r *DocumentoRepo) SoftDelete(ctx context.Context, id, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE documentos SET deleted_at = $2, user_elimina = $3, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`, id, time.Now(), nullIfEmpty(userID))
	if err != nil {
		return fmt.Errorf("delete documento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
