package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/internal/domain/repository"
)

var _ repository.RepresentanteLegalRepository = (*RepresentanteLegalRepo)(nil)

// Las lecturas incluyen el nombre del cargo vía JOIN (eager load del original).
const columnasRepresentante = `r.id, r.id_empresa, r.id_cargo, r.id_tipodocumento, r.numero_documento,
	r.nombres, r.apellidos, r.correo, r.telefono,
	r.user_crea, r.user_actualiza, r.user_elimina, r.sistema, r.estado,
	r.created_at, r.updated_at, r.deleted_at, COALESCE(c.nombre, '')`

var filtroRepresentante = []string{"r.nombres", "r.apellidos", "r.numero_documento"}

// RepresentanteLegalRepo implementación del puerto sobre PostgreSQL.
type RepresentanteLegalRepo struct {
	db DB
}

// NewRepresentanteLegalRepository construye el adaptador de persistencia.
func NewRepresentanteLegalRepository(db DB) *RepresentanteLegalRepo {
	return &RepresentanteLegalRepo{db: db}
}

func (r *RepresentanteLegalRepo) scan(row interface{ Scan(...any) error }) (*entity.RepresentanteLegal, error) {
	var rl entity.RepresentanteLegal
	err := row.Scan(
		&rl.ID, &rl.IDEmpresa, &rl.IDCargo, &rl.IDTipoDocumento, &rl.NumeroDocumento,
		&rl.Nombres, &rl.Apellidos, &rl.Correo, &rl.Telefono,
		&rl.UserCrea, &rl.UserActualiza, &rl.UserElimina, &rl.Sistema, &rl.Estado,
		&rl.CreatedAt, &rl.UpdatedAt, &rl.DeletedAt, &rl.NombreCargo,
	)
	if err != nil {
		return nil, err
	}
	return &rl, nil
}

func (r *RepresentanteLegalRepo) list(ctx context.Context, query string, args ...any) ([]*entity.RepresentanteLegal, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list representantes: %w", err)
	}
	defer rows.Close()

	var result []*entity.RepresentanteLegal
	for rows.Next() {
		rl, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan representante: %w", err)
		}
		result = append(result, rl)
	}
	return result, rows.Err()
}

const baseRepresentante = `FROM representantes_legales r
	LEFT JOIN cargos c ON c.id = r.id_cargo AND c.deleted_at IS NULL`

// GetAll devuelve todos los representantes no eliminados ordenados por apellidos.
func (r *RepresentanteLegalRepo) GetAll(ctx context.Context) ([]*entity.RepresentanteLegal, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE r.deleted_at IS NULL ORDER BY r.apellidos, r.nombres`,
		columnasRepresentante, baseRepresentante)
	return r.list(ctx, query)
}

// GetAllByEmpresa devuelve los representantes de una empresa.
func (r *RepresentanteLegalRepo) GetAllByEmpresa(ctx context.Context, idEmpresa string) ([]*entity.RepresentanteLegal, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE r.deleted_at IS NULL AND r.id_empresa = $1
		ORDER BY r.apellidos, r.nombres`, columnasRepresentante, baseRepresentante)
	return r.list(ctx, query, idEmpresa)
}

// GetAllPaginado devuelve una página y el total, con filtro por nombres/apellidos/documento.
func (r *RepresentanteLegalRepo) GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.RepresentanteLegal, int64, error) {
	where := "r.deleted_at IS NULL"
	args := []any{}
	if filter != "" {
		args = append(args, "%"+filter+"%")
		where += " AND " + filtroILike(filtroRepresentante, len(args))
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) %s WHERE %s`, baseRepresentante, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count representantes: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s %s WHERE %s ORDER BY r.apellidos, r.nombres LIMIT $%d OFFSET $%d`,
		columnasRepresentante, baseRepresentante, where, len(args)+1, len(args)+2)
	args = append(args, limit, offsetDe(page, limit))

	items, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID obtiene un representante por ID.
func (r *RepresentanteLegalRepo) GetByID(ctx context.Context, id string) (*entity.RepresentanteLegal, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE r.id = $1 AND r.deleted_at IS NULL`,
		columnasRepresentante, baseRepresentante)
	rl, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get representante: %w", err)
	}
	return rl, nil
}

// Create persiste un nuevo representante legal.
func (r *RepresentanteLegalRepo) Create(ctx context.Context, rl *entity.RepresentanteLegal) error {
	query := `
		INSERT INTO representantes_legales (id, id_empresa, id_cargo, id_tipodocumento,
			numero_documento, nombres, apellidos, correo, telefono,
			user_crea, sistema, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		rl.ID, rl.IDEmpresa, rl.IDCargo, rl.IDTipoDocumento,
		rl.NumeroDocumento, rl.Nombres, rl.Apellidos, rl.Correo, rl.Telefono,
		rl.UserCrea, rl.Sistema, rl.Estado, rl.CreatedAt, rl.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert representante: %w", err)
	}
	return nil
}

// Update actualiza un representante existente.
func (r *RepresentanteLegalRepo) Update(ctx context.Context, rl *entity.RepresentanteLegal) error {
	query := `
		UPDATE representantes_legales SET id_empresa = $2, id_cargo = $3, id_tipodocumento = $4,
			numero_documento = $5, nombres = $6, apellidos = $7, correo = $8, telefono = $9,
			estado = $10, user_actualiza = $11, updated_at = $12
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.db.Exec(ctx, query,
		rl.ID, rl.IDEmpresa, rl.IDCargo, rl.IDTipoDocumento,
		rl.NumeroDocumento, rl.Nombres, rl.Apellidos, rl.Correo, rl.Telefono,
		rl.Estado, rl.UserActualiza, rl.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update representante: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateEstado cambia solo la bandera de activo.
func (r *RepresentanteLegalRepo) UpdateEstado(ctx context.Context, id string, estado bool, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE representantes_legales SET estado = $2, user_actualiza = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`, id, estado, nullIfEmpty(userID), time.Now())
	if err != nil {
		return fmt.Errorf("update estado representante: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el representante como eliminado.
func (r *RepresentanteLegalRepo) SoftDelete(ctx context.Context, id, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE representantes_legales SET deleted_at = $2, user_elimina = $3, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`, id, time.Now(), nullIfEmpty(userID))
	if err != nil {
		return fmt.Errorf("delete representante: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
