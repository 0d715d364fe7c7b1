package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/internal/domain/repository"
)

var _ repository.DescansoMedicoRepository = (*DescansoMedicoRepo)(nil)

const columnasDescanso = `d.id, d.id_persona, d.id_empresa, d.id_diagnostico, d.id_tipocontingencia,
	d.fecha_inicio, d.fecha_fin, d.total_dias, d.observacion,
	d.user_crea, d.user_actualiza, d.user_elimina, d.sistema, d.estado,
	d.created_at, d.updated_at, d.deleted_at`

// El filtro paginado busca por la persona y por el diagnóstico.
const baseDescanso = `FROM descansos_medicos d
	JOIN personas p ON p.id = d.id_persona
	JOIN diagnosticos dx ON dx.id = d.id_diagnostico`

var filtroDescanso = []string{"p.nombres", "p.apellido_paterno", "p.apellido_materno", "p.numero_documento", "dx.codigo", "dx.nombre"}

// DescansoMedicoRepo implementación del puerto sobre PostgreSQL.
type DescansoMedicoRepo struct {
	db DB
}

// NewDescansoMedicoRepository construye el adaptador de persistencia.
func NewDescansoMedicoRepository(db DB) *DescansoMedicoRepo {
	return &DescansoMedicoRepo{db: db}
}

func (r *DescansoMedicoRepo) scan(row interface{ Scan(...any) error }) (*entity.DescansoMedico, error) {
	var d entity.DescansoMedico
	err := row.Scan(
		&d.ID, &d.IDPersona, &d.IDEmpresa, &d.IDDiagnostico, &d.IDTipoContingencia,
		&d.FechaInicio, &d.FechaFin, &d.TotalDias, &d.Observacion,
		&d.UserCrea, &d.UserActualiza, &d.UserElimina, &d.Sistema, &d.Estado,
		&d.CreatedAt, &d.UpdatedAt, &d.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DescansoMedicoRepo) list(ctx context.Context, query string, args ...any) ([]*entity.DescansoMedico, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list descansos: %w", err)
	}
	defer rows.Close()

	var result []*entity.DescansoMedico
	for rows.Next() {
		d, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan descanso: %w", err)
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

// GetAll devuelve todos los descansos no eliminados, del más reciente al más antiguo.
func (r *DescansoMedicoRepo) GetAll(ctx context.Context) ([]*entity.DescansoMedico, error) {
	query := fmt.Sprintf(`SELECT %s FROM descansos_medicos d WHERE d.deleted_at IS NULL
		ORDER BY d.fecha_inicio DESC`, columnasDescanso)
	return r.list(ctx, query)
}

// GetAllByEstado devuelve los descansos filtrados por estado.
func (r *DescansoMedicoRepo) GetAllByEstado(ctx context.Context, estado bool) ([]*entity.DescansoMedico, error) {
	query := fmt.Sprintf(`SELECT %s FROM descansos_medicos d WHERE d.deleted_at IS NULL AND d.estado = $1
		ORDER BY d.fecha_inicio DESC`, columnasDescanso)
	return r.list(ctx, query, estado)
}

// GetAllByPersona devuelve el historial de descansos de una persona.
func (r *DescansoMedicoRepo) GetAllByPersona(ctx context.Context, idPersona string) ([]*entity.DescansoMedico, error) {
	query := fmt.Sprintf(`SELECT %s FROM descansos_medicos d WHERE d.deleted_at IS NULL AND d.id_persona = $1
		ORDER BY d.fecha_inicio DESC`, columnasDescanso)
	return r.list(ctx, query, idPersona)
}

// GetAllPaginado devuelve una página y el total, con filtro por persona o diagnóstico.
func (r *DescansoMedicoRepo) GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.DescansoMedico, int64, error) {
	where := "d.deleted_at IS NULL"
	args := []any{}
	if filter != "" {
		args = append(args, "%"+filter+"%")
		where += " AND " + filtroILike(filtroDescanso, len(args))
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) %s WHERE %s`, baseDescanso, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count descansos: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s %s WHERE %s ORDER BY d.fecha_inicio DESC LIMIT $%d OFFSET $%d`,
		columnasDescanso, baseDescanso, where, len(args)+1, len(args)+2)
	args = append(args, limit, offsetDe(page, limit))

	items, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID obtiene un descanso por ID.
func (r *DescansoMedicoRepo) GetByID(ctx context.Context, id string) (*entity.DescansoMedico, error) {
	query := fmt.Sprintf(`SELECT %s FROM descansos_medicos d WHERE d.id = $1 AND d.deleted_at IS NULL`, columnasDescanso)
	d, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get descanso: %w", err)
	}
	return d, nil
}

// GetDetalle obtiene el descanso con los nombres de persona, empresa,
// diagnóstico y contingencia resueltos vía JOIN.
func (r *DescansoMedicoRepo) GetDetalle(ctx context.Context, id string) (*entity.DescansoMedicoDetalle, error) {
	query := fmt.Sprintf(`
		SELECT %s,
			TRIM(p.nombres || ' ' || p.apellido_paterno || ' ' || p.apellido_materno),
			p.numero_documento,
			e.razon_social, e.ruc,
			dx.codigo, dx.nombre,
			tc.nombre
		%s
		JOIN empresas e ON e.id = d.id_empresa
		JOIN tipos_contingencia tc ON tc.id = d.id_tipocontingencia
		WHERE d.id = $1 AND d.deleted_at IS NULL`, columnasDescanso, baseDescanso)

	var det entity.DescansoMedicoDetalle
	err := r.db.QueryRow(ctx, query, id).Scan(
		&det.ID, &det.IDPersona, &det.IDEmpresa, &det.IDDiagnostico, &det.IDTipoContingencia,
		&det.FechaInicio, &det.FechaFin, &det.TotalDias, &det.Observacion,
		&det.UserCrea, &det.UserActualiza, &det.UserElimina, &det.Sistema, &det.Estado,
		&det.CreatedAt, &det.UpdatedAt, &det.DeletedAt,
		&det.Persona, &det.DocumentoPersona,
		&det.Empresa, &det.RUCEmpresa,
		&det.CodigoDiagnostico, &det.Diagnostico,
		&det.TipoContingencia,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle descanso: %w", err)
	}
	return &det, nil
}

// Create persiste un nuevo descanso médico.
func (r *DescansoMedicoRepo) Create(ctx context.Context, d *entity.DescansoMedico) error {
	query := `
		INSERT INTO descansos_medicos (id, id_persona, id_empresa, id_diagnostico, id_tipocontingencia,
			fecha_inicio, fecha_fin, total_dias, observacion,
			user_crea, sistema, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		d.ID, d.IDPersona, d.IDEmpresa, d.IDDiagnostico, d.IDTipoContingencia,
		d.FechaInicio, d.FechaFin, d.TotalDias, d.Observacion,
		d.UserCrea, d.Sistema, d.Estado, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert descanso: %w", err)
	}
	return nil
}

// Update actualiza un descanso existente.
func (r *DescansoMedicoRepo) Update(ctx context.Context, d *entity.DescansoMedico) error {
	query := `
		UPDATE descansos_medicos SET id_persona = $2, id_empresa = $3, id_diagnostico = $4,
			id_tipocontingencia = $5, fecha_inicio = $6, fecha_fin = $7, total_dias = $8,
			observacion = $9, estado = $10, user_actualiza = $11, updated_at = $12
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.db.Exec(ctx, query,
		d.ID, d.IDPersona, d.IDEmpresa, d.IDDiagnostico, d.IDTipoContingencia,
		d.FechaInicio, d.FechaFin, d.TotalDias, d.Observacion,
		d.Estado, d.UserActualiza, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update descanso: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateEstado cambia solo la bandera de activo.
func (r *DescansoMedicoRepo) UpdateEstado(ctx context.Context, id string, estado bool, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE descansos_medicos SET estado = $2, user_actualiza = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`, id, estado, nullIfEmpty(userID), time.Now())
	if err != nil {
		return fmt.Errorf("update estado descanso: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el descanso como eliminado.
func (r *DescansoMedicoRepo) SoftDelete(ctx context.Context, id, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE descansos_medicos SET deleted_at = $2, user_elimina = $3, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`, id, time.Now(), nullIfEmpty(userID))
	if err != nil {
		return fmt.Errorf("delete descanso: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
