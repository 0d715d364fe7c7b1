package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/internal/domain/repository"
)

var _ repository.ReembolsoRepository = (*ReembolsoRepo)(nil)

const columnasReembolso = `id, id_canje, numero_expediente, fecha, dia, mes, anio, monto,
	estado_registro, observacion,
	user_crea, user_actualiza, user_elimina, sistema, estado, created_at, updated_at, deleted_at`

var filtroReembolso = []string{"numero_expediente", "estado_registro"}

// ReembolsoRepo implementación del puerto ReembolsoRepository sobre PostgreSQL.
type ReembolsoRepo struct {
	db DB
}

// NewReembolsoRepository construye el adaptador de persistencia para reembolsos.
func NewReembolsoRepository(db DB) *ReembolsoRepo {
	return &ReembolsoRepo{db: db}
}

func (r *ReembolsoRepo) scan(row interface{ Scan(...any) error }) (*entity.Reembolso, error) {
	var re entity.Reembolso
	err := row.Scan(
		&re.ID, &re.IDCanje, &re.NumeroExpediente, &re.Fecha, &re.Dia, &re.Mes, &re.Anio, &re.Monto,
		&re.EstadoRegistro, &re.Observacion,
		&re.UserCrea, &re.UserActualiza, &re.UserElimina,
		&re.Sistema, &re.Estado, &re.CreatedAt, &re.UpdatedAt, &re.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &re, nil
}

func (r *ReembolsoRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Reembolso, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reembolsos: %w", err)
	}
	defer rows.Close()

	var result []*entity.Reembolso
	for rows.Next() {
		re, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reembolso: %w", err)
		}
		result = append(result, re)
	}
	return result, rows.Err()
}

// GetAll devuelve todos los reembolsos no eliminados, del más reciente al más antiguo.
func (r *ReembolsoRepo) GetAll(ctx context.Context) ([]*entity.Reembolso, error) {
	query := fmt.Sprintf(`SELECT %s FROM reembolsos WHERE deleted_at IS NULL ORDER BY fecha DESC`, columnasReembolso)
	return r.list(ctx, query)
}

// GetAllByEstado devuelve los reembolsos filtrados por estado.
func (r *ReembolsoRepo) GetAllByEstado(ctx context.Context, estado bool) ([]*entity.Reembolso, error) {
	query := fmt.Sprintf(`SELECT %s FROM reembolsos WHERE deleted_at IS NULL AND estado = $1 ORDER BY fecha DESC`, columnasReembolso)
	return r.list(ctx, query, estado)
}

// GetAllByCanje devuelve los reembolsos de un canje.
func (r *ReembolsoRepo) GetAllByCanje(ctx context.Context, idCanje string) ([]*entity.Reembolso, error) {
	query := fmt.Sprintf(`SELECT %s FROM reembolsos WHERE deleted_at IS NULL AND id_canje = $1
		ORDER BY fecha DESC`, columnasReembolso)
	return r.list(ctx, query, idCanje)
}

// GetAllPaginado devuelve una página y el total, con filtro por expediente/estado de registro.
func (r *ReembolsoRepo) GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.Reembolso, int64, error) {
	where := "deleted_at IS NULL"
	args := []any{}
	if filter != "" {
		args = append(args, "%"+filter+"%")
		where += " AND " + filtroILike(filtroReembolso, len(args))
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM reembolsos WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reembolsos: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM reembolsos WHERE %s ORDER BY fecha DESC LIMIT $%d OFFSET $%d`,
		columnasReembolso, where, len(args)+1, len(args)+2)
	args = append(args, limit, offsetDe(page, limit))

	items, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID obtiene un reembolso por ID.
func (r *ReembolsoRepo) GetByID(ctx context.Context, id string) (*entity.Reembolso, error) {
	query := fmt.Sprintf(`SELECT %s FROM reembolsos WHERE id = $1 AND deleted_at IS NULL`, columnasReembolso)
	re, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reembolso: %w", err)
	}
	return re, nil
}

// GetByNumeroExpediente obtiene un reembolso por su número de expediente.
func (r *ReembolsoRepo) GetByNumeroExpediente(ctx context.Context, numero string) (*entity.Reembolso, error) {
	query := fmt.Sprintf(`SELECT %s FROM reembolsos WHERE numero_expediente = $1 AND deleted_at IS NULL`, columnasReembolso)
	re, err := r.scan(r.db.QueryRow(ctx, query, numero))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reembolso por expediente: %w", err)
	}
	return re, nil
}

// Create persiste un nuevo reembolso.
func (r *ReembolsoRepo) Create(ctx context.Context, re *entity.Reembolso) error {
	query := `
		INSERT INTO reembolsos (id, id_canje, numero_expediente, fecha, dia, mes, anio, monto,
			estado_registro, observacion, user_crea, sistema, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, query,
		re.ID, re.IDCanje, re.NumeroExpediente, re.Fecha, re.Dia, re.Mes, re.Anio, re.Monto,
		re.EstadoRegistro, re.Observacion, re.UserCrea, re.Sistema, re.Estado, re.CreatedAt, re.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert reembolso: %w", err)
	}
	return nil
}

// Update actualiza un reembolso existente.
func (r *ReembolsoRepo) Update(ctx context.Context, re *entity.Reembolso) error {
	query := `
		UPDATE reembolsos SET id_canje = $2, numero_expediente = $3, fecha = $4,
			dia = $5, mes = $6, anio = $7, monto = $8, estado_registro = $9, observacion = $10,
			estado = $11, user_actualiza = $12, updated_at = $13
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.db.Exec(ctx, query,
		re.ID, re.IDCanje, re.NumeroExpediente, re.Fecha,
		re.Dia, re.Mes, re.Anio, re.Monto, re.EstadoRegistro, re.Observacion,
		re.Estado, re.UserActualiza, re.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update reembolso: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateEstado cambia solo la bandera de activo.
func (r *ReembolsoRepo) UpdateEstado(ctx context.Context, id string, estado bool, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE reembolsos SET estado = $2, user_actualiza = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`, id, estado, nullIfEmpty(userID), time.Now())
	if err != nil {
		return fmt.Errorf("update estado reembolso: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el reembolso como eliminado.
func (r *ReembolsoRepo) SoftDelete(ctx context.Context, id, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE reembolsos SET deleted_at = $2, user_elimina = $3, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`, id, time.Now(), nullIfEmpty(userID))
	if err != nil {
		return fmt.Errorf("delete reembolso: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
