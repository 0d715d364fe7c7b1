package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/internal/domain/repository"
)

var _ repository.CanjeRepository = (*CanjeRepo)(nil)

const columnasCanje = `id, id_descansomedico, numero_expediente, fecha, dia, mes, anio,
	estado_registro, observacion,
	user_crea, user_actualiza, user_elimina, sistema, estado, created_at, updated_at, deleted_at`

var filtroCanje = []string{"numero_expediente", "estado_registro"}

// CanjeRepo implementación del puerto CanjeRepository sobre PostgreSQL.
type CanjeRepo struct {
	db DB
}

// NewCanjeRepository construye el adaptador de persistencia para canjes.
func NewCanjeRepository(db DB) *CanjeRepo {
	return &CanjeRepo{db: db}
}

func (r *CanjeRepo) scan(row interface{ Scan(...any) error }) (*entity.Canje, error) {
	var c entity.Canje
	err := row.Scan(
		&c.ID, &c.IDDescansoMedico, &c.NumeroExpediente, &c.Fecha, &c.Dia, &c.Mes, &c.Anio,
		&c.EstadoRegistro, &c.Observacion,
		&c.UserCrea, &c.UserActualiza, &c.UserElimina,
		&c.Sistema, &c.Estado, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CanjeRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Canje, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list canjes: %w", err)
	}
	defer rows.Close()

	var result []*entity.Canje
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan canje: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// GetAll devuelve todos los canjes no eliminados, del más reciente al más antiguo.
func (r *CanjeRepo) GetAll(ctx context.Context) ([]*entity.Canje, error) {
	query := fmt.Sprintf(`SELECT %s FROM canjes WHERE deleted_at IS NULL ORDER BY fecha DESC`, columnasCanje)
	return r.list(ctx, query)
}

// GetAllByEstado devuelve los canjes filtrados por estado.
func (r *CanjeRepo) GetAllByEstado(ctx context.Context, estado bool) ([]*entity.Canje, error) {
	query := fmt.Sprintf(`SELECT %s FROM canjes WHERE deleted_at IS NULL AND estado = $1 ORDER BY fecha DESC`, columnasCanje)
	return r.list(ctx, query, estado)
}

// GetAllByDescanso devuelve los canjes de un descanso médico.
func (r *CanjeRepo) GetAllByDescanso(ctx context.Context, idDescanso string) ([]*entity.Canje, error) {
	query := fmt.Sprintf(`SELECT %s FROM canjes WHERE deleted_at IS NULL AND id_descansomedico = $1
		ORDER BY fecha DESC`, columnasCanje)
	return r.list(ctx, query, idDescanso)
}

// GetAllPaginado devuelve una página y el total, con filtro por expediente/estado de registro.
func (r *CanjeRepo) GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.Canje, int64, error) {
	where := "deleted_at IS NULL"
	args := []any{}
	if filter != "" {
		args = append(args, "%"+filter+"%")
		where += " AND " + filtroILike(filtroCanje, len(args))
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM canjes WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count canjes: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM canjes WHERE %s ORDER BY fecha DESC LIMIT $%d OFFSET $%d`,
		columnasCanje, where, len(args)+1, len(args)+2)
	args = append(args, limit, offsetDe(page, limit))

	items, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID obtiene un canje por ID.
func (r *CanjeRepo) GetByID(ctx context.Context, id string) (*entity.Canje, error) {
	query := fmt.Sprintf(`SELECT %s FROM canjes WHERE id = $1 AND deleted_at IS NULL`, columnasCanje)
	c, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get canje: %w", err)
	}
	return c, nil
}

// GetByNumeroExpediente obtiene un canje por su número de expediente.
func (r *CanjeRepo) GetByNumeroExpediente(ctx context.Context, numero string) (*entity.Canje, error) {
	query := fmt.Sprintf(`SELECT %s FROM canjes WHERE numero_expediente = $1 AND deleted_at IS NULL`, columnasCanje)
	c, err := r.scan(r.db.QueryRow(ctx, query, numero))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get canje por expediente: %w", err)
	}
	return c, nil
}

// Create persiste un nuevo canje. Dia/Mes/Anio vienen derivados de Fecha.
func (r *CanjeRepo) Create(ctx context.Context, c *entity.Canje) error {
	query := `
		INSERT INTO canjes (id, id_descansomedico, numero_expediente, fecha, dia, mes, anio,
			estado_registro, observacion, user_crea, sistema, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.IDDescansoMedico, c.NumeroExpediente, c.Fecha, c.Dia, c.Mes, c.Anio,
		c.EstadoRegistro, c.Observacion, c.UserCrea, c.Sistema, c.Estado, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert canje: %w", err)
	}
	return nil
}

// Update actualiza un canje existente.
func (r *CanjeRepo) Update(ctx context.Context, c *entity.Canje) error {
	query := `
		UPDATE canjes SET id_descansomedico = $2, numero_expediente = $3, fecha = $4,
			dia = $5, mes = $6, anio = $7, estado_registro = $8, observacion = $9,
			estado = $10, user_actualiza = $11, updated_at = $12
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.db.Exec(ctx, query,
		c.ID, c.IDDescansoMedico, c.NumeroExpediente, c.Fecha,
		c.Dia, c.Mes, c.Anio, c.EstadoRegistro, c.Observacion,
		c.Estado, c.UserActualiza, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update canje: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateEstado cambia solo la bandera de activo.
func (r *CanjeRepo) UpdateEstado(ctx context.Context, id string, estado bool, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE canjes SET estado = $2, user_actualiza = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`, id, estado, nullIfEmpty(userID), time.Now())
	if err != nil {
		return fmt.Errorf("update estado canje: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el canje como eliminado.
func (r *CanjeRepo) SoftDelete(ctx context.Context, id, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE canjes SET deleted_at = $2, user_elimina = $3, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`, id, time.Now(), nullIfEmpty(userID))
	if err != nil {
		return fmt.Errorf("delete canje: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
