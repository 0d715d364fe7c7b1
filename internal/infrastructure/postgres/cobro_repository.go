package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/internal/domain/repository"
)

var _ repository.CobroRepository = (*CobroRepo)(nil)

const columnasCobro = `id, id_reembolso, numero_cheque, numero_voucher, fecha, dia, mes, anio, monto,
	estado_registro, observacion,
	user_crea, user_actualiza, user_elimina, sistema, estado, created_at, updated_at, deleted_at`

var filtroCobro = []string{"numero_cheque", "numero_voucher", "estado_registro"}

// CobroRepo implementación del puerto CobroRepository sobre PostgreSQL.
type CobroRepo struct {
	db DB
}

// NewCobroRepository construye el adaptador de persistencia para cobros.
func NewCobroRepository(db DB) *CobroRepo {
	return &CobroRepo{db: db}
}

func (r *CobroRepo) scan(row interface{ Scan(...any) error }) (*entity.Cobro, error) {
	var c entity.Cobro
	err := row.Scan(
		&c.ID, &c.IDReembolso, &c.NumeroCheque, &c.NumeroVoucher, &c.Fecha, &c.Dia, &c.Mes, &c.Anio, &c.Monto,
		&c.EstadoRegistro, &c.Observacion,
		&c.UserCrea, &c.UserActualiza, &c.UserElimina,
		&c.Sistema, &c.Estado, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CobroRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Cobro, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cobros: %w", err)
	}
	defer rows.Close()

	var result []*entity.Cobro
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cobro: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// GetAll devuelve todos los cobros no eliminados, del más reciente al más antiguo.
func (r *CobroRepo) GetAll(ctx context.Context) ([]*entity.Cobro, error) {
	query := fmt.Sprintf(`SELECT %s FROM cobros WHERE deleted_at IS NULL ORDER BY fecha DESC`, columnasCobro)
	return r.list(ctx, query)
}

// GetAllByEstado devuelve los cobros filtrados por estado.
func (r *CobroRepo) GetAllByEstado(ctx context.Context, estado bool) ([]*entity.Cobro, error) {
	query := fmt.Sprintf(`SELECT %s FROM cobros WHERE deleted_at IS NULL AND estado = $1 ORDER BY fecha DESC`, columnasCobro)
	return r.list(ctx, query, estado)
}

// GetAllByReembolso devuelve los cobros de un reembolso.
func (r *CobroRepo) GetAllByReembolso(ctx context.Context, idReembolso string) ([]*entity.Cobro, error) {
	query := fmt.Sprintf(`SELECT %s FROM cobros WHERE deleted_at IS NULL AND id_reembolso = $1
		ORDER BY fecha DESC`, columnasCobro)
	return r.list(ctx, query, idReembolso)
}

// GetAllPaginado devuelve una página y el total, con filtro por cheque/voucher/estado de registro.
func (r *CobroRepo) GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.Cobro, int64, error) {
	where := "deleted_at IS NULL"
	args := []any{}
	if filter != "" {
		args = append(args, "%"+filter+"%")
		where += " AND " + filtroILike(filtroCobro, len(args))
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM cobros WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count cobros: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM cobros WHERE %s ORDER BY fecha DESC LIMIT $%d OFFSET $%d`,
		columnasCobro, where, len(args)+1, len(args)+2)
	args = append(args, limit, offsetDe(page, limit))

	items, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID obtiene un cobro por ID.
func (r *CobroRepo) GetByID(ctx context.Context, id string) (*entity.Cobro, error) {
	query := fmt.Sprintf(`SELECT %s FROM cobros WHERE id = $1 AND deleted_at IS NULL`, columnasCobro)
	c, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cobro: %w", err)
	}
	return c, nil
}

// CamposRegistrados devuelve qué campos (cheque, voucher) ya usa otra fila
// activa. Chequeo OR multi-campo del sistema original.
func (r *CobroRepo) CamposRegistrados(ctx context.Context, numeroCheque, numeroVoucher, excludeID string) ([]repository.CampoDuplicado, error) {
	query := `
		SELECT numero_cheque, numero_voucher FROM cobros
		 WHERE deleted_at IS NULL
		   AND ($3 = '' OR id::text <> $3)
		   AND (numero_cheque = $1 OR numero_voucher = $2)`
	rows, err := r.db.Query(ctx, query, numeroCheque, numeroVoucher, excludeID)
	if err != nil {
		return nil, fmt.Errorf("validar campos cobro: %w", err)
	}
	defer rows.Close()

	var campos []repository.CampoDuplicado
	for rows.Next() {
		var ch, vo string
		if err := rows.Scan(&ch, &vo); err != nil {
			return nil, fmt.Errorf("scan campos cobro: %w", err)
		}
		if ch == numeroCheque && !contiene(campos, repository.CampoNumeroCheque) {
			campos = append(campos, repository.CampoNumeroCheque)
		}
		if vo == numeroVoucher && !contiene(campos, repository.CampoNumeroVoucher) {
			campos = append(campos, repository.CampoNumeroVoucher)
		}
	}
	return campos, rows.Err()
}

// Create persiste un nuevo cobro.
func (r *CobroRepo) Create(ctx context.Context, c *entity.Cobro) error {
	query := `
		INSERT INTO cobros (id, id_reembolso, numero_cheque, numero_voucher, fecha, dia, mes, anio, monto,
			estado_registro, observacion, user_crea, sistema, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.IDReembolso, c.NumeroCheque, c.NumeroVoucher, c.Fecha, c.Dia, c.Mes, c.Anio, c.Monto,
		c.EstadoRegistro, c.Observacion, c.UserCrea, c.Sistema, c.Estado, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cobro: %w", err)
	}
	return nil
}

// Update actualiza un cobro existente.
func (r *CobroRepo) Update(ctx context.Context, c *entity.Cobro) error {
	query := `
		UPDATE cobros SET id_reembolso = $2, numero_cheque = $3, numero_voucher = $4, fecha = $5,
			dia = $6, mes = $7, anio = $8, monto = $9, estado_registro = $10, observacion = $11,
			estado = $12, user_actualiza = $13, updated_at = $14
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.db.Exec(ctx, query,
		c.ID, c.IDReembolso, c.NumeroCheque, c.NumeroVoucher, c.Fecha,
		c.Dia, c.Mes, c.Anio, c.Monto, c.EstadoRegistro, c.Observacion,
		c.Estado, c.UserActualiza, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cobro: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateEstado cambia solo la bandera de activo.
func (r *CobroRepo) UpdateEstado(ctx context.Context, id string, estado bool, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE cobros SET estado = $2, user_actualiza = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`, id, estado, nullIfEmpty(userID), time.Now())
	if err != nil {
		return fmt.Errorf("update estado cobro: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el cobro como eliminado.
func (r *CobroRepo) SoftDelete(ctx context.Context, id, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE cobros SET deleted_at = $2, user_elimina = $3, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`, id, time.Now(), nullIfEmpty(userID))
	if err != nil {
		return fmt.Errorf("delete cobro: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
