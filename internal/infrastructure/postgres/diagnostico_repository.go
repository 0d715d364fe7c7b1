package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/internal/domain/repository"
)

var _ repository.DiagnosticoRepository = (*DiagnosticoRepo)(nil)

const columnasDiagnostico = `id, codigo, nombre, nombre_url,
	user_crea, user_actualiza, user_elimina, sistema, estado, created_at, updated_at, deleted_at`

var filtroDiagnostico = []string{"codigo", "nombre"}

// DiagnosticoRepo implementación del puerto DiagnosticoRepository sobre PostgreSQL.
type DiagnosticoRepo struct {
	db DB
}

// NewDiagnosticoRepository construye el adaptador de persistencia para diagnósticos.
func NewDiagnosticoRepository(db DB) *DiagnosticoRepo {
	return &DiagnosticoRepo{db: db}
}

func (r *DiagnosticoRepo) scan(row interface{ Scan(...any) error }) (*entity.Diagnostico, error) {
	var d entity.Diagnostico
	err := row.Scan(
		&d.ID, &d.Codigo, &d.Nombre, &d.NombreURL,
		&d.UserCrea, &d.UserActualiza, &d.UserElimina,
		&d.Sistema, &d.Estado, &d.CreatedAt, &d.UpdatedAt, &d.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DiagnosticoRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Diagnostico, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list diagnosticos: %w", err)
	}
	defer rows.Close()

	var result []*entity.Diagnostico
	for rows.Next() {
		d, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan diagnostico: %w", err)
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

// GetAll devuelve todos los diagnósticos no eliminados ordenados por código.
func (r *DiagnosticoRepo) GetAll(ctx context.Context) ([]*entity.Diagnostico, error) {
	query := fmt.Sprintf(`SELECT %s FROM diagnosticos WHERE deleted_at IS NULL ORDER BY codigo`, columnasDiagnostico)
	return r.list(ctx, query)
}

// GetAllByEstado devuelve los diagnósticos filtrados por estado.
func (r *DiagnosticoRepo) GetAllByEstado(ctx context.Context, estado bool) ([]*entity.Diagnostico, error) {
	query := fmt.Sprintf(`SELECT %s FROM diagnosticos WHERE deleted_at IS NULL AND estado = $1 ORDER BY codigo`, columnasDiagnostico)
	return r.list(ctx, query, estado)
}

// GetAllPaginado devuelve una página y el total, con filtro por código/nombre.
func (r *DiagnosticoRepo) GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.Diagnostico, int64, error) {
	where := "deleted_at IS NULL"
	args := []any{}
	if filter != "" {
		args = append(args, "%"+filter+"%")
		where += " AND " + filtroILike(filtroDiagnostico, len(args))
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM diagnosticos WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count diagnosticos: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM diagnosticos WHERE %s ORDER BY codigo LIMIT $%d OFFSET $%d`,
		columnasDiagnostico, where, len(args)+1, len(args)+2)
	args = append(args, limit, offsetDe(page, limit))

	items, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID obtiene un diagnóstico por ID.
func (r *DiagnosticoRepo) GetByID(ctx context.Context, id string) (*entity.Diagnostico, error) {
	query := fmt.Sprintf(`SELECT %s FROM diagnosticos WHERE id = $1 AND deleted_at IS NULL`, columnasDiagnostico)
	d, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get diagnostico: %w", err)
	}
	return d, nil
}

// GetByCodigo obtiene un diagnóstico por su código CIE-10.
func (r *DiagnosticoRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.Diagnostico, error) {
	query := fmt.Sprintf(`SELECT %s FROM diagnosticos WHERE codigo = $1 AND deleted_at IS NULL`, columnasDiagnostico)
	d, err := r.scan(r.db.QueryRow(ctx, query, codigo))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get diagnostico por codigo: %w", err)
	}
	return d, nil
}

// GetByNombre obtiene un diagnóstico por nombre exacto.
func (r *DiagnosticoRepo) GetByNombre(ctx context.Context, nombre string) (*entity.Diagnostico, error) {
	query := fmt.Sprintf(`SELECT %s FROM diagnosticos WHERE nombre = $1 AND deleted_at IS NULL`, columnasDiagnostico)
	d, err := r.scan(r.db.QueryRow(ctx, query, nombre))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get diagnostico por nombre: %w", err)
	}
	return d, nil
}

// ExistsNombreURL informa si otra fila activa ya usa el slug.
func (r *DiagnosticoRepo) ExistsNombreURL(ctx context.Context, nombreURL, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM diagnosticos
			 WHERE nombre_url = $1 AND deleted_at IS NULL AND ($2 = '' OR id::text <> $2)
		)`
	var existe bool
	if err := r.db.QueryRow(ctx, query, nombreURL, excludeID).Scan(&existe); err != nil {
		return false, fmt.Errorf("exists diagnostico: %w", err)
	}
	return existe, nil
}

// Create persiste un nuevo diagnóstico.
func (r *DiagnosticoRepo) Create(ctx context.Context, d *entity.Diagnostico) error {
	query := `
		INSERT INTO diagnosticos (id, codigo, nombre, nombre_url, user_crea, sistema, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		d.ID, d.Codigo, d.Nombre, d.NombreURL, d.UserCrea, d.Sistema, d.Estado, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert diagnostico: %w", err)
	}
	return nil
}

// Update actualiza un diagnóstico existente.
func (r *DiagnosticoRepo) Update(ctx context.Context, d *entity.Diagnostico) error {
	query := `
		UPDATE diagnosticos SET codigo = $2, nombre = $3, nombre_url = $4,
			estado = $5, user_actualiza = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.db.Exec(ctx, query,
		d.ID, d.Codigo, d.Nombre, d.NombreURL, d.Estado, d.UserActualiza, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update diagnostico: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateEstado cambia solo la bandera de activo.
func (r *DiagnosticoRepo) UpdateEstado(ctx context.Context, id string, estado bool, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE diagnosticos SET estado = $2, user_actualiza = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`, id, estado, nullIfEmpty(userID), time.Now())
	if err != nil {
		return fmt.Errorf("update estado diagnostico: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el diagnóstico como eliminado.
func (r *DiagnosticoRepo) SoftDelete(ctx context.Context, id, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE diagnosticos SET deleted_at = $2, user_elimina = $3, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`, id, time.Now(), nullIfEmpty(userID))
	if err != nil {
		return fmt.Errorf("delete diagnostico: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
