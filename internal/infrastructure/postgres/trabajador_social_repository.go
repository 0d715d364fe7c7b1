package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/internal/domain/repository"
)

var _ repository.TrabajadorSocialRepository = (*TrabajadorSocialRepo)(nil)

// Las lecturas traen la persona asociada vía JOIN.
const columnasTrabajador = `t.id, t.id_persona, t.id_sede, t.codigo_colegiatura,
	t.user_crea, t.user_actualiza, t.user_elimina, t.sistema, t.estado,
	t.created_at, t.updated_at, t.deleted_at,
	p.id, p.id_tipodocumento, p.numero_documento, p.nombres, p.apellido_paterno,
	p.apellido_materno, p.fecha_nacimiento, p.sexo, p.direccion, p.telefono, p.correo,
	p.user_crea, p.user_actualiza, p.user_elimina, p.sistema, p.estado,
	p.created_at, p.updated_at, p.deleted_at`

const baseTrabajador = `FROM trabajadores_sociales t
	JOIN personas p ON p.id = t.id_persona`

var filtroTrabajador = []string{"p.nombres", "p.apellido_paterno", "p.apellido_materno", "t.codigo_colegiatura"}

// TrabajadorSocialRepo implementación del puerto sobre PostgreSQL. Recibe DB
// para poder operar dentro de la transacción de TxRunner (el alta escribe
// persona y trabajador juntas).
type TrabajadorSocialRepo struct {
	db DB
}

// NewTrabajadorSocialRepository construye el adaptador de persistencia.
func NewTrabajadorSocialRepository(db DB) *TrabajadorSocialRepo {
	return &TrabajadorSocialRepo{db: db}
}

func (r *TrabajadorSocialRepo) scan(row interface{ Scan(...any) error }) (*entity.TrabajadorSocial, error) {
	var t entity.TrabajadorSocial
	var p entity.Persona
	err := row.Scan(
		&t.ID, &t.IDPersona, &t.IDSede, &t.CodigoColegiatura,
		&t.UserCrea, &t.UserActualiza, &t.UserElimina, &t.Sistema, &t.Estado,
		&t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
		&p.ID, &p.IDTipoDocumento, &p.NumeroDocumento, &p.Nombres, &p.ApellidoPaterno,
		&p.ApellidoMaterno, &p.FechaNacimiento, &p.Sexo, &p.Direccion, &p.Telefono, &p.Correo,
		&p.UserCrea, &p.UserActualiza, &p.UserElimina, &p.Sistema, &p.Estado,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Persona = &p
	return &t, nil
}

func (r *TrabajadorSocialRepo) list(ctx context.Context, query string, args ...any) ([]*entity.TrabajadorSocial, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list trabajadores sociales: %w", err)
	}
	defer rows.Close()

	var result []*entity.TrabajadorSocial
	for rows.Next() {
		t, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trabajador social: %w", err)
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// GetAll devuelve todos los trabajadores sociales no eliminados.
func (r *TrabajadorSocialRepo) GetAll(ctx context.Context) ([]*entity.TrabajadorSocial, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE t.deleted_at IS NULL
		ORDER BY p.apellido_paterno, p.apellido_materno, p.nombres`, columnasTrabajador, baseTrabajador)
	return r.list(ctx, query)
}

// GetAllByEstado devuelve los trabajadores filtrados por estado.
func (r *TrabajadorSocialRepo) GetAllByEstado(ctx context.Context, estado bool) ([]*entity.TrabajadorSocial, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE t.deleted_at IS NULL AND t.estado = $1
		ORDER BY p.apellido_paterno, p.apellido_materno, p.nombres`, columnasTrabajador, baseTrabajador)
	return r.list(ctx, query, estado)
}

// GetAllPaginado devuelve una página y el total, con filtro por nombre/colegiatura.
func (r *TrabajadorSocialRepo) GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.TrabajadorSocial, int64, error) {
	where := "t.deleted_at IS NULL"
	args := []any{}
	if filter != "" {
		args = append(args, "%"+filter+"%")
		where += " AND " + filtroILike(filtroTrabajador, len(args))
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) %s WHERE %s`, baseTrabajador, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count trabajadores sociales: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s %s WHERE %s
		ORDER BY p.apellido_paterno, p.apellido_materno, p.nombres LIMIT $%d OFFSET $%d`,
		columnasTrabajador, baseTrabajador, where, len(args)+1, len(args)+2)
	args = append(args, limit, offsetDe(page, limit))

	items, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID obtiene un trabajador social por ID (con su persona).
func (r *TrabajadorSocialRepo) GetByID(ctx context.Context, id string) (*entity.TrabajadorSocial, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE t.id = $1 AND t.deleted_at IS NULL`,
		columnasTrabajador, baseTrabajador)
	t, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trabajador social: %w", err)
	}
	return t, nil
}

// GetByCodigoColegiatura obtiene un trabajador por su código de colegiatura.
func (r *TrabajadorSocialRepo) GetByCodigoColegiatura(ctx context.Context, codigo string) (*entity.TrabajadorSocial, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE t.codigo_colegiatura = $1 AND t.deleted_at IS NULL`,
		columnasTrabajador, baseTrabajador)
	t, err := r.scan(r.db.QueryRow(ctx, query, codigo))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trabajador por colegiatura: %w", err)
	}
	return t, nil
}

// Create persiste un nuevo trabajador social. La persona asociada debe
// insertarse antes, dentro de la misma transacción (TxRunner).
func (r *TrabajadorSocialRepo) Create(ctx context.Context, t *entity.TrabajadorSocial) error {
	query := `
		INSERT INTO trabajadores_sociales (id, id_persona, id_sede, codigo_colegiatura,
			user_crea, sistema, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		t.ID, t.IDPersona, t.IDSede, t.CodigoColegiatura,
		t.UserCrea, t.Sistema, t.Estado, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert trabajador social: %w", err)
	}
	return nil
}

// Update actualiza sede y colegiatura de un trabajador existente.
func (r *TrabajadorSocialRepo) Update(ctx context.Context, t *entity.TrabajadorSocial) error {
	query := `
		UPDATE trabajadores_sociales SET id_sede = $2, codigo_colegiatura = $3,
			estado = $4, user_actualiza = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.db.Exec(ctx, query,
		t.ID, t.IDSede, t.CodigoColegiatura, t.Estado, t.UserActualiza, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update trabajador social: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateEstado cambia solo la bandera de activo.
func (r *TrabajadorSocialRepo) UpdateEstado(ctx context.Context, id string, estado bool, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE trabajadores_sociales SET estado = $2, user_actualiza = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`, id, estado, nullIfEmpty(userID), time.Now())
	if err != nil {
		return fmt.Errorf("update estado trabajador social: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el trabajador como eliminado.
func (r *TrabajadorSocialRepo) SoftDelete(ctx context.Context, id, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE trabajadores_sociales SET deleted_at = $2, user_elimina = $3, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`, id, time.Now(), nullIfEmpty(userID))
	if err != nil {
		return fmt.Errorf("delete trabajador social: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
