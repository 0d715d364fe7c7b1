package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const columnasUsuario = `id, id_persona, nombre, correo, clave, rol,
	user_crea, user_actualiza, user_elimina, sistema, estado, created_at, updated_at, deleted_at`

var filtroUsuario = []string{"nombre", "correo"}

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	db DB
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(db DB) *UsuarioRepo {
	return &UsuarioRepo{db: db}
}

func (r *UsuarioRepo) scan(row interface{ Scan(...any) error }) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(
		&u.ID, &u.IDPersona, &u.Nombre, &u.Correo, &u.Clave, &u.Rol,
		&u.UserCrea, &u.UserActualiza, &u.UserElimina,
		&u.Sistema, &u.Estado, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UsuarioRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Usuario, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var result []*entity.Usuario
	for rows.Next() {
		u, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

// GetAll devuelve todos los usuarios no eliminados ordenados por nombre.
func (r *UsuarioRepo) GetAll(ctx context.Context) ([]*entity.Usuario, error) {
	query := fmt.Sprintf(`SELECT %s FROM usuarios WHERE deleted_at IS NULL ORDER BY nombre`, columnasUsuario)
	return r.list(ctx, query)
}

// GetAllPaginado devuelve una página y el total, con filtro por nombre/correo.
func (r *UsuarioRepo) GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.Usuario, int64, error) {
	where := "deleted_at IS NULL"
	args := []any{}
	if filter != "" {
		args = append(args, "%"+filter+"%")
		where += " AND " + filtroILike(filtroUsuario, len(args))
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM usuarios WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count usuarios: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM usuarios WHERE %s ORDER BY nombre LIMIT $%d OFFSET $%d`,
		columnasUsuario, where, len(args)+1, len(args)+2)
	args = append(args, limit, offsetDe(page, limit))

	items, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	query := fmt.Sprintf(`SELECT %s FROM usuarios WHERE id = $1 AND deleted_at IS NULL`, columnasUsuario)
	u, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return u, nil
}

// GetByCorreo obtiene un usuario por correo (lookup de login).
func (r *UsuarioRepo) GetByCorreo(ctx context.Context, correo string) (*entity.Usuario, error) {
	query := fmt.Sprintf(`SELECT %s FROM usuarios WHERE correo = $1 AND deleted_at IS NULL`, columnasUsuario)
	u, err := r.scan(r.db.QueryRow(ctx, query, correo))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario por correo: %w", err)
	}
	return u, nil
}

// Create persiste un nuevo usuario (la clave llega hasheada).
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, id_persona, nombre, correo, clave, rol,
			user_crea, sistema, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.IDPersona, u.Nombre, u.Correo, u.Clave, u.Rol,
		u.UserCrea, u.Sistema, u.Estado, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCorreoRegistrado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// Update actualiza nombre, correo y rol de un usuario existente. La clave se
// cambia solo por UpdateClave.
func (r *UsuarioRepo) Update(ctx context.Context, u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET id_persona = $2, nombre = $3, correo = $4, rol = $5,
			estado = $6, user_actualiza = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.db.Exec(ctx, query,
		u.ID, u.IDPersona, u.Nombre, u.Correo, u.Rol,
		u.Estado, u.UserActualiza, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCorreoRegistrado
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateClave reemplaza el hash de la clave.
func (r *UsuarioRepo) UpdateClave(ctx context.Context, id, claveHash string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE usuarios SET clave = $2, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL`, id, claveHash, time.Now())
	if err != nil {
		return fmt.Errorf("update clave usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateEstado cambia solo la bandera de activo.
func (r *UsuarioRepo) UpdateEstado(ctx context.Context, id string, estado bool, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE usuarios SET estado = $2, user_actualiza = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`, id, estado, nullIfEmpty(userID), time.Now())
	if err != nil {
		return fmt.Errorf("update estado usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el usuario como eliminado.
func (r *UsuarioRepo) SoftDelete(ctx context.Context, id, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE usuarios SET deleted_at = $2, user_elimina = $3, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`, id, time.Now(), nullIfEmpty(userID))
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
