package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/internal/domain/repository"
)

var _ repository.PersonaRepository = (*PersonaRepo)(nil)

const columnasPersona = `id, id_tipodocumento, numero_documento, nombres, apellido_paterno,
	apellido_materno, fecha_nacimiento, sexo, direccion, telefono, correo,
	user_crea, user_actualiza, user_elimina, sistema, estado, created_at, updated_at, deleted_at`

var filtroPersona = []string{"nombres", "apellido_paterno", "apellido_materno", "numero_documento"}

// PersonaRepo implementación del puerto PersonaRepository sobre PostgreSQL.
type PersonaRepo struct {
	db DB
}

// NewPersonaRepository construye el adaptador de persistencia para personas.
func NewPersonaRepository(db DB) *PersonaRepo {
	return &PersonaRepo{db: db}
}

func (r *PersonaRepo) scan(row interface{ Scan(...any) error }) (*entity.Persona, error) {
	var p entity.Persona
	err := row.Scan(
		&p.ID, &p.IDTipoDocumento, &p.NumeroDocumento, &p.Nombres, &p.ApellidoPaterno,
		&p.ApellidoMaterno, &p.FechaNacimiento, &p.Sexo, &p.Direccion, &p.Telefono, &p.Correo,
		&p.UserCrea, &p.UserActualiza, &p.UserElimina,
		&p.Sistema, &p.Estado, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PersonaRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Persona, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list personas: %w", err)
	}
	defer rows.Close()

	var result []*entity.Persona
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan persona: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// GetAll devuelve todas las personas no eliminadas ordenadas por apellidos.
func (r *PersonaRepo) GetAll(ctx context.Context) ([]*entity.Persona, error) {
	query := fmt.Sprintf(`SELECT %s FROM personas WHERE deleted_at IS NULL
		ORDER BY apellido_paterno, apellido_materno, nombres`, columnasPersona)
	return r.list(ctx, query)
}

// GetAllByEstado devuelve las personas filtradas por estado.
func (r *PersonaRepo) GetAllByEstado(ctx context.Context, estado bool) ([]*entity.Persona, error) {
	query := fmt.Sprintf(`SELECT %s FROM personas WHERE deleted_at IS NULL AND estado = $1
		ORDER BY apellido_paterno, apellido_materno, nombres`, columnasPersona)
	return r.list(ctx, query, estado)
}

// GetAllPaginado devuelve una página y el total, con filtro por nombre/apellidos/documento.
func (r *PersonaRepo) GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.Persona, int64, error) {
	where := "deleted_at IS NULL"
	args := []any{}
	if filter != "" {
		args = append(args, "%"+filter+"%")
		where += " AND " + filtroILike(filtroPersona, len(args))
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM personas WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count personas: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM personas WHERE %s
		ORDER BY apellido_paterno, apellido_materno, nombres LIMIT $%d OFFSET $%d`,
		columnasPersona, where, len(args)+1, len(args)+2)
	args = append(args, limit, offsetDe(page, limit))

	items, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID obtiene una persona por ID.
func (r *PersonaRepo) GetByID(ctx context.Context, id string) (*entity.Persona, error) {
	query := fmt.Sprintf(`SELECT %s FROM personas WHERE id = $1 AND deleted_at IS NULL`, columnasPersona)
	p, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get persona: %w", err)
	}
	return p, nil
}

// GetByNumeroDocumento obtiene una persona por su número de documento.
func (r *PersonaRepo) GetByNumeroDocumento(ctx context.Context, numero string) (*entity.Persona, error) {
	query := fmt.Sprintf(`SELECT %s FROM personas WHERE numero_documento = $1 AND deleted_at IS NULL`, columnasPersona)
	p, err := r.scan(r.db.QueryRow(ctx, query, numero))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get persona por documento: %w", err)
	}
	return p, nil
}

// Create persiste una nueva persona.
func (r *PersonaRepo) Create(ctx context.Context, p *entity.Persona) error {
	query := `
		INSERT INTO personas (id, id_tipodocumento, numero_documento, nombres, apellido_paterno,
			apellido_materno, fecha_nacimiento, sexo, direccion, telefono, correo,
			user_crea, sistema, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.IDTipoDocumento, p.NumeroDocumento, p.Nombres, p.ApellidoPaterno,
		p.ApellidoMaterno, p.FechaNacimiento, p.Sexo, p.Direccion, p.Telefono, p.Correo,
		p.UserCrea, p.Sistema, p.Estado, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert persona: %w", err)
	}
	return nil
}

// Update actualiza una persona existente.
func (r *PersonaRepo) Update(ctx context.Context, p *entity.Persona) error {
	query := `
		UPDATE personas SET id_tipodocumento = $2, numero_documento = $3, nombres = $4,
			apellido_paterno = $5, apellido_materno = $6, fecha_nacimiento = $7, sexo = $8,
			direccion = $9, telefono = $10, correo = $11, estado = $12,
			user_actualiza = $13, updated_at = $14
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.db.Exec(ctx, query,
		p.ID, p.IDTipoDocumento, p.NumeroDocumento, p.Nombres,
		p.ApellidoPaterno, p.ApellidoMaterno, p.FechaNacimiento, p.Sexo,
		p.Direccion, p.Telefono, p.Correo, p.Estado,
		p.UserActualiza, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update persona: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateEstado cambia solo la bandera de activo.
func (r *PersonaRepo) UpdateEstado(ctx context.Context, id string, estado bool, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE personas SET estado = $2, user_actualiza = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`, id, estado, nullIfEmpty(userID), time.Now())
	if err != nil {
		return fmt.Errorf("update estado persona: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca la persona como eliminada.
func (r *PersonaRepo) SoftDelete(ctx context.Context, id, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE personas SET deleted_at = $2, user_elimina = $3, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`, id, time.Now(), nullIfEmpty(userID))
	if err != nil {
		return fmt.Errorf("delete persona: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
