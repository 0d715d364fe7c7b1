package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/internal/domain/repository"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

const columnasEmpresa = `id, ruc, razon_social, nombre_url, nombre_comercial, direccion,
	distrito, provincia, departamento, estado_sunat, condicion_sunat, telefono, correo,
	user_crea, user_actualiza, user_elimina, sistema, estado, created_at, updated_at, deleted_at`

var filtroEmpresa = []string{"ruc", "razon_social", "nombre_comercial"}

// EmpresaRepo implementación del puerto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	db DB
}

// NewEmpresaRepository construye el adaptador de persistencia para empresas.
func NewEmpresaRepository(db DB) *EmpresaRepo {
	return &EmpresaRepo{db: db}
}

func (r *EmpresaRepo) scan(row interface{ Scan(...any) error }) (*entity.Empresa, error) {
	var e entity.Empresa
	err := row.Scan(
		&e.ID, &e.RUC, &e.RazonSocial, &e.NombreURL, &e.NombreComercial, &e.Direccion,
		&e.Distrito, &e.Provincia, &e.Departamento, &e.EstadoSUNAT, &e.CondicionSUNAT,
		&e.Telefono, &e.Correo,
		&e.UserCrea, &e.UserActualiza, &e.UserElimina,
		&e.Sistema, &e.Estado, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmpresaRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Empresa, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()

	var result []*entity.Empresa
	for rows.Next() {
		e, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// GetAll devuelve todas las empresas no eliminadas ordenadas por razón social.
func (r *EmpresaRepo) GetAll(ctx context.Context) ([]*entity.Empresa, error) {
	query := fmt.Sprintf(`SELECT %s FROM empresas WHERE deleted_at IS NULL ORDER BY razon_social`, columnasEmpresa)
	return r.list(ctx, query)
}

// GetAllByEstado devuelve las empresas filtradas por estado.
func (r *EmpresaRepo) GetAllByEstado(ctx context.Context, estado bool) ([]*entity.Empresa, error) {
	query := fmt.Sprintf(`SELECT %s FROM empresas WHERE deleted_at IS NULL AND estado = $1 ORDER BY razon_social`, columnasEmpresa)
	return r.list(ctx, query, estado)
}

// GetAllPaginado devuelve una página y el total, con filtro por RUC/razón social.
func (r *EmpresaRepo) GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.Empresa, int64, error) {
	where := "deleted_at IS NULL"
	args := []any{}
	if filter != "" {
		args = append(args, "%"+filter+"%")
		where += " AND " + filtroILike(filtroEmpresa, len(args))
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM empresas WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count empresas: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM empresas WHERE %s ORDER BY razon_social LIMIT $%d OFFSET $%d`,
		columnasEmpresa, where, len(args)+1, len(args)+2)
	args = append(args, limit, offsetDe(page, limit))

	items, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID obtiene una empresa con sus representantes legales (y el nombre del cargo).
func (r *EmpresaRepo) GetByID(ctx context.Context, id string) (*entity.Empresa, error) {
	query := fmt.Sprintf(`SELECT %s FROM empresas WHERE id = $1 AND deleted_at IS NULL`, columnasEmpresa)
	e, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}

	reps, err := NewRepresentanteLegalRepository(r.db).GetAllByEmpresa(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	e.Representantes = reps
	return e, nil
}

// GetByRUC obtiene una empresa por RUC.
func (r *EmpresaRepo) GetByRUC(ctx context.Context, ruc string) (*entity.Empresa, error) {
	query := fmt.Sprintf(`SELECT %s FROM empresas WHERE ruc = $1 AND deleted_at IS NULL`, columnasEmpresa)
	e, err := r.scan(r.db.QueryRow(ctx, query, ruc))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa por RUC: %w", err)
	}
	return e, nil
}

// GetByRazonSocial obtiene una empresa por razón social exacta.
func (r *EmpresaRepo) GetByRazonSocial(ctx context.Context, razonSocial string) (*entity.Empresa, error) {
	query := fmt.Sprintf(`SELECT %s FROM empresas WHERE razon_social = $1 AND deleted_at IS NULL`, columnasEmpresa)
	e, err := r.scan(r.db.QueryRow(ctx, query, razonSocial))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa por razón social: %w", err)
	}
	return e, nil
}

// CamposRegistrados devuelve qué campos (ruc, razón social) ya usa otra fila
// activa. Chequeo OR multi-campo del sistema original.
func (r *EmpresaRepo) CamposRegistrados(ctx context.Context, ruc, razonSocial, excludeID string) ([]repository.CampoDuplicado, error) {
	query := `
		SELECT ruc, razon_social FROM empresas
		 WHERE deleted_at IS NULL
		   AND ($3 = '' OR id::text <> $3)
		   AND (ruc = $1 OR razon_social = $2)`
	rows, err := r.db.Query(ctx, query, ruc, razonSocial, excludeID)
	if err != nil {
		return nil, fmt.Errorf("validar campos empresa: %w", err)
	}
	defer rows.Close()

	var campos []repository.CampoDuplicado
	for rows.Next() {
		var r2, rs string
		if err := rows.Scan(&r2, &rs); err != nil {
			return nil, fmt.Errorf("scan campos empresa: %w", err)
		}
		if r2 == ruc && !contiene(campos, repository.CampoRUC) {
			campos = append(campos, repository.CampoRUC)
		}
		if rs == razonSocial && !contiene(campos, repository.CampoRazonSocial) {
			campos = append(campos, repository.CampoRazonSocial)
		}
	}
	return campos, rows.Err()
}

func contiene(cc []repository.CampoDuplicado, c repository.CampoDuplicado) bool {
	for _, x := range cc {
		if x == c {
			return true
		}
	}
	return false
}

// Create persiste una nueva empresa.
func (r *EmpresaRepo) Create(ctx context.Context, e *entity.Empresa) error {
	query := `
		INSERT INTO empresas (id, ruc, razon_social, nombre_url, nombre_comercial, direccion,
			distrito, provincia, departamento, estado_sunat, condicion_sunat, telefono, correo,
			user_crea, sistema, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.RUC, e.RazonSocial, e.NombreURL, e.NombreComercial, e.Direccion,
		e.Distrito, e.Provincia, e.Departamento, e.EstadoSUNAT, e.CondicionSUNAT,
		e.Telefono, e.Correo, e.UserCrea, e.Sistema, e.Estado, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// Update actualiza una empresa existente.
func (r *EmpresaRepo) Update(ctx context.Context, e *entity.Empresa) error {
	query := `
		UPDATE empresas SET ruc = $2, razon_social = $3, nombre_url = $4, nombre_comercial = $5,
			direccion = $6, distrito = $7, provincia = $8, departamento = $9,
			estado_sunat = $10, condicion_sunat = $11, telefono = $12, correo = $13,
			estado = $14, user_actualiza = $15, updated_at = $16
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.db.Exec(ctx, query,
		e.ID, e.RUC, e.RazonSocial, e.NombreURL, e.NombreComercial,
		e.Direccion, e.Distrito, e.Provincia, e.Departamento,
		e.EstadoSUNAT, e.CondicionSUNAT, e.Telefono, e.Correo,
		e.Estado, e.UserActualiza, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update empresa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateEstado cambia solo la bandera de activo.
func (r *EmpresaRepo) UpdateEstado(ctx context.Context, id string, estado bool, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE empresas SET estado = $2, user_actualiza = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`, id, estado, nullIfEmpty(userID), time.Now())
	if err != nil {
		return fmt.Errorf("update estado empresa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca la empresa como eliminada.
func (r *EmpresaRepo) SoftDelete(ctx context.Context, id, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE empresas SET deleted_at = $2, user_elimina = $3, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`, id, time.Now(), nullIfEmpty(userID))
	if err != nil {
		return fmt.Errorf("delete empresa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
