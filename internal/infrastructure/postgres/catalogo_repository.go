package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/internal/domain/repository"
)

// Asegura que CatalogoRepo implementa repository.CatalogoRepository.
var _ repository.CatalogoRepository = (*CatalogoRepo)(nil)

// TablaCatalogo describe una tabla de referencia servida por CatalogoRepo:
// nombre de tabla y columnas del filtro de subcadena. Todas las tablas
// comparten exactamente las mismas columnas, así que UNA implementación
// parametrizada reemplaza los ~6 repositorios duplicados del sistema original.
type TablaCatalogo struct {
	Nombre         string
	ColumnasFiltro []string
}

// Tablas de referencia conocidas. El nombre de tabla se interpola en las
// consultas: debe venir de estas constantes, nunca de entrada del usuario.
var (
	TablaPaises            = TablaCatalogo{Nombre: "paises", ColumnasFiltro: []string{"nombre"}}
	TablaCargos            = TablaCatalogo{Nombre: "cargos", ColumnasFiltro: []string{"nombre"}}
	TablaSedes             = TablaCatalogo{Nombre: "sedes", ColumnasFiltro: []string{"nombre"}}
	TablaAreas             = TablaCatalogo{Nombre: "areas", ColumnasFiltro: []string{"nombre"}}
	TablaTiposDocumento    = TablaCatalogo{Nombre: "tipos_documento", ColumnasFiltro: []string{"nombre"}}
	TablaTiposContingencia = TablaCatalogo{Nombre: "tipos_contingencia", ColumnasFiltro: []string{"nombre"}}
)

const columnasCatalogo = `id, nombre, nombre_url, user_crea, user_actualiza, user_elimina,
	sistema, estado, created_at, updated_at, deleted_at`

// CatalogoRepo implementación genérica del puerto CatalogoRepository sobre
// PostgreSQL, parametrizada por tabla.
type CatalogoRepo struct {
	db  DB
	tbl TablaCatalogo
}

// NewCatalogoRepository construye el adaptador para la tabla indicada.
func NewCatalogoRepository(db DB, tbl TablaCatalogo) *CatalogoRepo {
	return &CatalogoRepo{db: db, tbl: tbl}
}

func (r *CatalogoRepo) scan(row interface{ Scan(...any) error }) (*entity.Catalogo, error) {
	var c entity.Catalogo
	err := row.Scan(
		&c.ID, &c.Nombre, &c.NombreURL,
		&c.UserCrea, &c.UserActualiza, &c.UserElimina,
		&c.Sistema, &c.Estado, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAll devuelve todas las filas no eliminadas ordenadas por nombre.
func (r *CatalogoRepo) GetAll(ctx context.Context) ([]*entity.Catalogo, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE deleted_at IS NULL ORDER BY nombre`,
		columnasCatalogo, r.tbl.Nombre)
	return r.list(ctx, query)
}

// GetAllByEstado devuelve las filas no eliminadas filtradas por estado.
func (r *CatalogoRepo) GetAllByEstado(ctx context.Context, estado bool) ([]*entity.Catalogo, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE deleted_at IS NULL AND estado = $1 ORDER BY nombre`,
		columnasCatalogo, r.tbl.Nombre)
	return r.list(ctx, query, estado)
}

func (r *CatalogoRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Catalogo, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.tbl.Nombre, err)
	}
	defer rows.Close()

	var result []*entity.Catalogo
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.tbl.Nombre, err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// GetAllPaginado devuelve una página y el total de filas que satisfacen el filtro.
func (r *CatalogoRepo) GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.Catalogo, int64, error) {
	where := "deleted_at IS NULL"
	args := []any{}
	if filter != "" {
		args = append(args, "%"+filter+"%")
		where += " AND " + filtroILike(r.tbl.ColumnasFiltro, len(args))
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s`, r.tbl.Nombre, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", r.tbl.Nombre, err)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY nombre LIMIT $%d OFFSET $%d`,
		columnasCatalogo, r.tbl.Nombre, where, len(args)+1, len(args)+2)
	args = append(args, limit, offsetDe(page, limit))

	items, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID obtiene una fila por ID; las eliminadas quedan fuera del alcance por defecto.
func (r *CatalogoRepo) GetByID(ctx context.Context, id string) (*entity.Catalogo, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND deleted_at IS NULL`,
		columnasCatalogo, r.tbl.Nombre)
	c, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.tbl.Nombre, err)
	}
	return c, nil
}

// GetByNombre obtiene una fila por nombre exacto.
func (r *CatalogoRepo) GetByNombre(ctx context.Context, nombre string) (*entity.Catalogo, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE nombre = $1 AND deleted_at IS NULL`,
		columnasCatalogo, r.tbl.Nombre)
	c, err := r.scan(r.db.QueryRow(ctx, query, nombre))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s por nombre: %w", r.tbl.Nombre, err)
	}
	return c, nil
}

// ExistsNombreURL informa si otra fila activa ya usa el slug.
func (r *CatalogoRepo) ExistsNombreURL(ctx context.Context, nombreURL, excludeID string) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s
			 WHERE nombre_url = $1 AND deleted_at IS NULL AND ($2 = '' OR id::text <> $2)
		)`, r.tbl.Nombre)
	var existe bool
	if err := r.db.QueryRow(ctx, query, nombreURL, excludeID).Scan(&existe); err != nil {
		return false, fmt.Errorf("exists %s: %w", r.tbl.Nombre, err)
	}
	return existe, nil
}

// Create persiste una nueva fila.
func (r *CatalogoRepo) Create(ctx context.Context, c *entity.Catalogo) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, nombre, nombre_url, user_crea, sistema, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, r.tbl.Nombre)
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Nombre, c.NombreURL, c.UserCrea, c.Sistema, c.Estado, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", r.tbl.Nombre, err)
	}
	return nil
}

// Update actualiza nombre, slug, estado y auditoría de una fila existente.
func (r *CatalogoRepo) Update(ctx context.Context, c *entity.Catalogo) error {
	query := fmt.Sprintf(`
		UPDATE %s SET nombre = $2, nombre_url = $3, estado = $4, user_actualiza = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`, r.tbl.Nombre)
	cmd, err := r.db.Exec(ctx, query,
		c.ID, c.Nombre, c.NombreURL, c.Estado, c.UserActualiza, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update %s: %w", r.tbl.Nombre, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateEstado cambia solo la bandera de activo, sin tocar el resto de campos.
func (r *CatalogoRepo) UpdateEstado(ctx context.Context, id string, estado bool, userID string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET estado = $2, user_actualiza = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`, r.tbl.Nombre)
	cmd, err := r.db.Exec(ctx, query, id, estado, nullIfEmpty(userID), time.Now())
	if err != nil {
		return fmt.Errorf("update estado %s: %w", r.tbl.Nombre, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca la fila como eliminada; nunca se purga físicamente.
func (r *CatalogoRepo) SoftDelete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET deleted_at = $2, user_elimina = $3, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`, r.tbl.Nombre)
	cmd, err := r.db.Exec(ctx, query, id, time.Now(), nullIfEmpty(userID))
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.tbl.Nombre, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
