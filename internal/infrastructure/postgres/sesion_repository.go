package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/internal/domain/repository"
)

var _ repository.SesionRepository = (*SesionRepo)(nil)

// SesionRepo implementación del puerto SesionRepository sobre PostgreSQL.
// La tabla guarda el jti de cada token emitido para poder revocarlo en logout.
type SesionRepo struct {
	db DB
}

// NewSesionRepository construye el adaptador de persistencia para sesiones.
func NewSesionRepository(db DB) *SesionRepo {
	return &SesionRepo{db: db}
}

// Create registra una sesión recién emitida.
func (r *SesionRepo) Create(ctx context.Context, s *entity.Sesion) error {
	query := `
		INSERT INTO sesiones (id, id_usuario, expira_en, revocada_en, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, s.ID, s.IDUsuario, s.ExpiraEn, s.RevocadaEn, s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sesion: %w", err)
	}
	return nil
}

// GetByID obtiene una sesión por su ID (el jti del token).
func (r *SesionRepo) GetByID(ctx context.Context, id string) (*entity.Sesion, error) {
	query := `SELECT id, id_usuario, expira_en, revocada_en, created_at FROM sesiones WHERE id = $1`
	var s entity.Sesion
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.IDUsuario, &s.ExpiraEn, &s.RevocadaEn, &s.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sesion: %w", err)
	}
	return &s, nil
}

// Revocar marca la sesión como revocada. Revocar dos veces es idempotente.
func (r *SesionRepo) Revocar(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE sesiones SET revocada_en = $2
		WHERE id = $1 AND revocada_en IS NULL`, id, time.Now())
	if err != nil {
		return fmt.Errorf("revocar sesion: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		// Ya revocada o inexistente: distinguimos consultando la fila.
		s, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// EstaActiva informa si la sesión existe, no está revocada y no expiró.
func (r *SesionRepo) EstaActiva(ctx context.Context, id string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM sesiones
			 WHERE id = $1 AND revocada_en IS NULL AND expira_en > NOW()
		)`
	var activa bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&activa); err != nil {
		return false, fmt.Errorf("verificar sesion: %w", err)
	}
	return activa, nil
}
