package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
)

const incidentCacheTTL = 5 * time.Minute

// IncidentRepository - реализация хранилища инцидентов поверх PostgreSQL
// со сквозным кешем одиночных чтений в Redis
type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const incidentColumns = `id, patient_id, latitude, longitude, status, assigned_ambulance_id, created_at, resolved_at, COALESCE(eta, ''), COALESCE(notes, '')`

// List возвращает все инциденты, новые первыми
func (r *IncidentRepository) List(ctx context.Context) ([]*models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM sos_incidents
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident := &models.Incident{}
		if err := scanIncident(rows, incident); err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// GetByID возвращает инцидент по его UUID, сначала пробуя кеш
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	if cached, err := r.getFromCache(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	query := `
		SELECT ` + incidentColumns + `
		FROM sos_incidents
		WHERE id = $1;
	`
	incident := &models.Incident{}
	err := scanIncident(r.db.QueryRow(ctx, query, id), incident)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrIncidentNotFound
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}

	r.setCache(ctx, incident)
	return incident, nil
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	if incident.ID == uuid.Nil {
		incident.ID = uuid.New()
	}
	query := `
		INSERT INTO sos_incidents (id, patient_id, latitude, longitude, status, assigned_ambulance_id, created_at, eta, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''));
	`
	_, err := r.db.Exec(ctx, query,
		incident.ID,
		incident.PatientID,
		incident.Latitude,
		incident.Longitude,
		incident.Status,
		incident.AssignedAmbulanceID,
		incident.CreatedAt,
		incident.ETA,
		incident.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// Update применяет частичное обновление: NULL-аргументы оставляют
// соответствующие колонки без изменений
func (r *IncidentRepository) Update(ctx context.Context, id uuid.UUID, update models.IncidentUpdate) (*models.Incident, error) {
	query := `
		UPDATE sos_incidents SET
			status = COALESCE($1, status),
			assigned_ambulance_id = COALESCE($2, assigned_ambulance_id),
			eta = COALESCE($3, eta),
			resolved_at = COALESCE($4, resolved_at),
			notes = COALESCE($5, notes)
		WHERE id = $6
		RETURNING ` + incidentColumns + `;
	`
	incident := &models.Incident{}
	err := scanIncident(r.db.QueryRow(ctx, query,
		(*string)(update.Status),
		update.AssignedAmbulanceID,
		update.ETA,
		update.ResolvedAt,
		update.Notes,
		id,
	), incident)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrIncidentNotFound
		}
		return nil, fmt.Errorf("failed to update incident: %w", err)
	}

	r.invalidateCache(ctx, id)
	return incident, nil
}

// CountActive возвращает количество неразрешенных инцидентов
func (r *IncidentRepository) CountActive(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM sos_incidents
		WHERE status <> 'resolved';
	`
	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active incidents: %w", err)
	}
	return count, nil
}

// getFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) getFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	key := incidentCacheKey(id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// setCache сохраняет инцидент в Redis. Ошибки кеша не влияют на ответ.
func (r *IncidentRepository) setCache(ctx context.Context, incident *models.Incident) {
	val, err := json.Marshal(incident)
	if err != nil {
		return
	}
	r.redisClient.Set(ctx, incidentCacheKey(incident.ID), val, incidentCacheTTL)
}

// invalidateCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) invalidateCache(ctx context.Context, id uuid.UUID) {
	r.redisClient.Del(ctx, incidentCacheKey(id))
}

func incidentCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("incident:%s", id.String())
}

func scanIncident(row pgx.Row, incident *models.Incident) error {
	return row.Scan(
		&incident.ID,
		&incident.PatientID,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Status,
		&incident.AssignedAmbulanceID,
		&incident.CreatedAt,
		&incident.ResolvedAt,
		&incident.ETA,
		&incident.Notes,
	)
}
