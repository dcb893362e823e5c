package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
)

// FleetRepository - реализация хранилища автопарка поверх PostgreSQL
type FleetRepository struct {
	db *pgxpool.Pool
}

func NewFleetRepository(db *pgxpool.Pool) service.FleetRepository {
	return &FleetRepository{db: db}
}

const ambulanceColumns = `id, vehicle_number, driver_name, driver_phone, status, latitude, longitude, COALESCE(hospital_id, '')`

// List возвращает весь автопарк в порядке регистрации
func (r *FleetRepository) List(ctx context.Context) ([]*models.Ambulance, error) {
	query := `
		SELECT ` + ambulanceColumns + `
		FROM ambulances
		ORDER BY created_at, id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list ambulances: %w", err)
	}
	defer rows.Close()

	ambulances := make([]*models.Ambulance, 0)
	for rows.Next() {
		ambulance := &models.Ambulance{}
		if err := scanAmbulance(rows, ambulance); err != nil {
			return nil, fmt.Errorf("failed to scan ambulance row: %w", err)
		}
		ambulances = append(ambulances, ambulance)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return ambulances, nil
}

// GetByID возвращает машину по её ID
func (r *FleetRepository) GetByID(ctx context.Context, id string) (*models.Ambulance, error) {
	query := `
		SELECT ` + ambulanceColumns + `
		FROM ambulances
		WHERE id = $1;
	`
	ambulance := &models.Ambulance{}
	err := scanAmbulance(r.db.QueryRow(ctx, query, id), ambulance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrAmbulanceNotFound
		}
		return nil, fmt.Errorf("failed to get ambulance by id: %w", err)
	}
	return ambulance, nil
}

// Create регистрирует машину. Пустой ID заменяется сгенерированным.
func (r *FleetRepository) Create(ctx context.Context, ambulance *models.Ambulance) error {
	if ambulance.ID == "" {
		ambulance.ID = uuid.NewString()
	}
	query := `
		INSERT INTO ambulances (id, vehicle_number, driver_name, driver_phone, status, latitude, longitude, hospital_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''));
	`
	_, err := r.db.Exec(ctx, query,
		ambulance.ID,
		ambulance.VehicleNumber,
		ambulance.DriverName,
		ambulance.DriverPhone,
		ambulance.Status,
		ambulance.Latitude,
		ambulance.Longitude,
		ambulance.HospitalID,
	)
	if err != nil {
		return fmt.Errorf("failed to create ambulance: %w", err)
	}
	return nil
}

// SetStatus атомарно меняет статус машины
func (r *FleetRepository) SetStatus(ctx context.Context, id string, status models.AmbulanceStatus) (*models.Ambulance, error) {
	query := `
		UPDATE ambulances SET status = $1
		WHERE id = $2
		RETURNING ` + ambulanceColumns + `;
	`
	ambulance := &models.Ambulance{}
	err := scanAmbulance(r.db.QueryRow(ctx, query, status, id), ambulance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrAmbulanceNotFound
		}
		return nil, fmt.Errorf("failed to set ambulance status: %w", err)
	}
	return ambulance, nil
}

// SetPosition атомарно меняет позицию машины, не затрагивая статус
func (r *FleetRepository) SetPosition(ctx context.Context, id string, lat, lon float64) (*models.Ambulance, error) {
	query := `
		UPDATE ambulances SET latitude = $1, longitude = $2
		WHERE id = $3
		RETURNING ` + ambulanceColumns + `;
	`
	ambulance := &models.Ambulance{}
	err := scanAmbulance(r.db.QueryRow(ctx, query, lat, lon, id), ambulance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrAmbulanceNotFound
		}
		return nil, fmt.Errorf("failed to set ambulance position: %w", err)
	}
	return ambulance, nil
}

func scanAmbulance(row pgx.Row, ambulance *models.Ambulance) error {
	return row.Scan(
		&ambulance.ID,
		&ambulance.VehicleNumber,
		&ambulance.DriverName,
		&ambulance.DriverPhone,
		&ambulance.Status,
		&ambulance.Latitude,
		&ambulance.Longitude,
		&ambulance.HospitalID,
	)
}
