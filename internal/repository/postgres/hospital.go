package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
)

// HospitalRepository - справочник больниц поверх PostgreSQL
type HospitalRepository struct {
	db *pgxpool.Pool
}

func NewHospitalRepository(db *pgxpool.Pool) service.HospitalRepository {
	return &HospitalRepository{db: db}
}

const hospitalColumns = `id, name, address, phone, latitude, longitude, COALESCE(beds_available, ''), COALESCE(specialties, '')`

// List возвращает все больницы
func (r *HospitalRepository) List(ctx context.Context) ([]*models.Hospital, error) {
	query := `
		SELECT ` + hospitalColumns + `
		FROM hospitals
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}
	defer rows.Close()

	hospitals := make([]*models.Hospital, 0)
	for rows.Next() {
		hospital := &models.Hospital{}
		if err := scanHospital(rows, hospital); err != nil {
			return nil, fmt.Errorf("failed to scan hospital row: %w", err)
		}
		hospitals = append(hospitals, hospital)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return hospitals, nil
}

// GetByID возвращает больницу по её ID
func (r *HospitalRepository) GetByID(ctx context.Context, id string) (*models.Hospital, error) {
	query := `
		SELECT ` + hospitalColumns + `
		FROM hospitals
		WHERE id = $1;
	`
	hospital := &models.Hospital{}
	err := scanHospital(r.db.QueryRow(ctx, query, id), hospital)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrHospitalNotFound
		}
		return nil, fmt.Errorf("failed to get hospital by id: %w", err)
	}
	return hospital, nil
}

func scanHospital(row pgx.Row, hospital *models.Hospital) error {
	return row.Scan(
		&hospital.ID,
		&hospital.Name,
		&hospital.Address,
		&hospital.Phone,
		&hospital.Latitude,
		&hospital.Longitude,
		&hospital.BedsAvailable,
		&hospital.Specialties,
	)
}
