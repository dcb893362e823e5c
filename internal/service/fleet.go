package service

import (
	"context"
	"fmt"

	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

type fleetService struct {
	fleet  FleetRepository
	logger *logrus.Logger
}

func NewFleetService(fleet FleetRepository, logger *logrus.Logger) FleetService {
	return &fleetService{
		fleet:  fleet,
		logger: logger,
	}
}

// ListAmbulances возвращает весь автопарк
func (s *fleetService) ListAmbulances(ctx context.Context) ([]*models.Ambulance, error) {
	ambulances, err := s.fleet.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list fleet from repository")
		return nil, fmt.Errorf("service: could not list fleet: %w", err)
	}
	return ambulances, nil
}

// GetAmbulance получает машину по ID
func (s *fleetService) GetAmbulance(ctx context.Context, id string) (*models.Ambulance, error) {
	ambulance, err := s.fleet.GetByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("ambulance_id", id).Warn("Failed to get ambulance from repository")
		return nil, fmt.Errorf("service: %w", err)
	}
	return ambulance, nil
}

// RegisterAmbulance регистрирует новую машину в автопарке.
// Если статус не задан, машина регистрируется как available.
func (s *fleetService) RegisterAmbulance(ctx context.Context, ambulance *models.Ambulance) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "fleet",
		"method":         "RegisterAmbulance",
		"vehicle_number": ambulance.VehicleNumber,
	})

	if ambulance.Status == "" {
		ambulance.Status = models.AmbulanceAvailable
	}

	if err := s.fleet.Create(ctx, ambulance); err != nil {
		log.WithError(err).Error("Failed to create ambulance in repository")
		return fmt.Errorf("service: could not create ambulance: %w", err)
	}

	log.WithField("ambulance_id", ambulance.ID).Info("Ambulance registered successfully")
	return nil
}

// SetAmbulanceStatus меняет статус машины (available/busy/offline)
func (s *fleetService) SetAmbulanceStatus(ctx context.Context, id string, status models.AmbulanceStatus) (*models.Ambulance, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "fleet",
		"method":       "SetAmbulanceStatus",
		"ambulance_id": id,
		"status":       status,
	})

	ambulance, err := s.fleet.SetStatus(ctx, id, status)
	if err != nil {
		log.WithError(err).Warn("Failed to set ambulance status")
		return nil, fmt.Errorf("service: %w", err)
	}

	log.Info("Ambulance status updated")
	return ambulance, nil
}
