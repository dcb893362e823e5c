package service

import (
	"context"
	"fmt"

	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

type hospitalService struct {
	hospitals HospitalRepository
	logger    *logrus.Logger
}

func NewHospitalService(hospitals HospitalRepository, logger *logrus.Logger) HospitalService {
	return &hospitalService{
		hospitals: hospitals,
		logger:    logger,
	}
}

// ListHospitals возвращает справочник больниц
func (s *hospitalService) ListHospitals(ctx context.Context) ([]*models.Hospital, error) {
	hospitals, err := s.hospitals.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list hospitals from repository")
		return nil, fmt.Errorf("service: could not list hospitals: %w", err)
	}
	return hospitals, nil
}
