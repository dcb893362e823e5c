package simulator

import (
	"context"
	"math/rand"
	"time"

	"github.com/shenikar/ambulance_dispatch_system/internal/config"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

// FleetSimulator периодически сдвигает позиции свободных машин, эмулируя
// движение по городу. Занятые и отключенные машины не двигаются; статусы
// симулятор не меняет никогда.
type FleetSimulator struct {
	fleet  service.FleetRepository
	logger *logrus.Logger
	cfg    *config.Config
	rng    *rand.Rand
}

// NewFleetSimulator создает новый FleetSimulator
func NewFleetSimulator(fleet service.FleetRepository, logger *logrus.Logger, cfg *config.Config) *FleetSimulator {
	return &FleetSimulator{
		fleet:  fleet,
		logger: logger,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start запускает горутину с тикером движения автопарка
func (s *FleetSimulator) Start(ctx context.Context) {
	s.logger.WithField("interval", s.cfg.SimulatorInterval).Info("Starting fleet simulator...")
	go func() {
		ticker := time.NewTicker(s.cfg.SimulatorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping fleet simulator.")
				return
			case <-ticker.C:
				s.moveFleet(ctx)
			}
		}
	}()
}

// moveFleet применяет один шаг движения ко всем свободным машинам
func (s *FleetSimulator) moveFleet(ctx context.Context) {
	ambulances, err := s.fleet.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list fleet for simulation tick")
		return
	}

	for _, ambulance := range ambulances {
		if ambulance.Status != models.AmbulanceAvailable {
			continue
		}

		// Случайный сдвиг до ±SimulatorMaxStep градусов по каждой оси (~100 м)
		newLat := ambulance.Latitude + (s.rng.Float64()-0.5)*2*s.cfg.SimulatorMaxStep
		newLon := ambulance.Longitude + (s.rng.Float64()-0.5)*2*s.cfg.SimulatorMaxStep

		// Не выпускаем машины за границы зоны обслуживания
		newLat = clamp(newLat, s.cfg.ServiceAreaMinLat, s.cfg.ServiceAreaMaxLat)
		newLon = clamp(newLon, s.cfg.ServiceAreaMinLon, s.cfg.ServiceAreaMaxLon)

		if _, err := s.fleet.SetPosition(ctx, ambulance.ID, newLat, newLon); err != nil {
			s.logger.WithError(err).WithField("ambulance_id", ambulance.ID).Warn("Failed to move ambulance")
		}
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
