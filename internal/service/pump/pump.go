// Package pump controls the irrigation pump through the IoT backend.
package pump

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/krishisahayak/app-backend/internal/types"
)

// Controller is the slice of the pump client this service uses.
type Controller interface {
	Start(ctx context.Context) (*types.PumpStatus, error)
	Stop(ctx context.Context) (*types.PumpStatus, error)
}

// Service tracks the last confirmed pump state. A failed command leaves the
// confirmed state untouched, which is what lets the UI roll its toggle back.
type Service struct {
	controller Controller
	logger     *logrus.Logger

	mu sync.Mutex
	on bool
}

// NewService creates a pump service. The pump is assumed off at startup.
func NewService(controller Controller, logger *logrus.Logger) *Service {
	return &Service{controller: controller, logger: logger}
}

// On reports the last confirmed pump state.
func (s *Service) On() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.on
}

// Set turns the pump on or off. The state is only updated once the
// controller confirms the command.
func (s *Service) Set(ctx context.Context, on bool) (*types.PumpStatus, error) {
	var (
		status *types.PumpStatus
		err    error
	)
	if on {
		status, err = s.controller.Start(ctx)
	} else {
		status, err = s.controller.Stop(ctx)
	}
	if err != nil {
		s.logger.WithError(err).WithField("on", on).Error("pump command failed")
		return nil, err
	}

	s.mu.Lock()
	s.on = on
	s.mu.Unlock()

	s.logger.WithField("on", on).Info("pump state changed")
	return status, nil
}
