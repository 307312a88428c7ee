package service

import (
	"context"
	"errors"
	"fmt"

	"logistics_api/internal/model"
	"logistics_api/internal/repository"
)

var ErrVehicleNumberExists = errors.New("Vehicle number already exists")

// VehicleService provides owner-gated vehicle registry operations
type VehicleService interface {
	ListVehicles(ctx context.Context) ([]model.Vehicle, error)
	CreateVehicle(ctx context.Context, req model.CreateVehicleRequest) (*model.Vehicle, error)
	UpdateVehicle(ctx context.Context, targetID int, patch model.UpdateVehicleRequest) error
	DeleteVehicle(ctx context.Context, targetID int) error
}

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

// ListVehicles returns all vehicles with their assigned driver's display name
func (s *vehicleService) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

// CreateVehicle registers a new vehicle. Status defaults to "available"; an
// empty capacity or driver reference is stored as NULL.
func (s *vehicleService) CreateVehicle(ctx context.Context, req model.CreateVehicleRequest) (*model.Vehicle, error) {
	status := req.Status
	if status == "" {
		status = model.DefaultVehicleStatus
	}

	capacity := req.Capacity
	if capacity != nil && *capacity == "" {
		capacity = nil
	}
	driverID := req.DriverID
	if driverID != nil && *driverID == 0 {
		driverID = nil
	}

	vehicle := &model.Vehicle{
		VehicleNumber: req.VehicleNumber,
		VehicleType:   req.VehicleType,
		Model:         req.Model,
		Capacity:      capacity,
		Status:        status,
		DriverID:      driverID,
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrVehicleNumberExists
		}
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return vehicle, nil
}

// UpdateVehicle applies the merge patch. A missing target id affects zero rows
// and still succeeds.
func (s *vehicleService) UpdateVehicle(ctx context.Context, targetID int, patch model.UpdateVehicleRequest) error {
	if err := s.vehicleRepo.Update(ctx, targetID, patch); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrVehicleNumberExists
		}
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return nil
}

// DeleteVehicle removes a vehicle. Deleting a missing id still succeeds.
func (s *vehicleService) DeleteVehicle(ctx context.Context, targetID int) error {
	if err := s.vehicleRepo.Delete(ctx, targetID); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}
