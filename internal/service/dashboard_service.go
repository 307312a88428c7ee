package service

import (
	"context"
	"fmt"

	"logistics_api/internal/model"
	"logistics_api/internal/repository"
)

// Role-keyed dashboard figures. These are literal placeholders: no trip or
// revenue ledger exists to derive them from.
const (
	ownerRevenue  = "₹1,24,500"
	driverRevenue = "₹15,200"

	ownerActiveTrips  = 23
	driverActiveTrips = 3
)

// DashboardService aggregates dashboard figures for the authenticated role
type DashboardService interface {
	GetStats(ctx context.Context, user *model.User) (*model.DashboardStats, error)
}

type dashboardService struct {
	userRepo    repository.UserRepository
	vehicleRepo repository.VehicleRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(userRepo repository.UserRepository, vehicleRepo repository.VehicleRepository) DashboardService {
	return &dashboardService{userRepo: userRepo, vehicleRepo: vehicleRepo}
}

// GetStats returns the role-shaped dashboard payload. Owners get live store
// counts on top of the shared figures; other roles never see the count keys.
// Every call re-queries the store, there is no caching.
func (s *dashboardService) GetStats(ctx context.Context, user *model.User) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{
		TotalRevenue: driverRevenue,
		ActiveTrips:  driverActiveTrips,
	}
	if user.Role != model.RoleOwner {
		return stats, nil
	}

	stats.TotalRevenue = ownerRevenue
	stats.ActiveTrips = ownerActiveTrips

	totalDrivers, err := s.userRepo.CountByRole(ctx, model.RoleDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to count drivers: %w", err)
	}
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	totalVehicles, err := s.vehicleRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count vehicles: %w", err)
	}
	availableVehicles, err := s.vehicleRepo.CountByStatus(ctx, model.VehicleStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("failed to count available vehicles: %w", err)
	}
	inUseVehicles, err := s.vehicleRepo.CountByStatus(ctx, model.VehicleStatusInUse)
	if err != nil {
		return nil, fmt.Errorf("failed to count in-use vehicles: %w", err)
	}

	stats.TotalDrivers = &totalDrivers
	stats.TotalUsers = &totalUsers
	stats.TotalVehicles = &totalVehicles
	stats.AvailableVehicles = &availableVehicles
	stats.InUseVehicles = &inUseVehicles
	return stats, nil
}
