package repository

import (
	"context"
	"fmt"
	"strings"

	"logistics_api/internal/model"
)

// VehicleRepository defines operations for vehicle data
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *model.Vehicle) error
	List(ctx context.Context) ([]model.Vehicle, error)
	Update(ctx context.Context, id int, patch model.UpdateVehicleRequest) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}

type vehicleRepository struct {
	db DB
}

// NewVehicleRepository creates a new VehicleRepository
func NewVehicleRepository(db DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

// Create inserts a new vehicle
func (r *vehicleRepository) Create(ctx context.Context, v *model.Vehicle) error {
	sql := `INSERT INTO vehicles (vehicle_number, vehicle_type, model, capacity, status, driver_id)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, v.VehicleNumber, v.VehicleType, v.Model, v.Capacity, v.Status, v.DriverID).
		Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// List retrieves all vehicles left-joined with the assigned driver's display
// name. driver_name is NULL when unassigned or the driver row is gone.
func (r *vehicleRepository) List(ctx context.Context) ([]model.Vehicle, error) {
	sql := `SELECT v.id, v.vehicle_number, v.vehicle_type, v.model, v.capacity, v.status,
                   v.driver_id, u.name AS driver_name, v.created_at, v.updated_at
            FROM vehicles v
            LEFT JOIN users u ON v.driver_id = u.id
            ORDER BY v.id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []model.Vehicle
	for rows.Next() {
		var v model.Vehicle
		if err := rows.Scan(
			&v.ID, &v.VehicleNumber, &v.VehicleType, &v.Model, &v.Capacity, &v.Status,
			&v.DriverID, &v.DriverName, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vehicle rows: %w", err)
	}
	return vehicles, nil
}

// Update applies a merge patch. String fields use the truthy-overwrite policy;
// capacity and driver_id use the key-presence-overwrite policy, so an explicit
// null clears the column while an absent key leaves it untouched. The updated
// timestamp is always refreshed; a missing id affects zero rows without error.
func (r *vehicleRepository) Update(ctx context.Context, id int, patch model.UpdateVehicleRequest) error {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`UPDATE vehicles SET updated_at = NOW()`)
	args := []any{}
	argCount := 1

	set := func(column string, value any) {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", column, argCount))
		args = append(args, value)
		argCount++
	}

	if patch.VehicleNumber != "" {
		set("vehicle_number", patch.VehicleNumber)
	}
	if patch.VehicleType != "" {
		set("vehicle_type", patch.VehicleType)
	}
	if patch.Model != "" {
		set("model", patch.Model)
	}
	if patch.Capacity.Set {
		if patch.Capacity.Valid {
			set("capacity", patch.Capacity.Value)
		} else {
			set("capacity", nil)
		}
	}
	if patch.Status != "" {
		set("status", patch.Status)
	}
	if patch.DriverID.Set {
		// A null or zero driver id clears the assignment
		if patch.DriverID.Valid && patch.DriverID.Value != 0 {
			set("driver_id", patch.DriverID.Value)
		} else {
			set("driver_id", nil)
		}
	}

	queryBuilder.WriteString(fmt.Sprintf(" WHERE id = $%d", argCount))
	args = append(args, id)

	_, err := r.db.Exec(ctx, queryBuilder.String(), args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return nil
}

// Delete removes a vehicle. Deleting a missing id is not an error.
func (r *vehicleRepository) Delete(ctx context.Context, id int) error {
	sql := `DELETE FROM vehicles WHERE id = $1`
	if _, err := r.db.Exec(ctx, sql, id); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}

// Count returns the total number of vehicles
func (r *vehicleRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM vehicles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count vehicles: %w", err)
	}
	return count, nil
}

// CountByStatus returns the number of vehicles with the given status
func (r *vehicleRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM vehicles WHERE status = $1`, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count vehicles by status: %w", err)
	}
	return count, nil
}
