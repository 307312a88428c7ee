package model

import "time"

const DefaultVehicleStatus = "available"

const (
	VehicleStatusAvailable = "available"
	VehicleStatusInUse     = "in-use"
)

// Vehicle represents a fleet vehicle. DriverID is a weak reference to a user;
// DriverName is populated by the listing join and is nil when unassigned or
// when the referenced driver row no longer exists.
type Vehicle struct {
	ID            int       `json:"id"`
	VehicleNumber string    `json:"vehicle_number"`
	VehicleType   string    `json:"vehicle_type"`
	Model         string    `json:"model"`
	Capacity      *string   `json:"capacity"`
	Status        string    `json:"status"`
	DriverID      *int      `json:"driver_id"`
	DriverName    *string   `json:"driver_name"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateVehicleRequest registers a new vehicle
type CreateVehicleRequest struct {
	VehicleNumber string  `json:"vehicle_number" binding:"required"`
	VehicleType   string  `json:"vehicle_type" binding:"required"`
	Model         string  `json:"model" binding:"required"`
	Capacity      *string `json:"capacity"`
	Status        string  `json:"status"`
	DriverID      *int    `json:"driver_id"`
}

// UpdateVehicleRequest is a merge patch. The string fields follow the
// truthy-overwrite policy (non-empty writes the column). Capacity and DriverID
// follow the key-presence-overwrite policy: a present null clears the column,
// an absent key leaves it untouched.
type UpdateVehicleRequest struct {
	VehicleNumber string           `json:"vehicle_number"`
	VehicleType   string           `json:"vehicle_type"`
	Model         string           `json:"model"`
	Capacity      Optional[string] `json:"capacity"`
	Status        string           `json:"status"`
	DriverID      Optional[int]    `json:"driver_id"`
}
